package domain

import "fmt"

// Tab selects which panel of the activity widget is shown.
type Tab string

const (
	TabActivity Tab = "activity"
	TabProjects Tab = "projects"
)

// ParseTab accepts "activity" or "projects".
func ParseTab(s string) (Tab, error) {
	switch Tab(s) {
	case TabActivity, TabProjects:
		return Tab(s), nil
	}
	return "", fmt.Errorf("unknown tab %q", s)
}

// Next returns the other tab.
func (t Tab) Next() Tab {
	if t == TabProjects {
		return TabActivity
	}
	return TabProjects
}

// Title is the tab caption.
func (t Tab) Title() string {
	if t == TabProjects {
		return "Projects"
	}
	return "Recent Activity"
}
