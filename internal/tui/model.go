// Package tui composes the profile card, link list and GitHub widget into a
// single terminal view.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/naka-gawa/linkbio/internal/domain"
	"github.com/naka-gawa/linkbio/internal/usecase"
)

const (
	cardWidth     = 44
	pulseInterval = 400 * time.Millisecond
)

var (
	accent   = lipgloss.Color("#00b4d8")
	muted    = lipgloss.Color("#a1a1aa")
	faint    = lipgloss.Color("#71717a")
	border   = lipgloss.Color("#27272a")
	pulseDim = lipgloss.Color("#27272a")
	pulseLit = lipgloss.Color("#3f3f46")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fafafa"))
	mutedStyle = lipgloss.NewStyle().Foreground(muted)
	faintStyle = lipgloss.NewStyle().Foreground(faint)
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(border).
	Padding(0, 2).
	Width(cardWidth)

var glyphs = map[domain.Icon]string{
	domain.IconInstagram:   "◎",
	domain.IconGitHub:      "⌥",
	domain.IconTikTok:      "♪",
	domain.IconGlobe:       "◍",
	domain.IconCommit:      "●",
	domain.IconPullRequest: "⇄",
	domain.IconStar:        "★",
	domain.IconFork:        "⑂",
	domain.IconGeneric:     "●",
	domain.IconRepo:        "▣",
}

type loadedMsg struct{}

type pulseMsg struct{}

// Model is the bubbletea model of the card.
type Model struct {
	ctx     context.Context
	cancel  context.CancelFunc
	profile domain.Profile
	widget  *usecase.ActivityWidget
	now     func() time.Time
	pulse   int
	width   int
}

// New builds the model. The widget starts fetching when the program starts.
func New(ctx context.Context, profile domain.Profile, widget *usecase.ActivityWidget) *Model {
	ctx, cancel := context.WithCancel(ctx)
	return &Model{
		ctx:     ctx,
		cancel:  cancel,
		profile: profile,
		widget:  widget,
		now:     time.Now,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.load(), pulse())
}

func (m *Model) load() tea.Cmd {
	return func() tea.Msg {
		m.widget.Load(m.ctx)
		return loadedMsg{}
	}
}

func pulse() tea.Cmd {
	return tea.Tick(pulseInterval, func(time.Time) tea.Msg { return pulseMsg{} })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.close()
			return m, tea.Quit
		case "tab", "shift+tab", "left", "right", "h", "l":
			m.widget.Toggle()
		case "1":
			m.widget.SetTab(domain.TabActivity)
		case "2":
			m.widget.SetTab(domain.TabProjects)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case pulseMsg:
		if m.widget.Loading() {
			m.pulse++
			return m, pulse()
		}
	case loadedMsg:
	}
	return m, nil
}

// close tears the widget down; a fetch still in flight is abandoned.
func (m *Model) close() {
	m.widget.Close()
	m.cancel()
}

func (m *Model) View() string {
	card := lipgloss.JoinVertical(lipgloss.Center,
		m.header(),
		"",
		m.links(),
		"",
		m.activity(),
		faintStyle.Render("tab switch · q quit"),
	)
	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, card)
	}
	return card
}

func (m *Model) header() string {
	lines := []string{titleStyle.Render(m.profile.Name)}
	if m.profile.Location != "" {
		lines = append(lines, mutedStyle.Render(m.profile.Location))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) links() string {
	rows := make([]string, 0, len(m.profile.Links))
	for _, l := range m.profile.Links {
		label := fmt.Sprintf("%s  %s", mutedStyle.Render(glyphs[l.LinkIcon()]), titleStyle.Render(l.Name))
		row := lipgloss.JoinVertical(lipgloss.Center, label, faintStyle.Render(l.Href))
		rows = append(rows, boxStyle.Align(lipgloss.Center).Render(row))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func (m *Model) activity() string {
	view := m.widget.Snapshot(m.now())
	if view.Loading {
		body := []string{titleStyle.Render("GitHub"), ""}
		for i := 0; i < view.Placeholders; i++ {
			shade := pulseDim
			if (m.pulse+i)%2 == 0 {
				shade = pulseLit
			}
			bar := lipgloss.NewStyle().Foreground(shade).Render(strings.Repeat("█", cardWidth-6))
			body = append(body, bar)
		}
		return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body...))
	}

	body := []string{m.tabs(view.ActiveTab), ""}
	if view.ActiveTab == domain.TabActivity {
		for _, ev := range view.Events {
			body = append(body,
				fmt.Sprintf("%s %s", titleStyle.Render(glyphs[ev.Icon]), mutedStyle.Render(truncate(ev.Label, cardWidth-8))),
				"  "+faintStyle.Render(ev.Ago),
			)
		}
	} else {
		for _, repo := range view.Repos {
			body = append(body, repoLines(repo)...)
		}
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body...))
}

func (m *Model) tabs(active domain.Tab) string {
	render := func(tab domain.Tab) string {
		if tab == active {
			return titleStyle.Underline(true).Render(tab.Title())
		}
		return mutedStyle.Render(tab.Title())
	}
	return render(domain.TabActivity) + "   " + render(domain.TabProjects)
}

func repoLines(repo usecase.RepoRow) []string {
	lines := []string{fmt.Sprintf("%s %s", titleStyle.Render(glyphs[domain.IconRepo]), titleStyle.Render(repo.Name))}
	if repo.Description != "" {
		lines = append(lines, "  "+faintStyle.Render(truncate(repo.Description, cardWidth-8)))
	}
	var meta []string
	if repo.Language != "" {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(repo.LanguageColor)).Render("●")
		meta = append(meta, dot+" "+mutedStyle.Render(repo.Language))
	}
	if repo.Stars > 0 {
		meta = append(meta, mutedStyle.Render(fmt.Sprintf("%s %d", glyphs[domain.IconStar], repo.Stars)))
	}
	if len(meta) > 0 {
		lines = append(lines, "  "+strings.Join(meta, "  "))
	}
	lines = append(lines, "  "+lipgloss.NewStyle().Foreground(accent).Render(repo.URL))
	return lines
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
