// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/naka-gawa/linkbio/internal/domain"
	"github.com/naka-gawa/linkbio/internal/gateway"
)

const (
	// DefaultEventLimit is how many events the activity panel keeps.
	DefaultEventLimit = 5
	// DefaultRepoLimit is the per_page value of the repository listing.
	DefaultRepoLimit = 5
	// PlaceholderRows is the number of pulsing rows shown while loading.
	PlaceholderRows = 3
)

// WidgetOptions configures an ActivityWidget.
type WidgetOptions struct {
	User       string
	EventLimit int
	RepoLimit  int
}

// ActivityWidget holds the state of the GitHub activity panel.
// It fetches exactly once and only ever replaces its collections wholesale.
type ActivityWidget struct {
	fetcher gateway.Fetcher
	logger  logrus.FieldLogger
	opts    WidgetOptions

	mu        sync.Mutex
	events    []domain.ActivityEvent
	repos     []domain.RepoSummary
	loading   bool
	activeTab domain.Tab
	started   bool
	closed    bool
}

// EventRow is one pre-formatted line of the activity panel.
type EventRow struct {
	ID    string      `json:"id"`
	Icon  domain.Icon `json:"icon"`
	Label string      `json:"label"`
	Ago   string      `json:"ago"`
}

// RepoRow is one pre-formatted entry of the projects panel.
type RepoRow struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	URL           string `json:"url"`
	Description   string `json:"description,omitempty"`
	Language      string `json:"language,omitempty"`
	LanguageColor string `json:"language_color,omitempty"`
	// Stars is zero when the count should not be rendered.
	Stars int `json:"stars,omitempty"`
}

// View is an immutable snapshot of the widget, ready to render.
type View struct {
	Loading      bool       `json:"loading"`
	Placeholders int        `json:"placeholders"`
	ActiveTab    domain.Tab `json:"active_tab"`
	Events       []EventRow `json:"events"`
	Repos        []RepoRow  `json:"repos"`
}

// NewActivityWidget creates a widget in the loading state with the activity tab selected.
func NewActivityWidget(fetcher gateway.Fetcher, opts WidgetOptions, logger logrus.FieldLogger) *ActivityWidget {
	if opts.EventLimit <= 0 {
		opts.EventLimit = DefaultEventLimit
	}
	if opts.RepoLimit <= 0 {
		opts.RepoLimit = DefaultRepoLimit
	}
	return &ActivityWidget{
		fetcher:   fetcher,
		logger:    logger,
		opts:      opts,
		loading:   true,
		activeTab: domain.TabActivity,
	}
}

// Load fetches events and repositories concurrently and leaves the loading state
// once both requests have settled. If either request fails, both collections stay
// empty. Only the first call fetches; a result arriving after Close is dropped.
func (w *ActivityWidget) Load(ctx context.Context) {
	w.mu.Lock()
	if w.started || w.closed {
		w.mu.Unlock()
		return
	}
	w.started = true
	w.mu.Unlock()

	var events []domain.ActivityEvent
	var repos []domain.RepoSummary

	// A plain Group: one failing request must not cancel the other.
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		events, err = w.fetcher.FetchPublicEvents(ctx, w.opts.User)
		return err
	})
	eg.Go(func() error {
		var err error
		repos, err = w.fetcher.FetchRecentRepos(ctx, w.opts.User, w.opts.RepoLimit)
		return err
	})

	if err := eg.Wait(); err != nil {
		w.logger.WithError(err).Debug("GitHub activity unavailable")
		events, repos = nil, nil
	}
	if len(events) > w.opts.EventLimit {
		events = events[:w.opts.EventLimit]
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.events = events
	w.repos = repos
	w.loading = false
}

// SetTab selects the visible panel. It never fetches.
func (w *ActivityWidget) SetTab(tab domain.Tab) {
	w.mu.Lock()
	w.activeTab = tab
	w.mu.Unlock()
}

// Toggle switches to the other panel.
func (w *ActivityWidget) Toggle() {
	w.mu.Lock()
	w.activeTab = w.activeTab.Next()
	w.mu.Unlock()
}

// Close tears the widget down. Later Load results are ignored.
func (w *ActivityWidget) Close() {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
}

// Loading reports whether the fetch is still outstanding.
func (w *ActivityWidget) Loading() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.loading
}

// Snapshot renders the current state with relative times computed against now.
func (w *ActivityWidget) Snapshot(now time.Time) View {
	w.mu.Lock()
	defer w.mu.Unlock()

	view := View{
		Loading:   w.loading,
		ActiveTab: w.activeTab,
		Events:    []EventRow{},
		Repos:     []RepoRow{},
	}
	if w.loading {
		view.Placeholders = PlaceholderRows
		return view
	}
	for _, ev := range w.events {
		view.Events = append(view.Events, EventRow{
			ID:    ev.ID,
			Icon:  ev.Icon(),
			Label: ev.Label(),
			Ago:   domain.TimeAgo(now, ev.CreatedAt),
		})
	}
	for _, repo := range w.repos {
		row := RepoRow{
			ID:          repo.ID,
			Name:        repo.Name,
			URL:         repo.URL,
			Description: repo.Description,
			Language:    repo.Language,
		}
		if repo.Language != "" {
			row.LanguageColor = domain.LanguageColor(repo.Language)
		}
		if repo.Stars > 0 {
			row.Stars = repo.Stars
		}
		view.Repos = append(view.Repos, row)
	}
	return view
}
