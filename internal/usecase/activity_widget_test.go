package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/naka-gawa/linkbio/internal/domain"
)

// mockFetcher is a mock implementation of the gateway.Fetcher interface.
type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchPublicEvents(ctx context.Context, user string) ([]domain.ActivityEvent, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityEvent), args.Error(1)
}

func (m *mockFetcher) FetchRecentRepos(ctx context.Context, user string, limit int) ([]domain.RepoSummary, error) {
	args := m.Called(ctx, user, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RepoSummary), args.Error(1)
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func sampleEvents(n int) []domain.ActivityEvent {
	events := make([]domain.ActivityEvent, 0, n)
	for i := 0; i < n; i++ {
		events = append(events, domain.ActivityEvent{
			ID:        fmt.Sprintf("%d", i),
			Type:      domain.EventPush,
			RawType:   "PushEvent",
			RepoName:  fmt.Sprintf("octocat/repo-%d", i),
			CreatedAt: now.Add(-time.Duration(i) * time.Hour),
		})
	}
	return events
}

func sampleRepos() []domain.RepoSummary {
	return []domain.RepoSummary{
		{ID: 1, Name: "site", URL: "https://github.com/octocat/site", Description: "my site", Stars: 4, Language: "TypeScript"},
		{ID: 2, Name: "dots", URL: "https://github.com/octocat/dots", Stars: 0, Language: "Vimscript"},
		{ID: 3, Name: "notes", URL: "https://github.com/octocat/notes"},
	}
}

func TestActivityWidget_Load(t *testing.T) {
	testCases := []struct {
		name           string
		mockEvents     []domain.ActivityEvent
		mockRepos      []domain.RepoSummary
		mockEventsErr  error
		mockReposErr   error
		expectedEvents []EventRow
		expectedRepos  []RepoRow
	}{
		{
			name:       "happy path - events are truncated to five",
			mockEvents: sampleEvents(8),
			mockRepos:  sampleRepos(),
			expectedEvents: []EventRow{
				{ID: "0", Icon: domain.IconCommit, Label: "Pushed to repo-0", Ago: "just now"},
				{ID: "1", Icon: domain.IconCommit, Label: "Pushed to repo-1", Ago: "1h ago"},
				{ID: "2", Icon: domain.IconCommit, Label: "Pushed to repo-2", Ago: "2h ago"},
				{ID: "3", Icon: domain.IconCommit, Label: "Pushed to repo-3", Ago: "3h ago"},
				{ID: "4", Icon: domain.IconCommit, Label: "Pushed to repo-4", Ago: "4h ago"},
			},
			expectedRepos: []RepoRow{
				{ID: 1, Name: "site", URL: "https://github.com/octocat/site", Description: "my site", Language: "TypeScript", LanguageColor: "#3178c6", Stars: 4},
				{ID: 2, Name: "dots", URL: "https://github.com/octocat/dots", Language: "Vimscript", LanguageColor: "#8b949e"},
				{ID: 3, Name: "notes", URL: "https://github.com/octocat/notes"},
			},
		},
		{
			name:           "both fetches fail - empty bodies and no placeholders",
			mockEventsErr:  errors.New("network down"),
			mockReposErr:   errors.New("network down"),
			expectedEvents: []EventRow{},
			expectedRepos:  []RepoRow{},
		},
		{
			name:           "one fetch fails - both collections are dropped",
			mockEvents:     sampleEvents(2),
			mockReposErr:   errors.New("unexpected end of JSON input"),
			expectedEvents: []EventRow{},
			expectedRepos:  []RepoRow{},
		},
		{
			name:           "empty case - user has no activity",
			mockEvents:     []domain.ActivityEvent{},
			mockRepos:      []domain.RepoSummary{},
			expectedEvents: []EventRow{},
			expectedRepos:  []RepoRow{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := new(mockFetcher)
			fetcher.On("FetchPublicEvents", mock.Anything, "octocat").Return(tc.mockEvents, tc.mockEventsErr)
			fetcher.On("FetchRecentRepos", mock.Anything, "octocat", 5).Return(tc.mockRepos, tc.mockReposErr)

			widget := NewActivityWidget(fetcher, WidgetOptions{User: "octocat"}, discardLogger())
			assert.True(t, widget.Loading())

			widget.Load(context.Background())

			view := widget.Snapshot(now)
			assert.False(t, view.Loading)
			assert.Zero(t, view.Placeholders)
			assert.Equal(t, domain.TabActivity, view.ActiveTab)
			assert.Equal(t, tc.expectedEvents, view.Events)
			assert.Equal(t, tc.expectedRepos, view.Repos)

			fetcher.AssertExpectations(t)
		})
	}
}

func TestActivityWidget_LoadingSnapshot(t *testing.T) {
	widget := NewActivityWidget(new(mockFetcher), WidgetOptions{User: "octocat"}, discardLogger())

	view := widget.Snapshot(now)
	assert.True(t, view.Loading)
	assert.Equal(t, PlaceholderRows, view.Placeholders)
	assert.Empty(t, view.Events)
	assert.Empty(t, view.Repos)
}

func TestActivityWidget_TabSwitchDoesNotFetch(t *testing.T) {
	fetcher := new(mockFetcher)
	fetcher.On("FetchPublicEvents", mock.Anything, "octocat").Return(sampleEvents(1), nil)
	fetcher.On("FetchRecentRepos", mock.Anything, "octocat", 5).Return(sampleRepos(), nil)

	widget := NewActivityWidget(fetcher, WidgetOptions{User: "octocat"}, discardLogger())
	widget.Load(context.Background())

	widget.SetTab(domain.TabProjects)
	assert.Equal(t, domain.TabProjects, widget.Snapshot(now).ActiveTab)
	widget.Toggle()
	assert.Equal(t, domain.TabActivity, widget.Snapshot(now).ActiveTab)
	widget.Toggle()
	widget.SetTab(domain.TabActivity)

	// A second Load is a no-op: the widget fetches once per lifetime.
	widget.Load(context.Background())

	assert.Len(t, fetcher.Calls, 2)
	fetcher.AssertNumberOfCalls(t, "FetchPublicEvents", 1)
	fetcher.AssertNumberOfCalls(t, "FetchRecentRepos", 1)
}

func TestActivityWidget_LateResultAfterClose(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	fetcher := new(mockFetcher)
	fetcher.On("FetchPublicEvents", mock.Anything, "octocat").
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(sampleEvents(3), nil)
	fetcher.On("FetchRecentRepos", mock.Anything, "octocat", 5).Return(sampleRepos(), nil)

	widget := NewActivityWidget(fetcher, WidgetOptions{User: "octocat"}, discardLogger())

	done := make(chan struct{})
	go func() {
		widget.Load(context.Background())
		close(done)
	}()

	// Tear down only once the events request is in flight.
	select {
	case <-started:
	case <-time.After(5 * time.Second):
		require.FailNow(t, "events request never started")
	}
	widget.Close()
	close(release)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		require.FailNow(t, "Load did not return")
	}

	fetcher.AssertNumberOfCalls(t, "FetchPublicEvents", 1)
	view := widget.Snapshot(now)
	assert.True(t, view.Loading)
	assert.Equal(t, PlaceholderRows, view.Placeholders)
	assert.Empty(t, view.Events)
	assert.Empty(t, view.Repos)
}

func TestActivityWidget_LoadAfterCloseDoesNotFetch(t *testing.T) {
	fetcher := new(mockFetcher)
	widget := NewActivityWidget(fetcher, WidgetOptions{User: "octocat"}, discardLogger())
	widget.Close()
	widget.Load(context.Background())
	fetcher.AssertNotCalled(t, "FetchPublicEvents", mock.Anything, mock.Anything)
	fetcher.AssertNotCalled(t, "FetchRecentRepos", mock.Anything, mock.Anything, mock.Anything)
}
