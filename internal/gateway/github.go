// Package gateway provides a gateway to the GitHub REST API,
// abstracting away the underlying client library.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/naka-gawa/linkbio/internal/domain"
)

// Fetcher defines the behavior of a gateway for fetching a user's public GitHub data.
type Fetcher interface {
	FetchPublicEvents(ctx context.Context, user string) ([]domain.ActivityEvent, error)
	FetchRecentRepos(ctx context.Context, user string, limit int) ([]domain.RepoSummary, error)
}

// Options configures the gateway. The zero value talks anonymously to api.github.com.
type Options struct {
	// BaseURL overrides the REST endpoint, e.g. for GitHub Enterprise.
	BaseURL string
	// Token is optional. Requests are anonymous when it is empty.
	Token string
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient *github.Client
	logger     logrus.FieldLogger
}

// eventPayload holds the few payload fields rendered by the widget.
type eventPayload struct {
	Action  string `json:"action"`
	RefType string `json:"ref_type"`
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
func NewGitHubGateway(opts Options, logger logrus.FieldLogger) (*GitHubGateway, error) {
	httpClient := http.DefaultClient
	if opts.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	restClient := github.NewClient(httpClient)
	if opts.BaseURL != "" {
		base := opts.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		baseURL, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("failed to parse GitHub base URL: %w", err)
		}
		restClient.BaseURL = baseURL
	}
	return &GitHubGateway{
		restClient: restClient,
		logger:     logger,
	}, nil
}

// FetchPublicEvents returns the first page of the user's public events, newest first.
func (g *GitHubGateway) FetchPublicEvents(ctx context.Context, user string) ([]domain.ActivityEvent, error) {
	g.logger.WithField("user", user).Debug("Fetching public events...")
	events, _, err := g.restClient.Activity.ListEventsPerformedByUser(ctx, user, true, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list public events: %w", err)
	}

	result := make([]domain.ActivityEvent, 0, len(events))
	for _, ev := range events {
		activity := domain.ActivityEvent{
			ID:        ev.GetID(),
			Type:      domain.ParseEventType(ev.GetType()),
			RawType:   ev.GetType(),
			RepoName:  ev.GetRepo().GetName(),
			CreatedAt: ev.GetCreatedAt().Time,
		}
		if ev.RawPayload != nil {
			var p eventPayload
			if err := json.Unmarshal(*ev.RawPayload, &p); err != nil {
				return nil, fmt.Errorf("failed to decode payload of event %s: %w", activity.ID, err)
			}
			activity.Action = p.Action
			activity.RefType = p.RefType
		}
		result = append(result, activity)
	}
	g.logger.WithField("count", len(result)).Debug("Completed fetching public events.")
	return result, nil
}

// FetchRecentRepos returns up to limit repositories, most recently updated first.
// Only a single page is requested.
func (g *GitHubGateway) FetchRecentRepos(ctx context.Context, user string, limit int) ([]domain.RepoSummary, error) {
	g.logger.WithField("user", user).Debug("Fetching recently updated repositories...")
	opts := &github.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: limit},
	}
	repos, _, err := g.restClient.Repositories.ListByUser(ctx, user, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}

	result := make([]domain.RepoSummary, 0, len(repos))
	for _, repo := range repos {
		result = append(result, domain.RepoSummary{
			ID:          repo.GetID(),
			Name:        repo.GetName(),
			Description: repo.GetDescription(),
			URL:         repo.GetHTMLURL(),
			Stars:       repo.GetStargazersCount(),
			Language:    repo.GetLanguage(),
			UpdatedAt:   repo.GetUpdatedAt().Time,
		})
	}
	g.logger.WithField("count", len(result)).Debug("Completed fetching repositories.")
	return result, nil
}
