package domain

import (
	"fmt"
	"strings"
	"time"
)

// EventType classifies a public GitHub event.
type EventType string

const (
	EventPush        EventType = "push"
	EventPullRequest EventType = "pull-request"
	EventWatch       EventType = "watch"
	EventFork        EventType = "fork"
	EventCreate      EventType = "create"
	EventOther       EventType = "other"
)

// ParseEventType maps a GitHub event type string such as "PushEvent".
// Anything unrecognized is EventOther.
func ParseEventType(s string) EventType {
	switch s {
	case "PushEvent":
		return EventPush
	case "PullRequestEvent":
		return EventPullRequest
	case "WatchEvent":
		return EventWatch
	case "ForkEvent":
		return EventFork
	case "CreateEvent":
		return EventCreate
	default:
		return EventOther
	}
}

// ActivityEvent is one entry of a user's public event stream.
type ActivityEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	RawType   string    `json:"raw_type"`
	RepoName  string    `json:"repo_name"`
	CreatedAt time.Time `json:"created_at"`
	// Action is the payload action verb, set for pull request events.
	Action string `json:"action,omitempty"`
	// RefType is the payload ref_type, set for create events.
	RefType string `json:"ref_type,omitempty"`
}

// ShortRepoName returns the repository name without its owner.
func (e ActivityEvent) ShortRepoName() string {
	if _, name, ok := strings.Cut(e.RepoName, "/"); ok {
		return name
	}
	return e.RepoName
}

// Label builds the human-readable line shown for the event.
func (e ActivityEvent) Label() string {
	repo := e.ShortRepoName()
	switch e.Type {
	case EventPush:
		return fmt.Sprintf("Pushed to %s", repo)
	case EventPullRequest:
		return fmt.Sprintf("%s PR in %s", e.Action, repo)
	case EventWatch:
		return fmt.Sprintf("Starred %s", repo)
	case EventFork:
		return fmt.Sprintf("Forked %s", repo)
	case EventCreate:
		return fmt.Sprintf("Created %s in %s", e.RefType, repo)
	default:
		return fmt.Sprintf("Activity in %s", repo)
	}
}

// Icon returns the glyph keyed by event type.
func (e ActivityEvent) Icon() Icon {
	switch e.Type {
	case EventPush:
		return IconCommit
	case EventPullRequest:
		return IconPullRequest
	case EventWatch:
		return IconStar
	case EventFork:
		return IconFork
	default:
		return IconGeneric
	}
}
