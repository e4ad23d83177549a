// Package models defines data structures shared across the application.
package models

import (
	"github.com/google/uuid"
)

// Settings is the root configuration document for the application. A single
// document exists per installation; it is read whole at the start of every
// sync pass and written back whole at the end, never patched field by field.
type Settings struct {
	// JiraURL is the base address of the Jira server (e.g. "http://example.com/jira")
	JiraURL string `json:"jira_url"`

	// TimeField is the name of the Jira custom field that carries an
	// issue's scheduled time (e.g. "customfield_10100")
	TimeField string `json:"time_field"`

	// TimeFrom is the hour the work day starts at (0-23)
	TimeFrom int `json:"time_from"`

	// TimeTo is the hour the work day ends at, exclusive
	TimeTo int `json:"time_to"`

	// TimeDividing splits each hour of the board into N equal parts
	TimeDividing int `json:"time_dividing"`

	// Projects is the ordered collection of tracked projects
	Projects []Project `json:"projects"`

	// User is the current Jira user
	User User `json:"user"`

	// StatusColors maps a Jira status name to a display color
	StatusColors map[string]string `json:"status_colors,omitempty"`

	// LastRelease holds the most recently seen upstream release
	LastRelease Release `json:"last_release"`
}

// IsZero reports whether the document is the empty/default one, i.e. nothing
// has been configured yet. A sync pass treats this as "nothing to do".
func (s Settings) IsZero() bool {
	return s.JiraURL == "" && s.TimeField == "" && len(s.Projects) == 0
}

// Clone returns a deep copy of the document. A sync pass works on a copy so
// that an aborted pass leaves the caller's value untouched.
func (s Settings) Clone() Settings {
	out := s
	out.Projects = make([]Project, len(s.Projects))
	for i, p := range s.Projects {
		out.Projects[i] = p.clone()
	}
	if s.StatusColors != nil {
		out.StatusColors = make(map[string]string, len(s.StatusColors))
		for k, v := range s.StatusColors {
			out.StatusColors[k] = v
		}
	}
	return out
}

// FindQueue looks a queue up by name across all projects.
func (s Settings) FindQueue(name string) (Queue, bool) {
	for _, p := range s.Projects {
		for _, q := range p.Queues {
			if q.Name == name {
				return q, true
			}
		}
	}
	return Queue{}, false
}

// Project groups the queues tracked for one Jira project.
type Project struct {
	// ID is a locally generated opaque identifier
	ID string `json:"id"`

	// Name is the display name of the project
	Name string `json:"name"`

	// Queues is the ordered collection of queues in this project
	Queues []Queue `json:"queues"`
}

func (p Project) clone() Project {
	out := p
	out.Queues = make([]Queue, len(p.Queues))
	for i, q := range p.Queues {
		out.Queues[i] = q.clone()
	}
	return out
}

// Queue is a named, JQL-defined collection of issues with its own time-axis
// configuration. Issues holds the snapshot captured by the last successful
// sync pass; it is the diff baseline for the next pass and is always replaced
// whole, never merged.
type Queue struct {
	// ID is a locally generated opaque identifier
	ID string `json:"id"`

	// Name is the display name, also used in notification titles
	Name string `json:"name"`

	// Assignee is the login of the queue's assignee
	Assignee string `json:"assignee"`

	// JQL is the query string selecting the queue's issues
	JQL string `json:"jql"`

	// IsCommon marks a dispatcher-wide queue with no time axis
	IsCommon bool `json:"is_common"`

	// ShowInPopup opts the queue into the personal board and notifications
	ShowInPopup bool `json:"show_in_popup"`

	// Issues is the snapshot from the last successful sync
	Issues []Issue `json:"issues"`
}

func (q Queue) clone() Queue {
	out := q
	out.Issues = make([]Issue, len(q.Issues))
	copy(out.Issues, q.Issues)
	return out
}

// Issue is a value object describing one tracker issue. It has no identity
// beyond Key; two issues with the same Key and Time are interchangeable.
type Issue struct {
	// Key is the tracker-assigned identifier (e.g. "PROJ-123")
	Key string `json:"key"`

	// Summary is the issue's title text
	Summary string `json:"summary"`

	// Time is the scheduled time in epoch milliseconds, 0 when unscheduled
	Time int64 `json:"time"`

	// Status is the issue's status label (e.g. "In Progress")
	Status string `json:"status"`

	// Assignee is the login of the current assignee
	Assignee string `json:"assignee"`

	// Reporter is the display name of the issue's reporter
	Reporter string `json:"reporter"`
}

// User holds the current Jira user.
type User struct {
	// Login is the Jira login name
	Login string `json:"login"`

	// Name is the display name
	Name string `json:"name"`

	// Dispatcher enables the dispatcher board and common-queue notifications
	Dispatcher bool `json:"dispatcher"`
}

// Release describes the most recently seen upstream release of this tool.
type Release struct {
	// Version is the release version string (e.g. "1.2.0")
	Version string `json:"version"`

	// URL is the release page address
	URL string `json:"url"`

	// CheckedAt is the epoch-millisecond time of the last release lookup
	CheckedAt int64 `json:"checked_at"`
}

// NewID generates a local identifier for projects and queues.
func NewID() string {
	return uuid.NewString()
}
