// Package syncer drives one full synchronization pass over all projects and
// queues: fetch, diff against the stored snapshot, notify, and commit.
package syncer

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jiraffe/jiraffe/internal/diff"
	"github.com/jiraffe/jiraffe/internal/jira"
	"github.com/jiraffe/jiraffe/internal/logging"
	"github.com/jiraffe/jiraffe/internal/notify"
	"github.com/jiraffe/jiraffe/internal/store"
	"github.com/jiraffe/jiraffe/pkg/models"
)

// defaultSearchTimeout bounds a single queue fetch so a hung server cannot
// stall a pass indefinitely.
const defaultSearchTimeout = 30 * time.Second

// Searcher fetches the issues matching a JQL query.
type Searcher interface {
	SearchIssues(ctx context.Context, jql, timeField string) ([]models.Issue, error)
}

// Syncer performs synchronization passes.
type Syncer struct {
	search   Searcher
	notifier notify.Notifier
	timeout  time.Duration
	loc      *time.Location
}

// New creates a Syncer fetching issues through search and delivering
// notifications through notifier.
func New(search Searcher, notifier notify.Notifier) *Syncer {
	return &Syncer{
		search:   search,
		notifier: notifier,
		timeout:  defaultSearchTimeout,
		loc:      time.Local,
	}
}

// Sync walks every project and queue strictly in order, fetching each
// queue's issues and replacing its snapshot. Queues that qualify for
// notifications are diffed against their previous snapshot first.
//
// The pass is all-or-nothing: the first fetch failure aborts it, the
// original settings are returned unchanged, and ok is false. This keeps
// every snapshot either fully refreshed or untouched, never a mix, so the
// next pass diffs against a consistent baseline. The empty default document
// is a recognized "nothing to do" state, not an error; it returns false
// without any network calls.
//
// Sync never persists anything; the caller commits the returned document.
func (s *Syncer) Sync(ctx context.Context, settings models.Settings) (models.Settings, bool) {
	if settings.IsZero() {
		return settings, false
	}

	updated := settings.Clone()

	for pi := range updated.Projects {
		project := &updated.Projects[pi]
		for qi := range project.Queues {
			queue := &project.Queues[qi]

			fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
			issues, err := s.search.SearchIssues(fetchCtx, queue.JQL, updated.TimeField)
			cancel()
			if err != nil {
				// A rejected query is an expected condition;
				// anything else deserves diagnostics.
				if !errors.Is(err, jira.ErrBadRequest) {
					logging.Error("queue fetch failed",
						"project", project.Name,
						"queue", queue.Name,
						"error", err)
				}
				return settings, false
			}

			if s.qualifies(updated.User, *queue) {
				result := diff.Analyze(queue.Issues, issues)
				if len(result.Appeared) > 0 {
					s.notifier.Notify(
						"new issue(s) in "+queue.Name,
						s.appearedBody(result.Appeared, queue.IsCommon))
				}
				if len(result.Changed) > 0 {
					s.notifier.Notify(
						"issue(s) updated in "+queue.Name,
						s.changedBody(result.Changed))
				}
			}

			queue.Issues = issues
		}
	}

	return updated, true
}

// Run performs one full pass against the store: load, sync, and commit the
// refreshed document. It reports whether the pass committed.
func (s *Syncer) Run(ctx context.Context, st *store.Store) bool {
	settings, err := st.Load()
	if err != nil {
		logging.Error("failed to load settings", "error", err)
		return false
	}

	updated, ok := s.Sync(ctx, settings)
	if !ok {
		return false
	}

	if err := st.Save(updated); err != nil {
		logging.Error("failed to persist settings", "error", err)
		return false
	}

	logging.Info("tickets updated")
	return true
}

// qualifies reports whether a queue raises notifications: common queues do
// for dispatchers, and any queue opted into the personal board does.
func (s *Syncer) qualifies(user models.User, queue models.Queue) bool {
	return (user.Dispatcher && queue.IsCommon) || queue.ShowInPopup
}

// appearedBody formats the body for newly appeared issues: key and summary,
// plus the scheduled time for queues with a time axis.
func (s *Syncer) appearedBody(issues []models.Issue, isCommon bool) string {
	var b strings.Builder
	for _, issue := range issues {
		b.WriteString(issue.Key + "\n")
		b.WriteString(issue.Summary + "\n")
		if !isCommon {
			b.WriteString(s.formatTime(issue.Time) + "\n")
		}
	}
	return b.String()
}

// changedBody formats the body for rescheduled issues: key and new time only.
func (s *Syncer) changedBody(issues []models.Issue) string {
	var b strings.Builder
	for _, issue := range issues {
		b.WriteString(issue.Key + " >>\n")
		b.WriteString(s.formatTime(issue.Time) + "\n")
	}
	return b.String()
}

func (s *Syncer) formatTime(millis int64) string {
	if millis <= 0 {
		return ""
	}
	return time.UnixMilli(millis).In(s.loc).Format("2006-01-02 15:04")
}
