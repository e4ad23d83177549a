// Package diff reconciles a freshly fetched issue list against the snapshot
// stored by the previous sync pass.
package diff

import (
	"github.com/jiraffe/jiraffe/pkg/models"
)

// Result partitions the fresh issues that warrant a notification. Appeared
// and Changed are disjoint: an issue is reported in at most one of the two,
// so a single issue never produces duplicate notifications.
type Result struct {
	// Appeared holds issues whose key was absent from the snapshot
	Appeared []models.Issue

	// Changed holds issues whose key was present but whose scheduled
	// time differs from the snapshot
	Changed []models.Issue
}

// Analyze compares the stored snapshot with freshly fetched issues. It is a
// pure function; both inputs are left untouched and the output order follows
// fresh. An issue counts as changed when the snapshot holds the same key with
// a different scheduled time.
func Analyze(old, fresh []models.Issue) Result {
	oldTimes := make(map[string]int64, len(old))
	for _, issue := range old {
		oldTimes[issue.Key] = issue.Time
	}

	var res Result
	for _, issue := range fresh {
		prev, known := oldTimes[issue.Key]
		switch {
		case !known:
			res.Appeared = append(res.Appeared, issue)
		case prev != issue.Time:
			res.Changed = append(res.Changed, issue)
		}
	}
	return res
}
