// Package release checks GitHub for newer versions of this tool.
package release

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/go-github/v41/github"
	"golang.org/x/oauth2"

	"github.com/jiraffe/jiraffe/internal/logging"
	"github.com/jiraffe/jiraffe/pkg/models"
)

const (
	repoOwner = "jiraffe"
	repoName  = "jiraffe"

	// checkCooldown is the minimum interval between release lookups.
	checkCooldown = 24 * time.Hour
)

// Checker queries the project's GitHub releases.
type Checker struct {
	client *github.Client
}

// NewChecker creates a release checker. The token is optional; without one
// the lookup runs unauthenticated against the public API.
func NewChecker(token string) *Checker {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	return &Checker{client: github.NewClient(httpClient)}
}

// Latest fetches the most recent published release.
func (c *Checker) Latest(ctx context.Context) (models.Release, error) {
	rel, _, err := c.client.Repositories.GetLatestRelease(ctx, repoOwner, repoName)
	if err != nil {
		return models.Release{}, fmt.Errorf("failed to fetch latest release: %v", err)
	}

	return models.Release{
		Version: strings.TrimPrefix(rel.GetTagName(), "v"),
		URL:     rel.GetHTMLURL(),
	}, nil
}

// Refresh returns an up-to-date release record, honoring the lookup
// cooldown. It reports whether the record was actually refreshed; lookup
// failures are logged and leave the previous record in place.
func (c *Checker) Refresh(ctx context.Context, current models.Release, now time.Time) (models.Release, bool) {
	if now.UnixMilli()-current.CheckedAt < checkCooldown.Milliseconds() {
		return current, false
	}

	latest, err := c.Latest(ctx)
	if err != nil {
		logging.Warn("release check failed", "error", err)
		return current, false
	}

	latest.CheckedAt = now.UnixMilli()
	return latest, true
}

// IsNewerVersion reports whether newVer has a higher dotted-numeric version
// than oldVer. Missing or non-numeric segments count as zero.
func IsNewerVersion(oldVer, newVer string) bool {
	oldParts := strings.Split(oldVer, ".")
	newParts := strings.Split(newVer, ".")
	for i := range newParts {
		a, _ := strconv.Atoi(newParts[i])
		var b int
		if i < len(oldParts) {
			b, _ = strconv.Atoi(oldParts[i])
		}
		if a > b {
			return true
		}
		if a < b {
			return false
		}
	}
	return false
}
