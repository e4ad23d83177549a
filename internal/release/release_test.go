package release

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jiraffe/jiraffe/pkg/models"
)

func TestIsNewerVersion(t *testing.T) {
	testCases := []struct {
		name   string
		oldVer string
		newVer string
		want   bool
	}{
		{"Patch bump", "1.0.0", "1.0.1", true},
		{"Minor bump", "1.0.9", "1.1.0", true},
		{"Major bump", "1.9.9", "2.0.0", true},
		{"Same version", "1.2.3", "1.2.3", false},
		{"Older version", "1.2.3", "1.2.2", false},
		{"Shorter old version", "1.2", "1.2.1", true},
		{"Shorter new version", "1.2.1", "1.2", false},
		{"Non-numeric segments count as zero", "1.x.3", "1.0.4", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsNewerVersion(tc.oldVer, tc.newVer))
		})
	}
}

func TestRefreshHonorsCooldown(t *testing.T) {
	// A checker with no configured client would panic on a real lookup;
	// the cooldown path must return before any network activity.
	c := &Checker{}
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	current := models.Release{
		Version:   "1.1.0",
		CheckedAt: now.Add(-time.Hour).UnixMilli(),
	}

	got, refreshed := c.Refresh(context.Background(), current, now)

	assert.False(t, refreshed)
	assert.Equal(t, current, got)
}
