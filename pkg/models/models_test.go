package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatJiraTime(t *testing.T) {
	testCases := []struct {
		name string
		zone *time.Location
		want string
	}{
		{
			name: "Positive offset",
			zone: time.FixedZone("MSK", 3*3600),
			want: "2026-03-10T13:07:00.000+0300",
		},
		{
			name: "Negative offset",
			zone: time.FixedZone("EST", -5*3600),
			want: "2026-03-10T05:07:00.000-0500",
		},
		{
			name: "UTC",
			zone: time.UTC,
			want: "2026-03-10T10:07:00.000+0000",
		},
	}

	// 2026-03-10 10:07:42 UTC; seconds are dropped on formatting.
	millis := time.Date(2026, 3, 10, 10, 7, 42, 0, time.UTC).UnixMilli()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatJiraTime(millis, tc.zone))
		})
	}
}

func TestParseJiraTime(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{
			name:  "Jira format",
			input: "2026-03-10T13:07:00.000+0300",
			want:  time.Date(2026, 3, 10, 10, 7, 0, 0, time.UTC).UnixMilli(),
		},
		{
			name:  "RFC3339 with colon offset",
			input: "2026-03-10T13:07:00.000+03:00",
			want:  time.Date(2026, 3, 10, 10, 7, 0, 0, time.UTC).UnixMilli(),
		},
		{
			name:  "Empty means unscheduled",
			input: "",
			want:  0,
		},
		{
			name:    "Garbage",
			input:   "next tuesday",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseJiraTime(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	zone := time.FixedZone("MSK", 3*3600)
	millis := time.Date(2026, 3, 10, 10, 7, 0, 0, time.UTC).UnixMilli()

	parsed, err := ParseJiraTime(FormatJiraTime(millis, zone))

	require.NoError(t, err)
	assert.Equal(t, millis, parsed)
}

func TestSettingsIsZero(t *testing.T) {
	assert.True(t, Settings{}.IsZero())
	assert.True(t, Settings{TimeFrom: 9, TimeTo: 17}.IsZero())
	assert.False(t, Settings{JiraURL: "http://jira.example.com"}.IsZero())
	assert.False(t, Settings{Projects: []Project{{Name: "Support"}}}.IsZero())
}

func TestSettingsClone(t *testing.T) {
	original := Settings{
		JiraURL:      "http://jira.example.com",
		StatusColors: map[string]string{"Open": "primary"},
		Projects: []Project{
			{
				Name: "Support",
				Queues: []Queue{
					{Name: "backlog", Issues: []Issue{{Key: "SUP-1", Time: 100}}},
				},
			},
		},
	}

	clone := original.Clone()
	clone.Projects[0].Queues[0].Issues[0].Time = 999
	clone.Projects[0].Name = "Renamed"
	clone.StatusColors["Open"] = "danger"

	assert.Equal(t, int64(100), original.Projects[0].Queues[0].Issues[0].Time)
	assert.Equal(t, "Support", original.Projects[0].Name)
	assert.Equal(t, "primary", original.StatusColors["Open"])
}

func TestFindQueue(t *testing.T) {
	settings := Settings{
		Projects: []Project{
			{Name: "A", Queues: []Queue{{Name: "a1"}}},
			{Name: "B", Queues: []Queue{{Name: "b1", JQL: "project = B"}}},
		},
	}

	q, found := settings.FindQueue("b1")
	require.True(t, found)
	assert.Equal(t, "project = B", q.JQL)

	_, found = settings.FindQueue("missing")
	assert.False(t, found)
}

func TestNewIDUnique(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())
}
