package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiraffe/jiraffe/pkg/models"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "settings.json"))

	settings, err := st.Load()

	require.NoError(t, err)
	assert.True(t, settings.IsZero())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "jiraffe", "settings.json"))

	settings := models.Settings{
		JiraURL:      "http://jira.example.com",
		TimeField:    "customfield_10100",
		TimeFrom:     9,
		TimeTo:       17,
		TimeDividing: 4,
		User:         models.User{Login: "disp", Name: "Dispatcher", Dispatcher: true},
		StatusColors: map[string]string{"In Progress": "warning"},
		Projects: []models.Project{
			{
				ID:   models.NewID(),
				Name: "Support",
				Queues: []models.Queue{
					{
						ID:          models.NewID(),
						Name:        "backlog",
						JQL:         "project = SUP",
						ShowInPopup: true,
						Issues:      []models.Issue{{Key: "SUP-1", Summary: "Printer on fire", Time: 1234567890000}},
					},
				},
			},
		},
	}

	require.NoError(t, st.Save(settings))

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestSaveReplacesWholeDocument(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "settings.json"))

	first := models.Settings{JiraURL: "http://one.example.com", TimeField: "customfield_1"}
	second := models.Settings{JiraURL: "http://two.example.com", TimeField: "customfield_2"}

	require.NoError(t, st.Save(first))
	require.NoError(t, st.Save(second))

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, second.JiraURL, loaded.JiraURL)
}

func TestLoadCorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := New(path).Load()

	assert.Error(t, err)
}
