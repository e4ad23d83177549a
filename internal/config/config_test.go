package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("JIRA_URL", "http://jira.example.com")
	t.Setenv("JIRA_USERNAME", "jdoe")
	t.Setenv("JIRA_TOKEN", "secret")
	t.Setenv("GITHUB_TOKEN", "gh-token")
	t.Setenv("JIRAFFE_SETTINGS", "/tmp/jiraffe/settings.json")

	config, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "http://jira.example.com", config.Jira.URL)
	assert.Equal(t, "jdoe", config.Jira.Username)
	assert.Equal(t, "secret", config.Jira.Token)
	assert.Equal(t, "gh-token", config.GitHub.Token)
	assert.Equal(t, "/tmp/jiraffe/settings.json", config.Settings.Path)
}

func TestLoadConfigDefaultsSettingsPath(t *testing.T) {
	t.Setenv("JIRAFFE_SETTINGS", "")

	config, err := LoadConfig()

	require.NoError(t, err)
	assert.NotEmpty(t, config.Settings.Path)
	assert.Contains(t, config.Settings.Path, "jiraffe")
}

func TestValidateJiraConfig(t *testing.T) {
	testCases := []struct {
		name     string
		url      string
		username string
		token    string
		wantErr  bool
	}{
		{
			name:     "All credentials set",
			url:      "http://jira.example.com",
			username: "jdoe",
			token:    "secret",
			wantErr:  false,
		},
		{
			name:     "Missing URL",
			url:      "",
			username: "jdoe",
			token:    "secret",
			wantErr:  true,
		},
		{
			name:     "Missing username",
			url:      "http://jira.example.com",
			username: "",
			token:    "secret",
			wantErr:  true,
		},
		{
			name:     "Missing token",
			url:      "http://jira.example.com",
			username: "jdoe",
			token:    "",
			wantErr:  true,
		},
		{
			name:    "Everything missing",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := &Config{
				Jira: JiraConfig{
					URL:      tc.url,
					Username: tc.username,
					Token:    tc.token,
				},
			}

			err := ValidateJiraConfig(config)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
