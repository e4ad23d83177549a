// Package config provides centralized configuration management for the application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration parameters for the application.
type Config struct {
	Jira     JiraConfig
	GitHub   GitHubConfig
	Settings SettingsConfig
}

// JiraConfig holds Jira server credentials.
type JiraConfig struct {
	URL      string
	Username string
	Token    string
}

// GitHubConfig holds the optional token used for release lookups.
type GitHubConfig struct {
	Token string
}

// SettingsConfig holds the location of the settings document.
type SettingsConfig struct {
	Path string
}

// LoadConfig initializes and loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	// Initialize Viper for environment variables
	v := viper.New()
	v.SetEnvPrefix("")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Map specific environment variables
	v.BindEnv("jira.url", "JIRA_URL")
	v.BindEnv("jira.username", "JIRA_USERNAME")
	v.BindEnv("jira.token", "JIRA_TOKEN")
	v.BindEnv("github.token", "GITHUB_TOKEN")
	v.BindEnv("settings.path", "JIRAFFE_SETTINGS")

	config := &Config{
		Jira: JiraConfig{
			URL:      v.GetString("jira.url"),
			Username: v.GetString("jira.username"),
			Token:    v.GetString("jira.token"),
		},
		GitHub: GitHubConfig{
			Token: v.GetString("github.token"),
		},
		Settings: SettingsConfig{
			Path: v.GetString("settings.path"),
		},
	}

	if config.Settings.Path == "" {
		path, err := DefaultSettingsPath()
		if err != nil {
			return nil, err
		}
		config.Settings.Path = path
	}

	return config, nil
}

// ValidateJiraConfig ensures the Jira credentials required for API calls are set.
func ValidateJiraConfig(config *Config) error {
	var missingVars []string

	if config.Jira.URL == "" {
		missingVars = append(missingVars, "JIRA_URL")
	}
	if config.Jira.Username == "" {
		missingVars = append(missingVars, "JIRA_USERNAME")
	}
	if config.Jira.Token == "" {
		missingVars = append(missingVars, "JIRA_TOKEN")
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missingVars)
	}

	return nil
}

// DefaultSettingsPath returns the settings document location used when
// JIRAFFE_SETTINGS is not set.
func DefaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config directory: %w", err)
	}
	return filepath.Join(dir, "jiraffe", "settings.json"), nil
}
