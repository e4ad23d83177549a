package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jiraffe/jiraffe/internal/config"
	"github.com/jiraffe/jiraffe/internal/store"
)

// Version is the current release of the tool.
const Version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "jiraffe",
	Short: "Jiraffe keeps a dispatcher's Jira queues in sync and on a time board",
	Long: `Jiraffe periodically pulls Jira issues for user-defined queues, notifies
the dispatcher about new and rescheduled issues, and renders each queue as a
day/hour time board. Queues are defined by JQL queries and grouped into
projects; the board splits each work hour into configurable sub-hour buckets.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("settings", "", "Path to the settings file (default: JIRAFFE_SETTINGS or the user config directory)")

	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(issueCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(queueCmd)
}

// openStore resolves the settings location from the --settings flag or the
// environment and returns a store for it.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	path, err := cmd.Flags().GetString("settings")
	if err != nil {
		return nil, err
	}

	if path == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			return nil, err
		}
		path = cfg.Settings.Path
	}

	return store.New(path), nil
}
