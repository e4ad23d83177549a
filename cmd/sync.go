package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jiraffe/jiraffe/internal/jira"
	"github.com/jiraffe/jiraffe/internal/notify"
	"github.com/jiraffe/jiraffe/internal/syncer"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one synchronization pass over all projects and queues",
	Long: `This command fetches every queue's issues from Jira, notifies about new
and rescheduled issues, and replaces the stored snapshots. The pass is
all-or-nothing: the first fetch failure aborts it and nothing is persisted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}

		settings, err := st.Load()
		if err != nil {
			return err
		}

		if settings.IsZero() {
			fmt.Println("Nothing to do: no projects or queues configured")
			return nil
		}

		client, err := jira.NewClient()
		if err != nil {
			return err
		}

		quiet, err := cmd.Flags().GetBool("quiet")
		if err != nil {
			return err
		}
		var notifier notify.Notifier = notify.NewDesktop()
		if quiet {
			notifier = notify.NewLog()
		}

		s := syncer.New(client, notifier)
		updated, ok := s.Sync(cmd.Context(), settings)
		if !ok {
			return fmt.Errorf("synchronization aborted, snapshots left untouched")
		}

		if err := st.Save(updated); err != nil {
			return err
		}

		fmt.Println("Synchronization complete")
		return nil
	},
}

func init() {
	syncCmd.Flags().Bool("quiet", false, "Log notifications instead of showing them on the desktop")
}
