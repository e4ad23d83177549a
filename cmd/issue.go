package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jiraffe/jiraffe/internal/jira"
)

var issueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Operate on individual issues",
}

var issueRescheduleCmd = &cobra.Command{
	Use:   "reschedule <key>",
	Short: "Move an issue to a new scheduled time",
	Long: `This command rewrites an issue's scheduled time in the tracked time field,
and optionally hands it to a new assignee. The time is given in local wall
clock; --clear removes the scheduled time instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]

		timeStr, err := cmd.Flags().GetString("time")
		if err != nil {
			return err
		}
		clearTime, err := cmd.Flags().GetBool("clear")
		if err != nil {
			return err
		}
		assignee, err := cmd.Flags().GetString("assignee")
		if err != nil {
			return err
		}

		if timeStr == "" && !clearTime && assignee == "" {
			return fmt.Errorf("nothing to change: provide --time, --clear or --assignee")
		}
		if timeStr != "" && clearTime {
			return fmt.Errorf("--time and --clear are mutually exclusive")
		}

		var millis int64
		if timeStr != "" {
			when, err := time.ParseInLocation("2006-01-02 15:04", timeStr, time.Local)
			if err != nil {
				return fmt.Errorf("invalid time %q, expected 'YYYY-MM-DD HH:MM'", timeStr)
			}
			millis = when.UnixMilli()
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		settings, err := st.Load()
		if err != nil {
			return err
		}
		if settings.TimeField == "" {
			return fmt.Errorf("no time field configured")
		}

		client, err := jira.NewClient()
		if err != nil {
			return err
		}

		if err := client.UpdateSchedule(cmd.Context(), key, assignee, settings.TimeField, millis); err != nil {
			return err
		}

		fmt.Printf("Updated issue %s\n", key)
		return nil
	},
}

func init() {
	issueRescheduleCmd.Flags().String("time", "", "New scheduled time (local, 'YYYY-MM-DD HH:MM')")
	issueRescheduleCmd.Flags().Bool("clear", false, "Remove the scheduled time")
	issueRescheduleCmd.Flags().String("assignee", "", "New assignee login")

	issueCmd.AddCommand(issueRescheduleCmd)
}
