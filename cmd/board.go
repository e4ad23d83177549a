package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jiraffe/jiraffe/internal/grid"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Render a queue's day schedule",
	Long: `This command places a queue's issues on the day/hour board and prints it.
Each work hour is one row; issues scheduled within the hour carry a sub-hour
marker with their bucket's starting minute and a temporal status (upcoming,
current, or overdue) derived from the current wall-clock time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		queueName, err := cmd.Flags().GetString("queue")
		if err != nil {
			return err
		}
		if queueName == "" {
			return fmt.Errorf("queue flag is required")
		}

		dateStr, err := cmd.Flags().GetString("date")
		if err != nil {
			return err
		}
		day := time.Now()
		if dateStr != "" {
			day, err = time.ParseInLocation("2006-01-02", dateStr, time.Local)
			if err != nil {
				return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", dateStr)
			}
		}

		showAll, err := cmd.Flags().GetBool("all-days")
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		settings, err := st.Load()
		if err != nil {
			return err
		}
		if settings.IsZero() {
			return fmt.Errorf("no projects or queues configured")
		}

		queue, found := settings.FindQueue(queueName)
		if !found {
			return fmt.Errorf("queue %q not found", queueName)
		}

		g, err := grid.PlaceIssues(queue, day, settings.TimeFrom, settings.TimeTo, showAll, settings.TimeDividing)
		if err != nil {
			return err
		}

		printGrid(queue.Name, day, g)
		return nil
	},
}

func init() {
	boardCmd.Flags().String("queue", "", "Name of the queue to render")
	boardCmd.Flags().String("date", "", "Day to render (YYYY-MM-DD, default today)")
	boardCmd.Flags().Bool("all-days", false, "Include overdue issues from earlier days")
}

// printGrid writes the board as one row per cell.
func printGrid(name string, day time.Time, g grid.Grid) {
	now := time.Now()

	if g.Common {
		fmt.Printf("Queue '%s' (common)\n", name)
		for _, entry := range g.Cells[0].Entries {
			fmt.Printf("  %s  %s\n", entry.Issue.Key, entry.Issue.Summary)
		}
		return
	}

	fmt.Printf("Queue '%s' on %s\n", name, day.Format("2006-01-02"))
	for _, cell := range g.Cells {
		var parts []string
		for _, entry := range cell.Entries {
			parts = append(parts, formatEntry(entry, now))
		}
		fmt.Printf("%s  %s\n", cell.Label, strings.Join(parts, "  "))
	}
}

func formatEntry(entry grid.Entry, now time.Time) string {
	if entry.Marker == nil {
		return entry.Issue.Key
	}
	return fmt.Sprintf("%s[:%02d %s]", entry.Issue.Key, entry.Marker.Minute, entry.Marker.StatusAt(now))
}
