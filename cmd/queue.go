package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jiraffe/jiraffe/pkg/models"
)

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Manage queues within a project",
}

var queueAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a queue to a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		projectName, err := cmd.Flags().GetString("project")
		if err != nil {
			return err
		}
		if projectName == "" {
			return fmt.Errorf("project flag is required")
		}

		jql, err := cmd.Flags().GetString("jql")
		if err != nil {
			return err
		}
		if jql == "" {
			return fmt.Errorf("jql flag is required")
		}

		assignee, err := cmd.Flags().GetString("assignee")
		if err != nil {
			return err
		}
		isCommon, err := cmd.Flags().GetBool("common")
		if err != nil {
			return err
		}
		showInPopup, err := cmd.Flags().GetBool("popup")
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

		for pi := range settings.Projects {
			project := &settings.Projects[pi]
			if project.Name != projectName {
				continue
			}
			for _, q := range project.Queues {
				if q.Name == name {
					return fmt.Errorf("queue %q already exists in project %q", name, projectName)
				}
			}
			project.Queues = append(project.Queues, models.Queue{
				ID:          models.NewID(),
				Name:        name,
				Assignee:    assignee,
				JQL:         jql,
				IsCommon:    isCommon,
				ShowInPopup: showInPopup,
			})
			if err := st.Save(settings); err != nil {
				return err
			}
			fmt.Printf("Added queue '%s' to project '%s'\n", name, projectName)
			return nil
		}
		return fmt.Errorf("project %q not found", projectName)
	},
}

var queueRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a queue from a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		projectName, err := cmd.Flags().GetString("project")
		if err != nil {
			return err
		}
		if projectName == "" {
			return fmt.Errorf("project flag is required")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		settings, err := st.Load()
		if err != nil {
			return err
		}

		for pi := range settings.Projects {
			project := &settings.Projects[pi]
			if project.Name != projectName {
				continue
			}
			for qi, q := range project.Queues {
				if q.Name == name {
					project.Queues = append(project.Queues[:qi], project.Queues[qi+1:]...)
					if err := st.Save(settings); err != nil {
						return err
					}
					fmt.Printf("Removed queue '%s' from project '%s'\n", name, projectName)
					return nil
				}
			}
			return fmt.Errorf("queue %q not found in project %q", name, projectName)
		}
		return fmt.Errorf("project %q not found", projectName)
	},
}

var queueListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all queues",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		settings, err := st.Load()
		if err != nil {
			return err
		}

		count := 0
		for _, p := range settings.Projects {
			for _, q := range p.Queues {
				kind := "timed"
				if q.IsCommon {
					kind = "common"
				}
				fmt.Printf("%s/%s (%s, %d issues)\n", p.Name, q.Name, kind, len(q.Issues))
				count++
			}
		}
		if count == 0 {
			fmt.Println("No queues configured")
		}
		return nil
	},
}

func init() {
	queueAddCmd.Flags().String("project", "", "Project the queue belongs to")
	queueAddCmd.Flags().String("jql", "", "JQL query selecting the queue's issues")
	queueAddCmd.Flags().String("assignee", "", "Assignee login for the queue")
	queueAddCmd.Flags().Bool("common", false, "Mark the queue as a dispatcher-wide common queue (no time axis)")
	queueAddCmd.Flags().Bool("popup", false, "Show the queue on the personal board and send notifications")
	queueRemoveCmd.Flags().String("project", "", "Project the queue belongs to")

	queueCmd.AddCommand(queueAddCmd)
	queueCmd.AddCommand(queueRemoveCmd)
	queueCmd.AddCommand(queueListCmd)
}
