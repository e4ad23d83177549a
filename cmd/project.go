package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jiraffe/jiraffe/pkg/models"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage tracked projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a project to the settings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		settings, err := st.Load()
		if err != nil {
			return err
		}

		for _, p := range settings.Projects {
			if p.Name == name {
				return fmt.Errorf("project %q already exists", name)
			}
		}

		settings.Projects = append(settings.Projects, models.Project{
			ID:   models.NewID(),
			Name: name,
		})
		if err := st.Save(settings); err != nil {
			return err
		}

		fmt.Printf("Added project '%s'\n", name)
		return nil
	},
}

var projectRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a project and all its queues",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		settings, err := st.Load()
		if err != nil {
			return err
		}

		for i, p := range settings.Projects {
			if p.Name == name {
				settings.Projects = append(settings.Projects[:i], settings.Projects[i+1:]...)
				if err := st.Save(settings); err != nil {
					return err
				}
				fmt.Printf("Removed project '%s'\n", name)
				return nil
			}
		}
		return fmt.Errorf("project %q not found", name)
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		settings, err := st.Load()
		if err != nil {
			return err
		}

		if len(settings.Projects) == 0 {
			fmt.Println("No projects configured")
			return nil
		}
		for _, p := range settings.Projects {
			fmt.Printf("%s (%d queues)\n", p.Name, len(p.Queues))
		}
		return nil
	},
}

func init() {
	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectRemoveCmd)
	projectCmd.AddCommand(projectListCmd)
}
