package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jiraffe/jiraffe/internal/jira"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the Jira server and show the authenticated user",
	Long: `This command verifies the configured Jira server is reachable, prints its
version, and shows the authenticated user. With --save the user is stored in
the settings document so common-queue notifications follow the dispatcher
flag correctly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := jira.NewClient()
		if err != nil {
			return err
		}

		info, err := client.GetServerInfo(cmd.Context())
		if err != nil {
			return err
		}

		user, err := client.GetCurrentUser(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Server:  %s (%s)\n", info.ServerTitle, info.BaseURL)
		fmt.Printf("Version: %s\n", info.Version)
		fmt.Printf("User:    %s (%s)\n", user.Name, user.Login)

		save, err := cmd.Flags().GetBool("save")
		if err != nil {
			return err
		}
		if !save {
			return nil
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		settings, err := st.Load()
		if err != nil {
			return err
		}

		// Keep the locally configured dispatcher flag; Jira knows
		// nothing about it.
		user.Dispatcher = settings.User.Dispatcher
		settings.User = user
		if err := st.Save(settings); err != nil {
			return err
		}

		fmt.Println("User stored in settings")
		return nil
	},
}

func init() {
	statusCmd.Flags().Bool("save", false, "Store the authenticated user in the settings document")
}
