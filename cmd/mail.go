package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMailCmd(app *app) *cobra.Command {
	mailCmd := &cobra.Command{
		Use:   "mail",
		Short: "List the user's mailbox",
		RunE: func(cmd *cobra.Command, _ []string) error {
			inbox, err := app.mail.Inbox(cmd.Context(), app.userID)
			if err != nil {
				return err
			}

			if len(inbox) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "mailbox empty")
				return err
			}

			for _, item := range inbox {
				marker := " "
				if !item.Read {
					marker = "*"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s // %s\n", marker, item.ID, item.Sender, item.Subject); err != nil {
					return err
				}
			}
			return nil
		},
	}

	mailCmd.AddCommand(&cobra.Command{
		Use:   "read <message-id>",
		Short: "Show a message and mark it read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			inbox, err := app.mail.Inbox(ctx, app.userID)
			if err != nil {
				return err
			}

			for _, item := range inbox {
				if item.ID != args[0] {
					continue
				}
				if err := app.mail.MarkRead(ctx, app.userID, item.ID); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "from: %s\nsubject: %s\n\n%s\n", item.Sender, item.Subject, item.Body)
				return err
			}

			return fmt.Errorf("message %q not in mailbox", args[0])
		},
	})

	return mailCmd
}
