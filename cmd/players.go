package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/termdeck/termdeck/internal/adapters/render/roster"
)

func newPlayersCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "players",
		Short: "Print the player roster",
		RunE: func(cmd *cobra.Command, _ []string) error {
			players, err := app.roster.Players(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), roster.Render(players))
			return err
		},
	}
}
