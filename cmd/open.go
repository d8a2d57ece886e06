package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/termdeck/termdeck/internal/adapters/tui"
)

func newOpenCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "Open the terminal overlay",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if err := runBootSpinner(ctx, cmd.ErrOrStderr(), app.bootstrap.Run); err != nil {
				return err
			}

			if err := app.watcher.Start(ctx); err != nil {
				app.logger.Warn("start file watcher", "error", err)
			}
			defer app.watcher.Stop()

			model := tui.NewModel(
				app.screen,
				app.session,
				app.mail,
				app.journal,
				app.roster,
				app.userID,
				app.cfg.GetDuration("refresh.interval"),
				app.logger,
			)

			p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(cmd.OutOrStdout()))
			_, err := p.Run()
			return err
		},
	}
}
