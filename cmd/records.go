package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/termdeck/termdeck/internal/adapters/render/console"
)

func newRecordsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "records",
		Short: "Print the recent PC records list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if theme, err := app.themes.Load(app.themeName); err == nil {
				app.screen.ApplyTheme(theme)
				app.reconciler.ApplyTheme(theme)
			} else {
				app.logger.Warn("load theme", "theme", app.themeName, "error", err)
			}

			app.reconciler.ReconcileRecentEntries(ctx)

			_, err := fmt.Fprintln(cmd.OutOrStdout(), app.screen.RenderSection(console.SectionRecords, -1))
			return err
		},
	}
}
