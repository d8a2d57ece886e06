package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "termdeck",
		Short:         "termdeck: retro terminal overlay for the virtual tabletop",
		Long:          "termdeck skins the virtual-tabletop host with a retro terminal interface: recent PC records, mail, journal and the player roster, kept in sync with the host data store.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newOpenCmd(app),
		newRecordsCmd(app),
		newMailCmd(app),
		newPlayersCmd(app),
	)

	return rootCmd
}
