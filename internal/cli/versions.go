package cli

import (
	"github.com/spf13/cobra"

	"github.com/EdJoPaTo/edc/internal/tools"
)

func newVersionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "Check versions of all tools used",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tools.CheckVersions(cmd.Context(), cmd.OutOrStdout(), tools.VersionCommands(app.tools()))
			return nil
		},
	}
}
