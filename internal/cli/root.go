// Package cli wires the recipes, planning and execution into a cobra command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/EdJoPaTo/edc/internal/config"
	"github.com/EdJoPaTo/edc/internal/converter"
	"github.com/EdJoPaTo/edc/internal/logging"
	"github.com/EdJoPaTo/edc/internal/workflow"
)

// App holds everything the commands share
type App struct {
	Config  *config.Config
	Log     *logging.Logger
	Runner  workflow.Runner
	Version string

	dryRun    bool
	historyDB string
}

// NewApp creates an app running commands as child processes
func NewApp(cfg *config.Config, logger *logging.Logger, version string) *App {
	return &App{
		Config:  cfg,
		Log:     logger,
		Runner:  workflow.NewExecRunner(),
		Version: version,
	}
}

// NewRootCmd builds the command tree. Errors are returned to the caller
// unprinted.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:     "edc",
		Short:   "EdC - EdJoPaTos Converter",
		Long:    "Converts media files into a few opinionated formats by running convert, ffmpeg or oxipng.\nResults are written below ./converted/ keeping the relative directory of each input.",
		Version: app.Version,

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&app.dryRun, "dry-run", false, "dont execute any commands and print them to stdout")
	root.PersistentFlags().StringVar(&app.historyDB, "history-db", app.Config.HistoryDB, "record executed runs in this sqlite database")

	root.AddCommand(newVersionsCmd(app))
	for _, info := range converter.Builtins() {
		root.AddCommand(newConvertCmd(app, info))
	}
	root.AddCommand(newHistoryCmd(app))

	return root
}

func (a *App) tools() converter.Tools {
	return converter.Tools{
		Convert: a.Config.Tools.Convert,
		FFmpeg:  a.Config.Tools.FFmpeg,
		Oxipng:  a.Config.Tools.Oxipng,
	}
}
