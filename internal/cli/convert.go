package cli

import (
	"github.com/spf13/cobra"

	"github.com/EdJoPaTo/edc/internal/converter"
	"github.com/EdJoPaTo/edc/internal/db"
	"github.com/EdJoPaTo/edc/internal/history"
	"github.com/EdJoPaTo/edc/internal/plan"
	"github.com/EdJoPaTo/edc/internal/utils"
	"github.com/EdJoPaTo/edc/internal/workflow"
)

func newConvertCmd(app *App, info converter.Info) *cobra.Command {
	var opts converter.Options

	cmd := &cobra.Command{
		Use:     info.Name + " FILE...",
		Aliases: info.Aliases,
		Short:   info.Short,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.convert(cmd, info, opts, args)
		},
	}

	switch info.Kind {
	case converter.Photo:
		cmd.Flags().BoolVarP(&opts.Strip, "strip", "s", false, "Strip the file of metadata")
		cmd.Flags().BoolVarP(&opts.Resize, "resize", "r", false, "Resize the image to fit into the resize size")
		cmd.Flags().StringVar(&opts.ResizeSize, "resize-size", app.Config.ResizeSize, "ImageMagick geometry used with --resize")
		cmd.Flags().BoolVar(&opts.AutoOrient, "auto-orient", false, "rotate according to the EXIF orientation before converting")
	case converter.Screenshot:
		cmd.Flags().BoolVarP(&opts.Strip, "strip", "s", false, "Strip the file of metadata")
		cmd.Flags().BoolVar(&opts.Pedantic, "pedantic", false, "take considerably more effort to get small file size")
	}

	return cmd
}

func (a *App) convert(cmd *cobra.Command, info converter.Info, opts converter.Options, args []string) error {
	if err := utils.ValidateInputs(args); err != nil {
		return err
	}

	recipe := converter.Recipe{Kind: info.Kind, Options: opts, Tools: a.tools()}
	p, err := plan.Build(recipe, recipe.Probe(args))
	if err != nil {
		return err
	}
	a.Log.Debug("Planned %d commands for %d %s inputs", p.Len(), len(args), info.Name)

	executor := workflow.NewExecutor(a.Runner, cmd.OutOrStdout(), a.Log.Named("workflow"))
	if a.dryRun {
		executor.DryRun(p)
		return nil
	}

	result, runErr := executor.Execute(cmd.Context(), p)
	a.record(info.Name, result, runErr)
	return runErr
}

// record stores the run when history is enabled. Failing to record never
// fails the conversion.
func (a *App) record(recipe string, result *workflow.ExecutionResult, runErr error) {
	if a.historyDB == "" {
		return
	}
	log := a.Log.Named("history")

	database, err := db.Open(a.historyDB)
	if err != nil {
		log.Warn("Failed to open history database: %v", err)
		return
	}
	defer database.Close()

	run, err := history.NewRecorder(database, a.Config.MD5ChunkSize, log).Record(recipe, result, runErr)
	if err != nil {
		log.Warn("Failed to record run: %v", err)
		return
	}
	log.Info("Recorded run %s", run.ID)
}
