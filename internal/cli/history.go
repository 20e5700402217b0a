package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/EdJoPaTo/edc/internal/converter"
	"github.com/EdJoPaTo/edc/internal/db"
)

var ErrHistoryDisabled = errors.New("history is disabled, set EDC_HISTORY_DB or --history-db")

func newHistoryCmd(app *App) *cobra.Command {
	var (
		limit  int
		recipe string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently executed runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.historyDB == "" {
				return ErrHistoryDisabled
			}

			if recipe != "" {
				info, err := converter.Lookup(recipe)
				if err != nil {
					return err
				}
				recipe = info.Name
			}

			database, err := db.Open(app.historyDB)
			if err != nil {
				return err
			}
			defer database.Close()

			runs, err := database.ListRuns(limit, recipe)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tRECIPE\tSTATUS\tSTEPS\tSTARTED\tDURATION")
			for _, run := range runs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d\t%s\t%s\n",
					run.ID,
					run.Recipe,
					run.Status,
					run.Completed,
					run.Total,
					run.StartTime.Local().Format("2006-01-02 15:04:05"),
					time.Duration(run.DurationMs)*time.Millisecond,
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to show, 0 for all")
	cmd.Flags().StringVar(&recipe, "recipe", "", "only show runs of this recipe (name or alias)")
	return cmd
}
