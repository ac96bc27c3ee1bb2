package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sarchlab/cachesim/datarecording"
	"github.com/sarchlab/cachesim/simulation"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "List the runs stored in a result database.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		db, _ := cmd.Flags().GetString("db")
		limit, _ := cmd.Flags().GetInt("limit")

		if _, err := os.Stat(db); err != nil {
			return err
		}

		reader, err := datarecording.NewReader(db)
		if err != nil {
			return err
		}
		defer reader.Close()

		return listRuns(cmd.Context(), reader, cmd.OutOrStdout(), limit)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().String("db", "", "The .sqlite3 file written by run.")
	inspectCmd.Flags().Int("limit", 0, "Show at most this many runs.")
	_ = inspectCmd.MarkFlagRequired("db")
}

func listRuns(
	ctx context.Context,
	reader datarecording.DataReader,
	w io.Writer,
	limit int,
) error {
	reader.MapTable(simulation.RunTable, simulation.RunEntry{})
	reader.MapTable(simulation.LevelTable, simulation.LevelEntry{})

	runs, total, err := reader.Query(ctx, simulation.RunTable,
		datarecording.QueryParams{Limit: limit})
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%d run(s) recorded\n", total)

	for _, r := range runs {
		run := r.(*simulation.RunEntry)

		fmt.Fprintf(w, "%s %-30s accesses=%d cycles=%d warm=%t completed=%t\n",
			run.RunID, run.Trace, run.Accesses, run.TotalCycles,
			run.Warm, run.Completed)

		levels, _, err := reader.Query(ctx, simulation.LevelTable,
			datarecording.QueryParams{
				Where:   "RunID = ?",
				Args:    []any{run.RunID},
				OrderBy: "Level",
			})
		if err != nil {
			return err
		}

		for _, l := range levels {
			level := l.(*simulation.LevelEntry)

			fmt.Fprintf(w, "    %-4s hit ratio %.4f  AMAT %.4f  dirty evictions %d\n",
				level.Level, level.HitRatio, level.AMAT, level.DirtyEvictions)
		}
	}

	return nil
}
