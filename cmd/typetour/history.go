// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/typetour/internal/transcript"
	"github.com/pdiddy/typetour/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded tour runs",
	Long: `History lists the runs stored by "typetour run --record", newest first.
With --run it prints the lines of one run; --yaml exports that run as YAML.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadTourConfig(viper.GetViper())
		if err != nil {
			return err
		}
		runID, _ := cmd.Flags().GetString("run")
		asYAML, _ := cmd.Flags().GetBool("yaml")
		w := cmd.OutOrStdout()

		store, err := transcript.OpenStore(cfg.Record)
		if errors.Is(err, transcript.ErrNoDatabase) {
			if runID != "" {
				return fmt.Errorf("%w: %s", transcript.ErrRunNotFound, runID)
			}
			renderRuns(w, nil)
			return nil
		}
		if err != nil {
			return err
		}
		defer store.Close()

		if runID == "" {
			runs, err := store.Runs(cmd.Context())
			if err != nil {
				return err
			}
			renderRuns(w, runs)
			return nil
		}

		if asYAML {
			return store.ExportYAML(cmd.Context(), runID, w)
		}
		run, err := store.Run(cmd.Context(), runID)
		if err != nil {
			return err
		}
		renderLines(w, run.Lines)
		return nil
	},
}

func renderRuns(w io.Writer, runs []types.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "(no recorded runs)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Run", "Started", "Format", "Lines"})
	for _, r := range runs {
		t.AppendRow(table.Row{r.ID, r.StartedAt.Local().Format(time.DateTime), r.Format, r.LineCount})
	}
	t.Render()
}

func renderLines(w io.Writer, lines []types.Line) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Section", "Name", "Output"})
	for _, l := range lines {
		t.AppendRow(table.Row{l.Seq, l.Section, l.Name, l.Text})
	}
	t.Render()
}

func init() {
	historyCmd.Flags().Int("max-runs", 20, "maximum number of runs to list")
	historyCmd.Flags().String("run", "", "print the lines of this run")
	historyCmd.Flags().Bool("yaml", false, "export the selected run as YAML")

	_ = viper.BindPFlag("record.max_runs", historyCmd.Flags().Lookup("max-runs"))

	rootCmd.AddCommand(historyCmd)
}
