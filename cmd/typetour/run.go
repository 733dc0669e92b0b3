// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/typetour/internal/tour"
	"github.com/pdiddy/typetour/internal/transcript"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Print the type tour",
	Long: `Run evaluates the tour top to bottom and prints one line per step:
annotated scalars, the greeting for a record with an optional age, and the
results of the generic identity function. With --record the printed lines
are also stored in the transcript database.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadTourConfig(viper.GetViper())
		if err != nil {
			return err
		}

		steps := tour.New(cfg.Greet, logger).Steps()
		if err := tour.Render(cmd.OutOrStdout(), steps, cfg.Format); err != nil {
			return err
		}

		if !cfg.Record.Enabled {
			return nil
		}
		store, err := transcript.NewStore(cfg.Record)
		if err != nil {
			return err
		}
		defer store.Close()

		run, err := store.Record(cmd.Context(), cfg.Format, tour.Lines(steps))
		if err != nil {
			return fmt.Errorf("recording run: %w", err)
		}
		logger.Debug("recorded run", zap.String("run_id", run.ID), zap.Int("lines", run.LineCount))
		fmt.Fprintf(cmd.ErrOrStderr(), "Recorded run %s\n", run.ID)
		return nil
	},
}

func init() {
	runCmd.Flags().String("format", "text", "output format: text or yaml")
	runCmd.Flags().String("name", "", "name of the greeted person (default Gaurav)")
	runCmd.Flags().Int("age", 0, "age of the greeted person; unset leaves it undefined")
	runCmd.Flags().Bool("record", false, "store the printed lines in the transcript database")

	_ = viper.BindPFlag("output.format", runCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("greet.name", runCmd.Flags().Lookup("name"))
	_ = viper.BindPFlag("greet.age", runCmd.Flags().Lookup("age"))
	_ = viper.BindPFlag("record.enabled", runCmd.Flags().Lookup("record"))

	rootCmd.AddCommand(runCmd)
}
