// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the typetour CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/typetour/internal/transcript"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built in PersistentPreRunE and synced after every command.
var logger = zap.NewNop()

// rootCmd is the base command for the typetour CLI.
var rootCmd = &cobra.Command{
	Use:   "typetour",
	Short: "A guided tour of annotations, records, generics and unions",
	Long: `typetour prints a fixed sequence of small type-system demonstrations:
annotated scalars, a record with an optional field, a generic identity
function instantiated at several types, and a formatter constrained to a
union of text and numbers.

Use "typetour run" for the tour itself; add and format evaluate single
operations; history lists runs recorded with --record.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if viper.GetBool("verbose") {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./typetour.yaml or ~/.config/typetour/typetour.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log every evaluated statement at debug level")
	rootCmd.PersistentFlags().String("db", transcript.DefaultDBPath, "transcript database path")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("record.db", rootCmd.PersistentFlags().Lookup("db"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("typetour")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "typetour"))
		}
	}

	viper.SetEnvPrefix("TYPETOUR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
