// Package commands contains Cobra CLI command definitions for namegen.
//
// This package builds the command tree, binds flags to the global
// configuration and turns a resolved configuration into one rendered name.
//
// COMMAND ARCHITECTURE:
//   - Root Command: renders FORMAT (or the configured format) and prints it
//   - Check Mode: --check validates FORMAT without reading the corpus
//   - Corpus Commands: init seeds starter word lists, path prints the directory
//
// CONFIGURATION FLOW:
// 1. Flags are bound to config.Global with built-in defaults
// 2. CheckExplicitFlags records which flags the user actually set
// 3. config.Resolve layers the config file and NAMEGEN_ environment under them
// 4. config.ValidateConfig normalizes and validates the result
// 5. The logger level is applied before any command runs
//
// Errors are returned to Cobra rather than logged here so main can decide
// the exit code.
package commands

import (
	"github.com/concave-dev/namegen/cmd/namegen/config"
	"github.com/spf13/cobra"
)

// seedFlag receives --seed; it is copied into config.Global.Seed only when
// the user set it.
var seedFlag uint64

// SetupFlags configures all command line flags for the root command
func SetupFlags(cmd *cobra.Command) {
	// Corpus flags
	cmd.PersistentFlags().StringVar(&config.Global.CorpusDir, "corpus", config.Defaults().CorpusDir,
		"Directory holding the noun, adjective and color word lists")
	cmd.PersistentFlags().StringVar(&config.Global.ConfigFile, "config", "",
		"YAML config file (keys: format, corpus, log_level, seed)")

	// Render flags
	cmd.Flags().Uint64Var(&seedFlag, "seed", 0,
		"Seed the random source for reproducible output (default: random)")
	cmd.Flags().BoolVar(&config.Global.Check, "check", false,
		"Only check the format for syntax and unknown specifiers, print nothing")

	// Operational flags
	cmd.PersistentFlags().StringVar(&config.Global.LogLevel, "log-level", config.DefaultLogLevel,
		"Log level: DEBUG, INFO, WARN, ERROR")
}

// CheckExplicitFlags checks if flags were explicitly set by the user
func CheckExplicitFlags(cmd *cobra.Command) {
	config.Global.SetExplicitlySet(config.CorpusField, cmd.Flags().Changed("corpus"))
	config.Global.SetExplicitlySet(config.LogLevelField, cmd.Flags().Changed("log-level"))

	seedSet := cmd.Flags().Changed("seed")
	config.Global.SetExplicitlySet(config.SeedField, seedSet)
	if seedSet {
		seed := seedFlag
		config.Global.Seed = &seed
	}
}
