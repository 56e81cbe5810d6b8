package commands

import (
	"fmt"
	"strings"

	"github.com/concave-dev/namegen/cmd/namegen/config"
	"github.com/concave-dev/namegen/internal/logging"
	"github.com/concave-dev/namegen/internal/names"
	"github.com/spf13/cobra"
)

func newCorpusCmd() *cobra.Command {
	corpusCmd := &cobra.Command{
		Use:   "corpus",
		Short: "Manage the word-list corpus",
		Args:  cobra.NoArgs,
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write starter noun, adjective and color lists into the corpus directory",
		Long: `Write starter noun, adjective and color lists into the corpus directory.

Existing lists are kept unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCorpusInit(force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite existing word lists")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the corpus directory in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), config.Global.CorpusDir)
			return err
		},
	}

	corpusCmd.AddCommand(initCmd, pathCmd)
	return corpusCmd
}

func runCorpusInit(force bool) error {
	dir := config.Global.CorpusDir
	logging.Info("Writing starter word lists to %s", dir)
	written, err := names.InitCorpus(dir, force)
	if err != nil {
		return err
	}
	if len(written) == 0 {
		logging.Warn("Corpus in %s already has every list, use --force to overwrite", dir)
		return nil
	}
	logging.Success("Wrote %s to %s", strings.Join(written, ", "), dir)
	return nil
}
