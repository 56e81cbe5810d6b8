package commands

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/concave-dev/namegen/cmd/namegen/config"
	"github.com/concave-dev/namegen/internal/logging"
	"github.com/concave-dev/namegen/internal/names"
	"github.com/concave-dev/namegen/internal/version"
	"github.com/spf13/cobra"
)

const rootLong = `namegen renders a random name from FORMAT and prints it.

Literal text is copied as is. Escapes start with '%' or '@', take an
optional '-' flag and a width, and end in one specifier:

  %N %A %C   noun, adjective, color from the corpus
             right-aligned to width with '.', '-' left-aligns
  %d %x %X   random decimal, hex, upper-case hex digits (width = count)
  %l %L      random lower- or upper-case letters (width = count)
  @Y @m @d   current date/time field, any strftime letter of:
             Y C y q m b B d a A w u U W G g V j D x F v H I P p M S f R T X r Z z + s
  %% @@      a literal '%' or '@'

Word lists are files named noun, adjective and color in the corpus
directory, one entry per line. Run 'namegen corpus init' to create a
starter corpus.`

// NewRootCmd builds the namegen command tree with flags bound to
// config.Global.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "namegen [flags] FORMAT",
		Short:         "Render random human-readable names from a format template",
		Long:          rootLong,
		Version:       version.NamegenVersion,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true, // Don't show usage on errors
		SilenceErrors: true, // main reports the error once
		Example: `  # Adjective, noun and four hex digits
  namegen '%A-%N-%4x'

  # Date-stamped build name
  namegen '@Y@m@d-%C-%N'

  # Fixed-width columns
  namegen '[%-10A|%10N]'

  # Reproducible output
  namegen --seed=42 '%A %N'`,
		PersistentPreRunE: prepareConfig,
		RunE:              runRender,
	}

	SetupFlags(cmd)
	cmd.AddCommand(newCorpusCmd())
	return cmd
}

// prepareConfig resolves and validates config.Global before any command runs.
func prepareConfig(cmd *cobra.Command, args []string) error {
	// Check which flags were explicitly set by user
	CheckExplicitFlags(cmd)

	// Configure logging level immediately after flags are parsed
	logging.SetLevel(config.Global.LogLevel)
	if err := config.InitializeConfig(); err != nil {
		return err
	}
	if err := config.ValidateConfig(); err != nil {
		return err
	}
	// Re-apply after environment and file overrides
	logging.SetLevel(config.Global.LogLevel)
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	format, err := config.ResolveFormat(args)
	if err != nil {
		return err
	}

	if config.Global.Check {
		if err := names.Validate(format); err != nil {
			return err
		}
		logging.Success("Format %q is valid", format)
		return nil
	}

	corpus := names.NewCorpus(config.Global.CorpusDir)
	renderer := names.NewRenderer(corpus, newRand(config.Global.Seed), time.Now)

	out := bufio.NewWriter(cmd.OutOrStdout())
	if err := renderer.Render(out, format); err != nil {
		// Whatever rendered before the failure is still printed.
		_ = out.Flush()
		return err
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// newRand returns a PCG source seeded with seed, or with fresh random bits
// when seed is nil.
func newRand(seed *uint64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(*seed, *seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
