// Package nearest implements the nearest command, which looks up the
// dataset swatches closest to a color.
package nearest

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/swatchmap/cmd/application"
	"github.com/agentstation/swatchmap/internal/cmd/output"
	"github.com/agentstation/swatchmap/pkg/constants"
	"github.com/agentstation/swatchmap/pkg/errors"
	"github.com/agentstation/swatchmap/pkg/logging"
	"github.com/agentstation/swatchmap/pkg/nearest"
)

// Flags holds the nearest command flags.
type Flags struct {
	Library   string
	Method    string
	Threshold float64
	Limit     int
	CSV       string
}

// NewCommand creates the nearest command.
func NewCommand(app application.Application) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "nearest <hex>",
		GroupID: "core",
		Short:   "Find the swatches closest to a color",
		Long: `Nearest ranks the swatches in a library by perceptual distance (ΔE) to
the given 6-digit hex color and prints the closest ones.

The library is a dataset written by build, or any JSON/CSV color list.
CIEDE2000 is used by default; --method cie76 selects the simpler
Euclidean Lab distance.`,
		Example: `  swatchmap nearest "#1E90FF"
  swatchmap nearest 1e90ff --threshold 10 --limit 3
  swatchmap nearest 1e90ff --method cie76 --csv pantone_nearest.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("library") && app.Settings().LibraryPath != "" {
				flags.Library = app.Settings().LibraryPath
			}
			return run(cmd, app, flags, args[0])
		},
	}

	cmd.Flags().StringVar(&flags.Library, "library", constants.DefaultDatasetPath, "swatch library (dataset JSON or CSV)")
	cmd.Flags().StringVar(&flags.Method, "method", string(nearest.MethodCIEDE2000), "distance method: ciede2000, cie76")
	cmd.Flags().Float64Var(&flags.Threshold, "threshold", constants.DefaultMatchThreshold, "maximum ΔE to include")
	cmd.Flags().IntVar(&flags.Limit, "limit", constants.DefaultMatchLimit, "maximum number of matches")
	cmd.Flags().StringVar(&flags.CSV, "csv", "", "also export matches to this CSV file")

	return cmd
}

func run(cmd *cobra.Command, app application.Application, flags *Flags, query string) error {
	logger := logging.Ctx(logging.WithOperation(cmd.Context(), "nearest"))

	method, err := nearest.ParseMethod(flags.Method)
	if err != nil {
		return err
	}

	library, err := nearest.LoadLibrary(flags.Library)
	if err != nil {
		return err
	}
	logger.Debug().Int("swatches", len(library)).Str("library", flags.Library).Msg("loaded library")

	matches, err := nearest.Find(query, library,
		nearest.WithMethod(method),
		nearest.WithThreshold(flags.Threshold),
		nearest.WithLimit(flags.Limit),
	)
	if err != nil {
		return err
	}

	if flags.CSV != "" {
		if err := writeCSV(flags.CSV, matches); err != nil {
			return err
		}
		logger.Info().Str("file", flags.CSV).Int("matches", len(matches)).Msg("exported matches")
	}

	if len(matches) == 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "no swatches within ΔE %.2f of %s\n", flags.Threshold, query)
		return nil
	}

	format := output.DetectFormat(app.OutputFormat())
	return output.FormatMatches(cmd.OutOrStdout(), matches, format)
}

func writeCSV(path string, matches []nearest.Match) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.WrapIO("close", path, cerr)
		}
	}()

	if err := nearest.WriteCSV(f, matches); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
