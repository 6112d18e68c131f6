// Package build implements the build command, which merges the configured
// sources into the dataset and writes the sources log.
package build

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentstation/swatchmap"
	"github.com/agentstation/swatchmap/cmd/application"
	"github.com/agentstation/swatchmap/internal/cmd/emoji"
	"github.com/agentstation/swatchmap/internal/cmd/output"
	"github.com/agentstation/swatchmap/internal/transport"
	"github.com/agentstation/swatchmap/pkg/constants"
	"github.com/agentstation/swatchmap/pkg/logging"
)

// Flags holds the build command flags.
type Flags struct {
	Sources   string
	Out       string
	Log       string
	Timeout   time.Duration
	UserAgent string
	Rate      float64
	YAML      bool
	Summary   bool
}

// NewCommand creates the build command.
func NewCommand(app application.Application) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "build",
		GroupID: "core",
		Short:   "Merge the listed sources into a normalized dataset",
		Long: `Build reads one locator per line from the sources file (HTTP(S) URLs or
local paths; blank lines and lines starting with # are skipped), fetches
each source, and merges every record that carries a usable hex color.

Hex values are normalized to #RRGGBB. The first source to provide a hex
value wins; later duplicates are dropped. The dataset is written sorted by
hex, and a Markdown log records how many items each source offered and
contributed. Sources that cannot be fetched are logged as failed and do
not stop the build.`,
		Example: `  swatchmap build
  swatchmap build --sources lists.txt --out data/pantone.json --log data/sources-log.md
  swatchmap build --timeout 5s --rate 2 --yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolveFlags(cmd, flags, app.Settings())
			return run(cmd, app, flags)
		},
	}

	cmd.Flags().StringVar(&flags.Sources, "sources", constants.DefaultSourcesPath, "file listing source URLs or paths, one per line")
	cmd.Flags().StringVar(&flags.Out, "out", constants.DefaultDatasetPath, "dataset output path")
	cmd.Flags().StringVar(&flags.Log, "log", constants.DefaultSourcesLogPath, "sources log output path")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", constants.DefaultFetchTimeout, "timeout for each remote fetch")
	cmd.Flags().StringVar(&flags.UserAgent, "user-agent", constants.DefaultUserAgent, "User-Agent sent to remote sources")
	cmd.Flags().Float64Var(&flags.Rate, "rate", constants.DefaultFetchRate, "maximum remote requests per second (0 = unlimited)")
	cmd.Flags().BoolVar(&flags.YAML, "yaml", false, "also write the dataset as YAML next to --out")
	cmd.Flags().BoolVar(&flags.Summary, "summary", false, "print a per-source summary after the build")

	return cmd
}

// resolveFlags fills flags the user did not set from configuration.
func resolveFlags(cmd *cobra.Command, flags *Flags, s application.Settings) {
	set := cmd.Flags().Changed
	if !set("sources") && s.SourcesPath != "" {
		flags.Sources = s.SourcesPath
	}
	if !set("out") && s.DatasetPath != "" {
		flags.Out = s.DatasetPath
	}
	if !set("log") && s.SourcesLogPath != "" {
		flags.Log = s.SourcesLogPath
	}
	if !set("timeout") && s.FetchTimeout > 0 {
		flags.Timeout = s.FetchTimeout
	}
	if !set("user-agent") && s.UserAgent != "" {
		flags.UserAgent = s.UserAgent
	}
	if !set("rate") {
		flags.Rate = s.FetchRate
	}
}

func run(cmd *cobra.Command, app application.Application, flags *Flags) error {
	ctx := logging.WithOperation(logging.WithRunID(cmd.Context()), "build")
	logger := logging.Ctx(ctx)

	fetcher := app.Fetcher(
		transport.WithTimeout(flags.Timeout),
		transport.WithUserAgent(flags.UserAgent),
		transport.WithRate(flags.Rate),
	)

	builder, err := swatchmap.New(
		swatchmap.WithSourcesFile(flags.Sources),
		swatchmap.WithDatasetPath(flags.Out),
		swatchmap.WithSourcesLogPath(flags.Log),
		swatchmap.WithYAML(flags.YAML),
		swatchmap.WithFetcher(fetcher),
	)
	if err != nil {
		return err
	}

	result, err := builder.Build(ctx)
	if err != nil {
		return err
	}

	if failed := len(result.Failed()); failed > 0 {
		logger.Warn().Int("failed", failed).Int("rate_limited", result.RateLimited()).Msg("some sources could not be fetched")
		if !app.Settings().Quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %d of %d sources failed; see %s\n", emoji.Warning, failed, len(result.Sources), flags.Log)
			if limited := result.RateLimited(); limited > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %d rejected with HTTP 429; retry with a lower --rate\n", emoji.Warning, limited)
			}
		}
	}

	if flags.Summary {
		format := output.DetectFormat(app.OutputFormat())
		if err := output.FormatSources(cmd.OutOrStdout(), result.Sources, format); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "generated %s with %d entries. Log at %s\n", flags.Out, result.TotalAdded(), flags.Log)
	return nil
}
