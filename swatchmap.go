// Package swatchmap builds a normalized color swatch dataset from a list of
// heterogeneous sources.
//
// A build reads the source list, fetches each source in order, merges every
// record carrying a usable hex color (first occurrence wins), and writes the
// dataset sorted by hex together with a Markdown log of what each source
// contributed:
//
//	b, err := swatchmap.New(
//	    swatchmap.WithSourcesFile("scripts/sources.txt"),
//	    swatchmap.WithDatasetPath("pantone_full.json"),
//	)
//	if err != nil {
//	    return err
//	}
//	result, err := b.Build(ctx)
package swatchmap

import (
	"context"
	"strings"

	"github.com/agentstation/swatchmap/pkg/logging"
	"github.com/agentstation/swatchmap/pkg/pipeline"
	"github.com/agentstation/swatchmap/pkg/report"
	"github.com/agentstation/swatchmap/pkg/sources"
)

// Builder runs builds with a fixed configuration.
type Builder struct {
	cfg config
}

// New creates a Builder.
func New(opts ...Option) (*Builder, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return &Builder{cfg: cfg}, nil
}

// DatasetPath returns where the dataset is written.
func (b *Builder) DatasetPath() string {
	return b.cfg.datasetPath
}

// SourcesLogPath returns where the sources log is written.
func (b *Builder) SourcesLogPath() string {
	return b.cfg.sourcesLogPath
}

// YAMLPath returns where the YAML dataset is written when enabled.
func (b *Builder) YAMLPath() string {
	if base, ok := strings.CutSuffix(b.cfg.datasetPath, ".json"); ok {
		return base + ".yaml"
	}
	return b.cfg.datasetPath + ".yaml"
}

// Build runs the pipeline and writes its outputs. A missing sources file
// aborts before anything is fetched or written. Per-source failures are
// recorded in the result and the log; they do not fail the build.
func (b *Builder) Build(ctx context.Context) (*pipeline.Result, error) {
	logger := logging.Ctx(ctx)

	locators := b.cfg.locators
	if locators == nil {
		var err error
		locators, err = sources.LoadLocators(b.cfg.sourcesPath)
		if err != nil {
			return nil, err
		}
		logger.Debug().Int("sources", len(locators)).Str("file", b.cfg.sourcesPath).Msg("loaded source list")
	}

	fetcher := b.cfg.fetcher
	if fetcher == nil {
		fetcher = sources.NewFetcher(nil)
	}

	var opts []pipeline.Option
	if b.cfg.onSource != nil {
		opts = append(opts, pipeline.WithSourceCallback(b.cfg.onSource))
	}

	result, err := pipeline.Run(ctx, locators, fetcher, opts...)
	if err != nil {
		return nil, err
	}

	if err := report.WriteDataset(b.cfg.datasetPath, result.Swatches); err != nil {
		return nil, err
	}
	if b.cfg.writeYAML {
		if err := report.WriteDatasetYAML(b.YAMLPath(), result.Swatches); err != nil {
			return nil, err
		}
	}
	if err := report.WriteSourcesLog(b.cfg.sourcesLogPath, result); err != nil {
		return nil, err
	}

	logger.Info().
		Str("out", b.cfg.datasetPath).
		Int("entries", result.TotalAdded()).
		Int("failed_sources", len(result.Failed())).
		Msg("dataset written")

	return result, nil
}
