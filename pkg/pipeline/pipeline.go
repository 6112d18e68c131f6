// Package pipeline drives a build: it walks the locator list in order,
// fetches and parses each source, and merges the extracted swatches into
// one dataset where the first occurrence of a hex value wins.
package pipeline

import (
	"context"
	"sort"
	"time"

	"github.com/agentstation/swatchmap/pkg/errors"
	"github.com/agentstation/swatchmap/pkg/logging"
	"github.com/agentstation/swatchmap/pkg/sources"
	"github.com/agentstation/swatchmap/pkg/swatches"
)

// Run processes locators sequentially. A source that cannot be fetched is
// recorded as failed and skipped; it never aborts the run. The only error
// returned is a cancellation, when ctx is done between sources.
func Run(ctx context.Context, locators []sources.Locator, fetcher sources.Fetcher, opts ...Option) (*Result, error) {
	options := NewOptions(opts...)
	start := time.Now()

	result := &Result{
		Swatches: []swatches.Swatch{},
		Sources:  make([]SourceLog, 0, len(locators)),
	}
	seen := make(map[string]struct{})

	for i, loc := range locators {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapCanceled("build", err)
		}

		srcCtx := logging.WithFields(ctx, map[string]any{
			"locator": loc.String(),
			"source":  i + 1,
		})
		logger := logging.Ctx(srcCtx)
		logger.Info().Msg("processing source")
		entry := SourceLog{Locator: loc}

		text, err := fetcher.Fetch(srcCtx, loc)
		if err != nil {
			entry.Failed = true
			entry.Err = err
			logger.Warn().Err(err).Str("reason", entry.Reason()).Msg("source failed")
		} else {
			records := sources.Parse(text)
			entry.Attempted = len(records)
			entry.Added = mergeSource(records, seen, &result.Swatches)
			logger.Info().
				Int("attempted", entry.Attempted).
				Int("added", entry.Added).
				Msg("source merged")
		}

		result.Sources = append(result.Sources, entry)
		if options.OnSource != nil {
			options.OnSource(entry)
		}
	}

	sort.SliceStable(result.Swatches, func(i, j int) bool {
		return result.Swatches[i].Hex < result.Swatches[j].Hex
	})
	result.Duration = time.Since(start)

	logging.Ctx(ctx).Debug().
		Int("sources", len(result.Sources)).
		Int("attempted", result.TotalAttempted()).
		Int("entries", result.TotalAdded()).
		Dur("duration", result.Duration).
		Msg("build complete")

	return result, nil
}

// mergeSource appends the swatches from records whose hex has not been seen
// and returns how many were added.
func mergeSource(records []sources.Record, seen map[string]struct{}, out *[]swatches.Swatch) int {
	added := 0
	for _, rec := range records {
		extracted, ok := swatches.Extract(map[string]any(rec))
		if !ok {
			continue
		}
		swatch, ok := extracted.Canonicalize()
		if !ok {
			continue
		}
		if _, dup := seen[swatch.Hex]; dup {
			continue
		}
		seen[swatch.Hex] = struct{}{}
		*out = append(*out, swatch)
		added++
	}
	return added
}
