package pipeline

import (
	"time"

	"github.com/agentstation/swatchmap/pkg/errors"
	"github.com/agentstation/swatchmap/pkg/sources"
	"github.com/agentstation/swatchmap/pkg/swatches"
)

// SourceLog records what one source contributed to a run.
type SourceLog struct {
	Locator   sources.Locator
	Attempted int
	Added     int
	Failed    bool
	Err       error
}

// Reason classifies why a failed source could not be fetched. It is empty
// for sources that were fetched.
func (l SourceLog) Reason() string {
	if !l.Failed {
		return ""
	}
	switch {
	case errors.IsTimeout(l.Err):
		return "timeout"
	case errors.IsRateLimited(l.Err):
		return "rate limited"
	case errors.IsSourceUnavailable(l.Err):
		return "server error"
	case errors.IsNotFound(l.Err):
		return "not found"
	case errors.Is(l.Err, errors.ErrEmptySource):
		return "empty"
	case errors.Is(l.Err, errors.ErrResponseTooLarge):
		return "too large"
	case errors.IsCanceled(l.Err):
		return "canceled"
	default:
		return "unreachable"
	}
}

// Result is the outcome of a run: the merged dataset sorted by hex and one
// log record per source, in input order.
type Result struct {
	Swatches []swatches.Swatch
	Sources  []SourceLog
	Duration time.Duration
}

// TotalAttempted sums the items parsed across all sources. Failed sources
// count as zero.
func (r *Result) TotalAttempted() int {
	total := 0
	for _, s := range r.Sources {
		total += s.Attempted
	}
	return total
}

// TotalAdded returns the size of the merged dataset.
func (r *Result) TotalAdded() int {
	return len(r.Swatches)
}

// Failed returns the log records of sources that could not be fetched.
func (r *Result) Failed() []SourceLog {
	var failed []SourceLog
	for _, s := range r.Sources {
		if s.Failed {
			failed = append(failed, s)
		}
	}
	return failed
}

// RateLimited counts the sources rejected with HTTP 429.
func (r *Result) RateLimited() int {
	n := 0
	for _, s := range r.Sources {
		if s.Failed && errors.IsRateLimited(s.Err) {
			n++
		}
	}
	return n
}
