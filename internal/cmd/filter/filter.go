// Package filter narrows swatch lists for display.
package filter

import (
	"strings"

	"github.com/agentstation/swatchmap/pkg/swatches"
)

// SwatchFilter applies filters to swatch lists.
type SwatchFilter struct {
	Search string // Case-insensitive substring of hex, pantone, or name
}

// Apply filters a slice of swatches.
func (f *SwatchFilter) Apply(list []swatches.Swatch) []swatches.Swatch {
	if f == nil || f.isEmpty() {
		return list
	}

	term := strings.ToLower(strings.TrimSpace(f.Search))
	filtered := make([]swatches.Swatch, 0, len(list))
	for _, s := range list {
		if f.matches(s, term) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

func (f *SwatchFilter) isEmpty() bool {
	return strings.TrimSpace(f.Search) == ""
}

func (f *SwatchFilter) matches(s swatches.Swatch, term string) bool {
	return strings.Contains(strings.ToLower(s.Hex), term) ||
		strings.Contains(strings.ToLower(s.Pantone), term) ||
		strings.Contains(strings.ToLower(s.Name), term)
}
