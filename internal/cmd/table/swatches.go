// Package table converts swatch data into rows for CLI tables.
package table

import (
	"strconv"

	"github.com/agentstation/swatchmap/internal/cmd/emoji"
	"github.com/agentstation/swatchmap/pkg/nearest"
	"github.com/agentstation/swatchmap/pkg/pipeline"
	"github.com/agentstation/swatchmap/pkg/swatches"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// SwatchesToTableData converts a dataset to table format.
func SwatchesToTableData(list []swatches.Swatch) Data {
	rows := make([][]string, 0, len(list))
	for _, s := range list {
		rows = append(rows, []string{s.Hex, orDash(s.Pantone), orDash(s.Name)})
	}
	return Data{
		Headers: []string{"Hex", "Pantone", "Name"},
		Rows:    rows,
	}
}

// MatchesToTableData converts nearest matches to table format. The first
// row is the best match.
func MatchesToTableData(matches []nearest.Match) Data {
	rows := make([][]string, 0, len(matches))
	for i, m := range matches {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			orDash(m.Swatch.Label()),
			m.Swatch.Hex,
			orDash(m.Swatch.Name),
			FormatDistance(m.Distance),
		})
	}
	return Data{
		Headers:         []string{"#", "Pantone", "Hex", "Name", "ΔE"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignLeft, AlignLeft, AlignRight},
	}
}

// SourcesToTableData summarizes a build per source.
func SourcesToTableData(logs []pipeline.SourceLog) Data {
	rows := make([][]string, 0, len(logs))
	for _, s := range logs {
		status, added := emoji.Success, strconv.Itoa(s.Added)
		if s.Failed {
			status, added = emoji.Error, "failed"
		}
		rows = append(rows, []string{status, s.Locator.String(), strconv.Itoa(s.Attempted), added, orDash(s.Reason())})
	}
	return Data{
		Headers:         []string{"", "Source", "Attempted", "Added", "Reason"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignCenter, AlignLeft, AlignRight, AlignRight, AlignLeft},
	}
}

// FormatDistance renders a color difference with two decimals.
func FormatDistance(d float64) string {
	return strconv.FormatFloat(d, 'f', 2, 64)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
