package output

import (
	"io"

	"github.com/agentstation/swatchmap/internal/cmd/table"
	"github.com/agentstation/swatchmap/pkg/nearest"
	"github.com/agentstation/swatchmap/pkg/pipeline"
	"github.com/agentstation/swatchmap/pkg/swatches"
)

// MatchView is the structured form of a nearest match.
type MatchView struct {
	Pantone  string  `json:"pantone,omitempty" yaml:"pantone,omitempty"`
	Hex      string  `json:"hex" yaml:"hex"`
	Name     string  `json:"name,omitempty" yaml:"name,omitempty"`
	Distance float64 `json:"deltaE" yaml:"deltaE"`
}

// SourceView is the structured form of a source log record.
type SourceView struct {
	Locator   string `json:"locator" yaml:"locator"`
	Attempted int    `json:"attempted" yaml:"attempted"`
	Added     int    `json:"added" yaml:"added"`
	Failed    bool   `json:"failed,omitempty" yaml:"failed,omitempty"`
	Reason    string `json:"reason,omitempty" yaml:"reason,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

// FormatSwatches writes a dataset in the given format.
func FormatSwatches(w io.Writer, list []swatches.Swatch, format Format) error {
	var data any = list
	if isTable(format) {
		data = table.SwatchesToTableData(list)
	}
	return NewFormatter(format).Format(w, data)
}

// FormatMatches writes nearest matches in the given format.
func FormatMatches(w io.Writer, matches []nearest.Match, format Format) error {
	if isTable(format) {
		return NewFormatter(format).Format(w, table.MatchesToTableData(matches))
	}

	views := make([]MatchView, 0, len(matches))
	for _, m := range matches {
		views = append(views, MatchView{
			Pantone:  m.Swatch.Pantone,
			Hex:      m.Swatch.Hex,
			Name:     m.Swatch.Name,
			Distance: m.Distance,
		})
	}
	return NewFormatter(format).Format(w, views)
}

// FormatSources writes the per-source build summary in the given format.
func FormatSources(w io.Writer, logs []pipeline.SourceLog, format Format) error {
	if isTable(format) {
		return NewFormatter(format).Format(w, table.SourcesToTableData(logs))
	}

	views := make([]SourceView, 0, len(logs))
	for _, s := range logs {
		v := SourceView{
			Locator:   s.Locator.String(),
			Attempted: s.Attempted,
			Added:     s.Added,
			Failed:    s.Failed,
			Reason:    s.Reason(),
		}
		if s.Err != nil {
			v.Error = s.Err.Error()
		}
		views = append(views, v)
	}
	return NewFormatter(format).Format(w, views)
}

func isTable(format Format) bool {
	return format == FormatTable || format == ""
}
