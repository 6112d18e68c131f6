// Package nearest ranks dataset swatches by perceptual distance to a
// query color.
package nearest

import (
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/agentstation/swatchmap/pkg/errors"
	"github.com/agentstation/swatchmap/pkg/sources"
	"github.com/agentstation/swatchmap/pkg/swatches"
)

var sixDigitHex = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// Match is a library swatch and its distance from the query. Distances are
// on the conventional ΔE scale, where 0 is identical.
type Match struct {
	Swatch   swatches.Swatch
	Distance float64
}

// Find returns the library swatches within the threshold of query,
// closest first. Ties keep library order. Library entries without a valid
// 6-digit hex are skipped.
func Find(query string, library []swatches.Swatch, opts ...Option) ([]Match, error) {
	o := NewOptions(opts...)

	_, q, err := parseHex(query)
	if err != nil {
		return nil, errors.NewValidationError("hex", query, "must be a 6-digit hex color such as #1E90FF")
	}

	distance, err := distanceFunc(o.Method)
	if err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(library))
	for _, s := range library {
		hex, c, err := parseHex(s.Hex)
		if err != nil {
			continue
		}
		d := distance(q, c)
		if d > o.Threshold {
			continue
		}
		s.Hex = hex
		matches = append(matches, Match{Swatch: s, Distance: d})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})
	if len(matches) > o.Limit {
		matches = matches[:o.Limit]
	}
	return matches, nil
}

// parseHex accepts a 6-digit hex with an optional '#' and returns its
// "#RRGGBB" form alongside the parsed color.
func parseHex(s string) (string, colorful.Color, error) {
	s = strings.TrimSpace(s)
	if !sixDigitHex.MatchString(s) {
		return "", colorful.Color{}, errors.ErrInvalidInput
	}
	hex := "#" + strings.ToUpper(strings.TrimPrefix(s, "#"))
	c, err := colorful.Hex(hex)
	return hex, c, err
}

func distanceFunc(m Method) (func(a, b colorful.Color) float64, error) {
	switch m {
	case MethodCIEDE2000:
		return func(a, b colorful.Color) float64 { return a.DistanceCIEDE2000(b) * 100 }, nil
	case MethodCIE76:
		return func(a, b colorful.Color) float64 { return a.DistanceLab(b) * 100 }, nil
	}
	return nil, errors.NewValidationError("method", string(m), "unsupported distance method")
}

// LoadLibrary reads a swatch library from a JSON or delimited-text file.
// Items are read with the same field heuristics used by builds, so a raw
// vendor export works as well as a built dataset.
func LoadLibrary(path string) ([]swatches.Swatch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("library", path)
		}
		return nil, errors.WrapIO("read", path, err)
	}

	records := sources.Parse(string(data))
	library := make([]swatches.Swatch, 0, len(records))
	for _, rec := range records {
		ex, ok := swatches.Extract(map[string]any(rec))
		if !ok {
			continue
		}
		if s, ok := ex.Canonicalize(); ok {
			library = append(library, s)
		}
	}
	if len(library) == 0 {
		return nil, errors.NewValidationError("library", path, "no usable swatches")
	}
	return library, nil
}
