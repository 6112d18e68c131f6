// Package swatches defines the canonical color-swatch record and the pure
// functions that turn loosely shaped source records into it: heuristic field
// extraction and hex normalization.
package swatches

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Swatch is a canonical dataset entry. Hex is always "#RRGGBB" uppercase.
type Swatch struct {
	Hex     string `json:"hex" yaml:"hex"`
	Pantone string `json:"pantone,omitempty" yaml:"pantone,omitempty"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Label returns the catalog code, falling back to the name.
func (s Swatch) Label() string {
	if s.Pantone != "" {
		return s.Pantone
	}
	return s.Name
}

// Extracted holds the raw field values matched in one source record.
// Values keep their decoded type until Canonicalize renders them.
type Extracted struct {
	Hex     any
	Pantone any
	Name    any
}

// Canonicalize normalizes the hex value and renders the optional fields.
// It reports false when the hex value does not normalize.
func (e Extracted) Canonicalize() (Swatch, bool) {
	hex, ok := NormalizeHex(e.Hex)
	if !ok {
		return Swatch{}, false
	}
	return Swatch{
		Hex:     hex,
		Pantone: renderText(e.Pantone),
		Name:    renderText(e.Name),
	}, true
}

// renderText turns an optional field value into trimmed text.
// Absent, null, and zero-ish values render as "".
func renderText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		if f, err := t.Float64(); err == nil && f == 0 {
			return ""
		}
		return t.String()
	case bool:
		if !t {
			return ""
		}
		return "true"
	case []any:
		if len(t) == 0 {
			return ""
		}
	case map[string]any:
		if len(t) == 0 {
			return ""
		}
	}
	return strings.TrimSpace(fmt.Sprint(v))
}
