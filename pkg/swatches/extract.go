package swatches

import (
	"regexp"
	"sort"
	"strings"
)

// hexLike matches a 6-digit hex color, '#' optional, at the end of a string.
var hexLike = regexp.MustCompile(`#?[0-9a-fA-F]{6}$`)

// Candidate key lists, in priority order.
var (
	HexKeys     = []string{"hex", "color", "colour", "hexcode"}
	PantoneKeys = []string{"pantone", "code", "id"}
	NameKeys    = []string{"name", "title", "description"}
)

// matcher finds one field value in a record.
type matcher func(r record) (any, bool)

// field pairs a destination with the ordered matchers tried for it.
type field struct {
	name     string
	matchers []matcher
}

// fields is the ordered rule table evaluated by Extract. Within a field the
// first successful matcher wins.
var fields = []field{
	{name: "hex", matchers: []matcher{byKeys(HexKeys), byHexLikeValue}},
	{name: "pantone", matchers: []matcher{byKeys(PantoneKeys)}},
	{name: "name", matchers: []matcher{byKeys(NameKeys)}},
}

// record is a case-insensitive view over a raw source record.
type record struct {
	raw  map[string]any
	keys map[string]string // lowercased key -> original key
	// ordered holds original keys sorted, for a stable content scan.
	ordered []string
}

func newRecord(raw map[string]any) record {
	ordered := make([]string, 0, len(raw))
	for k := range raw {
		ordered = append(ordered, k)
	}
	sort.Strings(ordered)

	// Keys differing only in case resolve to the last in sorted order, so a
	// plain lowercase key beats "Hex" or "HEX".
	keys := make(map[string]string, len(raw))
	for _, k := range ordered {
		keys[strings.ToLower(k)] = k
	}
	return record{raw: raw, keys: keys, ordered: ordered}
}

// byKeys matches the first candidate key present in the record, regardless
// of the value it holds.
func byKeys(candidates []string) matcher {
	return func(r record) (any, bool) {
		for _, c := range candidates {
			if k, ok := r.keys[c]; ok {
				return r.raw[k], true
			}
		}
		return nil, false
	}
}

// byHexLikeValue scans values for a string that ends in a 6-digit hex color.
func byHexLikeValue(r record) (any, bool) {
	for _, k := range r.ordered {
		if s, ok := r.raw[k].(string); ok && hexLike.MatchString(strings.TrimSpace(s)) {
			return s, true
		}
	}
	return nil, false
}

// Extract maps an arbitrary record onto the hex/pantone/name shape.
// It reports false when no hex candidate exists; records that are not
// key-value mappings never match.
func Extract(raw any) (Extracted, bool) {
	m, ok := raw.(map[string]any)
	if !ok || m == nil {
		return Extracted{}, false
	}

	r := newRecord(m)
	var out Extracted
	for _, f := range fields {
		v, found := firstMatch(r, f.matchers)
		if !found {
			if f.name == "hex" {
				return Extracted{}, false
			}
			continue
		}
		switch f.name {
		case "hex":
			out.Hex = v
		case "pantone":
			out.Pantone = v
		case "name":
			out.Name = v
		}
	}
	return out, true
}

func firstMatch(r record, matchers []matcher) (any, bool) {
	for _, m := range matchers {
		if v, ok := m(r); ok {
			return v, true
		}
	}
	return nil, false
}
