package sources

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strings"
)

// Record is one decoded source item: a JSON object or a CSV row keyed by
// the header. Items that are not objects are carried as nil records.
type Record map[string]any

// wrapperRule pulls the item array out of a top-level JSON object.
type wrapperRule struct {
	key string
}

func (w wrapperRule) items(obj map[string]any) ([]any, bool) {
	v, ok := obj[w.key]
	if !ok {
		return nil, false
	}
	arr, ok := v.([]any)
	return arr, ok
}

// wrappers are tried in order; the first key holding an array wins.
var wrappers = []wrapperRule{
	{key: "data"},
	{key: "colors"},
	{key: "items"},
	{key: "entries"},
}

// Parse decodes text as JSON and falls back to delimited text. It never
// fails: unparseable input yields no records.
func Parse(text string) []Record {
	if records, ok := ParseJSON(text); ok {
		return records
	}
	return ParseCSV(text)
}

// ParseJSON decodes text as a JSON array of items, or as an object whose
// data, colors, items, or entries key holds that array. It reports false
// when text is not JSON or has neither shape.
func ParseJSON(text string) ([]Record, bool) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, false
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}

	var items []any
	switch v := doc.(type) {
	case []any:
		items = v
	case map[string]any:
		found := false
		for _, w := range wrappers {
			if items, found = w.items(v); found {
				break
			}
		}
		if !found {
			return nil, false
		}
	default:
		return nil, false
	}

	records := make([]Record, 0, len(items))
	for _, item := range items {
		obj, _ := item.(map[string]any)
		records = append(records, Record(obj))
	}
	return records, true
}

// ParseCSV decodes delimited text with a header row. Blank lines are
// dropped and the separator is sniffed from the first remaining line.
// Rows shorter than the header carry the missing keys with nil values;
// extra fields are ignored.
func ParseCSV(text string) []Record {
	lines := nonBlankLines(text)
	if len(lines) == 0 {
		return []Record{}
	}

	r := csv.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	r.Comma = DetectSeparator(lines[0])
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil || len(rows) == 0 {
		return []Record{}
	}

	header := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(header))
		for i, key := range header {
			if i < len(row) {
				rec[key] = row[i]
			} else {
				rec[key] = nil
			}
		}
		records = append(records, rec)
	}
	return records
}

// DetectSeparator picks ';' when the line has at least as many semicolons
// as commas (and at least one), else ','.
func DetectSeparator(line string) rune {
	semi := strings.Count(line, ";")
	if semi > 0 && semi >= strings.Count(line, ",") {
		return ';'
	}
	return ','
}

func nonBlankLines(text string) []string {
	var lines []string
	for _, l := range strings.FieldsFunc(text, isLineBreak) {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func isLineBreak(r rune) bool {
	return r == '\n' || r == '\r'
}
