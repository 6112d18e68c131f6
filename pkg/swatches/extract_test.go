package swatches

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name   string
		record any
		want   Extracted
		ok     bool
	}{
		{
			name:   "canonical keys",
			record: map[string]any{"hex": "#112233", "pantone": "19-4052", "name": "Classic Blue"},
			want:   Extracted{Hex: "#112233", Pantone: "19-4052", Name: "Classic Blue"},
			ok:     true,
		},
		{
			name:   "lowercase key wins over a case variant",
			record: map[string]any{"Hex": "#111111", "hex": "#222222", "NAME": "Upper", "name": "lower"},
			want:   Extracted{Hex: "#222222", Name: "lower"},
			ok:     true,
		},
		{
			name:   "keys are case-insensitive",
			record: map[string]any{"HEX": "#112233", "Code": "P1", "Title": "Navy"},
			want:   Extracted{Hex: "#112233", Pantone: "P1", Name: "Navy"},
			ok:     true,
		},
		{
			name:   "hex key priority beats later candidates",
			record: map[string]any{"colour": "#000000", "hex": "#FFFFFF", "color": "#111111"},
			want:   Extracted{Hex: "#FFFFFF"},
			ok:     true,
		},
		{
			name:   "pantone key priority",
			record: map[string]any{"hex": "abc", "id": 7, "code": "C", "pantone": "P"},
			want:   Extracted{Hex: "abc", Pantone: "P"},
			ok:     true,
		},
		{
			name:   "name key priority",
			record: map[string]any{"hex": "abc", "description": "d", "title": "t"},
			want:   Extracted{Hex: "abc", Name: "t"},
			ok:     true,
		},
		{
			name:   "fallback scans values for hex-like strings",
			record: map[string]any{"swatch": "#a0b0c0", "label": "Sand"},
			want:   Extracted{Hex: "#a0b0c0"},
			ok:     true,
		},
		{
			name:   "fallback match is anchored at the end",
			record: map[string]any{"value": "rgb 123456"},
			want:   Extracted{Hex: "rgb 123456"},
			ok:     true,
		},
		{
			name:   "fallback ignores non-string values",
			record: map[string]any{"value": json.Number("123456")},
			ok:     false,
		},
		{
			name:   "present hex key wins even when null",
			record: map[string]any{"hex": nil, "other": "#123456"},
			want:   Extracted{Hex: nil},
			ok:     true,
		},
		{
			name:   "no hex candidate",
			record: map[string]any{"name": "Nothing", "pantone": "X"},
			ok:     false,
		},
		{
			name:   "non-mapping item",
			record: []any{"#123456"},
			ok:     false,
		},
		{
			name:   "nil item",
			record: nil,
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extract(tt.record)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractedCanonicalize(t *testing.T) {
	t.Run("renders optional fields", func(t *testing.T) {
		sw, ok := Extracted{Hex: "#1a1a1a", Pantone: json.Number("123"), Name: "  Shadow  "}.Canonicalize()
		require.True(t, ok)
		assert.Equal(t, Swatch{Hex: "#1A1A1A", Pantone: "123", Name: "Shadow"}, sw)
	})

	t.Run("drops empty optional fields", func(t *testing.T) {
		sw, ok := Extracted{Hex: "abc", Pantone: "", Name: nil}.Canonicalize()
		require.True(t, ok)
		assert.Equal(t, Swatch{Hex: "#AABBCC"}, sw)
	})

	t.Run("zero numbers are omitted", func(t *testing.T) {
		sw, ok := Extracted{Hex: "abc", Pantone: json.Number("0")}.Canonicalize()
		require.True(t, ok)
		assert.Empty(t, sw.Pantone)
	})

	t.Run("invalid hex is rejected", func(t *testing.T) {
		_, ok := Extracted{Hex: "zzz", Name: "Bad"}.Canonicalize()
		assert.False(t, ok)
	})
}

func TestSwatchLabel(t *testing.T) {
	assert.Equal(t, "19-4052", Swatch{Pantone: "19-4052", Name: "Classic Blue"}.Label())
	assert.Equal(t, "Classic Blue", Swatch{Name: "Classic Blue"}.Label())
	assert.Empty(t, Swatch{}.Label())
}
