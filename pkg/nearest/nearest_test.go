package nearest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/swatchmap/pkg/errors"
	"github.com/agentstation/swatchmap/pkg/swatches"
)

var library = []swatches.Swatch{
	{Hex: "#0000FF", Pantone: "Blue 072 C", Name: "Blue"},
	{Hex: "#FE0000", Name: "Almost red"},
	{Hex: "not-a-hex", Name: "Broken"},
	{Hex: "#FF0000", Pantone: "Red 032 C", Name: "Red"},
	{Hex: "abc", Name: "Shorthand is skipped"},
}

func TestFindExactMatchFirst(t *testing.T) {
	for _, m := range []Method{MethodCIEDE2000, MethodCIE76} {
		t.Run(string(m), func(t *testing.T) {
			matches, err := Find("ff0000", library, WithMethod(m))
			require.NoError(t, err)
			require.NotEmpty(t, matches)

			assert.Equal(t, "#FF0000", matches[0].Swatch.Hex)
			assert.InDelta(t, 0, matches[0].Distance, 1e-9)
			assert.Equal(t, "#FE0000", matches[1].Swatch.Hex)
			assert.Greater(t, matches[1].Distance, 0.0)
			for i := 1; i < len(matches); i++ {
				assert.LessOrEqual(t, matches[i-1].Distance, matches[i].Distance)
			}
		})
	}
}

func TestFindThreshold(t *testing.T) {
	matches, err := Find("#FF0000", library, WithThreshold(5))
	require.NoError(t, err)

	require.Len(t, matches, 2)
	for _, m := range matches {
		assert.LessOrEqual(t, m.Distance, 5.0)
	}
}

func TestFindDefaultsIncludeDistantColors(t *testing.T) {
	matches, err := Find("#FF0000", library)
	require.NoError(t, err)

	// Red to blue is roughly 53 ΔE00, well inside the default threshold.
	require.Len(t, matches, 3)
	assert.Equal(t, "#0000FF", matches[2].Swatch.Hex)
	assert.Greater(t, matches[2].Distance, 40.0)
	assert.Less(t, matches[2].Distance, 70.0)
}

func TestFindLimit(t *testing.T) {
	matches, err := Find("#FF0000", library, WithLimit(1))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Red", matches[0].Swatch.Name)
}

func TestFindInvalidQuery(t *testing.T) {
	for _, q := range []string{"", "zzz", "#abc", "1234567", "#12345G"} {
		_, err := Find(q, library)
		require.Error(t, err, q)
		assert.True(t, errors.IsValidationError(err), q)
	}
}

func TestFindInvalidMethod(t *testing.T) {
	_, err := Find("#FF0000", library, WithMethod(Method("hsl")))
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestParseMethod(t *testing.T) {
	tests := map[string]Method{
		"":          MethodCIEDE2000,
		"CIEDE2000": MethodCIEDE2000,
		"deltae00":  MethodCIEDE2000,
		"cie76":     MethodCIE76,
		"deltae76":  MethodCIE76,
	}
	for in, want := range tests {
		got, err := ParseMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseMethod("cmc")
	assert.Error(t, err)
}

func TestOptionsIgnoreNonPositive(t *testing.T) {
	o := NewOptions(WithThreshold(0), WithLimit(-1))
	assert.Equal(t, 100.0, o.Threshold)
	assert.Equal(t, 10, o.Limit)
	assert.Equal(t, MethodCIEDE2000, o.Method)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []Match{
		{Swatch: swatches.Swatch{Hex: "#FF0000", Pantone: "Red 032 C"}, Distance: 0},
		{Swatch: swatches.Swatch{Hex: "#FE0000", Name: `Say "red"`}, Distance: 0.2345},
	})
	require.NoError(t, err)

	want := "pantone,hex,deltaE\r\n" +
		`"Red 032 C","#FF0000","0.00"` + "\r\n" +
		`"Say ""red""","#FE0000","0.23"`
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVNoMatches(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "pantone,hex,deltaE", buf.String())
}

func TestLoadLibrary(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "pantone_full.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"hex":"#1A1A1A","name":"Shadow"},{"color":"00ff00","code":"354 C"}]`), 0o644))
	lib, err := LoadLibrary(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, []swatches.Swatch{
		{Hex: "#1A1A1A", Name: "Shadow"},
		{Hex: "#00FF00", Pantone: "354 C"},
	}, lib)

	csvPath := filepath.Join(dir, "vendor.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("Pantone;Hex\n186 C;#C8102E\n"), 0o644))
	lib, err = LoadLibrary(csvPath)
	require.NoError(t, err)
	assert.Equal(t, []swatches.Swatch{{Hex: "#C8102E", Pantone: "186 C"}}, lib)
}

func TestLoadLibraryErrors(t *testing.T) {
	_, err := LoadLibrary(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, errors.IsNotFound(err))

	empty := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`[]`), 0o644))
	_, err = LoadLibrary(empty)
	assert.True(t, errors.IsValidationError(err))
}
