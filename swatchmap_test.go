package swatchmap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/swatchmap/pkg/errors"
	"github.com/agentstation/swatchmap/pkg/pipeline"
	"github.com/agentstation/swatchmap/pkg/sources"
)

func staticFetcher(texts map[string]string) sources.Fetcher {
	return sources.FetcherFunc(func(_ context.Context, loc sources.Locator) (string, error) {
		text, ok := texts[loc.String()]
		if !ok {
			return "", errors.NewNotFoundError("source", loc.String())
		}
		return text, nil
	})
}

func TestBuildWritesOutputs(t *testing.T) {
	dir := t.TempDir()
	var seen []string
	b, err := New(
		WithSourceCallback(func(l pipeline.SourceLog) { seen = append(seen, l.Locator.String()) }),
		WithLocators(sources.Locator("a.json"), sources.Locator("b.csv"), sources.Locator("gone")),
		WithDatasetPath(filepath.Join(dir, "data", "set.json")),
		WithSourcesLogPath(filepath.Join(dir, "data", "log.md")),
		WithYAML(true),
		WithFetcher(staticFetcher(map[string]string{
			"a.json": `{"colors":[{"hex":"ff0000","pantone":"PMS 485"}]}`,
			"b.csv":  "hex,name\n#FF0000,Red again\n00ff00,Green\n",
		})),
	)
	require.NoError(t, err)

	result, err := b.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"a.json", "b.csv", "gone"}, seen)
	require.Len(t, result.Swatches, 2)
	assert.Equal(t, "#00FF00", result.Swatches[0].Hex)
	assert.Equal(t, "#FF0000", result.Swatches[1].Hex)
	assert.Equal(t, "PMS 485", result.Swatches[1].Pantone)
	assert.Len(t, result.Failed(), 1)

	assert.FileExists(t, filepath.Join(dir, "data", "set.json"))
	assert.FileExists(t, filepath.Join(dir, "data", "set.yaml"))
	logText, err := os.ReadFile(filepath.Join(dir, "data", "log.md"))
	require.NoError(t, err)
	assert.Contains(t, string(logText), "gone — attempted: 0, added: failed")
}

func TestBuildMissingSourcesFileWritesNothing(t *testing.T) {
	dir := t.TempDir()
	b, err := New(
		WithSourcesFile(filepath.Join(dir, "missing.txt")),
		WithDatasetPath(filepath.Join(dir, "out.json")),
		WithSourcesLogPath(filepath.Join(dir, "log.md")),
	)
	require.NoError(t, err)

	_, err = b.Build(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
	assert.NoFileExists(t, filepath.Join(dir, "out.json"))
	assert.NoFileExists(t, filepath.Join(dir, "log.md"))
}

func TestBuildWithNoLocatorsIsEmpty(t *testing.T) {
	dir := t.TempDir()
	b, err := New(
		WithLocators(),
		WithSourcesFile(filepath.Join(dir, "never-read.txt")),
		WithDatasetPath(filepath.Join(dir, "out.json")),
		WithSourcesLogPath(filepath.Join(dir, "log.md")),
	)
	require.NoError(t, err)

	result, err := b.Build(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Swatches)
	assert.Empty(t, result.Sources)

	dataset, err := os.ReadFile(filepath.Join(dir, "out.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(dataset))
}

func TestNewRejectsEmptyPaths(t *testing.T) {
	_, err := New(WithDatasetPath(""))
	assert.True(t, errors.IsValidationError(err))

	_, err = New(WithSourcesFile(""))
	assert.True(t, errors.IsValidationError(err))
}

func TestYAMLPath(t *testing.T) {
	b, err := New(WithDatasetPath("pantone_full.json"))
	require.NoError(t, err)
	assert.Equal(t, "pantone_full.yaml", b.YAMLPath())

	b, err = New(WithDatasetPath("data/out"))
	require.NoError(t, err)
	assert.Equal(t, "data/out.yaml", b.YAMLPath())
}
