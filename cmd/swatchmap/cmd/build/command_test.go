package build

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/swatchmap/cmd/application"
	"github.com/agentstation/swatchmap/internal/transport"
	"github.com/agentstation/swatchmap/pkg/errors"
	"github.com/agentstation/swatchmap/pkg/sources"
)

func execute(t *testing.T, app application.Application, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewCommand(app)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestBuildLocalSource(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "colors.json")
	require.NoError(t, os.WriteFile(data,
		[]byte(`[{"hex":"#1a1a1a","name":"Shadow"}, {"hex":"#1A1A1A","name":"Dup"}]`), 0o644))
	list := filepath.Join(dir, "sources.txt")
	require.NoError(t, os.WriteFile(list, []byte("# local list\n"+data+"\n"), 0o644))

	out := filepath.Join(dir, "out", "pantone_full.json")
	logPath := filepath.Join(dir, "out", "sources-log.md")

	stdout, _, err := execute(t, &application.Mock{},
		"--sources", list, "--out", out, "--log", logPath, "--yaml")
	require.NoError(t, err)

	assert.Equal(t, "generated "+out+" with 1 entries. Log at "+logPath+"\n", stdout)

	dataset, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"hex\": \"#1A1A1A\",\n    \"name\": \"Shadow\"\n  }\n]\n", string(dataset))

	sourcesLog, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(sourcesLog), data+" — attempted: 2, added: 1")

	_, err = os.Stat(filepath.Join(dir, "out", "pantone_full.yaml"))
	assert.NoError(t, err)
}

func TestBuildMissingSourcesFile(t *testing.T) {
	dir := t.TempDir()
	_, _, err := execute(t, &application.Mock{},
		"--sources", filepath.Join(dir, "nope.txt"),
		"--out", filepath.Join(dir, "out.json"),
		"--log", filepath.Join(dir, "log.md"))

	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
	_, statErr := os.Stat(filepath.Join(dir, "out.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestBuildFailedSourceIsReported(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "sources.txt")
	require.NoError(t, os.WriteFile(list, []byte("https://colors.invalid/a.json\nlocal.csv\n"), 0o644))

	mock := &application.Mock{
		OutputFormatFunc: func() string { return "json" },
		FetcherFunc: func(...transport.Option) sources.Fetcher {
			return sources.FetcherFunc(func(_ context.Context, loc sources.Locator) (string, error) {
				if loc.IsRemote() {
					return "", errors.NewAPIError(loc.String(), 503, "503 Service Unavailable")
				}
				return "hex;pantone\nabc;PMS 1\n", nil
			})
		},
	}

	logPath := filepath.Join(dir, "log.md")
	stdout, stderr, err := execute(t, mock,
		"--sources", list, "--out", filepath.Join(dir, "out.json"), "--log", logPath, "--summary")
	require.NoError(t, err)

	assert.Contains(t, stdout, "with 1 entries")
	assert.Contains(t, stdout, `"failed": true`)
	assert.Contains(t, stderr, "1 of 2 sources failed")

	sourcesLog, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(sourcesLog), "https://colors.invalid/a.json — attempted: 0, added: failed")
	assert.Contains(t, string(sourcesLog), "local.csv — attempted: 1, added: 1")
}

func TestBuildUsesSettingsWhenFlagsUnset(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "configured.txt")
	require.NoError(t, os.WriteFile(list, []byte("x\n"), 0o644))

	mock := &application.Mock{
		SettingsFunc: func() application.Settings {
			return application.Settings{
				SourcesPath:    list,
				DatasetPath:    filepath.Join(dir, "configured.json"),
				SourcesLogPath: filepath.Join(dir, "configured.md"),
			}
		},
		FetcherFunc: func(...transport.Option) sources.Fetcher {
			return sources.FetcherFunc(func(context.Context, sources.Locator) (string, error) {
				return `{"data":[{"colour":"#00ff00"}]}`, nil
			})
		},
	}

	stdout, _, err := execute(t, mock)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "generated "+filepath.Join(dir, "configured.json")))
	assert.FileExists(t, filepath.Join(dir, "configured.md"))
}

func TestBuildRateLimitedSourceSuggestsPacing(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "sources.txt")
	require.NoError(t, os.WriteFile(list, []byte("https://a.example/colors.json\nhttps://b.example/colors.json\n"), 0o644))

	mock := &application.Mock{
		FetcherFunc: func(...transport.Option) sources.Fetcher {
			return sources.FetcherFunc(func(_ context.Context, loc sources.Locator) (string, error) {
				if strings.Contains(loc.String(), "a.example") {
					return "", errors.NewAPIError(loc.String(), 429, "429 Too Many Requests")
				}
				return `[{"hex":"#abcdef"}]`, nil
			})
		},
	}

	_, stderr, err := execute(t, mock,
		"--sources", list, "--out", filepath.Join(dir, "out.json"), "--log", filepath.Join(dir, "log.md"))
	require.NoError(t, err)

	assert.Contains(t, stderr, "1 of 2 sources failed")
	assert.Contains(t, stderr, "1 rejected with HTTP 429; retry with a lower --rate")
}

func TestBuildServerErrorHasNoPacingHint(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "sources.txt")
	require.NoError(t, os.WriteFile(list, []byte("https://a.example/colors.json\n"), 0o644))

	mock := &application.Mock{
		FetcherFunc: func(...transport.Option) sources.Fetcher {
			return sources.FetcherFunc(func(_ context.Context, loc sources.Locator) (string, error) {
				return "", errors.NewAPIError(loc.String(), 503, "503 Service Unavailable")
			})
		},
	}

	_, stderr, err := execute(t, mock,
		"--sources", list, "--out", filepath.Join(dir, "out.json"), "--log", filepath.Join(dir, "log.md"))
	require.NoError(t, err)
	assert.Contains(t, stderr, "1 of 1 sources failed")
	assert.NotContains(t, stderr, "429")
}
