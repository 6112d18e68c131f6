package swatchmap

import (
	"github.com/agentstation/swatchmap/pkg/constants"
	"github.com/agentstation/swatchmap/pkg/errors"
	"github.com/agentstation/swatchmap/pkg/pipeline"
	"github.com/agentstation/swatchmap/pkg/sources"
)

// config holds the Builder configuration.
type config struct {
	sourcesPath    string
	locators       []sources.Locator
	datasetPath    string
	sourcesLogPath string
	writeYAML      bool
	fetcher        sources.Fetcher
	onSource       func(pipeline.SourceLog)
}

func defaultConfig() config {
	return config{
		sourcesPath:    constants.DefaultSourcesPath,
		datasetPath:    constants.DefaultDatasetPath,
		sourcesLogPath: constants.DefaultSourcesLogPath,
	}
}

// Option is a function that configures a Builder.
type Option func(*config) error

// WithSourcesFile reads locators from path at build time.
func WithSourcesFile(path string) Option {
	return func(c *config) error {
		if path == "" {
			return errors.NewValidationError("sources", path, "path must not be empty")
		}
		c.sourcesPath = path
		return nil
	}
}

// WithLocators builds from the given locators instead of a sources file.
// Passing none runs an empty build.
func WithLocators(locators ...sources.Locator) Option {
	return func(c *config) error {
		c.locators = make([]sources.Locator, 0, len(locators))
		c.locators = append(c.locators, locators...)
		return nil
	}
}

// WithDatasetPath sets where the dataset JSON is written.
func WithDatasetPath(path string) Option {
	return func(c *config) error {
		if path == "" {
			return errors.NewValidationError("out", path, "path must not be empty")
		}
		c.datasetPath = path
		return nil
	}
}

// WithSourcesLogPath sets where the Markdown sources log is written.
func WithSourcesLogPath(path string) Option {
	return func(c *config) error {
		if path == "" {
			return errors.NewValidationError("log", path, "path must not be empty")
		}
		c.sourcesLogPath = path
		return nil
	}
}

// WithYAML also writes the dataset as YAML next to the JSON output.
func WithYAML(enabled bool) Option {
	return func(c *config) error {
		c.writeYAML = enabled
		return nil
	}
}

// WithFetcher sets the fetcher used for sources. Fetchers cache per
// locator, so pass a fresh one for each build.
func WithFetcher(f sources.Fetcher) Option {
	return func(c *config) error {
		c.fetcher = f
		return nil
	}
}

// WithSourceCallback observes each source as it completes.
func WithSourceCallback(fn func(pipeline.SourceLog)) Option {
	return func(c *config) error {
		c.onSource = fn
		return nil
	}
}
