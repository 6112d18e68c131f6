// Package app wires configuration, logging, and commands for the swatchmap
// CLI.
package app

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/swatchmap/cmd/application"
	"github.com/agentstation/swatchmap/internal/transport"
	"github.com/agentstation/swatchmap/pkg/sources"
)

// App represents the swatchmap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
// Configuration is loaded from the environment and the default config file
// search path; --config is applied later, when flags are parsed.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Settings returns the resolved configuration for commands.
func (a *App) Settings() application.Settings {
	return application.Settings{
		SourcesPath:    a.config.SourcesPath,
		DatasetPath:    a.config.DatasetPath,
		SourcesLogPath: a.config.SourcesLogPath,
		LibraryPath:    a.config.LibraryPath,
		FetchTimeout:   a.config.FetchTimeout,
		UserAgent:      a.config.UserAgent,
		FetchRate:      a.config.FetchRate,
		NoColor:        a.config.NoColor,
		Quiet:          a.config.Quiet,
	}
}

// Fetcher returns a new fetcher with its own run cache. Transport defaults
// come from the configuration and opts are applied after them.
func (a *App) Fetcher(opts ...transport.Option) sources.Fetcher {
	base := []transport.Option{
		transport.WithTimeout(a.config.FetchTimeout),
		transport.WithUserAgent(a.config.UserAgent),
		transport.WithRate(a.config.FetchRate),
		transport.WithMaxResponseBytes(a.config.FetchMaxBytes),
	}
	client := transport.New(append(base, opts...)...)
	a.logger.Debug().Str("transport", client.String()).Msg("created fetcher")
	return sources.NewFetcher(client)
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)
