// Package application provides the application interface for swatchmap commands.
//
// Commands accept an Application rather than the concrete App type so they
// can be exercised with a Mock in tests:
//
//	mock := &application.Mock{
//	    FetcherFunc: func(...transport.Option) sources.Fetcher {
//	        return stubFetcher
//	    },
//	}
//	cmd := build.NewCommand(mock)
package application

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/swatchmap/internal/transport"
	"github.com/agentstation/swatchmap/pkg/sources"
)

// Settings holds the resolved configuration values commands read.
// Command flags override these per invocation.
type Settings struct {
	SourcesPath    string
	DatasetPath    string
	SourcesLogPath string
	LibraryPath    string

	FetchTimeout time.Duration
	UserAgent    string
	FetchRate    float64

	NoColor bool
	Quiet   bool
}

// Application provides the application interface that commands need.
type Application interface {
	// Settings returns the resolved configuration.
	Settings() Settings

	// Fetcher returns a fresh source fetcher for one build. The transport
	// defaults come from Settings; opts override them.
	Fetcher(opts ...transport.Option) sources.Fetcher

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
