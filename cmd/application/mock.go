package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/swatchmap/internal/transport"
	"github.com/agentstation/swatchmap/pkg/constants"
	"github.com/agentstation/swatchmap/pkg/logging"
	"github.com/agentstation/swatchmap/pkg/sources"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default value.
type Mock struct {
	SettingsFunc     func() Settings
	FetcherFunc      func(opts ...transport.Option) sources.Fetcher
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Settings returns settings using the mock function or the defaults.
func (m *Mock) Settings() Settings {
	if m.SettingsFunc != nil {
		return m.SettingsFunc()
	}
	return Settings{
		SourcesPath:    constants.DefaultSourcesPath,
		DatasetPath:    constants.DefaultDatasetPath,
		SourcesLogPath: constants.DefaultSourcesLogPath,
		LibraryPath:    constants.DefaultDatasetPath,
		FetchTimeout:   constants.DefaultFetchTimeout,
		UserAgent:      constants.DefaultUserAgent,
	}
}

// Fetcher returns a fetcher using the mock function or a real fetcher.
func (m *Mock) Fetcher(opts ...transport.Option) sources.Fetcher {
	if m.FetcherFunc != nil {
		return m.FetcherFunc(opts...)
	}
	return sources.NewFetcher(transport.New(opts...))
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	return logging.NewNopLogger()
}

// OutputFormat returns output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Application at compile time.
var _ Application = (*Mock)(nil)
