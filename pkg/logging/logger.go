// Package logging provides structured logging for swatchmap using zerolog.
// Console output is used when stderr is a terminal and JSON everywhere else,
// so build runs in CI produce machine-readable logs.
//
// The package default logger is configured from LOG_* environment variables
// at start-up; the CLI replaces it once flags are parsed. Code that runs
// inside a build should log through the context:
//
//	ctx = logging.WithRunID(ctx)
//	logging.Ctx(ctx).Info().Str("locator", loc).Msg("processing source")
package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultLogger is the global logger instance.
var defaultLogger zerolog.Logger

func init() {
	defaultLogger = NewLoggerFromConfig(ConfigFromEnv())
}

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault sets the default global logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger // Also update zerolog's global logger
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
