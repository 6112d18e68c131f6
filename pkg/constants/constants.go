// Package constants provides shared constants used throughout the swatchmap codebase.
// This includes timeouts, file permissions, default paths, and other values
// that should be consistent between the library and the CLI.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultFetchTimeout bounds the single attempt made against a remote source
	DefaultFetchTimeout = 20 * time.Second

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute

	// ShutdownTimeout is how long main waits for cleanup after a failed command
	ShutdownTimeout = 5 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Fetch constants
const (
	// DefaultUserAgent identifies swatchmap to remote sources
	DefaultUserAgent = "swatchmap/1.0"

	// DefaultFetchRate is the default pacing in requests per second (0 disables pacing)
	DefaultFetchRate = 0.0

	// MaxResponseBytes is the largest remote body accepted (64 MiB)
	MaxResponseBytes = 64 << 20
)

// Path constants
const (
	// DefaultSourcesPath is the default list of source locators
	DefaultSourcesPath = "scripts/sources.txt"

	// DefaultDatasetPath is the default output dataset
	DefaultDatasetPath = "pantone_full.json"

	// DefaultSourcesLogPath is the default provenance log
	DefaultSourcesLogPath = "scripts/sources-log.md"

	// ConfigFileName is the config file base name searched in $HOME and the working directory
	ConfigFileName = ".swatchmap"
)

// Nearest-match constants
const (
	// DefaultMatchThreshold is the largest delta E kept by nearest lookups
	DefaultMatchThreshold = 100.0

	// DefaultMatchLimit is how many matches nearest lookups return
	DefaultMatchLimit = 10
)

// Logging constants
const (
	// LogRotationSizeMB is the maximum size of a log file before rotation
	LogRotationSizeMB = 10

	// LogRotationAgeDays is the maximum age of rotated log files before deletion
	LogRotationAgeDays = 7

	// LogRotationBackups is the maximum number of old log files to retain
	LogRotationBackups = 5
)
