// Package emoji provides symbol constants for CLI output.
package emoji

// Symbols used in tables and status lines.
const (
	// Success marks a source that was fetched and merged.
	Success = "✓"

	// Error marks a source that could not be fetched.
	Error = "✗"

	// Warning marks a non-fatal problem.
	Warning = "!"
)
