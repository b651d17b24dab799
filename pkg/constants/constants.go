// Package constants provides shared constants used throughout the tapetrail
// codebase: timeouts, file permissions, and matcher defaults that should be
// consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application.
const (
	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second

	// RunTimeout is the timeout for a full integration run
	RunTimeout = 10 * time.Minute

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 15 * time.Minute
)

// File permission constants define standard Unix file permissions.
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Matching defaults.
const (
	// DefaultVenueThreshold is the minimum similarity score for treating
	// two venue names as the same place
	DefaultVenueThreshold = 0.7

	// ReviewSaturation is the review count at which match confidence
	// reaches its ceiling
	ReviewSaturation = 10
)
