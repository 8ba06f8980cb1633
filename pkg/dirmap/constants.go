package dirmap

import "io/fs"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // Command completed successfully
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Invalid configuration
	ExitNotADirectory  = 11 // Root is missing or not a directory
	ExitApprovalDenied = 12 // User denied recursive deletion
	ExitPathNotFound   = 13 // Key resolved to nothing
	ExitInvalidIndex   = 14 // Key of unsupported kind or out of range
)

const (
	// DefaultFileMode is the permission used when Set creates a file.
	DefaultFileMode fs.FileMode = 0o644

	// HiddenPrefix marks entries excluded when showHidden is false.
	HiddenPrefix = "."
)
