package dirmap

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := d.Get(dirmap.Name("missing.txt"))
//	if errors.Is(err, dirmap.ErrPathNotFound) {
//	    // Handle absent entry
//	}
var (
	// ErrNotADirectory indicates a DirectoryMap root does not exist or is not a directory.
	ErrNotADirectory = errors.New("not a directory")

	// ErrInvalidIndexKind indicates an index of unsupported type or shape.
	ErrInvalidIndexKind = errors.New("invalid index kind")

	// ErrPathNotFound indicates a key resolved to neither a file nor a directory.
	ErrPathNotFound = errors.New("path not found")

	// ErrIndexOutOfRange indicates a Position outside the directory listing.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidPattern indicates a malformed glob pattern passed to Match.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrApprovalDenied indicates the user declined a recursive deletion.
	ErrApprovalDenied = errors.New("approval denied")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// usageErrorPatterns are the messages cobra and pflag produce for misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"arg(s), received",
	"required flag",
	"invalid argument",
	"missing required argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrNotADirectory):
		return ExitNotADirectory
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	case errors.Is(err, ErrPathNotFound):
		return ExitPathNotFound
	case errors.Is(err, ErrInvalidIndexKind),
		errors.Is(err, ErrIndexOutOfRange),
		errors.Is(err, ErrInvalidPattern):
		return ExitInvalidIndex
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
