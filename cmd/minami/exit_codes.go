package main

import (
	"errors"
	"os"

	minami "github.com/edwellbrook/minami"
)

// Exit codes for the minami CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // Site generated
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, conf, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadDump) ||
		errors.Is(err, ErrReadme) ||
		errors.Is(err, minami.ErrCopyStatic) {
		return ExitIO
	}

	// Usage/conf/validation errors (exit 2)
	if errors.Is(err, ErrNoDump) ||
		errors.Is(err, ErrParseDump) ||
		errors.Is(err, minami.ErrConfNotFound) ||
		errors.Is(err, minami.ErrConfParse) ||
		errors.Is(err, minami.ErrEmptyDestination) ||
		errors.Is(err, minami.ErrUnsupportedEncoding) ||
		errors.Is(err, minami.ErrLayoutNotFound) ||
		errors.Is(err, minami.ErrLayoutParse) {
		return ExitUsage
	}

	return ExitGeneral
}
