package main

import (
	"errors"
	"os"

	atoms "github.com/alnah/go-atoms"
	"github.com/alnah/go-atoms/internal/config"
)

// Exit codes for the atoms CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful build
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Page not found, unreadable, or output not writable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrInvalidLogFormat) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, atoms.ErrInvalidRoot) ||
		errors.Is(err, atoms.ErrInvalidMaxDepth) ||
		errors.Is(err, atoms.ErrUnknownEngine) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, atoms.ErrPageNotFound) ||
		errors.Is(err, atoms.ErrReadPage) ||
		errors.Is(err, atoms.ErrWriteOutput) ||
		errors.Is(err, atoms.ErrCleanOutput) {
		return ExitIO
	}

	return ExitGeneral
}
