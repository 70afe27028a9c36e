package sections

import "errors"

// Sentinel errors for section loading.
var (
	// ErrInvalidRoot indicates the project root is not a readable directory.
	ErrInvalidRoot = errors.New("invalid project root")

	// ErrInvalidName indicates a section name that is empty, absolute, or
	// climbs out of the sections directory.
	ErrInvalidName = errors.New("invalid section name")

	// ErrPathTraversal indicates a resolved path outside the sections directory.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrRead indicates an I/O error other than a missing file.
	ErrRead = errors.New("failed to read file")
)
