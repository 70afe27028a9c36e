package atoms

import "errors"

// Sentinel errors for library operations.
var (
	ErrInvalidRoot     = errors.New("invalid project root")
	ErrPageNotFound    = errors.New("page not found")
	ErrReadPage        = errors.New("failed to read page")
	ErrWriteOutput     = errors.New("failed to write output")
	ErrCleanOutput     = errors.New("failed to clean output directory")
	ErrCopyAssets      = errors.New("failed to copy assets")
	ErrInvalidMaxDepth = errors.New("invalid max depth")
	ErrUnknownEngine   = errors.New("unknown markdown engine")
)
