package contour

import "errors"

// Sentinel errors for contour tracing sessions.
var (
	// ErrNilGrid indicates NewSession was called without a grid.
	ErrNilGrid = errors.New("contour: grid must be non-nil")
	// ErrNilLevels indicates NewSession was called without a level set.
	ErrNilLevels = errors.New("contour: level set must be non-nil")
	// ErrLevelIndex indicates a requested level index is out of range.
	ErrLevelIndex = errors.New("contour: level index out of range")
)
