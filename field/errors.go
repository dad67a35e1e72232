package field

import "errors"

// Sentinel errors for grid and level-set construction.
var (
	// ErrGridTooSmall indicates the input grid has fewer than 2 rows or 2 columns.
	ErrGridTooSmall = errors.New("field: grid must have at least 2 rows and 2 columns")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("field: all rows must have the same length")
	// ErrNonFinite indicates a NaN or infinite sample or level value.
	ErrNonFinite = errors.New("field: values must be finite")
	// ErrBadInterval indicates a contour interval that is zero, negative or non-finite.
	ErrBadInterval = errors.New("field: contour interval must be positive and finite")
	// ErrNoLevels indicates an explicit level list with no entries.
	ErrNoLevels = errors.New("field: at least one level value is required")
	// ErrUnsortedLevels indicates an explicit level list that is not strictly increasing.
	ErrUnsortedLevels = errors.New("field: level values must be strictly increasing")
)
