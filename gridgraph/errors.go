package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNoWalkableCodes indicates an empty traversable set was configured.
	ErrNoWalkableCodes = errors.New("gridgraph: at least one walkable cell code is required")
)
