package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is returned when a grid has zero rows or columns.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrInvalidCell is returned when a cell value is outside {0, 1} or the value count is wrong.
	ErrInvalidCell = errors.New("invalid cell values")
	// ErrInvalidPartition is returned when the group counts cannot split the grid.
	ErrInvalidPartition = errors.New("invalid partition")
	// ErrMalformedBoard is returned by the board loader for unparsable input.
	ErrMalformedBoard = errors.New("malformed board")
	// ErrScanFailed is returned when at least one region scan of a generation failed.
	ErrScanFailed = errors.New("region scan failed")
)
