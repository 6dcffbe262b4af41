package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidIndex      = errors.New("cell index out of range")
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	ErrTooManyMines      = errors.New("mine count must be less than the number of cells")
	ErrNegativeMines     = errors.New("mine count must be non-negative")
)

// WrapCellError adds the operation and cell index to an error
func WrapCellError(op string, idx int, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s cell %d: %w", op, idx, err)
}

// WrapCoordinateError adds the operation and (column,row) position to an error
func WrapCoordinateError(op string, c Coordinate, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s cell %s: %w", op, c, err)
}
