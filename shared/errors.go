package shared

import (
	"errors"
	"fmt"
)

var (
	ErrDimensionsOverflow = errors.New("dimensions overflow")
	ErrInsufficientMemory = errors.New("insufficient memory")
)

type DimensionsError struct {
	Rows uint64
	Cols uint64
}

func (err DimensionsError) Error() string {
	return fmt.Sprintf("%v: %d rows x %d cols exceeds the range allowed by uint64", ErrDimensionsOverflow, err.Rows, err.Cols)
}

func (err DimensionsError) Unwrap() error {
	return ErrDimensionsOverflow
}
