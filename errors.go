package bitgrid

import (
	"fmt"
)

// IndexOutOfBoundsError is the panic value of Get and Set when a cell lies
// outside the grid. It signals a programming error, not a runtime condition.
type IndexOutOfBoundsError struct {
	Row  uint64
	Col  uint64
	Rows uint64
	Cols uint64
}

func (err *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("index out of bounds: (%d,%d) outside of (%d,%d)", err.Row, err.Col, err.Rows, err.Cols)
}
