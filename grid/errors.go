package grid

import "fmt"

// IndexOutOfRangeError is the panic value raised when a cell outside the
// grid is read or written. Coordinates produced by legality-checked
// transforms never trigger it.
type IndexOutOfRangeError struct {
	Row, Col   int
	Rows, Cols int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("grid: index (%d, %d) out of range for %dx%d grid", e.Row, e.Col, e.Rows, e.Cols)
}
