package expcoord

import (
	"errors"
	"fmt"
)

// Domain errors for kinematics operations.
var (
	// ErrSingular indicates J·Jᵗ has a (near) zero determinant.
	ErrSingular = errors.New("expcoord: singular matrix")

	// ErrDimension indicates an empty or ragged Jacobian.
	ErrDimension = errors.New("expcoord: dimension mismatch")
)

// MatrixError wraps an error with the shape of the offending matrix.
type MatrixError struct {
	Op      string
	Rows    int
	Cols    int
	Wrapped error
}

func (e *MatrixError) Error() string {
	return fmt.Sprintf("%s (%dx%d): %v", e.Op, e.Rows, e.Cols, e.Wrapped)
}

func (e *MatrixError) Unwrap() error {
	return e.Wrapped
}
