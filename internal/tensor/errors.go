package tensor

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrNotSupported = errors.New("operation not supported for this rank")
	ErrInvalidShape = errors.New("invalid shape")
	ErrEmptyInput   = errors.New("input list is empty")
	ErrRaggedInput  = errors.New("input rows have differing lengths")
)

// ShapeError reports an operation applied to tensors with incompatible
// dimensions.
type ShapeError struct {
	Op      string // operation name ("add", "mul", "matmul")
	A, B    []int  // operand shapes
	Details string
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: shapes %v and %v: %s", e.Op, e.A, e.B, e.Details)
	}
	return fmt.Sprintf("%s: incompatible shapes %v and %v", e.Op, e.A, e.B)
}
