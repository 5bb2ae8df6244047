// Package tensor implements a small dense tensor of rank 1 or 2 with
// element-wise arithmetic and one dense matrix multiply. It shares no types
// with the autodiff packages: operations here are plain numeric, never
// differentiated.
package tensor

import (
	"fmt"
	"strings"
)

// Tensor is a dense rank-1 or rank-2 tensor over a contiguous row-major
// buffer. Tensors are not safe for concurrent use.
type Tensor struct {
	data  []float64
	shape []int
}

// Zeros creates a zero-filled tensor of the given shape. The shape must have
// rank 1 or 2 with positive dimensions.
func Zeros(shape ...int) (*Tensor, error) {
	if len(shape) < 1 || len(shape) > 2 {
		return nil, fmt.Errorf("%w: rank %d (only 1-D and 2-D tensors are supported)",
			ErrNotSupported, len(shape))
	}
	n := 1
	for i, dim := range shape {
		if dim <= 0 {
			return nil, fmt.Errorf("%w: dimension %d is %d", ErrInvalidShape, i, dim)
		}
		n *= dim
	}

	return &Tensor{
		data:  make([]float64, n),
		shape: append([]int(nil), shape...),
	}, nil
}

// FromList creates a rank-1 tensor holding a copy of data.
func FromList(data []float64) (*Tensor, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	t, err := Zeros(len(data))
	if err != nil {
		return nil, err
	}
	copy(t.data, data)
	return t, nil
}

// From2D creates a rank-2 tensor from a nested row-major list.
func From2D(data [][]float64) (*Tensor, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, ErrEmptyInput
	}
	cols := len(data[0])
	for i, row := range data {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row 0 has %d, row %d has %d",
				ErrRaggedInput, cols, i, len(row))
		}
	}

	t, err := Zeros(len(data), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range data {
		copy(t.data[i*cols:(i+1)*cols], row)
	}
	return t, nil
}

// Shape returns a copy of the tensor's dimensions.
func (t *Tensor) Shape() []int {
	return append([]int(nil), t.shape...)
}

// Rank returns the number of dimensions (1 or 2).
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return len(t.data)
}

// At returns the element at the given index: one index for rank-1 tensors,
// two for rank-2. Panics on arity mismatch or out-of-range indices.
func (t *Tensor) At(idx ...int) float64 {
	if len(idx) != len(t.shape) {
		panic(fmt.Sprintf("tensor: got %d indices for rank-%d tensor", len(idx), len(t.shape)))
	}
	for d, i := range idx {
		if i < 0 || i >= t.shape[d] {
			panic(fmt.Sprintf("tensor: index %d out of range for dimension %d (size %d)",
				i, d, t.shape[d]))
		}
	}
	if len(idx) == 1 {
		return t.data[idx[0]]
	}
	return t.data[idx[0]*t.shape[1]+idx[1]]
}

// sameShape reports whether both tensors have identical dimensions.
func (t *Tensor) sameShape(o *Tensor) bool {
	if len(t.shape) != len(o.shape) {
		return false
	}
	for i := range t.shape {
		if t.shape[i] != o.shape[i] {
			return false
		}
	}
	return true
}

// ToList returns the data of a rank-1 tensor as a flat slice.
func (t *Tensor) ToList() ([]float64, error) {
	if len(t.shape) != 1 {
		return nil, fmt.Errorf("%w: ToList needs rank 1, have rank %d",
			ErrNotSupported, len(t.shape))
	}
	return append([]float64(nil), t.data...), nil
}

// To2D returns the data of a rank-2 tensor as a nested row-major list.
func (t *Tensor) To2D() ([][]float64, error) {
	if len(t.shape) != 2 {
		return nil, fmt.Errorf("%w: To2D needs rank 2, have rank %d",
			ErrNotSupported, len(t.shape))
	}
	rows, cols := t.shape[0], t.shape[1]
	out := make([][]float64, rows)
	for i := range out {
		out[i] = append([]float64(nil), t.data[i*cols:(i+1)*cols]...)
	}
	return out, nil
}

// String returns a shape/data summary, truncating the data after six
// elements.
func (t *Tensor) String() string {
	var b strings.Builder
	b.WriteString("Tensor(shape=(")
	for i, dim := range t.shape {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", dim)
	}
	b.WriteString("), data=[")
	n := len(t.data)
	if n > 6 {
		n = 6
	}
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%g", t.data[i])
	}
	if len(t.data) > 6 {
		b.WriteString(", ...")
	}
	b.WriteString("])")
	return b.String()
}
