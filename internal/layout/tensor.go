package layout

import (
	"errors"
	"fmt"
)

// DefaultTileSize is the tile edge used when callers do not care.
const DefaultTileSize = 2

// Construction errors.
var (
	ErrInvalidShape    = errors.New("rows and cols must be positive")
	ErrInvalidTileSize = errors.New("tile size must be positive")
	ErrEmptyInput      = errors.New("input list is empty")
	ErrRaggedInput     = errors.New("input rows have differing lengths")
)

// LayoutTensor is a 2-D dense tensor over a single contiguous buffer. All
// logical (i, j) access goes through the layout's offset function. For the
// tiled layout the buffer covers pad(rows) × pad(cols) cells; the padding
// cells are zero, unreachable through Get/Set, and visible only to
// MemoryView and the raw-sequential benchmark.
//
// LayoutTensor is not safe for concurrent use.
type LayoutTensor struct {
	data     []float64
	rows     int
	cols     int
	layout   Layout
	tileSize int
}

// Zeros allocates a rows × cols tensor filled with zeros, padded to whole
// tiles when the layout is Tiled.
func Zeros(rows, cols int, l Layout, tileSize int) (*LayoutTensor, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidShape, rows, cols)
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTileSize, tileSize)
	}

	size := rows * cols
	if l == Tiled {
		size = pad(rows, tileSize) * pad(cols, tileSize)
	}

	return &LayoutTensor{
		data:     make([]float64, size),
		rows:     rows,
		cols:     cols,
		layout:   l,
		tileSize: tileSize,
	}, nil
}

// FromList builds a tensor from a nested row-major list, inferring the shape
// and writing every cell through the layout-aware setter.
func FromList(data [][]float64, l Layout, tileSize int) (*LayoutTensor, error) {
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

	t, err := Zeros(len(data), cols, l, tileSize)
	if err != nil {
		return nil, err
	}
	for i, row := range data {
		for j, v := range row {
			t.Set(i, j, v)
		}
	}
	return t, nil
}

// offset maps a logical (i, j) to a position in the storage buffer.
func (t *LayoutTensor) offset(i, j int) int {
	switch t.layout {
	case ColMajor:
		return j*t.rows + i
	case Tiled:
		ts := t.tileSize
		tilesPerRow := (t.cols + ts - 1) / ts
		tileIdx := i/ts*tilesPerRow + j/ts
		return tileIdx*ts*ts + (i%ts)*ts + j%ts
	default:
		return i*t.cols + j
	}
}

// checkBounds panics on out-of-range indices, slice-index style.
func (t *LayoutTensor) checkBounds(i, j int) {
	if i < 0 || i >= t.rows || j < 0 || j >= t.cols {
		panic(fmt.Sprintf("layout: index (%d, %d) out of range for %dx%d tensor",
			i, j, t.rows, t.cols))
	}
}

// Get returns the element at logical position (i, j).
// Panics if the index is out of range.
func (t *LayoutTensor) Get(i, j int) float64 {
	t.checkBounds(i, j)
	return t.data[t.offset(i, j)]
}

// Set stores v at logical position (i, j).
// Panics if the index is out of range.
func (t *LayoutTensor) Set(i, j int, v float64) {
	t.checkBounds(i, j)
	t.data[t.offset(i, j)] = v
}

// Shape returns the logical dimensions (rows, cols).
func (t *LayoutTensor) Shape() (rows, cols int) {
	return t.rows, t.cols
}

// LayoutName returns the canonical layout name.
func (t *LayoutTensor) LayoutName() string {
	return t.layout.String()
}

// TileSize returns the tile edge; meaningful only for the tiled layout.
func (t *LayoutTensor) TileSize() int {
	return t.tileSize
}

// ToList rebuilds the logical row-major nested list regardless of storage
// order. Padding never appears in the result.
func (t *LayoutTensor) ToList() [][]float64 {
	out := make([][]float64, t.rows)
	for i := range out {
		row := make([]float64, t.cols)
		for j := range row {
			row[j] = t.Get(i, j)
		}
		out[i] = row
	}
	return out
}

// MemoryView returns a copy of the raw buffer in storage order. For the
// tiled layout this includes the padding cells; they hold zero (no public
// operation writes into padding), so the view's sum equals the logical sum.
func (t *LayoutTensor) MemoryView() []float64 {
	view := make([]float64, len(t.data))
	copy(view, t.data)
	return view
}

// String returns a shape/layout summary, with the tile size appended for
// the tiled layout.
func (t *LayoutTensor) String() string {
	s := fmt.Sprintf("LayoutTensor(shape=(%d, %d), layout=%s", t.rows, t.cols, t.layout)
	if t.layout == Tiled {
		s += fmt.Sprintf(", tile_size=%d", t.tileSize)
	}
	return s + ")"
}
