// Package layout implements a dense 2-D tensor whose (i, j) → offset mapping
// is chosen at construction time from a closed set of memory layouts:
// row-major, column-major, and tiled (fixed-size square blocks stored
// contiguously, with the logical shape padded up to whole tiles).
//
// Logical semantics are identical across layouts; only the storage order
// differs. The companion benchmarks expose the cache consequences of
// traversal order relative to layout.
package layout

// Layout selects the (i, j) → offset function of a LayoutTensor.
type Layout int

// Supported memory layouts.
const (
	RowMajor Layout = iota
	ColMajor
	Tiled
)

// Parse maps a layout name to a Layout. Unknown names coerce to RowMajor,
// matching the reference behavior, so Parse never fails.
func Parse(name string) Layout {
	switch name {
	case "row_major":
		return RowMajor
	case "col_major":
		return ColMajor
	case "tiled":
		return Tiled
	default:
		return RowMajor
	}
}

// String returns the canonical layout name.
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "row_major"
	case ColMajor:
		return "col_major"
	case Tiled:
		return "tiled"
	default:
		return "unknown"
	}
}

// pad rounds n up to the next multiple of tile.
func pad(n, tile int) int {
	return (n + tile - 1) / tile * tile
}
