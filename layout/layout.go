// Copyright 2025 The GradKit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package layout is the public API for the layout-aware dense 2-D tensor.
//
// A LayoutTensor stores its cells in a single contiguous buffer whose
// (i, j) → offset mapping is chosen at construction from row-major,
// column-major, or tiled storage. The benchmark functions expose the cache
// consequences of traversal order relative to layout.
//
// Example:
//
//	t, _ := layout.FromList([][]float64{{1, 2, 3}, {4, 5, 6}}, layout.Tiled, 2)
//	fmt.Println(t.ToList())             // [[1 2 3] [4 5 6]]
//	fmt.Println(len(t.MemoryView()))    // 8 (padded to 2x4)
//	res := layout.BenchmarkRowSum(t)
//	fmt.Println(res.Sum, res.TimeMS)
package layout

import "github.com/gradkit-ml/gradkit/internal/layout"

// Layout selects the (i, j) → offset function of a LayoutTensor.
type Layout = layout.Layout

// Supported memory layouts.
const (
	RowMajor Layout = layout.RowMajor
	ColMajor Layout = layout.ColMajor
	Tiled    Layout = layout.Tiled
)

// DefaultTileSize is the tile edge used when callers do not care.
const DefaultTileSize = layout.DefaultTileSize

// LayoutTensor is a dense 2-D tensor with a pluggable memory layout.
type LayoutTensor = layout.LayoutTensor

// BenchResult holds a benchmark's traversal sum and wall time.
type BenchResult = layout.BenchResult

// Construction errors.
var (
	ErrInvalidShape    = layout.ErrInvalidShape
	ErrInvalidTileSize = layout.ErrInvalidTileSize
	ErrEmptyInput      = layout.ErrEmptyInput
	ErrRaggedInput     = layout.ErrRaggedInput
)

// Parse maps a layout name to a Layout; unknown names coerce to RowMajor.
func Parse(name string) Layout { return layout.Parse(name) }

// Zeros allocates a rows × cols zero tensor, padded to whole tiles when the
// layout is Tiled.
func Zeros(rows, cols int, l Layout, tileSize int) (*LayoutTensor, error) {
	return layout.Zeros(rows, cols, l, tileSize)
}

// FromList builds a tensor from a nested row-major list.
func FromList(data [][]float64, l Layout, tileSize int) (*LayoutTensor, error) {
	return layout.FromList(data, l, tileSize)
}

// BenchmarkRowSum sums every cell iterating i outer, j inner.
func BenchmarkRowSum(t *LayoutTensor) BenchResult { return layout.BenchmarkRowSum(t) }

// BenchmarkColSum sums every cell iterating j outer, i inner.
func BenchmarkColSum(t *LayoutTensor) BenchResult { return layout.BenchmarkColSum(t) }

// BenchmarkRawSequential sums the raw buffer in storage order.
func BenchmarkRawSequential(t *LayoutTensor) BenchResult { return layout.BenchmarkRawSequential(t) }
