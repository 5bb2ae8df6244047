package layout

import "time"

// BenchIters is the number of full traversals each benchmark performs.
const BenchIters = 1000

// BenchResult holds the final traversal sum and the wall time for all
// BenchIters iterations.
type BenchResult struct {
	Sum    float64
	TimeMS float64
}

// BenchmarkRowSum sums every cell iterating i outer, j inner through the
// logical accessor: sequential for row-major storage, strided for
// col-major, block-friendly for tiled.
func BenchmarkRowSum(t *LayoutTensor) BenchResult {
	start := time.Now()

	var sum float64
	for iter := 0; iter < BenchIters; iter++ {
		sum = 0
		for i := 0; i < t.rows; i++ {
			for j := 0; j < t.cols; j++ {
				sum += t.Get(i, j)
			}
		}
	}

	return BenchResult{Sum: sum, TimeMS: msSince(start)}
}

// BenchmarkColSum sums every cell iterating j outer, i inner: sequential for
// col-major storage, strided for row-major.
func BenchmarkColSum(t *LayoutTensor) BenchResult {
	start := time.Now()

	var sum float64
	for iter := 0; iter < BenchIters; iter++ {
		sum = 0
		for j := 0; j < t.cols; j++ {
			for i := 0; i < t.rows; i++ {
				sum += t.Get(i, j)
			}
		}
	}

	return BenchResult{Sum: sum, TimeMS: msSince(start)}
}

// BenchmarkRawSequential walks the underlying buffer linearly, always
// sequential regardless of layout. For the tiled layout the walk includes
// the padding cells, which contribute 0.
func BenchmarkRawSequential(t *LayoutTensor) BenchResult {
	start := time.Now()

	var sum float64
	for iter := 0; iter < BenchIters; iter++ {
		sum = 0
		for _, v := range t.data {
			sum += v
		}
	}

	return BenchResult{Sum: sum, TimeMS: msSince(start)}
}

func msSince(start time.Time) float64 {
	return time.Since(start).Seconds() * 1000
}
