// Package main provides the GradKit CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gradkit-ml/gradkit/layout"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("GradKit %s\n", version)
			return
		case "bench":
			path := ""
			if len(os.Args) > 2 {
				path = os.Args[2]
			}
			if err := runBench(os.Stdout, path); err != nil {
				fmt.Fprintf(os.Stderr, "gradkit bench: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("GradKit - scalar autodiff and layout-aware tensors for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version             Show version")
	fmt.Println("  bench [suite.yaml]  Run layout traversal benchmarks")
}

// benchCase describes one tensor to benchmark.
type benchCase struct {
	Rows     int    `yaml:"rows"`
	Cols     int    `yaml:"cols"`
	Layout   string `yaml:"layout"`
	TileSize int    `yaml:"tile_size"`
}

// benchSuite is the YAML suite file format.
type benchSuite struct {
	Cases []benchCase `yaml:"cases"`
}

// defaultSuite pits the three layouts against each other on a square tensor
// large enough for traversal order to matter.
func defaultSuite() benchSuite {
	return benchSuite{Cases: []benchCase{
		{Rows: 512, Cols: 512, Layout: "row_major"},
		{Rows: 512, Cols: 512, Layout: "col_major"},
		{Rows: 512, Cols: 512, Layout: "tiled", TileSize: 16},
	}}
}

func loadSuite(path string) (benchSuite, error) {
	if path == "" {
		return defaultSuite(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return benchSuite{}, fmt.Errorf("read suite: %w", err)
	}

	var suite benchSuite
	if err := yaml.Unmarshal(raw, &suite); err != nil {
		return benchSuite{}, fmt.Errorf("parse suite: %w", err)
	}
	if len(suite.Cases) == 0 {
		return benchSuite{}, fmt.Errorf("suite %q has no cases", path)
	}
	return suite, nil
}

func runBench(out io.Writer, path string) error {
	suite, err := loadSuite(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%-10s %-10s %12s %12s %12s %14s\n",
		"layout", "shape", "row_sum ms", "col_sum ms", "raw ms", "sum")

	for _, c := range suite.Cases {
		ts := c.TileSize
		if ts == 0 {
			ts = layout.DefaultTileSize
		}

		t, err := layout.Zeros(c.Rows, c.Cols, layout.Parse(c.Layout), ts)
		if err != nil {
			return fmt.Errorf("case %dx%d %s: %w", c.Rows, c.Cols, c.Layout, err)
		}
		for i := 0; i < c.Rows; i++ {
			for j := 0; j < c.Cols; j++ {
				t.Set(i, j, 1)
			}
		}

		row := layout.BenchmarkRowSum(t)
		col := layout.BenchmarkColSum(t)
		raw := layout.BenchmarkRawSequential(t)

		fmt.Fprintf(out, "%-10s %-10s %12.2f %12.2f %12.2f %14.0f\n",
			t.LayoutName(), fmt.Sprintf("%dx%d", c.Rows, c.Cols),
			row.TimeMS, col.TimeMS, raw.TimeMS, raw.Sum)
	}
	return nil
}
