// Copyright 2025 The GradKit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package reverse is the public API for reverse-mode automatic
// differentiation (backpropagation) over scalar computation graphs.
//
// Every operation allocates a fresh Var node in a dynamically built DAG.
// Calling Backward on a root seeds it with gradient 1 and accumulates
// gradients into every reachable input in a single sweep, so a function
// ℝⁿ → ℝ yields all n partials at once. Backward calls accumulate; use
// ZeroGrad to reuse a graph.
//
// Example:
//
//	x := reverse.New(3)
//	y := reverse.New(2)
//	f := x.Mul(x).Mul(y).Add(y) // f = x²y + y
//	f.Backward()
//	fmt.Println(x.Grad(), y.Grad()) // 12, 10
package reverse

import "github.com/gradkit-ml/gradkit/internal/reverse"

// Var is a node in the computation DAG.
type Var = reverse.Var

// New creates a leaf node with the given value and gradient 0.
func New(x float64) *Var { return reverse.New(x) }

// Sin returns a node for sin(a).
func Sin(a *Var) *Var { return reverse.Sin(a) }

// Cos returns a node for cos(a).
func Cos(a *Var) *Var { return reverse.Cos(a) }

// Exp returns a node for e^a.
func Exp(a *Var) *Var { return reverse.Exp(a) }

// Log returns a node for the natural logarithm of a.
func Log(a *Var) *Var { return reverse.Log(a) }
