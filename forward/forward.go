// Copyright 2025 The GradKit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package forward is the public API for forward-mode automatic
// differentiation over dual numbers.
//
// A Dual is an immutable (value, derivative) pair; arithmetic on duals
// applies the chain rule locally, so one evaluation pass yields both f(x)
// and f'(x) with respect to the single seeded input.
//
// Example:
//
//	x := forward.Variable(2.0)
//	y := x.Mul(x).Add(x.MulScalar(3)) // y = x² + 3x
//	fmt.Println(y)                    // Dual(val=10, grad=7)
package forward

import "github.com/gradkit-ml/gradkit/internal/forward"

// Dual is a (value, derivative) pair.
type Dual = forward.Dual

// Variable creates the designated input, seeded with derivative 1.
func Variable(x float64) Dual { return forward.Variable(x) }

// Constant creates a literal with derivative 0.
func Constant(x float64) Dual { return forward.Constant(x) }

// Sin returns sin(x) with its derivative.
func Sin(x Dual) Dual { return forward.Sin(x) }

// Cos returns cos(x) with its derivative.
func Cos(x Dual) Dual { return forward.Cos(x) }

// Exp returns e^x with its derivative.
func Exp(x Dual) Dual { return forward.Exp(x) }

// Log returns the natural logarithm with its derivative.
func Log(x Dual) Dual { return forward.Log(x) }

// Pow returns x^n for a constant real exponent n, with its derivative.
func Pow(x Dual, n float64) Dual { return forward.Pow(x, n) }

// Sqrt returns √x with its derivative.
func Sqrt(x Dual) Dual { return forward.Sqrt(x) }
