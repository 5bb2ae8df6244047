// Copyright 2025 The GradKit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor is the public API for the dense rank-1/rank-2 tensor with
// element-wise arithmetic, a dense matrix multiply, and a full-tensor sum.
//
// The tensor module shares no types with the autodiff packages: its
// operations are plain numeric and are never differentiated.
package tensor

import "github.com/gradkit-ml/gradkit/internal/tensor"

// Tensor is a dense rank-1 or rank-2 tensor.
type Tensor = tensor.Tensor

// ShapeError reports an operation applied to tensors with incompatible
// dimensions.
type ShapeError = tensor.ShapeError

// Common errors.
var (
	ErrNotSupported = tensor.ErrNotSupported
	ErrInvalidShape = tensor.ErrInvalidShape
	ErrEmptyInput   = tensor.ErrEmptyInput
	ErrRaggedInput  = tensor.ErrRaggedInput
)

// Zeros creates a zero-filled tensor of rank 1 or 2.
func Zeros(shape ...int) (*Tensor, error) { return tensor.Zeros(shape...) }

// FromList creates a rank-1 tensor holding a copy of data.
func FromList(data []float64) (*Tensor, error) { return tensor.FromList(data) }

// From2D creates a rank-2 tensor from a nested row-major list.
func From2D(data [][]float64) (*Tensor, error) { return tensor.From2D(data) }
