// Copyright 2025 The GradKit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package reverse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gradkit-ml/gradkit/reverse"
)

// TestPublicAPI exercises the facade end to end: f(x, y) = x²y + y.
func TestPublicAPI(t *testing.T) {
	x := reverse.New(3)
	y := reverse.New(2)
	f := x.Mul(x).Mul(y).Add(y)

	f.Backward()

	assert.InDelta(t, 20.0, f.Val(), 1e-12)
	assert.InDelta(t, 12.0, x.Grad(), 1e-12)
	assert.InDelta(t, 10.0, y.Grad(), 1e-12)

	f.ZeroGrad()
	assert.Zero(t, x.Grad())
}

func TestPublicTranscendentals(t *testing.T) {
	x := reverse.New(0)
	f := reverse.Sin(x).Mul(reverse.Exp(x))
	f.Backward()

	assert.InDelta(t, 0.0, f.Val(), 1e-12)
	assert.InDelta(t, 1.0, x.Grad(), 1e-12)

	_ = reverse.Cos(reverse.New(1))
	_ = reverse.Log(reverse.New(1))
}
