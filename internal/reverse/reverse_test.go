package reverse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gradkit-ml/gradkit/internal/reverse"
)

// TestTwoInputs checks f(x, y) = x²y + y at x=3, y=2.
// Expected: f = 20, ∂f/∂x = 2xy = 12, ∂f/∂y = x² + 1 = 10.
func TestTwoInputs(t *testing.T) {
	x := reverse.New(3)
	y := reverse.New(2)
	f := x.Mul(x).Mul(y).Add(y)

	f.Backward()

	assert.InDelta(t, 20.0, f.Val(), 1e-12)
	assert.InDelta(t, 12.0, x.Grad(), 1e-12)
	assert.InDelta(t, 10.0, y.Grad(), 1e-12)
}

// TestSharedSubexpression adds the same Var to itself: both edges of x+x
// must fire, giving ∂(2x)/∂x = 2.
func TestSharedSubexpression(t *testing.T) {
	x := reverse.New(5)
	h := x.Add(x)

	h.Backward()

	assert.InDelta(t, 10.0, h.Val(), 1e-12)
	assert.InDelta(t, 2.0, x.Grad(), 1e-12)
}

// TestDiamondGraph reuses an intermediate node on two paths:
// f = x² + x², so ∂f/∂x = 4x.
func TestDiamondGraph(t *testing.T) {
	x := reverse.New(3)
	sq := x.Mul(x)
	f := sq.Add(sq)

	f.Backward()

	assert.InDelta(t, 18.0, f.Val(), 1e-12)
	assert.InDelta(t, 12.0, x.Grad(), 1e-12)
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name    string
		build   func(a, b *reverse.Var) *reverse.Var
		wantVal float64
		wantDA  float64
		wantDB  float64
	}{
		{"add", func(a, b *reverse.Var) *reverse.Var { return a.Add(b) }, 7, 1, 1},
		{"sub", func(a, b *reverse.Var) *reverse.Var { return a.Sub(b) }, -1, 1, -1},
		{"mul", func(a, b *reverse.Var) *reverse.Var { return a.Mul(b) }, 12, 4, 3},
		{"div", func(a, b *reverse.Var) *reverse.Var { return a.Div(b) }, 0.75, 0.25, -3.0 / 16.0},
		{"neg a", func(a, b *reverse.Var) *reverse.Var { return a.Neg() }, -3, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := reverse.New(3)
			b := reverse.New(4)
			f := tt.build(a, b)

			f.Backward()

			assert.InDelta(t, tt.wantVal, f.Val(), 1e-12)
			assert.InDelta(t, tt.wantDA, a.Grad(), 1e-12)
			assert.InDelta(t, tt.wantDB, b.Grad(), 1e-12)
		})
	}
}

func TestTranscendentals(t *testing.T) {
	tests := []struct {
		name    string
		build   func(a *reverse.Var) *reverse.Var
		x       float64
		wantVal float64
		wantDX  float64
	}{
		{"sin", reverse.Sin, 0.7, math.Sin(0.7), math.Cos(0.7)},
		{"cos", reverse.Cos, 0.7, math.Cos(0.7), -math.Sin(0.7)},
		{"exp", reverse.Exp, 1.3, math.Exp(1.3), math.Exp(1.3)},
		{"log", reverse.Log, 2.4, math.Log(2.4), 1 / 2.4},
		{"pow3", func(a *reverse.Var) *reverse.Var { return a.Pow(3) }, 2, 8, 12},
		{"pow0.5", func(a *reverse.Var) *reverse.Var { return a.Pow(0.5) }, 9, 3, 1.0 / 6.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := reverse.New(tt.x)
			f := tt.build(x)

			f.Backward()

			assert.InDelta(t, tt.wantVal, f.Val(), 1e-12)
			assert.InDelta(t, tt.wantDX, x.Grad(), 1e-12)
		})
	}
}

// TestBackwardAccumulatesAcrossCalls locks down the chosen semantics:
// Backward is non-idempotent, and ZeroGrad restores a clean slate. Two
// consecutive sweeps yield exactly twice the gradient of a single sweep.
func TestBackwardAccumulatesAcrossCalls(t *testing.T) {
	x := reverse.New(3)
	f := x.Mul(x) // f = x², df/dx = 6

	f.Backward()
	once := x.Grad()
	assert.InDelta(t, 6.0, once, 1e-12)

	f.Backward()
	assert.InDelta(t, 2*once, x.Grad(), 1e-12)

	f.ZeroGrad()
	assert.Zero(t, x.Grad())
	assert.Zero(t, f.Grad())

	f.Backward()
	assert.InDelta(t, once, x.Grad(), 1e-12)
}

// TestBackwardLinearity checks d(a·f + b·g)/dx = a·df/dx + b·dg/dx for
// constants a, b.
func TestBackwardLinearity(t *testing.T) {
	const a, b = 2.5, -1.5
	atX := 1.7

	// f = sin(x), g = x³
	grad := func(build func(x *reverse.Var) *reverse.Var) float64 {
		x := reverse.New(atX)
		build(x).Backward()
		return x.Grad()
	}

	df := grad(reverse.Sin)
	dg := grad(func(x *reverse.Var) *reverse.Var { return x.Pow(3) })
	combined := grad(func(x *reverse.Var) *reverse.Var {
		return reverse.Sin(x).MulScalar(a).Add(x.Pow(3).MulScalar(b))
	})

	assert.InDelta(t, a*df+b*dg, combined, 1e-12)
}

// TestScalarPromotion verifies the scalar convenience methods behave like
// explicit edge-less constant nodes.
func TestScalarPromotion(t *testing.T) {
	x := reverse.New(4)
	f := x.MulScalar(3).AddScalar(1).SubScalar(2).DivScalar(2) // (3x - 1)/2

	f.Backward()

	assert.InDelta(t, 5.5, f.Val(), 1e-12)
	assert.InDelta(t, 1.5, x.Grad(), 1e-12)
}

// TestDomainErrors verifies that domain violations surface as NaN/Inf values
// rather than panics.
func TestDomainErrors(t *testing.T) {
	assert.True(t, math.IsNaN(reverse.Log(reverse.New(-1)).Val()))
	assert.True(t, math.IsInf(reverse.New(1).DivScalar(0).Val(), 1))
}

func TestString(t *testing.T) {
	v := reverse.New(3)
	assert.Equal(t, "Var(val=3, grad=0)", v.String())

	v.Mul(v).Backward()
	assert.Equal(t, "Var(val=3, grad=6)", v.String())
}
