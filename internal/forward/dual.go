// Package forward implements forward-mode automatic differentiation over
// dual numbers.
//
// A Dual carries a primal value together with its derivative with respect to
// a single seeded input. Every arithmetic operation applies the chain rule
// locally, so a full derivative falls out of one evaluation pass with no
// graph and constant memory.
//
// Usage:
//
//	x := forward.Variable(2.0)            // seeded: dx/dx = 1
//	y := x.Mul(x).Add(x.MulScalar(3))     // y = x² + 3x
//	fmt.Println(y.Val, y.Grad)            // 10, 7
//
// Forward mode differentiates with respect to exactly one input per
// evaluation; to differentiate with respect to several inputs, evaluate once
// per input (or use the reverse package).
package forward

import "fmt"

// Dual is a (value, derivative) pair. Duals are immutable value objects:
// every operation returns a fresh Dual and equality is structural.
type Dual struct {
	Val  float64 // primal value
	Grad float64 // derivative with respect to the seeded variable
}

// Variable creates the designated input, seeded with derivative 1.
func Variable(x float64) Dual {
	return Dual{Val: x, Grad: 1}
}

// Constant creates a literal with derivative 0.
func Constant(x float64) Dual {
	return Dual{Val: x, Grad: 0}
}

// Add returns a + b: (u, u') + (v, v') = (u+v, u'+v').
func (a Dual) Add(b Dual) Dual {
	return Dual{Val: a.Val + b.Val, Grad: a.Grad + b.Grad}
}

// Sub returns a - b: (u, u') - (v, v') = (u-v, u'-v').
func (a Dual) Sub(b Dual) Dual {
	return Dual{Val: a.Val - b.Val, Grad: a.Grad - b.Grad}
}

// Mul returns a * b by the product rule: (uv, u'v + uv').
func (a Dual) Mul(b Dual) Dual {
	return Dual{Val: a.Val * b.Val, Grad: a.Grad*b.Val + a.Val*b.Grad}
}

// Div returns a / b by the quotient rule: (u/v, (u'v - uv')/v²).
// Division by a zero-valued operand follows float64 semantics (Inf/NaN).
func (a Dual) Div(b Dual) Dual {
	denom := b.Val * b.Val
	return Dual{Val: a.Val / b.Val, Grad: (a.Grad*b.Val - a.Val*b.Grad) / denom}
}

// Neg returns -a.
func (a Dual) Neg() Dual {
	return Dual{Val: -a.Val, Grad: -a.Grad}
}

// AddScalar returns a + x, promoting x to a constant.
func (a Dual) AddScalar(x float64) Dual {
	return a.Add(Constant(x))
}

// SubScalar returns a - x, promoting x to a constant.
func (a Dual) SubScalar(x float64) Dual {
	return a.Sub(Constant(x))
}

// MulScalar returns a * x, promoting x to a constant.
func (a Dual) MulScalar(x float64) Dual {
	return a.Mul(Constant(x))
}

// DivScalar returns a / x, promoting x to a constant.
func (a Dual) DivScalar(x float64) Dual {
	return a.Div(Constant(x))
}

// String returns the canonical representation Dual(val=V, grad=G).
func (a Dual) String() string {
	return fmt.Sprintf("Dual(val=%g, grad=%g)", a.Val, a.Grad)
}
