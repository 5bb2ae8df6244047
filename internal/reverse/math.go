package reverse

import "math"

// Transcendental operations. The closed set on Var is sin, cos, exp, log and
// pow with a constant exponent; square roots are expressed as Pow(x, 0.5).
// Domain violations propagate float64 NaN/Inf in the node's value.

// Pow returns a^n for a constant real exponent n.
// ∂(aⁿ)/∂a = n·aⁿ⁻¹.
func (a *Var) Pow(n float64) *Var {
	out := New(math.Pow(a.value, n))
	out.addEdge(a, func() float64 { return out.grad * n * math.Pow(a.value, n-1) })
	return out
}

// Sin returns sin(a). ∂sin(a)/∂a = cos(a).
func Sin(a *Var) *Var {
	out := New(math.Sin(a.value))
	out.addEdge(a, func() float64 { return out.grad * math.Cos(a.value) })
	return out
}

// Cos returns cos(a). ∂cos(a)/∂a = -sin(a).
func Cos(a *Var) *Var {
	out := New(math.Cos(a.value))
	out.addEdge(a, func() float64 { return out.grad * -math.Sin(a.value) })
	return out
}

// Exp returns e^a. The partial reuses the already-computed result value.
func Exp(a *Var) *Var {
	out := New(math.Exp(a.value))
	out.addEdge(a, func() float64 { return out.grad * out.value })
	return out
}

// Log returns the natural logarithm. ∂log(a)/∂a = 1/a.
func Log(a *Var) *Var {
	out := New(math.Log(a.value))
	out.addEdge(a, func() float64 { return out.grad / a.value })
	return out
}
