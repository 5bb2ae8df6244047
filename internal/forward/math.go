package forward

import "math"

// Transcendental functions lifted to duals. Each applies the chain rule with
// the analytic partial of the primal function. Domain violations (log of a
// non-positive number, sqrt of a negative, ...) propagate float64 NaN/Inf;
// nothing is raised.

// Sin returns sin(x) with derivative cos(x)·x'.
func Sin(x Dual) Dual {
	return Dual{Val: math.Sin(x.Val), Grad: math.Cos(x.Val) * x.Grad}
}

// Cos returns cos(x) with derivative -sin(x)·x'.
func Cos(x Dual) Dual {
	return Dual{Val: math.Cos(x.Val), Grad: -math.Sin(x.Val) * x.Grad}
}

// Exp returns e^x with derivative e^x·x'.
func Exp(x Dual) Dual {
	e := math.Exp(x.Val)
	return Dual{Val: e, Grad: e * x.Grad}
}

// Log returns the natural logarithm with derivative x'/x.
func Log(x Dual) Dual {
	return Dual{Val: math.Log(x.Val), Grad: x.Grad / x.Val}
}

// Pow returns x^n for a constant real exponent n, with derivative
// n·x^(n-1)·x'.
func Pow(x Dual, n float64) Dual {
	return Dual{Val: math.Pow(x.Val, n), Grad: n * math.Pow(x.Val, n-1) * x.Grad}
}

// Sqrt returns √x with derivative x'/(2√x).
func Sqrt(x Dual) Dual {
	s := math.Sqrt(x.Val)
	return Dual{Val: s, Grad: x.Grad / (2 * s)}
}
