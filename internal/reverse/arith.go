package reverse

// Arithmetic operations. Each returns a freshly allocated result node whose
// edges encode the analytic partial with respect to each operand. Edges are
// never invoked at construction time; they run during Backward, when the
// result's grad has been fully accumulated.

// Add returns a + b.
func (a *Var) Add(b *Var) *Var {
	out := New(a.value + b.value)
	out.addEdge(a, func() float64 { return out.grad })
	out.addEdge(b, func() float64 { return out.grad })
	return out
}

// Sub returns a - b.
func (a *Var) Sub(b *Var) *Var {
	out := New(a.value - b.value)
	out.addEdge(a, func() float64 { return out.grad })
	out.addEdge(b, func() float64 { return -out.grad })
	return out
}

// Mul returns a * b. Product rule: ∂(ab)/∂a = b, ∂(ab)/∂b = a.
func (a *Var) Mul(b *Var) *Var {
	out := New(a.value * b.value)
	out.addEdge(a, func() float64 { return out.grad * b.value })
	out.addEdge(b, func() float64 { return out.grad * a.value })
	return out
}

// Div returns a / b. ∂(a/b)/∂a = 1/b, ∂(a/b)/∂b = -a/b².
// Division by a zero-valued operand follows float64 semantics (Inf/NaN).
func (a *Var) Div(b *Var) *Var {
	out := New(a.value / b.value)
	out.addEdge(a, func() float64 { return out.grad / b.value })
	out.addEdge(b, func() float64 { return out.grad * (-a.value / (b.value * b.value)) })
	return out
}

// Neg returns -a.
func (a *Var) Neg() *Var {
	out := New(-a.value)
	out.addEdge(a, func() float64 { return -out.grad })
	return out
}

// AddScalar returns a + x, promoting x to an edge-less constant node.
// The constant's grad is still written during Backward but is unobservable
// outside this call.
func (a *Var) AddScalar(x float64) *Var {
	return a.Add(New(x))
}

// SubScalar returns a - x, promoting x to an edge-less constant node.
func (a *Var) SubScalar(x float64) *Var {
	return a.Sub(New(x))
}

// MulScalar returns a * x, promoting x to an edge-less constant node.
func (a *Var) MulScalar(x float64) *Var {
	return a.Mul(New(x))
}

// DivScalar returns a / x, promoting x to an edge-less constant node.
func (a *Var) DivScalar(x float64) *Var {
	return a.Div(New(x))
}
