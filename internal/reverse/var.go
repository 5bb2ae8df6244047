// Package reverse implements reverse-mode automatic differentiation
// (backpropagation) over a dynamically built computation graph of scalars.
//
// Every operation allocates a fresh Var node and attaches one backward edge
// per operand. An edge pairs a parent pointer with a closure that computes
// the local partial times the downstream gradient at the moment it is
// invoked. Backward walks the graph once in reverse topological order and
// accumulates gradients at every reachable input, so a function ℝⁿ → ℝ
// yields all n partials in a single sweep.
//
// Usage:
//
//	x := reverse.New(3)
//	y := reverse.New(2)
//	f := x.Mul(x).Mul(y).Add(y) // f = x²y + y
//	f.Backward()
//	fmt.Println(x.Grad(), y.Grad()) // 12, 10
//
// Repeated Backward calls accumulate; call ZeroGrad on the root to reuse a
// graph across passes.
package reverse

import "fmt"

// edge records how gradient flows from a result back to one of its operands.
// The partial closure returns ∂result/∂parent · result.grad, reading whatever
// primals it captured at construction time and the result's grad at call time.
type edge struct {
	parent  *Var
	partial func() float64
}

// Var is a node in the computation DAG. Its value is fixed at construction;
// its grad starts at zero and is written only by Backward and ZeroGrad.
//
// Edges point strictly backward to nodes created earlier, so the graph is
// acyclic by construction and the root transitively keeps every reachable
// node alive.
type Var struct {
	value float64
	grad  float64
	edges []edge
}

// New creates a leaf node with the given value, no edges, and grad 0.
func New(x float64) *Var {
	return &Var{value: x}
}

// Val returns the primal value.
func (v *Var) Val() float64 {
	return v.value
}

// Grad returns the accumulated gradient.
func (v *Var) Grad() float64 {
	return v.grad
}

// addEdge registers "when backpropagating through v, call partial and add
// the result to parent's grad".
func (v *Var) addEdge(parent *Var, partial func() float64) {
	v.edges = append(v.edges, edge{parent: parent, partial: partial})
}

// String returns the canonical representation Var(val=V, grad=G).
func (v *Var) String() string {
	return fmt.Sprintf("Var(val=%g, grad=%g)", v.value, v.grad)
}
