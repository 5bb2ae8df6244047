package reverse

// topoOrder appends every node reachable from v in DFS post-order: parents
// (closer to the inputs) land earlier in the list, v itself lands last. Any
// linear extension of the DAG order works because gradient addition is
// commutative.
func (v *Var) topoOrder(order []*Var, visited map[*Var]bool) []*Var {
	if visited[v] {
		return order
	}
	visited[v] = true
	for _, e := range v.edges {
		order = e.parent.topoOrder(order, visited)
	}
	return append(order, v)
}

// Backward seeds v with grad 1 and performs one backpropagation sweep,
// accumulating gradients into every node reachable from v.
//
// The post-order list places the root last, so iterating it in reverse
// visits the root first and guarantees that a node's grad is fully
// accumulated before any of its edges fire.
//
// Backward is not idempotent: calling it again without ZeroGrad stacks a
// second set of contributions on top of the first.
func (v *Var) Backward() {
	order := v.topoOrder(nil, make(map[*Var]bool))

	v.grad = 1
	for i := len(order) - 1; i >= 0; i-- {
		for _, e := range order[i].edges {
			e.parent.grad += e.partial()
		}
	}
}

// ZeroGrad resets grad to 0 at every node reachable from v. This is the
// supported way to reuse a graph across multiple Backward calls.
func (v *Var) ZeroGrad() {
	v.zeroGrad(make(map[*Var]bool))
}

func (v *Var) zeroGrad(visited map[*Var]bool) {
	if visited[v] {
		return
	}
	visited[v] = true
	v.grad = 0
	for _, e := range v.edges {
		e.parent.zeroGrad(visited)
	}
}
