package tensor

// Add returns the element-wise sum a + b. Both tensors must have identical
// shapes.
func (t *Tensor) Add(o *Tensor) (*Tensor, error) {
	if !t.sameShape(o) {
		return nil, &ShapeError{Op: "add", A: t.shape, B: o.shape}
	}

	out, err := Zeros(t.shape...)
	if err != nil {
		return nil, err
	}
	for i, v := range t.data {
		out.data[i] = v + o.data[i]
	}
	return out, nil
}

// Mul returns the element-wise product a * b. Both tensors must have
// identical shapes.
func (t *Tensor) Mul(o *Tensor) (*Tensor, error) {
	if !t.sameShape(o) {
		return nil, &ShapeError{Op: "mul", A: t.shape, B: o.shape}
	}

	out, err := Zeros(t.shape...)
	if err != nil {
		return nil, err
	}
	for i, v := range t.data {
		out.data[i] = v * o.data[i]
	}
	return out, nil
}

// Sum returns the sum of all elements, regardless of rank.
func (t *Tensor) Sum() float64 {
	var sum float64
	for _, v := range t.data {
		sum += v
	}
	return sum
}

// MatMul returns the dense matrix product of two rank-2 tensors. The inner
// dimensions must agree: (m×k) @ (k×n) → (m×n).
func (t *Tensor) MatMul(o *Tensor) (*Tensor, error) {
	if len(t.shape) != 2 || len(o.shape) != 2 {
		return nil, &ShapeError{Op: "matmul", A: t.shape, B: o.shape,
			Details: "both operands must be 2-D"}
	}
	m, k := t.shape[0], t.shape[1]
	kAlt, n := o.shape[0], o.shape[1]
	if k != kAlt {
		return nil, &ShapeError{Op: "matmul", A: t.shape, B: o.shape,
			Details: "inner dimensions must match"}
	}

	out, err := Zeros(m, n)
	if err != nil {
		return nil, err
	}
	// Naive O(n³): C[i,j] = sum_k A[i,k] * B[k,j]
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += t.data[i*k+kIdx] * o.data[kIdx*n+j]
			}
			out.data[i*n+j] = sum
		}
	}
	return out, nil
}
