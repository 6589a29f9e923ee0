package csr

// Transpose returns mᵀ as a new Matrix using the counting-sort CSR
// transpose. Rows of the result hold their entries in ascending original-row
// order, which also makes Transpose a stable way to obtain sorted columns.
//
// Complexity: O(Rows + Cols + nnz) time, O(Cols + nnz) extra memory.
func (m *Matrix) Transpose() (*Matrix, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	nnz := m.NNZ()
	t := &Matrix{
		Rows: m.Cols,
		Cols: m.Rows,
		Ptr:  make([]int, m.Cols+1),
		Ind:  make([]int, nnz),
		Val:  make([]float64, nnz),
	}

	// 1) Count entries per column of m.
	for _, j := range m.Ind[:nnz] {
		t.Ptr[j+1]++
	}
	// 2) Prefix-sum into the transposed row pointer.
	for j := 0; j < m.Cols; j++ {
		t.Ptr[j+1] += t.Ptr[j]
	}
	// 3) Scatter entries, tracking a moving cursor per transposed row.
	next := make([]int, m.Cols)
	copy(next, t.Ptr[:m.Cols])
	for i := 0; i < m.Rows; i++ {
		for p := m.Ptr[i]; p < m.Ptr[i+1]; p++ {
			j := m.Ind[p]
			q := next[j]
			t.Ind[q] = i
			t.Val[q] = m.Val[p]
			next[j]++
		}
	}

	return t, nil
}

// WithPatternValues builds a new Matrix with the sparsity pattern of the
// receiver and values looked up in a. Entries of the pattern absent from a
// become explicit zeros. This is how the interpolation stage derives its
// C matrix (pattern of S, values of A).
//
// Complexity: O(Σ_i pattern_row_i · a_row_i) — linear row scans, since
// columns are unsorted.
func (m *Matrix) WithPatternValues(a *Matrix) (*Matrix, error) {
	if m == nil || a == nil {
		return nil, ErrNilMatrix
	}
	if m.Rows != a.Rows || m.Cols != a.Cols {
		return nil, ErrBadShape
	}
	c := m.Clone()
	for i := 0; i < c.Rows; i++ {
		for p := c.Ptr[i]; p < c.Ptr[i+1]; p++ {
			v, _ := a.At(i, c.Ind[p])
			c.Val[p] = v
		}
	}

	return c, nil
}
