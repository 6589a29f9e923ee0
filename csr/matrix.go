package csr

// Matrix is an n×m sparse matrix in compressed-row storage.
//
// Row i occupies positions [Ptr[i], Ptr[i+1]) of Ind and Val. Column
// indices within a row carry no ordering guarantee.
type Matrix struct {
	Rows, Cols int
	Ptr        []int     // row pointer, len Rows+1
	Ind        []int     // column indices, len Ptr[Rows]
	Val        []float64 // values, len Ptr[Rows]
}

// New builds a Matrix from caller-supplied CRS triples and validates it.
// The slices are adopted, not copied.
func New(rows, cols int, ptr, ind []int, val []float64) (*Matrix, error) {
	m := &Matrix{Rows: rows, Cols: cols, Ptr: ptr, Ind: ind, Val: val}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// Zeros allocates an empty rows×cols Matrix with capacity for nnz entries.
// Ind and Val have length nnz; Ptr is zeroed. Intended for the two-pass
// kernels that size the output up front.
func Zeros(rows, cols, nnz int) (*Matrix, error) {
	if rows < 0 || cols < 0 || nnz < 0 {
		return nil, ErrBadShape
	}

	return &Matrix{
		Rows: rows,
		Cols: cols,
		Ptr:  make([]int, rows+1),
		Ind:  make([]int, nnz),
		Val:  make([]float64, nnz),
	}, nil
}

// Validate checks the CRS invariants:
// Ptr has length Rows+1, starts at 0, is non-decreasing; Ind and Val hold
// at least Ptr[Rows] entries; every stored column index lies in [0, Cols).
// Complexity: O(nnz).
func (m *Matrix) Validate() error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.Rows < 0 || m.Cols < 0 {
		return ErrBadShape
	}
	if len(m.Ptr) != m.Rows+1 || m.Ptr[0] != 0 {
		return ErrBadRowPtr
	}
	for i := 0; i < m.Rows; i++ {
		if m.Ptr[i+1] < m.Ptr[i] {
			return ErrBadRowPtr
		}
	}
	nnz := m.Ptr[m.Rows]
	if len(m.Ind) < nnz || len(m.Val) < nnz {
		return ErrLengthMismatch
	}
	for _, j := range m.Ind[:nnz] {
		if j < 0 || j >= m.Cols {
			return ErrIndexOutOfRange
		}
	}

	return nil
}

// NNZ returns the number of stored entries, Ptr[Rows].
func (m *Matrix) NNZ() int {
	return m.Ptr[m.Rows]
}

// Clone returns a deep copy. The copy is trimmed to NNZ entries even when
// the source carried slack capacity.
func (m *Matrix) Clone() *Matrix {
	nnz := m.NNZ()
	c := &Matrix{
		Rows: m.Rows,
		Cols: m.Cols,
		Ptr:  make([]int, len(m.Ptr)),
		Ind:  make([]int, nnz),
		Val:  make([]float64, nnz),
	}
	copy(c.Ptr, m.Ptr)
	copy(c.Ind, m.Ind[:nnz])
	copy(c.Val, m.Val[:nnz])

	return c
}

// At returns the stored value at (i, j) and whether an entry exists.
// Linear scan of row i: columns are unsorted by contract.
// Duplicate entries, if any, are summed.
func (m *Matrix) At(i, j int) (float64, bool) {
	if i < 0 || i >= m.Rows || j < 0 || j >= m.Cols {
		return 0, false
	}
	var v float64
	found := false
	for p := m.Ptr[i]; p < m.Ptr[i+1]; p++ {
		if m.Ind[p] == j {
			v += m.Val[p]
			found = true
		}
	}

	return v, found
}
