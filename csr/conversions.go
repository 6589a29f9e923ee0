package csr

import "gonum.org/v1/gonum/mat"

// ToDense expands m into a gonum dense matrix. Duplicate entries within a
// row are summed. Useful for handing small operators to linear-algebra
// routines and for test oracles.
//
// Memory: O(Rows·Cols).
func (m *Matrix) ToDense() *mat.Dense {
	d := mat.NewDense(m.Rows, m.Cols, nil)
	for i := 0; i < m.Rows; i++ {
		for p := m.Ptr[i]; p < m.Ptr[i+1]; p++ {
			j := m.Ind[p]
			d.Set(i, j, d.At(i, j)+m.Val[p])
		}
	}

	return d
}

// FromDense compresses any gonum matrix into CRS form, dropping entries
// with |v| <= tol. Pass tol=0 to keep every nonzero exactly.
func FromDense(d mat.Matrix, tol float64) *Matrix {
	rows, cols := d.Dims()
	m := &Matrix{
		Rows: rows,
		Cols: cols,
		Ptr:  make([]int, rows+1),
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := d.At(i, j)
			if Magnitude(v) > tol {
				m.Ind = append(m.Ind, j)
				m.Val = append(m.Val, v)
			}
		}
		m.Ptr[i+1] = len(m.Ind)
	}

	return m
}
