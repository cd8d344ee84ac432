package matrix

import (
	"github.com/born-ml/netlayer/internal/parallel"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Transpose returns a new cols×rows matrix.
func (m *Matrix) Transpose() *Matrix {
	out := Zeros(m.cols, m.rows)
	if src := m.dense(); src != nil {
		mat.NewDense(m.cols, m.rows, out.data).Copy(src.T())
	}
	return out
}

// Apply returns a new matrix with f applied to every element.
//
// Large matrices are split across goroutines, so f must be safe to call
// concurrently. Pure scalar functions always are.
func (m *Matrix) Apply(f func(float64) float64) *Matrix {
	out := Zeros(m.rows, m.cols)
	src := m.data
	dst := out.data
	parallel.ForRange(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = f(src[i])
		}
	}, parallel.DefaultConfig())
	return out
}

// ElemMul returns the elementwise (Hadamard) product of m and other.
// Panics if the shapes differ.
func (m *Matrix) ElemMul(other *Matrix) *Matrix {
	if !m.Shape().Equal(other.Shape()) {
		shapePanic("elemul: %v vs %v", m.Shape(), other.Shape())
	}
	out := Zeros(m.rows, m.cols)
	floats.MulTo(out.data, m.data, other.data)
	return out
}

// Mul returns the matrix product m·other.
// (M, K) · (K, N) -> (M, N). Panics if the inner dimensions differ.
func (m *Matrix) Mul(other *Matrix) *Matrix {
	if m.cols != other.rows {
		shapePanic("matmul: %v · %v", m.Shape(), other.Shape())
	}

	out := Zeros(m.rows, other.cols)
	a, b := m.dense(), other.dense()
	if a == nil || b == nil || out.Shape().IsEmpty() {
		// K == 0 gives an all-zero product; gonum cannot hold empty operands.
		return out
	}
	mat.NewDense(out.rows, out.cols, out.data).Mul(a, b)
	return out
}

// HCat appends the columns of other to the right of m.
// Panics if the row counts differ.
func (m *Matrix) HCat(other *Matrix) *Matrix {
	if m.rows != other.rows {
		shapePanic("hcat: %v and %v have different row counts", m.Shape(), other.Shape())
	}

	cols := m.cols + other.cols
	out := Zeros(m.rows, cols)
	for i := 0; i < m.rows; i++ {
		copy(out.data[i*cols:], m.data[i*m.cols:(i+1)*m.cols])
		copy(out.data[i*cols+m.cols:], other.data[i*other.cols:(i+1)*other.cols])
	}
	return out
}

// VCat appends the rows of other below m.
// Panics if the column counts differ.
func (m *Matrix) VCat(other *Matrix) *Matrix {
	if m.cols != other.cols {
		shapePanic("vcat: %v and %v have different column counts", m.Shape(), other.Shape())
	}

	out := Zeros(m.rows+other.rows, m.cols)
	copy(out.data, m.data)
	copy(out.data[len(m.data):], other.data)
	return out
}

// SelectRows returns a matrix made of the given rows, in order.
// Indices may repeat. Panics on an out-of-range index.
func (m *Matrix) SelectRows(rows []int) *Matrix {
	out := Zeros(len(rows), m.cols)
	for k, r := range rows {
		if r < 0 || r >= m.rows {
			shapePanic("select rows: index %d out of range for %v", r, m.Shape())
		}
		copy(out.data[k*m.cols:(k+1)*m.cols], m.data[r*m.cols:(r+1)*m.cols])
	}
	return out
}

// Sum returns the sum of all elements. The empty matrix sums to 0.
func (m *Matrix) Sum() float64 {
	return floats.Sum(m.data)
}

// EqualApprox reports whether both matrices have the same shape and every
// pair of elements differs by at most tol.
func (m *Matrix) EqualApprox(other *Matrix, tol float64) bool {
	if !m.Shape().Equal(other.Shape()) {
		return false
	}
	return floats.EqualApprox(m.data, other.data, tol)
}
