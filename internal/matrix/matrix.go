// Package matrix provides the dense float64 matrices and borrowed parameter
// views that the layer math is written against.
//
// Matrices are row-major and owned by whoever created them. No operation
// mutates its receiver or arguments: every result is a freshly allocated
// Matrix. Zero-row and zero-column matrices are valid values.
package matrix

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense, row-major 2-D buffer of float64 values.
//
// Example:
//
//	m, err := matrix.New(2, 3, []float64{1, 2, 3, 4, 5, 6})
//	if err != nil {
//	    return err
//	}
//	t := m.Transpose() // 3x2
type Matrix struct {
	rows int
	cols int
	data []float64
}

// New creates a rows×cols matrix from row-major data.
// The slice is copied. A nil data slice yields a zero matrix.
func New(rows, cols int, data []float64) (*Matrix, error) {
	shape := Shape{Rows: rows, Cols: cols}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if data == nil {
		return Zeros(rows, cols), nil
	}
	if len(data) != shape.NumElements() {
		return nil, errors.Wrapf(ErrShape, "%v requires %d elements, got %d",
			shape, shape.NumElements(), len(data))
	}

	buf := make([]float64, len(data))
	copy(buf, data)
	return &Matrix{rows: rows, cols: cols, data: buf}, nil
}

// MustNew is like New but panics on error.
func MustNew(rows, cols int, data []float64) *Matrix {
	m, err := New(rows, cols, data)
	if err != nil {
		panic(err)
	}
	return m
}

// FromRows builds a matrix from a slice of equally sized rows.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return Zeros(0, 0), nil
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, errors.Wrapf(ErrShape, "row %d has %d columns, expected %d", i, len(r), cols)
		}
		data = append(data, r...)
	}
	return &Matrix{rows: len(rows), cols: cols, data: data}, nil
}

// Zeros creates a rows×cols matrix filled with zeros.
func Zeros(rows, cols int) *Matrix {
	if err := (Shape{Rows: rows, Cols: cols}).Validate(); err != nil {
		panic(err)
	}
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// Ones creates a rows×cols matrix filled with ones.
// Used for the bias column in Linear layers.
func Ones(rows, cols int) *Matrix {
	m := Zeros(rows, cols)
	for i := range m.data {
		m.data[i] = 1
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.cols
}

// Shape returns the matrix dimensions.
func (m *Matrix) Shape() Shape {
	return Shape{Rows: m.rows, Cols: m.cols}
}

// At returns the element at row i, column j.
// Panics if the index is out of range.
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(errors.Errorf("matrix: index (%d,%d) out of range for %v", i, j, m.Shape()))
	}
	return m.data[i*m.cols+j]
}

// Data returns a copy of the row-major elements.
func (m *Matrix) Data() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{rows: m.rows, cols: m.cols, data: m.Data()}
}

// dense wraps the backing slice in a gonum matrix without copying.
// Callers must not write through the result. Returns nil for empty matrices,
// which gonum cannot represent.
func (m *Matrix) dense() *mat.Dense {
	if m.Shape().IsEmpty() {
		return nil
	}
	return mat.NewDense(m.rows, m.cols, m.data)
}
