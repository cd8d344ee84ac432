package matrix

import "github.com/pkg/errors"

// View is a non-owning, reshaped window into a flat parameter buffer.
//
// A View never copies on construction: it reads straight from the caller's
// buffer, so writes made by the buffer owner between calls are visible.
// The zero View is a valid 0x0 window.
type View struct {
	rows int
	cols int
	data []float64
}

// NewView reshapes buf into a rows×cols window. len(buf) must equal rows*cols.
func NewView(buf []float64, rows, cols int) (View, error) {
	shape := Shape{Rows: rows, Cols: cols}
	if err := shape.Validate(); err != nil {
		return View{}, err
	}
	if len(buf) != shape.NumElements() {
		return View{}, errors.Wrapf(ErrShape, "view %v needs %d elements, buffer has %d",
			shape, shape.NumElements(), len(buf))
	}
	return View{rows: rows, cols: cols, data: buf}, nil
}

// MustView is like NewView but panics on error.
func MustView(buf []float64, rows, cols int) View {
	v, err := NewView(buf, rows, cols)
	if err != nil {
		panic(err)
	}
	return v
}

// Rows returns the number of rows.
func (v View) Rows() int { return v.rows }

// Cols returns the number of columns.
func (v View) Cols() int { return v.cols }

// Shape returns the view dimensions.
func (v View) Shape() Shape {
	return Shape{Rows: v.rows, Cols: v.cols}
}

// At returns the element at row i, column j.
func (v View) At(i, j int) float64 {
	if i < 0 || i >= v.rows || j < 0 || j >= v.cols {
		panic(errors.Errorf("view: index (%d,%d) out of range for %v", i, j, v.Shape()))
	}
	return v.data[i*v.cols+j]
}

// ToMatrix copies the window into an owned Matrix.
func (v View) ToMatrix() *Matrix {
	out := Zeros(v.rows, v.cols)
	copy(out.data, v.data)
	return out
}
