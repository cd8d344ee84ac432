// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"github.com/born-ml/netlayer/internal/matrix"
)

// Matrix is a dense, row-major 2-D buffer of float64 values.
type Matrix = matrix.Matrix

// View is a non-owning, reshaped window into a flat buffer.
type View = matrix.View

// Shape holds row and column counts.
type Shape = matrix.Shape

// ErrShape is wrapped by every dimension mismatch.
var ErrShape = matrix.ErrShape

// New creates a rows×cols matrix from row-major data (copied).
func New(rows, cols int, data []float64) (*Matrix, error) {
	return matrix.New(rows, cols, data)
}

// MustNew is like New but panics on error.
func MustNew(rows, cols int, data []float64) *Matrix {
	return matrix.MustNew(rows, cols, data)
}

// FromRows builds a matrix from equally sized rows.
func FromRows(rows [][]float64) (*Matrix, error) {
	return matrix.FromRows(rows)
}

// Zeros creates a zero-filled matrix.
func Zeros(rows, cols int) *Matrix {
	return matrix.Zeros(rows, cols)
}

// Ones creates a matrix filled with ones.
func Ones(rows, cols int) *Matrix {
	return matrix.Ones(rows, cols)
}

// NewView reshapes buf into a rows×cols window without copying.
func NewView(buf []float64, rows, cols int) (View, error) {
	return matrix.NewView(buf, rows, cols)
}

// MustView is like NewView but panics on error.
func MustView(buf []float64, rows, cols int) View {
	return matrix.MustView(buf, rows, cols)
}
