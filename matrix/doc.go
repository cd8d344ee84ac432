// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides dense float64 matrices and borrowed parameter views.
//
// # Overview
//
// Matrix is an owned, row-major 2-D buffer. Every operation returns a new
// Matrix; nothing mutates its receiver. Zero-row and zero-column matrices
// are valid.
//
// View is a non-owning, reshaped window into a flat buffer, used to pass
// layer parameters without copying them.
//
// # Basic Usage
//
//	m := matrix.MustNew(2, 3, []float64{1, 2, 3, 4, 5, 6})
//	w := matrix.MustView(params, 3, 1)
//	y := m.Mul(w.ToMatrix()) // 2x1
//
// Shape mismatches panic with an error wrapping ErrShape.
package matrix
