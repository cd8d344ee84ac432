// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/netlayer/internal/nn"
)

// Layer is the contract shared by every layer kind.
//
// Methods:
//
//	Forward(input *matrix.Matrix, params matrix.View) *matrix.Matrix
//	BackInput(outGrad, input *matrix.Matrix, params matrix.View) *matrix.Matrix
//	BackParams(outGrad, input *matrix.Matrix, params matrix.View) *matrix.Matrix
//	DefaultParams(src rand.Source) []float64
//	ParamShape() matrix.Shape
type Layer = nn.Layer

// ParamCounter lets a layer override NumParams.
type ParamCounter = nn.ParamCounter

// NumParams returns the number of parameters l uses.
func NumParams(l Layer) int {
	return nn.NumParams(l)
}

// Slot locates one layer's parameters inside an Arena.
type Slot = nn.Slot

// Arena stores all layer parameters in one contiguous buffer.
type Arena = nn.Arena

// NewArena lays out a zeroed parameter buffer for layers, in order.
func NewArena(layers ...Layer) *Arena {
	return nn.NewArena(layers...)
}
