// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/born-ml/netlayer/matrix"
	"github.com/born-ml/netlayer/nn"
	"github.com/stretchr/testify/assert"
)

// TestLayerInterface verifies that concrete types implement Layer.
func TestLayerInterface(t *testing.T) {
	tests := []struct {
		name   string
		layer  nn.Layer
		params int
	}{
		{name: "Linear", layer: nn.NewLinear(10, 5), params: 55},
		{name: "LinearWithoutBias", layer: nn.NewLinearWithoutBias(10, 5), params: 50},
		{name: "Sigmoid", layer: nn.NewActivation(nn.Sigmoid{}), params: 0},
		{name: "ReLU", layer: nn.NewActivation(nn.ReLU{}), params: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.params, nn.NumParams(tt.layer))
			assert.Len(t, tt.layer.DefaultParams(nn.NewSource(1)), tt.params)
		})
	}
}

func TestSequentialFacade(t *testing.T) {
	model := nn.NewSequential(
		nn.NewLinear(10, 5),
		nn.NewActivation(nn.Tanh{}),
		nn.NewLinearWithoutBias(5, 2),
	)
	arena := model.NewArena()
	arena.Init(nn.NewSource(1))

	input := matrix.Ones(3, 10)
	trace := model.Forward(input, arena)
	assert.Equal(t, matrix.Shape{Rows: 3, Cols: 2}, trace.Output().Shape())

	inGrad, paramGrad := model.Backward(matrix.Ones(3, 2), trace, arena)
	assert.Equal(t, input.Shape(), inGrad.Shape())
	assert.Len(t, paramGrad, 55+10)
}
