// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides feed-forward network layers.
//
// # Overview
//
// This package contains:
//   - Layer: the contract every layer implements
//   - Linear: fully connected layer with an optional packed bias row
//   - Activation: a parameter-free layer built from any scalar Func
//   - Activations: Sigmoid, Tanh, ReLU, LeakyReLU, Softplus, Identity
//   - Arena: flat parameter storage sliced into per-layer views
//   - Sequential: forward/backward driver over an ordered list of layers
//
// Layers hold no weights. Parameters live in a caller-owned buffer (usually
// an Arena) and are passed to each call as a matrix.View.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/netlayer/matrix"
//	    "github.com/born-ml/netlayer/nn"
//	)
//
//	func main() {
//	    model := nn.NewSequential(
//	        nn.NewLinear(4, 8),
//	        nn.NewActivation(nn.Tanh{}),
//	        nn.NewLinear(8, 1),
//	    )
//
//	    arena := model.NewArena()
//	    arena.Init(nn.NewSource(42))
//
//	    trace := model.Forward(input, arena)
//	    inGrad, paramGrad := model.Backward(outGrad, trace, arena)
//	}
//
// # Linear
//
// NewLinear(I, O) uses an (I+1)×O parameter matrix whose last row is the
// bias; NewLinearWithoutBias(I, O) uses I×O. Default parameters follow
// Xavier/Glorot normal initialization with variance 2/(rows+cols).
//
// # Activations
//
// Any type with Func(x) and Grad(x) methods becomes a layer:
//
//	sigmoid := nn.NewActivation(nn.Sigmoid{})
//	custom := nn.NewActivation(myFunc{})
//
// # Errors
//
// Shape mismatches are programming errors: layers panic with an error that
// wraps matrix.ErrShape.
package nn
