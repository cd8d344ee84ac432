// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand/v2"

	"github.com/born-ml/netlayer/internal/activation"
	"github.com/born-ml/netlayer/internal/nn"
)

// Layers

// Linear represents a fully connected (dense) layer.
type Linear = nn.Linear

// NewLinear creates a Linear layer with a bias row.
//
// Example:
//
//	layer := nn.NewLinear(784, 128) // params: 785x128
func NewLinear(inFeatures, outFeatures int) Linear {
	return nn.NewLinear(inFeatures, outFeatures)
}

// NewLinearWithoutBias creates a Linear layer with no bias row.
func NewLinearWithoutBias(inFeatures, outFeatures int) Linear {
	return nn.NewLinearWithoutBias(inFeatures, outFeatures)
}

// Func is a scalar activation function with its derivative.
type Func = nn.Func

// Activation is a parameter-free layer applying a Func elementwise.
type Activation[F Func] = nn.Activation[F]

// NewActivation creates an activation layer around fn.
//
// Example:
//
//	relu := nn.NewActivation(nn.ReLU{})
func NewActivation[F Func](fn F) Activation[F] {
	return nn.NewActivation(fn)
}

// Sequential chains layers in order.
type Sequential = nn.Sequential

// Trace records per-layer inputs from a forward pass.
type Trace = nn.Trace

// NewSequential creates a Sequential over layers.
func NewSequential(layers ...Layer) *Sequential {
	return nn.NewSequential(layers...)
}

// Activations

// Sigmoid is the logistic function.
type Sigmoid = activation.Sigmoid

// Tanh is the hyperbolic tangent.
type Tanh = activation.Tanh

// ReLU is max(0, x).
type ReLU = activation.ReLU

// LeakyReLU is x for x > 0 and Slope*x otherwise.
type LeakyReLU = activation.LeakyReLU

// Softplus is log(1 + exp(x)).
type Softplus = activation.Softplus

// Identity passes values through.
type Identity = activation.Identity

// Initialization

// Xavier draws n values from N(0, 2/(fanIn+fanOut)) using src.
func Xavier(fanIn, fanOut, n int, src rand.Source) []float64 {
	return nn.Xavier(fanIn, fanOut, n, src)
}

// NewSource returns a deterministic random source for seed.
func NewSource(seed uint64) rand.Source {
	return nn.NewSource(seed)
}
