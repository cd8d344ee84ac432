// Package activation provides scalar activation functions with derivatives.
//
// Every type here satisfies nn.Func and can be wrapped with nn.NewActivation.
package activation

import "math"

// Sigmoid is the logistic function σ(x) = 1 / (1 + exp(-x)).
type Sigmoid struct{}

// Func evaluates σ(x).
func (Sigmoid) Func(x float64) float64 {
	return sigmoid(x)
}

// Grad evaluates σ'(x) = σ(x)(1 - σ(x)).
func (Sigmoid) Grad(x float64) float64 {
	s := sigmoid(x)
	return s * (1 - s)
}

func sigmoid(x float64) float64 {
	// Split on sign so exp never overflows.
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}

// Tanh is the hyperbolic tangent.
type Tanh struct{}

// Func evaluates tanh(x).
func (Tanh) Func(x float64) float64 {
	return math.Tanh(x)
}

// Grad evaluates 1 - tanh²(x).
func (Tanh) Grad(x float64) float64 {
	t := math.Tanh(x)
	return 1 - t*t
}

// ReLU is max(0, x). Its derivative at 0 is taken as 0.
type ReLU struct{}

// Func evaluates max(0, x).
func (ReLU) Func(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// Grad is 1 for x > 0, else 0.
func (ReLU) Grad(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}

// LeakyReLU is x for x > 0 and Slope*x otherwise.
type LeakyReLU struct {
	Slope float64
}

// Func evaluates the leaky rectifier.
func (l LeakyReLU) Func(x float64) float64 {
	if x > 0 {
		return x
	}
	return l.Slope * x
}

// Grad is 1 for x > 0, else Slope.
func (l LeakyReLU) Grad(x float64) float64 {
	if x > 0 {
		return 1
	}
	return l.Slope
}

// Softplus is log(1 + exp(x)), a smooth ReLU.
type Softplus struct{}

// Func evaluates log(1 + exp(x)).
func (Softplus) Func(x float64) float64 {
	if x > 30 {
		return x
	}
	return math.Log1p(math.Exp(x))
}

// Grad evaluates σ(x).
func (Softplus) Grad(x float64) float64 {
	return sigmoid(x)
}

// Identity passes values through unchanged.
type Identity struct{}

// Func returns x.
func (Identity) Func(x float64) float64 { return x }

// Grad returns 1.
func (Identity) Grad(float64) float64 { return 1 }
