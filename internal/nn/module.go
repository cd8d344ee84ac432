// Package nn implements the per-layer math of feed-forward networks.
//
// This package provides:
//   - Layer interface: forward pass, both backward passes, parameter metadata
//   - Linear: fully connected layer with optional bias row
//   - Activation: a zero-parameter layer built from any scalar Func
//   - Arena: one flat parameter buffer sliced into per-layer views
//   - Sequential: drives forward/backward over an ordered list of layers
//
// Layers never own parameters. Every call borrows a matrix.View reshaped to
// ParamShape() from a buffer owned by the caller, which is also the only
// party that ever updates it.
package nn

import (
	"math/rand/v2"

	"github.com/born-ml/netlayer/internal/matrix"
	"github.com/pkg/errors"
)

// Layer is the contract shared by every layer kind.
//
// All methods are pure: they read their arguments, allocate a new result and
// keep nothing between calls, so one Layer value can be used from many
// goroutines at once.
//
// Every method that takes params expects a view shaped exactly like
// ParamShape(). Anything else is a programming error and panics with an
// error wrapping matrix.ErrShape.
type Layer interface {
	// Forward computes the layer output for a batch of input rows.
	Forward(input *matrix.Matrix, params matrix.View) *matrix.Matrix

	// BackInput returns the gradient of a downstream loss with respect to
	// input, given outGrad, the gradient with respect to this layer's output.
	// The result has the same shape as input.
	BackInput(outGrad, input *matrix.Matrix, params matrix.View) *matrix.Matrix

	// BackParams returns the gradient with respect to the parameters.
	// The result has shape ParamShape().
	BackParams(outGrad, input *matrix.Matrix, params matrix.View) *matrix.Matrix

	// DefaultParams returns initial parameter values, NumParams(l) of them,
	// packed row-major. src is the only source of randomness used.
	DefaultParams(src rand.Source) []float64

	// ParamShape returns the shape the parameter buffer is viewed as.
	ParamShape() matrix.Shape
}

// ParamCounter lets a layer report its parameter count directly instead of
// deriving it from ParamShape.
type ParamCounter interface {
	NumParams() int
}

// NumParams returns the number of parameters l uses.
// Defaults to rows*cols of ParamShape unless l implements ParamCounter.
func NumParams(l Layer) int {
	if pc, ok := l.(ParamCounter); ok {
		return pc.NumParams()
	}
	return l.ParamShape().NumElements()
}

// checkParams panics unless params is shaped like l.ParamShape().
func checkParams(op string, l Layer, params matrix.View) {
	if want := l.ParamShape(); !params.Shape().Equal(want) {
		panic(errors.Wrapf(matrix.ErrShape, "%s: params are %v, layer expects %v", op, params.Shape(), want))
	}
}
