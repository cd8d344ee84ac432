package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/netlayer/internal/matrix"
	"github.com/pkg/errors"
)

// Func is a pure scalar activation function paired with its derivative.
//
// Implementations live in internal/activation (Sigmoid, Tanh, ReLU, ...),
// but any type with these two methods works.
type Func interface {
	// Func evaluates the activation at x.
	Func(x float64) float64
	// Grad evaluates the derivative of the activation at x.
	Grad(x float64) float64
}

// Activation turns any scalar Func into a layer with no parameters.
//
// Forward applies fn elementwise; BackInput applies the chain rule for a
// pointwise nonlinearity: outGrad * fn'(input). Nothing here depends on the
// concrete activation, so a network mixing Sigmoid, Tanh and ReLU layers
// needs no per-activation layer code.
//
// Example:
//
//	sigmoid := nn.NewActivation(activation.Sigmoid{})
//	output := sigmoid.Forward(input, matrix.View{}) // values in (0, 1)
type Activation[F Func] struct {
	fn F
}

// NewActivation creates an activation layer around fn.
func NewActivation[F Func](fn F) Activation[F] {
	return Activation[F]{fn: fn}
}

// Fn returns the wrapped scalar function.
func (a Activation[F]) Fn() F {
	return a.fn
}

func (a Activation[F]) String() string {
	return fmt.Sprintf("Activation(%T)", a.fn)
}

// Forward applies the activation to every element. params is ignored.
func (a Activation[F]) Forward(input *matrix.Matrix, _ matrix.View) *matrix.Matrix {
	return input.Apply(a.fn.Func)
}

// BackInput returns outGrad * fn'(input), elementwise.
func (a Activation[F]) BackInput(outGrad, input *matrix.Matrix, _ matrix.View) *matrix.Matrix {
	if !outGrad.Shape().Equal(input.Shape()) {
		panic(errors.Wrapf(matrix.ErrShape, "%v.BackInput: out_grad is %v, input is %v",
			a, outGrad.Shape(), input.Shape()))
	}
	return outGrad.ElemMul(input.Apply(a.fn.Grad))
}

// BackParams returns an empty 0x0 matrix; activations have no parameters.
func (a Activation[F]) BackParams(_, _ *matrix.Matrix, _ matrix.View) *matrix.Matrix {
	return matrix.Zeros(0, 0)
}

// DefaultParams returns an empty slice.
func (a Activation[F]) DefaultParams(_ rand.Source) []float64 {
	return []float64{}
}

// ParamShape returns (0, 0).
func (a Activation[F]) ParamShape() matrix.Shape {
	return matrix.Shape{}
}
