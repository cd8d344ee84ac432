package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/netlayer/internal/matrix"
	"github.com/pkg/errors"
)

// Linear implements a fully connected (dense) layer.
//
// Performs the transformation: y = [x, 1] @ W   (bias)
//
//	or: y = x @ W        (no bias)
//
// where:
//   - x is the input with shape [batch_size, in_features]
//   - W is the parameter matrix with shape [in_features(+1), out_features]
//   - y is the output with shape [batch_size, out_features]
//
// With bias enabled the last row of W holds the bias weights. The input is
// augmented with a column of ones so the bias folds into the same product.
//
// Linear is an immutable value; it holds sizes only, never weights.
//
// Example:
//
//	layer := nn.NewLinear(784, 128)
//	params := layer.DefaultParams(nn.NewSource(1)) // 785*128 values
//	view := matrix.MustView(params, 785, 128)
//	output := layer.Forward(input, view) // [batch_size, 128]
type Linear struct {
	inputSize  int // in_features, plus one when hasBias
	outputSize int
	hasBias    bool
}

// NewLinear creates a Linear layer with a bias term.
//
// The parameter matrix has inFeatures+1 rows; the extra row is the bias.
// Panics if either size is not positive.
func NewLinear(inFeatures, outFeatures int) Linear {
	validateSizes(inFeatures, outFeatures)
	return Linear{
		inputSize:  inFeatures + 1,
		outputSize: outFeatures,
		hasBias:    true,
	}
}

// NewLinearWithoutBias creates a Linear layer with no bias term.
// Panics if either size is not positive.
func NewLinearWithoutBias(inFeatures, outFeatures int) Linear {
	validateSizes(inFeatures, outFeatures)
	return Linear{
		inputSize:  inFeatures,
		outputSize: outFeatures,
		hasBias:    false,
	}
}

func validateSizes(in, out int) {
	if in <= 0 || out <= 0 {
		panic(errors.Errorf("nn: Linear sizes must be positive, got %d -> %d", in, out))
	}
}

// InputSize returns the number of parameter rows, including the bias row.
func (l Linear) InputSize() int {
	return l.inputSize
}

// InFeatures returns the number of input columns the layer accepts.
func (l Linear) InFeatures() int {
	if l.hasBias {
		return l.inputSize - 1
	}
	return l.inputSize
}

// OutputSize returns the number of output features.
func (l Linear) OutputSize() int {
	return l.outputSize
}

// HasBias reports whether the layer carries a bias row.
func (l Linear) HasBias() bool {
	return l.hasBias
}

func (l Linear) String() string {
	return fmt.Sprintf("Linear(%d -> %d, bias=%t)", l.InFeatures(), l.outputSize, l.hasBias)
}

// augment appends the bias column of ones when bias is enabled.
func (l Linear) augment(input *matrix.Matrix) *matrix.Matrix {
	if !l.hasBias {
		return input
	}
	return input.HCat(matrix.Ones(input.Rows(), 1))
}

func (l Linear) checkInput(op string, input *matrix.Matrix) {
	if input.Cols() != l.InFeatures() {
		panic(errors.Wrapf(matrix.ErrShape, "%s: input has %d columns, %v expects %d",
			op, input.Cols(), l, l.InFeatures()))
	}
}

// Forward computes the output of the layer.
//
// Input shape: [batch_size, in_features]
// Output shape: [batch_size, out_features]
func (l Linear) Forward(input *matrix.Matrix, params matrix.View) *matrix.Matrix {
	checkParams("Linear.Forward", l, params)
	l.checkInput("Linear.Forward", input)

	return l.augment(input).Mul(params.ToMatrix())
}

// BackInput propagates outGrad to the layer input: outGrad @ W.T.
//
// The bias row of W is dropped first; the constant ones column has no
// input to pass a gradient to. The result has the input's shape.
func (l Linear) BackInput(outGrad, input *matrix.Matrix, params matrix.View) *matrix.Matrix {
	checkParams("Linear.BackInput", l, params)
	l.checkInput("Linear.BackInput", input)
	if outGrad.Cols() != params.Cols() {
		panic(errors.Wrapf(matrix.ErrShape, "Linear.BackInput: out_grad has %d columns, params have %d",
			outGrad.Cols(), params.Cols()))
	}
	if outGrad.Rows() != input.Rows() {
		panic(errors.Wrapf(matrix.ErrShape, "Linear.BackInput: out_grad has %d rows, input has %d",
			outGrad.Rows(), input.Rows()))
	}

	w := params.ToMatrix()
	if l.hasBias {
		rows := make([]int, params.Rows()-1)
		for i := range rows {
			rows[i] = i
		}
		w = w.SelectRows(rows)
	}
	return outGrad.Mul(w.Transpose())
}

// BackParams returns the weight gradient: [x, 1].T @ outGrad.
// The result has shape ParamShape().
func (l Linear) BackParams(outGrad, input *matrix.Matrix, params matrix.View) *matrix.Matrix {
	checkParams("Linear.BackParams", l, params)
	l.checkInput("Linear.BackParams", input)
	if input.Rows() != outGrad.Rows() {
		panic(errors.Wrapf(matrix.ErrShape, "Linear.BackParams: input has %d rows, out_grad has %d",
			input.Rows(), outGrad.Rows()))
	}
	if outGrad.Cols() != l.outputSize {
		panic(errors.Wrapf(matrix.ErrShape, "Linear.BackParams: out_grad has %d columns, %v outputs %d",
			outGrad.Cols(), l, l.outputSize))
	}

	return l.augment(input).Transpose().Mul(outGrad)
}

// DefaultParams initializes weights with Xavier/Glorot normal initialization.
//
// The bias row counts towards fan-in, and bias weights are drawn from the
// same distribution as the rest.
func (l Linear) DefaultParams(src rand.Source) []float64 {
	return Xavier(l.inputSize, l.outputSize, l.inputSize*l.outputSize, src)
}

// ParamShape returns (InputSize, OutputSize).
func (l Linear) ParamShape() matrix.Shape {
	return matrix.Shape{Rows: l.inputSize, Cols: l.outputSize}
}
