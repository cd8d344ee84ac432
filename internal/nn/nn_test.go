package nn_test

import (
	"fmt"
	"testing"

	"github.com/born-ml/netlayer/internal/activation"
	"github.com/born-ml/netlayer/internal/gradcheck"
	"github.com/born-ml/netlayer/internal/matrix"
	"github.com/born-ml/netlayer/internal/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randInput(rows, cols int, seed uint64) *matrix.Matrix {
	return matrix.MustNew(rows, cols, nn.Xavier(1, 1, rows*cols, nn.NewSource(seed)))
}

// TestLinear_GradientCheck compares both backward passes against finite
// differences of sum(Forward).
func TestLinear_GradientCheck(t *testing.T) {
	layers := []nn.Linear{
		nn.NewLinear(3, 2),
		nn.NewLinear(1, 4),
		nn.NewLinearWithoutBias(3, 2),
		nn.NewLinearWithoutBias(5, 1),
	}
	cfg := gradcheck.DefaultConfig()

	for i, l := range layers {
		t.Run(l.String(), func(t *testing.T) {
			params := l.DefaultParams(nn.NewSource(uint64(i)))
			input := randInput(4, l.InFeatures(), uint64(100+i))

			report, err := gradcheck.Params(l, input, params, cfg)
			require.NoError(t, err)
			assert.True(t, report.OK, "params: %v", report)

			report, err = gradcheck.Input(l, input, params, cfg)
			require.NoError(t, err)
			assert.True(t, report.OK, "input: %v", report)
		})
	}
}

func TestActivation_GradientCheck(t *testing.T) {
	layers := []nn.Layer{
		nn.NewActivation(activation.Sigmoid{}),
		nn.NewActivation(activation.Tanh{}),
		nn.NewActivation(activation.Softplus{}),
		nn.NewActivation(activation.LeakyReLU{Slope: 0.1}),
	}
	// Keep inputs away from the kink at 0.
	input := matrix.MustNew(2, 3, []float64{-1.7, -0.4, 0.25, 0.9, 1.6, 2.2})

	for _, l := range layers {
		t.Run(fmt.Sprint(l), func(t *testing.T) {
			report, err := gradcheck.Input(l, input, nil, gradcheck.DefaultConfig())
			require.NoError(t, err)
			assert.True(t, report.OK, "%v", report)

			report, err = gradcheck.Params(l, input, nil, gradcheck.DefaultConfig())
			require.NoError(t, err)
			assert.True(t, report.OK)
			assert.Empty(t, report.Analytic)
		})
	}
}

// TestSequential_GradientCheck checks the flat parameter gradient of a
// network mixing several activation kinds.
func TestSequential_GradientCheck(t *testing.T) {
	model := nn.NewSequential(
		nn.NewLinear(3, 4),
		nn.NewActivation(activation.Tanh{}),
		nn.NewLinearWithoutBias(4, 3),
		nn.NewActivation(activation.Sigmoid{}),
		nn.NewLinear(3, 2),
	)
	arena := model.NewArena()
	arena.Init(nn.NewSource(3))
	before := append([]float64(nil), arena.Data()...)

	report := gradcheck.Sequential(model, arena, randInput(5, 3, 4), gradcheck.DefaultConfig())
	assert.True(t, report.OK, "%v", report)
	assert.Len(t, report.Analytic, arena.Len())
	assert.Equal(t, before, arena.Data(), "arena restored after check")
}

// TestSequential_InputGradientMatchesLayerChain checks that Backward threads
// gradients exactly as calling each layer by hand would.
func TestSequential_InputGradientMatchesLayerChain(t *testing.T) {
	lin := nn.NewLinear(2, 2)
	act := nn.NewActivation(activation.Tanh{})
	model := nn.NewSequential(lin, act)
	arena := model.NewArena()
	arena.Init(nn.NewSource(8))

	input := randInput(3, 2, 9)
	trace := model.Forward(input, arena)
	outGrad := matrix.Ones(3, 2)
	inGrad, paramGrad := model.Backward(outGrad, trace, arena)

	hidden := lin.Forward(input, arena.View(0))
	g := act.BackInput(outGrad, hidden, arena.View(1))
	wantParams := lin.BackParams(g, input, arena.View(0))
	wantInput := lin.BackInput(g, input, arena.View(0))

	assert.True(t, wantInput.EqualApprox(inGrad, 1e-12))
	assert.InDeltaSlice(t, wantParams.Data(), paramGrad, 1e-12)
}

func TestGradcheck_BadParams(t *testing.T) {
	_, err := gradcheck.Params(nn.NewLinear(2, 2), randInput(1, 2, 1), []float64{1, 2}, gradcheck.DefaultConfig())
	assert.ErrorIs(t, err, matrix.ErrShape)
}
