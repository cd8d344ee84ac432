// Package gradcheck compares a layer's analytic gradients against central
// finite differences of the scalar loss sum(Forward(input, params)).
package gradcheck

import (
	"fmt"
	"math"

	"github.com/born-ml/netlayer/internal/matrix"
	"github.com/born-ml/netlayer/internal/nn"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/diff/fd"
)

// Config controls the finite-difference comparison.
type Config struct {
	Step      float64 // Perturbation applied to each coordinate.
	Tolerance float64 // Largest accepted |analytic - numeric|.
}

// DefaultConfig returns Step 1e-6 and Tolerance 1e-4.
func DefaultConfig() Config {
	return Config{
		Step:      1e-6,
		Tolerance: 1e-4,
	}
}

// Report is the outcome of one check.
type Report struct {
	Analytic   []float64
	Numeric    []float64
	MaxAbsDiff float64
	Index      int // Coordinate with the largest difference, -1 if none.
	OK         bool
}

func (r Report) String() string {
	status := "ok"
	if !r.OK {
		status = "FAILED"
	}
	return fmt.Sprintf("%s: %d coords, max |diff| %.3g at %d", status, len(r.Analytic), r.MaxAbsDiff, r.Index)
}

// Params checks l.BackParams at (input, params). params is the flat,
// row-major parameter slice and must hold NumParams(l) values.
func Params(l nn.Layer, input *matrix.Matrix, params []float64, cfg Config) (Report, error) {
	shape := l.ParamShape()
	view, err := matrix.NewView(params, shape.Rows, shape.Cols)
	if err != nil {
		return Report{}, errors.Wrap(err, "gradcheck: params")
	}

	ones := onesLike(l.Forward(input, view))
	analytic := l.BackParams(ones, input, view).Data()

	numeric := numericGradient(func(p []float64) float64 {
		return l.Forward(input, matrix.MustView(p, shape.Rows, shape.Cols)).Sum()
	}, params, cfg)

	return compare(analytic, numeric, cfg), nil
}

// Input checks l.BackInput at (input, params).
func Input(l nn.Layer, input *matrix.Matrix, params []float64, cfg Config) (Report, error) {
	shape := l.ParamShape()
	view, err := matrix.NewView(params, shape.Rows, shape.Cols)
	if err != nil {
		return Report{}, errors.Wrap(err, "gradcheck: params")
	}

	ones := onesLike(l.Forward(input, view))
	analytic := l.BackInput(ones, input, view).Data()

	rows, cols := input.Rows(), input.Cols()
	numeric := numericGradient(func(x []float64) float64 {
		return l.Forward(matrix.MustNew(rows, cols, x), view).Sum()
	}, input.Data(), cfg)

	return compare(analytic, numeric, cfg), nil
}

// Sequential checks the flat parameter gradient returned by model.Backward
// against finite differences over the whole arena.
//
// The arena buffer is perturbed in place during the check and restored
// before returning.
func Sequential(model *nn.Sequential, arena *nn.Arena, input *matrix.Matrix, cfg Config) Report {
	trace := model.Forward(input, arena)
	_, analytic := model.Backward(onesLike(trace.Output()), trace, arena)

	data := arena.Data()
	saved := append([]float64(nil), data...)
	defer copy(data, saved)

	numeric := numericGradient(func(p []float64) float64 {
		copy(data, p)
		return model.Forward(input, arena).Output().Sum()
	}, saved, cfg)

	return compare(analytic, numeric, cfg)
}

func onesLike(m *matrix.Matrix) *matrix.Matrix {
	return matrix.Ones(m.Rows(), m.Cols())
}

func numericGradient(f func([]float64) float64, x []float64, cfg Config) []float64 {
	if len(x) == 0 {
		return []float64{}
	}
	return fd.Gradient(nil, f, x, &fd.Settings{
		Formula: fd.Central,
		Step:    cfg.Step,
	})
}

func compare(analytic, numeric []float64, cfg Config) Report {
	r := Report{Analytic: analytic, Numeric: numeric, Index: -1, OK: true}
	if len(analytic) != len(numeric) {
		r.OK = false
		r.MaxAbsDiff = math.Inf(1)
		return r
	}
	for i := range analytic {
		d := math.Abs(analytic[i] - numeric[i])
		if d > r.MaxAbsDiff || r.Index < 0 {
			r.MaxAbsDiff = d
			r.Index = i
		}
	}
	r.OK = r.MaxAbsDiff <= cfg.Tolerance
	return r
}
