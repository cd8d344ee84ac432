package nn

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Xavier (Glorot) normal initialization.
//
// Draws n values from N(0, 2/(fanIn+fanOut)), so the standard deviation is
// sqrt(2/(fanIn+fanOut)).
//
// Parameters:
//   - fanIn: Number of input units (including a bias row, if any)
//   - fanOut: Number of output units
//   - n: Number of samples to draw
//   - src: Random source; a fixed seed gives reproducible weights
//
// Panics if src is nil or fanIn+fanOut is not positive.
func Xavier(fanIn, fanOut, n int, src rand.Source) []float64 {
	if src == nil {
		panic(errors.New("nn: Xavier requires a random source"))
	}
	if fanIn+fanOut <= 0 {
		panic(errors.Errorf("nn: Xavier with fanIn=%d fanOut=%d", fanIn, fanOut))
	}

	dist := distuv.Normal{
		Mu:    0,
		Sigma: math.Sqrt(2.0 / float64(fanIn+fanOut)),
		Src:   src,
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out
}

// NewSource returns a deterministic PCG source for the given seed.
//
// Example:
//
//	params := layer.DefaultParams(nn.NewSource(42))
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}
