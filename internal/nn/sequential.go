package nn

import (
	"github.com/born-ml/netlayer/internal/matrix"
	"github.com/pkg/errors"
)

// Sequential chains layers: each layer's output is the next layer's input.
//
// It decides nothing about architecture; the caller supplies the layers in
// order. Parameters live in an Arena built from the same layers, and
// updating them is left to the caller.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(4, 8),
//	    nn.NewActivation(activation.Tanh{}),
//	    nn.NewLinear(8, 1),
//	)
//	arena := model.NewArena()
//	arena.Init(nn.NewSource(1))
//
//	trace := model.Forward(input, arena)
//	inGrad, paramGrad := model.Backward(lossGrad(trace.Output()), trace, arena)
type Sequential struct {
	layers []Layer
}

// NewSequential creates a Sequential over layers.
func NewSequential(layers ...Layer) *Sequential {
	return &Sequential{
		layers: append([]Layer(nil), layers...),
	}
}

// Len returns the number of layers.
func (s *Sequential) Len() int {
	return len(s.layers)
}

// Layer returns the layer at the given index.
//
// Panics if index is out of bounds.
func (s *Sequential) Layer(index int) Layer {
	if index < 0 || index >= len(s.layers) {
		panic("Sequential.Layer: index out of bounds")
	}
	return s.layers[index]
}

// NewArena returns a zeroed parameter arena laid out for these layers.
func (s *Sequential) NewArena() *Arena {
	return NewArena(s.layers...)
}

// NumParams returns the total parameter count over all layers.
func (s *Sequential) NumParams() int {
	n := 0
	for _, l := range s.layers {
		n += NumParams(l)
	}
	return n
}

// Trace records the input seen by every layer during a forward pass,
// which the backward pass needs.
type Trace struct {
	inputs []*matrix.Matrix
	output *matrix.Matrix
}

// Output returns the output of the last layer.
func (t *Trace) Output() *matrix.Matrix {
	return t.output
}

// Input returns the input seen by layer i.
func (t *Trace) Input(i int) *matrix.Matrix {
	return t.inputs[i]
}

func (s *Sequential) checkArena(arena *Arena) {
	if arena.NumLayers() != len(s.layers) {
		panic(errors.Wrapf(matrix.ErrShape, "Sequential: arena has %d layers, model has %d",
			arena.NumLayers(), len(s.layers)))
	}
	for i, l := range s.layers {
		if !arena.Slot(i).Shape.Equal(l.ParamShape()) {
			panic(errors.Wrapf(matrix.ErrShape, "Sequential: arena slot %d is %v, layer expects %v",
				i, arena.Slot(i).Shape, l.ParamShape()))
		}
	}
}

// Forward runs input through every layer in order.
func (s *Sequential) Forward(input *matrix.Matrix, arena *Arena) *Trace {
	s.checkArena(arena)

	trace := &Trace{inputs: make([]*matrix.Matrix, len(s.layers))}
	output := input
	for i, l := range s.layers {
		trace.inputs[i] = output
		output = l.Forward(output, arena.View(i))
	}
	trace.output = output

	return trace
}

// Backward threads outGrad through the layers in reverse order.
//
// Returns the gradient with respect to the network input and a flat
// parameter gradient laid out exactly like arena.Data().
func (s *Sequential) Backward(outGrad *matrix.Matrix, trace *Trace, arena *Arena) (*matrix.Matrix, []float64) {
	s.checkArena(arena)
	if len(trace.inputs) != len(s.layers) {
		panic(errors.Wrapf(matrix.ErrShape, "Sequential: trace has %d layers, model has %d",
			len(trace.inputs), len(s.layers)))
	}

	paramGrad := make([]float64, arena.Len())
	grad := outGrad
	for i := len(s.layers) - 1; i >= 0; i-- {
		l := s.layers[i]
		view := arena.View(i)
		input := trace.inputs[i]

		arena.Scatter(paramGrad, i, l.BackParams(grad, input, view))
		grad = l.BackInput(grad, input, view)
	}

	return grad, paramGrad
}
