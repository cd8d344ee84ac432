package nn

import (
	"math/rand/v2"

	"github.com/born-ml/netlayer/internal/matrix"
	"github.com/pkg/errors"
)

// Slot locates one layer's parameters inside an Arena.
type Slot struct {
	Offset int          // Index of the first parameter in the flat buffer
	Shape  matrix.Shape // Shape the slice is viewed as
}

// Len returns the number of parameters in the slot.
func (s Slot) Len() int {
	return s.Shape.NumElements()
}

// Arena stores the parameters of an ordered list of layers in one
// contiguous buffer, plus the (offset, shape) index used to slice it.
//
// The arena is the owner of parameter storage; layers only ever see views.
// The buffer returned by Data may be updated in place by an optimizer, but
// not while a forward/backward pass is reading views of it.
//
// Example:
//
//	arena := nn.NewArena(nn.NewLinear(2, 3), nn.NewActivation(activation.Tanh{}))
//	arena.Init(nn.NewSource(7))
//	out := arena.Layer(0).Forward(x, arena.View(0))
type Arena struct {
	layers []Layer
	slots  []Slot
	data   []float64
}

// NewArena lays out a zeroed buffer for layers, in order.
//
// Panics if a layer reports a parameter count that disagrees with its
// ParamShape.
func NewArena(layers ...Layer) *Arena {
	a := &Arena{
		layers: append([]Layer(nil), layers...),
		slots:  make([]Slot, len(layers)),
	}

	offset := 0
	for i, l := range layers {
		shape := l.ParamShape()
		if n := NumParams(l); n != shape.NumElements() {
			panic(errors.Wrapf(matrix.ErrShape, "arena: layer %d reports %d params but shape %v", i, n, shape))
		}
		a.slots[i] = Slot{Offset: offset, Shape: shape}
		offset += shape.NumElements()
	}
	a.data = make([]float64, offset)

	return a
}

// Init overwrites every slot with its layer's DefaultParams drawn from src.
func (a *Arena) Init(src rand.Source) {
	for i, l := range a.layers {
		params := l.DefaultParams(src)
		slot := a.slots[i]
		if len(params) != slot.Len() {
			panic(errors.Wrapf(matrix.ErrShape, "arena: layer %d returned %d default params, slot holds %d",
				i, len(params), slot.Len()))
		}
		copy(a.data[slot.Offset:], params)
	}
}

// Len returns the total number of parameters.
func (a *Arena) Len() int {
	return len(a.data)
}

// NumLayers returns the number of layers laid out in the arena.
func (a *Arena) NumLayers() int {
	return len(a.layers)
}

// Layer returns the i-th layer.
func (a *Arena) Layer(i int) Layer {
	return a.layers[i]
}

// Slot returns the location of the i-th layer's parameters.
func (a *Arena) Slot(i int) Slot {
	return a.slots[i]
}

// Data returns the live parameter buffer. It is not copied.
func (a *Arena) Data() []float64 {
	return a.data
}

// View borrows the i-th layer's parameters, reshaped to its ParamShape.
func (a *Arena) View(i int) matrix.View {
	slot := a.slots[i]
	return matrix.MustView(a.data[slot.Offset:slot.Offset+slot.Len()], slot.Shape.Rows, slot.Shape.Cols)
}

// Scatter writes grad, the i-th layer's parameter gradient, into dst at the
// i-th slot. dst must be Len() long.
func (a *Arena) Scatter(dst []float64, i int, grad *matrix.Matrix) {
	if len(dst) != len(a.data) {
		panic(errors.Wrapf(matrix.ErrShape, "arena: gradient buffer has %d entries, arena has %d", len(dst), len(a.data)))
	}
	slot := a.slots[i]
	if !grad.Shape().Equal(slot.Shape) {
		panic(errors.Wrapf(matrix.ErrShape, "arena: layer %d gradient is %v, slot is %v", i, grad.Shape(), slot.Shape))
	}
	copy(dst[slot.Offset:slot.Offset+slot.Len()], grad.Data())
}
