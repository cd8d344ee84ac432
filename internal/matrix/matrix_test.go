package matrix

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireShapePanic asserts that fn panics with an error wrapping ErrShape.
func requireShapePanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.True(t, errors.Is(err, ErrShape), "got %v", err)
	}()
	fn()
}

func TestNew(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	m, err := New(2, 3, data)
	require.NoError(t, err)

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 6.0, m.At(1, 2))

	// Input slice is copied.
	data[0] = 100
	assert.Equal(t, 1.0, m.At(0, 0))
}

func TestNew_Errors(t *testing.T) {
	_, err := New(2, 2, []float64{1, 2, 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShape))

	_, err = New(-1, 2, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShape))
}

func TestNew_Empty(t *testing.T) {
	m, err := New(0, 0, []float64{})
	require.NoError(t, err)
	assert.Equal(t, Shape{0, 0}, m.Shape())
	assert.Empty(t, m.Data())
	assert.Equal(t, 0.0, m.Sum())

	tall := Zeros(3, 0)
	assert.Equal(t, Shape{0, 3}, tall.Transpose().Shape())
}

func TestFromRows(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, m.Shape())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Data())

	_, err = FromRows([][]float64{{1, 2}, {3}})
	assert.True(t, errors.Is(err, ErrShape))
}

func TestOnesAndClone(t *testing.T) {
	ones := Ones(2, 2)
	assert.Equal(t, []float64{1, 1, 1, 1}, ones.Data())

	c := ones.Clone()
	c.data[0] = 5
	assert.Equal(t, 1.0, ones.At(0, 0), "clone must not share storage")
}

func TestTranspose(t *testing.T) {
	m := MustNew(2, 3, []float64{1, 2, 3, 4, 5, 6})
	tr := m.Transpose()

	assert.Equal(t, Shape{3, 2}, tr.Shape())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, tr.Data())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Data(), "receiver unchanged")
}

func TestMul(t *testing.T) {
	a := MustNew(2, 2, []float64{1, 2, 3, 4})
	b := MustNew(2, 3, []float64{1, 0, 1, 0, 1, 1})

	got := a.Mul(b)
	assert.Equal(t, Shape{2, 3}, got.Shape())
	assert.Equal(t, []float64{1, 2, 3, 3, 4, 7}, got.Data())
}

func TestMul_EmptyInnerDimension(t *testing.T) {
	a := Zeros(2, 0)
	b := Zeros(0, 3)

	got := a.Mul(b)
	assert.Equal(t, Shape{2, 3}, got.Shape())
	assert.Equal(t, 0.0, got.Sum())
}

func TestMul_ShapeMismatch(t *testing.T) {
	a := Zeros(2, 3)
	requireShapePanic(t, func() { a.Mul(a) })
}

func TestApply(t *testing.T) {
	m := MustNew(1, 3, []float64{-1, 0, 4})
	got := m.Apply(math.Abs)
	assert.Equal(t, []float64{1, 0, 4}, got.Data())
	assert.Equal(t, -1.0, m.At(0, 0))
}

func TestApply_Large(t *testing.T) {
	// Large enough to be split across workers.
	n := 1 << 15
	m := Zeros(n/64, 64)
	got := m.Apply(func(x float64) float64 { return x + 2 })
	assert.Equal(t, 2.0*float64(n), got.Sum())
}

func TestElemMul(t *testing.T) {
	a := MustNew(2, 2, []float64{1, 2, 3, 4})
	b := MustNew(2, 2, []float64{2, 0, -1, 0.5})
	assert.Equal(t, []float64{2, 0, -3, 2}, a.ElemMul(b).Data())

	requireShapePanic(t, func() { a.ElemMul(Zeros(1, 4)) })
}

func TestHCat(t *testing.T) {
	a := MustNew(2, 2, []float64{1, 2, 3, 4})
	got := a.HCat(Ones(2, 1))

	assert.Equal(t, Shape{2, 3}, got.Shape())
	assert.Equal(t, []float64{1, 2, 1, 3, 4, 1}, got.Data())

	requireShapePanic(t, func() { a.HCat(Ones(3, 1)) })
}

func TestVCat(t *testing.T) {
	a := MustNew(1, 2, []float64{1, 2})
	got := a.VCat(MustNew(2, 2, []float64{3, 4, 5, 6}))

	assert.Equal(t, Shape{3, 2}, got.Shape())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, got.Data())

	requireShapePanic(t, func() { a.VCat(Zeros(1, 3)) })
}

func TestSelectRows(t *testing.T) {
	m := MustNew(3, 2, []float64{1, 2, 3, 4, 5, 6})

	got := m.SelectRows([]int{0, 1})
	assert.Equal(t, []float64{1, 2, 3, 4}, got.Data())

	got = m.SelectRows([]int{2, 2})
	assert.Equal(t, []float64{5, 6, 5, 6}, got.Data())

	assert.Equal(t, Shape{0, 2}, m.SelectRows(nil).Shape())
	requireShapePanic(t, func() { m.SelectRows([]int{3}) })
}

func TestEqualApprox(t *testing.T) {
	a := MustNew(1, 2, []float64{1, 2})
	assert.True(t, a.EqualApprox(MustNew(1, 2, []float64{1 + 1e-9, 2}), 1e-6))
	assert.False(t, a.EqualApprox(MustNew(2, 1, []float64{1, 2}), 1e-6))
}

func TestAt_OutOfRange(t *testing.T) {
	m := Zeros(2, 2)
	assert.Panics(t, func() { m.At(2, 0) })
}
