package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawFromSlice(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	r, err := RawFromSlice(data, Shape{2, 3})
	require.NoError(t, err)

	assert.Equal(t, 2, r.Rank())
	assert.Equal(t, 6, r.NumElements())
	assert.Equal(t, []int{3, 1}, r.Strides())
	assert.InDelta(t, 6.0, r.At(1, 2), 1e-12)

	// Source slice is copied.
	data[0] = 100
	assert.InDelta(t, 1.0, r.At(0, 0), 1e-12)
}

func TestRawFromSlice_WrongLength(t *testing.T) {
	_, err := RawFromSlice([]float64{1, 2, 3}, Shape{2, 2})
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestNewRaw_InvalidShape(t *testing.T) {
	_, err := NewRaw(Shape{2, 0})
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestRawAtAndOffset(t *testing.T) {
	r, err := RawFromSlice([]float64{1, 2, 7, 4}, Shape{2, 2})
	require.NoError(t, err)

	assert.Equal(t, 2, r.Offset(1, 0))
	assert.InDelta(t, 7.0, r.At(1, 0), 1e-12)

	assert.Panics(t, func() { r.At(2, 0) })
	assert.Panics(t, func() { r.At(0) })
}

func TestRawFromSlice_OverflowingShape(t *testing.T) {
	// 2^32 x 2^32 wraps to zero elements in int arithmetic.
	_, err := RawFromSlice(nil, Shape{1 << 32, 1 << 32})
	require.ErrorIs(t, err, ErrInvalidShape)

	_, err = NewRaw(Shape{1 << 32, 1 << 32})
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestRawScalar(t *testing.T) {
	r, err := NewRaw(Shape{})
	require.NoError(t, err)
	assert.Equal(t, 1, r.NumElements())
	assert.Equal(t, 0, r.Offset())
}
