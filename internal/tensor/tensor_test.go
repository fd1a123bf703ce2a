package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTensor(t *testing.T, legs []string, tags ...string) *Tensor {
	t.Helper()
	shape := make(Shape, len(legs))
	data := make([]float64, 0)
	for i := range shape {
		shape[i] = 2
	}
	for i := 0; i < shape.NumElements(); i++ {
		data = append(data, float64(i+1))
	}
	tn, err := FromSlice(data, shape, legs, tags...)
	require.NoError(t, err)
	return tn
}

func TestNew_Validation(t *testing.T) {
	r, err := NewRaw(Shape{2, 2})
	require.NoError(t, err)

	_, err = New(r, []string{"a"})
	require.ErrorIs(t, err, ErrLegCount)

	_, err = New(r, []string{"a", "a"})
	require.ErrorIs(t, err, ErrDuplicateLeg)

	tn, err := New(r, []string{"a", "b"}, "T1", "T1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tn.Legs())
	assert.Equal(t, []string{"T1"}, tn.Tags())
	assert.NotEmpty(t, tn.ID())
}

func TestTensor_Accessors(t *testing.T) {
	r, err := RawFromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)
	tn, err := New(r, []string{"a", "b"}, "T2", "T1")
	require.NoError(t, err)

	assert.Equal(t, 2, tn.Rank())
	assert.Equal(t, 0, tn.Axis("a"))
	assert.Equal(t, 1, tn.Axis("b"))
	assert.Equal(t, -1, tn.Axis("z"))
	assert.Equal(t, 3, tn.Dim("b"))
	assert.Equal(t, 0, tn.Dim("z"))
	assert.True(t, tn.HasLeg("a"))
	assert.False(t, tn.HasLeg("c"))
	assert.True(t, tn.HasTag("T1"))
	assert.Equal(t, []string{"T1", "T2"}, tn.Tags())
	assert.InDelta(t, 5.0, tn.At(1, 1), 1e-12)
	assert.Equal(t, "Tensor(a,b)[2x3]{T1,T2}", tn.String())
}

func TestTensor_LegsIsACopy(t *testing.T) {
	tn := newTestTensor(t, []string{"a", "b"})
	legs := tn.Legs()
	legs[0] = "x"
	assert.Equal(t, []string{"a", "b"}, tn.Legs())
}

func TestTensor_RenameLeg(t *testing.T) {
	tn := newTestTensor(t, []string{"d", "c"})
	before := append([]float64(nil), tn.Data()...)

	require.NoError(t, tn.RenameLeg("d", "a"))
	assert.Equal(t, []string{"a", "c"}, tn.Legs())
	assert.Equal(t, before, tn.Data())
}

// Renaming onto an existing leg leaves a repeated label behind.
func TestTensor_RenameLegOntoExisting(t *testing.T) {
	tn := newTestTensor(t, []string{"a", "b"})
	require.NoError(t, tn.RenameLeg("b", "a"))
	assert.Equal(t, []string{"a", "a"}, tn.Legs())
}

func TestTensor_RenameLegMissing(t *testing.T) {
	tn := newTestTensor(t, []string{"a", "b"})
	err := tn.RenameLeg("z", "a")
	require.ErrorIs(t, err, ErrIndexNotFound)

	var ie *IndexError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "z", ie.Label)
	assert.Equal(t, []string{"a", "b"}, tn.Legs())
}

func TestTensor_CopyIndependence(t *testing.T) {
	tn := newTestTensor(t, []string{"a", "b"}, "T1")
	cp := tn.Copy()

	require.NoError(t, cp.RenameLeg("a", "x"))
	cp.AddTags("extra")

	assert.Equal(t, tn.ID(), cp.ID())
	assert.Equal(t, []string{"a", "b"}, tn.Legs())
	assert.Equal(t, []string{"T1"}, tn.Tags())
	assert.Equal(t, []string{"x", "b"}, cp.Legs())
	assert.Same(t, tn.Raw(), cp.Raw())
}

func TestTensor_Item(t *testing.T) {
	r, err := RawFromSlice([]float64{3.5}, Shape{})
	require.NoError(t, err)
	s, err := New(r, nil)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, s.Item(), 1e-12)
	assert.Equal(t, "Tensor()[scalar]", s.String())

	assert.Panics(t, func() { newTestTensor(t, []string{"a"}).Item() })
}

func TestRestore(t *testing.T) {
	raw, err := RawFromSlice([]float64{1, 2}, Shape{2})
	require.NoError(t, err)

	const id = "6f1c2a4e-5b7d-4e8f-9a0b-1c2d3e4f5a6b"
	tn, err := Restore(id, raw, []string{"a"}, "T1")
	require.NoError(t, err)
	assert.Equal(t, id, tn.ID())
	assert.True(t, tn.HasTag("T1"))

	_, err = Restore("not-a-uuid", raw, []string{"a"})
	assert.Error(t, err)

	_, err = Restore(id, raw, []string{"a", "b"})
	assert.ErrorIs(t, err, ErrLegCount)
}
