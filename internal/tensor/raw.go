package tensor

import "fmt"

// RawTensor is the low-level dense array underneath a labeled Tensor.
// Data is stored as float64 in row-major order.
//
// A RawTensor handed to a Tensor is never written again: contraction always
// allocates a fresh result, so clones of a Tensor may share one RawTensor.
type RawTensor struct {
	data   []float64
	shape  Shape // Tensor dimensions
	stride []int // Memory strides (row-major)
}

// NewRaw creates a new zero-filled RawTensor with the given shape.
func NewRaw(shape Shape) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &RawTensor{
		data:   make([]float64, shape.NumElements()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// RawFromSlice creates a RawTensor from a Go slice.
// The slice is copied into the tensor's memory.
func RawFromSlice(data []float64, shape Shape) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrInvalidShape, shape, shape.NumElements(), len(data))
	}

	raw, err := NewRaw(shape)
	if err != nil {
		return nil, err
	}
	copy(raw.data, data)
	return raw, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's memory strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// Rank returns the number of dimensions.
func (r *RawTensor) Rank() int {
	return len(r.shape)
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// Data returns the underlying row-major slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []float64 {
	return r.data
}

// Offset converts a multi-index into a flat offset.
// Panics if indices are out of bounds.
func (r *RawTensor) Offset(indices ...int) int {
	if len(indices) != len(r.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(r.shape), len(indices)))
	}

	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= r.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, r.shape[i]))
		}
		offset += idx * r.stride[i]
	}
	return offset
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (r *RawTensor) At(indices ...int) float64 {
	return r.data[r.Offset(indices...)]
}
