package tensor

import (
	"fmt"
	"math"
)

// MaxElements bounds the element count of any shape. It keeps the count and
// the float64 byte size of a tensor representable as an int.
const MaxElements = math.MaxInt / 8

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
// The result is only meaningful for a shape that passes Validate.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid: all dimensions > 0 and at most
// MaxElements elements in total.
func (s Shape) Validate() error {
	n := 1
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension at index %d is %d (must be > 0)", ErrInvalidShape, i, dim)
		}
		if n > MaxElements/dim {
			return fmt.Errorf("%w: %v has more than %d elements", ErrInvalidShape, s, MaxElements)
		}
		n *= dim
	}
	return nil
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// String formats the shape as "2x3x4" ("scalar" for rank 0).
func (s Shape) String() string {
	if len(s) == 0 {
		return "scalar"
	}
	out := fmt.Sprint(s[0])
	for _, dim := range s[1:] {
		out += fmt.Sprintf("x%d", dim)
	}
	return out
}
