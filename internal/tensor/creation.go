package tensor

import "math/rand"

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t, err := tensor.Zeros(Shape{2, 2}, []string{"a", "b"})
func Zeros(shape Shape, legs []string, tags ...string) (*Tensor, error) {
	raw, err := NewRaw(shape)
	if err != nil {
		return nil, err
	}
	// Data is already zero-initialized by make()
	return New(raw, legs, tags...)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape, legs []string, tags ...string) (*Tensor, error) {
	return Full(shape, 1, legs, tags...)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t, err := tensor.Full(Shape{2}, 0.5, []string{"x"}, "plus")
func Full(shape Shape, value float64, legs []string, tags ...string) (*Tensor, error) {
	raw, err := NewRaw(shape)
	if err != nil {
		return nil, err
	}
	data := raw.Data()
	for i := range data {
		data[i] = value
	}
	return New(raw, legs, tags...)
}

// Rand creates a tensor with values uniformly distributed in [0, 1) drawn from rng.
// Note: Uses math/rand (not crypto/rand) - values only seed example networks.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	t1, err := tensor.Rand(rng, Shape{2, 2}, []string{"a", "b"}, "T1")
func Rand(rng *rand.Rand, shape Shape, legs []string, tags ...string) (*Tensor, error) {
	raw, err := NewRaw(shape)
	if err != nil {
		return nil, err
	}
	data := raw.Data()
	for i := range data {
		data[i] = rng.Float64()
	}
	return New(raw, legs, tags...)
}
