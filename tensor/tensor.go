// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"

	"github.com/born-ml/tnqecc/internal/tensor"
)

// Type aliases for public API

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// MaxElements is the largest element count a Shape may describe.
const MaxElements = tensor.MaxElements

// Tensor is a dense array with one leg label per dimension and a set of
// display tags.
//
// Tensor provides:
//   - Legs(), Axis(), Dim(), HasLeg() for leg bookkeeping
//   - Tags(), HasTag(), AddTags() for display grouping
//   - RenameLeg() for fusing legs ahead of a contraction
//   - Copy() with shared immutable data
//
// Example:
//
//	t, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, []string{"a", "b"})
//	t.Dim("a") // 2
type Tensor = tensor.Tensor

// IndexError reports a label that is not present where an operation needs
// it. It matches ErrIndexNotFound under errors.Is.
type IndexError = tensor.IndexError

// Common errors.
var (
	ErrIndexNotFound     = tensor.ErrIndexNotFound
	ErrDuplicateLeg      = tensor.ErrDuplicateLeg
	ErrLegCount          = tensor.ErrLegCount
	ErrInvalidShape      = tensor.ErrInvalidShape
	ErrDimensionMismatch = tensor.ErrDimensionMismatch
)

// New creates a Tensor from a RawTensor, one distinct label per dimension.
func New(raw *RawTensor, legs []string, tags ...string) (*Tensor, error) {
	return tensor.New(raw, legs, tags...)
}

// FromSlice creates a tensor from a Go slice (copied).
func FromSlice(data []float64, shape Shape, legs []string, tags ...string) (*Tensor, error) {
	return tensor.FromSlice(data, shape, legs, tags...)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape, legs []string, tags ...string) (*Tensor, error) {
	return tensor.Zeros(shape, legs, tags...)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape, legs []string, tags ...string) (*Tensor, error) {
	return tensor.Ones(shape, legs, tags...)
}

// Full creates a tensor filled with value.
func Full(shape Shape, value float64, legs []string, tags ...string) (*Tensor, error) {
	return tensor.Full(shape, value, legs, tags...)
}

// Rand creates a tensor with values uniformly distributed in [0, 1) drawn from rng.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	t1, _ := tensor.Rand(rng, tensor.Shape{2, 2}, []string{"a", "b"}, "T1")
func Rand(rng *rand.Rand, shape Shape, legs []string, tags ...string) (*Tensor, error) {
	return tensor.Rand(rng, shape, legs, tags...)
}
