// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/tnqecc/internal/tensor"
)

// RawTensor is the low-level tensor representation.
//
// RawTensor provides:
//   - Shape and strides via Shape(), Strides()
//   - Row-major float64 data via Data(), At()
//
// Most users should use the labeled Tensor type instead; contractor
// implementations work on RawTensor.
//
// Example:
//
//	raw, _ := tensor.RawFromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	v := raw.At(1, 2) // 6
type RawTensor = tensor.RawTensor

// NewRaw creates a zero-filled RawTensor.
func NewRaw(shape Shape) (*RawTensor, error) {
	return tensor.NewRaw(shape)
}

// RawFromSlice creates a RawTensor from a Go slice (copied).
func RawFromSlice(data []float64, shape Shape) (*RawTensor, error) {
	return tensor.RawFromSlice(data, shape)
}
