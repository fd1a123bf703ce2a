// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/tnqecc/internal/backend/cpu"
	"github.com/born-ml/tnqecc/tensor"
)

// Backend represents the CPU array contractor.
//
// It contracts dense float64 arrays with einsum semantics in pure Go.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.ArrayContractor.
var _ tensor.ArrayContractor = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/born-ml/tnqecc/backend/cpu"
//	    "github.com/born-ml/tnqecc/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    a, _ := tensor.RawFromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	    trace, _, _ := backend.Contract([]*tensor.RawTensor{a}, [][]string{{"i", "i"}}, nil)
//	    _ = trace // scalar 5
//	}
func New() *Backend {
	return internalcpu.New()
}
