// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides labeled tensors for tensor-network codes.
//
// # Overview
//
// A Tensor is a dense float64 array whose dimensions carry leg labels.
// Tensors that share a label are connected along that leg when placed in a
// network (see package network). This package provides:
//   - Tensor: labeled array with display tags
//   - RawTensor: the underlying row-major array
//   - ArrayContractor: the pluggable array-contraction primitive
//   - IndexError: the failure reported for a missing label
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/tnqecc/tensor"
//	)
//
//	func main() {
//	    t1, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, []string{"a", "b"}, "T1")
//	    t2, _ := tensor.Ones(tensor.Shape{2, 2}, []string{"b", "c"}, "T2")
//	    fmt.Println(t1, t2) // Tensor(a,b)[2x2]{T1} Tensor(b,c)[2x2]{T2}
//	}
//
// # Legs
//
// Leg labels are distinct within a tensor when it is created. RenameLeg may
// transiently produce a repeated label; a later contraction sums the repeated
// dimensions together (a trace).
//
// # Contraction
//
// Tensors never contract themselves. Contraction is performed by a network
// through an ArrayContractor (backend/cpu by default), which implements
// einsum semantics: every dimension sharing a label is one summation index,
// however many tensors carry it.
package tensor
