// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU array contractor for tensor networks.
//
// # Overview
//
// This package implements tensor.ArrayContractor with:
//   - Pure Go implementation (no CGO)
//   - Einsum semantics over row-major strides
//   - Shared labels across any number of operands (hyperedges)
//   - Repeated labels within one operand (traces and diagonals)
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/tnqecc/backend/cpu"
//	    "github.com/born-ml/tnqecc/network"
//	    "github.com/born-ml/tnqecc/tensor"
//	)
//
//	func main() {
//	    t1, _ := tensor.Ones(tensor.Shape{2, 3}, []string{"a", "b"})
//	    t2, _ := tensor.Ones(tensor.Shape{3, 4}, []string{"b", "c"})
//
//	    tn := network.New([]*tensor.Tensor{t1, t2}, network.WithContractor(cpu.New()))
//	    result, _ := tn.Contract() // legs [a c], every entry 3
//	}
//
// The CPU backend is the default contractor of every network, so passing it
// explicitly is only needed when wrapping it (for example in a
// tensor.RecordingContractor).
//
// # Performance
//
// The contractor walks the full index space of every contraction with an
// odometer, so its cost is the product of all distinct label dimensions in
// one call. Networks are contracted pairwise to keep that product small.
package cpu
