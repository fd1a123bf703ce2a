// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package code provides TensorNetworkCode: a quantum error-correcting code
// described as a tensor network.
//
// # Overview
//
// A Code owns a network built from copies of the tensors it is given, plus
// an optional structure value describing the intended code topology. It
// offers three contraction operations, each returning a new network:
//   - ContractIndices: contract labels one after another
//   - FuseAndContractIndices: rename one label onto another, then contract
//   - ContractTwoIndices: validate two labels, then contract both
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/tnqecc/code"
//	    "github.com/born-ml/tnqecc/tensor"
//	)
//
//	func main() {
//	    t1, _ := tensor.Ones(tensor.Shape{2, 2}, []string{"a", "b"}, "T1")
//	    t2, _ := tensor.Ones(tensor.Shape{2, 2}, []string{"d", "c"}, "T2")
//
//	    c := code.New([]*tensor.Tensor{t1, t2})
//	    fused, err := c.FuseAndContractIndices("a", "d")
//	    // c.Network() still has two tensors
//	}
//
// # Validation
//
// ContractIndices checks each label just before contracting it. When a later
// label is missing, the earlier contractions have already happened on the
// private copy; the copy is discarded and the error returned. Contracting one
// label can also remove another (when all of its carriers are merged), so a
// label that existed at call time may be reported missing.
package code
