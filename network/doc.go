// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package network provides tensor networks: labeled tensors connected along
// shared leg labels.
//
// # Overview
//
// A Network holds an ordered list of tensors and the index map from each
// label to the tensors exposing it. A label held by one tensor is an open
// leg, by two an internal bond, by three or more a hyperedge.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/tnqecc/network"
//	    "github.com/born-ml/tnqecc/tensor"
//	)
//
//	func main() {
//	    t1, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, []string{"a", "b"})
//	    t2, _ := tensor.FromSlice([]float64{5, 6, 7, 8}, tensor.Shape{2, 2}, []string{"b", "c"})
//
//	    tn := network.New([]*tensor.Tensor{t1, t2})
//	    merged, _ := tn.ContractInd("b") // tn is unchanged
//	    result, _ := tn.Contract(network.WithOptimizer(network.OptimizeSequential))
//	}
//
// # Value Semantics
//
// ContractInd, Reindex and Contract return new values and never modify the
// receiver. AddTensor is the only in-place mutation.
package network
