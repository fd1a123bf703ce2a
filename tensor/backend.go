// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/tnqecc/internal/tensor"

// ArrayContractor is the array-contraction primitive networks delegate to.
//
// Given N arrays and one label per dimension of each, Contract returns the
// array (and its labels) obtained by summing every label not listed in
// output; a nil output keeps the labels occurring exactly once.
//
// Implementations:
//   - backend/cpu: Pure Go strided einsum
//
// Any numeric backend honoring this contract can be swapped in:
//
//	import (
//	    "github.com/born-ml/tnqecc/backend/cpu"
//	    "github.com/born-ml/tnqecc/network"
//	)
//
//	tn := network.New(tensors, network.WithContractor(cpu.New()))
type ArrayContractor = tensor.ArrayContractor

// RecordingContractor wraps an ArrayContractor and records every call.
type RecordingContractor = tensor.RecordingContractor

// ContractCall is one recorded contraction.
type ContractCall = tensor.ContractCall

// NewRecordingContractor creates a RecordingContractor around inner.
func NewRecordingContractor(inner ArrayContractor) *RecordingContractor {
	return tensor.NewRecordingContractor(inner)
}

// DefaultOutput returns the labels occurring exactly once, in first-appearance order.
func DefaultOutput(labels [][]string) []string {
	return tensor.DefaultOutput(labels)
}
