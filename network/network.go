// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package network

import (
	"log/slog"

	"github.com/born-ml/tnqecc/internal/network"
	"github.com/born-ml/tnqecc/tensor"
)

// Network is a collection of labeled tensors plus the derived index map.
//
// Network provides:
//   - ContractInd(label): merge every owner of one label
//   - Contract(opts...): contract everything into one tensor
//   - Reindex(from, to): rename a label on every tensor
//   - IndMap(), OuterInds(), InnerInds(), View() for inspection
type Network = network.Network

// Option configures a Network.
type Option = network.Option

// ContractOption configures a full contraction.
type ContractOption = network.ContractOption

// Optimizer names a strategy for ordering pairwise contractions.
type Optimizer = network.Optimizer

// View is a renderer-facing snapshot of a network.
type View = network.View

// Node is one tensor in a View.
type Node = network.Node

// Edge is one shared label in a View.
type Edge = network.Edge

// OpenLeg is one external leg in a View.
type OpenLeg = network.OpenLeg

// Supported optimizers.
const (
	OptimizeGreedy     = network.OptimizeGreedy
	OptimizeSequential = network.OptimizeSequential
)

// Common errors.
var (
	ErrEmptyNetwork     = network.ErrEmptyNetwork
	ErrOutputLegs       = network.ErrOutputLegs
	ErrUnknownOptimizer = network.ErrUnknownOptimizer
)

// New creates a network over tensors. The tensors are held by reference;
// operations that return new networks copy them first.
func New(tensors []*tensor.Tensor, opts ...Option) *Network {
	return network.New(tensors, opts...)
}

// WithContractor sets the array contractor (default: backend/cpu).
func WithContractor(c tensor.ArrayContractor) Option {
	return network.WithContractor(c)
}

// WithLogger sets the logger used for contraction debug records.
func WithLogger(l *slog.Logger) Option {
	return network.WithLogger(l)
}

// WithOptimizer selects the pairwise ordering strategy.
func WithOptimizer(o Optimizer) ContractOption {
	return network.WithOptimizer(o)
}

// WithOutputLegs fixes the leg order of the contracted tensor.
func WithOutputLegs(legs ...string) ContractOption {
	return network.WithOutputLegs(legs...)
}

// ParseOptimizer converts a configuration string into an Optimizer.
func ParseOptimizer(s string) (Optimizer, error) {
	return network.ParseOptimizer(s)
}
