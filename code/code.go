// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package code

import (
	"log/slog"

	"github.com/born-ml/tnqecc/internal/code"
	"github.com/born-ml/tnqecc/network"
	"github.com/born-ml/tnqecc/tensor"
)

// Code is a tensor-network quantum error-correcting code.
//
// Code provides:
//   - ContractIndices, FuseAndContractIndices, ContractTwoIndices
//   - Contract for full contraction
//   - AddTensor and GetTensors for the owned network
//   - View for renderers
type Code = code.Code

// Option configures a Code.
type Option = code.Option

// New builds a code from a list of tensors.
func New(tensors []*tensor.Tensor, opts ...Option) *Code {
	return code.New(tensors, opts...)
}

// NewFromMap builds a code from named tensors, ordered by name. Each name is
// added to its tensor's tags in the network.
func NewFromMap(named map[string]*tensor.Tensor, opts ...Option) *Code {
	return code.NewFromMap(named, opts...)
}

// WithStructure attaches an opaque description of the intended code.
func WithStructure(s any) Option {
	return code.WithStructure(s)
}

// WithNetworkOptions passes options to the owned network.
func WithNetworkOptions(opts ...network.Option) Option {
	return code.WithNetworkOptions(opts...)
}

// WithLogger sets the logger for the code and its network.
func WithLogger(l *slog.Logger) Option {
	return code.WithLogger(l)
}
