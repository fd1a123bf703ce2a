// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package code_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/tnqecc/backend/cpu"
	"github.com/born-ml/tnqecc/code"
	"github.com/born-ml/tnqecc/network"
	"github.com/born-ml/tnqecc/tensor"
)

func TestPublicAPI(t *testing.T) {
	t1, err := tensor.Ones(tensor.Shape{2, 2}, []string{"a", "b"}, "T1")
	require.NoError(t, err)
	t2, err := tensor.Ones(tensor.Shape{2, 2}, []string{"b", "c"}, "T2")
	require.NoError(t, err)
	t3, err := tensor.Ones(tensor.Shape{2, 2}, []string{"b", "e"}, "T3")
	require.NoError(t, err)

	rec := tensor.NewRecordingContractor(cpu.New())
	c := code.New([]*tensor.Tensor{t1, t2, t3},
		code.WithNetworkOptions(network.WithContractor(rec)),
		code.WithStructure("hyperedge"),
	)
	assert.Equal(t, "hyperedge", c.Structure())

	out, err := c.ContractIndices("b")
	require.NoError(t, err)
	require.Equal(t, 1, out.NumTensors())
	assert.Equal(t, []string{"a", "c", "e"}, out.Tensors()[0].Legs())

	calls := rec.Calls()
	require.Len(t, calls, 1)
	assert.Len(t, calls[0].Labels, 3)

	assert.Equal(t, 3, c.Network().NumTensors())
}

func TestPublicAPIMissingLabel(t *testing.T) {
	t1, err := tensor.Ones(tensor.Shape{2}, []string{"alpha"})
	require.NoError(t, err)

	c := code.NewFromMap(map[string]*tensor.Tensor{"T1": t1})
	_, err = c.ContractIndices("alpah")
	require.ErrorIs(t, err, tensor.ErrIndexNotFound)

	var ie *tensor.IndexError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "alpah", ie.Label)
	assert.Equal(t, "alpha", ie.Suggestion)
}
