// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"errors"
	"testing"

	"github.com/born-ml/tnqecc/internal/backend/cpu"
	"github.com/born-ml/tnqecc/tensor"
)

// TestBackendInterface verifies that cpu.CPUBackend implements tensor.ArrayContractor.
func TestBackendInterface(_ *testing.T) {
	var _ tensor.ArrayContractor = (*cpu.CPUBackend)(nil)
}

// TestRawTensorAPI verifies RawTensor type alias exposes expected API.
func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.RawFromSlice([]float64{0, 0, 0, 0, 0, 2.5}, tensor.Shape{2, 3})
	if err != nil {
		t.Fatalf("RawFromSlice failed: %v", err)
	}

	if raw.Shape().String() != "2x3" {
		t.Errorf("Shape() = %v, want [2 3]", raw.Shape())
	}
	if raw.NumElements() != 6 {
		t.Errorf("NumElements() = %d, want 6", raw.NumElements())
	}

	if got := raw.At(1, 2); got != 2.5 {
		t.Errorf("At(1, 2) = %v, want 2.5", got)
	}
}

// TestTensorAPI verifies the labeled Tensor alias and constructors.
func TestTensorAPI(t *testing.T) {
	tn, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, []string{"a", "b"}, "T1")
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if got := tn.String(); got != "Tensor(a,b)[2x2]{T1}" {
		t.Errorf("String() = %q", got)
	}

	err = tn.RenameLeg("z", "a")
	if !errors.Is(err, tensor.ErrIndexNotFound) {
		t.Errorf("RenameLeg(z) error = %v, want ErrIndexNotFound", err)
	}
	var ie *tensor.IndexError
	if !errors.As(err, &ie) || ie.Label != "z" {
		t.Errorf("RenameLeg(z) error = %#v, want IndexError for z", err)
	}

	if _, err := tensor.Zeros(tensor.Shape{2}, []string{"a", "b"}); !errors.Is(err, tensor.ErrLegCount) {
		t.Errorf("Zeros with wrong legs error = %v, want ErrLegCount", err)
	}
}
