// Package cpu implements the pure Go array-contraction backend.
package cpu

import (
	"github.com/born-ml/tnqecc/internal/parallel"
	"github.com/born-ml/tnqecc/internal/tensor"
)

// Compile-time check that CPUBackend implements tensor.ArrayContractor.
var _ tensor.ArrayContractor = (*CPUBackend)(nil)

// CPUBackend contracts dense row-major arrays on the CPU.
type CPUBackend struct {
	par parallel.Config
}

// New creates a new CPU backend. Large contractions are split across all CPUs.
func New() *CPUBackend {
	return &CPUBackend{par: parallel.DefaultConfig()}
}

// NewWithParallel creates a CPU backend with explicit parallelism settings.
// parallel.Sequential() keeps every contraction on the calling goroutine.
func NewWithParallel(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{par: cfg}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}
