package cpu

import (
	"errors"
	"fmt"

	"github.com/born-ml/tnqecc/internal/parallel"
	"github.com/born-ml/tnqecc/internal/tensor"
)

// errNoOperands is returned when Contract is called without arrays.
var errNoOperands = errors.New("contract: no operands")

// Contract performs an einsum-style contraction of operands.
//
// Every distinct label is one loop variable. Dimensions sharing a label,
// on the same operand or across operands, advance together; labels not in
// output are summed. Repeated labels on one operand therefore read the
// diagonal, and a label on three operands is a single shared index.
func (cpu *CPUBackend) Contract(operands []*tensor.RawTensor, labels [][]string, output []string) (*tensor.RawTensor, []string, error) {
	if len(operands) == 0 {
		return nil, nil, errNoOperands
	}
	if len(operands) != len(labels) {
		return nil, nil, fmt.Errorf("contract: %d operands but %d label lists", len(operands), len(labels))
	}

	dims, order, err := collectDims(operands, labels)
	if err != nil {
		return nil, nil, err
	}

	if output == nil {
		output = tensor.DefaultOutput(labels)
	} else if err := validateOutput(output, dims, order); err != nil {
		return nil, nil, err
	}
	output = append([]string(nil), output...)

	// Loop variables: output labels first, then summed labels.
	vars := append([]string(nil), output...)
	kept := make(map[string]bool, len(output))
	for _, l := range output {
		kept[l] = true
	}
	for _, l := range order {
		if !kept[l] {
			vars = append(vars, l)
		}
	}
	pos := make(map[string]int, len(vars))
	extent := make([]int, len(vars))
	for i, l := range vars {
		pos[l] = i
		extent[i] = dims[l]
	}

	outShape := make(tensor.Shape, len(output))
	for i, l := range output {
		outShape[i] = dims[l]
	}
	result, err := tensor.NewRaw(outShape)
	if err != nil {
		return nil, nil, fmt.Errorf("contract: failed to create result tensor: %w", err)
	}

	// Per-operand stride of each loop variable. A label repeated on one
	// operand contributes the sum of its axis strides.
	opStrides := make([][]int, len(operands))
	for k, op := range operands {
		s := make([]int, len(vars))
		for ax, l := range labels[k] {
			s[pos[l]] += op.Strides()[ax]
		}
		opStrides[k] = s
	}
	outStrides := make([]int, len(vars))
	copy(outStrides, result.Strides())

	cpu.run(result.Data(), outStrides, operands, opStrides, extent, len(output) > 0)
	return result, output, nil
}

// collectDims maps every label to its dimension, checking consistency.
func collectDims(operands []*tensor.RawTensor, labels [][]string) (map[string]int, []string, error) {
	dims := make(map[string]int)
	var order []string
	for k, op := range operands {
		if len(labels[k]) != op.Rank() {
			return nil, nil, fmt.Errorf("contract: operand %d: %w: %d labels for shape %v",
				k, tensor.ErrLegCount, len(labels[k]), op.Shape())
		}
		for ax, l := range labels[k] {
			d := op.Shape()[ax]
			prev, ok := dims[l]
			switch {
			case !ok:
				dims[l] = d
				order = append(order, l)
			case prev != d:
				return nil, nil, fmt.Errorf("contract: %w: label %q has sizes %d and %d",
					tensor.ErrDimensionMismatch, l, prev, d)
			}
		}
	}
	return dims, order, nil
}

func validateOutput(output []string, dims map[string]int, order []string) error {
	seen := make(map[string]bool, len(output))
	for _, l := range output {
		if _, ok := dims[l]; !ok {
			return tensor.NewIndexError("contract", l, order)
		}
		if seen[l] {
			return fmt.Errorf("contract: %w: %q in output %v", tensor.ErrDuplicateLeg, l, output)
		}
		seen[l] = true
	}
	return nil
}

// run evaluates the contraction. When the first loop variable is an output
// label its slabs write disjoint output elements and may run concurrently;
// each element still accumulates in the same order as a sequential walk.
func (cpu *CPUBackend) run(out []float64, outStrides []int, operands []*tensor.RawTensor, opStrides [][]int, extent []int, splittable bool) {
	datas := make([][]float64, len(operands))
	for k, op := range operands {
		datas[k] = op.Data()
	}

	if !splittable {
		einsum(out, outStrides, datas, opStrides, extent, 0, 0)
		return
	}

	work := len(operands)
	for _, e := range extent {
		work *= e
	}
	parallel.For(extent[0], work, func(slab int) {
		einsum(out, outStrides, datas, opStrides, extent, 1, slab)
	}, cpu.par)
}

// einsum walks the index space of loop variables first.. with an odometer,
// accumulating the product of operand elements into out. Variables before
// first are pinned: with first == 1, variable 0 is fixed at slab.
func einsum(out []float64, outStrides []int, datas [][]float64, opStrides [][]int, extent []int, first, slab int) {
	idx := make([]int, len(extent))
	offsets := make([]int, len(datas))
	outOff := 0
	if first == 1 {
		idx[0] = slab
		outOff = outStrides[0] * slab
		for k := range offsets {
			offsets[k] = opStrides[k][0] * slab
		}
	}

	for {
		prod := 1.0
		for k, data := range datas {
			prod *= data[offsets[k]]
		}
		out[outOff] += prod

		// Advance the odometer from the innermost variable.
		v := len(extent) - 1
		for ; v >= first; v-- {
			idx[v]++
			outOff += outStrides[v]
			for k := range offsets {
				offsets[k] += opStrides[k][v]
			}
			if idx[v] < extent[v] {
				break
			}
			outOff -= outStrides[v] * extent[v]
			for k := range offsets {
				offsets[k] -= opStrides[k][v] * extent[v]
			}
			idx[v] = 0
		}
		if v < first {
			return
		}
	}
}
