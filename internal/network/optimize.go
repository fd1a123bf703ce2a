package network

import (
	"fmt"

	"github.com/born-ml/tnqecc/internal/tensor"
)

// Optimizer names a strategy for ordering pairwise contractions.
type Optimizer string

// Supported optimizers.
const (
	// OptimizeGreedy merges the connected pair with the smallest result first.
	OptimizeGreedy Optimizer = "greedy"
	// OptimizeSequential always merges the first two tensors in network order.
	OptimizeSequential Optimizer = "sequential"
)

// ParseOptimizer converts a configuration string into an Optimizer.
func ParseOptimizer(s string) (Optimizer, error) {
	switch o := Optimizer(s); o {
	case OptimizeGreedy, OptimizeSequential:
		return o, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOptimizer, s)
	}
}

// nextPair picks the positions of the next two tensors to merge.
func (n *Network) nextPair(o Optimizer) (int, int, error) {
	switch o {
	case OptimizeSequential:
		return 0, 1, nil
	case OptimizeGreedy:
		i, j := n.greedyPair()
		return i, j, nil
	default:
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownOptimizer, o)
	}
}

// greedyPair returns the pair sharing at least one label whose merged tensor
// is smallest. Without any shared label it returns the two smallest tensors,
// which are then combined by outer product.
func (n *Network) greedyPair() (int, int) {
	bestI, bestJ, bestSize := -1, -1, 0
	for i := 0; i < len(n.tensors); i++ {
		for j := i + 1; j < len(n.tensors); j++ {
			a, b := n.tensors[i], n.tensors[j]
			if !shareLeg(a, b) {
				continue
			}
			size := n.mergedSize([]*tensor.Tensor{a, b})
			if bestI < 0 || size < bestSize {
				bestI, bestJ, bestSize = i, j, size
			}
		}
	}
	if bestI >= 0 {
		return bestI, bestJ
	}

	// Disconnected: outer product of the two smallest.
	first, second := -1, -1
	for i, t := range n.tensors {
		size := t.Shape().NumElements()
		switch {
		case first < 0 || size < n.tensors[first].Shape().NumElements():
			first, second = i, first
		case second < 0 || size < n.tensors[second].Shape().NumElements():
			second = i
		}
	}
	if first > second {
		first, second = second, first
	}
	return first, second
}

func (n *Network) mergedSize(pair []*tensor.Tensor) int {
	size := 1
	for _, leg := range n.groupOutput(pair, "") {
		for _, t := range pair {
			if d := t.Dim(leg); d > 0 {
				size *= d
				break
			}
		}
	}
	return size
}

func shareLeg(a, b *tensor.Tensor) bool {
	for _, leg := range a.Legs() {
		if b.HasLeg(leg) {
			return true
		}
	}
	return false
}
