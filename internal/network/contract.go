package network

import (
	"fmt"
	"log/slog"

	"github.com/born-ml/tnqecc/internal/tensor"
)

// ContractInd returns a new network in which every tensor exposing label has
// been merged into one tensor. The receiver is not modified.
//
// All owners of label are contracted in a single call to the contractor, so
// a label held by three or more tensors is one shared summation index (a
// diagonal contraction), not a chain of pairwise contractions.
//
// The merged tensor keeps the union of its inputs' legs in first-appearance
// order, minus label, minus any other label whose every occurrence lies
// inside the merged group. Those are summed as well, so contracting one label
// can make another one disappear from the index map.
func (n *Network) ContractInd(label string) (*Network, error) {
	c := n.Copy()
	if err := c.contractInd(label); err != nil {
		return nil, err
	}
	return c, nil
}

// contractInd contracts label in place. Only called on private copies.
func (n *Network) contractInd(label string) error {
	owners, ok := n.indMap[label]
	if !ok {
		return tensor.NewIndexError("contract_ind", label, n.Indices())
	}

	output := n.groupOutput(owners, label)
	merged, err := tensor.ContractTensors(n.contractor, owners, output)
	if err != nil {
		return fmt.Errorf("contract_ind %q: %w", label, err)
	}
	n.replace(owners, merged)

	n.logger.Debug("contracted index",
		slog.String("label", label),
		slog.Int("tensors", len(owners)),
		slog.Any("legs", merged.Legs()),
	)
	return nil
}

// groupOutput decides which labels survive merging group. A label is summed
// when it is forced or when all of its occurrences (at least two) are inside
// group; every other label is kept once, in first-appearance order.
func (n *Network) groupOutput(group []*tensor.Tensor, forced string) []string {
	total := n.legCounts()
	inside := make(map[string]int)
	var order []string
	for _, t := range group {
		for _, leg := range t.Legs() {
			if inside[leg] == 0 {
				order = append(order, leg)
			}
			inside[leg]++
		}
	}

	output := make([]string, 0, len(order))
	for _, leg := range order {
		if leg == forced {
			continue
		}
		if inside[leg] == total[leg] && total[leg] >= 2 {
			continue
		}
		output = append(output, leg)
	}
	return output
}

// replace swaps the tensors in group for merged, which takes the position of
// the first of them.
func (n *Network) replace(group []*tensor.Tensor, merged *tensor.Tensor) {
	consumed := make(map[*tensor.Tensor]bool, len(group))
	for _, t := range group {
		consumed[t] = true
	}

	kept := make([]*tensor.Tensor, 0, len(n.tensors)-len(group)+1)
	placed := false
	for _, t := range n.tensors {
		if !consumed[t] {
			kept = append(kept, t)
			continue
		}
		if !placed {
			kept = append(kept, merged)
			placed = true
		}
	}
	n.tensors = kept
	n.rebuild()
}

// ContractOption configures a full contraction.
type ContractOption func(*contractConfig)

type contractConfig struct {
	optimizer  Optimizer
	outputLegs []string
}

// WithOptimizer selects the pairwise evaluation order.
func WithOptimizer(o Optimizer) ContractOption {
	return func(c *contractConfig) {
		c.optimizer = o
	}
}

// WithOutputLegs orders the legs of the result. legs must be a permutation
// of the network's open legs.
func WithOutputLegs(legs ...string) ContractOption {
	return func(c *contractConfig) {
		c.outputLegs = append([]string(nil), legs...)
	}
}

// Contract evaluates the whole network as one expression and returns the
// resulting tensor. The receiver is not modified.
//
// The result's legs are the open legs (labels occurring exactly once). Labels
// repeated on a single tensor with no other carrier are traced. Tensors are
// merged pairwise in the order chosen by the optimizer; tensors sharing no
// label end up combined by outer product. The value does not depend on the
// order beyond floating-point rounding.
func (n *Network) Contract(opts ...ContractOption) (*tensor.Tensor, error) {
	cfg := contractConfig{optimizer: OptimizeGreedy}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(n.tensors) == 0 {
		return nil, ErrEmptyNetwork
	}

	output, err := n.finalOutput(cfg.outputLegs)
	if err != nil {
		return nil, err
	}

	work := n.Copy()
	steps := 0
	for len(work.tensors) > 1 {
		i, j, err := work.nextPair(cfg.optimizer)
		if err != nil {
			return nil, err
		}
		pair := []*tensor.Tensor{work.tensors[i], work.tensors[j]}
		merged, err := tensor.ContractTensors(work.contractor, pair, work.groupOutput(pair, ""))
		if err != nil {
			return nil, fmt.Errorf("contract: %w", err)
		}
		work.replace(pair, merged)
		steps++
	}

	result := work.tensors[0]
	if !sameLegs(result.Legs(), output) {
		// Trace leftover repeated labels and apply the requested order.
		result, err = tensor.ContractTensors(work.contractor, []*tensor.Tensor{result}, output)
		if err != nil {
			return nil, fmt.Errorf("contract: %w", err)
		}
	}

	n.logger.Debug("contracted network",
		slog.String("optimizer", string(cfg.optimizer)),
		slog.Int("tensors", len(n.tensors)),
		slog.Int("steps", steps),
		slog.Any("legs", result.Legs()),
	)
	return result, nil
}

// finalOutput returns the legs of a full contraction: the requested order,
// or the open legs in network order.
func (n *Network) finalOutput(requested []string) ([]string, error) {
	counts := n.legCounts()
	open := []string{}
	seen := make(map[string]bool)
	for _, t := range n.tensors {
		for _, leg := range t.Legs() {
			if counts[leg] == 1 && !seen[leg] {
				seen[leg] = true
				open = append(open, leg)
			}
		}
	}
	if requested == nil {
		return open, nil
	}

	used := make(map[string]bool, len(requested))
	for _, leg := range requested {
		if _, ok := counts[leg]; !ok {
			return nil, tensor.NewIndexError("contract", leg, n.Indices())
		}
		if !seen[leg] || used[leg] {
			return nil, fmt.Errorf("%w: got %v, open legs %v", ErrOutputLegs, requested, open)
		}
		used[leg] = true
	}
	if len(used) != len(open) {
		return nil, fmt.Errorf("%w: got %v, open legs %v", ErrOutputLegs, requested, open)
	}
	return append([]string(nil), requested...), nil
}

func sameLegs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
