package tensor

// ArrayContractor is the array-contraction primitive the network delegates to.
// Implementations do the numeric multiply-and-sum; callers only choose which
// arrays and labels take part.
//
// Contract receives N operands and, for each, one label per dimension. Labels
// name shared summation indices: every dimension carrying the same label is
// iterated together, whether it sits on one operand (a diagonal) or on three
// or more (a hyperedge). The result keeps the labels listed in output, in that
// order, and sums over all others. With a nil output the result keeps the
// labels occurring exactly once across all operands (see DefaultOutput).
//
// Implementations:
//   - backend/cpu: pure Go strided einsum
//   - RecordingContractor: decorator that records every call (tests)
type ArrayContractor interface {
	Contract(operands []*RawTensor, labels [][]string, output []string) (*RawTensor, []string, error)

	// Metadata
	Name() string
}

// DefaultOutput returns the labels occurring exactly once across labels,
// in order of first appearance.
func DefaultOutput(labels [][]string) []string {
	counts := make(map[string]int)
	var order []string
	for _, ls := range labels {
		for _, l := range ls {
			if counts[l] == 0 {
				order = append(order, l)
			}
			counts[l]++
		}
	}

	out := make([]string, 0, len(order))
	for _, l := range order {
		if counts[l] == 1 {
			out = append(out, l)
		}
	}
	return out
}

// ContractTensors merges ts into one new tensor through c. The result keeps
// output (or DefaultOutput when nil) and carries the union of the inputs' tags.
func ContractTensors(c ArrayContractor, ts []*Tensor, output []string) (*Tensor, error) {
	operands := make([]*RawTensor, len(ts))
	labels := make([][]string, len(ts))
	var tags []string
	for i, t := range ts {
		operands[i] = t.raw
		labels[i] = t.legs
		tags = append(tags, t.Tags()...)
	}

	raw, legs, err := c.Contract(operands, labels, output)
	if err != nil {
		return nil, err
	}
	return New(raw, legs, tags...)
}
