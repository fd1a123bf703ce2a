package network

import (
	"io"
	"log/slog"
	"math"
	"sort"

	"github.com/born-ml/tnqecc/internal/backend/cpu"
	"github.com/born-ml/tnqecc/internal/tensor"
)

// Network is a collection of tensors plus the derived index map.
//
// The index map is never set directly: every structural change goes through
// rebuild, which recomputes it from the tensor list.
type Network struct {
	tensors    []*tensor.Tensor
	indMap     map[string][]*tensor.Tensor
	contractor tensor.ArrayContractor
	logger     *slog.Logger
}

// Option configures a Network.
type Option func(*Network)

// WithContractor sets the array-contraction primitive (default: cpu backend).
func WithContractor(c tensor.ArrayContractor) Option {
	return func(n *Network) {
		n.contractor = c
	}
}

// WithLogger sets the logger used for debug records of contractions.
func WithLogger(l *slog.Logger) Option {
	return func(n *Network) {
		n.logger = l
	}
}

// New creates a network holding tensors. The network takes ownership of
// them: renaming a leg on a tensor after handing it over desynchronizes the
// index map.
func New(tensors []*tensor.Tensor, opts ...Option) *Network {
	n := &Network{
		tensors:    append([]*tensor.Tensor(nil), tensors...),
		contractor: cpu.New(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	}
	for _, opt := range opts {
		opt(n)
	}
	n.rebuild()
	return n
}

// rebuild recomputes the index map from the tensor list.
func (n *Network) rebuild() {
	n.indMap = make(map[string][]*tensor.Tensor)
	for _, t := range n.tensors {
		seen := make(map[string]bool, t.Rank())
		for _, leg := range t.Legs() {
			if seen[leg] {
				continue
			}
			seen[leg] = true
			n.indMap[leg] = append(n.indMap[leg], t)
		}
	}
}

// AddTensor appends t. Each of its legs now maps to the previous owners plus
// t; a label already held by one tensor becomes a bond between the two.
func (n *Network) AddTensor(t *tensor.Tensor) {
	n.tensors = append(n.tensors, t)
	n.rebuild()
}

// Copy returns an independent network: tensors are copied (legs and tags),
// so renaming or contracting in the copy never affects n.
func (n *Network) Copy() *Network {
	c := &Network{
		tensors:    make([]*tensor.Tensor, len(n.tensors)),
		contractor: n.contractor,
		logger:     n.logger,
	}
	for i, t := range n.tensors {
		c.tensors[i] = t.Copy()
	}
	c.rebuild()
	return c
}

// Contractor returns the array-contraction primitive in use.
func (n *Network) Contractor() tensor.ArrayContractor {
	return n.contractor
}

// Tensors returns the tensors in insertion order.
func (n *Network) Tensors() []*tensor.Tensor {
	return append([]*tensor.Tensor(nil), n.tensors...)
}

// NumTensors returns the number of tensors.
func (n *Network) NumTensors() int {
	return len(n.tensors)
}

// HasInd reports whether label is exposed by at least one tensor.
func (n *Network) HasInd(label string) bool {
	_, ok := n.indMap[label]
	return ok
}

// TensorsWithInd returns the tensors exposing label.
func (n *Network) TensorsWithInd(label string) []*tensor.Tensor {
	return append([]*tensor.Tensor(nil), n.indMap[label]...)
}

// IndMap returns a copy of the index map.
func (n *Network) IndMap() map[string][]*tensor.Tensor {
	m := make(map[string][]*tensor.Tensor, len(n.indMap))
	for label, ts := range n.indMap {
		m[label] = append([]*tensor.Tensor(nil), ts...)
	}
	return m
}

// Indices returns every label in the index map, sorted.
func (n *Network) Indices() []string {
	labels := make([]string, 0, len(n.indMap))
	for label := range n.indMap {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// legCounts counts occurrences of every label over all tensor legs.
func (n *Network) legCounts() map[string]int {
	counts := make(map[string]int, len(n.indMap))
	for _, t := range n.tensors {
		for _, leg := range t.Legs() {
			counts[leg]++
		}
	}
	return counts
}

// OuterInds returns the open legs: labels occurring exactly once, sorted.
func (n *Network) OuterInds() []string {
	var out []string
	for label, c := range n.legCounts() {
		if c == 1 {
			out = append(out, label)
		}
	}
	sort.Strings(out)
	return out
}

// InnerInds returns the labels occurring more than once, sorted.
// This includes hyperedges and labels repeated on a single tensor.
func (n *Network) InnerInds() []string {
	var out []string
	for label, c := range n.legCounts() {
		if c > 1 {
			out = append(out, label)
		}
	}
	sort.Strings(out)
	return out
}

// SelectTags returns the tensors carrying all of tags.
func (n *Network) SelectTags(tags ...string) []*tensor.Tensor {
	var out []*tensor.Tensor
	for _, t := range n.tensors {
		all := true
		for _, tag := range tags {
			if !t.HasTag(tag) {
				all = false
				break
			}
		}
		if all {
			out = append(out, t)
		}
	}
	return out
}

// Reindex returns a copy of n with from renamed to to on every tensor.
// A label that is absent leaves the copy unchanged.
func (n *Network) Reindex(from, to string) *Network {
	c := n.Copy()
	c.reindex(from, to)
	return c
}

func (n *Network) reindex(from, to string) {
	for _, t := range n.indMap[from] {
		// Owners come from the index map, so the leg is present.
		_ = t.RenameLeg(from, to)
	}
	n.rebuild()
}
