// Package code implements TensorNetworkCode: a quantum error-correcting code
// described as a tensor network.
//
// A Code owns one network built from the tensors it is given plus an optional
// description of the intended code topology, which it never interprets. Every
// contraction it offers returns a new network and leaves the code's own
// network alone; AddTensor is the only way to change it.
package code

import (
	"io"
	"log/slog"
	"math"
	"sort"

	"github.com/born-ml/tnqecc/internal/network"
	"github.com/born-ml/tnqecc/internal/tensor"
)

// Code is a tensor-network quantum error-correcting code.
type Code struct {
	tensors   []*tensor.Tensor
	named     map[string]*tensor.Tensor
	network   *network.Network
	structure any
	logger    *slog.Logger
}

// Option configures a Code.
type Option func(*options)

type options struct {
	structure  any
	networkOps []network.Option
	logger     *slog.Logger
}

// WithStructure attaches an adjacency or graph description of the intended
// code. It is kept as given and returned by Structure.
func WithStructure(s any) Option {
	return func(o *options) {
		o.structure = s
	}
}

// WithNetworkOptions passes options to the owned network (e.g. a contractor).
func WithNetworkOptions(opts ...network.Option) Option {
	return func(o *options) {
		o.networkOps = append(o.networkOps, opts...)
	}
}

// WithLogger sets the logger for the code and its network.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New builds a code from a list of tensors. The network holds copies, so
// the caller's tensors are never renamed or reordered by the code.
func New(tensors []*tensor.Tensor, opts ...Option) *Code {
	return build(tensors, nil, opts)
}

// NewFromMap builds a code from named tensors. Tensors enter the network in
// name order and each name is added to its copy's tags.
func NewFromMap(named map[string]*tensor.Tensor, opts ...Option) *Code {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)

	tensors := make([]*tensor.Tensor, len(names))
	for i, name := range names {
		tensors[i] = named[name]
	}
	c := build(tensors, named, opts)
	for i, t := range c.network.Tensors() {
		t.AddTags(names[i])
	}
	return c
}

func build(tensors []*tensor.Tensor, named map[string]*tensor.Tensor, opts []Option) *Code {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))}
	for _, opt := range opts {
		opt(&o)
	}

	copies := make([]*tensor.Tensor, len(tensors))
	for i, t := range tensors {
		copies[i] = t.Copy()
	}
	netOpts := append([]network.Option{network.WithLogger(o.logger)}, o.networkOps...)

	c := &Code{
		tensors:   append([]*tensor.Tensor(nil), tensors...),
		network:   network.New(copies, netOpts...),
		structure: o.structure,
		logger:    o.logger,
	}
	if named != nil {
		c.named = make(map[string]*tensor.Tensor, len(named))
		for name, t := range named {
			c.named[name] = t
		}
	}
	return c
}

// Network returns the code's own network.
func (c *Code) Network() *network.Network {
	return c.network
}

// Tensors returns the tensors the code was built from.
func (c *Code) Tensors() []*tensor.Tensor {
	return append([]*tensor.Tensor(nil), c.tensors...)
}

// Named returns the named tensors the code was built from, or nil when it
// was built from a list.
func (c *Code) Named() map[string]*tensor.Tensor {
	if c.named == nil {
		return nil
	}
	out := make(map[string]*tensor.Tensor, len(c.named))
	for name, t := range c.named {
		out[name] = t
	}
	return out
}

// Structure returns the topology description given at construction.
func (c *Code) Structure() any {
	return c.structure
}

// GetTensors returns the tensors currently in the code's network.
func (c *Code) GetTensors() []*tensor.Tensor {
	return c.network.Tensors()
}

// AddTensor adds a copy of t to the code's own network, so renaming t's
// legs later does not reach the code. Unlike the contraction methods this
// changes the code; it must not run concurrently with other calls on the
// same Code.
func (c *Code) AddTensor(t *tensor.Tensor) {
	c.network.AddTensor(t.Copy())
}

// View returns the network structure for a renderer.
func (c *Code) View() network.View {
	return c.network.View()
}
