package tensor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Tensor is a dense array whose dimensions carry leg labels.
// Tensors sharing a label are connected along that leg inside a network.
//
// Example:
//
//	t, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2}, []string{"a", "b"}, "T1")
//	t.Legs() // [a b]
//	t.Dim("b") // 2
type Tensor struct {
	id   string
	raw  *RawTensor
	legs []string
	tags map[string]struct{}
}

// New creates a Tensor from a RawTensor, one label per dimension.
// Labels must be distinct.
func New(raw *RawTensor, legs []string, tags ...string) (*Tensor, error) {
	if err := checkLegs(raw, legs); err != nil {
		return nil, err
	}
	return newTensor(uuid.NewString(), raw, legs, tags), nil
}

// Restore recreates a tensor with a known identity, e.g. one read back from
// a network file. The id must be a UUID.
func Restore(id string, raw *RawTensor, legs []string, tags ...string) (*Tensor, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("tensor id %q: %w", id, err)
	}
	if err := checkLegs(raw, legs); err != nil {
		return nil, err
	}
	return newTensor(id, raw, legs, tags), nil
}

func checkLegs(raw *RawTensor, legs []string) error {
	if len(legs) != raw.Rank() {
		return fmt.Errorf("%w: %d legs %v for shape %v", ErrLegCount, len(legs), legs, raw.Shape())
	}
	seen := make(map[string]struct{}, len(legs))
	for _, leg := range legs {
		if _, ok := seen[leg]; ok {
			return fmt.Errorf("%w: %q in %v", ErrDuplicateLeg, leg, legs)
		}
		seen[leg] = struct{}{}
	}
	return nil
}

func newTensor(id string, raw *RawTensor, legs []string, tags []string) *Tensor {
	t := &Tensor{
		id:   id,
		raw:  raw,
		legs: append([]string(nil), legs...),
		tags: make(map[string]struct{}, len(tags)),
	}
	for _, tag := range tags {
		t.tags[tag] = struct{}{}
	}
	return t
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice(data []float64, shape Shape, legs []string, tags ...string) (*Tensor, error) {
	raw, err := RawFromSlice(data, shape)
	if err != nil {
		return nil, err
	}
	return New(raw, legs, tags...)
}

// ID returns the tensor's identity. Copies keep it; contraction results get a new one.
func (t *Tensor) ID() string {
	return t.id
}

// Raw returns the underlying RawTensor.
// Used by contractor implementations.
func (t *Tensor) Raw() *RawTensor {
	return t.raw
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.raw.Shape()
}

// Rank returns the number of legs.
func (t *Tensor) Rank() int {
	return len(t.legs)
}

// Legs returns a copy of the leg labels, in dimension order.
func (t *Tensor) Legs() []string {
	return append([]string(nil), t.legs...)
}

// HasLeg reports whether label is one of the tensor's legs.
func (t *Tensor) HasLeg(label string) bool {
	return t.Axis(label) >= 0
}

// Axis returns the first dimension carrying label, or -1.
func (t *Tensor) Axis(label string) int {
	for i, leg := range t.legs {
		if leg == label {
			return i
		}
	}
	return -1
}

// Dim returns the size of the dimension carrying label, or 0 if absent.
func (t *Tensor) Dim(label string) int {
	axis := t.Axis(label)
	if axis < 0 {
		return 0
	}
	return t.raw.Shape()[axis]
}

// Tags returns the tensor's tags in sorted order.
func (t *Tensor) Tags() []string {
	tags := make([]string, 0, len(t.tags))
	for tag := range t.tags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// HasTag reports whether the tensor carries tag.
func (t *Tensor) HasTag(tag string) bool {
	_, ok := t.tags[tag]
	return ok
}

// AddTags adds display tags. Tags never affect contraction.
func (t *Tensor) AddTags(tags ...string) {
	for _, tag := range tags {
		t.tags[tag] = struct{}{}
	}
}

// RenameLeg replaces every occurrence of from with to.
//
// If to is already a leg, the tensor ends up with a repeated label. That
// state is only meant to exist on the way to a contraction, which sums the
// repeated dimensions together. No data is altered.
func (t *Tensor) RenameLeg(from, to string) error {
	if !t.HasLeg(from) {
		return NewIndexError("rename_leg", from, t.legs)
	}
	for i, leg := range t.legs {
		if leg == from {
			t.legs[i] = to
		}
	}
	return nil
}

// Copy returns a tensor with the same id, data and tags whose legs and tags
// can be changed without affecting t. The data is shared since it is immutable.
func (t *Tensor) Copy() *Tensor {
	return newTensor(t.id, t.raw, t.legs, t.Tags())
}

// Data returns the tensor's row-major values.
//
// WARNING: the slice is the tensor's own memory and must not be modified.
func (t *Tensor) Data() []float64 {
	return t.raw.Data()
}

// At returns the element at the given indices (one per leg, in leg order).
// Panics if indices are out of bounds.
func (t *Tensor) At(indices ...int) float64 {
	return t.raw.At(indices...)
}

// Item returns the scalar value of a tensor without legs.
// Panics if the tensor is not a scalar.
func (t *Tensor) Item() float64 {
	if t.Rank() != 0 || t.raw.NumElements() != 1 {
		panic(fmt.Sprintf("Item() only works for scalar tensors, got shape %v", t.Shape()))
	}
	return t.raw.Data()[0]
}

// String returns a human-readable representation of the tensor.
func (t *Tensor) String() string {
	var b strings.Builder
	b.WriteString("Tensor(")
	b.WriteString(strings.Join(t.legs, ","))
	fmt.Fprintf(&b, ")[%s]", t.Shape())
	if len(t.tags) > 0 {
		fmt.Fprintf(&b, "{%s}", strings.Join(t.Tags(), ","))
	}
	return b.String()
}
