package tensor

import (
	"errors"
	"testing"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{}, 1},         // Scalar
		{Shape{5}, 5},        // 1D
		{Shape{3, 4}, 12},    // 2D
		{Shape{2, 3, 4}, 24}, // 3D
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.expected {
			t.Errorf("Shape%v.NumElements() = %d, want %d", []int(tt.shape), got, tt.expected)
		}
	}
}

func TestShapeValidation(t *testing.T) {
	for _, s := range []Shape{{}, {1}, {3, 4}, {2, 3, 4}, {MaxElements}, {1 << 20, 1 << 20}} {
		if err := s.Validate(); err != nil {
			t.Errorf("Shape%v.Validate() failed: %v", []int(s), err)
		}
	}

	overflow := []Shape{{1 << 32, 1 << 32}, {MaxElements, 2}, {1 << 21, 1 << 21, 1 << 21}}
	for _, s := range append([]Shape{{0}, {3, 0}, {-1}}, overflow...) {
		err := s.Validate()
		if !errors.Is(err, ErrInvalidShape) {
			t.Errorf("Shape%v.Validate() = %v, want ErrInvalidShape", []int(s), err)
		}
	}
}

func TestComputeStrides(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected []int
	}{
		{Shape{}, []int{}},
		{Shape{4}, []int{1}},
		{Shape{3, 4}, []int{4, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
	}

	for _, tt := range tests {
		got := tt.shape.ComputeStrides()
		if len(got) != len(tt.expected) {
			t.Fatalf("%v.ComputeStrides() length = %d, want %d", tt.shape, len(got), len(tt.expected))
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("%v.ComputeStrides()[%d] = %d, want %d", tt.shape, i, got[i], tt.expected[i])
			}
		}
	}
}

func TestShapeString(t *testing.T) {
	if got := (Shape{2, 3}).String(); got != "2x3" {
		t.Errorf("String() = %q, want %q", got, "2x3")
	}
	if got := (Shape{}).String(); got != "scalar" {
		t.Errorf("String() = %q, want %q", got, "scalar")
	}
}

func TestShapeClone(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 9
	if s[0] != 2 {
		t.Error("Clone shares memory with the original")
	}
}
