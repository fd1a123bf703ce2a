package tensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexError_Message(t *testing.T) {
	err := NewIndexError("contract_ind", "z", []string{"a", "b"})
	assert.Equal(t, `contract_ind: index "z" not found in the tensor network`, err.Error())
	assert.True(t, errors.Is(err, ErrIndexNotFound))

	err.Detail = "after fusing"
	assert.Equal(t, `contract_ind: index "z" not found in the tensor network after fusing`, err.Error())
}

func TestIndexError_Suggestion(t *testing.T) {
	err := NewIndexError("contract_indices", "bond1", []string{"bond2", "phys", "bond10"})
	assert.Equal(t, "bond10", err.Suggestion)
	assert.Contains(t, err.Error(), `did you mean "bond10"?`)
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		label string
		known []string
		want  string
	}{
		{"z", []string{"a", "b"}, ""},      // single letters share nothing
		{"ab", []string{"ac", "xy"}, "ac"}, // one substitution
		{"left", []string{"right"}, ""},    // too far
		{"q0", []string{"q0", "q1"}, "q1"}, // exact match skipped
		{"anc", nil, ""},                   // nothing known
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, suggest(tt.label, tt.known), "suggest(%q, %v)", tt.label, tt.known)
	}
}
