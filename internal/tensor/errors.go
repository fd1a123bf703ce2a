package tensor

import (
	"errors"
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
)

// Common errors.
var (
	ErrIndexNotFound     = errors.New("index not found")
	ErrDuplicateLeg      = errors.New("duplicate leg label")
	ErrLegCount          = errors.New("leg count does not match tensor rank")
	ErrInvalidShape      = errors.New("invalid shape")
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// maxSuggestDistance bounds the edit distance of a "did you mean" hint.
const maxSuggestDistance = 2

// IndexError reports a leg label that is not present where an operation
// needs it. It matches ErrIndexNotFound under errors.Is.
type IndexError struct {
	Op         string // Operation that looked the label up (e.g. "contract_ind")
	Label      string // The missing label
	Detail     string // Optional context (e.g. "after fusing")
	Suggestion string // Closest known label, if any
}

// NewIndexError builds an IndexError for label, suggesting the closest of
// known when one is near enough to be a likely typo.
func NewIndexError(op, label string, known []string) *IndexError {
	return &IndexError{
		Op:         op,
		Label:      label,
		Suggestion: suggest(label, known),
	}
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	msg := fmt.Sprintf("index %q not found in the tensor network", e.Label)
	if e.Detail != "" {
		msg += " " + e.Detail
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

// Unwrap lets errors.Is match ErrIndexNotFound.
func (e *IndexError) Unwrap() error {
	return ErrIndexNotFound
}

// suggest returns the known label closest to label. Labels sharing no
// character position (distance >= len(label)) are never suggested.
func suggest(label string, known []string) string {
	candidates := append([]string(nil), known...)
	sort.Strings(candidates)

	best, bestDist := "", maxSuggestDistance+1
	for _, k := range candidates {
		if k == label {
			continue
		}
		d := levenshtein.ComputeDistance(label, k)
		if d < bestDist && d < len(label) {
			best, bestDist = k, d
		}
	}
	return best
}
