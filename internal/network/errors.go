package network

import "errors"

// Common errors.
var (
	ErrEmptyNetwork     = errors.New("tensor network has no tensors")
	ErrOutputLegs       = errors.New("output legs must be a permutation of the open legs")
	ErrUnknownOptimizer = errors.New("unknown contraction optimizer")
)
