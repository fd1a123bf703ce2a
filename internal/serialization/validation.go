package serialization

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/born-ml/tnqecc/internal/tensor"
)

// Validation limits for security and resource protection.
const (
	MaxHeaderSize   = 100 * 1024 * 1024 // 100MB - maximum header size
	MaxTensorCount  = 100_000           // Maximum number of tensors in a file
	MaxLegLabelLen  = 4096              // Maximum leg label length
	MaxMetadataSize = 10 * 1024 * 1024  // 10MB - maximum metadata size
)

// ValidationLevel controls the strictness of validation.
type ValidationLevel int

const (
	// ValidationStrict performs all validation checks (default).
	ValidationStrict ValidationLevel = iota
	// ValidationNormal checks tensor entries but not data offsets.
	ValidationNormal
	// ValidationNone skips validation. Use only with trusted input.
	ValidationNone
)

// ValidateTensorOffsets checks for overlapping tensor offsets and out-of-bounds access.
func ValidateTensorOffsets(tensors []TensorMeta, dataSize int64) error {
	if len(tensors) > MaxTensorCount {
		return &ValidationError{
			Type:    "too_many_tensors",
			Details: fmt.Sprintf("got %d, max %d", len(tensors), MaxTensorCount),
			Err:     ErrTooManyTensors,
		}
	}

	sorted := make([]TensorMeta, len(tensors))
	copy(sorted, tensors)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	for i, t := range sorted {
		if t.Offset < 0 || t.Size < 0 {
			return &ValidationError{
				Type:    "negative_offset",
				Tensor:  t.ID,
				Details: fmt.Sprintf("offset=%d, size=%d (negative values not allowed)", t.Offset, t.Size),
				Err:     ErrNegativeOffset,
			}
		}

		if t.Offset+t.Size > dataSize {
			return &ValidationError{
				Type:    "out_of_bounds",
				Tensor:  t.ID,
				Details: fmt.Sprintf("offset %d + size %d > data_size %d", t.Offset, t.Size, dataSize),
				Err:     ErrOutOfBounds,
			}
		}

		if i < len(sorted)-1 {
			next := sorted[i+1]
			if t.Offset+t.Size > next.Offset {
				return &ValidationError{
					Type:    "offset_overlap",
					Tensor:  t.ID,
					Tensor2: next.ID,
					Details: fmt.Sprintf("regions [%d-%d] and [%d-%d] overlap",
						t.Offset, t.Offset+t.Size, next.Offset, next.Offset+next.Size),
					Err: ErrOffsetOverlap,
				}
			}
		}
	}

	return nil
}

// ValidateTensorMeta checks one tensor entry: a UUID id, a valid shape, one
// distinct label per dimension, and a byte size matching the shape.
func ValidateTensorMeta(m TensorMeta) error {
	invalid := func(details string) error {
		return &ValidationError{Type: "invalid_tensor", Tensor: m.ID, Details: details, Err: ErrInvalidTensor}
	}

	if _, err := uuid.Parse(m.ID); err != nil {
		return invalid(fmt.Sprintf("id is not a UUID: %v", err))
	}
	shape := tensor.Shape(m.Shape)
	if err := shape.Validate(); err != nil {
		return invalid(err.Error())
	}
	if len(m.Legs) != len(m.Shape) {
		return invalid(fmt.Sprintf("%d legs for shape %v", len(m.Legs), shape))
	}
	seen := make(map[string]struct{}, len(m.Legs))
	for _, leg := range m.Legs {
		if leg == "" || len(leg) > MaxLegLabelLen {
			return invalid(fmt.Sprintf("leg label length %d out of range", len(leg)))
		}
		if _, ok := seen[leg]; ok {
			return invalid(fmt.Sprintf("duplicate leg %q", leg))
		}
		seen[leg] = struct{}{}
	}
	if want := int64(shape.NumElements()) * ElementSize; m.Size != want {
		return invalid(fmt.Sprintf("size %d, shape %v needs %d", m.Size, shape, want))
	}
	return nil
}

// ValidateHeader performs comprehensive header validation.
func ValidateHeader(h *Header, dataSize int64, level ValidationLevel) error {
	if level == ValidationNone {
		return nil
	}

	if len(h.Tensors) > MaxTensorCount {
		return &ValidationError{
			Type:    "too_many_tensors",
			Details: fmt.Sprintf("got %d, max %d", len(h.Tensors), MaxTensorCount),
			Err:     ErrTooManyTensors,
		}
	}

	metaSize := 0
	for k, v := range h.Metadata {
		metaSize += len(k) + len(v)
	}
	if metaSize > MaxMetadataSize {
		return &ValidationError{
			Type:    "metadata_too_large",
			Details: fmt.Sprintf("%d bytes, max %d", metaSize, MaxMetadataSize),
		}
	}

	for _, t := range h.Tensors {
		if err := ValidateTensorMeta(t); err != nil {
			return err
		}
	}

	if level == ValidationStrict {
		if err := ValidateTensorOffsets(h.Tensors, dataSize); err != nil {
			return err
		}
	}

	return nil
}
