package serialization

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	id1 = "00000000-0000-4000-8000-000000000001"
	id2 = "00000000-0000-4000-8000-000000000002"
	id3 = "00000000-0000-4000-8000-000000000003"
)

func TestValidateTensorOffsets(t *testing.T) {
	tests := []struct {
		name     string
		tensors  []TensorMeta
		dataSize int64
		wantErr  error
	}{
		{
			name: "contiguous",
			tensors: []TensorMeta{
				{ID: id1, Offset: 0, Size: 100},
				{ID: id2, Offset: 100, Size: 200},
				{ID: id3, Offset: 300, Size: 150},
			},
			dataSize: 500,
		},
		{
			name: "complete overlap",
			tensors: []TensorMeta{
				{ID: id1, Offset: 0, Size: 100},
				{ID: id2, Offset: 50, Size: 100},
			},
			dataSize: 200,
			wantErr:  ErrOffsetOverlap,
		},
		{
			name: "overlap by one byte",
			tensors: []TensorMeta{
				{ID: id1, Offset: 0, Size: 100},
				{ID: id2, Offset: 99, Size: 100},
			},
			dataSize: 200,
			wantErr:  ErrOffsetOverlap,
		},
		{
			name:     "beyond data section",
			tensors:  []TensorMeta{{ID: id1, Offset: 100, Size: 101}},
			dataSize: 200,
			wantErr:  ErrOutOfBounds,
		},
		{
			name:     "negative offset",
			tensors:  []TensorMeta{{ID: id1, Offset: -8, Size: 8}},
			dataSize: 200,
			wantErr:  ErrNegativeOffset,
		},
		{
			name:     "negative size",
			tensors:  []TensorMeta{{ID: id1, Offset: 0, Size: -1}},
			dataSize: 200,
			wantErr:  ErrNegativeOffset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTensorOffsets(tt.tensors, tt.dataSize)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			var ve *ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestValidateTensorOffsets_TooManyTensors(t *testing.T) {
	tensors := make([]TensorMeta, MaxTensorCount+1)
	assert.ErrorIs(t, ValidateTensorOffsets(tensors, 0), ErrTooManyTensors)
}

func TestValidateTensorMeta(t *testing.T) {
	valid := TensorMeta{ID: id1, Legs: []string{"a", "b"}, Shape: []int{2, 3}, Size: 48}
	require.NoError(t, ValidateTensorMeta(valid))

	scalar := TensorMeta{ID: id1, Shape: []int{}, Size: 8}
	require.NoError(t, ValidateTensorMeta(scalar))

	tests := []struct {
		name   string
		mutate func(m *TensorMeta)
		detail string
	}{
		{"bad id", func(m *TensorMeta) { m.ID = "../etc" }, "not a UUID"},
		{"zero dim", func(m *TensorMeta) { m.Shape = []int{2, 0}; m.Size = 0 }, "must be > 0"},
		{"leg count", func(m *TensorMeta) { m.Legs = []string{"a"} }, "1 legs"},
		{"duplicate leg", func(m *TensorMeta) { m.Legs = []string{"a", "a"} }, "duplicate leg"},
		{"empty leg", func(m *TensorMeta) { m.Legs = []string{"a", ""} }, "out of range"},
		{"long leg", func(m *TensorMeta) { m.Legs = []string{"a", strings.Repeat("x", MaxLegLabelLen+1)} }, "out of range"},
		{"size", func(m *TensorMeta) { m.Size = 40 }, "needs 48"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid
			m.Legs = append([]string(nil), valid.Legs...)
			m.Shape = append([]int(nil), valid.Shape...)
			tt.mutate(&m)

			err := ValidateTensorMeta(m)
			require.ErrorIs(t, err, ErrInvalidTensor)
			assert.Contains(t, err.Error(), tt.detail)
		})
	}
}

func TestValidateHeader_Levels(t *testing.T) {
	h := &Header{
		Tensors: []TensorMeta{
			{ID: id1, Legs: []string{"a"}, Shape: []int{2}, Offset: 0, Size: 16},
			{ID: id2, Legs: []string{"b"}, Shape: []int{2}, Offset: 8, Size: 16},
		},
	}

	assert.ErrorIs(t, ValidateHeader(h, 32, ValidationStrict), ErrOffsetOverlap)
	assert.NoError(t, ValidateHeader(h, 32, ValidationNormal))

	h.Tensors[0].ID = "bogus"
	assert.ErrorIs(t, ValidateHeader(h, 32, ValidationNormal), ErrInvalidTensor)
	assert.NoError(t, ValidateHeader(h, 32, ValidationNone))
}

func TestValidateHeader_MetadataTooLarge(t *testing.T) {
	h := &Header{Metadata: map[string]string{"blob": strings.Repeat("x", MaxMetadataSize+1)}}
	err := ValidateHeader(h, 0, ValidationStrict)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "metadata_too_large", ve.Type)
}

func TestValidationError_ErrorMessages(t *testing.T) {
	tests := []struct {
		err  *ValidationError
		want string
	}{
		{&ValidationError{Type: "offset_overlap", Tensor: "a", Tensor2: "b", Details: "x"}, `offset_overlap: tensors "a" and "b": x`},
		{&ValidationError{Type: "invalid_tensor", Tensor: "a", Details: "x"}, `invalid_tensor: tensor "a": x`},
		{&ValidationError{Type: "too_many_tensors", Details: "x"}, "too_many_tensors: x"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}
