package serialization

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/born-ml/tnqecc/internal/tensor"
)

// ReaderOptions configures decoding.
type ReaderOptions struct {
	SkipChecksumValidation bool            // Skip checksum validation (faster but less safe)
	ValidationLevel        ValidationLevel // Validation strictness level
}

// Decode reads a .tnet stream with strict validation.
func Decode(r io.Reader) (*File, error) {
	return DecodeWithOptions(r, ReaderOptions{ValidationLevel: ValidationStrict})
}

// DecodeWithOptions reads a .tnet stream with custom options.
func DecodeWithOptions(r io.Reader, opts ReaderOptions) (*File, error) {
	br := bufio.NewReader(r)

	header, err := parseHeader(br)
	if err != nil {
		return nil, fmt.Errorf("failed to parse header: %w", err)
	}

	data, err := io.ReadAll(br)
	if err != nil {
		return nil, fmt.Errorf("failed to read tensor data: %w", err)
	}

	if !opts.SkipChecksumValidation {
		if err := ValidateChecksum(ComputeChecksum(data), header.Checksum); err != nil {
			return nil, err
		}
	}

	if err := ValidateHeader(&header, int64(len(data)), opts.ValidationLevel); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	tensors := make([]*tensor.Tensor, 0, len(header.Tensors))
	for _, meta := range header.Tensors {
		t, err := loadTensor(meta, data)
		if err != nil {
			return nil, err
		}
		tensors = append(tensors, t)
	}

	return &File{Header: header, Tensors: tensors}, nil
}

// LoadFile reads a .tnet file with strict validation.
func LoadFile(path string) (*File, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	f, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// parseHeader reads the fixed header, the JSON header and the alignment padding.
func parseHeader(r io.Reader) (Header, error) {
	var header Header

	magic := make([]byte, len(MagicBytes))
	if _, err := io.ReadFull(r, magic); err != nil {
		return header, fmt.Errorf("failed to read magic bytes: %w", err)
	}
	if string(magic) != MagicBytes {
		return header, ErrInvalidMagic
	}

	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return header, fmt.Errorf("failed to read version: %w", err)
	}
	if version != FormatVersion {
		return header, fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, version, FormatVersion)
	}

	var headerSize uint64
	if err := binary.Read(r, binary.LittleEndian, &headerSize); err != nil {
		return header, fmt.Errorf("failed to read header size: %w", err)
	}
	if headerSize > MaxHeaderSize {
		return header, ErrHeaderTooLarge
	}

	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return header, fmt.Errorf("failed to read header: %w", err)
	}
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return header, fmt.Errorf("failed to parse header JSON: %w", err)
	}

	//nolint:gosec // G115: headerSize is bounded by MaxHeaderSize
	pad := padding(int64(FixedHeaderSize) + int64(headerSize))
	if _, err := io.CopyN(io.Discard, r, pad); err != nil {
		return header, fmt.Errorf("failed to skip padding: %w", err)
	}

	return header, nil
}

// loadTensor decodes one tensor's data section.
func loadTensor(meta TensorMeta, data []byte) (*tensor.Tensor, error) {
	if meta.Offset < 0 || meta.Size < 0 || meta.Offset+meta.Size > int64(len(data)) {
		return nil, &ValidationError{
			Type:    "out_of_bounds",
			Tensor:  meta.ID,
			Details: fmt.Sprintf("offset %d + size %d > data_size %d", meta.Offset, meta.Size, len(data)),
			Err:     ErrOutOfBounds,
		}
	}

	shape := tensor.Shape(meta.Shape)
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("tensor %q: %w", meta.ID, err)
	}
	if want := int64(shape.NumElements()) * ElementSize; meta.Size != want {
		return nil, &ValidationError{
			Type:    "invalid_tensor",
			Tensor:  meta.ID,
			Details: fmt.Sprintf("size %d, shape %v needs %d", meta.Size, shape, want),
			Err:     ErrInvalidTensor,
		}
	}

	chunk := data[meta.Offset : meta.Offset+meta.Size]
	values := make([]float64, len(chunk)/ElementSize)
	for i := range values {
		values[i] = math.Float64frombits(binary.LittleEndian.Uint64(chunk[i*ElementSize:]))
	}

	raw, err := tensor.RawFromSlice(values, shape)
	if err != nil {
		return nil, fmt.Errorf("tensor %q: %w", meta.ID, err)
	}
	t, err := tensor.Restore(meta.ID, raw, meta.Legs, meta.Tags...)
	if err != nil {
		return nil, fmt.Errorf("tensor %q: %w", meta.ID, err)
	}
	return t, nil
}
