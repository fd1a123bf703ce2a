package serialization

import (
	"bufio"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/born-ml/tnqecc/internal/tensor"
)

// Encode writes tensors in .tnet format. Tensors are stored in the given
// order with their ids, legs and tags; metadata may be nil.
func Encode(w io.Writer, tensors []*tensor.Tensor, metadata map[string]string) error {
	header := Header{
		FormatVersion: FormatVersion,
		TnqeccVersion: tnqeccVersion,
		CreatedAt:     time.Now().UTC(),
		Tensors:       make([]TensorMeta, 0, len(tensors)),
		Metadata:      metadata,
	}
	if header.Metadata == nil {
		header.Metadata = make(map[string]string)
	}
	if len(tensors) > MaxTensorCount {
		return fmt.Errorf("%w: got %d, max %d", ErrTooManyTensors, len(tensors), MaxTensorCount)
	}

	// Calculate tensor offsets and encode data
	var currentOffset int64
	var data []byte
	for _, t := range tensors {
		values := t.Data()
		size := int64(len(values) * ElementSize)

		header.Tensors = append(header.Tensors, TensorMeta{
			ID:     t.ID(),
			Legs:   t.Legs(),
			Tags:   t.Tags(),
			Shape:  []int(t.Shape().Clone()),
			Offset: currentOffset,
			Size:   size,
		})

		for _, v := range values {
			data = binary.LittleEndian.AppendUint64(data, math.Float64bits(v))
		}
		currentOffset += size
	}

	sum := ComputeChecksum(data)
	header.Checksum = hex.EncodeToString(sum[:])

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}
	if len(headerJSON) > MaxHeaderSize {
		return ErrHeaderTooLarge
	}

	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(MagicBytes); err != nil {
		return fmt.Errorf("failed to write magic bytes: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(FormatVersion)); err != nil {
		return fmt.Errorf("failed to write version: %w", err)
	}
	headerSize := uint64(len(headerJSON))
	if err := binary.Write(bw, binary.LittleEndian, headerSize); err != nil {
		return fmt.Errorf("failed to write header size: %w", err)
	}
	if _, err := bw.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	headerEnd := int64(FixedHeaderSize + len(headerJSON))
	pad := dataOffset(int64(len(headerJSON))) - headerEnd
	if pad > 0 {
		if _, err := bw.Write(make([]byte, pad)); err != nil {
			return fmt.Errorf("failed to write padding: %w", err)
		}
	}

	if _, err := bw.Write(data); err != nil {
		return fmt.Errorf("failed to write tensor data: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush: %w", err)
	}
	return nil
}

// SaveFile writes tensors to path in .tnet format, replacing any existing file.
func SaveFile(path string, tensors []*tensor.Tensor, metadata map[string]string) (err error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for saving
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	return Encode(file, tensors, metadata)
}
