package serialization

import (
	"time"

	"github.com/born-ml/tnqecc/internal/tensor"
)

// Format constants.
const (
	MagicBytes      = "TNET"
	FormatVersion   = 1  // v1: JSON header with SHA-256 data checksum
	HeaderAlignment = 64 // Tensor data starts on a 64-byte boundary
	FixedHeaderSize = 16 // magic + version + header size
	ElementSize     = 8  // float64
)

const tnqeccVersion = "0.1.0" // Version written into new files

// Header represents the JSON header in a .tnet file.
type Header struct {
	FormatVersion int               `json:"format_version"` // Version of the .tnet format
	TnqeccVersion string            `json:"tnqecc_version"` // Version of tnqecc that created this file
	CreatedAt     time.Time         `json:"created_at"`     // When the file was created
	Tensors       []TensorMeta      `json:"tensors"`        // Tensor metadata, in network order
	Metadata      map[string]string `json:"metadata"`       // Custom metadata
	Checksum      string            `json:"checksum"`       // SHA-256 of the data section, hex
}

// TensorMeta describes one tensor in the .tnet file.
type TensorMeta struct {
	ID     string   `json:"id"`     // Tensor identity (UUID)
	Legs   []string `json:"legs"`   // One label per dimension
	Tags   []string `json:"tags"`   // Display tags, sorted
	Shape  []int    `json:"shape"`  // Tensor shape
	Offset int64    `json:"offset"` // Offset in the data section (bytes from start of tensor data)
	Size   int64    `json:"size"`   // Size in bytes
}

// File is a decoded .tnet file.
type File struct {
	Header  Header
	Tensors []*tensor.Tensor
}

// dataOffset returns where tensor data starts for a JSON header of the given size.
func dataOffset(headerSize int64) int64 {
	pos := int64(FixedHeaderSize) + headerSize
	return pos + padding(pos)
}

func padding(pos int64) int64 {
	return (HeaderAlignment - (pos % HeaderAlignment)) % HeaderAlignment
}
