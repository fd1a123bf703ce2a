// Package serialization provides the .tnet file format for saving and loading
// tensor networks.
//
// The .tnet format is a small binary container for labeled tensors:
//
//	Format Structure:
//	  [4 bytes: Magic "TNET"]
//	  [4 bytes: Version (uint32 LE)]
//	  [8 bytes: Header Size (uint64 LE)]
//	  [Header: JSON metadata]
//	  [Tensor data: float64 LE, 64-byte aligned]
//
// The JSON header lists every tensor's id, legs, tags, shape, and the byte
// range of its data, plus free-form metadata and the SHA-256 checksum of the
// data section. Network structure is not stored: the index map is derived
// from the legs again on load.
//
// Example usage:
//
//	// Save a network
//	err := serialization.SaveFile("code.tnet", tn.Tensors(), map[string]string{"name": "demo"})
//
//	// Load it back
//	f, err := serialization.LoadFile("code.tnet")
//	tn := network.New(f.Tensors)
package serialization
