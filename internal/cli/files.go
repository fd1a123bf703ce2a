package cli

import (
	"fmt"
	"io"
	"maps"
	"strings"

	"github.com/born-ml/tnqecc/internal/code"
	"github.com/born-ml/tnqecc/internal/network"
	"github.com/born-ml/tnqecc/internal/serialization"
	"github.com/born-ml/tnqecc/internal/tensor"
)

// loadCode reads a .tnet file into a code. The file metadata becomes the
// code's structure.
func (a *app) loadCode(path string) (*code.Code, map[string]string, error) {
	f, err := serialization.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Debug("loaded network", "path", path, "tensors", len(f.Tensors))

	c := code.New(f.Tensors,
		code.WithStructure(f.Header.Metadata),
		code.WithNetworkOptions(a.networkOptions()...),
		code.WithLogger(a.logger),
	)
	return c, f.Header.Metadata, nil
}

// saveNetwork writes tn to path, recording the operation in the metadata.
func (a *app) saveNetwork(path string, tn *network.Network, meta map[string]string, op string) error {
	out := maps.Clone(meta)
	if out == nil {
		out = make(map[string]string)
	}
	out["last_op"] = op
	if err := serialization.SaveFile(path, tn.Tensors(), out); err != nil {
		return err
	}
	a.logger.Debug("saved network", "path", path, "tensors", tn.NumTensors())
	return nil
}

// writeTensor prints a tensor and its values in row-major order.
func writeTensor(w io.Writer, t *tensor.Tensor) error {
	values := make([]string, len(t.Data()))
	for i, v := range t.Data() {
		values[i] = fmt.Sprintf("%.6g", v)
	}
	_, err := fmt.Fprintf(w, "%s\n[%s]\n", t, strings.Join(values, " "))
	return err
}
