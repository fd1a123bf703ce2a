package code

import (
	"log/slog"

	"github.com/born-ml/tnqecc/internal/network"
	"github.com/born-ml/tnqecc/internal/tensor"
)

// ContractIndices contracts labels one after another on a copy of the
// network and returns the copy.
//
// Each label is checked right before it is contracted, not up front. A
// failure on a later label happens after earlier labels were contracted, and
// contracting an earlier label can remove a later one (when the merge sums it
// away), which then fails with an *tensor.IndexError.
func (c *Code) ContractIndices(labels ...string) (*network.Network, error) {
	tn := c.network.Copy()
	for _, label := range labels {
		if !tn.HasInd(label) {
			return nil, tensor.NewIndexError("contract_indices", label, tn.Indices())
		}
		next, err := tn.ContractInd(label)
		if err != nil {
			return nil, err
		}
		tn = next
	}

	c.logger.Debug("contracted indices", slog.Any("labels", labels), slog.Int("tensors", tn.NumTensors()))
	return tn, nil
}

// FuseAndContractIndices renames ind2 to ind1 on every tensor of a copy of
// the network, then contracts ind1 and returns the copy.
//
// If ind1 already sat on tensors other than those holding ind2, the rename
// joins all of them on one label and the contraction is a hyperedge
// contraction over every carrier. That is how independent legs get spliced.
func (c *Code) FuseAndContractIndices(ind1, ind2 string) (*network.Network, error) {
	tn := c.network.Reindex(ind2, ind1)
	if !tn.HasInd(ind1) {
		err := tensor.NewIndexError("fuse_and_contract_indices", ind1, tn.Indices())
		err.Detail = "after fusing"
		return nil, err
	}

	out, err := tn.ContractInd(ind1)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("fused and contracted", slog.String("keep", ind1), slog.String("fused", ind2))
	return out, nil
}

// ContractTwoIndices checks that ind1 and ind2 exist (ind1 first), then
// contracts ind1 and ind2 in turn on a copy of the network.
//
// ind2 is not checked again after ind1 is contracted. If contracting ind1
// summed ind2 away, the second step fails with an *tensor.IndexError even
// though ind2 existed when the call started.
func (c *Code) ContractTwoIndices(ind1, ind2 string) (*network.Network, error) {
	tn := c.network.Copy()
	for _, label := range []string{ind1, ind2} {
		if !tn.HasInd(label) {
			return nil, tensor.NewIndexError("contract_two_indices", label, tn.Indices())
		}
	}

	tn, err := tn.ContractInd(ind1)
	if err != nil {
		return nil, err
	}
	return tn.ContractInd(ind2)
}

// Contract contracts the whole network into one tensor. The network value
// is left as it is.
func (c *Code) Contract(opts ...network.ContractOption) (*tensor.Tensor, error) {
	return c.network.Contract(opts...)
}
