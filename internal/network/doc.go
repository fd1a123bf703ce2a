// Package network implements a tensor network: a collection of labeled
// tensors plus the derived index map from each leg label to the tensors
// currently exposing it.
//
// Tensors sharing a label are connected along that leg. A label held by one
// tensor is an open (external) leg, a label held by two is an internal bond,
// and a label held by three or more is a hyperedge that is contracted as a
// single shared summation index.
//
// Contraction never mutates the receiver:
//
//	tn := network.New([]*tensor.Tensor{t1, t2})
//	merged, err := tn.ContractInd("b") // tn still has two tensors
//	result, err := tn.Contract()       // everything, as one tensor
//
// AddTensor is the only operation that changes a Network in place.
package network
