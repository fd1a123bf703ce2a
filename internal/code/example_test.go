package code_test

import (
	"fmt"
	"log"

	"github.com/born-ml/tnqecc/internal/code"
	"github.com/born-ml/tnqecc/internal/tensor"
)

func Example() {
	t1, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, []string{"a", "b"}, "T1")
	if err != nil {
		log.Fatal(err)
	}
	t2, err := tensor.FromSlice([]float64{5, 6, 7, 8}, tensor.Shape{2, 2}, []string{"d", "c"}, "T2")
	if err != nil {
		log.Fatal(err)
	}
	c := code.New([]*tensor.Tensor{t1, t2})

	// Splice leg d onto leg a, then contract the new bond.
	fused, err := c.FuseAndContractIndices("a", "d")
	if err != nil {
		log.Fatal(err)
	}
	merged := fused.Tensors()[0]
	fmt.Println(merged.Legs(), merged.Tags(), merged.Data())

	// The code itself is unchanged.
	fmt.Println(len(c.GetTensors()), c.Network().Indices())

	_, err = c.ContractIndices("z")
	fmt.Println(err)

	// Output:
	// [b c] [T1 T2] [26 30 38 44]
	// 2 [a b c d]
	// contract_indices: index "z" not found in the tensor network
}
