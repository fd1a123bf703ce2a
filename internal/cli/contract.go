package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/tnqecc/internal/network"
	"github.com/born-ml/tnqecc/internal/serialization"
	"github.com/born-ml/tnqecc/internal/tensor"
)

// newContractCmd creates the contract command
func newContractCmd(a *app) *cobra.Command {
	var (
		output    string
		optimizer string
		legs      []string
	)

	cmd := &cobra.Command{
		Use:   "contract <file> [label...]",
		Short: "Contract labels, or the whole network when none are given",
		Long: `Contract the given labels one after another. Every tensor carrying a label
is merged in one step, so a label shared by three or more tensors is summed
as a single index.

With no labels the whole network is contracted to one tensor, which is
printed with its values.

Examples:
  tnqecc contract code.tnet b c -o contracted.tnet
  tnqecc contract code.tnet --optimizer sequential --legs c,a`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, meta, err := a.loadCode(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if labels := args[1:]; len(labels) > 0 {
				tn, err := c.ContractIndices(labels...)
				if err != nil {
					return err
				}
				return a.finish(cmd, tn, meta, output, "contract_indices")
			}

			if !cmd.Flags().Changed("optimizer") {
				optimizer = a.cfg.Contract.Optimizer
			}
			opt, err := network.ParseOptimizer(optimizer)
			if err != nil {
				return err
			}
			opts := []network.ContractOption{network.WithOptimizer(opt)}
			if len(legs) > 0 {
				opts = append(opts, network.WithOutputLegs(legs...))
			}

			result, err := c.Contract(opts...)
			if err != nil {
				return err
			}
			if output != "" {
				if err := serialization.SaveFile(output, []*tensor.Tensor{result}, meta); err != nil {
					return err
				}
			}
			return writeTensor(out, result)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the resulting network to this file")
	cmd.Flags().StringVar(&optimizer, "optimizer", "", "full contraction order: greedy or sequential (default from config)")
	cmd.Flags().StringSliceVar(&legs, "legs", nil, "leg order of the fully contracted tensor")

	return cmd
}

// newFuseCmd creates the fuse command
func newFuseCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "fuse <file> <ind1> <ind2>",
		Short: "Rename ind2 to ind1 everywhere, then contract ind1",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, meta, err := a.loadCode(args[0])
			if err != nil {
				return err
			}
			tn, err := c.FuseAndContractIndices(args[1], args[2])
			if err != nil {
				return err
			}
			return a.finish(cmd, tn, meta, output, "fuse_and_contract_indices")
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the resulting network to this file")

	return cmd
}

// newContractTwoCmd creates the contract-two command
func newContractTwoCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "contract-two <file> <ind1> <ind2>",
		Short: "Check both labels exist, then contract ind1 followed by ind2",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, meta, err := a.loadCode(args[0])
			if err != nil {
				return err
			}
			tn, err := c.ContractTwoIndices(args[1], args[2])
			if err != nil {
				return err
			}
			return a.finish(cmd, tn, meta, output, "contract_two_indices")
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the resulting network to this file")

	return cmd
}

// finish draws the resulting network and saves it when output is set.
func (a *app) finish(cmd *cobra.Command, tn *network.Network, meta map[string]string, output, op string) error {
	out := cmd.OutOrStdout()
	if err := a.draw(out, tn.View(), "", a.drawOptions(out)); err != nil {
		return err
	}
	if output == "" {
		return nil
	}
	if err := a.saveNetwork(output, tn, meta, op); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "wrote %d tensors to %s\n", tn.NumTensors(), output)
	return err
}
