package cli

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/born-ml/tnqecc/internal/code"
	"github.com/born-ml/tnqecc/internal/network"
	"github.com/born-ml/tnqecc/internal/tensor"
)

var demoColors = map[string]string{"T1": "#e06c75", "T2": "#61afef"}

// newDemoCmd creates the demo command
func newDemoCmd(a *app) *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through fusing and contracting a small random network",
		Long: `Build three random 2x2 tensors T1(a,b), T2(d,c) and T3(e,f), draw the
network, fuse leg d onto leg a and contract it, draw again, and finally
contract the unfused network into one tensor.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rng := rand.New(rand.NewSource(seed)) //nolint:gosec // G404: sample data, not secrets

			var tensors []*tensor.Tensor
			for _, s := range []struct {
				name string
				legs []string
			}{
				{"T1", []string{"a", "b"}},
				{"T2", []string{"d", "c"}},
				{"T3", []string{"e", "f"}},
			} {
				t, err := tensor.Rand(rng, tensor.Shape{2, 2}, s.legs, s.name)
				if err != nil {
					return err
				}
				tensors = append(tensors, t)
			}
			c := code.New(tensors,
				code.WithNetworkOptions(a.networkOptions()...),
				code.WithLogger(a.logger),
			)

			out := cmd.OutOrStdout()
			opts := a.drawOptions(out)
			if len(opts.Colors) == 0 {
				opts.Colors = demoColors
			}

			fmt.Fprintln(out, "== initial network")
			if err := a.draw(out, c.View(), "", opts); err != nil {
				return err
			}

			fused, err := c.FuseAndContractIndices("a", "d")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "== after fusing d onto a")
			if err := a.draw(out, fused.View(), "", opts); err != nil {
				return err
			}

			opt, err := network.ParseOptimizer(a.cfg.Contract.Optimizer)
			if err != nil {
				return err
			}
			result, err := c.Contract(network.WithOptimizer(opt))
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "== full contraction")
			return writeTensor(out, result)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")

	return cmd
}
