package cli

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/born-ml/tnqecc/internal/network"
	"github.com/born-ml/tnqecc/internal/serialization"
	"github.com/born-ml/tnqecc/internal/tensor"
)

// tensorSpec is one --tensor flag: NAME=leg1,leg2:2x3.
type tensorSpec struct {
	name  string
	legs  []string
	shape tensor.Shape
}

// parseTensorSpec parses NAME=leg1,leg2:2x3. An empty leg list with an empty
// shape ("S=:") is a scalar.
func parseTensorSpec(s string) (tensorSpec, error) {
	name, rest, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return tensorSpec{}, fmt.Errorf("tensor %q: want NAME=legs:shape", s)
	}
	legPart, shapePart, ok := strings.Cut(rest, ":")
	if !ok {
		return tensorSpec{}, fmt.Errorf("tensor %q: missing ':shape'", s)
	}

	spec := tensorSpec{name: name, shape: tensor.Shape{}}
	if legPart != "" {
		spec.legs = strings.Split(legPart, ",")
	}
	if shapePart != "" {
		for _, d := range strings.Split(shapePart, "x") {
			n, err := strconv.Atoi(d)
			if err != nil {
				return tensorSpec{}, fmt.Errorf("tensor %q: bad dimension %q", s, d)
			}
			spec.shape = append(spec.shape, n)
		}
	}
	if err := spec.shape.Validate(); err != nil {
		return tensorSpec{}, fmt.Errorf("tensor %q: %w", s, err)
	}
	if len(spec.legs) != len(spec.shape) {
		return tensorSpec{}, fmt.Errorf("tensor %q: %w: %d legs for shape %v", s, tensor.ErrLegCount, len(spec.legs), spec.shape)
	}
	return spec, nil
}

// newNewCmd creates the new command
func newNewCmd(a *app) *cobra.Command {
	var (
		specs []string
		meta  map[string]string
		seed  int64
	)

	cmd := &cobra.Command{
		Use:   "new <file>",
		Short: "Create a network file of random tensors",
		Long: `Create a .tnet file holding random tensors. Each tensor's name becomes its tag.

Examples:
  tnqecc new code.tnet --tensor T1=a,b:2x2 --tensor T2=b,c:2x2
  tnqecc new code.tnet --tensor T=a,b,c:2x2x2 --seed 7 --meta code=repetition`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(specs) == 0 {
				return fmt.Errorf("at least one --tensor is required")
			}
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed)) //nolint:gosec // G404: sample data, not secrets

			tn := network.New(nil, a.networkOptions()...)
			for _, s := range specs {
				spec, err := parseTensorSpec(s)
				if err != nil {
					return err
				}
				t, err := tensor.Rand(rng, spec.shape, spec.legs, spec.name)
				if err != nil {
					return fmt.Errorf("tensor %q: %w", s, err)
				}
				tn.AddTensor(t)
			}

			if err := serialization.SaveFile(args[0], tn.Tensors(), meta); err != nil {
				return err
			}
			a.logger.Info("created network", "path", args[0], "tensors", tn.NumTensors(), "seed", seed)
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %d tensors to %s\n", tn.NumTensors(), args[0])
			return err
		},
	}

	cmd.Flags().StringArrayVarP(&specs, "tensor", "t", nil, "tensor as NAME=leg1,leg2:2x2 (repeatable)")
	cmd.Flags().StringToStringVar(&meta, "meta", nil, "metadata key=value pairs stored in the file")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: time based)")

	return cmd
}
