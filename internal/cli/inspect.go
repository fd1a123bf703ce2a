package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

// newInspectCmd creates the inspect command
func newInspectCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Draw a network file as text or Graphviz DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, meta, err := a.loadCode(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := a.draw(out, c.View(), format, a.drawOptions(out)); err != nil {
				return err
			}
			if format == "dot" || (format == "" && a.cfg.Render.Format == "dot") {
				return nil
			}
			keys := make([]string, 0, len(meta))
			for k := range meta {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			for _, k := range keys {
				if _, err := fmt.Fprintf(out, "meta %s=%s\n", k, meta[k]); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text or dot (default from config)")

	return cmd
}
