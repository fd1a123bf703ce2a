package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/born-ml/tnqecc/internal/network"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// Text renders a view as an indented listing of tensors, edges, open legs
// and, optionally, a tag legend.
func Text(v network.View, opts DrawOptions) string {
	paint := func(s lipgloss.Style, text string) string {
		if !opts.Color {
			return text
		}
		return s.Render(text)
	}
	tint := func(color, text string) string {
		if !opts.Color || color == "" {
			return text
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
	}

	names := make(map[string]string, len(v.Nodes))
	colors := make(map[string]string, len(v.Nodes))
	for _, n := range v.Nodes {
		names[n.ID] = nodeName(n, opts)
		colors[n.ID] = nodeColor(n, opts)
	}
	node := func(id string) string {
		return tint(colors[id], names[id])
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d tensors, %d edges, %d open legs\n",
		paint(headingStyle, "Tensor network:"), len(v.Nodes), len(v.Edges), len(v.OpenLegs))

	b.WriteString(paint(headingStyle, "Tensors:") + "\n")
	for i, n := range v.Nodes {
		fmt.Fprintf(&b, "  [%d] %s", i, node(n.ID))
		if opts.ShowInds {
			fmt.Fprintf(&b, " legs=(%s)", paint(labelStyle, strings.Join(n.Legs, ",")))
		}
		fmt.Fprintf(&b, " shape=%s\n", n.Shape)
	}

	if len(v.Edges) > 0 {
		b.WriteString(paint(headingStyle, "Edges:") + "\n")
		for _, e := range v.Edges {
			ends := make([]string, len(e.Tensors))
			for i, id := range e.Tensors {
				ends[i] = node(id)
			}
			b.WriteString("  ")
			if opts.ShowInds {
				fmt.Fprintf(&b, "%s ", paint(labelStyle, e.Label))
			}
			fmt.Fprintf(&b, "dim=%d %s", e.Dim, strings.Join(ends, " -- "))
			switch {
			case len(e.Tensors) == 1:
				b.WriteString(paint(dimStyle, " (trace)"))
			case len(e.Tensors) > 2:
				b.WriteString(paint(dimStyle, " (hyperedge)"))
			}
			b.WriteString("\n")
		}
	}

	if len(v.OpenLegs) > 0 {
		b.WriteString(paint(headingStyle, "Open legs:") + "\n")
		for _, o := range v.OpenLegs {
			b.WriteString("  ")
			if opts.ShowInds {
				fmt.Fprintf(&b, "%s ", paint(labelStyle, o.Label))
			}
			fmt.Fprintf(&b, "dim=%d %s\n", o.Dim, node(o.Tensor))
		}
	}

	if opts.Legend {
		if tags := legendTags(v, opts); len(tags) > 0 {
			b.WriteString(paint(headingStyle, "Legend:") + "\n")
			for _, tag := range tags {
				fmt.Fprintf(&b, "  %s %s\n", tint(legendColor(tag, opts), "■"), tag)
			}
		}
	}

	return b.String()
}
