package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/born-ml/tnqecc/internal/network"
)

// DOT renders a view as an undirected Graphviz graph. Hyperedges become a
// point node joined to every carrier; open legs end in a plaintext node.
func DOT(v network.View, opts DrawOptions) string {
	var b strings.Builder
	b.WriteString("graph tnet {\n")
	if opts.Layout != "" {
		fmt.Fprintf(&b, "  layout=%s;\n", strconv.Quote(opts.Layout))
	}
	if opts.FigWidth > 0 && opts.FigHeight > 0 {
		fmt.Fprintf(&b, "  size=\"%g,%g\";\n", opts.FigWidth, opts.FigHeight)
	}
	b.WriteString("  node [shape=circle];\n")

	for _, n := range v.Nodes {
		attrs := []string{"label=" + strconv.Quote(nodeName(n, opts))}
		if c := nodeColor(n, opts); c != "" {
			attrs = append(attrs, "style=filled", "fillcolor="+strconv.Quote(c))
		}
		fmt.Fprintf(&b, "  %s [%s];\n", strconv.Quote(n.ID), strings.Join(attrs, ", "))
	}

	edgeAttr := func(label string) string {
		if !opts.ShowInds {
			return ""
		}
		return fmt.Sprintf(" [label=%s]", strconv.Quote(label))
	}

	for _, e := range v.Edges {
		switch len(e.Tensors) {
		case 1:
			fmt.Fprintf(&b, "  %s -- %s%s;\n", strconv.Quote(e.Tensors[0]), strconv.Quote(e.Tensors[0]), edgeAttr(e.Label))
		case 2:
			fmt.Fprintf(&b, "  %s -- %s%s;\n", strconv.Quote(e.Tensors[0]), strconv.Quote(e.Tensors[1]), edgeAttr(e.Label))
		default:
			hub := strconv.Quote("hyper:" + e.Label)
			fmt.Fprintf(&b, "  %s [shape=point];\n", hub)
			for _, id := range e.Tensors {
				fmt.Fprintf(&b, "  %s -- %s%s;\n", strconv.Quote(id), hub, edgeAttr(e.Label))
			}
		}
	}

	for _, o := range v.OpenLegs {
		end := strconv.Quote("open:" + o.Label)
		label := ""
		if opts.ShowInds {
			label = o.Label
		}
		fmt.Fprintf(&b, "  %s [shape=plaintext, label=%s];\n", end, strconv.Quote(label))
		fmt.Fprintf(&b, "  %s -- %s;\n", strconv.Quote(o.Tensor), end)
	}

	if opts.Legend {
		if tags := legendTags(v, opts); len(tags) > 0 {
			b.WriteString("  subgraph cluster_legend {\n    label=\"legend\";\n")
			for _, tag := range tags {
				fmt.Fprintf(&b, "    %s [shape=box, style=filled, fillcolor=%s, label=%s];\n",
					strconv.Quote("legend:"+tag), strconv.Quote(legendColor(tag, opts)), strconv.Quote(tag))
			}
			b.WriteString("  }\n")
		}
	}

	b.WriteString("}\n")
	return b.String()
}
