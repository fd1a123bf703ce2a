// Package render draws tensor-network views as styled text or Graphviz DOT.
//
// Renderers only read a network.View; they never touch tensors or the index
// map directly.
package render

import (
	"sort"
	"strings"

	"github.com/born-ml/tnqecc/internal/network"
)

// DrawOptions controls how a network view is drawn.
type DrawOptions struct {
	ShowTags  bool              // Name nodes by their tags instead of short ids
	Colors    map[string]string // Tag -> color (lipgloss color or Graphviz color name)
	Legend    bool              // Append a tag/color legend
	Layout    string            // Graphviz layout engine (DOT only)
	ShowInds  bool              // Print index labels on edges and open legs
	FigWidth  float64           // Figure width in inches (DOT only, 0 = unset)
	FigHeight float64           // Figure height in inches (DOT only, 0 = unset)
	Color     bool              // Emit terminal colors (text only)
}

// DefaultDrawOptions returns the options used when nothing is configured.
func DefaultDrawOptions() DrawOptions {
	return DrawOptions{
		ShowTags: true,
		ShowInds: true,
		Legend:   true,
		Layout:   "neato",
	}
}

const shortIDLen = 8

// nodeName is the display name of a node: its tags joined with '+', or a
// short id when tags are hidden or absent.
func nodeName(n network.Node, opts DrawOptions) string {
	if opts.ShowTags && len(n.Tags) > 0 {
		name := n.Tags[0]
		for _, tag := range n.Tags[1:] {
			name += "+" + tag
		}
		return name
	}
	if len(n.ID) > shortIDLen {
		return n.ID[:shortIDLen]
	}
	return n.ID
}

// colorFor looks tag up in opts.Colors, falling back to its lowercase form
// (config files deliver map keys lowercased).
func colorFor(tag string, opts DrawOptions) (string, bool) {
	if c, ok := opts.Colors[tag]; ok {
		return c, true
	}
	c, ok := opts.Colors[strings.ToLower(tag)]
	return c, ok
}

// nodeColor is the color of the first tag (in sorted order) that has one.
func nodeColor(n network.Node, opts DrawOptions) string {
	for _, tag := range n.Tags {
		if c, ok := colorFor(tag, opts); ok {
			return c
		}
	}
	return ""
}

// legendTags lists the colored tags that appear in the view, sorted.
func legendTags(v network.View, opts DrawOptions) []string {
	present := make(map[string]struct{})
	for _, n := range v.Nodes {
		for _, tag := range n.Tags {
			if _, ok := colorFor(tag, opts); ok {
				present[tag] = struct{}{}
			}
		}
	}
	tags := make([]string, 0, len(present))
	for tag := range present {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func legendColor(tag string, opts DrawOptions) string {
	c, _ := colorFor(tag, opts)
	return c
}
