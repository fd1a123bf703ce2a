package network

import (
	"github.com/born-ml/tnqecc/internal/tensor"
)

// Node is one tensor as seen by a renderer.
type Node struct {
	ID    string
	Tags  []string
	Legs  []string
	Shape tensor.Shape
}

// Edge is a label shared by more than one leg. Tensors lists the ids of its
// carriers: two for a bond, three or more for a hyperedge, one for a label
// repeated on a single tensor.
type Edge struct {
	Label   string
	Dim     int
	Tensors []string
}

// OpenLeg is a label held by exactly one leg.
type OpenLeg struct {
	Label  string
	Dim    int
	Tensor string
}

// View is a read-only snapshot of the network's structure for visualization.
// It carries no rendering decisions.
type View struct {
	Nodes    []Node
	Edges    []Edge
	OpenLegs []OpenLeg
}

// View returns the network's tensors, tags and index adjacency.
func (n *Network) View() View {
	v := View{Nodes: make([]Node, 0, len(n.tensors))}
	for _, t := range n.tensors {
		v.Nodes = append(v.Nodes, Node{
			ID:    t.ID(),
			Tags:  t.Tags(),
			Legs:  t.Legs(),
			Shape: t.Shape().Clone(),
		})
	}

	counts := n.legCounts()
	for _, label := range n.Indices() {
		owners := n.indMap[label]
		dim := owners[0].Dim(label)
		if counts[label] == 1 {
			v.OpenLegs = append(v.OpenLegs, OpenLeg{Label: label, Dim: dim, Tensor: owners[0].ID()})
			continue
		}
		e := Edge{Label: label, Dim: dim}
		for _, t := range owners {
			e.Tensors = append(e.Tensors, t.ID())
		}
		v.Edges = append(v.Edges, e)
	}
	return v
}

// NodeByID returns the node with the given id.
func (v View) NodeByID(id string) (Node, bool) {
	for _, node := range v.Nodes {
		if node.ID == id {
			return node, true
		}
	}
	return Node{}, false
}
