package feedforward

import "fmt"

// NodeID references a node inside the network that created it
type NodeID int

// EdgeID references an edge inside the network that created it
type EdgeID int

// None is the NodeID of a missing node
const None NodeID = -1

// Kind is the variant of a node
type Kind byte

const (
	// Plain nodes compute the logistic of the weighted sum of their inputs
	Plain Kind = iota

	// Input nodes read one element of the input vector
	Input

	// Bias nodes always evaluate to 1
	Bias
)

func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Input:
		return "input"
	case Bias:
		return "bias"
	}
	return fmt.Sprintf("kind(%d)", byte(k))
}

// Edge is a directed weighted connection from Source to Target
type Edge struct {
	Weight float64
	Source NodeID
	Target NodeID
}

// node is a vertex of the network. The incoming and outgoing lists hold the
// ids of edges shared with the nodes at the other end.
type node struct {
	kind  Kind
	index int

	incoming []EdgeID
	outgoing []EdgeID

	// per example state, valid while the matching flag is set
	output    float64
	evaluated bool
	input     []float64
	err       float64
	erred     bool
}

// clear drops the per example state
func (n *node) clear() {
	n.output, n.evaluated = 0, false
	n.input = nil
	n.err, n.erred = 0, false
}

// updatable reports whether the node holds everything the delta rule needs
func (n *node) updatable() bool {
	return n.evaluated && n.erred && n.input != nil
}
