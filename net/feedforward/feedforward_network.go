// Package feedforward implements a feedforward network built as a graph of
// nodes joined by weighted edges, trained one example at a time by
// backpropagation.
//
// A Network owns every node and edge. Nodes are referenced by NodeID, edges by
// EdgeID. A topology is built by creating nodes with NewInput, NewNode and
// NewBias, joining them with Connect, and naming the inputs and the output with
// SetInputs and SetOutput. The graph must be acyclic and every input must reach
// the output; the network does not check either.
//
// A Network is not safe for concurrent use.
package feedforward

import "math/rand"

import "github.com/pkg/errors"
import "go.uber.org/zap"

// WeightSource draws initial edge weights uniformly from [0, 1). *rand.Rand and
// *hash.Sequence satisfy it.
type WeightSource interface {
	Float64() float64
}

type globalWeights struct{}

func (globalWeights) Float64() float64 {
	return rand.Float64()
}

// Option configures a Network
type Option func(*Network)

// WithWeights sets the source of initial edge weights. The default is the
// math/rand global source.
func WithWeights(w WeightSource) Option {
	return func(n *Network) {
		n.weights = w
	}
}

// WithLogger sets the logger receiving per node debug traces
func WithLogger(l *zap.Logger) Option {
	return func(n *Network) {
		n.logger = l
	}
}

// Network is the feedforward network
type Network struct {
	nodes []node
	edges []Edge

	bias   NodeID
	inputs []NodeID
	output NodeID

	weights WeightSource
	logger  *zap.Logger

	// traversal stack reused across calls
	stack []NodeID
}

// New creates an empty network holding only its shared bias node
func New(opts ...Option) *Network {
	n := &Network{
		output:  None,
		weights: globalWeights{},
		logger:  zap.NewNop(),
	}
	for _, o := range opts {
		o(n)
	}
	n.bias = n.add(node{kind: Bias})
	return n
}

func (n *Network) add(v node) NodeID {
	n.nodes = append(n.nodes, v)
	return NodeID(len(n.nodes) - 1)
}

func (n *Network) known(id NodeID) bool {
	return id >= 0 && int(id) < len(n.nodes)
}

func (n *Network) connect(source, target NodeID) EdgeID {
	e := EdgeID(len(n.edges))
	n.edges = append(n.edges, Edge{
		Weight: n.weights.Float64(),
		Source: source,
		Target: target,
	})
	n.nodes[source].outgoing = append(n.nodes[source].outgoing, e)
	n.nodes[target].incoming = append(n.nodes[target].incoming, e)
	return e
}

// NewNode adds a plain node. Its first incoming edge comes from the shared bias node.
func (n *Network) NewNode() NodeID {
	id := n.add(node{kind: Plain})
	n.connect(n.bias, id)
	return id
}

// NewInput adds an input node reading element index of the input vector
func (n *Network) NewInput(index int) NodeID {
	return n.add(node{kind: Input, index: index})
}

// NewBias adds another bias node. Plain nodes are already fed by the shared
// bias node returned by Bias.
func (n *Network) NewBias() NodeID {
	return n.add(node{kind: Bias})
}

// Bias returns the bias node shared by every plain node
func (n *Network) Bias() NodeID {
	return n.bias
}

// Connect adds an edge from source to target with a freshly drawn weight
func (n *Network) Connect(source, target NodeID) (EdgeID, error) {
	if !n.known(source) {
		return -1, errors.Wrapf(ErrUnknownNode, "edge source %d", source)
	}
	if !n.known(target) {
		return -1, errors.Wrapf(ErrUnknownNode, "edge target %d", target)
	}
	return n.connect(source, target), nil
}

// MustConnect is Connect that panics on unknown nodes
func (n *Network) MustConnect(source, target NodeID) EdgeID {
	e, err := n.Connect(source, target)
	if err != nil {
		panic(err.Error())
	}
	return e
}

// SetInputs registers the input nodes. Error propagation and weight updates
// start from them, in the given order.
func (n *Network) SetInputs(ids ...NodeID) error {
	for _, id := range ids {
		if !n.known(id) {
			return errors.Wrapf(ErrUnknownNode, "input %d", id)
		}
		if n.nodes[id].kind == Plain {
			return errors.Wrapf(ErrNotInput, "input %d", id)
		}
	}
	n.inputs = append([]NodeID(nil), ids...)
	return nil
}

// SetOutput sets the node whose value the network computes
func (n *Network) SetOutput(id NodeID) error {
	if !n.known(id) {
		return errors.Wrapf(ErrUnknownNode, "output %d", id)
	}
	n.output = id
	return nil
}

// Inputs returns the registered input nodes
func (n *Network) Inputs() []NodeID {
	return append([]NodeID(nil), n.inputs...)
}

// Output returns the output node, or None
func (n *Network) Output() NodeID {
	return n.output
}

// Len returns the number of nodes, the shared bias node included
func (n *Network) Len() int {
	return len(n.nodes)
}

// LenEdges returns the number of edges
func (n *Network) LenEdges() int {
	return len(n.edges)
}

// Kind returns the variant of node id
func (n *Network) Kind(id NodeID) Kind {
	return n.nodes[id].kind
}

// Index returns the input vector index read by an input node
func (n *Network) Index(id NodeID) int {
	return n.nodes[id].index
}

// Incoming returns the edges ending at node id, in evaluation order
func (n *Network) Incoming(id NodeID) []EdgeID {
	return append([]EdgeID(nil), n.nodes[id].incoming...)
}

// Outgoing returns the edges starting at node id
func (n *Network) Outgoing(id NodeID) []EdgeID {
	return append([]EdgeID(nil), n.nodes[id].outgoing...)
}

// BiasEdge returns the edge from the shared bias node into plain node id, or
// -1 for other kinds.
func (n *Network) BiasEdge(id NodeID) EdgeID {
	if n.nodes[id].kind != Plain {
		return -1
	}
	return n.nodes[id].incoming[0]
}

// Edge returns a copy of edge e
func (n *Network) Edge(e EdgeID) Edge {
	return n.edges[e]
}

// Weight returns the weight of edge e
func (n *Network) Weight(e EdgeID) float64 {
	return n.edges[e].Weight
}

// SetWeight overwrites the weight of edge e
func (n *Network) SetWeight(e EdgeID, w float64) {
	n.edges[e].Weight = w
}

// LastOutput returns the value node id computed for the current example
func (n *Network) LastOutput(id NodeID) (float64, bool) {
	v := &n.nodes[id]
	return v.output, v.evaluated
}

// LastInput returns the source values node id saw for the current example,
// parallel to Incoming, or nil.
func (n *Network) LastInput(id NodeID) []float64 {
	return append([]float64(nil), n.nodes[id].input...)
}

// LastError returns the error attributed to node id for the current example
func (n *Network) LastError(id NodeID) (float64, bool) {
	v := &n.nodes[id]
	return v.err, v.erred
}
