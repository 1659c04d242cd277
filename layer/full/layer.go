// Package full implements a fully connected layer and the layered network
// builder on top of it
package full

import "github.com/pkg/errors"

import "github.com/neurlang/backprop/net/feedforward"

// ErrSize is returned for a layer or network with a non positive size
var ErrSize = errors.New("size must be positive")

// FullLayer connects each of the previous layer's nodes to each of its own
type FullLayer struct {
	size int
}

// MustNew creates a new full layer of size nodes
func MustNew(size int) *FullLayer {
	o, err := New(size)
	if err != nil {
		panic(err.Error())
	}
	return o
}

// New creates a new full layer of size nodes
func New(size int) (o *FullLayer, err error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrSize, "full layer of %d nodes", size)
	}
	o = new(FullLayer)
	o.size = size
	return
}

// Size returns the number of nodes in the layer
func (l *FullLayer) Size() int {
	return l.size
}

// Lay adds the layer's nodes and connects every node of prev to each of them
func (l *FullLayer) Lay(net *feedforward.Network, prev []feedforward.NodeID) ([]feedforward.NodeID, error) {
	var o = make([]feedforward.NodeID, l.size)
	for i := range o {
		o[i] = net.NewNode()
	}
	for _, p := range prev {
		for _, n := range o {
			if _, err := net.Connect(p, n); err != nil {
				return nil, err
			}
		}
	}
	return o, nil
}
