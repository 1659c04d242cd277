// Package layer defines layers, groups of nodes added to a network together
package layer

import "github.com/neurlang/backprop/net/feedforward"

// Layer is a group of nodes fed by the nodes of the previous layer
type Layer interface {

	// Lay adds the layer's nodes to net, feeding them from prev, and returns them
	Lay(net *feedforward.Network, prev []feedforward.NodeID) ([]feedforward.NodeID, error)
}

// Stack lays the layers in order, each fed by the one before it, the first by
// prev. It returns the nodes of the last layer.
func Stack(net *feedforward.Network, prev []feedforward.NodeID, layers ...Layer) ([]feedforward.NodeID, error) {
	for _, l := range layers {
		next, err := l.Lay(net, prev)
		if err != nil {
			return nil, err
		}
		prev = next
	}
	return prev, nil
}
