package feedforward

import "fmt"

// PropagateError attributes the error of the last evaluated example to every
// node reachable from the inputs. label is the expected network output.
func (n *Network) PropagateError(label float64) {
	for _, id := range n.inputs {
		n.NodeError(id, label)
	}
}

// UpdateWeights applies the delta rule to every node reachable from the inputs
// and clears their per example state.
func (n *Network) UpdateWeights(learningRate float64) {
	for _, id := range n.inputs {
		n.UpdateNodeWeights(id, learningRate)
	}
}

// pulled reports whether node id needs no further error computation
func (n *Network) pulled(id NodeID) bool {
	v := &n.nodes[id]
	return v.kind != Plain || v.erred
}

// NodeError returns the error of node id for label. A node without outgoing
// edges is the output and its error is label minus its output. Any other plain
// node sums the errors of its targets, each scaled by the connecting weight.
// Input and bias nodes hold no error: they make their targets compute theirs
// and return 0.
//
// NodeError panics when it reaches a plain node that was not evaluated.
func (n *Network) NodeError(id NodeID, label float64) float64 {
	stack := append(n.stack[:0], id)
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		v := &n.nodes[top]
		if v.kind == Plain {
			if v.erred {
				stack = stack[:len(stack)-1]
				continue
			}
			if !v.evaluated {
				panic(fmt.Sprintf("error of node %d requested before it was evaluated", top))
			}
		}

		var pending bool
		for _, e := range v.outgoing {
			if dst := n.edges[e].Target; !n.pulled(dst) {
				stack = append(stack, dst)
				pending = true
			}
		}
		if pending {
			continue
		}
		stack = stack[:len(stack)-1]
		if v.kind != Plain {
			continue
		}

		if len(v.outgoing) == 0 {
			v.err = label - v.output
		} else {
			var sum float64
			for _, e := range v.outgoing {
				edge := &n.edges[e]
				sum += edge.Weight * n.nodes[edge.Target].err
			}
			v.err = sum
		}
		v.erred = true
	}
	n.stack = stack
	return n.nodes[id].err
}

// UpdateNodeWeights applies the delta rule to the incoming edges of node id and
// of every plain node downstream of it, then clears their per example state.
// A node whose state is already cleared is skipped, so each node is updated
// once per example however many paths lead to it.
func (n *Network) UpdateNodeWeights(id NodeID, learningRate float64) {
	stack := append(n.stack[:0], id)
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		v := &n.nodes[top]
		if v.kind == Plain {
			if !v.updatable() {
				continue
			}
			for i, e := range v.incoming {
				n.edges[e].Weight += learningRate * v.output * (1 - v.output) * v.err * v.input[i]
			}
		}
		v.clear()

		// reversed so that targets are visited in edge order
		for i := len(v.outgoing) - 1; i >= 0; i-- {
			stack = append(stack, n.edges[v.outgoing[i]].Target)
		}
	}
	n.stack = stack
}
