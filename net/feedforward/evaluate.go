package feedforward

import "math"

import "github.com/pkg/errors"
import "go.uber.org/zap"

// Activation is the logistic function applied to every plain node's weighted sum
func Activation(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// Evaluate computes the network output for input. Every registered input node
// must index into input, otherwise ErrIndexOutOfRange is returned before any
// node is touched. Values cached for the previous example are dropped first.
func (n *Network) Evaluate(input []float64) (float64, error) {
	if n.output == None {
		return 0, ErrNoOutput
	}
	for _, id := range n.inputs {
		v := &n.nodes[id]
		if v.kind != Input {
			continue
		}
		if v.index < 0 || v.index >= len(input) {
			return 0, errors.Wrapf(ErrIndexOutOfRange, "input node %d reads index %d of %d",
				id, v.index, len(input))
		}
	}
	n.ClearEvaluateCache(n.output)
	return n.EvaluateNode(n.output, input), nil
}

// value reads the output of a source node. Input nodes are read from the
// input vector every time, bias nodes are 1.
func (n *Network) value(id NodeID, input []float64) float64 {
	v := &n.nodes[id]
	switch v.kind {
	case Bias:
		return 1.0
	case Input:
		v.output, v.evaluated = input[v.index], true
	}
	return v.output
}

// ready reports whether value can be read from node id without evaluating it first
func (n *Network) ready(id NodeID) bool {
	v := &n.nodes[id]
	return v.kind != Plain || v.evaluated
}

// fire computes a plain node whose sources are all ready
func (n *Network) fire(id NodeID, input []float64) {
	v := &n.nodes[id]
	v.input = make([]float64, len(v.incoming))
	var sum float64
	for i, e := range v.incoming {
		x := n.value(n.edges[e].Source, input)
		v.input[i] = x
		sum += n.edges[e].Weight * x
	}
	v.output, v.evaluated = Activation(sum), true

	if ce := n.logger.Check(zap.DebugLevel, "node evaluated"); ce != nil {
		ce.Write(zap.Int("node", int(id)), zap.Float64("sum", sum), zap.Float64("output", v.output))
	}
}

// EvaluateNode computes the value of node id for input. A plain node keeps its
// value until its cache is cleared, so a node feeding several others is
// computed once per example.
func (n *Network) EvaluateNode(id NodeID, input []float64) float64 {
	stack := append(n.stack[:0], id)
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if n.ready(top) {
			stack = stack[:len(stack)-1]
			continue
		}
		var pending bool
		for _, e := range n.nodes[top].incoming {
			if src := n.edges[e].Source; !n.ready(src) {
				stack = append(stack, src)
				pending = true
			}
		}
		if pending {
			continue
		}
		n.fire(top, input)
		stack = stack[:len(stack)-1]
	}
	n.stack = stack
	return n.value(id, input)
}

// ClearEvaluateCache drops the per example state of node id and, when the
// node had been evaluated, of everything upstream of it.
func (n *Network) ClearEvaluateCache(id NodeID) {
	stack := append(n.stack[:0], id)
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		v := &n.nodes[top]
		switch v.kind {
		case Bias:
			continue
		case Input:
			v.clear()
			continue
		}
		if !v.evaluated {
			continue
		}
		v.clear()
		for _, e := range v.incoming {
			stack = append(stack, n.edges[e].Source)
		}
	}
	n.stack = stack
}
