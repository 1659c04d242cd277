package full

import "github.com/pkg/errors"

import "github.com/neurlang/backprop/layer"
import "github.com/neurlang/backprop/net/feedforward"

// NewNetwork builds numInputs input nodes reading indices 0 to numInputs-1,
// numHiddenLayers fully connected layers of numInEachLayer nodes and a single
// output node into net, and registers the inputs and the output.
func NewNetwork(net *feedforward.Network, numInputs, numHiddenLayers, numInEachLayer int) error {
	if numInputs <= 0 {
		return errors.Wrapf(ErrSize, "%d inputs", numInputs)
	}
	if numHiddenLayers < 0 {
		return errors.Wrapf(ErrSize, "%d hidden layers", numHiddenLayers)
	}

	var layers []layer.Layer
	for i := 0; i < numHiddenLayers; i++ {
		l, err := New(numInEachLayer)
		if err != nil {
			return errors.Wrapf(err, "hidden layer %d", i)
		}
		layers = append(layers, l)
	}

	var inputs = make([]feedforward.NodeID, numInputs)
	for i := range inputs {
		inputs[i] = net.NewInput(i)
	}
	last, err := layer.Stack(net, inputs, append(layers, MustNew(1))...)
	if err != nil {
		return err
	}
	if err := net.SetInputs(inputs...); err != nil {
		return err
	}
	return net.SetOutput(last[0])
}

// MustNewNetwork is NewNetwork that panics on invalid sizes
func MustNewNetwork(net *feedforward.Network, numInputs, numHiddenLayers, numInEachLayer int) {
	if err := NewNetwork(net, numInputs, numHiddenLayers, numInEachLayer); err != nil {
		panic(err.Error())
	}
}
