package feedforward

import "github.com/pkg/errors"

var (
	// ErrIndexOutOfRange is returned when an input vector is too short for an input node
	ErrIndexOutOfRange = errors.New("input index out of range")

	// ErrNoOutput is returned when evaluating a network without an output node
	ErrNoOutput = errors.New("network has no output node")

	// ErrNoExamples is returned when training on an empty dataset
	ErrNoExamples = errors.New("no examples to train on")

	// ErrNotInput is returned when registering a plain node as a network input
	ErrNotInput = errors.New("node is not an input node")

	// ErrUnknownNode is returned for a NodeID the network did not create
	ErrUnknownNode = errors.New("unknown node")
)
