package feedforward

import "github.com/pkg/errors"
import "go.uber.org/zap"

import "github.com/neurlang/backprop/datasets"

const (
	// DefaultLearningRate is the learning rate used by Train unless WithLearningRate is given
	DefaultLearningRate = 0.9

	// DefaultMaxIterations is the example budget used by Train unless WithMaxIterations is given
	DefaultMaxIterations = 10000
)

type trainConfig struct {
	learningRate  float64
	maxIterations int
}

// TrainOption configures Train
type TrainOption func(*trainConfig)

// WithLearningRate sets the learning rate
func WithLearningRate(rate float64) TrainOption {
	return func(c *trainConfig) {
		c.learningRate = rate
	}
}

// WithMaxIterations sets the number of examples to train on. It counts single
// examples, not passes over the dataset.
func WithMaxIterations(n int) TrainOption {
	return func(c *trainConfig) {
		c.maxIterations = n
	}
}

// Step trains the network on a single example: it evaluates input, propagates
// the error against label and updates the weights. It returns the output
// computed before the update.
func (n *Network) Step(input []float64, label float64, learningRate float64) (float64, error) {
	out, err := n.Evaluate(input)
	if err != nil {
		return 0, err
	}
	n.PropagateError(label)
	n.UpdateWeights(learningRate)
	return out, nil
}

// Train cycles over the examples in order, training on one example at a time
// until the iteration budget is spent. The budget may run out in the middle of
// a pass over the dataset.
func (n *Network) Train(examples datasets.Dataset, opts ...TrainOption) error {
	c := trainConfig{
		learningRate:  DefaultLearningRate,
		maxIterations: DefaultMaxIterations,
	}
	for _, o := range opts {
		o(&c)
	}
	if c.maxIterations <= 0 {
		return nil
	}
	if len(examples) == 0 {
		return ErrNoExamples
	}

	remaining := c.maxIterations
	for epoch := 0; remaining > 0; epoch++ {
		for i, ex := range examples {
			if _, err := n.Step(ex.Input, ex.Label, c.learningRate); err != nil {
				return errors.Wrapf(err, "example %d", i)
			}
			remaining--
			if remaining == 0 {
				break
			}
		}
		if ce := n.logger.Check(zap.DebugLevel, "epoch done"); ce != nil {
			ce.Write(zap.Int("epoch", epoch), zap.Int("remaining", remaining))
		}
	}
	return nil
}
