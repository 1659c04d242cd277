// Package learning holds the hyperparameters of a training run
package learning

import "github.com/pkg/errors"
import "github.com/vrischmann/envconfig"
import "go.uber.org/zap"

// Prefix is prepended to the environment variable of every hyperparameter,
// e.g. BACKPROP_LEARNING_RATE
const Prefix = "BACKPROP"

type HyperParameters struct {
	LearningRate  float64 `envconfig:"default=0.9"`   // step size of the delta rule
	MaxIterations int     `envconfig:"default=10000"` // examples to train on in total

	RoundIterations int     `envconfig:"default=1000"` // examples between two evaluations
	Threshold       float64 `envconfig:"default=0"`    // stop once the mean absolute error is at most this

	Seed uint32 `envconfig:"default=1"` // seed of the initial weights

	Debug bool `envconfig:"default=false"` // development logging with per node traces
}

// Load reads the hyperparameters from the environment
func Load() (*HyperParameters, error) {
	h := new(HyperParameters)
	if err := envconfig.InitWithPrefix(h, Prefix); err != nil {
		return nil, errors.Wrap(err, "loading hyperparameters")
	}
	return h, nil
}

// Logger builds the logger for the run
func (h *HyperParameters) Logger() (*zap.Logger, error) {
	if h.Debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// Fields describes the hyperparameters for structured logs
func (h *HyperParameters) Fields() []zap.Field {
	return []zap.Field{
		zap.Float64("learning_rate", h.LearningRate),
		zap.Int("max_iterations", h.MaxIterations),
		zap.Int("round_iterations", h.RoundIterations),
		zap.Float64("threshold", h.Threshold),
		zap.Uint32("seed", h.Seed),
	}
}
