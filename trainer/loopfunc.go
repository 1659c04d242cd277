package trainer

import "github.com/google/uuid"
import "go.uber.org/zap"

import "github.com/neurlang/backprop/datasets"
import "github.com/neurlang/backprop/learning"
import "github.com/neurlang/backprop/net/feedforward"

// NewLoopFunc returns the training loop of net on d. The loop trains in rounds
// of h.RoundIterations examples, measuring the mean absolute error after each,
// until h.MaxIterations examples are spent or the error is at most h.Threshold.
// A round resumes the dataset where the previous one stopped, so the weights
// end up the same as after a single Train call of the same length. The loop
// returns the last measured error.
func NewLoopFunc(net *feedforward.Network, d datasets.Dataset, h *learning.HyperParameters,
	logger *zap.Logger) func() (float64, error) {

	evaluate := NewEvaluateFunc(net, d)

	return func() (float64, error) {
		log := logger.With(zap.String("run", uuid.NewString()))

		loss, err := evaluate()
		if err != nil {
			return 0, err
		}
		log.Info("training started", append(h.Fields(), zap.Int("examples", len(d)), zap.Float64("error", loss))...)

		round := h.RoundIterations
		if round <= 0 {
			round = h.MaxIterations
		}

		var done int
		for done < h.MaxIterations && loss > h.Threshold {
			step := min(round, h.MaxIterations-done)
			err := net.Train(d.Rotate(done), feedforward.WithLearningRate(h.LearningRate),
				feedforward.WithMaxIterations(step))
			if err != nil {
				return loss, err
			}
			done += step

			if loss, err = evaluate(); err != nil {
				return loss, err
			}
			log.Info("training round",
				zap.Int("iterations", done),
				zap.Int("remaining", h.MaxIterations-done),
				zap.Float64("error", loss))
		}

		log.Info("training finished", zap.Int("iterations", done), zap.Float64("error", loss))
		return loss, nil
	}
}
