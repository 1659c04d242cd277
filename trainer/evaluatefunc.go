package trainer

import "math"

import "github.com/pkg/errors"
import "gonum.org/v1/gonum/stat"

import "github.com/neurlang/backprop/datasets"
import "github.com/neurlang/backprop/net/feedforward"

// ErrEmptyDataset is returned when measuring a network on no examples
var ErrEmptyDataset = errors.New("empty dataset")

func meanError(net *feedforward.Network, d datasets.Dataset, output func(float64) float64) (float64, error) {
	if len(d) == 0 {
		return 0, ErrEmptyDataset
	}
	var errs = make([]float64, len(d))
	for i, ex := range d {
		y, err := net.Evaluate(ex.Input)
		if err != nil {
			return 0, errors.Wrapf(err, "example %d", i)
		}
		errs[i] = math.Abs(ex.Label - output(y))
	}
	return stat.Mean(errs, nil), nil
}

// MeanAbsoluteError averages |label - output| over the dataset
func MeanAbsoluteError(net *feedforward.Network, d datasets.Dataset) (float64, error) {
	return meanError(net, d, func(y float64) float64 { return y })
}

// MeanRoundedError averages |label - round(output)| over the dataset. For
// labels of 0 and 1 it is the share of misclassified examples.
func MeanRoundedError(net *feedforward.Network, d datasets.Dataset) (float64, error) {
	return meanError(net, d, math.Round)
}

// NewEvaluateFunc returns a function measuring the mean absolute error of net on d
func NewEvaluateFunc(net *feedforward.Network, d datasets.Dataset) func() (float64, error) {
	return func() (float64, error) {
		return MeanAbsoluteError(net, d)
	}
}
