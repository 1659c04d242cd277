package sine

import "math"

import "github.com/neurlang/backprop/datasets"

// Period is the width of the sampled domain, two full periods
const Period = 4 * math.Pi

// Source draws uniform values in [0, 1). *rand.Rand and *hash.Sequence satisfy it.
type Source interface {
	Float64() float64
}

// Label is the sine scaled into the range of the logistic function
func Label(x float64) float64 {
	return 0.5 * (1.0 + math.Sin(x))
}

// Domain draws n points uniformly from [0, Period)
func Domain(src Source, n int) []float64 {
	var o = make([]float64, n)
	for i := range o {
		o[i] = src.Float64() * Period
	}
	return o
}

// Sample draws n points from the domain and labels them
func Sample(src Source, n int) (ret datasets.Dataset) {
	for _, x := range Domain(src, n) {
		ret = append(ret, datasets.Example{
			Input: []float64{x},
			Label: Label(x),
		})
	}
	return
}
