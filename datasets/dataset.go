// Package datasets implements the labeled example types consumed by training
package datasets

// Example is one input vector with the label the network should produce for it
type Example struct {
	Input []float64
	Label float64
}

// Dataset is an ordered set of examples
type Dataset []Example

// Width reports the length of the longest input vector in the dataset
func (d Dataset) Width() (o int) {
	for _, v := range d {
		if len(v.Input) > o {
			o = len(v.Input)
		}
	}
	return
}

// Rotate returns the dataset starting at example n, wrapping around to the
// examples before it. The examples themselves are shared, not copied.
func (d Dataset) Rotate(n int) Dataset {
	if len(d) == 0 {
		return d
	}
	n %= len(d)
	if n < 0 {
		n += len(d)
	}
	o := make(Dataset, 0, len(d))
	o = append(o, d[n:]...)
	return append(o, d[:n]...)
}
