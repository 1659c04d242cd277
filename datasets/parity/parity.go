package parity

import "github.com/neurlang/backprop/datasets"

// Bits is the length of every input vector
const Bits = 3

// Dataset returns the numbers 0 to 7 as three bit vectors, most significant
// bit first, labeled 1 when the number is even.
func Dataset() (ret datasets.Dataset) {
	for i := 0; i < 1<<Bits; i++ {
		var input = make([]float64, Bits)
		for j := range input {
			input[j] = float64((i >> (Bits - 1 - j)) & 1)
		}
		ret = append(ret, datasets.Example{
			Input: input,
			Label: float64(1 - i&1),
		})
	}
	return
}
