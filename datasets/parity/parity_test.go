package parity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataset(t *testing.T) {
	d := Dataset()
	assert.Len(t, d, 8)
	assert.Equal(t, Bits, d.Width())

	assert.Equal(t, []float64{0, 0, 0}, d[0].Input)
	assert.Equal(t, 1.0, d[0].Label)
	assert.Equal(t, []float64{0, 0, 1}, d[1].Input)
	assert.Equal(t, 0.0, d[1].Label)
	assert.Equal(t, []float64{1, 1, 0}, d[6].Input)
	assert.Equal(t, 1.0, d[6].Label)

	for _, ex := range d {
		assert.Equal(t, 1-ex.Input[2], ex.Label, "%v", ex.Input)
	}
}
