package learning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadDefaults(t *testing.T) {
	h, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &HyperParameters{
		LearningRate:    0.9,
		MaxIterations:   10000,
		RoundIterations: 1000,
		Threshold:       0,
		Seed:            1,
	}, h)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("BACKPROP_LEARNING_RATE", "0.25")
	t.Setenv("BACKPROP_MAX_ITERATIONS", "100000")
	t.Setenv("BACKPROP_THRESHOLD", "0.05")
	t.Setenv("BACKPROP_SEED", "7")
	t.Setenv("BACKPROP_DEBUG", "true")

	h, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0.25, h.LearningRate)
	assert.Equal(t, 100000, h.MaxIterations)
	assert.Equal(t, 1000, h.RoundIterations)
	assert.Equal(t, 0.05, h.Threshold)
	assert.Equal(t, uint32(7), h.Seed)
	assert.True(t, h.Debug)

	logger, err := h.Logger()
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.Len(t, h.Fields(), 5)
}

func TestLoadRejectsGarbage(t *testing.T) {
	t.Setenv("BACKPROP_MAX_ITERATIONS", "many")
	_, err := Load()
	assert.Error(t, err)
}
