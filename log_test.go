package tern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLogRingCaptures(t *testing.T) {
	ring := NewLogRing(10)
	logger := ring.Logger()

	logger.Info("frame rendered")
	logger.Warn("slow frame")

	entries := ring.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Contains(t, entries[0].Message, "frame rendered")
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func TestLogRingBounded(t *testing.T) {
	ring := NewLogRing(3)
	logger := ring.Logger()

	for i := 0; i < 10; i++ {
		logger.Info("entry")
	}

	assert.Equal(t, 3, ring.Len())
}

func TestLogRingFields(t *testing.T) {
	ring := NewLogRing(10)
	logger := ring.Logger().With(zap.Int("width", 80))

	logger.Debug("resized")

	entries := ring.Entries()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Message, "80")
}

func TestLogRingClear(t *testing.T) {
	ring := NewLogRing(10)
	ring.Logger().Info("x")
	require.Equal(t, 1, ring.Len())

	ring.Clear()
	assert.Equal(t, 0, ring.Len())
}
