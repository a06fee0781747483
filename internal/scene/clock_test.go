package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameClockDelta(t *testing.T) {
	var clock FrameClock

	elapsed, delta := clock.Tick(0.5)
	assert.Equal(t, float32(0.5), elapsed)
	assert.Equal(t, float32(0.5), delta)

	elapsed, delta = clock.Tick(0.75)
	assert.Equal(t, float32(0.75), elapsed)
	assert.InDelta(t, 0.25, delta, 1e-6)
}

func TestFrameClockNeverNegative(t *testing.T) {
	var clock FrameClock
	clock.Tick(10)

	_, delta := clock.Tick(9)
	assert.Equal(t, float32(0), delta)

	_, delta = clock.Tick(9.5)
	assert.InDelta(t, 0.5, delta, 1e-6, "clock resyncs after a regression")
}

func TestFrameClockSameTimestamp(t *testing.T) {
	var clock FrameClock
	clock.Tick(3)

	_, delta := clock.Tick(3)
	assert.Equal(t, float32(0), delta)
}
