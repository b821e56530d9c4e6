package tern

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTweenProgress(t *testing.T) {
	tw := NewTween(0, 100, time.Second)

	assert.Equal(t, 0.0, tw.Value())
	assert.False(t, tw.Done())

	tw.Step(500 * time.Millisecond)
	assert.InDelta(t, 50, tw.Value(), 1)

	tw.Step(500 * time.Millisecond)
	assert.Equal(t, 100.0, tw.Value())
	assert.True(t, tw.Done())
}

func TestTweenClampsPastEnd(t *testing.T) {
	tw := NewTween(0, 10, 100*time.Millisecond)
	tw.Step(time.Second)

	assert.Equal(t, 10.0, tw.Value())
	assert.True(t, tw.Done())
}

func TestTweenZeroDuration(t *testing.T) {
	tw := NewTween(3, 7, 0)
	assert.Equal(t, 7.0, tw.Value())
	assert.True(t, tw.Done())
}

func TestTweenEasing(t *testing.T) {
	tw := NewTween(0, 100, time.Second).WithEasing(EaseInQuad)
	tw.Step(500 * time.Millisecond)

	// Quadratic ease-in is behind linear at the midpoint.
	assert.InDelta(t, 25, tw.Value(), 1)
}

func TestTweenOnValue(t *testing.T) {
	var seen []float64
	tw := NewTween(0, 10, 100*time.Millisecond).WithOnValue(func(v float64) {
		seen = append(seen, v)
	})

	tw.Step(50 * time.Millisecond)
	tw.Step(50 * time.Millisecond)

	assert.Len(t, seen, 2)
	assert.Equal(t, 10.0, seen[1])
}

func TestEasingEndpoints(t *testing.T) {
	for name, ease := range map[string]Easing{
		"linear":     EaseLinear,
		"inQuad":     EaseInQuad,
		"outQuad":    EaseOutQuad,
		"inOutQuad":  EaseInOutQuad,
		"inCubic":    EaseInCubic,
		"outCubic":   EaseOutCubic,
		"inOutCubic": EaseInOutCubic,
	} {
		assert.InDelta(t, 0, ease(0), 1e-9, name)
		assert.InDelta(t, 1, ease(1), 1e-9, name)
	}
}

func TestEaseInOutCubicShape(t *testing.T) {
	// Symmetric around the midpoint, slower than linear early and faster
	// than linear late.
	assert.InDelta(t, 0.5, EaseInOutCubic(0.5), 1e-9)
	assert.Less(t, EaseInOutCubic(0.25), 0.25)
	assert.Greater(t, EaseInOutCubic(0.75), 0.75)
	assert.InDelta(t, EaseInOutCubic(0.25), 1-EaseInOutCubic(0.75), 1e-9)
}

func TestTimelineReapsFinished(t *testing.T) {
	tl := NewTimeline()
	tl.Add(NewTween(0, 10, 100*time.Millisecond))
	tl.Add(NewTween(0, 20, 200*time.Millisecond))

	assert.Equal(t, 2, tl.Count())
	assert.False(t, tl.Idle())

	tl.Step(100 * time.Millisecond)
	assert.Equal(t, 1, tl.Count())

	tl.Step(100 * time.Millisecond)
	assert.True(t, tl.Idle())
}

func TestTimelineClear(t *testing.T) {
	tl := NewTimeline()
	tl.Add(NewTween(0, 1, time.Second))
	tl.Clear()
	assert.True(t, tl.Idle())
}
