package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameScheduler(t *testing.T) {
	s := NewFrameScheduler()
	assert.False(t, s.Pending())
	assert.False(t, s.RunPending())

	calls := 0
	var tick func()
	tick = func() {
		calls++
		if calls < 3 {
			s.RequestTick(tick)
		}
	}
	s.RequestTick(tick)

	for s.RunPending() {
	}
	assert.Equal(t, 3, calls)
	assert.False(t, s.Pending())

	s.RequestTick(tick)
	s.Cancel()
	assert.False(t, s.RunPending())
	assert.Equal(t, 3, calls)
}

func TestFrameScheduler_requestReplacesPending(t *testing.T) {
	s := NewFrameScheduler()
	first, second := 0, 0
	s.RequestTick(func() { first++ })
	s.RequestTick(func() { second++ })

	assert.True(t, s.RunPending())
	assert.False(t, s.RunPending())
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
}

func TestMathRandSource(t *testing.T) {
	a := NewMathRandSource(7)
	b := NewMathRandSource(7)
	for i := 0; i < 100; i++ {
		v := a.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
		assert.Equal(t, v, b.Float64(), "same seed should give the same sequence")
	}
}
