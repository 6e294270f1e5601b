package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvance_FiresInTimeOrder(t *testing.T) {
	s := NewScheduler()
	var fired []string
	s.At(2, "", func(float64) { fired = append(fired, "b") })
	s.At(1, "", func(float64) { fired = append(fired, "a") })
	s.At(2, "", func(float64) { fired = append(fired, "c") })

	s.Advance(0.5)
	assert.Empty(t, fired)

	s.Advance(2)
	assert.Equal(t, []string{"a", "b", "c"}, fired)
	assert.Equal(t, 2.5, s.Now())
	assert.Zero(t, s.Len())
}

func TestCancel(t *testing.T) {
	s := NewScheduler()
	fired := false
	h := s.After(1, "", func(float64) { fired = true })

	assert.True(t, s.Cancel(h))
	assert.False(t, s.Cancel(h))
	s.Advance(5)
	assert.False(t, fired)
}

func TestCancelGroup(t *testing.T) {
	s := NewScheduler()
	var fired []Group
	for _, g := range []Group{"wave-1", "wave-1", "wave-2"} {
		g := g
		s.After(1, g, func(float64) { fired = append(fired, g) })
	}
	assert.Equal(t, 2, s.Pending("wave-1"))

	assert.Equal(t, 2, s.CancelGroup("wave-1"))
	s.Advance(1)
	assert.Equal(t, []Group{"wave-2"}, fired)
}

func TestAdvance_CallbackSchedulesAnother(t *testing.T) {
	s := NewScheduler()
	var times []float64
	s.At(1, "", func(now float64) {
		times = append(times, now)
		s.At(now, "", func(now float64) { times = append(times, now) })
		s.After(10, "", func(now float64) { times = append(times, now) })
	})

	s.Advance(1)
	assert.Equal(t, []float64{1, 1}, times)
	assert.Equal(t, 1, s.Len())
}

func TestAdvance_CallbackCancelsSibling(t *testing.T) {
	s := NewScheduler()
	var second Handle
	fired := 0
	s.At(1, "", func(float64) {
		fired++
		s.Cancel(second)
	})
	second = s.At(1, "", func(float64) { fired++ })

	s.Advance(1)
	assert.Equal(t, 1, fired)
}

func TestAdvanceTo_NeverGoesBack(t *testing.T) {
	s := NewScheduler()
	s.AdvanceTo(5)
	s.AdvanceTo(3)
	assert.Equal(t, 5.0, s.Now())

	fired := false
	s.At(4, "", func(float64) { fired = true })
	s.AdvanceTo(5)
	assert.True(t, fired, "callbacks scheduled in the past fire on the next advance")
}
