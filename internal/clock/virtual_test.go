package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVirtualFiresInDeadlineOrder(t *testing.T) {
	v := NewVirtual()
	var fired []string

	v.AfterFunc(300*time.Millisecond, func() { fired = append(fired, "c") })
	v.AfterFunc(100*time.Millisecond, func() { fired = append(fired, "a") })
	v.AfterFunc(100*time.Millisecond, func() { fired = append(fired, "b") })

	v.Advance(99 * time.Millisecond)
	assert.Empty(t, fired)

	v.Advance(time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, fired)
	assert.Equal(t, 1, v.Pending())

	v.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, fired)
	assert.Equal(t, 1100*time.Millisecond, v.Now())
}

func TestVirtualRunsTimersScheduledInsideWindow(t *testing.T) {
	v := NewVirtual()
	var at []time.Duration

	var tick func()
	tick = func() {
		at = append(at, v.Now())
		v.AfterFunc(time.Second, tick)
	}
	v.AfterFunc(time.Second, tick)

	v.Advance(3500 * time.Millisecond)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 3 * time.Second}, at)
	assert.Equal(t, 1, v.Pending())
}

func TestVirtualZeroDelayFiresOnZeroAdvance(t *testing.T) {
	v := NewVirtual()
	fired := false
	v.AfterFunc(0, func() { fired = true })

	assert.False(t, fired)
	v.Advance(0)
	assert.True(t, fired)
}

func TestVirtualStop(t *testing.T) {
	v := NewVirtual()
	fired := false
	timer := v.AfterFunc(time.Second, func() { fired = true })

	require.True(t, timer.Stop())
	assert.False(t, timer.Stop(), "second stop is a no-op")
	assert.Equal(t, 0, v.Pending())

	v.Advance(2 * time.Second)
	assert.False(t, fired)
}

func TestVirtualStopAfterFire(t *testing.T) {
	v := NewVirtual()
	timer := v.AfterFunc(time.Second, func() {})
	v.Advance(time.Second)

	assert.False(t, timer.Stop())
}
