package clock

import (
	"sync"
	"time"
)

// Virtual is a Scheduler driven by Advance instead of wall time. Callbacks
// run synchronously on the goroutine calling Advance.
type Virtual struct {
	mu     sync.Mutex
	now    time.Duration
	seq    uint64
	timers []*virtualTimer
}

type virtualTimer struct {
	v    *Virtual
	when time.Duration
	seq  uint64
	f    func()
	done bool
}

func (t *virtualTimer) Stop() bool {
	t.v.mu.Lock()
	defer t.v.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	t.v.remove(t)
	return true
}

func NewVirtual() *Virtual {
	return &Virtual{}
}

func (v *Virtual) AfterFunc(d time.Duration, f func()) Timer {
	v.mu.Lock()
	defer v.mu.Unlock()

	if d < 0 {
		d = 0
	}
	v.seq++
	t := &virtualTimer{v: v, when: v.now + d, seq: v.seq, f: f}
	v.timers = append(v.timers, t)
	return t
}

// Advance moves virtual time forward by d, running every callback that falls
// due on the way in deadline order. Callbacks scheduled by those callbacks
// also run if they fall inside the window.
func (v *Virtual) Advance(d time.Duration) {
	v.mu.Lock()
	target := v.now + d
	for {
		t := v.earliest(target)
		if t == nil {
			break
		}
		t.done = true
		v.remove(t)
		v.now = t.when

		v.mu.Unlock()
		t.f()
		v.mu.Lock()
	}
	v.now = target
	v.mu.Unlock()
}

// Now returns the virtual time elapsed since the clock was created.
func (v *Virtual) Now() time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.now
}

// Pending returns the number of armed timers.
func (v *Virtual) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.timers)
}

func (v *Virtual) earliest(limit time.Duration) *virtualTimer {
	var found *virtualTimer
	for _, t := range v.timers {
		if t.when > limit {
			continue
		}
		if found == nil || t.when < found.when || (t.when == found.when && t.seq < found.seq) {
			found = t
		}
	}
	return found
}

func (v *Virtual) remove(t *virtualTimer) {
	for i, candidate := range v.timers {
		if candidate == t {
			v.timers = append(v.timers[:i], v.timers[i+1:]...)
			return
		}
	}
}
