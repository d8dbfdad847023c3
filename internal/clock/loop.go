package clock

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/scheerer/traffic-light/internal/logging"
	"go.uber.org/zap"
)

var logger = logging.New("clock")

// Loop runs queued callbacks sequentially on the goroutine calling Run.
type Loop struct {
	mu     sync.Mutex
	queue  []*loopTask
	wakeup chan struct{}

	running atomic.Bool
}

type loopTask struct {
	f         func()
	timer     *time.Timer
	cancelled atomic.Bool
}

// Stop cancels the task. A task that already fired but is still queued is
// skipped by Run.
func (t *loopTask) Stop() bool {
	if t.cancelled.Swap(true) {
		return false
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	return true
}

func NewLoop() *Loop {
	return &Loop{
		wakeup: make(chan struct{}, 1),
	}
}

// AfterFunc queues f onto the loop once d has elapsed.
func (l *Loop) AfterFunc(d time.Duration, f func()) Timer {
	t := &loopTask{f: f}
	t.timer = time.AfterFunc(d, func() { l.enqueue(t) })
	return t
}

// Post queues f to run on the loop as soon as possible.
func (l *Loop) Post(f func()) {
	l.enqueue(&loopTask{f: f})
}

func (l *Loop) enqueue(t *loopTask) {
	if t.cancelled.Load() {
		return
	}

	l.mu.Lock()
	l.queue = append(l.queue, t)
	l.mu.Unlock()

	select {
	case l.wakeup <- struct{}{}:
	default:
	}
}

// Run executes queued callbacks until ctx is done. Callbacks still queued when
// ctx ends are dropped.
func (l *Loop) Run(ctx context.Context) {
	if !l.running.CompareAndSwap(false, true) {
		logger.Warn("Loop is already running")
		return
	}
	defer l.running.Store(false)

	for {
		for {
			t := l.next()
			if t == nil {
				break
			}
			if ctx.Err() != nil {
				return
			}
			l.run(t)
		}

		select {
		case <-ctx.Done():
			return
		case <-l.wakeup:
		}
	}
}

// Len returns the number of callbacks waiting to run.
func (l *Loop) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

func (l *Loop) next() *loopTask {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.queue) == 0 {
		return nil
	}
	t := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return t
}

func (l *Loop) run(t *loopTask) {
	// a task is consumed by running it, so a later Stop has nothing to prevent
	if t.cancelled.Swap(true) {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logger.With(zap.Any("panic", r)).Error("Recovered from panic in loop callback")
		}
	}()
	t.f()
}
