// Package clock schedules delayed callbacks for widgets that must run on a
// single thread.
//
// Loop is the production scheduler: callbacks armed with AfterFunc are queued
// when their deadline passes and executed one at a time by Run, the way a
// browser event loop runs timeouts. Virtual replaces wall time with an
// explicit Advance so tests and offline renders are deterministic.
package clock

import "time"

// Scheduler arms one-shot callbacks.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending callback. Stop reports whether it prevented the callback
// from running; stopping a fired or stopped timer is a no-op that returns false.
type Timer interface {
	Stop() bool
}
