// Package timer provides the cancellable scheduling primitives the game
// runs on, and the per-round countdown built from them.
package timer

import "time"

// Handle cancels a scheduled callback. Stop reports whether the call
// prevented the callback from running.
type Handle interface {
	Stop() bool
}

// Scheduler runs callbacks after a delay and tells the current time.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Handle
	Now() time.Time
}

// RealScheduler schedules on the wall clock. When Dispatch is set, callbacks
// are handed to it instead of running on the timer goroutine, so they can be
// serialized with the rest of the game's events.
type RealScheduler struct {
	Dispatch func(func())
}

func (s RealScheduler) AfterFunc(d time.Duration, f func()) Handle {
	run := f
	if s.Dispatch != nil {
		run = func() { s.Dispatch(f) }
	}
	return time.AfterFunc(d, run)
}

func (RealScheduler) Now() time.Time {
	return time.Now()
}
