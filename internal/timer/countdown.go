package timer

import "time"

// WarningThreshold is the number of seconds left at which a countdown flags
// the warning state.
const WarningThreshold = 3

// TickFunc receives the remaining seconds after every tick.
type TickFunc func(timeLeft int, warning bool)

// Countdown ticks once per second from a whole number of seconds and fires
// its timeout callback exactly once when it reaches zero.
//
// Every scheduled tick carries the generation it was scheduled under. Stop,
// Pause and Start cancel the pending handle and bump the generation, so a
// tick that was already in flight when the countdown was stopped is dropped
// instead of acting on the next round.
//
// A Countdown is not safe for concurrent use; callers serialize access.
type Countdown struct {
	sched     Scheduler
	onTick    TickFunc
	onTimeout func()

	left    int
	handle  Handle
	gen     uint64
	running bool
	paused  bool

	// due is when the pending tick fires; rest is what was left of the
	// current second when the countdown was paused.
	due  time.Time
	rest time.Duration
}

// NewCountdown creates a stopped countdown.
func NewCountdown(s Scheduler, onTick TickFunc, onTimeout func()) *Countdown {
	return &Countdown{sched: s, onTick: onTick, onTimeout: onTimeout}
}

// Start (re)starts the countdown from seconds, cancelling any previous run.
func (c *Countdown) Start(seconds int) {
	c.Stop()
	c.left = seconds
	if seconds <= 0 {
		c.expire()
		return
	}
	c.running = true
	c.schedule(time.Second)
}

// Stop cancels the countdown. Calling it again has no effect.
func (c *Countdown) Stop() {
	c.cancel()
	c.running = false
	c.paused = false
}

// Pause suspends a running countdown, keeping the seconds left and the
// unelapsed part of the current second.
func (c *Countdown) Pause() {
	if !c.running {
		return
	}
	c.rest = min(max(c.due.Sub(c.sched.Now()), 0), time.Second)
	c.cancel()
	c.running = false
	c.paused = true
}

// Resume continues a paused countdown.
func (c *Countdown) Resume() {
	if !c.paused {
		return
	}
	c.paused = false
	c.running = true
	c.schedule(c.rest)
}

// Left returns the remaining whole seconds.
func (c *Countdown) Left() int { return c.left }

// Warning reports whether the remaining time is at or below the threshold.
func (c *Countdown) Warning() bool { return c.left <= WarningThreshold }

// Running reports whether a tick is pending.
func (c *Countdown) Running() bool { return c.running }

// Paused reports whether the countdown is suspended.
func (c *Countdown) Paused() bool { return c.paused }

func (c *Countdown) cancel() {
	if c.handle != nil {
		c.handle.Stop()
		c.handle = nil
	}
	c.gen++
}

func (c *Countdown) schedule(d time.Duration) {
	gen := c.gen
	c.due = c.sched.Now().Add(d)
	c.handle = c.sched.AfterFunc(d, func() { c.tick(gen) })
}

func (c *Countdown) tick(gen uint64) {
	if gen != c.gen || !c.running {
		return
	}
	c.handle = nil
	c.left--
	if c.onTick != nil {
		c.onTick(c.left, c.Warning())
	}
	if gen != c.gen || !c.running {
		// stopped from inside onTick
		return
	}
	if c.left <= 0 {
		c.running = false
		c.expire()
		return
	}
	c.schedule(time.Second)
}

func (c *Countdown) expire() {
	c.gen++
	if c.onTimeout != nil {
		c.onTimeout()
	}
}
