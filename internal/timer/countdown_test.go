package timer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/letterflash/internal/testutil"
	"github.com/vytor/letterflash/internal/timer"
)

type recorder struct {
	ticks    []int
	warnings []bool
	timeouts int
}

func newCountdown(s timer.Scheduler, r *recorder) *timer.Countdown {
	return timer.NewCountdown(s,
		func(left int, warning bool) {
			r.ticks = append(r.ticks, left)
			r.warnings = append(r.warnings, warning)
		},
		func() { r.timeouts++ },
	)
}

func TestCountdown_TicksDownAndFiresOnce(t *testing.T) {
	sched := testutil.NewManualScheduler()
	r := &recorder{}
	c := newCountdown(sched, r)

	c.Start(5)
	assert.True(t, c.Running())
	sched.Advance(4 * time.Second)
	assert.Equal(t, []int{4, 3, 2, 1}, r.ticks)
	assert.Equal(t, []bool{false, true, true, true}, r.warnings)
	assert.Zero(t, r.timeouts)

	sched.Advance(time.Second)
	assert.Equal(t, 1, r.timeouts)
	assert.False(t, c.Running())

	sched.Advance(10 * time.Second)
	assert.Equal(t, 1, r.timeouts, "timeout fires exactly once")
	assert.Zero(t, sched.Pending())
}

func TestCountdown_StopIsIdempotentAndCancels(t *testing.T) {
	sched := testutil.NewManualScheduler()
	r := &recorder{}
	c := newCountdown(sched, r)

	c.Start(3)
	sched.Advance(time.Second)
	c.Stop()
	c.Stop()
	assert.Zero(t, sched.Pending())

	sched.Advance(time.Minute)
	assert.Equal(t, []int{2}, r.ticks)
	assert.Zero(t, r.timeouts)
}

func TestCountdown_RestartDropsPreviousRound(t *testing.T) {
	sched := testutil.NewManualScheduler()
	r := &recorder{}
	c := newCountdown(sched, r)

	c.Start(2)
	sched.Advance(1500 * time.Millisecond)
	c.Start(10)
	sched.Advance(2 * time.Second)

	assert.Zero(t, r.timeouts, "the first round's timer must not expire the second round")
	assert.Equal(t, 8, c.Left())
}

func TestCountdown_PauseKeepsRemainingTime(t *testing.T) {
	sched := testutil.NewManualScheduler()
	r := &recorder{}
	c := newCountdown(sched, r)

	c.Start(6)
	sched.Advance(2 * time.Second)
	c.Pause()
	assert.True(t, c.Paused())
	assert.Zero(t, sched.Pending())

	sched.Advance(time.Hour)
	assert.Equal(t, 4, c.Left())

	c.Resume()
	sched.Advance(4 * time.Second)
	assert.Equal(t, 1, r.timeouts)
}

func TestCountdown_PauseKeepsPartialSecond(t *testing.T) {
	sched := testutil.NewManualScheduler()
	r := &recorder{}
	c := newCountdown(sched, r)

	c.Start(5)
	sched.Advance(1500 * time.Millisecond)
	c.Pause()
	sched.Advance(time.Hour)
	c.Resume()

	sched.Advance(499 * time.Millisecond)
	assert.Equal(t, 4, c.Left())
	sched.Advance(time.Millisecond)
	assert.Equal(t, 3, c.Left())
}

func TestCountdown_FrequentPausesStillExpire(t *testing.T) {
	sched := testutil.NewManualScheduler()
	r := &recorder{}
	c := newCountdown(sched, r)

	c.Start(10)
	for i := 0; i < 12; i++ {
		sched.Advance(900 * time.Millisecond)
		c.Pause()
		c.Resume()
	}
	assert.Equal(t, 1, r.timeouts)
	assert.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, r.ticks)
}

func TestCountdown_StopFromTickCallback(t *testing.T) {
	sched := testutil.NewManualScheduler()
	timeouts := 0
	var c *timer.Countdown
	c = timer.NewCountdown(sched, func(left int, _ bool) {
		if left == 1 {
			c.Stop()
		}
	}, func() { timeouts++ })

	c.Start(3)
	sched.Advance(5 * time.Second)
	assert.Zero(t, timeouts)
	assert.Zero(t, sched.Pending())
}

func TestCountdown_StaleHandleIgnored(t *testing.T) {
	// A real timer can fire after Stop returns; the generation check drops it.
	sched := &leakyScheduler{}
	timeouts := 0
	c := timer.NewCountdown(sched, nil, func() { timeouts++ })

	c.Start(1)
	stale := sched.last
	c.Stop()
	stale()

	assert.Zero(t, timeouts)
}

type leakyScheduler struct {
	last func()
}

type noopHandle struct{}

func (noopHandle) Stop() bool { return false }

func (s *leakyScheduler) AfterFunc(_ time.Duration, f func()) timer.Handle {
	s.last = f
	return noopHandle{}
}

func (s *leakyScheduler) Now() time.Time { return time.Time{} }

func TestRealScheduler_Dispatch(t *testing.T) {
	done := make(chan struct{})
	dispatched := make(chan func(), 1)
	s := timer.RealScheduler{Dispatch: func(f func()) { dispatched <- f }}

	s.AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case f := <-dispatched:
		f()
	case <-time.After(time.Second):
		t.Fatal("callback was not dispatched")
	}
	<-done
}
