// Package eventloop runs every game event on one goroutine, in the order the
// events were submitted.
package eventloop

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vytor/letterflash/internal/logger"
)

// ErrStopped is returned when submitting to a loop that has been stopped.
var ErrStopped = errors.New("event loop stopped")

// Loop is a single-worker queue of closures. Nothing submitted to it runs
// concurrently with anything else submitted to it.
type Loop struct {
	events   chan func()
	done     chan struct{}
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	stopOnce sync.Once
	log      *logger.Logger
}

// New creates a loop with a buffered queue of queueSize events.
func New(queueSize int) *Loop {
	if queueSize <= 0 {
		queueSize = 64
	}
	log := logger.Default().WithPrefix("event-loop")
	log.Debug("creating event loop with queue size %d", queueSize)
	return &Loop{
		events: make(chan func(), queueSize),
		done:   make(chan struct{}),
		log:    log,
	}
}

// Start launches the loop goroutine. It exits when ctx is cancelled or Stop
// is called.
func (l *Loop) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.log.Info("starting event loop")

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		for {
			select {
			case <-ctx.Done():
				l.log.Debug("event loop shutting down (context cancelled)")
				return
			case <-l.done:
				l.log.Debug("event loop shutting down (stopped)")
				return
			case fn := <-l.events:
				l.run(fn)
			}
		}
	}()
}

func (l *Loop) run(fn func()) {
	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			l.log.Error("event panicked after %v: %v", time.Since(start), rec)
		}
	}()
	fn()
}

// Post queues fn without waiting for it to run. It reports false when the
// loop is stopped. Timer callbacks enter the loop this way.
func (l *Loop) Post(fn func()) bool {
	if l.stopped() {
		return false
	}
	select {
	case l.events <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Do queues fn and waits until it has run. It must not be called from inside
// the loop.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	wrapped := func() {
		defer close(finished)
		fn()
	}
	if l.stopped() {
		return ErrStopped
	}

	select {
	case l.events <- wrapped:
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		return ErrStopped
	}

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		return ErrStopped
	}
}

// Stop ends the loop and waits for the running event to finish. Queued
// events that have not started are dropped.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		l.log.Info("stopping event loop")
		close(l.done)
		if l.cancel != nil {
			l.cancel()
		}
		l.wg.Wait()
		l.log.Info("event loop stopped")
	})
}

func (l *Loop) stopped() bool {
	select {
	case <-l.done:
		return true
	default:
		return false
	}
}

// QueueSize returns the number of events waiting to run.
func (l *Loop) QueueSize() int {
	return len(l.events)
}
