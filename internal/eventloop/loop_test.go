package eventloop_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/letterflash/internal/eventloop"
)

func TestLoop_RunsEventsInOrder(t *testing.T) {
	l := eventloop.New(16)
	l.Start(context.Background())
	defer l.Stop()

	var got []int
	for i := 0; i < 10; i++ {
		i := i
		require.True(t, l.Post(func() { got = append(got, i) }))
	}
	require.NoError(t, l.Do(context.Background(), func() {}))

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestLoop_SerializesConcurrentSubmitters(t *testing.T) {
	l := eventloop.New(4)
	l.Start(context.Background())
	defer l.Stop()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = l.Do(context.Background(), func() { counter++ })
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, counter)
}

func TestLoop_SurvivesPanic(t *testing.T) {
	l := eventloop.New(4)
	l.Start(context.Background())
	defer l.Stop()

	require.NoError(t, l.Do(context.Background(), func() { panic("boom") }))

	ran := false
	require.NoError(t, l.Do(context.Background(), func() { ran = true }))
	assert.True(t, ran)
}

func TestLoop_StoppedRejectsWork(t *testing.T) {
	l := eventloop.New(1)
	l.Start(context.Background())
	l.Stop()
	l.Stop()

	assert.ErrorIs(t, l.Do(context.Background(), func() {}), eventloop.ErrStopped)
	assert.False(t, l.Post(func() {}))
}

func TestLoop_DoHonoursContext(t *testing.T) {
	l := eventloop.New(1)
	l.Start(context.Background())
	defer l.Stop()

	release := make(chan struct{})
	require.True(t, l.Post(func() { <-release }))
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, l.Do(ctx, func() {}), context.DeadlineExceeded)
}

func TestLoop_QueueSizeCountsPendingEvents(t *testing.T) {
	l := eventloop.New(8)
	assert.Zero(t, l.QueueSize())

	// Not started yet, so events stay queued.
	require.True(t, l.Post(func() {}))
	require.True(t, l.Post(func() {}))
	assert.Equal(t, 2, l.QueueSize())

	l.Start(context.Background())
	defer l.Stop()
	require.NoError(t, l.Do(context.Background(), func() {}))
	assert.Zero(t, l.QueueSize())
}
