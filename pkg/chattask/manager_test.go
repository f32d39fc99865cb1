package chattask

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartRunsTask(t *testing.T) {
	m := NewManager()
	done := make(chan struct{})

	require.NoError(t, m.Start("s1", func(context.Context) {
		close(done)
	}))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task never ran")
	}
}

func TestTaskRemovedOnCompletion(t *testing.T) {
	m := NewManager()
	release := make(chan struct{})

	require.NoError(t, m.Start("s1", func(context.Context) {
		<-release
	}))
	assert.True(t, m.Active("s1"))

	close(release)
	assert.Eventually(t, func() bool { return !m.Active("s1") }, time.Second, 5*time.Millisecond)
}

func TestStartCancelsPreviousTask(t *testing.T) {
	m := NewManager()
	var firstCanceled atomic.Bool
	firstStarted := make(chan struct{})

	require.NoError(t, m.Start("s1", func(ctx context.Context) {
		close(firstStarted)
		<-ctx.Done()
		firstCanceled.Store(true)
	}))
	<-firstStarted

	secondDone := make(chan struct{})
	require.NoError(t, m.Start("s1", func(context.Context) {
		// The previous task must be fully torn down before we run.
		assert.True(t, firstCanceled.Load())
		close(secondDone)
	}))

	select {
	case <-secondDone:
	case <-time.After(time.Second):
		t.Fatal("second task never ran")
	}
}

func TestCancelAwaitsTeardown(t *testing.T) {
	m := NewManager()
	var finished atomic.Bool
	started := make(chan struct{})

	require.NoError(t, m.Start("s1", func(ctx context.Context) {
		close(started)
		<-ctx.Done()
		time.Sleep(20 * time.Millisecond)
		finished.Store(true)
	}))
	<-started

	assert.True(t, m.Cancel("s1"))
	assert.True(t, finished.Load())
	assert.False(t, m.Active("s1"))
}

func TestCancelWithoutTask(t *testing.T) {
	m := NewManager()
	assert.False(t, m.Cancel("missing"))
}

func TestIndependentSessions(t *testing.T) {
	m := NewManager()
	release := make(chan struct{})

	require.NoError(t, m.Start("s1", func(context.Context) { <-release }))
	require.NoError(t, m.Start("s2", func(context.Context) { <-release }))

	assert.True(t, m.Active("s1"))
	assert.True(t, m.Active("s2"))
	close(release)
}

func TestShutdownCancelsAll(t *testing.T) {
	m := NewManager()
	started := make(chan struct{}, 2)

	for _, id := range []string{"s1", "s2"} {
		require.NoError(t, m.Start(id, func(ctx context.Context) {
			started <- struct{}{}
			<-ctx.Done()
		}))
	}
	<-started
	<-started

	assert.True(t, m.Shutdown(time.Second))
	assert.ErrorIs(t, m.Start("s3", func(context.Context) {}), ErrShuttingDown)
}

func TestShutdownGraceExceeded(t *testing.T) {
	m := NewManager()
	started := make(chan struct{})
	release := make(chan struct{})
	defer close(release)

	require.NoError(t, m.Start("s1", func(context.Context) {
		close(started)
		<-release // ignores cancellation
	}))
	<-started

	assert.False(t, m.Shutdown(50*time.Millisecond))
}
