// Package chattask enforces the single-writer rule for LLM work: at most
// one in-flight task per session. A new task for a session cancels the
// previous one and awaits its teardown before starting.
package chattask

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrShuttingDown is returned by Start after Shutdown has begun.
var ErrShuttingDown = errors.New("chat task manager is shutting down")

type task struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Manager is the process-wide registry of in-flight chat tasks.
type Manager struct {
	mu      sync.Mutex
	tasks   map[string]*task
	stopped bool
	wg      sync.WaitGroup
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{tasks: make(map[string]*task)}
}

// Start runs fn on its own goroutine with a fresh cancelable context. If a
// task is already in flight for sessionID it is canceled and awaited first.
func (m *Manager) Start(sessionID string, fn func(ctx context.Context)) error {
	var t *task
	for {
		m.mu.Lock()
		if m.stopped {
			m.mu.Unlock()
			return ErrShuttingDown
		}
		existing := m.tasks[sessionID]
		if existing == nil {
			ctx, cancel := context.WithCancel(context.Background())
			t = &task{cancel: cancel, done: make(chan struct{})}
			m.tasks[sessionID] = t
			m.wg.Add(1)
			m.mu.Unlock()

			go m.run(sessionID, t, ctx, fn)
			return nil
		}
		m.mu.Unlock()

		existing.cancel()
		<-existing.done
	}
}

func (m *Manager) run(sessionID string, t *task, ctx context.Context, fn func(ctx context.Context)) {
	defer func() {
		t.cancel()
		m.mu.Lock()
		if m.tasks[sessionID] == t {
			delete(m.tasks, sessionID)
		}
		m.mu.Unlock()
		close(t.done)
		m.wg.Done()
	}()
	fn(ctx)
}

// Cancel signals the session's task and awaits its teardown. Returns false
// when no task was in flight.
func (m *Manager) Cancel(sessionID string) bool {
	m.mu.Lock()
	t := m.tasks[sessionID]
	m.mu.Unlock()
	if t == nil {
		return false
	}
	t.cancel()
	<-t.done
	return true
}

// Active reports whether a task is in flight for the session.
func (m *Manager) Active(sessionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tasks[sessionID] != nil
}

// Shutdown cancels every task and waits up to grace for them to finish.
// Returns false if the grace period elapsed with tasks still running.
func (m *Manager) Shutdown(grace time.Duration) bool {
	m.mu.Lock()
	m.stopped = true
	for _, t := range m.tasks {
		t.cancel()
	}
	m.mu.Unlock()

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(grace):
		return false
	}
}
