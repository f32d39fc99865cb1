package sshpool

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"golang.org/x/crypto/ssh"
)

// MaxOutputBytes caps captured stdout and stderr per command.
const MaxOutputBytes = 1 << 20

// TruncationMarker is appended when output exceeds MaxOutputBytes.
const TruncationMarker = "\n...[output truncated]"

// ErrCommandTimeout is returned when a command exceeds its deadline. The
// remote process is signaled before the error surfaces.
var ErrCommandTimeout = errors.New("command timed out")

// RunResult is the outcome of one remote command. A non-zero exit code is
// not an error; it is carried here.
type RunResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Run leases a client, executes command with the given timeout, and returns
// captured output. Output streams are capped at MaxOutputBytes each.
func (p *Pool) Run(ctx context.Context, hostID, command string, timeout time.Duration) (*RunResult, error) {
	return p.Stream(ctx, hostID, command, timeout, nil)
}

// Stream behaves like Run but additionally forwards stdout chunks to
// onChunk as they arrive. Cancellation or timeout signals the remote
// process and discards the client.
func (p *Pool) Stream(ctx context.Context, hostID, command string, timeout time.Duration, onChunk func(string)) (*RunResult, error) {
	lease, err := p.Get(ctx, hostID)
	if err != nil {
		return nil, err
	}

	result, runErr := runOnLease(ctx, lease, command, timeout, onChunk)
	if runErr != nil {
		p.Discard(lease)
		return nil, runErr
	}
	p.Release(lease)
	return result, nil
}

func runOnLease(ctx context.Context, lease *Lease, command string, timeout time.Duration, onChunk func(string)) (*RunResult, error) {
	session, err := lease.Client.NewSession()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer session.Close()

	stdoutPipe, err := session.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	stderr := newCappedBuffer(MaxOutputBytes)
	session.Stderr = stderr

	start := time.Now()
	if err := session.Start(command); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	// Watchdog kills the remote process on cancellation or deadline,
	// which unblocks the read loop below.
	watchdogDone := make(chan struct{})
	defer close(watchdogDone)
	var timedOut, canceled atomic.Bool
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	go func() {
		select {
		case <-ctx.Done():
			canceled.Store(true)
		case <-timer.C:
			timedOut.Store(true)
		case <-watchdogDone:
			return
		}
		_ = session.Signal(ssh.SIGKILL)
		_ = session.Close()
	}()

	stdout := newCappedBuffer(MaxOutputBytes)
	buf := make([]byte, 4096)
	for {
		n, readErr := stdoutPipe.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			_, _ = stdout.Write(chunk)
			if onChunk != nil {
				onChunk(string(chunk))
			}
		}
		if readErr != nil {
			if readErr != io.EOF && !timedOut.Load() && !canceled.Load() {
				return nil, fmt.Errorf("%w: read stdout: %v", ErrUnreachable, readErr)
			}
			break
		}
	}

	waitErr := session.Wait()
	duration := time.Since(start)

	switch {
	case canceled.Load():
		return nil, ctx.Err()
	case timedOut.Load():
		return nil, fmt.Errorf("%w after %s", ErrCommandTimeout, timeout)
	}

	exitCode := 0
	if waitErr != nil {
		var exitErr *ssh.ExitError
		if errors.As(waitErr, &exitErr) {
			exitCode = exitErr.ExitStatus()
		} else {
			return nil, fmt.Errorf("%w: %v", ErrUnreachable, waitErr)
		}
	}

	return &RunResult{
		ExitCode: exitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: duration,
	}, nil
}

// cappedBuffer accumulates up to max bytes and appends a truncation marker
// once the cap is exceeded. Further writes are counted but dropped.
type cappedBuffer struct {
	max       int
	buf       []byte
	truncated bool
}

func newCappedBuffer(max int) *cappedBuffer {
	return &cappedBuffer{max: max}
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	if b.truncated {
		return len(p), nil
	}
	room := b.max - len(b.buf)
	if len(p) <= room {
		b.buf = append(b.buf, p...)
		return len(p), nil
	}
	b.buf = append(b.buf, p[:room]...)
	b.truncated = true
	return len(p), nil
}

func (b *cappedBuffer) String() string {
	if b.truncated {
		return string(b.buf) + TruncationMarker
	}
	return string(b.buf)
}
