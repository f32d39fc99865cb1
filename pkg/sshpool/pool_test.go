package sshpool

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
)

const (
	testUser     = "test-user"
	testPassword = "secret"
)

// startTestServer runs a minimal in-process SSH server that echoes the exec
// command back as stdout. "false" exits 1; "sleep" never exits on its own.
func startTestServer(t *testing.T) (addr string, dials *atomic.Int32) {
	t.Helper()

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	signer, err := ssh.NewSignerFromKey(priv)
	require.NoError(t, err)

	config := &ssh.ServerConfig{
		PasswordCallback: func(_ ssh.ConnMetadata, pass []byte) (*ssh.Permissions, error) {
			if string(pass) == testPassword {
				return nil, nil
			}
			return nil, fmt.Errorf("wrong password")
		},
	}
	config.AddHostKey(signer)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	dials = new(atomic.Int32)
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			dials.Add(1)
			go serveTestConn(conn, config)
		}
	}()

	return ln.Addr().String(), dials
}

func serveTestConn(conn net.Conn, config *ssh.ServerConfig) {
	_, chans, reqs, err := ssh.NewServerConn(conn, config)
	if err != nil {
		return
	}
	go ssh.DiscardRequests(reqs)

	for newCh := range chans {
		if newCh.ChannelType() != "session" {
			_ = newCh.Reject(ssh.UnknownChannelType, "unsupported")
			continue
		}
		ch, chReqs, err := newCh.Accept()
		if err != nil {
			continue
		}
		go func() {
			for req := range chReqs {
				if req.Type != "exec" {
					_ = req.Reply(false, nil)
					continue
				}
				var payload struct{ Command string }
				_ = ssh.Unmarshal(req.Payload, &payload)
				_ = req.Reply(true, nil)
				go func() {
					if payload.Command == "sleep" {
						return // never exits; client must kill
					}
					_, _ = io.WriteString(ch, payload.Command+"\n")
					status := struct{ Status uint32 }{}
					if payload.Command == "false" {
						status.Status = 1
					}
					_, _ = ch.SendRequest("exit-status", false, ssh.Marshal(&status))
					_ = ch.Close()
				}()
			}
		}()
	}
}

func newTestPool(t *testing.T, addr string, maxPerHost int) *Pool {
	t.Helper()
	resolve := func(_ context.Context, hostID string) (*Target, error) {
		return &Target{
			HostID:          hostID,
			Addr:            addr,
			User:            testUser,
			Password:        testPassword,
			InsecureHostKey: true,
		}, nil
	}
	p := NewPool(resolve, Config{
		ConnectTimeout: 5 * time.Second,
		MaxPerHost:     maxPerHost,
		IdleTimeout:    time.Minute,
	})
	t.Cleanup(p.Close)
	return p
}

func TestRunCapturesOutput(t *testing.T) {
	addr, _ := startTestServer(t)
	p := newTestPool(t, addr, 4)

	result, err := p.Run(context.Background(), "h1", "echo ok", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "echo ok\n", result.Stdout)
	assert.Empty(t, result.Stderr)
	assert.Greater(t, result.Duration, time.Duration(0))
}

func TestRunNonZeroExitIsNotAnError(t *testing.T) {
	addr, _ := startTestServer(t)
	p := newTestPool(t, addr, 4)

	result, err := p.Run(context.Background(), "h1", "false", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 1, result.ExitCode)
}

func TestPoolReusesClients(t *testing.T) {
	addr, dials := startTestServer(t)
	p := newTestPool(t, addr, 4)

	for range 3 {
		_, err := p.Run(context.Background(), "h1", "echo ok", 5*time.Second)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), dials.Load())
}

func TestPoolBoundsLeasesPerHost(t *testing.T) {
	addr, _ := startTestServer(t)
	p := newTestPool(t, addr, 1)

	lease, err := p.Get(context.Background(), "h1")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, err = p.Get(ctx, "h1")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	p.Release(lease)
	lease2, err := p.Get(context.Background(), "h1")
	require.NoError(t, err)
	p.Release(lease2)
}

func TestInvalidateDropsCachedClients(t *testing.T) {
	addr, dials := startTestServer(t)
	p := newTestPool(t, addr, 4)

	_, err := p.Run(context.Background(), "h1", "echo ok", 5*time.Second)
	require.NoError(t, err)
	require.Equal(t, int32(1), dials.Load())

	p.Invalidate("h1")

	_, err = p.Run(context.Background(), "h1", "echo ok", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, int32(2), dials.Load())
}

func TestRunTimeoutKillsCommand(t *testing.T) {
	addr, _ := startTestServer(t)
	p := newTestPool(t, addr, 4)

	_, err := p.Run(context.Background(), "h1", "sleep", 200*time.Millisecond)
	assert.ErrorIs(t, err, ErrCommandTimeout)
}

func TestRunCanceled(t *testing.T) {
	addr, _ := startTestServer(t)
	p := newTestPool(t, addr, 4)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	_, err := p.Run(ctx, "h1", "sleep", 10*time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStreamForwardsChunks(t *testing.T) {
	addr, _ := startTestServer(t)
	p := newTestPool(t, addr, 4)

	var streamed string
	result, err := p.Stream(context.Background(), "h1", "echo ok", 5*time.Second, func(chunk string) {
		streamed += chunk
	})
	require.NoError(t, err)
	assert.Equal(t, result.Stdout, streamed)
}

func TestTestConnection(t *testing.T) {
	addr, _ := startTestServer(t)
	p := newTestPool(t, addr, 4)

	require.NoError(t, p.TestConnection(context.Background(), "h1"))
}

func TestUnreachableHost(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	p := newTestPool(t, addr, 4)
	_, err = p.Run(context.Background(), "h1", "echo ok", 5*time.Second)
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestBadCredential(t *testing.T) {
	addr, _ := startTestServer(t)
	resolve := func(_ context.Context, hostID string) (*Target, error) {
		return &Target{
			HostID:          hostID,
			Addr:            addr,
			User:            testUser,
			Password:        "wrong",
			InsecureHostKey: true,
		}, nil
	}
	p := NewPool(resolve, Config{ConnectTimeout: 5 * time.Second, MaxPerHost: 4, IdleTimeout: time.Minute})
	t.Cleanup(p.Close)

	_, err := p.Get(context.Background(), "h1")
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestCappedBufferTruncates(t *testing.T) {
	b := newCappedBuffer(8)
	_, _ = b.Write([]byte("12345"))
	_, _ = b.Write([]byte("6789"))
	assert.Equal(t, "12345678"+TruncationMarker, b.String())
}
