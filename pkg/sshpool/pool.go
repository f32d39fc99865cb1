// Package sshpool maintains a bounded pool of authenticated SSH clients
// per host. Clients are leased exclusively, reused after release, reaped
// when idle, and invalidated wholesale on host or credential changes.
package sshpool

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

var (
	// ErrUnreachable marks SSH transport failures. Callers update host
	// status when they see it.
	ErrUnreachable = errors.New("host unreachable")

	// ErrNoCredential is returned when a target has no usable auth method.
	ErrNoCredential = errors.New("host has no usable credential")
)

// Target is the resolved connection info for one host. Secrets arrive
// already decrypted and never leave this package.
type Target struct {
	HostID          string
	Addr            string // host:port
	User            string
	Password        string
	PrivateKeyPEM   string
	InsecureHostKey bool
}

// TargetResolver looks up connection info for a host, decrypting its
// credential. Provided by the service layer.
type TargetResolver func(ctx context.Context, hostID string) (*Target, error)

// Config controls pool behavior.
type Config struct {
	ConnectTimeout time.Duration
	MaxPerHost     int
	IdleTimeout    time.Duration
	KnownHostsFile string
}

// Lease is an exclusive claim on one client. Return it with Release, or
// Discard it if the client misbehaved.
type Lease struct {
	HostID string
	Client *ssh.Client
	gen    int
}

type idleClient struct {
	client *ssh.Client
	since  time.Time
}

type hostPool struct {
	sem chan struct{} // bounds leases + dials per host

	mu   sync.Mutex
	gen  int
	idle []idleClient
}

// Pool hands out pooled SSH clients keyed by host ID.
type Pool struct {
	resolve TargetResolver
	cfg     Config

	mu    sync.Mutex
	hosts map[string]*hostPool

	stopReaper chan struct{}
	reaperDone chan struct{}
}

// NewPool creates a pool and starts its idle reaper.
func NewPool(resolve TargetResolver, cfg Config) *Pool {
	if cfg.MaxPerHost <= 0 {
		cfg.MaxPerHost = 4
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = 10 * time.Minute
	}
	p := &Pool{
		resolve:    resolve,
		cfg:        cfg,
		hosts:      make(map[string]*hostPool),
		stopReaper: make(chan struct{}),
		reaperDone: make(chan struct{}),
	}
	go p.reapLoop()
	return p
}

// Get returns an exclusive lease on a ready client, dialing on miss.
// Blocks while the host is at its client cap until a lease frees up or
// ctx is done. Failed dials are never cached.
func (p *Pool) Get(ctx context.Context, hostID string) (*Lease, error) {
	hp := p.hostPool(hostID)

	select {
	case hp.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	hp.mu.Lock()
	if n := len(hp.idle); n > 0 {
		ic := hp.idle[n-1]
		hp.idle = hp.idle[:n-1]
		gen := hp.gen
		hp.mu.Unlock()
		return &Lease{HostID: hostID, Client: ic.client, gen: gen}, nil
	}
	gen := hp.gen
	hp.mu.Unlock()

	client, err := p.dial(ctx, hostID)
	if err != nil {
		<-hp.sem
		return nil, err
	}
	return &Lease{HostID: hostID, Client: client, gen: gen}, nil
}

// Release returns a healthy client to the pool for reuse.
func (p *Pool) Release(lease *Lease) {
	hp := p.hostPool(lease.HostID)
	hp.mu.Lock()
	if hp.gen != lease.gen {
		// Host was invalidated while this lease was out.
		hp.mu.Unlock()
		_ = lease.Client.Close()
	} else {
		hp.idle = append(hp.idle, idleClient{client: lease.Client, since: time.Now()})
		hp.mu.Unlock()
	}
	<-hp.sem
}

// Discard closes a broken client instead of returning it to the pool.
func (p *Pool) Discard(lease *Lease) {
	_ = lease.Client.Close()
	hp := p.hostPool(lease.HostID)
	<-hp.sem
}

// Invalidate closes and removes all cached clients for a host. Called on
// host update/delete or credential rotation. Leases already out are closed
// on release instead of being pooled.
func (p *Pool) Invalidate(hostID string) {
	p.mu.Lock()
	hp, ok := p.hosts[hostID]
	p.mu.Unlock()
	if !ok {
		return
	}

	hp.mu.Lock()
	hp.gen++
	idle := hp.idle
	hp.idle = nil
	hp.mu.Unlock()

	for _, ic := range idle {
		_ = ic.client.Close()
	}
}

// TestConnection leases a client and runs a no-op exec to probe the host.
func (p *Pool) TestConnection(ctx context.Context, hostID string) error {
	lease, err := p.Get(ctx, hostID)
	if err != nil {
		return err
	}

	session, err := lease.Client.NewSession()
	if err != nil {
		p.Discard(lease)
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	_, err = session.CombinedOutput("echo ok")
	_ = session.Close()
	if err != nil {
		p.Discard(lease)
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	p.Release(lease)
	return nil
}

// Close stops the reaper and closes every idle client.
func (p *Pool) Close() {
	close(p.stopReaper)
	<-p.reaperDone

	p.mu.Lock()
	hosts := p.hosts
	p.hosts = make(map[string]*hostPool)
	p.mu.Unlock()

	for _, hp := range hosts {
		hp.mu.Lock()
		hp.gen++
		idle := hp.idle
		hp.idle = nil
		hp.mu.Unlock()
		for _, ic := range idle {
			_ = ic.client.Close()
		}
	}
}

func (p *Pool) hostPool(hostID string) *hostPool {
	p.mu.Lock()
	defer p.mu.Unlock()
	hp, ok := p.hosts[hostID]
	if !ok {
		hp = &hostPool{sem: make(chan struct{}, p.cfg.MaxPerHost)}
		p.hosts[hostID] = hp
	}
	return hp
}

func (p *Pool) dial(ctx context.Context, hostID string) (*ssh.Client, error) {
	target, err := p.resolve(ctx, hostID)
	if err != nil {
		return nil, err
	}
	cfg, err := p.clientConfig(target)
	if err != nil {
		return nil, err
	}

	client, err := ssh.Dial("tcp", target.Addr, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreachable, target.Addr, err)
	}
	return client, nil
}

func (p *Pool) clientConfig(target *Target) (*ssh.ClientConfig, error) {
	var auth []ssh.AuthMethod
	if target.PrivateKeyPEM != "" {
		signer, err := ssh.ParsePrivateKey([]byte(target.PrivateKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("failed to parse private key: %w", err)
		}
		auth = append(auth, ssh.PublicKeys(signer))
	}
	if target.Password != "" {
		auth = append(auth, ssh.Password(target.Password))
	}
	if len(auth) == 0 {
		return nil, ErrNoCredential
	}

	hostKeyCallback := ssh.InsecureIgnoreHostKey()
	if !target.InsecureHostKey {
		cb, err := knownhosts.New(p.cfg.KnownHostsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load known hosts: %w", err)
		}
		hostKeyCallback = cb
	}

	return &ssh.ClientConfig{
		User:            target.User,
		Auth:            auth,
		HostKeyCallback: hostKeyCallback,
		Timeout:         p.cfg.ConnectTimeout,
	}, nil
}

func (p *Pool) reapLoop() {
	defer close(p.reaperDone)

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-p.stopReaper:
			return
		case <-ticker.C:
			p.reapIdle(time.Now())
		}
	}
}

func (p *Pool) reapIdle(now time.Time) {
	p.mu.Lock()
	hosts := make([]*hostPool, 0, len(p.hosts))
	for _, hp := range p.hosts {
		hosts = append(hosts, hp)
	}
	p.mu.Unlock()

	for _, hp := range hosts {
		var expired []idleClient
		hp.mu.Lock()
		kept := hp.idle[:0]
		for _, ic := range hp.idle {
			if now.Sub(ic.since) > p.cfg.IdleTimeout {
				expired = append(expired, ic)
			} else {
				kept = append(kept, ic)
			}
		}
		hp.idle = kept
		hp.mu.Unlock()

		for _, ic := range expired {
			_ = ic.client.Close()
		}
	}
}
