// Package policy decides whether a (user, host, command) triple may execute.
//
// Evaluation is deny-first across the union of the user's host-scoped and
// global policy assignments: any denied pattern match wins, then any allowed
// pattern match permits, and a command no policy allows is denied. Patterns
// are regular expressions matched against the full command string.
package policy

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	"github.com/infrallm/infrallm/ent"
	entpolicy "github.com/infrallm/infrallm/ent/accesspolicy"
	"github.com/infrallm/infrallm/ent/userpolicy"
	"github.com/infrallm/infrallm/pkg/models"
)

// Denial reasons surfaced in decisions and audit rows.
const (
	ReasonNoPolicy       = "No policy assigned"
	ReasonDeniedPattern  = "Matches denied pattern"
	ReasonNotInAllowlist = "Not in allowlist"
)

// Decision is the outcome of a command evaluation.
type Decision struct {
	Allowed          bool
	RequiresApproval bool
	Reason           string
	MatchedPattern   string
	// MaxConcurrent is the tightest concurrency cap among applicable
	// policies; 0 means unlimited. CapPolicyID identifies the policy that
	// supplied the cap; slots are scoped per (user, policy).
	MaxConcurrent int
	CapPolicyID   string
	// InvalidPatterns lists patterns that failed to compile. They are
	// treated as non-matching and reported via audit metadata.
	InvalidPatterns []string
}

// Engine evaluates commands against the policies assigned to a user.
type Engine struct {
	client *ent.Client

	mu      sync.Mutex
	running map[string]int // (userID, policyID) -> in-flight command count
}

// NewEngine creates a policy engine backed by the database.
func NewEngine(client *ent.Client) *Engine {
	return &Engine{
		client:  client,
		running: make(map[string]int),
	}
}

// ValidateCommand evaluates command for userID on hostID within orgID.
// The decision never errors on invalid patterns; only lookup failures error.
func (e *Engine) ValidateCommand(ctx context.Context, orgID, userID, hostID, command string) (*Decision, error) {
	assignments, err := e.client.UserPolicy.Query().
		Where(
			userpolicy.OrganizationID(orgID),
			userpolicy.UserID(userID),
			userpolicy.Or(
				userpolicy.HostID(hostID),
				userpolicy.HostIDIsNil(),
			),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load policy assignments: %w", err)
	}

	policyIDs := make([]string, 0, len(assignments))
	for _, a := range assignments {
		policyIDs = append(policyIDs, a.PolicyID)
	}
	if len(policyIDs) == 0 {
		return &Decision{Allowed: false, Reason: ReasonNoPolicy}, nil
	}

	policies, err := e.client.AccessPolicy.Query().
		Where(
			entpolicy.IDIn(policyIDs...),
			entpolicy.IsEnabled(true),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load policies: %w", err)
	}

	return Evaluate(policies, command), nil
}

// Evaluate applies the deny-first decision procedure over a set of enabled
// policies. Exposed separately so single-policy testing shares the semantics.
func Evaluate(policies []*ent.AccessPolicy, command string) *Decision {
	if len(policies) == 0 {
		return &Decision{Allowed: false, Reason: ReasonNoPolicy}
	}

	var invalid []string

	// Deny wins across the union, so check every policy's denies first.
	for _, p := range policies {
		for _, pattern := range p.DeniedCommandPatterns {
			matched, ok := matchFull(pattern, command)
			if !ok {
				invalid = append(invalid, pattern)
				continue
			}
			if matched {
				return &Decision{
					Allowed:         false,
					Reason:          ReasonDeniedPattern,
					MatchedPattern:  pattern,
					InvalidPatterns: invalid,
				}
			}
		}
	}

	allowed := false
	matchedPattern := ""
	requiresApproval := false
	maxConcurrent := 0
	capPolicyID := ""

	for _, p := range policies {
		if p.RequireApproval {
			requiresApproval = true
		}
		if p.MaxConcurrentCommands > 0 &&
			(maxConcurrent == 0 || p.MaxConcurrentCommands < maxConcurrent) {
			maxConcurrent = p.MaxConcurrentCommands
			capPolicyID = p.ID
		}
		if allowed {
			continue
		}
		for _, pattern := range p.AllowedCommandPatterns {
			matched, ok := matchFull(pattern, command)
			if !ok {
				invalid = append(invalid, pattern)
				continue
			}
			if matched {
				allowed = true
				matchedPattern = pattern
				break
			}
		}
	}

	if !allowed {
		return &Decision{Allowed: false, Reason: ReasonNotInAllowlist, InvalidPatterns: invalid}
	}
	return &Decision{
		Allowed:          true,
		RequiresApproval: requiresApproval,
		MatchedPattern:   matchedPattern,
		MaxConcurrent:    maxConcurrent,
		CapPolicyID:      capPolicyID,
		InvalidPatterns:  invalid,
	}
}

// TestCommand evaluates a single policy against a command in isolation.
func (e *Engine) TestCommand(ctx context.Context, orgID, policyID, command string) (*models.PolicyTestResult, error) {
	p, err := e.client.AccessPolicy.Query().
		Where(entpolicy.ID(policyID), entpolicy.OrganizationID(orgID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	d := Evaluate([]*ent.AccessPolicy{p}, command)
	return &models.PolicyTestResult{
		Allowed:          d.Allowed,
		RequiresApproval: d.RequiresApproval,
		MatchedPattern:   d.MatchedPattern,
		Reason:           d.Reason,
	}, nil
}

// AcquireSlot claims a concurrency slot for the user under the given
// policy's cap. Returns false when the cap is already saturated. max of 0
// means unlimited.
func (e *Engine) AcquireSlot(userID, policyID string, max int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	key := slotKey(userID, policyID)
	if max > 0 && e.running[key] >= max {
		return false
	}
	e.running[key]++
	return true
}

// ReleaseSlot returns a previously acquired slot.
func (e *Engine) ReleaseSlot(userID, policyID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	key := slotKey(userID, policyID)
	if e.running[key] > 0 {
		e.running[key]--
	}
	if e.running[key] == 0 {
		delete(e.running, key)
	}
}

func slotKey(userID, policyID string) string {
	return userID + "\x00" + policyID
}

// matchFull reports whether pattern full-matches command. The second return
// is false when the pattern does not compile.
func matchFull(pattern, command string) (matched, ok bool) {
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return false, false
	}
	return re.MatchString(command), true
}
