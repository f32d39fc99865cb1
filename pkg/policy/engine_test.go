package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/infrallm/infrallm/ent"
)

func basicPolicy() *ent.AccessPolicy {
	return &ent.AccessPolicy{
		ID:                     "p1",
		AllowedCommandPatterns: []string{"^ls.*"},
		DeniedCommandPatterns:  []string{"^rm.*"},
		IsEnabled:              true,
	}
}

func TestEvaluateDeniedPatternWins(t *testing.T) {
	d := Evaluate([]*ent.AccessPolicy{basicPolicy()}, "rm -rf /")
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonDeniedPattern, d.Reason)
	assert.Equal(t, "^rm.*", d.MatchedPattern)
}

func TestEvaluateAllowedPattern(t *testing.T) {
	d := Evaluate([]*ent.AccessPolicy{basicPolicy()}, "ls -la")
	assert.True(t, d.Allowed)
	assert.Equal(t, "^ls.*", d.MatchedPattern)
	assert.False(t, d.RequiresApproval)
}

func TestEvaluateNotInAllowlist(t *testing.T) {
	d := Evaluate([]*ent.AccessPolicy{basicPolicy()}, "cat /etc/passwd")
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonNotInAllowlist, d.Reason)
}

func TestEvaluateNoPolicies(t *testing.T) {
	d := Evaluate(nil, "ls")
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonNoPolicy, d.Reason)
}

func TestEvaluateDenyWinsAcrossPolicies(t *testing.T) {
	permissive := &ent.AccessPolicy{
		ID:                     "p2",
		AllowedCommandPatterns: []string{".*"},
		IsEnabled:              true,
	}
	d := Evaluate([]*ent.AccessPolicy{permissive, basicPolicy()}, "rm -rf /tmp/x")
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonDeniedPattern, d.Reason)
}

func TestEvaluateRequiresApprovalFromAnyPolicy(t *testing.T) {
	approver := &ent.AccessPolicy{
		ID:              "p3",
		RequireApproval: true,
		IsEnabled:       true,
	}
	d := Evaluate([]*ent.AccessPolicy{basicPolicy(), approver}, "ls")
	assert.True(t, d.Allowed)
	assert.True(t, d.RequiresApproval)
}

func TestEvaluateFullMatchOnly(t *testing.T) {
	p := &ent.AccessPolicy{
		ID:                     "p4",
		AllowedCommandPatterns: []string{"uptime"},
		IsEnabled:              true,
	}
	d := Evaluate([]*ent.AccessPolicy{p}, "uptime")
	assert.True(t, d.Allowed)

	// A bare pattern must match the whole command, not a substring.
	d = Evaluate([]*ent.AccessPolicy{p}, "uptime && rm -rf /")
	assert.False(t, d.Allowed)
}

func TestEvaluateInvalidPatternsNonMatching(t *testing.T) {
	p := &ent.AccessPolicy{
		ID:                     "p5",
		AllowedCommandPatterns: []string{"[invalid", "^ls.*"},
		DeniedCommandPatterns:  []string{"(also[broken"},
		IsEnabled:              true,
	}
	d := Evaluate([]*ent.AccessPolicy{p}, "ls -la")
	assert.True(t, d.Allowed)
	assert.Contains(t, d.InvalidPatterns, "(also[broken")
	assert.Contains(t, d.InvalidPatterns, "[invalid")
}

func TestEvaluateTightestConcurrencyCap(t *testing.T) {
	loose := &ent.AccessPolicy{
		ID:                     "p6",
		AllowedCommandPatterns: []string{".*"},
		MaxConcurrentCommands:  8,
		IsEnabled:              true,
	}
	tight := &ent.AccessPolicy{
		ID:                    "p7",
		MaxConcurrentCommands: 2,
		IsEnabled:             true,
	}
	d := Evaluate([]*ent.AccessPolicy{loose, tight}, "ls")
	assert.True(t, d.Allowed)
	assert.Equal(t, 2, d.MaxConcurrent)
	assert.Equal(t, "p7", d.CapPolicyID)
}

func TestAcquireReleaseSlot(t *testing.T) {
	e := NewEngine(nil)

	assert.True(t, e.AcquireSlot("u1", "p1", 2))
	assert.True(t, e.AcquireSlot("u1", "p1", 2))
	assert.False(t, e.AcquireSlot("u1", "p1", 2))

	e.ReleaseSlot("u1", "p1")
	assert.True(t, e.AcquireSlot("u1", "p1", 2))
}

func TestAcquireSlotScopedPerPolicy(t *testing.T) {
	e := NewEngine(nil)

	// Each policy has its own budget; saturating one doesn't spend the
	// other's, and users don't share budgets either.
	assert.True(t, e.AcquireSlot("u1", "p1", 1))
	assert.False(t, e.AcquireSlot("u1", "p1", 1))
	assert.True(t, e.AcquireSlot("u1", "p2", 1))
	assert.True(t, e.AcquireSlot("u2", "p1", 1))

	e.ReleaseSlot("u1", "p1")
	assert.True(t, e.AcquireSlot("u1", "p1", 1))
}

func TestAcquireSlotUnlimited(t *testing.T) {
	e := NewEngine(nil)
	for range 10 {
		assert.True(t, e.AcquireSlot("u1", "p1", 0))
	}
}
