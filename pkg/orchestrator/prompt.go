package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/infrallm/infrallm/ent"
	policy "github.com/infrallm/infrallm/ent/accesspolicy"
	"github.com/infrallm/infrallm/ent/host"
	"github.com/infrallm/infrallm/ent/hostnote"
	"github.com/infrallm/infrallm/ent/promptsettings"
	"github.com/infrallm/infrallm/ent/userpolicy"
	"github.com/infrallm/infrallm/pkg/llm"
)

const basePrompt = `You are an infrastructure assistant operating remote hosts over SSH on behalf of the user.

Rules:
- Only run commands through the run_command tool. Every command is policy-checked and audited.
- If a command is denied by policy, explain the denial to the user; do not try to work around it.
- Prefer read-only diagnostics before any mutating command.
- Record durable host knowledge with update_host_note so future conversations benefit.
- Be concise. Summarize command output instead of echoing it verbatim.`

// noteExcerptLen caps how much of a host note appears in the prompt.
const noteExcerptLen = 200

// loadPromptSettings returns the user's prompt settings, or nil when none
// are stored.
func (o *Orchestrator) loadPromptSettings(ctx context.Context, sess *ent.Session) *ent.PromptSettings {
	settings, err := o.client.PromptSettings.Query().
		Where(
			promptsettings.OrganizationID(sess.OrganizationID),
			promptsettings.UserID(sess.UserID),
		).
		Only(ctx)
	if err != nil {
		return nil
	}
	return settings
}

// buildSystemPrompt assembles the per-turn system prompt: base rules, the
// user's prompt settings, host inventory with note excerpts, a summary of
// the policies that apply to the user, and the MCP tool catalog.
func (o *Orchestrator) buildSystemPrompt(ctx context.Context, sess *ent.Session, settings *ent.PromptSettings, tools []llm.ToolDefinition) string {
	var sb strings.Builder
	sb.WriteString(basePrompt)

	if settings != nil {
		if settings.SystemPrompt != "" {
			sb.WriteString("\n\n## Operator instructions\n")
			sb.WriteString(settings.SystemPrompt)
		}
		if settings.PersonalizationPrompt != "" {
			sb.WriteString("\n\n## User preferences\n")
			sb.WriteString(settings.PersonalizationPrompt)
		}
	}

	o.writeHostInventory(ctx, &sb, sess)
	o.writePolicySummary(ctx, &sb, sess)

	var mcpNames []string
	for _, tool := range tools {
		if strings.HasPrefix(tool.Name, "mcp__") {
			mcpNames = append(mcpNames, tool.Name)
		}
	}
	if len(mcpNames) > 0 {
		sb.WriteString("\n\n## External tools\n")
		sb.WriteString("Additional MCP tools available: ")
		sb.WriteString(strings.Join(mcpNames, ", "))
	}

	return sb.String()
}

func (o *Orchestrator) writeHostInventory(ctx context.Context, sb *strings.Builder, sess *ent.Session) {
	query := o.client.Host.Query().
		Where(host.OrganizationID(sess.OrganizationID))
	if len(sess.HostIds) > 0 {
		query = query.Where(host.IDIn(sess.HostIds...))
	}
	hosts, err := query.Order(ent.Asc(host.FieldName)).All(ctx)
	if err != nil || len(hosts) == 0 {
		return
	}

	notes := make(map[string]string)
	rows, err := o.client.HostNote.Query().
		Where(hostnote.OrganizationID(sess.OrganizationID)).
		All(ctx)
	if err == nil {
		for _, n := range rows {
			notes[n.HostID] = n.Content
		}
	}

	sb.WriteString("\n\n## Hosts\n")
	for _, h := range hosts {
		fmt.Fprintf(sb, "- %s (id=%s, %s", h.Name, h.ID, h.Hostname)
		if h.Environment != "" {
			fmt.Fprintf(sb, ", env=%s", h.Environment)
		}
		if len(h.Tags) > 0 {
			fmt.Fprintf(sb, ", tags=%s", strings.Join(h.Tags, ","))
		}
		fmt.Fprintf(sb, ", status=%s)", h.Status)
		if note, ok := notes[h.ID]; ok && note != "" {
			fmt.Fprintf(sb, " - note: %s", excerpt(note, noteExcerptLen))
		}
		sb.WriteString("\n")
	}
}

func (o *Orchestrator) writePolicySummary(ctx context.Context, sb *strings.Builder, sess *ent.Session) {
	assignments, err := o.client.UserPolicy.Query().
		Where(
			userpolicy.OrganizationID(sess.OrganizationID),
			userpolicy.UserID(sess.UserID),
		).
		All(ctx)
	if err != nil || len(assignments) == 0 {
		sb.WriteString("\n\n## Policies\nNo policies are assigned; every command will be denied.\n")
		return
	}

	policyIDs := make([]string, 0, len(assignments))
	for _, a := range assignments {
		policyIDs = append(policyIDs, a.PolicyID)
	}
	policies, err := o.client.AccessPolicy.Query().
		Where(
			policy.IDIn(policyIDs...),
			policy.IsEnabled(true),
		).
		All(ctx)
	if err != nil || len(policies) == 0 {
		sb.WriteString("\n\n## Policies\nNo policies are assigned; every command will be denied.\n")
		return
	}

	sb.WriteString("\n\n## Policies\nCommands are matched against these anchored regex policies:\n")
	for _, p := range policies {
		fmt.Fprintf(sb, "- %s: allowed=[%s]",
			p.Name, strings.Join(p.AllowedCommandPatterns, ", "))
		if len(p.DeniedCommandPatterns) > 0 {
			fmt.Fprintf(sb, " denied=[%s]", strings.Join(p.DeniedCommandPatterns, ", "))
		}
		if p.RequireApproval {
			sb.WriteString(" (requires approval: commands are denied)")
		}
		sb.WriteString("\n")
	}
}

// excerpt flattens newlines and truncates to at most max bytes without
// splitting a multi-byte rune.
func excerpt(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
