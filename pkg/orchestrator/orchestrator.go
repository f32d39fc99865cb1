// Package orchestrator drives multi-turn LLM conversations: prompt
// assembly, the streaming tool-calling loop, message persistence, and
// session cost accounting.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/ent/host"
	"github.com/infrallm/infrallm/ent/hostnote"
	"github.com/infrallm/infrallm/ent/message"
	"github.com/infrallm/infrallm/ent/session"
	"github.com/infrallm/infrallm/pkg/executor"
	"github.com/infrallm/infrallm/pkg/llm"
	"github.com/infrallm/infrallm/pkg/mcp"
	"github.com/infrallm/infrallm/pkg/services"
)

const (
	// MaxToolIterations caps provider round-trips per user turn.
	MaxToolIterations = 25
	// TurnTimeout is the wall-clock cap for one user turn including tools.
	TurnTimeout = 5 * time.Minute

	// CanceledMarker is appended to a partial assistant message when the
	// turn is canceled mid-stream.
	CanceledMarker = "[canceled]"

	// traceResultLimit caps per-tool result size in the stored trace.
	traceResultLimit = 2000
)

// terminationNotice finalizes a turn that hit the iteration cap.
const terminationNotice = "\n\n(The assistant stopped here: this turn reached its tool-call limit. Ask a follow-up to continue.)"

// timeLimitNotice finalizes a turn whose wall-clock deadline expired.
const timeLimitNotice = "\n\n(The assistant stopped here: this turn ran out of time. Ask a follow-up to continue.)"

// CommandRunner executes policy-gated commands. Satisfied by
// *executor.Executor.
type CommandRunner interface {
	Execute(ctx context.Context, req executor.Request) (*executor.Result, error)
}

// ToolRegistry lists and dispatches MCP tools. Satisfied by *mcp.Registry.
type ToolRegistry interface {
	GetToolDefinitions(ctx context.Context, orgID string) ([]llm.ToolDefinition, error)
	Dispatch(ctx context.Context, orgID, name string, args map[string]any) (*mcp.ToolResult, error)
}

// Callbacks carries the streaming hooks for one turn. Either may be nil.
type Callbacks struct {
	OnDelta  func(delta string)          // assistant text as it streams
	OnStatus func(status, detail string) // coarse progress: thinking, tool:<name>, done
}

func (cb Callbacks) delta(s string) {
	if cb.OnDelta != nil {
		cb.OnDelta(s)
	}
}

func (cb Callbacks) status(status, detail string) {
	if cb.OnStatus != nil {
		cb.OnStatus(status, detail)
	}
}

// Orchestrator owns the conversation loop for chat sessions.
type Orchestrator struct {
	client        *ent.Client
	provider      llm.Provider
	commands      CommandRunner
	registry      ToolRegistry
	historyBudget int
	maxIterations int
	turnTimeout   time.Duration
	logger        *slog.Logger
}

// New creates an Orchestrator. registry may be nil when no MCP servers are
// configured.
func New(client *ent.Client, provider llm.Provider, commands CommandRunner, registry ToolRegistry) *Orchestrator {
	return &Orchestrator{
		client:        client,
		provider:      provider,
		commands:      commands,
		registry:      registry,
		historyBudget: defaultHistoryBudget,
		maxIterations: MaxToolIterations,
		turnTimeout:   TurnTimeout,
		logger:        slog.Default(),
	}
}

// SetHistoryBudget overrides the default token budget for replayed history.
func (o *Orchestrator) SetHistoryBudget(budget int) {
	if budget > 0 {
		o.historyBudget = budget
	}
}

// SetMaxToolIterations overrides the per-turn provider round-trip cap.
func (o *Orchestrator) SetMaxToolIterations(n int) {
	if n > 0 {
		o.maxIterations = n
	}
}

// SetTurnTimeout overrides the wall-clock cap for one user turn.
func (o *Orchestrator) SetTurnTimeout(d time.Duration) {
	if d > 0 {
		o.turnTimeout = d
	}
}

// toolTraceEntry is one record in the opaque tool-call trace stored with
// the assistant message.
type toolTraceEntry struct {
	CallID  string         `json:"call_id"`
	Tool    string         `json:"tool"`
	Input   map[string]any `json:"input,omitempty"`
	Result  string         `json:"result,omitempty"`
	IsError bool           `json:"is_error,omitempty"`
}

// SendMessageStream runs one user turn: persists the user message, streams
// the assistant response through the tool loop, persists the assistant
// message, and updates session totals. The returned message is the
// persisted assistant turn.
func (o *Orchestrator) SendMessageStream(ctx context.Context, sessionID, userMessage, modelOverride string, cb Callbacks) (*ent.Message, error) {
	sess, err := o.client.Session.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	now := time.Now()
	_, err = o.client.Message.Create().
		SetID(uuid.New().String()).
		SetSessionID(sess.ID).
		SetRole(message.RoleUser).
		SetContent(userMessage).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist user message: %w", err)
	}
	if err := o.client.Session.UpdateOneID(sess.ID).SetLastMessageAt(now).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	turnCtx, cancel := context.WithTimeout(ctx, o.turnTimeout)
	defer cancel()

	tools := builtinTools()
	if o.registry != nil {
		mcpTools, err := o.registry.GetToolDefinitions(turnCtx, sess.OrganizationID)
		if err != nil {
			o.logger.Warn("Failed to load MCP tool catalog",
				"session_id", sess.ID, "error", err)
		} else {
			tools = append(tools, mcpTools...)
		}
	}

	settings := o.loadPromptSettings(turnCtx, sess)
	if modelOverride == "" && settings != nil && settings.DefaultModel != "" {
		modelOverride = settings.DefaultModel
	}
	systemPrompt := o.buildSystemPrompt(turnCtx, sess, settings, tools)

	stored, err := o.client.Message.Query().
		Where(message.SessionID(sess.ID)).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(turnCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	conversation := assembleHistory(stored, o.historyBudget)

	result := o.runToolLoop(turnCtx, sess, modelOverride, systemPrompt, tools, conversation, cb)

	// Persistence must survive cancellation of the turn context.
	saveCtx, saveCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer saveCancel()

	msg, persistErr := o.persistAssistantTurn(saveCtx, sess, result)
	if persistErr != nil {
		return nil, persistErr
	}
	if result.err != nil {
		return msg, result.err
	}

	o.maybeGenerateTitle(sess.ID, len(stored)+1)
	cb.status("done", "")
	return msg, nil
}

// turnResult accumulates everything the tool loop produced.
type turnResult struct {
	content  string
	trace    []toolTraceEntry
	tokens   int
	cost     float64
	canceled bool
	err      error
}

// runToolLoop streams provider responses, dispatching tool calls until the
// model stops asking for tools or a cap is hit.
func (o *Orchestrator) runToolLoop(ctx context.Context, sess *ent.Session, modelOverride, systemPrompt string, tools []llm.ToolDefinition, conversation []llm.Message, cb Callbacks) turnResult {
	var res turnResult
	var content strings.Builder

	cb.status("thinking", "")
	for iteration := 0; iteration < o.maxIterations; iteration++ {
		resp, err := o.provider.SendStream(ctx, llm.Request{
			Model:    modelOverride,
			System:   systemPrompt,
			Messages: conversation,
			Tools:    tools,
		}, func(delta string) {
			content.WriteString(delta)
			cb.delta(delta)
		})
		if err != nil {
			switch {
			case errors.Is(err, context.DeadlineExceeded):
				// The turn deadline expired; finalize with an explanation
				// rather than surfacing an error for a self-imposed limit.
				res.content = content.String() + timeLimitNotice
				return res
			case errors.Is(err, context.Canceled):
				res.canceled = true
				res.content = canceledContent(content.String())
				res.err = err
				return res
			}
			res.content = content.String()
			res.err = services.NewUpstreamError("llm", err)
			return res
		}

		res.tokens += resp.Usage.TotalTokens
		res.cost += resp.Usage.CostUSD

		if len(resp.ToolCalls) == 0 {
			res.content = content.String()
			return res
		}

		// Record the assistant turn (text + tool_use blocks), then feed
		// each tool result back and go around again.
		conversation = append(conversation, llm.Message{
			Role:      "assistant",
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		})

		for _, call := range resp.ToolCalls {
			cb.status("tool", call.Name)
			output, isError := o.dispatchTool(ctx, sess, call)
			if err := ctx.Err(); err != nil {
				if errors.Is(err, context.DeadlineExceeded) {
					res.content = content.String() + timeLimitNotice
					return res
				}
				res.canceled = true
				res.content = canceledContent(content.String())
				res.err = err
				return res
			}
			res.trace = append(res.trace, toolTraceEntry{
				CallID:  call.ID,
				Tool:    call.Name,
				Input:   call.Input,
				Result:  excerpt(output, traceResultLimit),
				IsError: isError,
			})
			conversation = append(conversation, llm.Message{
				Role:      "tool",
				ToolUseID: call.ID,
				Content:   output,
			})
		}
		cb.status("thinking", "")
	}

	res.content = content.String() + terminationNotice
	return res
}

// dispatchTool routes a tool call. Failures come back as strings for the
// model rather than aborting the turn.
func (o *Orchestrator) dispatchTool(ctx context.Context, sess *ent.Session, call llm.ToolCall) (output string, isError bool) {
	switch {
	case call.Name == ToolRunCommand:
		return o.runCommandTool(ctx, sess, call.Input)
	case call.Name == ToolUpdateHostNote:
		return o.updateHostNoteTool(ctx, sess, call.Input)
	case strings.HasPrefix(call.Name, mcp.ToolPrefix):
		if o.registry == nil {
			return "Error: no MCP servers are configured", true
		}
		result, err := o.registry.Dispatch(ctx, sess.OrganizationID, call.Name, call.Input)
		if err != nil {
			return "Error: " + err.Error(), true
		}
		return result.Content, result.IsError
	default:
		return fmt.Sprintf("Error: unknown tool %q", call.Name), true
	}
}

func (o *Orchestrator) runCommandTool(ctx context.Context, sess *ent.Session, args map[string]any) (string, bool) {
	hostID := stringArg(args, "hostId")
	command := stringArg(args, "command")
	if hostID == "" || command == "" {
		return "Error: run_command requires hostId and command", true
	}

	result, err := o.commands.Execute(ctx, executor.Request{
		OrgID:     sess.OrganizationID,
		UserID:    sess.UserID,
		HostID:    hostID,
		SessionID: sess.ID,
		Command:   command,
		Reasoning: stringArg(args, "reasoning"),
	})
	if err != nil {
		var denied *services.PolicyDeniedError
		if errors.As(err, &denied) {
			return "Command denied by policy: " + denied.Reason, true
		}
		if ctx.Err() != nil {
			return "Error: command canceled", true
		}
		return "Error: " + err.Error(), true
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "exit code: %d\n", result.ExitCode)
	if result.Stdout != "" {
		sb.WriteString(result.Stdout)
	}
	if result.Stderr != "" {
		sb.WriteString("\nstderr:\n")
		sb.WriteString(result.Stderr)
	}
	return sb.String(), false
}

func (o *Orchestrator) updateHostNoteTool(ctx context.Context, sess *ent.Session, args map[string]any) (string, bool) {
	hostID := stringArg(args, "hostId")
	content := stringArg(args, "content")
	if hostID == "" || content == "" {
		return "Error: update_host_note requires hostId and content", true
	}

	// The host must be visible to the session's org.
	if _, err := o.client.Host.Query().
		Where(host.ID(hostID), host.OrganizationID(sess.OrganizationID)).
		Only(ctx); err != nil {
		return "Error: host not found", true
	}

	existing, err := o.client.HostNote.Query().
		Where(
			hostnote.OrganizationID(sess.OrganizationID),
			hostnote.HostID(hostID),
		).
		Only(ctx)
	switch {
	case err == nil:
		if err := existing.Update().SetContent(content).Exec(ctx); err != nil {
			return "Error: failed to update note", true
		}
	case ent.IsNotFound(err):
		if err := o.client.HostNote.Create().
			SetID(uuid.New().String()).
			SetOrganizationID(sess.OrganizationID).
			SetHostID(hostID).
			SetContent(content).
			Exec(ctx); err != nil {
			return "Error: failed to create note", true
		}
	default:
		return "Error: failed to load note", true
	}
	return "Note updated.", false
}

// persistAssistantTurn stores the assistant message and rolls usage into
// the session totals.
func (o *Orchestrator) persistAssistantTurn(ctx context.Context, sess *ent.Session, res turnResult) (*ent.Message, error) {
	content := res.content
	if content == "" {
		if res.canceled {
			content = CanceledMarker
		} else if res.err != nil {
			content = "(no response)"
		}
	}

	create := o.client.Message.Create().
		SetID(uuid.New().String()).
		SetSessionID(sess.ID).
		SetRole(message.RoleAssistant).
		SetContent(content).
		SetTokensUsed(res.tokens)
	if len(res.trace) > 0 {
		if trace, err := json.Marshal(res.trace); err == nil {
			create.SetToolCallTrace(string(trace))
		}
	}
	msg, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist assistant message: %w", err)
	}

	err = o.client.Session.UpdateOneID(sess.ID).
		AddTotalTokens(res.tokens).
		AddTotalCost(res.cost).
		SetLastMessageAt(time.Now()).
		Exec(ctx)
	if err != nil {
		o.logger.Warn("Failed to update session totals",
			"session_id", sess.ID, "error", err)
	}
	return msg, nil
}

// maybeGenerateTitle kicks off background title generation once the session
// has at least two messages and no title yet.
func (o *Orchestrator) maybeGenerateTitle(sessionID string, messageCount int) {
	if messageCount < 2 {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		sess, err := o.client.Session.Get(ctx, sessionID)
		if err != nil || sess.Title != "" {
			return
		}

		msgs, err := o.client.Message.Query().
			Where(message.SessionID(sessionID)).
			Order(ent.Asc(message.FieldCreatedAt)).
			Limit(4).
			All(ctx)
		if err != nil || len(msgs) == 0 {
			return
		}

		var sb strings.Builder
		for _, m := range msgs {
			fmt.Fprintf(&sb, "%s: %s\n", m.Role, excerpt(m.Content, 300))
		}

		resp, err := o.provider.SendStream(ctx, llm.Request{
			System: "Generate a short title (at most 6 words) for this conversation. " +
				"Reply with the title only, no quotes.",
			Messages:  []llm.Message{{Role: "user", Content: sb.String()}},
			MaxTokens: 50,
		}, nil)
		if err != nil {
			o.logger.Warn("Title generation failed",
				"session_id", sessionID, "error", err)
			return
		}

		title := strings.TrimSpace(strings.Trim(resp.Content, `"`))
		if title == "" {
			return
		}
		if len(title) > 80 {
			title = title[:80]
		}
		err = o.client.Session.Update().
			Where(
				session.ID(sessionID),
				session.Or(session.TitleIsNil(), session.Title("")),
			).
			SetTitle(title).
			Exec(ctx)
		if err != nil {
			o.logger.Warn("Failed to save session title",
				"session_id", sessionID, "error", err)
		}
	}()
}

func canceledContent(partial string) string {
	if partial == "" {
		return CanceledMarker
	}
	return partial + "\n\n" + CanceledMarker
}
