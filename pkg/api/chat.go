package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/infrallm/infrallm/pkg/auth"
	"github.com/infrallm/infrallm/pkg/chattask"
	"github.com/infrallm/infrallm/pkg/executor"
	"github.com/infrallm/infrallm/pkg/orchestrator"
	"github.com/infrallm/infrallm/pkg/services"
)

// startChatTurn runs one assistant turn on a background task, streaming
// progress to the session's hub group. REST and WebSocket entry points both
// land here so a session only ever has one turn in flight.
func (s *Server) startChatTurn(claims *auth.Claims, sessionID, content, modelOverride string) error {
	deadline := 5 * time.Minute
	if s.deps.Config != nil && s.deps.Config.TurnDeadline > 0 {
		deadline = s.deps.Config.TurnDeadline
	}

	err := s.deps.Tasks.Start(sessionID, func(taskCtx context.Context) {
		ctx, cancel := context.WithTimeout(taskCtx, deadline)
		defer cancel()

		h := s.deps.Hub
		h.BroadcastTyping(sessionID, true)
		defer h.BroadcastTyping(sessionID, false)

		msg, err := s.deps.Conversations.SendMessageStream(ctx, sessionID, content, modelOverride, orchestrator.Callbacks{
			OnDelta: func(delta string) {
				h.BroadcastDelta(sessionID, delta)
			},
			OnStatus: func(status, detail string) {
				if status == "thinking" {
					h.BroadcastTyping(sessionID, true)
				}
			},
		})
		if err != nil {
			if errors.Is(err, context.Canceled) {
				slog.Info("Chat turn canceled", "session_id", sessionID)
				return
			}
			slog.Error("Chat turn failed", "session_id", sessionID, "error", err)
			return
		}
		h.BroadcastMessage(sessionID, msg)
	})
	if errors.Is(err, chattask.ErrShuttingDown) {
		return newAPIError(http.StatusServiceUnavailable, "unavailable", "server is shutting down")
	}
	return err
}

// handleChatMessage is the hub's send_message callback. Session ownership was
// already verified by the hub before it calls us.
func (s *Server) handleChatMessage(_ context.Context, claims *auth.Claims, sessionID, content string) {
	if err := s.startChatTurn(claims, sessionID, content, ""); err != nil {
		slog.Error("Failed to start chat turn", "session_id", sessionID, "error", err)
	}
}

// handleCommandRun is the hub's run_command callback. Output streams back to
// the requesting user's private group; policy denials surface as a status
// frame rather than an error close.
func (s *Server) handleCommandRun(ctx context.Context, claims *auth.Claims, hostID, command string) {
	h := s.deps.Hub
	h.SendCommandStatus(claims.UserID, hostID, "started", nil)

	result, err := s.deps.Executor.ExecuteStream(ctx, executor.Request{
		OrgID:   claims.OrgID,
		UserID:  claims.UserID,
		HostID:  hostID,
		Command: command,
	}, func(chunk string) {
		h.SendCommandOutput(claims.UserID, hostID, chunk)
	})
	if err != nil {
		var policyErr *services.PolicyDeniedError
		if errors.As(err, &policyErr) {
			h.SendCommandStatus(claims.UserID, hostID, "denied", map[string]any{
				"denial_reason": policyErr.Reason,
			})
			return
		}
		h.SendCommandStatus(claims.UserID, hostID, "failed", map[string]any{
			"error": err.Error(),
		})
		return
	}
	h.SendCommandStatus(claims.UserID, hostID, "completed", map[string]any{
		"execution_id": result.ExecutionID,
		"exit_code":    result.ExitCode,
		"duration_ms":  result.DurationMs,
	})
}
