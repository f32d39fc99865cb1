// Package llm defines the provider-neutral conversation types and the
// Anthropic Messages API client used to drive them.
package llm

import "context"

// Message is one turn of a conversation in provider-neutral form.
type Message struct {
	Role      string // "user", "assistant", or "tool"
	Content   string
	ToolCalls []ToolCall // assistant tool_use blocks
	ToolUseID string     // set on role "tool": the call this result answers
}

// ToolCall is a tool invocation requested by the model.
type ToolCall struct {
	ID    string
	Name  string
	Input map[string]any
}

// ToolDefinition describes a tool offered to the model.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema map[string]any // JSON Schema
}

// Usage is the token/cost accounting for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
	CostUSD      float64
}

// Response is the completed result of one streaming request.
type Response struct {
	Content    string
	StopReason string // "end_turn", "tool_use", "max_tokens"
	ToolCalls  []ToolCall
	Usage      Usage
}

// Request is one model invocation.
type Request struct {
	Model     string // empty uses the provider default
	System    string
	Messages  []Message
	Tools     []ToolDefinition
	MaxTokens int
}

// Provider streams a model response, invoking onDelta for each text
// fragment as it arrives.
type Provider interface {
	SendStream(ctx context.Context, req Request, onDelta func(string)) (*Response, error)
	DefaultModel() string
}
