package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultModel is used when neither config nor request names one.
	DefaultModel = "claude-sonnet-4-5-20250929"
	// DefaultEndpoint is the Anthropic Messages API endpoint.
	DefaultEndpoint = "https://api.anthropic.com/v1/messages"
	// DefaultMaxTokens caps response length per request.
	DefaultMaxTokens = 4096

	anthropicVersion = "2023-06-01"

	// Rate-limit errors are retried with exponential backoff before
	// surfacing to the caller.
	maxAttempts = 3
)

var retryBaseDelay = 2 * time.Second

// AnthropicConfig configures the client.
type AnthropicConfig struct {
	APIKey    string
	Model     string
	Endpoint  string
	Timeout   time.Duration // caps the whole request including stream read
	MaxTokens int
}

// AnthropicClient streams completions from the Anthropic Messages API.
type AnthropicClient struct {
	apiKey     string
	model      string
	endpoint   string
	maxTokens  int
	httpClient *http.Client
}

// NewAnthropicClient creates a client with defaults filled in.
func NewAnthropicClient(cfg AnthropicConfig) *AnthropicClient {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 5 * time.Minute
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	return &AnthropicClient{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		endpoint:   cfg.Endpoint,
		maxTokens:  cfg.MaxTokens,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// DefaultModel returns the configured model identifier.
func (c *AnthropicClient) DefaultModel() string {
	return c.model
}

// SendStream opens a streaming Messages API call and forwards text deltas
// to onDelta. Tool-use blocks are accumulated from input_json_delta events
// and returned complete on the response.
func (c *AnthropicClient) SendStream(ctx context.Context, req Request, onDelta func(string)) (*Response, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.maxTokens
	}

	apiReq := messagesRequest{
		Model:     model,
		Messages:  convertMessages(req.Messages),
		MaxTokens: maxTokens,
		Stream:    true,
	}
	if req.System != "" {
		apiReq.System = req.System
	}
	for _, tool := range req.Tools {
		apiReq.Tools = append(apiReq.Tools, apiTool{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: tool.InputSchema,
		})
	}

	body, err := json.Marshal(apiReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpResp, err := c.postWithRetry(ctx, body)
	if err != nil {
		return nil, err
	}
	defer func() { _ = httpResp.Body.Close() }()

	resp, err := c.readStream(ctx, httpResp.Body, onDelta)
	if err != nil {
		return nil, err
	}
	resp.Usage.TotalTokens = resp.Usage.InputTokens + resp.Usage.OutputTokens
	resp.Usage.CostUSD = costUSD(model, resp.Usage.InputTokens, resp.Usage.OutputTokens)
	return resp, nil
}

// postWithRetry sends the request, retrying 429 responses with exponential
// backoff. The body is re-read on each attempt.
func (c *AnthropicClient) postWithRetry(ctx context.Context, body []byte) (*http.Response, error) {
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			delay := retryBaseDelay << (attempt - 1)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("x-api-key", c.apiKey)
		httpReq.Header.Set("anthropic-version", anthropicVersion)

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			return nil, fmt.Errorf("request failed: %w", err)
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			respBody, _ := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			lastErr = fmt.Errorf("rate limited (status 429): %s", string(respBody))
			continue
		}
		if resp.StatusCode != http.StatusOK {
			respBody, _ := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
		}
		return resp, nil
	}
	return nil, lastErr
}

// readStream consumes the SSE stream, accumulating text, tool calls, and
// usage counters.
func (c *AnthropicClient) readStream(ctx context.Context, r io.Reader, onDelta func(string)) (*Response, error) {
	var content strings.Builder
	var stopReason string
	var usage Usage
	var toolCalls []ToolCall

	// Tool input JSON streams in fragments, keyed by content block index.
	toolInputBuffers := make(map[int]*strings.Builder)
	toolCallIndex := make(map[int]int)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		jsonData := strings.TrimSpace(strings.TrimPrefix(line, "data:"))

		var event streamEvent
		if err := json.Unmarshal([]byte(jsonData), &event); err != nil {
			// Skip malformed events, keep the stream alive.
			continue
		}

		switch event.Type {
		case "message_start":
			if event.Message != nil {
				usage.InputTokens = event.Message.Usage.InputTokens
			}

		case "content_block_start":
			if event.ContentBlock != nil && event.ContentBlock.Type == "tool_use" {
				idx := len(toolCalls)
				toolCalls = append(toolCalls, ToolCall{
					ID:    event.ContentBlock.ID,
					Name:  event.ContentBlock.Name,
					Input: make(map[string]any),
				})
				toolInputBuffers[event.Index] = &strings.Builder{}
				toolCallIndex[event.Index] = idx
			}

		case "content_block_delta":
			if event.Delta == nil {
				continue
			}
			switch event.Delta.Type {
			case "text_delta":
				if event.Delta.Text != "" {
					content.WriteString(event.Delta.Text)
					if onDelta != nil {
						onDelta(event.Delta.Text)
					}
				}
			case "input_json_delta":
				if buf, ok := toolInputBuffers[event.Index]; ok {
					buf.WriteString(event.Delta.PartialJSON)
				}
			}

		case "content_block_stop":
			if buf, ok := toolInputBuffers[event.Index]; ok && buf.Len() > 0 {
				var input map[string]any
				if err := json.Unmarshal([]byte(buf.String()), &input); err == nil {
					if idx, ok := toolCallIndex[event.Index]; ok && idx < len(toolCalls) {
						toolCalls[idx].Input = input
					}
				}
			}
			delete(toolInputBuffers, event.Index)
			delete(toolCallIndex, event.Index)

		case "message_delta":
			if event.Delta != nil && event.Delta.StopReason != "" {
				stopReason = event.Delta.StopReason
			}
			if event.Usage != nil {
				usage.OutputTokens = event.Usage.OutputTokens
			}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading stream: %w", err)
	}

	return &Response{
		Content:    content.String(),
		StopReason: stopReason,
		ToolCalls:  toolCalls,
		Usage:      usage,
	}, nil
}

// convertMessages maps neutral messages onto the Messages API shape. Tool
// results become user messages carrying tool_result blocks.
func convertMessages(messages []Message) []apiMessage {
	var out []apiMessage
	for _, msg := range messages {
		switch msg.Role {
		case "user":
			out = append(out, apiMessage{
				Role:    "user",
				Content: []contentBlock{{Type: "text", Text: msg.Content}},
			})

		case "assistant":
			var content []contentBlock
			if msg.Content != "" {
				content = append(content, contentBlock{Type: "text", Text: msg.Content})
			}
			for _, tc := range msg.ToolCalls {
				input := tc.Input
				if input == nil {
					input = map[string]any{}
				}
				content = append(content, contentBlock{
					Type:  "tool_use",
					ID:    tc.ID,
					Name:  tc.Name,
					Input: input,
				})
			}
			if len(content) > 0 {
				out = append(out, apiMessage{Role: "assistant", Content: content})
			}

		case "tool":
			out = append(out, apiMessage{
				Role: "user",
				Content: []contentBlock{{
					Type:      "tool_result",
					ToolUseID: msg.ToolUseID,
					Content:   msg.Content,
				}},
			})
		}
	}
	return out
}

type messagesRequest struct {
	Model     string       `json:"model"`
	System    string       `json:"system,omitempty"`
	Messages  []apiMessage `json:"messages"`
	MaxTokens int          `json:"max_tokens"`
	Tools     []apiTool    `json:"tools,omitempty"`
	Stream    bool         `json:"stream"`
}

type apiMessage struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type      string         `json:"type"`
	Text      string         `json:"text,omitempty"`
	ID        string         `json:"id,omitempty"`
	Name      string         `json:"name,omitempty"`
	Input     map[string]any `json:"input,omitempty"`
	ToolUseID string         `json:"tool_use_id,omitempty"`
	Content   string         `json:"content,omitempty"`
}

type apiTool struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	InputSchema map[string]any `json:"input_schema"`
}

type apiUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

type streamEvent struct {
	Type    string `json:"type"`
	Index   int    `json:"index"`
	Message *struct {
		Usage apiUsage `json:"usage"`
	} `json:"message,omitempty"`
	ContentBlock *struct {
		Type string `json:"type"`
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"content_block,omitempty"`
	Delta *struct {
		Type        string `json:"type"`
		Text        string `json:"text"`
		PartialJSON string `json:"partial_json"`
		StopReason  string `json:"stop_reason"`
	} `json:"delta,omitempty"`
	Usage *apiUsage `json:"usage,omitempty"`
}
