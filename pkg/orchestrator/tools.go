package orchestrator

import (
	"github.com/infrallm/infrallm/pkg/llm"
)

// Built-in tool names. MCP tools arrive already namespaced under mcp__.
const (
	ToolRunCommand     = "run_command"
	ToolUpdateHostNote = "update_host_note"
)

// builtinTools returns the tool definitions every chat turn carries.
func builtinTools() []llm.ToolDefinition {
	return []llm.ToolDefinition{
		{
			Name: ToolRunCommand,
			Description: "Run a shell command on a managed host over SSH. " +
				"The command is checked against the user's policies before it runs; " +
				"denied commands return the denial reason.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"hostId": map[string]any{
						"type":        "string",
						"description": "ID of the host to run on",
					},
					"command": map[string]any{
						"type":        "string",
						"description": "Shell command to execute",
					},
					"reasoning": map[string]any{
						"type":        "string",
						"description": "Why this command is needed; recorded in the audit log",
					},
				},
				"required": []any{"hostId", "command", "reasoning"},
			},
		},
		{
			Name: ToolUpdateHostNote,
			Description: "Replace the operational note for a host. Use it to record " +
				"durable knowledge (quirks, recent changes, known issues) for future conversations.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"hostId": map[string]any{
						"type":        "string",
						"description": "ID of the host the note describes",
					},
					"content": map[string]any{
						"type":        "string",
						"description": "Full replacement note text",
					},
				},
				"required": []any{"hostId", "content"},
			},
		},
	}
}

func stringArg(args map[string]any, key string) string {
	if args == nil {
		return ""
	}
	s, _ := args[key].(string)
	return s
}
