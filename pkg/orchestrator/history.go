package orchestrator

import (
	"fmt"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/pkg/llm"
)

// defaultHistoryBudget caps how much prior conversation (in estimated
// tokens) is replayed to the provider per turn.
const defaultHistoryBudget = 20000

// estimateTokens is the usual chars/4 heuristic. Exact counts would need
// the provider's tokenizer; the budget only has to be roughly right.
func estimateTokens(s string) int {
	return len(s)/4 + 1
}

// assembleHistory converts stored messages to provider format, newest-first
// under the token budget. When older messages are dropped, a placeholder
// notes the omission so the model knows the conversation is truncated.
func assembleHistory(messages []*ent.Message, budget int) []llm.Message {
	if budget <= 0 {
		budget = defaultHistoryBudget
	}

	// Walk backwards collecting messages that fit.
	used := 0
	keepFrom := len(messages)
	for i := len(messages) - 1; i >= 0; i-- {
		cost := estimateTokens(messages[i].Content)
		if used+cost > budget && keepFrom < len(messages) {
			break
		}
		used += cost
		keepFrom = i
	}

	var out []llm.Message
	if keepFrom > 0 {
		out = append(out, llm.Message{
			Role: "user",
			Content: fmt.Sprintf(
				"[Conversation truncated: %d earlier messages omitted to fit the context window.]",
				keepFrom),
		})
	}
	for _, m := range messages[keepFrom:] {
		out = append(out, llm.Message{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}
	return out
}
