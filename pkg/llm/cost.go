package llm

import "strings"

// Per-million-token USD pricing, matched by model name prefix.
var pricing = []struct {
	prefix string
	input  float64
	output float64
}{
	{"claude-opus", 15.0, 75.0},
	{"claude-sonnet", 3.0, 15.0},
	{"claude-haiku", 0.80, 4.0},
}

// costUSD estimates the request cost from token usage. Unknown models use
// sonnet pricing.
func costUSD(model string, inputTokens, outputTokens int) float64 {
	input, output := 3.0, 15.0
	for _, p := range pricing {
		if strings.HasPrefix(model, p.prefix) {
			input, output = p.input, p.output
			break
		}
	}
	return float64(inputTokens)*input/1_000_000 + float64(outputTokens)*output/1_000_000
}
