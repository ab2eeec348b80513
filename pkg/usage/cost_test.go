package usage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MiniSankaz/fleetd/pkg/models"
)

func TestCost(t *testing.T) {
	tests := []struct {
		name         string
		model        models.ModelClass
		inputTokens  int
		outputTokens int
		expected     float64
	}{
		{
			name:         "sonnet invocation rounds half up",
			model:        models.ModelSonnet,
			inputTokens:  100,
			outputTokens: 250,
			// 100/1M*3.00 + 250/1M*15.00 = 0.00405 -> 0.0041
			expected: 0.0041,
		},
		{
			name:         "opus invocation",
			model:        models.ModelOpus,
			inputTokens:  10_000,
			outputTokens: 20_000,
			// 0.15 + 1.50
			expected: 1.65,
		},
		{
			name:         "haiku invocation",
			model:        models.ModelHaiku,
			inputTokens:  1_000_000,
			outputTokens: 1_000_000,
			expected:     1.50,
		},
		{
			name:         "small haiku invocation rounds down",
			model:        models.ModelHaiku,
			inputTokens:  100,
			outputTokens: 250,
			// 0.0003375 -> 0.0003
			expected: 0.0003,
		},
		{
			name:     "zero tokens",
			model:    models.ModelSonnet,
			expected: 0,
		},
		{
			name:         "unknown model costs nothing",
			model:        models.ModelClass("gpt-9"),
			inputTokens:  500,
			outputTokens: 500,
			expected:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Cost(tt.model, tt.inputTokens, tt.outputTokens))
		})
	}
}
