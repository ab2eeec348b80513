package usage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTokens(t *testing.T) {
	tests := []struct {
		name           string
		stdout         string
		expectedInput  int
		expectedOutput int
	}{
		{
			name:           "labeled counts on separate lines",
			stdout:         "Task complete.\nInput: 100 tokens\nOutput: 250 tokens\n",
			expectedInput:  100,
			expectedOutput: 250,
		},
		{
			name:           "tokens used summary line",
			stdout:         "Tokens used: 1200 input, 3400 output",
			expectedInput:  1200,
			expectedOutput: 3400,
		},
		{
			name:           "brace-delimited usage",
			stdout:         "Usage: {input: 42, output: 99}",
			expectedInput:  42,
			expectedOutput: 99,
		},
		{
			name:           "prose counts across lines",
			stdout:         "consumed 500 input tokens\nand 700 output tokens total",
			expectedInput:  500,
			expectedOutput: 700,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, out, estimated := ExtractTokens(tt.stdout)
			assert.False(t, estimated)
			assert.Equal(t, tt.expectedInput, in)
			assert.Equal(t, tt.expectedOutput, out)
		})
	}
}

func TestExtractTokensFirstPatternWins(t *testing.T) {
	stdout := "Input: 10 tokens Output: 20 tokens\nTokens used: 999 input, 999 output"
	in, out, estimated := ExtractTokens(stdout)
	assert.False(t, estimated)
	assert.Equal(t, 10, in)
	assert.Equal(t, 20, out)
}

func TestExtractTokensEstimatesFromLength(t *testing.T) {
	// 400 chars -> 100 tokens total, split 30/70.
	stdout := strings.Repeat("x", 400)
	in, out, estimated := ExtractTokens(stdout)
	assert.True(t, estimated)
	assert.Equal(t, 30, in)
	assert.Equal(t, 70, out)
}

func TestExtractTokensEmptyStdout(t *testing.T) {
	in, out, estimated := ExtractTokens("")
	assert.True(t, estimated)
	assert.Zero(t, in)
	assert.Zero(t, out)
}

func TestExtractTokensEstimateRoundsUp(t *testing.T) {
	// 10 chars -> ceil(10/4)=3 tokens -> ceil(0.9)=1 input, ceil(2.1)=3 output.
	in, out, estimated := ExtractTokens("0123456789")
	assert.True(t, estimated)
	assert.Equal(t, 1, in)
	assert.Equal(t, 3, out)
}
