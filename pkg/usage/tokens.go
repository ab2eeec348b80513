package usage

import (
	"math"
	"regexp"
	"strconv"
)

// tokenPatterns is the ordered regex ladder applied to agent stdout. The
// first matching pattern wins.
// (?s) lets the counts span lines: the CLI prints Input and Output on
// separate lines.
var tokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?s)Input:\s*(\d+)\s*tokens.*Output:\s*(\d+)\s*tokens`),
	regexp.MustCompile(`Tokens used:\s*(\d+)\s*input,\s*(\d+)\s*output`),
	regexp.MustCompile(`Usage:\s*\{input:\s*(\d+),\s*output:\s*(\d+)\}`),
	regexp.MustCompile(`(?s)(\d+)\s*input tokens.*(\d+)\s*output tokens`),
}

// ExtractTokens parses token counts from agent stdout. When no pattern
// matches, counts are estimated from the output length (4 chars per token,
// 30/70 input/output split); estimated reports which path was taken so the
// record can be flagged as approximate.
func ExtractTokens(stdout string) (inputTokens, outputTokens int, estimated bool) {
	for _, re := range tokenPatterns {
		match := re.FindStringSubmatch(stdout)
		if match == nil {
			continue
		}
		in, errIn := strconv.Atoi(match[1])
		out, errOut := strconv.Atoi(match[2])
		if errIn != nil || errOut != nil {
			continue
		}
		return in, out, false
	}

	total := int(math.Ceil(float64(len(stdout)) / 4))
	inputTokens = int(math.Ceil(float64(total) * 0.3))
	outputTokens = int(math.Ceil(float64(total) * 0.7))
	return inputTokens, outputTokens, true
}
