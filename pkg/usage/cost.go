// Package usage implements the usage meter: per-invocation metering records,
// fast per-window aggregates, threshold alerting, and cost reporting.
package usage

import (
	"math"

	"github.com/MiniSankaz/fleetd/pkg/models"
)

// rates are USD per 1,000,000 tokens. The table is fixed; plans vary only in
// their weekly hour caps.
type rates struct {
	input  float64
	output float64
}

var costTable = map[models.ModelClass]rates{
	models.ModelOpus:   {input: 15.00, output: 75.00},
	models.ModelSonnet: {input: 3.00, output: 15.00},
	models.ModelHaiku:  {input: 0.25, output: 1.25},
}

// Cost computes the invocation cost in USD for the given token counts,
// rounded half-up to four decimal places.
func Cost(model models.ModelClass, inputTokens, outputTokens int) float64 {
	r, ok := costTable[model]
	if !ok {
		return 0
	}
	raw := float64(inputTokens)/1e6*r.input + float64(outputTokens)/1e6*r.output
	return roundHalfUp4(raw)
}

func roundHalfUp4(x float64) float64 {
	return math.Floor(x*10000+0.5) / 10000
}
