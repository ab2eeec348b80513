package config

import "github.com/MiniSankaz/fleetd/pkg/models"

// DefaultPlanLimits is the built-in weekly hour cap table. Haiku carries no
// cap and is never metered against a limit.
func DefaultPlanLimits() models.PlanLimits {
	return models.PlanLimits{
		WeeklyOpusHours:   35,
		WeeklySonnetHours: 140,
	}
}

// AlertThresholds is the ordered list of percent-of-limit trigger levels for
// metered weekly series.
var AlertThresholds = []float64{70, 90, 100}
