package models

import "time"

// Window is a usage rollup period.
type Window string

const (
	WindowDay   Window = "day"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

// IsValid checks if the window is valid.
func (w Window) IsValid() bool {
	return w == WindowDay || w == WindowWeek || w == WindowMonth
}

// UsageRecord is one row of metering data, produced per completed agent
// invocation. Cost is derived from the token counts and the model's
// published rates, rounded half-up to four decimal places.
type UsageRecord struct {
	ID           string         `json:"id"`
	AgentID      string         `json:"agent_id"`
	AgentType    AgentType      `json:"agent_type"`
	Model        ModelClass     `json:"model"`
	InputTokens  int            `json:"input_tokens"`
	OutputTokens int            `json:"output_tokens"`
	DurationMs   int64          `json:"duration_ms"`
	Cost         float64        `json:"cost"`
	UserID       string         `json:"user_id"`
	SessionID    string         `json:"session_id,omitempty"`
	TaskID       string         `json:"task_id,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// Hours converts the record's duration to fractional hours.
func (r *UsageRecord) Hours() float64 {
	return float64(r.DurationMs) / 3_600_000
}

// AlertKind classifies a usage alert.
type AlertKind string

const (
	AlertKindThreshold AlertKind = "threshold"
	AlertKindLimit     AlertKind = "limit"
	AlertKindError     AlertKind = "error"
)

// AlertLevel is the severity of a usage alert.
type AlertLevel string

const (
	AlertLevelInfo     AlertLevel = "info"
	AlertLevelWarning  AlertLevel = "warning"
	AlertLevelCritical AlertLevel = "critical"
)

// Alert records a usage threshold crossing for a user.
type Alert struct {
	ID     string    `json:"id"`
	UserID string    `json:"user_id"`
	Kind   AlertKind `json:"kind"`
	// Series names the metered series a threshold alert fired for, e.g.
	// "weekly-opus-hours". Empty for non-threshold alerts.
	Series         string     `json:"series,omitempty"`
	Level          AlertLevel `json:"level"`
	Threshold      float64    `json:"threshold"`
	CurrentUsage   float64    `json:"current_usage"`
	Limit          float64    `json:"limit"`
	Message        string     `json:"message"`
	Acknowledged   bool       `json:"acknowledged"`
	AcknowledgedBy string     `json:"acknowledged_by,omitempty"`
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ModelUsage is the per-model-class slice of a usage summary.
type ModelUsage struct {
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	Cost         float64 `json:"cost"`
	Hours        float64 `json:"hours"`
	// PercentOfLimit is populated for weekly summaries only; limits are
	// defined per week.
	PercentOfLimit *float64 `json:"percent_of_limit,omitempty"`
}

// AgentTypeUsage is the per-agent-type slice of a usage summary.
type AgentTypeUsage struct {
	Calls         int     `json:"calls"`
	InputTokens   int     `json:"input_tokens"`
	OutputTokens  int     `json:"output_tokens"`
	Cost          float64 `json:"cost"`
	AvgDurationMs float64 `json:"avg_duration_ms"`
}

// UsageSummary aggregates usage for one user over one window.
type UsageSummary struct {
	UserID      string                        `json:"user_id"`
	Window      Window                        `json:"window"`
	Start       time.Time                     `json:"start"`
	End         time.Time                     `json:"end"`
	TotalTokens int                           `json:"total_tokens"`
	TotalCost   float64                       `json:"total_cost"`
	Models      map[ModelClass]*ModelUsage    `json:"models"`
	AgentTypes  map[AgentType]*AgentTypeUsage `json:"agent_types"`
	Alerts      []*Alert                      `json:"alerts,omitempty"`
}

// DailyUsage is one day's slice of a usage report.
type DailyUsage struct {
	Date        string  `json:"date"`
	TotalTokens int     `json:"total_tokens"`
	TotalCost   float64 `json:"total_cost"`
	Calls       int     `json:"calls"`
}

// UsageReport is a per-day breakdown over a date range plus straight-line
// cost projections derived from the current daily average.
type UsageReport struct {
	UserID             string        `json:"user_id"`
	Start              time.Time     `json:"start"`
	End                time.Time     `json:"end"`
	Days               []*DailyUsage `json:"days"`
	TotalCost          float64       `json:"total_cost"`
	AvgDailyCost       float64       `json:"avg_daily_cost"`
	Projected7DayCost  float64       `json:"projected_7day_cost"`
	Projected30DayCost float64       `json:"projected_30day_cost"`
}

// PlanLimits is the per-plan table of weekly hour caps by model class.
// A zero value means the class is unmetered.
type PlanLimits struct {
	WeeklyOpusHours   float64 `json:"weekly_opus_hours"`
	WeeklySonnetHours float64 `json:"weekly_sonnet_hours"`
}

// LimitFor returns the weekly hour cap for a model class and whether the
// class is metered at all.
func (p PlanLimits) LimitFor(m ModelClass) (float64, bool) {
	switch m {
	case ModelOpus:
		return p.WeeklyOpusHours, p.WeeklyOpusHours > 0
	case ModelSonnet:
		return p.WeeklySonnetHours, p.WeeklySonnetHours > 0
	default:
		return 0, false
	}
}
