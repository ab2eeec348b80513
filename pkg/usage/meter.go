package usage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/MiniSankaz/fleetd/pkg/bus"
	"github.com/MiniSankaz/fleetd/pkg/models"
)

// thresholdBand is the width of the trigger band above each threshold. An
// alert fires only while pct is inside [T, T+band); crossing into the next
// band re-arms alerting without storming on every record.
const thresholdBand = 5.0

// agentMetricsLimit bounds AgentMetrics responses.
const agentMetricsLimit = 100

// Meter records usage, maintains aggregates, and raises threshold alerts.
type Meter struct {
	store      Store
	fast       *Aggregates // nil when no KV store is configured
	events     *bus.Bus
	limits     models.PlanLimits
	thresholds []float64
}

// NewMeter creates a usage meter. fast may be nil, in which case summaries
// and threshold checks recompute from durable records on demand. events may
// be nil (bus publication disabled).
func NewMeter(store Store, fast *Aggregates, events *bus.Bus, limits models.PlanLimits, thresholds []float64) *Meter {
	if store == nil {
		panic("usage.NewMeter: store must not be nil")
	}
	return &Meter{
		store:      store,
		fast:       fast,
		events:     events,
		limits:     limits,
		thresholds: thresholds,
	}
}

// Track records one invocation: computes cost, persists the record, folds it
// into the fast aggregates, and evaluates thresholds. Re-submitting a record
// id returns ErrDuplicateRecord with no side effects.
func (m *Meter) Track(ctx context.Context, rec *models.UsageRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if !rec.Model.IsValid() {
		return fmt.Errorf("invalid model class %q", rec.Model)
	}
	if rec.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	rec.Cost = Cost(rec.Model, rec.InputTokens, rec.OutputTokens)

	if err := m.store.InsertRecord(ctx, rec); err != nil {
		return err
	}

	// The aggregates are derived state, rebuildable from the durable
	// records, so a fast-store failure after a durable insert is logged
	// rather than surfaced.
	if m.fast != nil {
		if err := m.fast.Add(ctx, rec); err != nil {
			slog.Warn("Failed to update fast usage aggregates",
				"record_id", rec.ID, "user_id", rec.UserID, "error", err)
		}
	}

	m.evaluateThresholds(ctx, rec)
	m.publish(bus.TopicUsageTracked, rec)
	return nil
}

// Summary aggregates a user's records over the window containing now.
// Percent-of-limit figures are populated for weekly summaries only.
func (m *Meter) Summary(ctx context.Context, window models.Window, userID string) (*models.UsageSummary, error) {
	if !window.IsValid() {
		return nil, fmt.Errorf("invalid window %q", window)
	}
	now := time.Now()
	start, end := WindowRange(window, now)

	records, err := m.store.RecordsInRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	summary := &models.UsageSummary{
		UserID:     userID,
		Window:     window,
		Start:      start,
		End:        end,
		Models:     make(map[models.ModelClass]*models.ModelUsage),
		AgentTypes: make(map[models.AgentType]*models.AgentTypeUsage),
	}
	durations := make(map[models.AgentType]int64)
	for _, rec := range records {
		summary.TotalTokens += rec.InputTokens + rec.OutputTokens
		summary.TotalCost += rec.Cost

		mu := summary.Models[rec.Model]
		if mu == nil {
			mu = &models.ModelUsage{}
			summary.Models[rec.Model] = mu
		}
		mu.InputTokens += rec.InputTokens
		mu.OutputTokens += rec.OutputTokens
		mu.Cost += rec.Cost
		mu.Hours += rec.Hours()

		au := summary.AgentTypes[rec.AgentType]
		if au == nil {
			au = &models.AgentTypeUsage{}
			summary.AgentTypes[rec.AgentType] = au
		}
		au.Calls++
		au.InputTokens += rec.InputTokens
		au.OutputTokens += rec.OutputTokens
		au.Cost += rec.Cost
		durations[rec.AgentType] += rec.DurationMs
	}
	for at, au := range summary.AgentTypes {
		if au.Calls > 0 {
			au.AvgDurationMs = float64(durations[at]) / float64(au.Calls)
		}
	}
	if window == models.WindowWeek {
		for class, mu := range summary.Models {
			if limit, metered := m.limits.LimitFor(class); metered {
				pct := mu.Hours / limit * 100
				mu.PercentOfLimit = &pct
			}
		}
	}

	alerts, err := m.store.AlertsInRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	summary.Alerts = alerts
	return summary, nil
}

// RealTimeUsage is the current-day and current-week rollup plus the plan
// limit table.
type RealTimeUsage struct {
	UserID string               `json:"user_id"`
	Today  *models.UsageSummary `json:"today"`
	Week   *models.UsageSummary `json:"week"`
	Limits models.PlanLimits    `json:"limits"`
}

// RealTime returns the user's current-day and current-week rollups.
func (m *Meter) RealTime(ctx context.Context, userID string) (*RealTimeUsage, error) {
	today, err := m.Summary(ctx, models.WindowDay, userID)
	if err != nil {
		return nil, err
	}
	week, err := m.Summary(ctx, models.WindowWeek, userID)
	if err != nil {
		return nil, err
	}
	return &RealTimeUsage{
		UserID: userID,
		Today:  today,
		Week:   week,
		Limits: m.limits,
	}, nil
}

// AgentMetrics returns the last 100 records for an agent, newest first.
func (m *Meter) AgentMetrics(ctx context.Context, agentID string) ([]*models.UsageRecord, error) {
	return m.store.RecordsByAgent(ctx, agentID, agentMetricsLimit)
}

// Alerts lists alerts matching the filter.
func (m *Meter) Alerts(ctx context.Context, filter AlertFilter) ([]*models.Alert, error) {
	return m.store.Alerts(ctx, filter)
}

// Acknowledge marks an alert acknowledged. Idempotent.
func (m *Meter) Acknowledge(ctx context.Context, alertID, actorID string) (bool, error) {
	return m.store.Acknowledge(ctx, alertID, actorID)
}

// Report builds a per-day breakdown over [start, end] plus straight-line
// 7-day and 30-day cost projections from the current daily average.
func (m *Meter) Report(ctx context.Context, userID string, start, end time.Time) (*models.UsageReport, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("report range end precedes start")
	}
	dayStart, _ := WindowRange(models.WindowDay, start)
	_, rangeEnd := WindowRange(models.WindowDay, end)

	records, err := m.store.RecordsInRange(ctx, userID, dayStart, rangeEnd)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*models.DailyUsage)
	report := &models.UsageReport{UserID: userID, Start: dayStart, End: rangeEnd}
	for day := dayStart; day.Before(rangeEnd); day = day.AddDate(0, 0, 1) {
		du := &models.DailyUsage{Date: day.Format("2006-01-02")}
		byDay[du.Date] = du
		report.Days = append(report.Days, du)
	}
	for _, rec := range records {
		du := byDay[rec.CreatedAt.UTC().Format("2006-01-02")]
		if du == nil {
			continue
		}
		du.Calls++
		du.TotalTokens += rec.InputTokens + rec.OutputTokens
		du.TotalCost += rec.Cost
		report.TotalCost += rec.Cost
	}
	if days := len(report.Days); days > 0 {
		report.AvgDailyCost = report.TotalCost / float64(days)
	}
	report.Projected7DayCost = report.AvgDailyCost * 7
	report.Projected30DayCost = report.AvgDailyCost * 30
	return report, nil
}

// PruneOlderThan removes durable records past the retention cutoff.
func (m *Meter) PruneOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	return m.store.PruneRecords(ctx, cutoff)
}

// evaluateThresholds checks every metered weekly series after a track and
// raises at most one alert per (user, series, threshold) per week.
func (m *Meter) evaluateThresholds(ctx context.Context, rec *models.UsageRecord) {
	limit, metered := m.limits.LimitFor(rec.Model)
	if !metered {
		return
	}

	hours, err := m.weeklyHours(ctx, rec)
	if err != nil {
		slog.Warn("Failed to compute weekly hours for threshold check",
			"user_id", rec.UserID, "model", rec.Model, "error", err)
		return
	}
	pct := hours / limit * 100
	series := fmt.Sprintf("weekly-%s-hours", rec.Model)
	weekStart, _ := WindowRange(models.WindowWeek, rec.CreatedAt)

	for _, threshold := range m.thresholds {
		if pct < threshold || pct >= threshold+thresholdBand {
			continue
		}
		exists, err := m.store.AlertExists(ctx, rec.UserID, series, threshold, weekStart)
		if err != nil {
			slog.Warn("Failed to check alert debounce",
				"user_id", rec.UserID, "series", series, "error", err)
			continue
		}
		if exists {
			continue
		}

		alert := &models.Alert{
			ID:           uuid.New().String(),
			UserID:       rec.UserID,
			Kind:         models.AlertKindThreshold,
			Series:       series,
			Level:        severityFor(threshold),
			Threshold:    threshold,
			CurrentUsage: hours,
			Limit:        limit,
			Message: fmt.Sprintf("%s usage at %.1f%% of weekly limit (%.1fh of %.0fh)",
				rec.Model, pct, hours, limit),
			CreatedAt: time.Now(),
		}
		if err := m.store.InsertAlert(ctx, alert); err != nil {
			slog.Error("Failed to persist usage alert",
				"user_id", rec.UserID, "series", series, "error", err)
			continue
		}
		m.publish(bus.TopicUsageAlert, alert)
	}
}

// weeklyHours reads the accumulated weekly hours for the record's model,
// preferring the fast aggregates and falling back to the durable records.
func (m *Meter) weeklyHours(ctx context.Context, rec *models.UsageRecord) (float64, error) {
	if m.fast != nil {
		hours, present, err := m.fast.WeeklyModelHours(ctx, rec.UserID, rec.Model, rec.CreatedAt)
		if err == nil && present {
			return hours, nil
		}
		if err != nil {
			slog.Warn("Fast aggregate read failed, recomputing from durable records",
				"user_id", rec.UserID, "error", err)
		}
	}

	start, end := WindowRange(models.WindowWeek, rec.CreatedAt)
	records, err := m.store.RecordsInRange(ctx, rec.UserID, start, end)
	if err != nil {
		return 0, err
	}
	var hours float64
	for _, r := range records {
		if r.Model == rec.Model {
			hours += r.Hours()
		}
	}
	return hours, nil
}

// severityFor maps a threshold percentage to an alert level.
func severityFor(threshold float64) models.AlertLevel {
	switch {
	case threshold >= 90:
		return models.AlertLevelCritical
	case threshold >= 70:
		return models.AlertLevelWarning
	default:
		return models.AlertLevelInfo
	}
}

func (m *Meter) publish(topic bus.Topic, payload any) {
	if m.events == nil {
		return
	}
	m.events.Publish(topic, payload)
}
