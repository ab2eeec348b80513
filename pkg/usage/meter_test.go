package usage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MiniSankaz/fleetd/pkg/bus"
	"github.com/MiniSankaz/fleetd/pkg/models"
)

// memStore is an in-memory Store for meter tests.
type memStore struct {
	records []*models.UsageRecord
	alerts  []*models.Alert
}

func (s *memStore) InsertRecord(_ context.Context, rec *models.UsageRecord) error {
	for _, existing := range s.records {
		if existing.ID == rec.ID {
			return ErrDuplicateRecord
		}
	}
	clone := *rec
	s.records = append(s.records, &clone)
	return nil
}

func (s *memStore) RecordsInRange(_ context.Context, userID string, start, end time.Time) ([]*models.UsageRecord, error) {
	var out []*models.UsageRecord
	for _, rec := range s.records {
		if rec.UserID != userID {
			continue
		}
		at := rec.CreatedAt.UTC()
		if at.Before(start) || !at.Before(end) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *memStore) RecordsByAgent(_ context.Context, agentID string, limit int) ([]*models.UsageRecord, error) {
	var out []*models.UsageRecord
	for i := len(s.records) - 1; i >= 0 && len(out) < limit; i-- {
		if s.records[i].AgentID == agentID {
			out = append(out, s.records[i])
		}
	}
	return out, nil
}

func (s *memStore) PruneRecords(_ context.Context, olderThan time.Time) (int, error) {
	var kept []*models.UsageRecord
	removed := 0
	for _, rec := range s.records {
		if rec.CreatedAt.Before(olderThan) {
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	s.records = kept
	return removed, nil
}

func (s *memStore) InsertAlert(_ context.Context, alert *models.Alert) error {
	clone := *alert
	s.alerts = append(s.alerts, &clone)
	return nil
}

func (s *memStore) AlertExists(_ context.Context, userID, series string, threshold float64, since time.Time) (bool, error) {
	for _, alert := range s.alerts {
		if alert.UserID == userID && alert.Series == series &&
			alert.Threshold == threshold && !alert.CreatedAt.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) Alerts(_ context.Context, filter AlertFilter) ([]*models.Alert, error) {
	var out []*models.Alert
	for i := len(s.alerts) - 1; i >= 0; i-- {
		alert := s.alerts[i]
		if filter.UserID != "" && alert.UserID != filter.UserID {
			continue
		}
		if filter.Acknowledged != nil && alert.Acknowledged != *filter.Acknowledged {
			continue
		}
		if filter.Level != "" && alert.Level != filter.Level {
			continue
		}
		out = append(out, alert)
	}
	return out, nil
}

func (s *memStore) AlertsInRange(_ context.Context, userID string, start, end time.Time) ([]*models.Alert, error) {
	var out []*models.Alert
	for _, alert := range s.alerts {
		if alert.UserID != userID {
			continue
		}
		at := alert.CreatedAt.UTC()
		if at.Before(start) || !at.Before(end) {
			continue
		}
		out = append(out, alert)
	}
	return out, nil
}

func (s *memStore) Acknowledge(_ context.Context, alertID, actorID string) (bool, error) {
	for _, alert := range s.alerts {
		if alert.ID != alertID {
			continue
		}
		if !alert.Acknowledged {
			alert.Acknowledged = true
			alert.AcknowledgedBy = actorID
			now := time.Now()
			alert.AcknowledgedAt = &now
		}
		return true, nil
	}
	return false, nil
}

func testLimits() models.PlanLimits {
	return models.PlanLimits{WeeklyOpusHours: 35, WeeklySonnetHours: 140}
}

func testThresholds() []float64 {
	return []float64{70, 90, 100}
}

func newTestMeter(t *testing.T) (*Meter, *memStore, *bus.Bus) {
	t.Helper()
	store := &memStore{}
	events := bus.New()
	meter := NewMeter(store, nil, events, testLimits(), testThresholds())
	return meter, store, events
}

func receiveEvent(t *testing.T, sub *bus.Subscription) bus.Event {
	t.Helper()
	select {
	case evt, ok := <-sub.C():
		require.True(t, ok, "subscription closed before event arrived")
		return evt
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return bus.Event{}
	}
}

func TestTrackComputesCostAndPublishes(t *testing.T) {
	meter, store, events := newTestMeter(t)
	sub := events.Subscribe(bus.TopicUsageTracked)
	defer sub.Close()

	rec := &models.UsageRecord{
		ID:           "rec-1",
		AgentID:      "agent-1",
		AgentType:    models.AgentTypeCodeReviewer,
		Model:        models.ModelSonnet,
		InputTokens:  100,
		OutputTokens: 250,
		DurationMs:   45_000,
		UserID:       "user-1",
	}
	require.NoError(t, meter.Track(context.Background(), rec))

	assert.Equal(t, 0.0041, rec.Cost)
	require.Len(t, store.records, 1)
	assert.Equal(t, 0.0041, store.records[0].Cost)

	evt := receiveEvent(t, sub)
	assert.Equal(t, bus.TopicUsageTracked, evt.Topic)
	tracked, ok := evt.Payload.(*models.UsageRecord)
	require.True(t, ok)
	assert.Equal(t, "rec-1", tracked.ID)
}

func TestTrackRejectsDuplicateRecordID(t *testing.T) {
	meter, store, _ := newTestMeter(t)

	rec := &models.UsageRecord{
		ID:     "rec-1",
		Model:  models.ModelHaiku,
		UserID: "user-1",
	}
	require.NoError(t, meter.Track(context.Background(), rec))

	err := meter.Track(context.Background(), &models.UsageRecord{
		ID:     "rec-1",
		Model:  models.ModelHaiku,
		UserID: "user-1",
	})
	require.ErrorIs(t, err, ErrDuplicateRecord)
	assert.Len(t, store.records, 1)
}

func TestTrackValidation(t *testing.T) {
	meter, _, _ := newTestMeter(t)

	err := meter.Track(context.Background(), &models.UsageRecord{
		Model:  models.ModelClass("bogus"),
		UserID: "user-1",
	})
	require.Error(t, err)

	err = meter.Track(context.Background(), &models.UsageRecord{
		Model: models.ModelSonnet,
	})
	require.Error(t, err)
}

func TestTrackAssignsIDAndTimestamp(t *testing.T) {
	meter, store, _ := newTestMeter(t)

	rec := &models.UsageRecord{Model: models.ModelHaiku, UserID: "user-1"}
	require.NoError(t, meter.Track(context.Background(), rec))
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())
	assert.Len(t, store.records, 1)
}

// opusRecord builds an opus record with the given duration in hours.
func opusRecord(id string, hours float64) *models.UsageRecord {
	return &models.UsageRecord{
		ID:         id,
		AgentID:    "agent-opus",
		AgentType:  models.AgentTypeTechnicalArchitect,
		Model:      models.ModelOpus,
		DurationMs: int64(hours * 3_600_000),
		UserID:     "user-1",
		CreatedAt:  time.Now(),
	}
}

func TestThresholdAlertFiresOnceInsideBand(t *testing.T) {
	meter, store, events := newTestMeter(t)
	sub := events.Subscribe(bus.TopicUsageAlert)
	defer sub.Close()

	// 24.6h of a 35h opus limit = 70.3%, inside the [70, 75) band.
	require.NoError(t, meter.Track(context.Background(), opusRecord("rec-1", 24.6)))

	require.Len(t, store.alerts, 1)
	alert := store.alerts[0]
	assert.Equal(t, models.AlertKindThreshold, alert.Kind)
	assert.Equal(t, "weekly-opus-hours", alert.Series)
	assert.Equal(t, models.AlertLevelWarning, alert.Level)
	assert.Equal(t, 70.0, alert.Threshold)
	assert.Equal(t, 35.0, alert.Limit)
	assert.InDelta(t, 24.6, alert.CurrentUsage, 0.01)

	evt := receiveEvent(t, sub)
	assert.Equal(t, bus.TopicUsageAlert, evt.Topic)

	// Still inside the band: the week's (user, series, threshold) alert has
	// already fired, so nothing new is raised.
	require.NoError(t, meter.Track(context.Background(), opusRecord("rec-2", 0.2)))
	assert.Len(t, store.alerts, 1)
}

func TestThresholdSeverityEscalates(t *testing.T) {
	meter, store, _ := newTestMeter(t)

	// Jump straight into the 90 band: 31.6h = 90.3%.
	require.NoError(t, meter.Track(context.Background(), opusRecord("rec-1", 31.6)))
	require.Len(t, store.alerts, 1)
	assert.Equal(t, 90.0, store.alerts[0].Threshold)
	assert.Equal(t, models.AlertLevelCritical, store.alerts[0].Level)

	// Push past 100%: 35.2h total = 100.6%.
	require.NoError(t, meter.Track(context.Background(), opusRecord("rec-2", 3.6)))
	require.Len(t, store.alerts, 2)
	assert.Equal(t, 100.0, store.alerts[1].Threshold)
	assert.Equal(t, models.AlertLevelCritical, store.alerts[1].Level)
}

func TestThresholdSkipsUnmeteredModel(t *testing.T) {
	meter, store, _ := newTestMeter(t)

	rec := &models.UsageRecord{
		ID:         "rec-1",
		Model:      models.ModelHaiku,
		DurationMs: 500 * 3_600_000,
		UserID:     "user-1",
	}
	require.NoError(t, meter.Track(context.Background(), rec))
	assert.Empty(t, store.alerts)
}

func TestSummaryAggregatesByModelAndAgentType(t *testing.T) {
	meter, _, _ := newTestMeter(t)
	ctx := context.Background()

	now := time.Now().UTC()
	for i, rec := range []*models.UsageRecord{
		{
			AgentID:      "agent-1",
			AgentType:    models.AgentTypeCodeReviewer,
			Model:        models.ModelSonnet,
			InputTokens:  1000,
			OutputTokens: 2000,
			DurationMs:   60_000,
			UserID:       "user-1",
			CreatedAt:    now,
		},
		{
			AgentID:      "agent-1",
			AgentType:    models.AgentTypeCodeReviewer,
			Model:        models.ModelSonnet,
			InputTokens:  500,
			OutputTokens: 500,
			DurationMs:   120_000,
			UserID:       "user-1",
			CreatedAt:    now,
		},
		{
			AgentID:      "agent-2",
			AgentType:    models.AgentTypeTechnicalArchitect,
			Model:        models.ModelOpus,
			InputTokens:  100,
			OutputTokens: 100,
			DurationMs:   3_600_000,
			UserID:       "user-1",
			CreatedAt:    now,
		},
	} {
		rec.ID = fmt.Sprintf("rec-%d", i)
		require.NoError(t, meter.Track(ctx, rec))
	}

	summary, err := meter.Summary(ctx, models.WindowWeek, "user-1")
	require.NoError(t, err)

	assert.Equal(t, 4200, summary.TotalTokens)
	require.Contains(t, summary.Models, models.ModelSonnet)
	require.Contains(t, summary.Models, models.ModelOpus)
	assert.Equal(t, 1500, summary.Models[models.ModelSonnet].InputTokens)
	assert.Equal(t, 2500, summary.Models[models.ModelSonnet].OutputTokens)

	reviewer := summary.AgentTypes[models.AgentTypeCodeReviewer]
	require.NotNil(t, reviewer)
	assert.Equal(t, 2, reviewer.Calls)
	assert.Equal(t, 90_000.0, reviewer.AvgDurationMs)

	// Weekly summaries carry percent-of-limit for metered classes.
	opus := summary.Models[models.ModelOpus]
	require.NotNil(t, opus.PercentOfLimit)
	assert.InDelta(t, 1.0/35*100, *opus.PercentOfLimit, 0.01)
}

func TestSummaryDailyOmitsPercentOfLimit(t *testing.T) {
	meter, _, _ := newTestMeter(t)
	ctx := context.Background()

	require.NoError(t, meter.Track(ctx, opusRecord("rec-1", 1)))
	summary, err := meter.Summary(ctx, models.WindowDay, "user-1")
	require.NoError(t, err)
	require.Contains(t, summary.Models, models.ModelOpus)
	assert.Nil(t, summary.Models[models.ModelOpus].PercentOfLimit)
}

func TestSummaryRejectsInvalidWindow(t *testing.T) {
	meter, _, _ := newTestMeter(t)
	_, err := meter.Summary(context.Background(), models.Window("fortnight"), "user-1")
	require.Error(t, err)
}

func TestRealTimeIncludesLimits(t *testing.T) {
	meter, _, _ := newTestMeter(t)

	usage, err := meter.RealTime(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.WindowDay, usage.Today.Window)
	assert.Equal(t, models.WindowWeek, usage.Week.Window)
	assert.Equal(t, 35.0, usage.Limits.WeeklyOpusHours)
}

func TestReportBuildsDailyBreakdownAndProjections(t *testing.T) {
	meter, _, _ := newTestMeter(t)
	ctx := context.Background()

	start := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		rec := &models.UsageRecord{
			ID:           fmt.Sprintf("rec-%d", i),
			AgentType:    models.AgentTypeGeneralPurpose,
			Model:        models.ModelSonnet,
			InputTokens:  1_000_000,
			OutputTokens: 0,
			UserID:       "user-1",
			CreatedAt:    start.AddDate(0, 0, i).Add(12 * time.Hour),
		}
		require.NoError(t, meter.Track(ctx, rec))
	}

	report, err := meter.Report(ctx, "user-1", start, start.AddDate(0, 0, 2))
	require.NoError(t, err)
	require.Len(t, report.Days, 3)
	for _, day := range report.Days {
		assert.Equal(t, 1, day.Calls)
		assert.Equal(t, 3.0, day.TotalCost)
	}
	assert.Equal(t, 9.0, report.TotalCost)
	assert.Equal(t, 3.0, report.AvgDailyCost)
	assert.Equal(t, 21.0, report.Projected7DayCost)
	assert.Equal(t, 90.0, report.Projected30DayCost)
}

func TestReportRejectsInvertedRange(t *testing.T) {
	meter, _, _ := newTestMeter(t)
	now := time.Now()
	_, err := meter.Report(context.Background(), "user-1", now, now.AddDate(0, 0, -1))
	require.Error(t, err)
}

func TestAcknowledgeAlert(t *testing.T) {
	meter, store, _ := newTestMeter(t)
	ctx := context.Background()

	require.NoError(t, meter.Track(ctx, opusRecord("rec-1", 24.6)))
	require.Len(t, store.alerts, 1)

	ok, err := meter.Acknowledge(ctx, store.alerts[0].ID, "admin-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, store.alerts[0].Acknowledged)
	assert.Equal(t, "admin-1", store.alerts[0].AcknowledgedBy)

	ok, err = meter.Acknowledge(ctx, "no-such-alert", "admin-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPruneOlderThan(t *testing.T) {
	meter, store, _ := newTestMeter(t)
	ctx := context.Background()

	old := &models.UsageRecord{
		ID:        "rec-old",
		Model:     models.ModelHaiku,
		UserID:    "user-1",
		CreatedAt: time.Now().AddDate(0, 0, -120),
	}
	require.NoError(t, meter.Track(ctx, old))
	require.NoError(t, meter.Track(ctx, &models.UsageRecord{
		ID:     "rec-new",
		Model:  models.ModelHaiku,
		UserID: "user-1",
	}))

	removed, err := meter.PruneOlderThan(ctx, time.Now().AddDate(0, 0, -90))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	require.Len(t, store.records, 1)
	assert.Equal(t, "rec-new", store.records[0].ID)
}
