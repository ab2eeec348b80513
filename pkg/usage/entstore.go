package usage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MiniSankaz/fleetd/ent"
	"github.com/MiniSankaz/fleetd/ent/usagealert"
	"github.com/MiniSankaz/fleetd/ent/usagemetric"
	"github.com/MiniSankaz/fleetd/pkg/models"
)

// EntStore persists usage records and alerts to Postgres.
type EntStore struct {
	client *ent.Client
}

// NewEntStore creates a durable usage store over an ent client.
func NewEntStore(client *ent.Client) *EntStore {
	if client == nil {
		panic("usage.NewEntStore: client must not be nil")
	}
	return &EntStore{client: client}
}

// InsertRecord persists a record. A duplicate id is rejected with
// ErrDuplicateRecord.
func (s *EntStore) InsertRecord(ctx context.Context, rec *models.UsageRecord) error {
	builder := s.client.UsageMetric.Create().
		SetID(rec.ID).
		SetAgentID(rec.AgentID).
		SetAgentType(string(rec.AgentType)).
		SetModel(string(rec.Model)).
		SetInputTokens(rec.InputTokens).
		SetOutputTokens(rec.OutputTokens).
		SetDurationMs(rec.DurationMs).
		SetCost(rec.Cost).
		SetUserID(rec.UserID).
		SetSessionID(rec.SessionID).
		SetTaskID(rec.TaskID).
		SetCreatedAt(rec.CreatedAt)
	if rec.Metadata != nil {
		builder.SetMetadata(rec.Metadata)
	}
	if err := builder.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return ErrDuplicateRecord
		}
		return fmt.Errorf("inserting usage record: %w", err)
	}
	return nil
}

// RecordsInRange returns a user's records with created_at in [start, end),
// oldest first.
func (s *EntStore) RecordsInRange(ctx context.Context, userID string, start, end time.Time) ([]*models.UsageRecord, error) {
	rows, err := s.client.UsageMetric.Query().
		Where(
			usagemetric.UserIDEQ(userID),
			usagemetric.CreatedAtGTE(start),
			usagemetric.CreatedAtLT(end),
		).
		Order(ent.Asc(usagemetric.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying usage records: %w", err)
	}
	return metricsToRecords(rows), nil
}

// RecordsByAgent returns up to limit records for an agent, newest first.
func (s *EntStore) RecordsByAgent(ctx context.Context, agentID string, limit int) ([]*models.UsageRecord, error) {
	rows, err := s.client.UsageMetric.Query().
		Where(usagemetric.AgentIDEQ(agentID)).
		Order(ent.Desc(usagemetric.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying agent usage records: %w", err)
	}
	return metricsToRecords(rows), nil
}

// PruneRecords deletes records older than the cutoff.
func (s *EntStore) PruneRecords(ctx context.Context, olderThan time.Time) (int, error) {
	count, err := s.client.UsageMetric.Delete().
		Where(usagemetric.CreatedAtLT(olderThan)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("pruning usage records: %w", err)
	}
	return count, nil
}

// InsertAlert persists a raised alert.
func (s *EntStore) InsertAlert(ctx context.Context, alert *models.Alert) error {
	if alert.ID == "" {
		alert.ID = uuid.New().String()
	}
	err := s.client.UsageAlert.Create().
		SetID(alert.ID).
		SetUserID(alert.UserID).
		SetType(string(alert.Kind)).
		SetSeries(alert.Series).
		SetLevel(string(alert.Level)).
		SetThreshold(alert.Threshold).
		SetCurrentUsage(alert.CurrentUsage).
		SetLimitValue(alert.Limit).
		SetMessage(alert.Message).
		SetCreatedAt(alert.CreatedAt).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("inserting usage alert: %w", err)
	}
	return nil
}

// AlertExists reports whether an alert for (user, series, threshold) was
// raised at or after since.
func (s *EntStore) AlertExists(ctx context.Context, userID, series string, threshold float64, since time.Time) (bool, error) {
	exists, err := s.client.UsageAlert.Query().
		Where(
			usagealert.UserIDEQ(userID),
			usagealert.SeriesEQ(series),
			usagealert.ThresholdEQ(threshold),
			usagealert.CreatedAtGTE(since),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("checking alert existence: %w", err)
	}
	return exists, nil
}

// Alerts lists alerts matching the filter, newest first.
func (s *EntStore) Alerts(ctx context.Context, filter AlertFilter) ([]*models.Alert, error) {
	query := s.client.UsageAlert.Query()
	if filter.UserID != "" {
		query = query.Where(usagealert.UserIDEQ(filter.UserID))
	}
	if filter.Acknowledged != nil {
		query = query.Where(usagealert.AcknowledgedEQ(*filter.Acknowledged))
	}
	if filter.Level != "" {
		query = query.Where(usagealert.LevelEQ(string(filter.Level)))
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	rows, err := query.
		Order(ent.Desc(usagealert.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying usage alerts: %w", err)
	}
	out := make([]*models.Alert, 0, len(rows))
	for _, row := range rows {
		out = append(out, alertFromRow(row))
	}
	return out, nil
}

// AlertsInRange returns a user's alerts with created_at in [start, end).
func (s *EntStore) AlertsInRange(ctx context.Context, userID string, start, end time.Time) ([]*models.Alert, error) {
	rows, err := s.client.UsageAlert.Query().
		Where(
			usagealert.UserIDEQ(userID),
			usagealert.CreatedAtGTE(start),
			usagealert.CreatedAtLT(end),
		).
		Order(ent.Asc(usagealert.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying usage alerts: %w", err)
	}
	out := make([]*models.Alert, 0, len(rows))
	for _, row := range rows {
		out = append(out, alertFromRow(row))
	}
	return out, nil
}

// Acknowledge marks an alert acknowledged. Acknowledging twice is a no-op.
func (s *EntStore) Acknowledge(ctx context.Context, alertID, actorID string) (bool, error) {
	row, err := s.client.UsageAlert.Get(ctx, alertID)
	if ent.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("loading usage alert: %w", err)
	}
	if row.Acknowledged {
		return true, nil
	}
	err = s.client.UsageAlert.UpdateOneID(alertID).
		SetAcknowledged(true).
		SetAcknowledgedBy(actorID).
		SetAcknowledgedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("acknowledging usage alert: %w", err)
	}
	return true, nil
}

func metricsToRecords(rows []*ent.UsageMetric) []*models.UsageRecord {
	out := make([]*models.UsageRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, &models.UsageRecord{
			ID:           row.ID,
			AgentID:      row.AgentID,
			AgentType:    models.AgentType(row.AgentType),
			Model:        models.ModelClass(row.Model),
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			DurationMs:   row.DurationMs,
			Cost:         row.Cost,
			UserID:       row.UserID,
			SessionID:    row.SessionID,
			TaskID:       row.TaskID,
			Metadata:     row.Metadata,
			CreatedAt:    row.CreatedAt,
		})
	}
	return out
}

func alertFromRow(row *ent.UsageAlert) *models.Alert {
	return &models.Alert{
		ID:             row.ID,
		UserID:         row.UserID,
		Kind:           models.AlertKind(row.Type),
		Series:         row.Series,
		Level:          models.AlertLevel(row.Level),
		Threshold:      row.Threshold,
		CurrentUsage:   row.CurrentUsage,
		Limit:          row.LimitValue,
		Message:        row.Message,
		Acknowledged:   row.Acknowledged,
		AcknowledgedBy: row.AcknowledgedBy,
		AcknowledgedAt: row.AcknowledgedAt,
		CreatedAt:      row.CreatedAt,
	}
}
