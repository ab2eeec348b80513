package usage

import (
	"context"
	"errors"
	"time"

	"github.com/MiniSankaz/fleetd/pkg/models"
)

// ErrDuplicateRecord is returned when a record id has already been tracked.
// Tracking is idempotent under a unique record id: the re-submission is
// rejected and aggregates are left unchanged.
var ErrDuplicateRecord = errors.New("usage record already tracked")

// AlertFilter selects alerts for listing. Zero-valued fields are ignored.
type AlertFilter struct {
	UserID       string
	Acknowledged *bool
	Level        models.AlertLevel
	Limit        int
}

// Store is the durable usage store. The production implementation persists
// to Postgres via ent; see EntStore.
type Store interface {
	// InsertRecord persists a record, returning ErrDuplicateRecord when the
	// id is already present.
	InsertRecord(ctx context.Context, rec *models.UsageRecord) error

	// RecordsInRange returns a user's records with created_at in
	// [start, end), oldest first.
	RecordsInRange(ctx context.Context, userID string, start, end time.Time) ([]*models.UsageRecord, error)

	// RecordsByAgent returns up to limit records for an agent, newest first.
	RecordsByAgent(ctx context.Context, agentID string, limit int) ([]*models.UsageRecord, error)

	// PruneRecords deletes records older than the cutoff and returns the
	// count removed.
	PruneRecords(ctx context.Context, olderThan time.Time) (int, error)

	// InsertAlert persists a raised alert.
	InsertAlert(ctx context.Context, alert *models.Alert) error

	// AlertExists reports whether an alert for (user, series, threshold)
	// was raised at or after since.
	AlertExists(ctx context.Context, userID, series string, threshold float64, since time.Time) (bool, error)

	// Alerts lists alerts matching the filter, newest first.
	Alerts(ctx context.Context, filter AlertFilter) ([]*models.Alert, error)

	// AlertsInRange returns a user's alerts with created_at in [start, end).
	AlertsInRange(ctx context.Context, userID string, start, end time.Time) ([]*models.Alert, error)

	// Acknowledge marks an alert acknowledged. Returns false for unknown
	// ids; acknowledging twice is a no-op returning true.
	Acknowledge(ctx context.Context, alertID, actorID string) (bool, error)
}
