package approval

import (
	"context"
	"errors"
	"time"

	"github.com/MiniSankaz/fleetd/pkg/models"
)

// Gate operation errors. Contention and validation outcomes callers are
// expected to branch on.
var (
	ErrQueueFull      = errors.New("approval pending set is full")
	ErrNoPolicy       = errors.New("no approval policy matches the request")
	ErrNotFound       = errors.New("approval request not found")
	ErrNotPending     = errors.New("approval request is not pending")
	ErrNotApprover    = errors.New("actor is not in the approver list")
	ErrAlreadyDecided = errors.New("actor has already decided this request")
	ErrSelfApproval   = errors.New("requester may not decide their own request")
	ErrBypassDenied   = errors.New("policy does not allow emergency bypass")
	ErrBypassRole     = errors.New("actor lacks a bypass role for this policy")
)

// Audit action verbs. One entry is appended per verb occurrence.
const (
	ActionRequestSubmitted = "request_submitted"
	ActionDecisionApprove  = "decision_approve"
	ActionDecisionReject   = "decision_reject"
	ActionEmergencyBypass  = "emergency_bypass"
	ActionRequestExpired   = "request_expired"
	ActionEscalated        = "escalated"
	ActionReminderSent     = "reminder_sent"
	ActionCancelled        = "cancelled"
)

// Store is the durable approval store. The production implementation
// persists to Postgres via ent; see EntStore.
type Store interface {
	// CreateRequest persists a newly submitted request.
	CreateRequest(ctx context.Context, req *models.ApprovalRequest) error

	// UpdateRequest persists state, escalation, bypass, and resolution
	// changes to an existing request.
	UpdateRequest(ctx context.Context, req *models.ApprovalRequest) error

	// GetRequest loads a request with its decisions. Returns ErrNotFound
	// for unknown ids.
	GetRequest(ctx context.Context, id string) (*models.ApprovalRequest, error)

	// InsertDecision persists one verdict. A second decision by the same
	// actor on the same request returns ErrAlreadyDecided.
	InsertDecision(ctx context.Context, d *models.Decision) error

	// AppendAudit appends one audit entry.
	AppendAudit(ctx context.Context, entry *models.AuditEntry) error

	// AuditFor returns a request's audit entries, oldest first.
	AuditFor(ctx context.Context, requestID string) ([]*models.AuditEntry, error)

	// RequestsSince returns requests submitted at or after the cutoff.
	RequestsSince(ctx context.Context, since time.Time) ([]*models.ApprovalRequest, error)

	// PruneAudit deletes audit entries older than the cutoff and returns
	// the count removed. Retention is enforced by the cleanup service, not
	// here.
	PruneAudit(ctx context.Context, olderThan time.Time) (int, error)
}
