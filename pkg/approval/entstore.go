package approval

import (
	"context"
	"fmt"
	"time"

	"github.com/MiniSankaz/fleetd/ent"
	"github.com/MiniSankaz/fleetd/ent/approvaldecision"
	"github.com/MiniSankaz/fleetd/ent/approvalrequest"
	"github.com/MiniSankaz/fleetd/ent/auditentry"
	"github.com/MiniSankaz/fleetd/pkg/models"
)

// EntStore persists approval requests, decisions, and audit entries to
// Postgres.
type EntStore struct {
	client *ent.Client
}

// NewEntStore creates a durable approval store over an ent client.
func NewEntStore(client *ent.Client) *EntStore {
	if client == nil {
		panic("approval.NewEntStore: client must not be nil")
	}
	return &EntStore{client: client}
}

// CreateRequest persists a newly submitted request.
func (s *EntStore) CreateRequest(ctx context.Context, req *models.ApprovalRequest) error {
	builder := s.client.ApprovalRequest.Create().
		SetID(req.ID).
		SetType(string(req.Type)).
		SetLevel(string(req.Level)).
		SetStatus(string(req.State)).
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetRequesterID(req.RequesterID).
		SetOperation(req.Operation).
		SetApprovers(req.Approvers).
		SetRequiredCount(req.RequiredCount).
		SetRequestedAt(req.RequestedAt).
		SetExpiresAt(req.ExpiresAt).
		SetTimeoutMs(req.TimeoutMs).
		SetContext(req.Context).
		SetPolicyID(req.PolicyID).
		SetEscalationLevel(req.EscalationLevel)
	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("creating approval request: %w", err)
	}
	return nil
}

// UpdateRequest persists state, escalation, bypass, and resolution changes.
func (s *EntStore) UpdateRequest(ctx context.Context, req *models.ApprovalRequest) error {
	builder := s.client.ApprovalRequest.UpdateOneID(req.ID).
		SetStatus(string(req.State)).
		SetEscalationLevel(req.EscalationLevel)
	if len(req.EscalationHistory) > 0 {
		builder.SetEscalationHistory(req.EscalationHistory)
	}
	if req.Bypass != nil {
		builder.SetBypassedBy(req.Bypass.By).
			SetBypassReason(req.Bypass.Reason).
			SetBypassedAt(req.Bypass.At)
	}
	if req.ResolvedAt != nil {
		builder.SetResolvedAt(*req.ResolvedAt)
	}
	if err := builder.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("updating approval request: %w", err)
	}
	return nil
}

// GetRequest loads a request with its decisions.
func (s *EntStore) GetRequest(ctx context.Context, id string) (*models.ApprovalRequest, error) {
	row, err := s.client.ApprovalRequest.Query().
		Where(approvalrequest.IDEQ(id)).
		WithDecisions(func(q *ent.ApprovalDecisionQuery) {
			q.Order(ent.Asc(approvaldecision.FieldCreatedAt))
		}).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading approval request: %w", err)
	}
	return requestFromRow(row), nil
}

// InsertDecision persists one verdict. The unique (request_id, decider_id)
// index enforces one decision per approver.
func (s *EntStore) InsertDecision(ctx context.Context, d *models.Decision) error {
	err := s.client.ApprovalDecision.Create().
		SetID(d.ID).
		SetRequestID(d.RequestID).
		SetDeciderID(d.DeciderID).
		SetChoice(string(d.Choice)).
		SetReason(d.Reason).
		SetCreatedAt(d.CreatedAt).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyDecided
		}
		return fmt.Errorf("inserting approval decision: %w", err)
	}
	return nil
}

// AppendAudit appends one audit entry.
func (s *EntStore) AppendAudit(ctx context.Context, entry *models.AuditEntry) error {
	builder := s.client.AuditEntry.Create().
		SetID(entry.ID).
		SetRequestID(entry.RequestID).
		SetAction(entry.Action).
		SetActor(entry.Actor).
		SetSeverity(string(entry.Severity)).
		SetCreatedAt(entry.CreatedAt)
	if entry.Details != nil {
		builder.SetDetails(entry.Details)
	}
	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("appending audit entry: %w", err)
	}
	return nil
}

// AuditFor returns a request's audit entries, oldest first.
func (s *EntStore) AuditFor(ctx context.Context, requestID string) ([]*models.AuditEntry, error) {
	rows, err := s.client.AuditEntry.Query().
		Where(auditentry.RequestIDEQ(requestID)).
		Order(ent.Asc(auditentry.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying audit entries: %w", err)
	}
	out := make([]*models.AuditEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, &models.AuditEntry{
			ID:        row.ID,
			RequestID: row.RequestID,
			Action:    row.Action,
			Actor:     row.Actor,
			Severity:  models.AuditSeverity(row.Severity),
			Details:   row.Details,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}

// RequestsSince returns requests submitted at or after the cutoff.
func (s *EntStore) RequestsSince(ctx context.Context, since time.Time) ([]*models.ApprovalRequest, error) {
	rows, err := s.client.ApprovalRequest.Query().
		Where(approvalrequest.RequestedAtGTE(since)).
		WithDecisions().
		Order(ent.Asc(approvalrequest.FieldRequestedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying approval requests: %w", err)
	}
	out := make([]*models.ApprovalRequest, 0, len(rows))
	for _, row := range rows {
		out = append(out, requestFromRow(row))
	}
	return out, nil
}

// PruneAudit deletes audit entries older than the cutoff.
func (s *EntStore) PruneAudit(ctx context.Context, olderThan time.Time) (int, error) {
	count, err := s.client.AuditEntry.Delete().
		Where(auditentry.CreatedAtLT(olderThan)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("pruning audit entries: %w", err)
	}
	return count, nil
}

func requestFromRow(row *ent.ApprovalRequest) *models.ApprovalRequest {
	req := &models.ApprovalRequest{
		ID:                row.ID,
		Type:              models.ApprovalType(row.Type),
		Level:             models.ApprovalLevel(row.Level),
		State:             models.ApprovalState(row.Status),
		Title:             row.Title,
		Description:       row.Description,
		RequesterID:       row.RequesterID,
		Operation:         row.Operation,
		Approvers:         row.Approvers,
		RequiredCount:     row.RequiredCount,
		RequestedAt:       row.RequestedAt,
		ExpiresAt:         row.ExpiresAt,
		TimeoutMs:         row.TimeoutMs,
		Context:           row.Context,
		PolicyID:          row.PolicyID,
		EscalationLevel:   row.EscalationLevel,
		EscalationHistory: row.EscalationHistory,
		ResolvedAt:        row.ResolvedAt,
	}
	if row.BypassedBy != "" && row.BypassedAt != nil {
		req.Bypass = &models.Bypass{
			By:     row.BypassedBy,
			Reason: row.BypassReason,
			At:     *row.BypassedAt,
		}
	}
	for _, d := range row.Edges.Decisions {
		req.Decisions = append(req.Decisions, &models.Decision{
			ID:        d.ID,
			RequestID: d.RequestID,
			DeciderID: d.DeciderID,
			Choice:    models.Choice(d.Choice),
			Reason:    d.Reason,
			CreatedAt: d.CreatedAt,
		})
	}
	return req
}
