// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/MiniSankaz/fleetd/ent/approvalrequest"
	"github.com/MiniSankaz/fleetd/pkg/models"
)

// ApprovalRequest is the model entity for the ApprovalRequest schema.
type ApprovalRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Approval type, e.g. code-deployment
	Type string `json:"type,omitempty"`
	// user, admin, security, emergency, or system
	Level string `json:"level,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// RequesterID holds the value of the "requester_id" field.
	RequesterID string `json:"requester_id,omitempty"`
	// Action, resource, parameters, risk, reversible
	Operation models.OperationDescriptor `json:"operation,omitempty"`
	// Approvers holds the value of the "approvers" field.
	Approvers []string `json:"approvers,omitempty"`
	// RequiredCount holds the value of the "required_count" field.
	RequiredCount int `json:"required_count,omitempty"`
	// RequestedAt holds the value of the "requested_at" field.
	RequestedAt time.Time `json:"requested_at,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	// TimeoutMs holds the value of the "timeout_ms" field.
	TimeoutMs int64 `json:"timeout_ms,omitempty"`
	// Context holds the value of the "context" field.
	Context models.ApprovalContext `json:"context,omitempty"`
	// PolicyID holds the value of the "policy_id" field.
	PolicyID string `json:"policy_id,omitempty"`
	// EscalationLevel holds the value of the "escalation_level" field.
	EscalationLevel int `json:"escalation_level,omitempty"`
	// EscalationHistory holds the value of the "escalation_history" field.
	EscalationHistory []models.EscalationEntry `json:"escalation_history,omitempty"`
	// BypassedBy holds the value of the "bypassed_by" field.
	BypassedBy string `json:"bypassed_by,omitempty"`
	// BypassReason holds the value of the "bypass_reason" field.
	BypassReason string `json:"bypass_reason,omitempty"`
	// BypassedAt holds the value of the "bypassed_at" field.
	BypassedAt *time.Time `json:"bypassed_at,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ApprovalRequestQuery when eager-loading is set.
	Edges        ApprovalRequestEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ApprovalRequestEdges holds the relations/edges for other nodes in the graph.
type ApprovalRequestEdges struct {
	// Decisions holds the value of the decisions edge.
	Decisions []*ApprovalDecision `json:"decisions,omitempty"`
	// AuditEntries holds the value of the audit_entries edge.
	AuditEntries []*AuditEntry `json:"audit_entries,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DecisionsOrErr returns the Decisions value or an error if the edge
// was not loaded in eager-loading.
func (e ApprovalRequestEdges) DecisionsOrErr() ([]*ApprovalDecision, error) {
	if e.loadedTypes[0] {
		return e.Decisions, nil
	}
	return nil, &NotLoadedError{edge: "decisions"}
}

// AuditEntriesOrErr returns the AuditEntries value or an error if the edge
// was not loaded in eager-loading.
func (e ApprovalRequestEdges) AuditEntriesOrErr() ([]*AuditEntry, error) {
	if e.loadedTypes[1] {
		return e.AuditEntries, nil
	}
	return nil, &NotLoadedError{edge: "audit_entries"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ApprovalRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case approvalrequest.FieldOperation, approvalrequest.FieldApprovers, approvalrequest.FieldContext, approvalrequest.FieldEscalationHistory:
			values[i] = new([]byte)
		case approvalrequest.FieldRequiredCount, approvalrequest.FieldTimeoutMs, approvalrequest.FieldEscalationLevel:
			values[i] = new(sql.NullInt64)
		case approvalrequest.FieldID, approvalrequest.FieldType, approvalrequest.FieldLevel, approvalrequest.FieldStatus, approvalrequest.FieldTitle, approvalrequest.FieldDescription, approvalrequest.FieldRequesterID, approvalrequest.FieldPolicyID, approvalrequest.FieldBypassedBy, approvalrequest.FieldBypassReason:
			values[i] = new(sql.NullString)
		case approvalrequest.FieldRequestedAt, approvalrequest.FieldExpiresAt, approvalrequest.FieldBypassedAt, approvalrequest.FieldResolvedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ApprovalRequest fields.
func (_m *ApprovalRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case approvalrequest.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case approvalrequest.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = value.String
			}
		case approvalrequest.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = value.String
			}
		case approvalrequest.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case approvalrequest.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case approvalrequest.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case approvalrequest.FieldRequesterID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requester_id", values[i])
			} else if value.Valid {
				_m.RequesterID = value.String
			}
		case approvalrequest.FieldOperation:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field operation", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Operation); err != nil {
					return fmt.Errorf("unmarshal field operation: %w", err)
				}
			}
		case approvalrequest.FieldApprovers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field approvers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Approvers); err != nil {
					return fmt.Errorf("unmarshal field approvers: %w", err)
				}
			}
		case approvalrequest.FieldRequiredCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field required_count", values[i])
			} else if value.Valid {
				_m.RequiredCount = int(value.Int64)
			}
		case approvalrequest.FieldRequestedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field requested_at", values[i])
			} else if value.Valid {
				_m.RequestedAt = value.Time
			}
		case approvalrequest.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		case approvalrequest.FieldTimeoutMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field timeout_ms", values[i])
			} else if value.Valid {
				_m.TimeoutMs = value.Int64
			}
		case approvalrequest.FieldContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Context); err != nil {
					return fmt.Errorf("unmarshal field context: %w", err)
				}
			}
		case approvalrequest.FieldPolicyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field policy_id", values[i])
			} else if value.Valid {
				_m.PolicyID = value.String
			}
		case approvalrequest.FieldEscalationLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field escalation_level", values[i])
			} else if value.Valid {
				_m.EscalationLevel = int(value.Int64)
			}
		case approvalrequest.FieldEscalationHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field escalation_history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EscalationHistory); err != nil {
					return fmt.Errorf("unmarshal field escalation_history: %w", err)
				}
			}
		case approvalrequest.FieldBypassedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bypassed_by", values[i])
			} else if value.Valid {
				_m.BypassedBy = value.String
			}
		case approvalrequest.FieldBypassReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bypass_reason", values[i])
			} else if value.Valid {
				_m.BypassReason = value.String
			}
		case approvalrequest.FieldBypassedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field bypassed_at", values[i])
			} else if value.Valid {
				_m.BypassedAt = new(time.Time)
				*_m.BypassedAt = value.Time
			}
		case approvalrequest.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ApprovalRequest.
// This includes values selected through modifiers, order, etc.
func (_m *ApprovalRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDecisions queries the "decisions" edge of the ApprovalRequest entity.
func (_m *ApprovalRequest) QueryDecisions() *ApprovalDecisionQuery {
	return NewApprovalRequestClient(_m.config).QueryDecisions(_m)
}

// QueryAuditEntries queries the "audit_entries" edge of the ApprovalRequest entity.
func (_m *ApprovalRequest) QueryAuditEntries() *AuditEntryQuery {
	return NewApprovalRequestClient(_m.config).QueryAuditEntries(_m)
}

// Update returns a builder for updating this ApprovalRequest.
// Note that you need to call ApprovalRequest.Unwrap() before calling this method if this ApprovalRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ApprovalRequest) Update() *ApprovalRequestUpdateOne {
	return NewApprovalRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ApprovalRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ApprovalRequest) Unwrap() *ApprovalRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ApprovalRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ApprovalRequest) String() string {
	var builder strings.Builder
	builder.WriteString("ApprovalRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("type=")
	builder.WriteString(_m.Type)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(_m.Level)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("requester_id=")
	builder.WriteString(_m.RequesterID)
	builder.WriteString(", ")
	builder.WriteString("operation=")
	builder.WriteString(fmt.Sprintf("%v", _m.Operation))
	builder.WriteString(", ")
	builder.WriteString("approvers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Approvers))
	builder.WriteString(", ")
	builder.WriteString("required_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiredCount))
	builder.WriteString(", ")
	builder.WriteString("requested_at=")
	builder.WriteString(_m.RequestedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("timeout_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeoutMs))
	builder.WriteString(", ")
	builder.WriteString("context=")
	builder.WriteString(fmt.Sprintf("%v", _m.Context))
	builder.WriteString(", ")
	builder.WriteString("policy_id=")
	builder.WriteString(_m.PolicyID)
	builder.WriteString(", ")
	builder.WriteString("escalation_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.EscalationLevel))
	builder.WriteString(", ")
	builder.WriteString("escalation_history=")
	builder.WriteString(fmt.Sprintf("%v", _m.EscalationHistory))
	builder.WriteString(", ")
	builder.WriteString("bypassed_by=")
	builder.WriteString(_m.BypassedBy)
	builder.WriteString(", ")
	builder.WriteString("bypass_reason=")
	builder.WriteString(_m.BypassReason)
	builder.WriteString(", ")
	if v := _m.BypassedAt; v != nil {
		builder.WriteString("bypassed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ApprovalRequests is a parsable slice of ApprovalRequest.
type ApprovalRequests []*ApprovalRequest
