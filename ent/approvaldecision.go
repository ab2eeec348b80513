// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/MiniSankaz/fleetd/ent/approvaldecision"
	"github.com/MiniSankaz/fleetd/ent/approvalrequest"
)

// ApprovalDecision is the model entity for the ApprovalDecision schema.
type ApprovalDecision struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RequestID holds the value of the "request_id" field.
	RequestID string `json:"request_id,omitempty"`
	// DeciderID holds the value of the "decider_id" field.
	DeciderID string `json:"decider_id,omitempty"`
	// approve or reject
	Choice string `json:"choice,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ApprovalDecisionQuery when eager-loading is set.
	Edges        ApprovalDecisionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ApprovalDecisionEdges holds the relations/edges for other nodes in the graph.
type ApprovalDecisionEdges struct {
	// Request holds the value of the request edge.
	Request *ApprovalRequest `json:"request,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RequestOrErr returns the Request value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ApprovalDecisionEdges) RequestOrErr() (*ApprovalRequest, error) {
	if e.Request != nil {
		return e.Request, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: approvalrequest.Label}
	}
	return nil, &NotLoadedError{edge: "request"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ApprovalDecision) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case approvaldecision.FieldID, approvaldecision.FieldRequestID, approvaldecision.FieldDeciderID, approvaldecision.FieldChoice, approvaldecision.FieldReason:
			values[i] = new(sql.NullString)
		case approvaldecision.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ApprovalDecision fields.
func (_m *ApprovalDecision) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case approvaldecision.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case approvaldecision.FieldRequestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value.Valid {
				_m.RequestID = value.String
			}
		case approvaldecision.FieldDeciderID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decider_id", values[i])
			} else if value.Valid {
				_m.DeciderID = value.String
			}
		case approvaldecision.FieldChoice:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field choice", values[i])
			} else if value.Valid {
				_m.Choice = value.String
			}
		case approvaldecision.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case approvaldecision.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ApprovalDecision.
// This includes values selected through modifiers, order, etc.
func (_m *ApprovalDecision) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRequest queries the "request" edge of the ApprovalDecision entity.
func (_m *ApprovalDecision) QueryRequest() *ApprovalRequestQuery {
	return NewApprovalDecisionClient(_m.config).QueryRequest(_m)
}

// Update returns a builder for updating this ApprovalDecision.
// Note that you need to call ApprovalDecision.Unwrap() before calling this method if this ApprovalDecision
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ApprovalDecision) Update() *ApprovalDecisionUpdateOne {
	return NewApprovalDecisionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ApprovalDecision entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ApprovalDecision) Unwrap() *ApprovalDecision {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ApprovalDecision is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ApprovalDecision) String() string {
	var builder strings.Builder
	builder.WriteString("ApprovalDecision(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("request_id=")
	builder.WriteString(_m.RequestID)
	builder.WriteString(", ")
	builder.WriteString("decider_id=")
	builder.WriteString(_m.DeciderID)
	builder.WriteString(", ")
	builder.WriteString("choice=")
	builder.WriteString(_m.Choice)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ApprovalDecisions is a parsable slice of ApprovalDecision.
type ApprovalDecisions []*ApprovalDecision
