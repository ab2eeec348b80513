// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/MiniSankaz/fleetd/ent/usagealert"
)

// UsageAlert is the model entity for the UsageAlert schema.
type UsageAlert struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Alert kind: threshold, limit, or error
	Type string `json:"type,omitempty"`
	// Metered series for threshold alerts, e.g. weekly-opus-hours
	Series string `json:"series,omitempty"`
	// info, warning, or critical
	Level string `json:"level,omitempty"`
	// Threshold holds the value of the "threshold" field.
	Threshold float64 `json:"threshold,omitempty"`
	// CurrentUsage holds the value of the "current_usage" field.
	CurrentUsage float64 `json:"current_usage,omitempty"`
	// LimitValue holds the value of the "limit_value" field.
	LimitValue float64 `json:"limit_value,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// Acknowledged holds the value of the "acknowledged" field.
	Acknowledged bool `json:"acknowledged,omitempty"`
	// AcknowledgedAt holds the value of the "acknowledged_at" field.
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
	// AcknowledgedBy holds the value of the "acknowledged_by" field.
	AcknowledgedBy string `json:"acknowledged_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UsageAlert) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case usagealert.FieldAcknowledged:
			values[i] = new(sql.NullBool)
		case usagealert.FieldThreshold, usagealert.FieldCurrentUsage, usagealert.FieldLimitValue:
			values[i] = new(sql.NullFloat64)
		case usagealert.FieldID, usagealert.FieldUserID, usagealert.FieldType, usagealert.FieldSeries, usagealert.FieldLevel, usagealert.FieldMessage, usagealert.FieldAcknowledgedBy:
			values[i] = new(sql.NullString)
		case usagealert.FieldAcknowledgedAt, usagealert.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UsageAlert fields.
func (_m *UsageAlert) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case usagealert.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case usagealert.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case usagealert.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = value.String
			}
		case usagealert.FieldSeries:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field series", values[i])
			} else if value.Valid {
				_m.Series = value.String
			}
		case usagealert.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = value.String
			}
		case usagealert.FieldThreshold:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field threshold", values[i])
			} else if value.Valid {
				_m.Threshold = value.Float64
			}
		case usagealert.FieldCurrentUsage:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field current_usage", values[i])
			} else if value.Valid {
				_m.CurrentUsage = value.Float64
			}
		case usagealert.FieldLimitValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field limit_value", values[i])
			} else if value.Valid {
				_m.LimitValue = value.Float64
			}
		case usagealert.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case usagealert.FieldAcknowledged:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field acknowledged", values[i])
			} else if value.Valid {
				_m.Acknowledged = value.Bool
			}
		case usagealert.FieldAcknowledgedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field acknowledged_at", values[i])
			} else if value.Valid {
				_m.AcknowledgedAt = new(time.Time)
				*_m.AcknowledgedAt = value.Time
			}
		case usagealert.FieldAcknowledgedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field acknowledged_by", values[i])
			} else if value.Valid {
				_m.AcknowledgedBy = value.String
			}
		case usagealert.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the UsageAlert.
// This includes values selected through modifiers, order, etc.
func (_m *UsageAlert) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UsageAlert.
// Note that you need to call UsageAlert.Unwrap() before calling this method if this UsageAlert
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UsageAlert) Update() *UsageAlertUpdateOne {
	return NewUsageAlertClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UsageAlert entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UsageAlert) Unwrap() *UsageAlert {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UsageAlert is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UsageAlert) String() string {
	var builder strings.Builder
	builder.WriteString("UsageAlert(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(_m.Type)
	builder.WriteString(", ")
	builder.WriteString("series=")
	builder.WriteString(_m.Series)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(_m.Level)
	builder.WriteString(", ")
	builder.WriteString("threshold=")
	builder.WriteString(fmt.Sprintf("%v", _m.Threshold))
	builder.WriteString(", ")
	builder.WriteString("current_usage=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentUsage))
	builder.WriteString(", ")
	builder.WriteString("limit_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.LimitValue))
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("acknowledged=")
	builder.WriteString(fmt.Sprintf("%v", _m.Acknowledged))
	builder.WriteString(", ")
	if v := _m.AcknowledgedAt; v != nil {
		builder.WriteString("acknowledged_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("acknowledged_by=")
	builder.WriteString(_m.AcknowledgedBy)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UsageAlerts is a parsable slice of UsageAlert.
type UsageAlerts []*UsageAlert
