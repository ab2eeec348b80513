// Code generated by ent, DO NOT EDIT.

package usagealert

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the usagealert type in the database.
	Label = "usage_alert"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldSeries holds the string denoting the series field in the database.
	FieldSeries = "series"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldThreshold holds the string denoting the threshold field in the database.
	FieldThreshold = "threshold"
	// FieldCurrentUsage holds the string denoting the current_usage field in the database.
	FieldCurrentUsage = "current_usage"
	// FieldLimitValue holds the string denoting the limit_value field in the database.
	FieldLimitValue = "limit_value"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldAcknowledged holds the string denoting the acknowledged field in the database.
	FieldAcknowledged = "acknowledged"
	// FieldAcknowledgedAt holds the string denoting the acknowledged_at field in the database.
	FieldAcknowledgedAt = "acknowledged_at"
	// FieldAcknowledgedBy holds the string denoting the acknowledged_by field in the database.
	FieldAcknowledgedBy = "acknowledged_by"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the usagealert in the database.
	Table = "usage_alerts"
)

// Columns holds all SQL columns for usagealert fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldType,
	FieldSeries,
	FieldLevel,
	FieldThreshold,
	FieldCurrentUsage,
	FieldLimitValue,
	FieldMessage,
	FieldAcknowledged,
	FieldAcknowledgedAt,
	FieldAcknowledgedBy,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAcknowledged holds the default value on creation for the "acknowledged" field.
	DefaultAcknowledged bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the UsageAlert queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// BySeries orders the results by the series field.
func BySeries(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeries, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByThreshold orders the results by the threshold field.
func ByThreshold(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThreshold, opts...).ToFunc()
}

// ByCurrentUsage orders the results by the current_usage field.
func ByCurrentUsage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentUsage, opts...).ToFunc()
}

// ByLimitValue orders the results by the limit_value field.
func ByLimitValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLimitValue, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByAcknowledged orders the results by the acknowledged field.
func ByAcknowledged(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcknowledged, opts...).ToFunc()
}

// ByAcknowledgedAt orders the results by the acknowledged_at field.
func ByAcknowledgedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcknowledgedAt, opts...).ToFunc()
}

// ByAcknowledgedBy orders the results by the acknowledged_by field.
func ByAcknowledgedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcknowledgedBy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
