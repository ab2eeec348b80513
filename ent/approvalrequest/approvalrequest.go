// Code generated by ent, DO NOT EDIT.

package approvalrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the approvalrequest type in the database.
	Label = "approval_request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldRequesterID holds the string denoting the requester_id field in the database.
	FieldRequesterID = "requester_id"
	// FieldOperation holds the string denoting the operation field in the database.
	FieldOperation = "operation"
	// FieldApprovers holds the string denoting the approvers field in the database.
	FieldApprovers = "approvers"
	// FieldRequiredCount holds the string denoting the required_count field in the database.
	FieldRequiredCount = "required_count"
	// FieldRequestedAt holds the string denoting the requested_at field in the database.
	FieldRequestedAt = "requested_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldTimeoutMs holds the string denoting the timeout_ms field in the database.
	FieldTimeoutMs = "timeout_ms"
	// FieldContext holds the string denoting the context field in the database.
	FieldContext = "context"
	// FieldPolicyID holds the string denoting the policy_id field in the database.
	FieldPolicyID = "policy_id"
	// FieldEscalationLevel holds the string denoting the escalation_level field in the database.
	FieldEscalationLevel = "escalation_level"
	// FieldEscalationHistory holds the string denoting the escalation_history field in the database.
	FieldEscalationHistory = "escalation_history"
	// FieldBypassedBy holds the string denoting the bypassed_by field in the database.
	FieldBypassedBy = "bypassed_by"
	// FieldBypassReason holds the string denoting the bypass_reason field in the database.
	FieldBypassReason = "bypass_reason"
	// FieldBypassedAt holds the string denoting the bypassed_at field in the database.
	FieldBypassedAt = "bypassed_at"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// EdgeDecisions holds the string denoting the decisions edge name in mutations.
	EdgeDecisions = "decisions"
	// EdgeAuditEntries holds the string denoting the audit_entries edge name in mutations.
	EdgeAuditEntries = "audit_entries"
	// Table holds the table name of the approvalrequest in the database.
	Table = "approval_requests"
	// DecisionsTable is the table that holds the decisions relation/edge.
	DecisionsTable = "approval_decisions"
	// DecisionsInverseTable is the table name for the ApprovalDecision entity.
	// It exists in this package in order to avoid circular dependency with the "approvaldecision" package.
	DecisionsInverseTable = "approval_decisions"
	// DecisionsColumn is the table column denoting the decisions relation/edge.
	DecisionsColumn = "request_id"
	// AuditEntriesTable is the table that holds the audit_entries relation/edge.
	AuditEntriesTable = "audit_entries"
	// AuditEntriesInverseTable is the table name for the AuditEntry entity.
	// It exists in this package in order to avoid circular dependency with the "auditentry" package.
	AuditEntriesInverseTable = "audit_entries"
	// AuditEntriesColumn is the table column denoting the audit_entries relation/edge.
	AuditEntriesColumn = "request_id"
)

// Columns holds all SQL columns for approvalrequest fields.
var Columns = []string{
	FieldID,
	FieldType,
	FieldLevel,
	FieldStatus,
	FieldTitle,
	FieldDescription,
	FieldRequesterID,
	FieldOperation,
	FieldApprovers,
	FieldRequiredCount,
	FieldRequestedAt,
	FieldExpiresAt,
	FieldTimeoutMs,
	FieldContext,
	FieldPolicyID,
	FieldEscalationLevel,
	FieldEscalationHistory,
	FieldBypassedBy,
	FieldBypassReason,
	FieldBypassedAt,
	FieldResolvedAt,
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
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultRequiredCount holds the default value on creation for the "required_count" field.
	DefaultRequiredCount int
	// DefaultRequestedAt holds the default value on creation for the "requested_at" field.
	DefaultRequestedAt func() time.Time
	// DefaultEscalationLevel holds the default value on creation for the "escalation_level" field.
	DefaultEscalationLevel int
)

// OrderOption defines the ordering options for the ApprovalRequest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByRequesterID orders the results by the requester_id field.
func ByRequesterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequesterID, opts...).ToFunc()
}

// ByRequiredCount orders the results by the required_count field.
func ByRequiredCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiredCount, opts...).ToFunc()
}

// ByRequestedAt orders the results by the requested_at field.
func ByRequestedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestedAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByTimeoutMs orders the results by the timeout_ms field.
func ByTimeoutMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeoutMs, opts...).ToFunc()
}

// ByPolicyID orders the results by the policy_id field.
func ByPolicyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPolicyID, opts...).ToFunc()
}

// ByEscalationLevel orders the results by the escalation_level field.
func ByEscalationLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEscalationLevel, opts...).ToFunc()
}

// ByBypassedBy orders the results by the bypassed_by field.
func ByBypassedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBypassedBy, opts...).ToFunc()
}

// ByBypassReason orders the results by the bypass_reason field.
func ByBypassReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBypassReason, opts...).ToFunc()
}

// ByBypassedAt orders the results by the bypassed_at field.
func ByBypassedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBypassedAt, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}

// ByDecisionsCount orders the results by decisions count.
func ByDecisionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDecisionsStep(), opts...)
	}
}

// ByDecisions orders the results by decisions terms.
func ByDecisions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDecisionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAuditEntriesCount orders the results by audit_entries count.
func ByAuditEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAuditEntriesStep(), opts...)
	}
}

// ByAuditEntries orders the results by audit_entries terms.
func ByAuditEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuditEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDecisionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DecisionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DecisionsTable, DecisionsColumn),
	)
}
func newAuditEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuditEntriesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AuditEntriesTable, AuditEntriesColumn),
	)
}
