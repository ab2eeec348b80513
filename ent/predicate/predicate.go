// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ApprovalDecision is the predicate function for approvaldecision builders.
type ApprovalDecision func(*sql.Selector)

// ApprovalRequest is the predicate function for approvalrequest builders.
type ApprovalRequest func(*sql.Selector)

// AuditEntry is the predicate function for auditentry builders.
type AuditEntry func(*sql.Selector)

// UsageAlert is the predicate function for usagealert builders.
type UsageAlert func(*sql.Selector)

// UsageMetric is the predicate function for usagemetric builders.
type UsageMetric func(*sql.Selector)
