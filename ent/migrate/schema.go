// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApprovalDecisionsColumns holds the columns for the "approval_decisions" table.
	ApprovalDecisionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "decider_id", Type: field.TypeString},
		{Name: "choice", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeString},
	}
	// ApprovalDecisionsTable holds the schema information for the "approval_decisions" table.
	ApprovalDecisionsTable = &schema.Table{
		Name:       "approval_decisions",
		Columns:    ApprovalDecisionsColumns,
		PrimaryKey: []*schema.Column{ApprovalDecisionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "approval_decisions_approval_requests_decisions",
				Columns:    []*schema.Column{ApprovalDecisionsColumns[5]},
				RefColumns: []*schema.Column{ApprovalRequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "approvaldecision_request_id_decider_id",
				Unique:  true,
				Columns: []*schema.Column{ApprovalDecisionsColumns[5], ApprovalDecisionsColumns[1]},
			},
		},
	}
	// ApprovalRequestsColumns holds the columns for the "approval_requests" table.
	ApprovalRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeString},
		{Name: "level", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "requester_id", Type: field.TypeString},
		{Name: "operation", Type: field.TypeJSON},
		{Name: "approvers", Type: field.TypeJSON},
		{Name: "required_count", Type: field.TypeInt, Default: 1},
		{Name: "requested_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "timeout_ms", Type: field.TypeInt64},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "policy_id", Type: field.TypeString, Nullable: true},
		{Name: "escalation_level", Type: field.TypeInt, Default: 0},
		{Name: "escalation_history", Type: field.TypeJSON, Nullable: true},
		{Name: "bypassed_by", Type: field.TypeString, Nullable: true},
		{Name: "bypass_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "bypassed_at", Type: field.TypeTime, Nullable: true},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
	}
	// ApprovalRequestsTable holds the schema information for the "approval_requests" table.
	ApprovalRequestsTable = &schema.Table{
		Name:       "approval_requests",
		Columns:    ApprovalRequestsColumns,
		PrimaryKey: []*schema.Column{ApprovalRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "approvalrequest_status",
				Unique:  false,
				Columns: []*schema.Column{ApprovalRequestsColumns[3]},
			},
			{
				Name:    "approvalrequest_requester_id",
				Unique:  false,
				Columns: []*schema.Column{ApprovalRequestsColumns[6]},
			},
			{
				Name:    "approvalrequest_type_status",
				Unique:  false,
				Columns: []*schema.Column{ApprovalRequestsColumns[1], ApprovalRequestsColumns[3]},
			},
			{
				Name:    "approvalrequest_requested_at",
				Unique:  false,
				Columns: []*schema.Column{ApprovalRequestsColumns[10]},
			},
		},
	}
	// AuditEntriesColumns holds the columns for the "audit_entries" table.
	AuditEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "action", Type: field.TypeString},
		{Name: "actor", Type: field.TypeString},
		{Name: "severity", Type: field.TypeString, Default: "info"},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeString},
	}
	// AuditEntriesTable holds the schema information for the "audit_entries" table.
	AuditEntriesTable = &schema.Table{
		Name:       "audit_entries",
		Columns:    AuditEntriesColumns,
		PrimaryKey: []*schema.Column{AuditEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_entries_approval_requests_audit_entries",
				Columns:    []*schema.Column{AuditEntriesColumns[6]},
				RefColumns: []*schema.Column{ApprovalRequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditentry_request_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[6], AuditEntriesColumns[5]},
			},
			{
				Name:    "auditentry_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[5]},
			},
		},
	}
	// UsageAlertsColumns holds the columns for the "usage_alerts" table.
	UsageAlertsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "type", Type: field.TypeString},
		{Name: "series", Type: field.TypeString, Nullable: true},
		{Name: "level", Type: field.TypeString},
		{Name: "threshold", Type: field.TypeFloat64},
		{Name: "current_usage", Type: field.TypeFloat64},
		{Name: "limit_value", Type: field.TypeFloat64},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "acknowledged", Type: field.TypeBool, Default: false},
		{Name: "acknowledged_at", Type: field.TypeTime, Nullable: true},
		{Name: "acknowledged_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsageAlertsTable holds the schema information for the "usage_alerts" table.
	UsageAlertsTable = &schema.Table{
		Name:       "usage_alerts",
		Columns:    UsageAlertsColumns,
		PrimaryKey: []*schema.Column{UsageAlertsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "usagealert_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsageAlertsColumns[1], UsageAlertsColumns[12]},
			},
			{
				Name:    "usagealert_user_id_series_threshold_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsageAlertsColumns[1], UsageAlertsColumns[3], UsageAlertsColumns[5], UsageAlertsColumns[12]},
			},
			{
				Name:    "usagealert_acknowledged",
				Unique:  false,
				Columns: []*schema.Column{UsageAlertsColumns[9]},
			},
		},
	}
	// UsageMetricsColumns holds the columns for the "usage_metrics" table.
	UsageMetricsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "agent_type", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt},
		{Name: "output_tokens", Type: field.TypeInt},
		{Name: "duration_ms", Type: field.TypeInt64},
		{Name: "cost", Type: field.TypeFloat64},
		{Name: "user_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsageMetricsTable holds the schema information for the "usage_metrics" table.
	UsageMetricsTable = &schema.Table{
		Name:       "usage_metrics",
		Columns:    UsageMetricsColumns,
		PrimaryKey: []*schema.Column{UsageMetricsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "usagemetric_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsageMetricsColumns[8], UsageMetricsColumns[12]},
			},
			{
				Name:    "usagemetric_agent_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsageMetricsColumns[1], UsageMetricsColumns[12]},
			},
			{
				Name:    "usagemetric_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsageMetricsColumns[12]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApprovalDecisionsTable,
		ApprovalRequestsTable,
		AuditEntriesTable,
		UsageAlertsTable,
		UsageMetricsTable,
	}
)

func init() {
	ApprovalDecisionsTable.ForeignKeys[0].RefTable = ApprovalRequestsTable
	AuditEntriesTable.ForeignKeys[0].RefTable = ApprovalRequestsTable
}
