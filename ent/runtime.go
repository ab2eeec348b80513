// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/MiniSankaz/fleetd/ent/approvaldecision"
	"github.com/MiniSankaz/fleetd/ent/approvalrequest"
	"github.com/MiniSankaz/fleetd/ent/auditentry"
	"github.com/MiniSankaz/fleetd/ent/schema"
	"github.com/MiniSankaz/fleetd/ent/usagealert"
	"github.com/MiniSankaz/fleetd/ent/usagemetric"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	approvaldecisionFields := schema.ApprovalDecision{}.Fields()
	_ = approvaldecisionFields
	// approvaldecisionDescCreatedAt is the schema descriptor for created_at field.
	approvaldecisionDescCreatedAt := approvaldecisionFields[5].Descriptor()
	// approvaldecision.DefaultCreatedAt holds the default value on creation for the created_at field.
	approvaldecision.DefaultCreatedAt = approvaldecisionDescCreatedAt.Default.(func() time.Time)
	approvalrequestFields := schema.ApprovalRequest{}.Fields()
	_ = approvalrequestFields
	// approvalrequestDescStatus is the schema descriptor for status field.
	approvalrequestDescStatus := approvalrequestFields[3].Descriptor()
	// approvalrequest.DefaultStatus holds the default value on creation for the status field.
	approvalrequest.DefaultStatus = approvalrequestDescStatus.Default.(string)
	// approvalrequestDescRequiredCount is the schema descriptor for required_count field.
	approvalrequestDescRequiredCount := approvalrequestFields[9].Descriptor()
	// approvalrequest.DefaultRequiredCount holds the default value on creation for the required_count field.
	approvalrequest.DefaultRequiredCount = approvalrequestDescRequiredCount.Default.(int)
	// approvalrequestDescRequestedAt is the schema descriptor for requested_at field.
	approvalrequestDescRequestedAt := approvalrequestFields[10].Descriptor()
	// approvalrequest.DefaultRequestedAt holds the default value on creation for the requested_at field.
	approvalrequest.DefaultRequestedAt = approvalrequestDescRequestedAt.Default.(func() time.Time)
	// approvalrequestDescEscalationLevel is the schema descriptor for escalation_level field.
	approvalrequestDescEscalationLevel := approvalrequestFields[15].Descriptor()
	// approvalrequest.DefaultEscalationLevel holds the default value on creation for the escalation_level field.
	approvalrequest.DefaultEscalationLevel = approvalrequestDescEscalationLevel.Default.(int)
	auditentryFields := schema.AuditEntry{}.Fields()
	_ = auditentryFields
	// auditentryDescSeverity is the schema descriptor for severity field.
	auditentryDescSeverity := auditentryFields[4].Descriptor()
	// auditentry.DefaultSeverity holds the default value on creation for the severity field.
	auditentry.DefaultSeverity = auditentryDescSeverity.Default.(string)
	// auditentryDescCreatedAt is the schema descriptor for created_at field.
	auditentryDescCreatedAt := auditentryFields[6].Descriptor()
	// auditentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditentry.DefaultCreatedAt = auditentryDescCreatedAt.Default.(func() time.Time)
	usagealertFields := schema.UsageAlert{}.Fields()
	_ = usagealertFields
	// usagealertDescAcknowledged is the schema descriptor for acknowledged field.
	usagealertDescAcknowledged := usagealertFields[9].Descriptor()
	// usagealert.DefaultAcknowledged holds the default value on creation for the acknowledged field.
	usagealert.DefaultAcknowledged = usagealertDescAcknowledged.Default.(bool)
	// usagealertDescCreatedAt is the schema descriptor for created_at field.
	usagealertDescCreatedAt := usagealertFields[12].Descriptor()
	// usagealert.DefaultCreatedAt holds the default value on creation for the created_at field.
	usagealert.DefaultCreatedAt = usagealertDescCreatedAt.Default.(func() time.Time)
	usagemetricFields := schema.UsageMetric{}.Fields()
	_ = usagemetricFields
	// usagemetricDescCreatedAt is the schema descriptor for created_at field.
	usagemetricDescCreatedAt := usagemetricFields[12].Descriptor()
	// usagemetric.DefaultCreatedAt holds the default value on creation for the created_at field.
	usagemetric.DefaultCreatedAt = usagemetricDescCreatedAt.Default.(func() time.Time)
}
