package models

import "time"

// ApprovalType is the closed set of guarded operation categories.
type ApprovalType string

const (
	ApprovalCodeDeployment      ApprovalType = "code-deployment"
	ApprovalDatabaseChanges     ApprovalType = "database-changes"
	ApprovalSystemConfiguration ApprovalType = "system-configuration"
	ApprovalCostExceeding       ApprovalType = "cost-exceeding"
	ApprovalSecurityChanges     ApprovalType = "security-changes"
	ApprovalUserDataAccess      ApprovalType = "user-data-access"
	ApprovalExternalAPICalls    ApprovalType = "external-api-calls"
	ApprovalFileSystemChanges   ApprovalType = "file-system-changes"
	ApprovalProductionOps       ApprovalType = "production-operations"
	ApprovalEmergencyOverride   ApprovalType = "emergency-override"
)

// AllApprovalTypes lists every legal approval type.
var AllApprovalTypes = []ApprovalType{
	ApprovalCodeDeployment,
	ApprovalDatabaseChanges,
	ApprovalSystemConfiguration,
	ApprovalCostExceeding,
	ApprovalSecurityChanges,
	ApprovalUserDataAccess,
	ApprovalExternalAPICalls,
	ApprovalFileSystemChanges,
	ApprovalProductionOps,
	ApprovalEmergencyOverride,
}

// IsValid checks if the approval type is valid.
func (t ApprovalType) IsValid() bool {
	for _, known := range AllApprovalTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ApprovalLevel is the authority tier a request is routed to.
type ApprovalLevel string

const (
	ApprovalLevelUser      ApprovalLevel = "user"
	ApprovalLevelAdmin     ApprovalLevel = "admin"
	ApprovalLevelSecurity  ApprovalLevel = "security"
	ApprovalLevelEmergency ApprovalLevel = "emergency"
	ApprovalLevelSystem    ApprovalLevel = "system"
)

// ApprovalState is the request lifecycle state. Terminal states are absorbing.
type ApprovalState string

const (
	ApprovalPending   ApprovalState = "pending"
	ApprovalApproved  ApprovalState = "approved"
	ApprovalRejected  ApprovalState = "rejected"
	ApprovalExpired   ApprovalState = "expired"
	ApprovalBypassed  ApprovalState = "bypassed"
	ApprovalCancelled ApprovalState = "cancelled"
)

// IsTerminal reports whether the state is a sink.
func (s ApprovalState) IsTerminal() bool {
	return s != ApprovalPending
}

// Granted reports whether the state lets the guarded operation proceed.
func (s ApprovalState) Granted() bool {
	return s == ApprovalApproved || s == ApprovalBypassed
}

// Choice is an approver's verdict.
type Choice string

const (
	ChoiceApprove Choice = "approve"
	ChoiceReject  Choice = "reject"
)

// RiskLevel classifies the operation guarded by a request.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// OperationDescriptor describes the guarded operation itself.
type OperationDescriptor struct {
	Action     string         `json:"action"`
	Resource   string         `json:"resource"`
	Parameters map[string]any `json:"parameters,omitempty"`
	Risk       RiskLevel      `json:"risk"`
	Reversible bool           `json:"reversible"`
}

// ApprovalContext ties a request back to the task flow that raised it.
type ApprovalContext struct {
	UserID        string `json:"user_id,omitempty"`
	SessionID     string `json:"session_id,omitempty"`
	TaskChainID   string `json:"task_chain_id,omitempty"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// Decision is one approver's verdict on a request.
type Decision struct {
	ID        string    `json:"id"`
	RequestID string    `json:"request_id"`
	DeciderID string    `json:"decider_id"`
	Choice    Choice    `json:"choice"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// EscalationEntry records one escalation step on a request.
type EscalationEntry struct {
	Level      int       `json:"level"`
	Recipients []string  `json:"recipients"`
	At         time.Time `json:"at"`
}

// Bypass records an accepted emergency bypass.
type Bypass struct {
	By     string    `json:"by"`
	Reason string    `json:"reason"`
	At     time.Time `json:"at"`
}

// ApprovalRequest is one guarded-operation approval flow.
type ApprovalRequest struct {
	ID                string              `json:"id"`
	Type              ApprovalType        `json:"type"`
	Level             ApprovalLevel       `json:"level"`
	State             ApprovalState       `json:"state"`
	Title             string              `json:"title"`
	Description       string              `json:"description,omitempty"`
	RequesterID       string              `json:"requester_id"`
	Operation         OperationDescriptor `json:"operation"`
	Approvers         []string            `json:"approvers"`
	RequiredCount     int                 `json:"required_count"`
	Decisions         []*Decision         `json:"decisions,omitempty"`
	RequestedAt       time.Time           `json:"requested_at"`
	ExpiresAt         time.Time           `json:"expires_at"`
	TimeoutMs         int64               `json:"timeout_ms"`
	Context           ApprovalContext     `json:"context"`
	PolicyID          string              `json:"policy_id,omitempty"`
	EscalationLevel   int                 `json:"escalation_level"`
	EscalationHistory []EscalationEntry   `json:"escalation_history,omitempty"`
	Bypass            *Bypass             `json:"bypass,omitempty"`
	ResolvedAt        *time.Time          `json:"resolved_at,omitempty"`
}

// ApproveCount counts approve decisions.
func (r *ApprovalRequest) ApproveCount() int {
	n := 0
	for _, d := range r.Decisions {
		if d.Choice == ChoiceApprove {
			n++
		}
	}
	return n
}

// HasRejection reports whether any decision is a rejection.
func (r *ApprovalRequest) HasRejection() bool {
	for _, d := range r.Decisions {
		if d.Choice == ChoiceReject {
			return true
		}
	}
	return false
}

// DecisionBy returns the actor's decision, or nil.
func (r *ApprovalRequest) DecisionBy(actorID string) *Decision {
	for _, d := range r.Decisions {
		if d.DeciderID == actorID {
			return d
		}
	}
	return nil
}

// IsApprover reports whether the user appears in the approver list.
func (r *ApprovalRequest) IsApprover(userID string) bool {
	for _, a := range r.Approvers {
		if a == userID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy safe to hand to callers.
func (r *ApprovalRequest) Clone() *ApprovalRequest {
	clone := *r
	clone.Approvers = append([]string(nil), r.Approvers...)
	clone.Decisions = make([]*Decision, len(r.Decisions))
	for i, d := range r.Decisions {
		dc := *d
		clone.Decisions[i] = &dc
	}
	clone.EscalationHistory = append([]EscalationEntry(nil), r.EscalationHistory...)
	if r.Bypass != nil {
		b := *r.Bypass
		clone.Bypass = &b
	}
	if r.ResolvedAt != nil {
		at := *r.ResolvedAt
		clone.ResolvedAt = &at
	}
	return &clone
}

// AuditSeverity grades audit entries.
type AuditSeverity string

const (
	AuditInfo     AuditSeverity = "info"
	AuditWarning  AuditSeverity = "warning"
	AuditCritical AuditSeverity = "critical"
)

// AuditEntry is one append-only audit record for an approval request.
type AuditEntry struct {
	ID        string         `json:"id"`
	RequestID string         `json:"request_id"`
	Action    string         `json:"action"`
	Actor     string         `json:"actor"`
	Severity  AuditSeverity  `json:"severity"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
