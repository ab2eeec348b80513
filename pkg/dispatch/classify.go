package dispatch

import (
	"fmt"

	"github.com/MiniSankaz/fleetd/pkg/approval"
	"github.com/MiniSankaz/fleetd/pkg/models"
)

// Task context keys the dispatcher interprets when deciding whether a task
// is approval-guarded and how to describe the guarded operation.
const (
	ContextApprovalType = "approval_type"
	ContextRisk         = "risk"
	ContextResource     = "resource"
	ContextReversible   = "reversible"
)

// approvalInput classifies a task against the approval surface. A task is
// guarded when its agent type demands approval or its context names an
// approval type. The second return is false for unguarded tasks.
func approvalInput(task *models.Task, agentType models.AgentType, cfg models.AgentConfig) (approval.SubmitInput, bool) {
	approvalType, typed := contextApprovalType(task)
	if !cfg.RequiresApproval && !typed {
		return approval.SubmitInput{}, false
	}
	if !typed {
		approvalType = models.ApprovalSystemConfiguration
	}

	risk, ok := contextRisk(task)
	if !ok {
		// Type-forced approvals default high; context-declared ones medium.
		risk = models.RiskMedium
		if cfg.RequiresApproval {
			risk = models.RiskHigh
		}
	}

	resource, _ := task.Context[ContextResource].(string)
	if resource == "" {
		resource = "agents/" + string(agentType)
	}
	reversible := true
	if v, ok := task.Context[ContextReversible].(bool); ok {
		reversible = v
	}

	requester := task.UserID
	if requester == "" {
		requester = "system"
	}

	return approval.SubmitInput{
		Type:        approvalType,
		Title:       fmt.Sprintf("Dispatch %s agent for task %s", agentType, task.ID),
		Description: task.Description,
		RequesterID: requester,
		Operation: models.OperationDescriptor{
			Action:     "spawn-agent",
			Resource:   resource,
			Risk:       risk,
			Reversible: reversible,
			Parameters: map[string]any{
				"task_id":    task.ID,
				"agent_type": string(agentType),
			},
		},
		Context: models.ApprovalContext{
			UserID:      task.UserID,
			SessionID:   task.SessionID,
			TaskChainID: task.ID,
		},
	}, true
}

func contextApprovalType(task *models.Task) (models.ApprovalType, bool) {
	raw, ok := task.Context[ContextApprovalType].(string)
	if !ok {
		return "", false
	}
	t := models.ApprovalType(raw)
	return t, t.IsValid()
}

func contextRisk(task *models.Task) (models.RiskLevel, bool) {
	raw, ok := task.Context[ContextRisk].(string)
	if !ok {
		return "", false
	}
	switch r := models.RiskLevel(raw); r {
	case models.RiskLow, models.RiskMedium, models.RiskHigh, models.RiskCritical:
		return r, true
	}
	return "", false
}
