// Package models contains the domain types shared across the orchestration
// kernel: agents, tasks, locks, and usage metering.
package models

import "time"

// ModelClass identifies the model tier an agent runs on.
type ModelClass string

const (
	ModelOpus   ModelClass = "opus"
	ModelSonnet ModelClass = "sonnet"
	ModelHaiku  ModelClass = "haiku"
)

// IsValid checks if the model class is valid.
func (m ModelClass) IsValid() bool {
	return m == ModelOpus || m == ModelSonnet || m == ModelHaiku
}

// ModelID returns the full model identifier passed to the agent CLI.
func (m ModelClass) ModelID() string {
	switch m {
	case ModelOpus:
		return "claude-3-opus-20240229"
	case ModelSonnet:
		return "claude-3-5-sonnet-20241022"
	case ModelHaiku:
		return "claude-3-haiku-20240307"
	default:
		return ""
	}
}

// AgentType is the closed set of agent roles.
type AgentType string

const (
	AgentTypeBusinessAnalyst    AgentType = "business-analyst"
	AgentTypeCodeReviewer       AgentType = "code-reviewer"
	AgentTypeTestRunner         AgentType = "test-runner"
	AgentTypeTechnicalArchitect AgentType = "technical-architect"
	AgentTypeDevelopmentPlanner AgentType = "development-planner"
	AgentTypeSOPEnforcer        AgentType = "sop-enforcer"
	AgentTypeGeneralPurpose     AgentType = "general-purpose"
)

// AllAgentTypes lists every legal agent type. Dispatch tables over agent
// types must cover this set exhaustively.
var AllAgentTypes = []AgentType{
	AgentTypeBusinessAnalyst,
	AgentTypeCodeReviewer,
	AgentTypeTestRunner,
	AgentTypeTechnicalArchitect,
	AgentTypeDevelopmentPlanner,
	AgentTypeSOPEnforcer,
	AgentTypeGeneralPurpose,
}

// IsValid checks if the agent type is valid.
func (t AgentType) IsValid() bool {
	for _, known := range AllAgentTypes {
		if t == known {
			return true
		}
	}
	return false
}

// AgentStatus is the lifecycle state of a spawned agent.
type AgentStatus string

const (
	AgentStatusInitializing    AgentStatus = "initializing"
	AgentStatusWaitingApproval AgentStatus = "waiting-approval"
	AgentStatusWorking         AgentStatus = "working"
	AgentStatusCompleted       AgentStatus = "completed"
	AgentStatusFailed          AgentStatus = "failed"
	AgentStatusTerminated      AgentStatus = "terminated"
)

// IsTerminal reports whether the status is a terminal lifecycle state.
func (s AgentStatus) IsTerminal() bool {
	return s == AgentStatusCompleted || s == AgentStatusFailed || s == AgentStatusTerminated
}

// IsActive reports whether the agent counts against the concurrency cap.
func (s AgentStatus) IsActive() bool {
	return s == AgentStatusInitializing || s == AgentStatusWorking
}

// AgentConfig is the effective per-invocation configuration for an agent,
// resolved by merging the type defaults with caller overrides.
type AgentConfig struct {
	Model            ModelClass    `json:"model"`
	MaxTokens        int           `json:"max_tokens"`
	Timeout          time.Duration `json:"timeout"`
	RetryLimit       int           `json:"retry_limit"`
	RequiresApproval bool          `json:"requires_approval"`
}

// Agent is the runtime record of one CLI subprocess. The spawner owns the
// record; everyone else reads snapshots.
type Agent struct {
	ID        string      `json:"id"`
	Type      AgentType   `json:"type"`
	TaskID    string      `json:"task_id"`
	UserID    string      `json:"user_id,omitempty"`
	SessionID string      `json:"session_id,omitempty"`
	Config    AgentConfig `json:"config"`
	WorkDir   string      `json:"work_dir"`

	Status    AgentStatus `json:"status"`
	StartedAt time.Time   `json:"started_at"`
	EndedAt   *time.Time  `json:"ended_at,omitempty"`
	ExitCode  *int        `json:"exit_code,omitempty"`
	Error     string      `json:"error,omitempty"`

	Stdout []string `json:"stdout,omitempty"`
	Stderr []string `json:"stderr,omitempty"`
}

// Clone returns a deep copy safe to hand outside the spawner.
func (a *Agent) Clone() *Agent {
	cp := *a
	cp.Stdout = append([]string(nil), a.Stdout...)
	cp.Stderr = append([]string(nil), a.Stderr...)
	if a.EndedAt != nil {
		t := *a.EndedAt
		cp.EndedAt = &t
	}
	if a.ExitCode != nil {
		c := *a.ExitCode
		cp.ExitCode = &c
	}
	return &cp
}
