package models

import "time"

// TaskStatus is the dispatcher-visible state of a task.
type TaskStatus string

const (
	TaskStatusQueued           TaskStatus = "queued"
	TaskStatusAwaitingApproval TaskStatus = "awaiting-approval"
	TaskStatusDispatched       TaskStatus = "dispatched"
	TaskStatusCompleted        TaskStatus = "completed"
	TaskStatusFailed           TaskStatus = "failed"
	TaskStatusCancelled        TaskStatus = "cancelled"
)

// IsTerminal reports whether the task has reached a terminal state.
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusFailed || s == TaskStatusCancelled
}

// Task is a user-submitted work item. Higher priority dispatches first;
// equal priorities are FIFO by submission.
type Task struct {
	ID           string         `json:"id"`
	Description  string         `json:"description"`
	Prompt       string         `json:"prompt"`
	Priority     int            `json:"priority"`
	Deadline     *time.Time     `json:"deadline,omitempty"`
	Context      map[string]any `json:"context,omitempty"`
	Dependencies []string       `json:"dependencies,omitempty"`

	// AgentType is optional; when empty the dispatcher infers it from the
	// description and prompt.
	AgentType AgentType `json:"agent_type,omitempty"`

	// Locks are the resources the task must hold exclusively while running.
	Locks []LockRef `json:"locks,omitempty"`

	UserID    string    `json:"user_id,omitempty"`
	SessionID string    `json:"session_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Clone returns a copy safe to hand outside the dispatcher.
func (t *Task) Clone() *Task {
	cp := *t
	cp.Dependencies = append([]string(nil), t.Dependencies...)
	cp.Locks = append([]LockRef(nil), t.Locks...)
	if t.Context != nil {
		cp.Context = make(map[string]any, len(t.Context))
		for k, v := range t.Context {
			cp.Context[k] = v
		}
	}
	if t.Deadline != nil {
		d := *t.Deadline
		cp.Deadline = &d
	}
	return &cp
}

// TaskState is a read-only snapshot of a task's progress through the
// dispatcher.
type TaskState struct {
	Task       *Task      `json:"task"`
	Status     TaskStatus `json:"status"`
	AgentID    string     `json:"agent_id,omitempty"`
	ApprovalID string     `json:"approval_id,omitempty"`
	Progress   int        `json:"progress"`
	Reason     string     `json:"reason,omitempty"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
