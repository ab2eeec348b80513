// Package api exposes the kernel over HTTP: task submission, fleet and lock
// inspection, usage reporting, the approval workflow, and a websocket fan-out
// of the event bus.
package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MiniSankaz/fleetd/pkg/approval"
	"github.com/MiniSankaz/fleetd/pkg/database"
	"github.com/MiniSankaz/fleetd/pkg/lock"
	"github.com/MiniSankaz/fleetd/pkg/models"
	"github.com/MiniSankaz/fleetd/pkg/spawner"
	"github.com/MiniSankaz/fleetd/pkg/usage"
)

// TaskQueue is the dispatcher surface the API exposes. Satisfied by
// *dispatch.Dispatcher.
type TaskQueue interface {
	Submit(ctx context.Context, task *models.Task) (string, error)
	Cancel(ctx context.Context, taskID string) error
	Reprioritize(taskID string, priority int) error
	Status(taskID string) *models.TaskState
	Queue() []*models.TaskState
}

// AgentFleet is the spawner surface. Satisfied by *spawner.Spawner.
type AgentFleet interface {
	Status(agentID string) *models.Agent
	Agents() []*models.Agent
	Terminate(agentID string) bool
	Metrics() spawner.Metrics
}

// LockTable is the lock manager surface. Satisfied by *lock.Manager.
type LockTable interface {
	ActiveLocks(ctx context.Context) ([]*models.Lock, error)
	Metrics(ctx context.Context) (*lock.Metrics, error)
	Release(ctx context.Context, lockID string) (bool, error)
}

// UsageMeter is the metering surface. Satisfied by *usage.Meter.
type UsageMeter interface {
	Summary(ctx context.Context, window models.Window, userID string) (*models.UsageSummary, error)
	RealTime(ctx context.Context, userID string) (*usage.RealTimeUsage, error)
	Report(ctx context.Context, userID string, start, end time.Time) (*models.UsageReport, error)
	Alerts(ctx context.Context, filter usage.AlertFilter) ([]*models.Alert, error)
	Acknowledge(ctx context.Context, alertID, actorID string) (bool, error)
}

// ApprovalGate is the gate surface. Satisfied by *approval.Gate.
type ApprovalGate interface {
	Decide(ctx context.Context, requestID, actorID string, choice models.Choice, reason string) (*models.Decision, error)
	Bypass(ctx context.Context, requestID, actorID, reason string, emergency map[string]any) (*models.ApprovalRequest, error)
	Get(ctx context.Context, requestID string) (*models.ApprovalRequest, error)
	PendingFor(ctx context.Context, userID string) []*models.ApprovalRequest
	History(ctx context.Context, requestID string) (*approval.History, error)
	Statistics(ctx context.Context, since time.Time) (*approval.Statistics, error)
}

// Server wires the HTTP controllers to the kernel components.
type Server struct {
	tasks     TaskQueue
	agents    AgentFleet
	locks     LockTable
	meter     UsageMeter
	approvals ApprovalGate
	db        *database.Client
	hub       *Hub
}

// NewServer creates an API server. db and hub may be nil; their endpoints
// degrade gracefully.
func NewServer(tasks TaskQueue, agents AgentFleet, locks LockTable, meter UsageMeter, approvals ApprovalGate, db *database.Client, hub *Hub) *Server {
	return &Server{
		tasks:     tasks,
		agents:    agents,
		locks:     locks,
		meter:     meter,
		approvals: approvals,
		db:        db,
		hub:       hub,
	}
}

// Routes builds the gin engine with every endpoint registered.
func (s *Server) Routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/health", s.Health)
	if s.hub != nil {
		r.GET("/ws", s.hub.HandleWS)
	}

	api := r.Group("/api")
	{
		api.POST("/tasks", s.SubmitTask)
		api.GET("/tasks", s.TaskQueueSnapshot)
		api.GET("/tasks/:id", s.TaskStatus)
		api.DELETE("/tasks/:id", s.CancelTask)
		api.PUT("/tasks/:id/priority", s.ReprioritizeTask)

		api.GET("/agents", s.ListAgents)
		api.GET("/agents/metrics", s.AgentMetrics)
		api.GET("/agents/:id", s.AgentStatus)
		api.DELETE("/agents/:id", s.TerminateAgent)

		api.GET("/locks", s.ActiveLocks)
		api.GET("/locks/metrics", s.LockMetrics)
		api.DELETE("/locks/:id", s.ReleaseLock)

		api.GET("/usage/summary", s.UsageSummary)
		api.GET("/usage/realtime", s.UsageRealTime)
		api.GET("/usage/report", s.UsageReport)
		api.GET("/usage/alerts", s.UsageAlerts)
		api.POST("/usage/alerts/:id/acknowledge", s.AcknowledgeAlert)

		api.GET("/approvals/pending", s.PendingApprovals)
		api.GET("/approvals/statistics", s.ApprovalStatistics)
		api.GET("/approvals/:id", s.GetApproval)
		api.GET("/approvals/:id/history", s.ApprovalHistory)
		api.POST("/approvals/:id/decide", s.DecideApproval)
		api.POST("/approvals/:id/bypass", s.BypassApproval)
	}
	return r
}
