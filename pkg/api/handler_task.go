package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MiniSankaz/fleetd/pkg/models"
)

// SubmitTaskRequest is the body of POST /api/tasks.
type SubmitTaskRequest struct {
	ID           string           `json:"id"`
	Description  string           `json:"description"`
	Prompt       string           `json:"prompt" binding:"required"`
	Priority     int              `json:"priority"`
	Deadline     *time.Time       `json:"deadline"`
	Context      map[string]any   `json:"context"`
	Dependencies []string         `json:"dependencies"`
	AgentType    models.AgentType `json:"agent_type"`
	Locks        []models.LockRef `json:"locks"`
	UserID       string           `json:"user_id"`
	SessionID    string           `json:"session_id"`
}

// SubmitTask handles POST /api/tasks.
func (s *Server) SubmitTask(c *gin.Context) {
	var req SubmitTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := s.tasks.Submit(c.Request.Context(), &models.Task{
		ID:           req.ID,
		Description:  req.Description,
		Prompt:       req.Prompt,
		Priority:     req.Priority,
		Deadline:     req.Deadline,
		Context:      req.Context,
		Dependencies: req.Dependencies,
		AgentType:    req.AgentType,
		Locks:        req.Locks,
		UserID:       req.UserID,
		SessionID:    req.SessionID,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"task_id": id})
}

// TaskQueueSnapshot handles GET /api/tasks.
func (s *Server) TaskQueueSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"queue": s.tasks.Queue()})
}

// TaskStatus handles GET /api/tasks/:id.
func (s *Server) TaskStatus(c *gin.Context) {
	state := s.tasks.Status(c.Param("id"))
	if state == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.JSON(http.StatusOK, state)
}

// CancelTask handles DELETE /api/tasks/:id.
func (s *Server) CancelTask(c *gin.Context) {
	if err := s.tasks.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

// ReprioritizeRequest is the body of PUT /api/tasks/:id/priority.
type ReprioritizeRequest struct {
	Priority int `json:"priority"`
}

// ReprioritizeTask handles PUT /api/tasks/:id/priority.
func (s *Server) ReprioritizeTask(c *gin.Context) {
	var req ReprioritizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.tasks.Reprioritize(c.Param("id"), req.Priority); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"priority": req.Priority})
}
