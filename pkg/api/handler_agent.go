package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListAgents handles GET /api/agents.
func (s *Server) ListAgents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"agents": s.agents.Agents()})
}

// AgentStatus handles GET /api/agents/:id.
func (s *Server) AgentStatus(c *gin.Context) {
	agent := s.agents.Status(c.Param("id"))
	if agent == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "agent not found"})
		return
	}
	c.JSON(http.StatusOK, agent)
}

// TerminateAgent handles DELETE /api/agents/:id.
func (s *Server) TerminateAgent(c *gin.Context) {
	if !s.agents.Terminate(c.Param("id")) {
		c.JSON(http.StatusConflict, gin.H{"error": "agent is not running"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"terminating": true})
}

// AgentMetrics handles GET /api/agents/metrics.
func (s *Server) AgentMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, s.agents.Metrics())
}
