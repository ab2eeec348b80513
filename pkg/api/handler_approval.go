package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MiniSankaz/fleetd/pkg/models"
)

// PendingApprovals handles GET /api/approvals/pending?user_id=.
func (s *Server) PendingApprovals(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"pending": s.approvals.PendingFor(c.Request.Context(), userID)})
}

// GetApproval handles GET /api/approvals/:id.
func (s *Server) GetApproval(c *gin.Context) {
	req, err := s.approvals.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// ApprovalHistory handles GET /api/approvals/:id/history.
func (s *Server) ApprovalHistory(c *gin.Context) {
	history, err := s.approvals.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// DecideRequest is the body of POST /api/approvals/:id/decide.
type DecideRequest struct {
	ActorID string        `json:"actor_id" binding:"required"`
	Choice  models.Choice `json:"choice" binding:"required"`
	Reason  string        `json:"reason"`
}

// DecideApproval handles POST /api/approvals/:id/decide.
func (s *Server) DecideApproval(c *gin.Context) {
	var req DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Choice != models.ChoiceApprove && req.Choice != models.ChoiceReject {
		c.JSON(http.StatusBadRequest, gin.H{"error": "choice must be approve or reject"})
		return
	}

	decision, err := s.approvals.Decide(c.Request.Context(), c.Param("id"), req.ActorID, req.Choice, req.Reason)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, decision)
}

// BypassRequest is the body of POST /api/approvals/:id/bypass.
type BypassRequest struct {
	ActorID   string         `json:"actor_id" binding:"required"`
	Reason    string         `json:"reason" binding:"required"`
	Emergency map[string]any `json:"emergency"`
}

// BypassApproval handles POST /api/approvals/:id/bypass.
func (s *Server) BypassApproval(c *gin.Context) {
	var req BypassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := s.approvals.Bypass(c.Request.Context(), c.Param("id"), req.ActorID, req.Reason, req.Emergency)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

// ApprovalStatistics handles GET /api/approvals/statistics?hours=.
func (s *Server) ApprovalStatistics(c *gin.Context) {
	hours, err := strconv.Atoi(c.DefaultQuery("hours", "24"))
	if err != nil || hours <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hours must be a positive integer"})
		return
	}

	stats, err := s.approvals.Statistics(c.Request.Context(), time.Now().Add(-time.Duration(hours)*time.Hour))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
