package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MiniSankaz/fleetd/pkg/models"
	"github.com/MiniSankaz/fleetd/pkg/usage"
)

// requireUserID reads the mandatory user_id query parameter.
func requireUserID(c *gin.Context) (string, bool) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return "", false
	}
	return userID, true
}

// UsageSummary handles GET /api/usage/summary?user_id=&window=.
func (s *Server) UsageSummary(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	window := models.Window(c.DefaultQuery("window", string(models.WindowWeek)))

	summary, err := s.meter.Summary(c.Request.Context(), window, userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// UsageRealTime handles GET /api/usage/realtime?user_id=.
func (s *Server) UsageRealTime(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	rt, err := s.meter.RealTime(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rt)
}

// UsageReport handles GET /api/usage/report?user_id=&days=.
func (s *Server) UsageReport(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
		return
	}

	end := time.Now()
	report, err := s.meter.Report(c.Request.Context(), userID, end.AddDate(0, 0, -days), end)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// UsageAlerts handles GET /api/usage/alerts?user_id=&acknowledged=.
func (s *Server) UsageAlerts(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	filter := usage.AlertFilter{UserID: userID}
	if raw := c.Query("acknowledged"); raw != "" {
		acked, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "acknowledged must be a boolean"})
			return
		}
		filter.Acknowledged = &acked
	}

	alerts, err := s.meter.Alerts(c.Request.Context(), filter)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

// AcknowledgeAlertRequest is the body of POST /api/usage/alerts/:id/acknowledge.
type AcknowledgeAlertRequest struct {
	ActorID string `json:"actor_id" binding:"required"`
}

// AcknowledgeAlert handles POST /api/usage/alerts/:id/acknowledge.
func (s *Server) AcknowledgeAlert(c *gin.Context) {
	var req AcknowledgeAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	found, err := s.meter.Acknowledge(c.Request.Context(), c.Param("id"), req.ActorID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}
