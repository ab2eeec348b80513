package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ActiveLocks handles GET /api/locks.
func (s *Server) ActiveLocks(c *gin.Context) {
	locks, err := s.locks.ActiveLocks(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"locks": locks})
}

// LockMetrics handles GET /api/locks/metrics.
func (s *Server) LockMetrics(c *gin.Context) {
	metrics, err := s.locks.Metrics(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// ReleaseLock handles DELETE /api/locks/:id.
func (s *Server) ReleaseLock(c *gin.Context) {
	released, err := s.locks.Release(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !released {
		c.JSON(http.StatusNotFound, gin.H{"error": "lock not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"released": true})
}
