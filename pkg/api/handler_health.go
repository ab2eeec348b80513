package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MiniSankaz/fleetd/pkg/database"
	"github.com/MiniSankaz/fleetd/pkg/version"
)

// Health handles GET /health. The database section is omitted when the
// kernel runs without Postgres.
func (s *Server) Health(c *gin.Context) {
	body := gin.H{"status": "healthy", "version": version.Full()}

	if s.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		dbHealth, err := database.Health(ctx, s.db.DB())
		body["database"] = dbHealth
		if err != nil {
			body["status"] = "unhealthy"
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}
	}

	c.JSON(http.StatusOK, body)
}
