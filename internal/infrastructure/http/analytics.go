package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleAnalyticsSummary(c *gin.Context) {
	c.JSON(http.StatusOK, s.analytics.Summary(time.Now()))
}
