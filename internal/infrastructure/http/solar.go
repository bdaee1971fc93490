package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chartwell/andy/internal/domain/entities"
)

func (s *Server) handleSolarScenario(c *gin.Context) {
	var scenario entities.SolarScenario
	if err := c.ShouldBindJSON(&scenario); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if scenario.SystemSizeKw <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "systemSizeKw must be positive"})
		return
	}
	if scenario.Roof.ShadingFactor < 0 || scenario.Roof.ShadingFactor > 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "shadingFactor must be between 0 and 1"})
		return
	}

	estimate, err := s.solar.Simulate(c.Request.Context(), scenario)
	if err != nil {
		s.log.Warn("pv simulation failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "PV service error", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": estimate})
}
