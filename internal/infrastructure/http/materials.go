package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chartwell/andy/internal/domain/entities"
	"github.com/chartwell/andy/internal/domain/usecases"
)

const defaultHorizonDays = 90

type usageRecord struct {
	Date         string  `json:"date" binding:"required"`
	QuantityUsed float64 `json:"quantityUsed"`
}

type importUsageRequest struct {
	MaterialID  string        `json:"materialId" binding:"required"`
	ProjectID   string        `json:"projectId"`
	ProjectType string        `json:"projectType"`
	Records     []usageRecord `json:"records" binding:"required"`
}

// handleImportUsage accepts a usage history upload.
// TODO: persist the records once a usage datastore exists; for now the
// endpoint validates and acknowledges, matching the rest of the in-memory
// reference scope.
func (s *Server) handleImportUsage(c *gin.Context) {
	var req importUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := parseUsage(req.Records); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "imported": len(req.Records)})
}

type forecastRequest struct {
	MaterialID  string        `json:"materialId" binding:"required"`
	HorizonDays int           `json:"horizonDays"`
	History     []usageRecord `json:"history"`
}

func (s *Server) handleForecast(c *gin.Context) {
	var req forecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.HorizonDays == 0 {
		req.HorizonDays = defaultHorizonDays
	}

	history, err := parseUsage(req.History)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	forecast, err := s.forecaster.Forecast(history, req.HorizonDays)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, entities.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"materialId":  req.MaterialID,
		"horizonDays": req.HorizonDays,
		"forecast":    forecast,
		"lastUpdated": time.Now().UTC(),
	})
}

// handleRecommendations serves the stock-action list. With no persisted
// inventory this serves the demo set only when explicitly asked for
// (?demo=1) or when the deployment opted in via configuration - demo data
// is a display fallback, never an implicit default of the engine itself.
func (s *Server) handleRecommendations(c *gin.Context) {
	useDemo := s.demoInventory
	if v := c.Query("demo"); v != "" {
		useDemo = v == "1" || v == "true"
	}

	var items []entities.MaterialStats
	if useDemo {
		items = usecases.DemoMaterials(time.Now())
	}

	recs, err := s.reorder.Recommend(items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recommendations": recs,
		"demo":            useDemo,
		"lastUpdated":     time.Now().UTC(),
	})
}

type recommendationsRequest struct {
	Items []entities.MaterialStats `json:"items" binding:"required"`
}

// handleRecommendationsFor computes recommendations for caller-supplied
// stats.
func (s *Server) handleRecommendationsFor(c *gin.Context) {
	var req recommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recs, err := s.reorder.Recommend(req.Items)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, entities.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recommendations": recs,
		"lastUpdated":     time.Now().UTC(),
	})
}

func (s *Server) handleInventoryScenario(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"summary": usecases.ScenarioSummary()})
}

// parseUsage converts wire records to domain points. Dates are RFC 3339
// or plain calendar dates.
func parseUsage(records []usageRecord) ([]entities.UsagePoint, error) {
	points := make([]entities.UsagePoint, len(records))
	for i, r := range records {
		date, err := parseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("records[%d]: %w", i, err)
		}
		points[i] = entities.UsagePoint{Date: date, QuantityUsed: r.QuantityUsed}
	}
	return points, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want RFC 3339 or YYYY-MM-DD", s)
	}
	return t, nil
}
