package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chartwell/andy/internal/domain/entities"
	"github.com/chartwell/andy/internal/domain/usecases"
)

func (s *Server) handleDraftEmail(c *gin.Context) {
	var req usecases.EmailDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := s.composer.DraftEmail(req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, entities.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, draft)
}
