package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chartwell/andy/internal/adapters/docstore"
	"github.com/chartwell/andy/internal/domain/entities"
	"github.com/chartwell/andy/internal/domain/usecases"
)

const defaultTopK = 5

type addDocumentRequest struct {
	ID      string `json:"id"`
	Title   string `json:"title" binding:"required"`
	DocType string `json:"docType" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (s *Server) handleAddDocument(c *gin.Context) {
	var req addDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	doc := entities.Document{
		ID:      id,
		Title:   req.Title,
		DocType: req.DocType,
		Content: req.Content,
	}
	if err := s.store.Append(c.Request.Context(), doc); err != nil {
		switch {
		case errors.Is(err, docstore.ErrDuplicateID):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, entities.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "status": "indexed"})
}

func (s *Server) handleListDocuments(c *gin.Context) {
	docs, err := s.store.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if docs == nil {
		docs = []entities.Document{}
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

type queryRequest struct {
	Question string `json:"question" binding:"required"`
	TopK     int    `json:"topK"`
	Mode     string `json:"mode"`
}

func (s *Server) handleQuery(c *gin.Context) {
	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.TopK == 0 {
		req.TopK = defaultTopK
	}

	mode := usecases.Mode(req.Mode)
	if req.Mode == "" {
		mode = usecases.ModeSupportAnswer
	}
	if mode != usecases.ModeSupportAnswer && mode != usecases.ModeEmailDraft {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be support_answer or email_draft"})
		return
	}

	chunks, err := s.retriever.Search(c.Request.Context(), req.Question, req.TopK)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, entities.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	if chunks == nil {
		chunks = []entities.ContextChunk{}
	}

	answer := s.composer.Compose(req.Question, chunks, mode)

	c.JSON(http.StatusOK, gin.H{
		"answer":  answer,
		"sources": chunks,
	})
}
