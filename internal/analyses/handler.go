package analyses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"intellidocs-backend/internal/documents"
	"intellidocs-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analysis service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses/summarize", h.summarize)
	rg.POST("/analyses/improve", h.improve)
	rg.POST("/analyses/analyze", h.analyze)
	rg.POST("/analyses/smart", h.smart)
	rg.POST("/analyses/resume", h.resume)
}

type summarizeRequest struct {
	DocumentID string `json:"document_id"`
	MaxLength  int    `json:"max_length"`
	MinLength  int    `json:"min_length"`
}

func (h *Handler) summarize(c *gin.Context) {
	var req summarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	result, err := h.Svc.Summarize(c.Request.Context(), req.DocumentID, req.MaxLength, req.MinLength)
	if err != nil {
		h.fail(c, err, "summarization failed")
		return
	}
	respond.OK(c, gin.H{"document_id": req.DocumentID, "data": result})
}

type documentRequest struct {
	DocumentID string `json:"document_id"`
}

func (h *Handler) improve(c *gin.Context) {
	var req documentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	improvements, err := h.Svc.Improve(c.Request.Context(), req.DocumentID)
	if err != nil {
		h.fail(c, err, "improvement analysis failed")
		return
	}
	respond.OK(c, gin.H{"document_id": req.DocumentID, "data": improvements})
}

func (h *Handler) analyze(c *gin.Context) {
	var req documentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	analysis, err := h.Svc.Analyze(c.Request.Context(), req.DocumentID)
	if err != nil {
		h.fail(c, err, "analysis failed")
		return
	}
	respond.OK(c, gin.H{"document_id": req.DocumentID, "data": analysis})
}

type smartRequest struct {
	DocumentID     string `json:"document_id"`
	JobDescription string `json:"job_description"`
	ForceType      string `json:"force_type"`
}

func (h *Handler) smart(c *gin.Context) {
	var req smartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	result, err := h.Svc.SmartAnalyze(c.Request.Context(), req.DocumentID, req.JobDescription, req.ForceType)
	if err != nil {
		h.fail(c, err, "smart analysis failed")
		return
	}
	respond.OK(c, gin.H{"data": result})
}

type resumeRequest struct {
	DocumentID     string `json:"document_id"`
	JobDescription string `json:"job_description"`
}

func (h *Handler) resume(c *gin.Context) {
	var req resumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	analysis, err := h.Svc.AnalyzeResume(c.Request.Context(), req.DocumentID, req.JobDescription)
	if err != nil {
		h.fail(c, err, "resume analysis failed")
		return
	}
	respond.OK(c, gin.H{"document_id": req.DocumentID, "data": analysis})
}

func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, documents.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
