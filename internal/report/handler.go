package report

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"intellidocs-backend/internal/documents"
	"intellidocs-backend/internal/shared/server/respond"
	"intellidocs-backend/internal/shared/util"
)

// Handler serves PDF exports of stored analysis results.
type Handler struct {
	Docs documents.Repo
}

// NewHandler constructs a Handler.
func NewHandler(docs documents.Repo) *Handler {
	return &Handler{Docs: docs}
}

// RegisterRoutes attaches the export route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/documents/:id/export.pdf", h.export)
}

func (h *Handler) export(c *gin.Context) {
	doc, err := h.Docs.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch document", nil)
		return
	}

	out, err := Build(doc)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to render report", nil)
		return
	}

	name, err := util.SanitizeFileName(doc.Title)
	if err != nil {
		name = "report"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".pdf"))
	c.Data(http.StatusOK, "application/pdf", out)
}
