package documents

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"intellidocs-backend/internal/extract"
	"intellidocs-backend/internal/shared/metrics"
	"intellidocs-backend/internal/shared/server/respond"
)

const defaultMaxUploadMB = 16

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc            *Service
	maxUploadBytes int64
}

// NewHandler constructs a Handler. maxUploadMB caps upload body size; values
// of zero or below fall back to the default.
func NewHandler(svc *Service, maxUploadMB int) *Handler {
	if maxUploadMB <= 0 {
		maxUploadMB = defaultMaxUploadMB
	}
	return &Handler{Svc: svc, maxUploadBytes: int64(maxUploadMB) << 20}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents", h.upload)
	rg.POST("/documents/text", h.uploadText)
	rg.GET("/documents", h.list)
	rg.GET("/documents/:id", h.get)
	rg.POST("/documents/search", h.search)
}

func (h *Handler) upload(c *gin.Context) {
	if c.Request.ContentLength > h.maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "upload exceeds the size limit", gin.H{
			"max_upload_mb": h.maxUploadBytes >> 20,
		})
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	title := c.PostForm("title")
	userID := c.PostForm("user_id")

	doc, err := h.Svc.UploadFile(c.Request.Context(), userID, title, fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnsupportedType):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), gin.H{
				"allowed_types": []string{"txt", "pdf", "doc", "docx"},
			})
		case errors.Is(err, extract.ErrLegacyFormat):
			respond.Error(c, http.StatusBadRequest, "validation_error",
				"legacy .doc files cannot be read; convert the file to .docx or .pdf and upload again", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to upload document", nil)
		}
		return
	}

	metrics.IncDocumentUploaded()
	respond.JSON(c, http.StatusCreated, gin.H{
		"message":     "File uploaded successfully",
		"document_id": doc.ID,
		"data":        toUploadResponse(doc),
	})
}

type uploadTextRequest struct {
	Text   string `json:"text"`
	Title  string `json:"title"`
	UserID string `json:"user_id"`
}

func (h *Handler) uploadText(c *gin.Context) {
	var req uploadTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	doc, err := h.Svc.UploadText(c.Request.Context(), req.UserID, req.Title, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store text", nil)
		}
		return
	}

	metrics.IncDocumentUploaded()
	respond.JSON(c, http.StatusCreated, gin.H{
		"message":     "Text uploaded successfully",
		"document_id": doc.ID,
		"data":        toUploadResponse(doc),
	})
}

func (h *Handler) list(c *gin.Context) {
	docs, err := h.Svc.List(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list documents", nil)
		return
	}

	items := make([]ListItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, toListItem(doc))
	}
	respond.OK(c, gin.H{"documents": items, "count": len(items)})
}

func (h *Handler) get(c *gin.Context) {
	doc, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch document", nil)
		}
		return
	}
	respond.OK(c, gin.H{"data": toFullResponse(doc)})
}

type searchRequest struct {
	Query  string `json:"query"`
	UserID string `json:"user_id"`
}

func (h *Handler) search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	docs, err := h.Svc.Search(c.Request.Context(), req.UserID, req.Query)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "search failed", nil)
		}
		return
	}

	items := make([]SearchItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, toSearchItem(doc))
	}
	respond.OK(c, gin.H{"query": req.Query, "results": items, "count": len(items)})
}
