package convert

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"intellidocs-backend/internal/shared/server/respond"
	"intellidocs-backend/internal/shared/util"
)

// Handler exposes format conversion over HTTP.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches conversion routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/convert", h.convert)
}

func (h *Handler) convert(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	toFormat := c.PostForm("to_format")
	if toFormat == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "to_format is required", gin.H{
			"allowed_formats": []string{FormatTXT, FormatPDF, FormatDOCX},
		})
		return
	}
	fromFormat := c.PostForm("from_format")
	if fromFormat == "" {
		fromFormat = strings.TrimPrefix(filepath.Ext(fileHeader.Filename), ".")
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	title := strings.TrimSuffix(fileHeader.Filename, filepath.Ext(fileHeader.Filename))
	out, mimeType, err := Convert(c.Request.Context(), data, fromFormat, toFormat, title)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusUnprocessableEntity, "conversion_error", "conversion failed", nil)
		return
	}

	safeTitle, err := util.SanitizeFileName(title)
	if err != nil {
		safeTitle = "converted"
	}
	outName := safeTitle + "." + normalizeFormat(toFormat)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", outName))
	c.Data(http.StatusOK, mimeType, out)
}
