package documents

import "time"

// UploadResponse is returned after a successful upload.
type UploadResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Filename   string    `json:"filename,omitempty"`
	FileSizeMB float64   `json:"file_size_mb,omitempty"`
	TextLength int       `json:"text_length"`
	CreatedAt  time.Time `json:"created_at"`
}

// ListItem is the summary representation used by list endpoints.
type ListItem struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	TextLength int       `json:"text_length"`
	CreatedAt  time.Time `json:"created_at"`
	Status     string    `json:"status"`
	HasSummary bool      `json:"has_summary"`
}

// SearchItem is a search hit with a short text preview.
type SearchItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	TextPreview string    `json:"text_preview"`
	CreatedAt   time.Time `json:"created_at"`
	Status      string    `json:"status"`
}

// FullResponse is the complete outward-facing document record. The storage
// key stays internal.
type FullResponse struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user_id"`
	Title            string          `json:"title"`
	OriginalFilename string          `json:"original_filename,omitempty"`
	FileSizeMB       float64         `json:"file_size_mb,omitempty"`
	Text             string          `json:"text"`
	TextLength       int             `json:"text_length"`
	DocumentType     string          `json:"document_type,omitempty"`
	Status           string          `json:"status"`
	Results          AnalysisResults `json:"results"`
	CreatedAt        time.Time       `json:"created_at"`
	AnalyzedAt       *time.Time      `json:"analyzed_at,omitempty"`
}

const previewChars = 200

func toUploadResponse(doc Document) UploadResponse {
	return UploadResponse{
		ID:         doc.ID,
		Title:      doc.Title,
		Filename:   doc.OriginalFilename,
		FileSizeMB: doc.FileSizeMB,
		TextLength: doc.TextLength,
		CreatedAt:  doc.CreatedAt,
	}
}

func toListItem(doc Document) ListItem {
	return ListItem{
		ID:         doc.ID,
		Title:      doc.Title,
		TextLength: doc.TextLength,
		CreatedAt:  doc.CreatedAt,
		Status:     doc.Status,
		HasSummary: doc.Results.Summary != nil,
	}
}

func toSearchItem(doc Document) SearchItem {
	preview := doc.Text
	if len(preview) > previewChars {
		preview = preview[:previewChars] + "..."
	}
	return SearchItem{
		ID:          doc.ID,
		Title:       doc.Title,
		TextPreview: preview,
		CreatedAt:   doc.CreatedAt,
		Status:      doc.Status,
	}
}

func toFullResponse(doc Document) FullResponse {
	return FullResponse{
		ID:               doc.ID,
		UserID:           doc.UserID,
		Title:            doc.Title,
		OriginalFilename: doc.OriginalFilename,
		FileSizeMB:       doc.FileSizeMB,
		Text:             doc.Text,
		TextLength:       doc.TextLength,
		DocumentType:     doc.DocumentType,
		Status:           doc.Status,
		Results:          doc.Results,
		CreatedAt:        doc.CreatedAt,
		AnalyzedAt:       doc.AnalyzedAt,
	}
}
