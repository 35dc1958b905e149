package documents

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"intellidocs-backend/internal/extract"
	"intellidocs-backend/internal/shared/storage/object"
)

// DefaultUserID is used when the caller supplies no user identifier.
const DefaultUserID = "demo_user"

var allowedExtensions = map[string]struct{}{
	".txt": {}, ".pdf": {}, ".doc": {}, ".docx": {},
}

// Service contains business logic for documents.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
}

// UploadFile stores the raw file, extracts its text, and records the
// document. The title defaults to the original filename.
func (s *Service) UploadFile(ctx context.Context, userID, title, fileName string, r io.Reader) (Document, error) {
	if strings.TrimSpace(fileName) == "" {
		return Document{}, fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}
	ext := strings.ToLower(filepath.Ext(fileName))
	if _, ok := allowedExtensions[ext]; !ok {
		return Document{}, fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("read upload: %w", err)
	}

	storageKey, _, mimeType, err := s.Store.Save(ctx, normalizeUserID(userID), fileName, bytes.NewReader(raw))
	if err != nil {
		return Document{}, fmt.Errorf("store upload: %w", err)
	}

	text, err := extract.TextFromBytes(ctx, raw, mimeType, fileName)
	if err != nil {
		return Document{}, fmt.Errorf("extract text: %w", err)
	}

	if strings.TrimSpace(title) == "" {
		title = fileName
	}

	doc := Document{
		ID:               uuid.NewString(),
		UserID:           normalizeUserID(userID),
		Title:            title,
		OriginalFilename: fileName,
		FileSizeMB:       sizeMB(len(raw)),
		Text:             text,
		TextLength:       len(text),
		StorageKey:       storageKey,
		Status:           StatusUploaded,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// UploadText records a document supplied as raw text.
func (s *Service) UploadText(ctx context.Context, userID, title, text string) (Document, error) {
	if text == "" {
		return Document{}, fmt.Errorf("%w: text field is required", ErrInvalidInput)
	}
	if strings.TrimSpace(title) == "" {
		title = "Untitled Transcript"
	}

	doc := Document{
		ID:         uuid.NewString(),
		UserID:     normalizeUserID(userID),
		Title:      title,
		Text:       text,
		TextLength: len(text),
		Status:     StatusUploaded,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Get returns a document by ID.
func (s *Service) Get(ctx context.Context, documentID string) (Document, error) {
	if documentID == "" {
		return Document{}, fmt.Errorf("%w: document id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, documentID)
}

// List returns documents newest first, optionally filtered by user.
func (s *Service) List(ctx context.Context, userID string) ([]Document, error) {
	return s.Repo.List(ctx, userID)
}

// Search returns documents matching the query in title or text.
func (s *Service) Search(ctx context.Context, userID, query string) ([]Document, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidInput)
	}
	return s.Repo.Search(ctx, userID, query)
}

func normalizeUserID(userID string) string {
	if strings.TrimSpace(userID) == "" {
		return DefaultUserID
	}
	return userID
}

func sizeMB(sizeBytes int) float64 {
	return math.Round(float64(sizeBytes)/(1024*1024)*100) / 100
}
