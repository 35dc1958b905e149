package documents

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Analysis results are stored as one
// JSONB column; the typed struct round-trips through encoding/json.
type PGRepo struct {
	DB *sql.DB
}

const documentColumns = `id, user_id, title, original_filename, file_size_mb, text, text_length, storage_key, document_type, status, results, created_at, analyzed_at`

// Create inserts a new document.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (` + documentColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	results, err := json.Marshal(doc.Results)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	var docType sql.NullString
	if doc.DocumentType != "" {
		docType = sql.NullString{String: doc.DocumentType, Valid: true}
	}
	var analyzedAt sql.NullTime
	if doc.AnalyzedAt != nil {
		analyzedAt = sql.NullTime{Time: *doc.AnalyzedAt, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.UserID,
		doc.Title,
		doc.OriginalFilename,
		doc.FileSizeMB,
		doc.Text,
		doc.TextLength,
		doc.StorageKey,
		docType,
		doc.Status,
		results,
		doc.CreatedAt,
		analyzedAt,
	)
	return err
}

// GetByID returns a document by ID.
func (r *PGRepo) GetByID(ctx context.Context, documentID string) (Document, error) {
	const query = `
SELECT ` + documentColumns + `
FROM documents
WHERE id = $1`

	doc, err := scanDocument(r.DB.QueryRowContext(ctx, query, documentID))
	if errors.Is(err, sql.ErrNoRows) {
		return Document{}, ErrNotFound
	}
	return doc, err
}

// Update overwrites the mutable fields of an existing document.
func (r *PGRepo) Update(ctx context.Context, doc Document) error {
	const query = `
UPDATE documents
SET document_type = $2, status = $3, results = $4, analyzed_at = $5
WHERE id = $1`

	results, err := json.Marshal(doc.Results)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	var docType sql.NullString
	if doc.DocumentType != "" {
		docType = sql.NullString{String: doc.DocumentType, Valid: true}
	}
	var analyzedAt sql.NullTime
	if doc.AnalyzedAt != nil {
		analyzedAt = sql.NullTime{Time: *doc.AnalyzedAt, Valid: true}
	}

	res, err := r.DB.ExecContext(ctx, query, doc.ID, docType, doc.Status, results, analyzedAt)
	if err != nil {
		return err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns documents newest first, optionally filtered by user.
func (r *PGRepo) List(ctx context.Context, userID string) ([]Document, error) {
	query := `
SELECT ` + documentColumns + `
FROM documents
ORDER BY created_at DESC`
	args := []any{}
	if userID != "" {
		query = `
SELECT ` + documentColumns + `
FROM documents
WHERE user_id = $1
ORDER BY created_at DESC`
		args = append(args, userID)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDocuments(rows)
}

// Search returns documents whose title or text contains the query.
func (r *PGRepo) Search(ctx context.Context, userID, query string) ([]Document, error) {
	sqlQuery := `
SELECT ` + documentColumns + `
FROM documents
WHERE (title ILIKE '%' || $1 || '%' OR text ILIKE '%' || $1 || '%')`
	args := []any{query}
	if userID != "" {
		sqlQuery += ` AND user_id = $2`
		args = append(args, userID)
	}
	sqlQuery += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDocuments(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (Document, error) {
	var doc Document
	var docType sql.NullString
	var results []byte
	var analyzedAt sql.NullTime

	err := row.Scan(
		&doc.ID,
		&doc.UserID,
		&doc.Title,
		&doc.OriginalFilename,
		&doc.FileSizeMB,
		&doc.Text,
		&doc.TextLength,
		&doc.StorageKey,
		&docType,
		&doc.Status,
		&results,
		&doc.CreatedAt,
		&analyzedAt,
	)
	if err != nil {
		return Document{}, err
	}

	if docType.Valid {
		doc.DocumentType = docType.String
	}
	if analyzedAt.Valid {
		t := analyzedAt.Time
		doc.AnalyzedAt = &t
	}
	if len(results) > 0 {
		if err := json.Unmarshal(results, &doc.Results); err != nil {
			return Document{}, fmt.Errorf("unmarshal results: %w", err)
		}
	}
	return doc, nil
}

func collectDocuments(rows *sql.Rows) ([]Document, error) {
	docs := []Document{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}
