package documents

import "context"

// Repo defines persistence operations for documents.
type Repo interface {
	Create(ctx context.Context, doc Document) error
	GetByID(ctx context.Context, documentID string) (Document, error)
	Update(ctx context.Context, doc Document) error
	List(ctx context.Context, userID string) ([]Document, error)
	Search(ctx context.Context, userID, query string) ([]Document, error)
}
