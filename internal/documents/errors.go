package documents

import "errors"

var (
	// ErrNotFound marks a lookup for a document that does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidInput marks a request the caller can fix.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupportedType marks an upload with a file type we cannot extract.
	ErrUnsupportedType = errors.New("unsupported file type")
)
