package domain

import "errors"

// Domain errors
var (
	ErrPostNotFound         = errors.New("post not found")
	ErrDocumentNotFound     = errors.New("document not found")
	ErrSlugAlreadyExists    = errors.New("slug already exists")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidFile          = errors.New("invalid file")
)

// ValidationError represents a validation error with field and message information.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}
