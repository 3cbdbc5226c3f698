package rag

import (
	"errors"
	"fmt"
)

// ErrUpstream marks hard failures of an external collaborator (embedding
// service, vector index on the last fallback path, or the generative model).
// Soft failures inside the retrieval fallbacks never carry it; they degrade
// to the next strategy instead.
var ErrUpstream = errors.New("upstream service error")

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}
