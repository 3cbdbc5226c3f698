// Package retrieval resolves a natural-language question into a bounded set
// of ruling records, reconciling exact citation lookup with semantic search.
package retrieval

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_embedder.go -package=mocks sentencias-rag/internal/retrieval Embedder

import (
	"context"
	"fmt"
)

// Payload field names of the sentencias collection. The names mirror the
// source workbook columns, inconsistent casing included.
const (
	FieldProvidencia = "Providencia"
	FieldFecha       = "Fecha Sentencia"
	FieldTema        = "Tema - subtema"
	FieldSintesis    = "sintesis"
	FieldResuelve    = "resuelve"
)

// Record is one retrieved ruling. Score is set for semantic hits and nil for
// exact-match hits; the two retrieval paths are not score-comparable and are
// never merged by score.
type Record struct {
	ID    string
	Score *float32
	Meta  map[string]any
}

// Field returns the named payload field as a string, or "" when absent.
func (r Record) Field(name string) string {
	v, ok := r.Meta[name]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// Providencia returns the stored citation value, or "" when absent.
func (r Record) Providencia() string { return r.Field(FieldProvidencia) }

// Fecha returns the decision date, or "" when absent.
func (r Record) Fecha() string { return r.Field(FieldFecha) }

// Tema returns the topic/subtopic line, or "" when absent.
func (r Record) Tema() string { return r.Field(FieldTema) }

// Sintesis returns the synthesis text, or "" when absent.
func (r Record) Sintesis() string { return r.Field(FieldSintesis) }

// Resuelve returns the holding text, or "" when absent.
func (r Record) Resuelve() string { return r.Field(FieldResuelve) }

// Embedder produces one embedding vector per input text. It must be called
// with a non-empty string.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}
