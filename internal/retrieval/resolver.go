package retrieval

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_retrievers.go -package=mocks sentencias-rag/internal/retrieval ExactRetriever,SemanticRetriever,Resolver

import (
	"context"

	"sentencias-rag/internal/citation"
	"sentencias-rag/internal/contextutil"
)

// ExactRetriever retrieves rulings by recognized citations. An empty result
// is a legitimate "not found" outcome, never an error.
type ExactRetriever interface {
	FetchMany(ctx context.Context, citations []string, limit int) []Record
}

// SemanticRetriever retrieves rulings by embedding similarity, post-filtered
// by the given recognized citations when non-empty.
type SemanticRetriever interface {
	Search(ctx context.Context, question string, topK int, citations []string) ([]Record, error)
}

// Resolver decides, per question, between deterministic citation lookup and
// approximate semantic search, and returns at most topK records.
type Resolver interface {
	Resolve(ctx context.Context, question string, topK int) ([]Record, error)
}

type resolver struct {
	exact    ExactRetriever
	semantic SemanticRetriever
}

// NewResolver creates a Resolver over the two retrieval strategies.
func NewResolver(exact ExactRetriever, semantic SemanticRetriever) Resolver {
	return &resolver{
		exact:    exact,
		semantic: semantic,
	}
}

// Resolve extracts citations from the question. When citations are recognized
// and exact lookup yields records, those records win and semantic search is
// not invoked. Otherwise semantic search runs with the recognized citations
// (possibly none) as a post-filter. An empty result is a valid outcome.
func (r *resolver) Resolve(ctx context.Context, question string, topK int) ([]Record, error) {
	logger := contextutil.LoggerFromContext(ctx)

	citations := citation.Extract(question)
	if len(citations) > 0 {
		// Room for every cited ruling even when topK is smaller.
		limit := topK
		if n := 2 * len(citations); n > limit {
			limit = n
		}
		if records := r.exact.FetchMany(ctx, citations, limit); len(records) > 0 {
			logger.InfoContext(ctx, "resolved by exact citation lookup",
				"citations", citations, "records", len(records))
			return records, nil
		}
		logger.InfoContext(ctx, "citations recognized but not found, falling back to semantic search",
			"citations", citations)
	}

	return r.semantic.Search(ctx, question, topK, citations)
}
