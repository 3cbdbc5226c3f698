package retrieval

import (
	"context"
	"fmt"
	"strings"

	"sentencias-rag/internal/citation"
	"sentencias-rag/internal/contextutil"
	"sentencias-rag/internal/vectorstore"
)

// overfetchFactor over-fetches nearest neighbors to leave room for the
// citation post-filter to discard inconsistent matches.
const overfetchFactor = 3

// SemanticSearcher retrieves rulings by approximate nearest-neighbor search
// over question embeddings. It is the last fallback path, so embedding and
// index failures here are hard errors.
type SemanticSearcher struct {
	embedder   Embedder
	store      vectorstore.VectorStore
	collection string
}

// NewSemanticSearcher creates a SemanticSearcher over the given collection.
func NewSemanticSearcher(embedder Embedder, store vectorstore.VectorStore, collection string) *SemanticSearcher {
	return &SemanticSearcher{
		embedder:   embedder,
		store:      store,
		collection: collection,
	}
}

// Search embeds the question and returns the topK nearest rulings with their
// similarity scores. When citations is non-empty (citations were recognized
// in the question but exact lookup found nothing), only matches whose stored
// citation is consistent with one of them survive: the stored value's
// comparison key must contain a recognized citation's comparison key as a
// substring.
func (s *SemanticSearcher) Search(ctx context.Context, question string, topK int, citations []string) ([]Record, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if topK <= 0 {
		return nil, fmt.Errorf("topK must be greater than 0")
	}

	q := strings.TrimSpace(question)
	if q == "" {
		q = " " // the embedding service rejects empty input
	}

	vector, err := s.embedder.EmbedText(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to embed question: %w", err)
	}

	hits, err := s.store.Search(ctx, s.collection, vector, topK*overfetchFactor)
	if err != nil {
		return nil, fmt.Errorf("failed to query vector index: %w", err)
	}

	keys := make([]string, 0, len(citations))
	for _, c := range citations {
		keys = append(keys, citation.ComparisonKey(c))
	}

	records := make([]Record, 0, topK)
	discarded := 0
	for _, h := range hits {
		rec := Record{ID: h.PointID, Meta: h.Meta}
		if len(keys) > 0 && !matchesAnyCitation(citation.ComparisonKey(rec.Providencia()), keys) {
			discarded++
			continue
		}
		score := h.Score
		rec.Score = &score
		records = append(records, rec)
		if len(records) == topK {
			break
		}
	}

	logger.DebugContext(ctx, "semantic search completed",
		"hits", len(hits), "kept", len(records), "discarded_by_filter", discarded)
	return records, nil
}

// matchesAnyCitation reports whether the stored citation key contains any of
// the recognized citation keys as a substring.
func matchesAnyCitation(stored string, keys []string) bool {
	for _, k := range keys {
		if k != "" && strings.Contains(stored, k) {
			return true
		}
	}
	return false
}
