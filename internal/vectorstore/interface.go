package vectorstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_vector_store.go -package=mocks sentencias-rag/internal/vectorstore VectorStore

import "context"

// Point represents a vector point with metadata.
type Point struct {
	ID   string
	Vec  []float32
	Meta map[string]any
}

// SearchResult is one point returned by the store: a similarity hit from
// Search (Score set by the index) or a metadata-filter hit from FetchByField
// (Score zero and meaningless; the caller must not rank by it).
type SearchResult struct {
	PointID string
	Score   float32
	Meta    map[string]any
}

// VectorStore defines the vector index and metadata store operations.
type VectorStore interface {
	// Upsert inserts or updates points in the collection.
	Upsert(ctx context.Context, collection string, points []Point) error

	// Search performs a similarity search returning up to k scored hits
	// with their payload.
	Search(ctx context.Context, collection string, query []float32, k int) ([]SearchResult, error)

	// FetchByField returns up to limit points whose payload field matches
	// one of the given values: equality for a single value, membership for
	// several. No ranking is implied by the result order.
	FetchByField(ctx context.Context, collection string, field string, values []string, limit int) ([]SearchResult, error)
}
