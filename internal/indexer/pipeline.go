package indexer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"sentencias-rag/internal/contextutil"
	"sentencias-rag/internal/retrieval"
	"sentencias-rag/internal/vectorstore"
)

// DefaultBatchSize bounds how many rulings are embedded per API call.
const DefaultBatchSize = 32

// BatchEmbedder produces one embedding per input text.
type BatchEmbedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Stats summarizes one ingestion run.
type Stats struct {
	Rulings       int
	Embedded      int
	Upserted      int
	FailedBatches int
}

// Pipeline embeds rulings and upserts them into the vector collection.
type Pipeline struct {
	embedder   BatchEmbedder
	store      vectorstore.VectorStore
	collection string
	batchSize  int
}

// NewPipeline creates a new ingestion pipeline. A non-positive batchSize
// falls back to DefaultBatchSize.
func NewPipeline(embedder BatchEmbedder, store vectorstore.VectorStore, collection string, batchSize int) *Pipeline {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Pipeline{
		embedder:   embedder,
		store:      store,
		collection: collection,
		batchSize:  batchSize,
	}
}

// Run ingests the given rulings batch by batch. A failing batch is logged
// and skipped so one bad batch does not sink the whole run; an error is
// returned only when nothing at all was ingested or the context was
// cancelled.
func (p *Pipeline) Run(ctx context.Context, rulings []Ruling) (Stats, error) {
	logger := contextutil.LoggerFromContext(ctx)

	stats := Stats{Rulings: len(rulings)}
	for start := 0; start < len(rulings); start += p.batchSize {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		end := start + p.batchSize
		if end > len(rulings) {
			end = len(rulings)
		}
		batch := rulings[start:end]

		texts := make([]string, len(batch))
		for i, r := range batch {
			texts[i] = embeddingText(r)
		}

		vectors, err := p.embedder.EmbedTexts(ctx, texts)
		if err != nil {
			logger.WarnContext(ctx, "failed to embed batch, skipping", "offset", start, "size", len(batch), "error", err)
			stats.FailedBatches++
			continue
		}
		stats.Embedded += len(batch)

		points := make([]vectorstore.Point, len(batch))
		for i, r := range batch {
			points[i] = vectorstore.Point{
				ID:  uuid.NewString(),
				Vec: vectors[i],
				Meta: map[string]any{
					retrieval.FieldProvidencia: r.Providencia,
					retrieval.FieldFecha:       r.Fecha,
					retrieval.FieldTema:        r.Tema,
					retrieval.FieldSintesis:    r.Sintesis,
					retrieval.FieldResuelve:    r.Resuelve,
				},
			}
		}

		if err := p.store.Upsert(ctx, p.collection, points); err != nil {
			logger.WarnContext(ctx, "failed to upsert batch, skipping", "offset", start, "size", len(batch), "error", err)
			stats.FailedBatches++
			continue
		}
		stats.Upserted += len(batch)

		logger.InfoContext(ctx, "batch ingested", "offset", start, "size", len(batch))
	}

	if stats.Rulings > 0 && stats.Upserted == 0 {
		return stats, fmt.Errorf("no rulings ingested (%d batches failed)", stats.FailedBatches)
	}
	return stats, nil
}

// embeddingText composes the text embedded for a ruling: its topic, synthesis
// and holding joined together, falling back to the citation when all are
// empty.
func embeddingText(r Ruling) string {
	parts := make([]string, 0, 3)
	for _, s := range []string{r.Tema, r.Sintesis, r.Resuelve} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return r.Providencia
	}
	return strings.Join(parts, "\n\n")
}
