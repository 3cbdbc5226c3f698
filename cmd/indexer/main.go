package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"sentencias-rag/internal/config"
	"sentencias-rag/internal/indexer"
	"sentencias-rag/internal/llm"
	"sentencias-rag/internal/vectorstore"
)

func main() {
	var (
		file      = flag.String("file", "", "path to the rulings XLSX workbook (required)")
		sheet     = flag.String("sheet", "", "sheet name (default: first sheet)")
		batchSize = flag.Int("batch", indexer.DefaultBatchSize, "rulings embedded per batch")
	)
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx := context.Background()

	vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
	if err != nil {
		log.Fatalf("Failed to create Qdrant client: %v", err)
	}
	if err := vectorStore.EnsureCollection(ctx, cfg.QdrantCollection, cfg.QdrantVectorSize); err != nil {
		log.Fatalf("Failed to ensure Qdrant collection: %v", err)
	}

	rulings, err := indexer.ReadWorkbook(*file, *sheet)
	if err != nil {
		log.Fatalf("Failed to read workbook: %v", err)
	}
	slog.Info("Workbook loaded", "file", *file, "rulings", len(rulings))

	embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.EmbeddingAPIKey, cfg.EmbeddingModelName, cfg.QdrantVectorSize)
	pipeline := indexer.NewPipeline(embedder, vectorStore, cfg.QdrantCollection, *batchSize)

	stats, err := pipeline.Run(ctx, rulings)
	if err != nil {
		log.Fatalf("Ingestion failed: %v (rulings=%d embedded=%d upserted=%d failed_batches=%d)",
			err, stats.Rulings, stats.Embedded, stats.Upserted, stats.FailedBatches)
	}

	slog.Info("Ingestion completed",
		"rulings", stats.Rulings,
		"embedded", stats.Embedded,
		"upserted", stats.Upserted,
		"failed_batches", stats.FailedBatches,
	)
}
