package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"sentencias-rag/internal/config"
	"sentencias-rag/internal/http"
	"sentencias-rag/internal/llm"
	"sentencias-rag/internal/rag"
	"sentencias-rag/internal/retrieval"
	"sentencias-rag/internal/vectorstore"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	ctx := context.Background()

	// Initialize Qdrant vector store
	vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
	if err != nil {
		log.Fatalf("Failed to create Qdrant client: %v", err)
	}
	if err := vectorStore.EnsureCollection(ctx, cfg.QdrantCollection, cfg.QdrantVectorSize); err != nil {
		log.Fatalf("Failed to ensure Qdrant collection: %v", err)
	}
	slog.Info("Qdrant collection ready", "collection", cfg.QdrantCollection, "vector_size", cfg.QdrantVectorSize)

	// External service clients
	embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.EmbeddingAPIKey, cfg.EmbeddingModelName, cfg.QdrantVectorSize)
	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModelName)

	// Retrieval resolver: exact citation lookup with semantic fallback
	exact := retrieval.NewExactFetcher(vectorStore, cfg.QdrantCollection)
	semantic := retrieval.NewSemanticSearcher(embedder, vectorStore, cfg.QdrantCollection)
	resolver := retrieval.NewResolver(exact, semantic)

	engine := rag.NewEngine(resolver, llmClient)
	slog.Info("RAG engine initialized", "chat_model", cfg.LLMModelName, "embedding_model", cfg.EmbeddingModelName)

	router := http.NewRouter(&http.Deps{
		RAGEngine:  engine,
		Collection: cfg.QdrantCollection,
		ChatModel:  cfg.LLMModelName,
	})

	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
