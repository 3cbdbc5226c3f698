package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"sentencias-rag/internal/contextutil"
)

// HealthHandler serves the liveness endpoint with the static service
// identity. It performs no dependency probes; retrieval failures surface on
// the query path itself.
type HealthHandler struct {
	service    string
	collection string
	chatModel  string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(service, collection, chatModel string) *HealthHandler {
	return &HealthHandler{
		service:    service,
		collection: collection,
		chatModel:  chatModel,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status     string `json:"status"`
	Service    string `json:"service"`
	Collection string `json:"collection"`
	ChatModel  string `json:"chat_model"`
	Timestamp  string `json:"timestamp"`
}

// ServeHTTP handles GET /api/health.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(HealthResponse{
		Status:     "ok",
		Service:    h.service,
		Collection: h.collection,
		ChatModel:  h.chatModel,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		logger.ErrorContext(ctx, "failed to encode health response", "error", err)
	}
}
