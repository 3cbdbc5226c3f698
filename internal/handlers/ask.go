package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"sentencias-rag/internal/contextutil"
	"sentencias-rag/internal/rag"
)

// AskHandler handles question-answering requests.
type AskHandler struct {
	engine rag.Engine
}

// NewAskHandler creates a new AskHandler.
func NewAskHandler(engine rag.Engine) *AskHandler {
	return &AskHandler{engine: engine}
}

// AskRequest represents the HTTP request payload for questions.
// This mirrors rag.AskRequest but is defined here for HTTP layer separation.
type AskRequest struct {
	Question string `json:"question"`
	TopK     int    `json:"top_k,omitempty"`
}

// ReferenceResponse represents one backing ruling in the HTTP response.
type ReferenceResponse struct {
	Providencia string   `json:"providencia"`
	Fecha       string   `json:"fecha,omitempty"`
	Score       *float32 `json:"score,omitempty"`
}

// AskResponse represents the HTTP response payload.
type AskResponse struct {
	Answer     string              `json:"answer"`
	References []ReferenceResponse `json:"references"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ServeHTTP handles POST /api/v1/ask.
func (h *AskHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Question == "" {
		logger.WarnContext(ctx, "empty question in request")
		writeError(w, http.StatusBadRequest, "Question is required")
		return
	}
	if req.TopK < 0 || req.TopK > rag.MaxTopK {
		logger.WarnContext(ctx, "top_k out of range", "top_k", req.TopK)
		writeError(w, http.StatusBadRequest, fmt.Sprintf("top_k must be between 1 and %d", rag.MaxTopK))
		return
	}

	resp, err := h.engine.Ask(ctx, rag.AskRequest{
		Question: req.Question,
		TopK:     req.TopK,
	})
	if err != nil {
		h.handleEngineError(w, r, err)
		return
	}

	references := make([]ReferenceResponse, 0, len(resp.References))
	for _, ref := range resp.References {
		references = append(references, ReferenceResponse{
			Providencia: ref.Providencia,
			Fecha:       ref.Fecha,
			Score:       ref.Score,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(AskResponse{
		Answer:     resp.Answer,
		References: references,
	}); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// handleEngineError maps engine errors to HTTP status codes.
func (h *AskHandler) handleEngineError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "ask request failed", "error", err)

	var validationErr *rag.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, rag.ErrUpstream):
		writeError(w, http.StatusBadGateway, "External service error")
	default:
		writeError(w, http.StatusInternalServerError, "Failed to process question")
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
	})
}
