package rag

import (
	"context"
	"fmt"
	"strings"

	"sentencias-rag/internal/contextutil"
	"sentencias-rag/internal/llm"
	"sentencias-rag/internal/retrieval"
)

const (
	// DefaultTopK is the number of rulings used as context when the caller
	// does not specify one.
	DefaultTopK = 5
	// MaxTopK bounds the context size a caller may request.
	MaxTopK = 20

	// answerTemperature keeps the generated answers close to the context.
	answerTemperature = 0.3
)

// systemPrompt constrains the model to the retrieved context only.
const systemPrompt = "Eres un asistente experto en jurisprudencia colombiana. " +
	"Tu única fuente de información es el contexto que se te proporciona (fragmentos de sentencias). " +
	"Responde de forma clara y concisa basándote únicamente en ese contexto. " +
	"Si el contexto no contiene información suficiente para responder, dilo explícitamente. " +
	"No inventes datos ni referencias."

// emptyAnswerFallback is returned when the model produces no content.
const emptyAnswerFallback = "(Sin respuesta)"

// AnswerClient generates the final answer. Single-turn: one request, one
// response.
type AnswerClient interface {
	ChatWithMessages(ctx context.Context, messages []llm.Message, params llm.ChatParams) (string, error)
}

// Engine answers questions about the indexed rulings.
type Engine interface {
	// Ask retrieves relevant rulings for the question and composes an
	// answer from them.
	Ask(ctx context.Context, req AskRequest) (AskResponse, error)
}

// ragEngine implements the Engine interface. It holds no state beyond its
// constructor-injected collaborators.
type ragEngine struct {
	resolver  retrieval.Resolver
	llmClient AnswerClient
}

// NewEngine creates a new RAG engine.
func NewEngine(resolver retrieval.Resolver, llmClient AnswerClient) Engine {
	return &ragEngine{
		resolver:  resolver,
		llmClient: llmClient,
	}
}

// Ask answers a question about the rulings.
func (e *ragEngine) Ask(ctx context.Context, req AskRequest) (AskResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	question := strings.TrimSpace(req.Question)
	if question == "" {
		return AskResponse{}, &ValidationError{Field: "question", Message: "cannot be empty"}
	}

	topK := req.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}
	if topK > MaxTopK {
		topK = MaxTopK
	}

	logger.InfoContext(ctx, "question received", "question_length", len(question), "top_k", topK)

	records, err := e.resolver.Resolve(ctx, question, topK)
	if err != nil {
		logger.ErrorContext(ctx, "retrieval failed on every path", "error", err)
		return AskResponse{}, fmt.Errorf("%w: retrieval failed: %v", ErrUpstream, err)
	}

	contextBlock := BuildContext(records)
	logger.InfoContext(ctx, "context assembled", "rulings", len(records), "context_length", len(contextBlock))

	userMessage := fmt.Sprintf("Contexto (sentencias recuperadas):\n\n%s\n\n---\n\nPregunta del usuario: %s", contextBlock, question)
	messages := []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userMessage},
	}

	answer, err := e.llmClient.ChatWithMessages(ctx, messages, llm.ChatParams{
		Temperature: answerTemperature,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to generate answer", "error", err)
		return AskResponse{}, fmt.Errorf("%w: failed to generate answer: %v", ErrUpstream, err)
	}
	if answer == "" {
		answer = emptyAnswerFallback
	}

	references := make([]Reference, 0, len(records))
	for _, rec := range records {
		references = append(references, Reference{
			Providencia: rec.Providencia(),
			Fecha:       rec.Fecha(),
			Score:       rec.Score,
		})
	}

	logger.InfoContext(ctx, "question answered", "answer_length", len(answer), "references", len(references))

	return AskResponse{
		Answer:     answer,
		References: references,
	}, nil
}
