package rag

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"sentencias-rag/internal/llm"
	"sentencias-rag/internal/retrieval"
	retmocks "sentencias-rag/internal/retrieval/mocks"
)

type fakeAnswerClient struct {
	calls    int
	messages []llm.Message
	params   llm.ChatParams
	answer   string
	err      error
}

func (f *fakeAnswerClient) ChatWithMessages(ctx context.Context, messages []llm.Message, params llm.ChatParams) (string, error) {
	f.calls++
	f.messages = messages
	f.params = params
	return f.answer, f.err
}

func TestAsk(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	score := float32(0.92)
	resolver := retmocks.NewMockResolver(ctrl)
	resolver.EXPECT().
		Resolve(gomock.Any(), "Resume la sentencia T-123/20", 5).
		Return([]retrieval.Record{
			{
				ID: "p1",
				Meta: map[string]any{
					retrieval.FieldProvidencia: "T-123/20",
					retrieval.FieldFecha:       "2020-05-12",
					retrieval.FieldResuelve:    "CONCEDER la tutela.",
				},
				Score: &score,
			},
		}, nil)

	client := &fakeAnswerClient{answer: "La corte concedió la tutela."}
	engine := NewEngine(resolver, client)

	resp, err := engine.Ask(context.Background(), AskRequest{Question: "Resume la sentencia T-123/20"})
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}

	if resp.Answer != "La corte concedió la tutela." {
		t.Errorf("answer = %q", resp.Answer)
	}
	if len(resp.References) != 1 {
		t.Fatalf("references = %v, want one", resp.References)
	}
	if ref := resp.References[0]; ref.Providencia != "T-123/20" || ref.Fecha != "2020-05-12" || ref.Score == nil || *ref.Score != score {
		t.Errorf("reference = %+v", ref)
	}

	if client.calls != 1 {
		t.Fatalf("ChatWithMessages called %d times, want exactly once", client.calls)
	}
	if client.params.Temperature != 0.3 {
		t.Errorf("temperature = %v, want 0.3", client.params.Temperature)
	}
	if len(client.messages) != 2 {
		t.Fatalf("messages = %v, want system and user", client.messages)
	}
	if client.messages[0].Role != "system" || !strings.Contains(client.messages[0].Content, "jurisprudencia") {
		t.Errorf("system message = %+v", client.messages[0])
	}
	user := client.messages[1]
	if user.Role != "user" {
		t.Errorf("second message role = %q, want user", user.Role)
	}
	if !strings.Contains(user.Content, "Contexto (sentencias recuperadas):") {
		t.Errorf("user message missing context preamble: %q", user.Content)
	}
	if !strings.Contains(user.Content, "--- Sentencia 1 (Providencia: T-123/20") {
		t.Errorf("user message missing assembled context: %q", user.Content)
	}
	if !strings.Contains(user.Content, "Pregunta del usuario: Resume la sentencia T-123/20") {
		t.Errorf("user message missing question: %q", user.Content)
	}
}

func TestAsk_EmptyQuestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := NewEngine(retmocks.NewMockResolver(ctrl), &fakeAnswerClient{})

	_, err := engine.Ask(context.Background(), AskRequest{Question: "   "})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Ask() error = %v, want ValidationError", err)
	}
	if vErr.Field != "question" {
		t.Errorf("ValidationError field = %q, want question", vErr.Field)
	}
}

func TestAsk_TopKBounds(t *testing.T) {
	tests := []struct {
		name     string
		topK     int
		wantTopK int
	}{
		{name: "zero uses default", topK: 0, wantTopK: DefaultTopK},
		{name: "negative uses default", topK: -3, wantTopK: DefaultTopK},
		{name: "over max is clamped", topK: 50, wantTopK: MaxTopK},
		{name: "in range passes through", topK: 7, wantTopK: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			resolver := retmocks.NewMockResolver(ctrl)
			resolver.EXPECT().
				Resolve(gomock.Any(), "una pregunta", tt.wantTopK).
				Return(nil, nil)

			engine := NewEngine(resolver, &fakeAnswerClient{answer: "respuesta"})
			if _, err := engine.Ask(context.Background(), AskRequest{Question: "una pregunta", TopK: tt.topK}); err != nil {
				t.Fatalf("Ask() error = %v", err)
			}
		})
	}
}

// When retrieval finds nothing the model is still consulted, with the
// no-results sentinel as context.
func TestAsk_NoRecordsStillAnswers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := retmocks.NewMockResolver(ctrl)
	resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	client := &fakeAnswerClient{answer: "No hay información suficiente."}
	engine := NewEngine(resolver, client)

	resp, err := engine.Ask(context.Background(), AskRequest{Question: "¿Qué dice la corte?"})
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if len(resp.References) != 0 {
		t.Errorf("references = %v, want empty", resp.References)
	}
	if !strings.Contains(client.messages[1].Content, NoResultsSentinel) {
		t.Errorf("user message missing sentinel: %q", client.messages[1].Content)
	}
}

func TestAsk_EmptyAnswerFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := retmocks.NewMockResolver(ctrl)
	resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	engine := NewEngine(resolver, &fakeAnswerClient{answer: ""})
	resp, err := engine.Ask(context.Background(), AskRequest{Question: "una pregunta"})
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if resp.Answer != emptyAnswerFallback {
		t.Errorf("answer = %q, want fallback", resp.Answer)
	}
}

func TestAsk_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name       string
		resolveErr error
		chatErr    error
	}{
		{name: "retrieval failure", resolveErr: fmt.Errorf("index unavailable")},
		{name: "generation failure", chatErr: fmt.Errorf("model overloaded")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			resolver := retmocks.NewMockResolver(ctrl)
			resolver.EXPECT().
				Resolve(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tt.resolveErr)

			engine := NewEngine(resolver, &fakeAnswerClient{err: tt.chatErr})
			_, err := engine.Ask(context.Background(), AskRequest{Question: "una pregunta"})
			if !errors.Is(err, ErrUpstream) {
				t.Errorf("Ask() error = %v, want ErrUpstream", err)
			}
		})
	}
}
