package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestEmbedTexts(t *testing.T) {
	var gotReq EmbeddingsRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/embeddings" {
			t.Errorf("path = %s, want /v1/embeddings", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("Authorization = %q, want Bearer test-key", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}

		resp := EmbeddingsResponse{
			Data: []EmbeddingData{
				{Embedding: []float64{0.1, 0.2, 0.3}},
				{Embedding: []float64{0.4, 0.5, 0.6}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewEmbeddingsClient(server.URL, "test-key", "embed-model", 3)
	vecs, err := client.EmbedTexts(context.Background(), []string{"primer texto", "segundo texto"})
	if err != nil {
		t.Fatalf("EmbedTexts() error = %v", err)
	}

	if gotReq.Model != "embed-model" {
		t.Errorf("request model = %q, want embed-model", gotReq.Model)
	}
	if len(gotReq.Input) != 2 {
		t.Errorf("request input length = %d, want 2", len(gotReq.Input))
	}
	if len(vecs) != 2 {
		t.Fatalf("EmbedTexts() returned %d vectors, want 2", len(vecs))
	}
	if vecs[0][0] != float32(0.1) || vecs[1][2] != float32(0.6) {
		t.Errorf("EmbedTexts() vectors = %v, want float32 conversion of response", vecs)
	}
}

func TestEmbedTexts_EmptyInput(t *testing.T) {
	client := NewEmbeddingsClient("http://unused", "key", "model", 3)
	if _, err := client.EmbedTexts(context.Background(), nil); err == nil {
		t.Error("EmbedTexts(nil) error = nil, want error")
	}
}

func TestEmbedTexts_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "quota exceeded", http.StatusTooManyRequests)
			},
		},
		{
			name: "count mismatch",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(EmbeddingsResponse{
					Data: []EmbeddingData{{Embedding: []float64{0.1, 0.2, 0.3}}},
				})
			},
		},
		{
			name: "size mismatch",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(EmbeddingsResponse{
					Data: []EmbeddingData{
						{Embedding: []float64{0.1, 0.2, 0.3}},
						{Embedding: []float64{0.4, 0.5}},
					},
				})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewEmbeddingsClient(server.URL, "test-key", "model", 3)
			if _, err := client.EmbedTexts(context.Background(), []string{"uno", "dos"}); err == nil {
				t.Error("EmbedTexts() error = nil, want error")
			}
		})
	}
}

func TestEmbedText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req EmbeddingsRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if len(req.Input) != 1 || req.Input[0] != "una pregunta" {
			t.Errorf("request input = %v, want single text", req.Input)
		}
		_ = json.NewEncoder(w).Encode(EmbeddingsResponse{
			Data: []EmbeddingData{{Embedding: []float64{1, 2, 3}}},
		})
	}))
	defer server.Close()

	client := NewEmbeddingsClient(server.URL, "test-key", "model", 3)
	vec, err := client.EmbedText(context.Background(), "una pregunta")
	if err != nil {
		t.Fatalf("EmbedText() error = %v", err)
	}
	if len(vec) != 3 {
		t.Errorf("EmbedText() vector size = %d, want 3", len(vec))
	}
}
