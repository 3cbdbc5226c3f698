package vectorstore

import (
	"net/url"
	"strconv"
	"testing"

	"github.com/qdrant/go-client/qdrant"
)

// TestNewQdrantStore_URLParsing tests URL parsing logic without creating a
// real client, to avoid connection warnings in unit tests.
func TestNewQdrantStore_URLParsing(t *testing.T) {
	tests := []struct {
		name     string
		urlStr   string
		wantErr  bool
		wantHost string
		wantPort int
	}{
		{
			name:     "valid URL",
			urlStr:   "http://localhost:6333",
			wantErr:  false,
			wantHost: "localhost",
			wantPort: 6334, // gRPC port is HTTP port + 1
		},
		{
			name:     "URL with custom port",
			urlStr:   "http://qdrant.internal:9000",
			wantErr:  false,
			wantHost: "qdrant.internal",
			wantPort: 9001,
		},
		{
			name:    "invalid URL",
			urlStr:  "://invalid",
			wantErr: true,
		},
		{
			name:     "URL without port",
			urlStr:   "http://localhost",
			wantErr:  false,
			wantHost: "localhost",
			wantPort: 6334, // Default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsedURL, err := url.Parse(tt.urlStr)
			if tt.wantErr {
				if err == nil {
					t.Errorf("url.Parse(%q) expected error, got nil", tt.urlStr)
				}
				return
			}
			if err != nil {
				t.Fatalf("url.Parse(%q) unexpected error: %v", tt.urlStr, err)
			}

			host := parsedURL.Hostname()
			if host == "" {
				host = "localhost"
			}
			port := 6334
			if parsedURL.Port() != "" {
				if httpPort, err := strconv.Atoi(parsedURL.Port()); err == nil {
					port = httpPort + 1
				}
			}

			if host != tt.wantHost {
				t.Errorf("host = %q, want %q", host, tt.wantHost)
			}
			if port != tt.wantPort {
				t.Errorf("port = %d, want %d", port, tt.wantPort)
			}
		})
	}
}

func TestConvertValue(t *testing.T) {
	tests := []struct {
		name     string
		value    *qdrant.Value
		expected any
	}{
		{
			name:     "string value",
			value:    qdrant.NewValueString("T-123/20"),
			expected: "T-123/20",
		},
		{
			name:     "integer value",
			value:    qdrant.NewValueInt(42),
			expected: int64(42),
		},
		{
			name:     "double value",
			value:    qdrant.NewValueDouble(0.5),
			expected: 0.5,
		},
		{
			name:     "bool value",
			value:    qdrant.NewValueBool(true),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convertValue(tt.value)
			if got != tt.expected {
				t.Errorf("convertValue() = %v (%T), want %v (%T)", got, got, tt.expected, tt.expected)
			}
		})
	}
}

func TestConvertPayloadToMap(t *testing.T) {
	payload := map[string]*qdrant.Value{
		"Providencia":     qdrant.NewValueString("T-123/20"),
		"Fecha Sentencia": qdrant.NewValueString("2020-04-15"),
		"nil entry":       nil,
	}

	got := convertPayloadToMap(payload)

	if len(got) != 2 {
		t.Fatalf("convertPayloadToMap() returned %d entries, want 2", len(got))
	}
	if got["Providencia"] != "T-123/20" {
		t.Errorf("Providencia = %v, want T-123/20", got["Providencia"])
	}
	if got["Fecha Sentencia"] != "2020-04-15" {
		t.Errorf("Fecha Sentencia = %v, want 2020-04-15", got["Fecha Sentencia"])
	}
}
