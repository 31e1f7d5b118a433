package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	c, err := NewClient(Config{BaseURL: "http://localhost:11434"}, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	defer c.Close()

	if c.cfg.Timeout != DefaultConfig().Timeout {
		t.Fatalf("zero timeout not defaulted: %v", c.cfg.Timeout)
	}
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	if _, err := NewClient(Config{BaseURL: "not a url"}, nil); err == nil {
		t.Fatalf("expected error for invalid base url")
	}
}

func TestClose_Idempotent(t *testing.T) {
	c, err := NewDefaultClient(Config{BaseURL: "http://localhost:11434"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if err := c.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}

	var nilClient *Client
	if err := nilClient.Close(); err != nil {
		t.Fatalf("nil close: %v", err)
	}
}

// newStreamServer fakes the generate endpoint with a chunked response.
func newStreamServer(t *testing.T, chunks []string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			w.WriteHeader(http.StatusOK)
			return
		}

		w.Header().Set("Content-Type", "application/x-ndjson")
		enc := json.NewEncoder(w)
		for i, chunk := range chunks {
			_ = enc.Encode(map[string]any{
				"model":    "test-model",
				"response": chunk,
				"done":     i == len(chunks)-1,
			})
		}
	}))
}

func TestGenerate(t *testing.T) {
	ts := newStreamServer(t, []string{"{\"title\": ", "\"Roadmap\"}"})
	defer ts.Close()

	c, err := NewClient(Config{BaseURL: ts.URL, Timeout: 5 * time.Second}, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	defer c.Close()

	out, err := c.Generate(context.Background(), "test-model", "generate a roadmap")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if out != `{"title": "Roadmap"}` {
		t.Fatalf("out = %q", out)
	}
}

func TestGenerate_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "model not found"}`, http.StatusNotFound)
	}))
	defer ts.Close()

	c, err := NewClient(Config{BaseURL: ts.URL, Timeout: 5 * time.Second}, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	defer c.Close()

	if _, err := c.Generate(context.Background(), "missing-model", "hello"); err == nil {
		t.Fatalf("expected error from server failure")
	}
}

func TestHealth(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c, err := NewClient(Config{BaseURL: ts.URL, Timeout: 5 * time.Second}, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	defer c.Close()

	if err := c.Health(context.Background()); err != nil {
		t.Fatalf("health: %v", err)
	}
}

func TestHealth_Down(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c, err := NewClient(Config{BaseURL: ts.URL, Timeout: 5 * time.Second}, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	defer c.Close()

	if err := c.Health(context.Background()); err == nil {
		t.Fatalf("expected health error")
	}
}
