package qwen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) IQwen {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(Config{
		APIKey:     "test-key",
		Model:      "test-model",
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client
}

func TestGenerateContent(t *testing.T) {
	var gotReq openAIRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("Authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(openAIResponse{
			Model: "test-model",
			Choices: []openAIChoice{
				{Message: openAIMessage{Role: "assistant", Content: "```json\n{}\n```"}},
			},
		})
	})

	resp, err := client.GenerateContent(context.Background(), &Request{
		SystemInstruction: "You are a parser.",
		Prompt:            "lunch 12.50",
	})
	if err != nil {
		t.Fatalf("GenerateContent() error = %v", err)
	}

	// The raw text is returned untouched; fence cleanup is the caller's job.
	if resp.Text != "```json\n{}\n```" {
		t.Errorf("Text = %q", resp.Text)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Role != "user" {
		t.Errorf("messages = %+v", gotReq.Messages)
	}
}

func TestGenerateContent_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "throttled", http.StatusServiceUnavailable)
	})

	_, err := client.GenerateContent(context.Background(), &Request{Prompt: "x"})
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
	if !strings.Contains(err.Error(), "API error 503") {
		t.Errorf("error = %v", err)
	}
}

func TestGenerateContent_EmptyChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(openAIResponse{Model: "test-model"})
	})

	_, err := client.GenerateContent(context.Background(), &Request{Prompt: "x"})
	if err == nil {
		t.Fatal("expected error for empty choices")
	}
	if !strings.Contains(err.Error(), "empty response") {
		t.Errorf("error = %v", err)
	}
}
