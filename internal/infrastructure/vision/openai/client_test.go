package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/TomMcLan/luggage-packing-app/internal/core/domain"
	"github.com/TomMcLan/luggage-packing-app/internal/infrastructure/resilience"
)

func testExecutor() *resilience.Executor {
	return resilience.NewExecutor(resilience.Config{
		RetryMaxAttempts:    1,
		RetryInitialBackoff: 1,
		RetryMaxBackoff:     1,
		RetryMultiplier:     2,
		BreakerEnabled:      false,
	})
}

func TestDetectItemsParsesVisionResponse(t *testing.T) {
	content := `Here you go:
` + "```json\n" + `{"items":[{"name":"t-shirt","category":"clothing","quantity":2}],"referenceObject":{"found":true,"type":"credit_card","boundingBox":{"x":1,"y":2,"width":171,"height":108}},"imageAnalysis":{"totalItems":1}}` + "\n```"

	var gotAuth, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode chat request: %v", err)
		}
		if len(req.Messages) != 1 || len(req.Messages[0].Content) != 2 {
			t.Errorf("expected one message with text+image parts, got %+v", req.Messages)
		}
		if !strings.HasPrefix(req.Messages[0].Content[1].ImageURL.URL, "data:image/jpeg;base64,") {
			t.Errorf("expected base64 data url, got %q", req.Messages[0].Content[1].ImageURL.URL)
		}

		writeChatContent(w, content)
	}))
	defer server.Close()

	client := New(server.URL, "test-key", "gpt-4o", testExecutor())
	detection, err := client.DetectItems(context.Background(), []byte("jpeg-bytes"), "image/jpeg")
	if err != nil {
		t.Fatalf("detect: %v", err)
	}

	if gotPath != "/v1/chat/completions" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("expected bearer auth, got %q", gotAuth)
	}
	if len(detection.Items) != 1 || detection.Items[0].Name != "t-shirt" {
		t.Fatalf("unexpected items: %+v", detection.Items)
	}
	if !detection.ReferenceObject.Found || detection.ReferenceObject.BoundingBox.Width != 171 {
		t.Fatalf("unexpected reference: %+v", detection.ReferenceObject)
	}
}

func TestDetectItemsWrapsServerErrorsAsTemporary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := New(server.URL, "", "gpt-4o", testExecutor())
	_, err := client.DetectItems(context.Background(), []byte("jpeg-bytes"), "image/jpeg")
	if err == nil {
		t.Fatalf("expected error for 503 upstream")
	}
	if !domain.IsKind(err, domain.ErrTemporary) {
		t.Fatalf("expected temporary classification, got %v", err)
	}
}

func TestDetectItemsDoesNotRetryClientErrors(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer server.Close()

	executor := resilience.NewExecutor(resilience.Config{
		RetryMaxAttempts:    3,
		RetryInitialBackoff: 1,
		RetryMaxBackoff:     1,
		RetryMultiplier:     2,
		BreakerEnabled:      false,
	})
	client := New(server.URL, "", "gpt-4o", executor)

	_, err := client.DetectItems(context.Background(), []byte("jpeg-bytes"), "image/jpeg")
	if err == nil {
		t.Fatalf("expected error for 400 upstream")
	}
	if domain.IsKind(err, domain.ErrTemporary) {
		t.Fatalf("client errors must not be classified temporary: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected a single attempt for a permanent error, got %d", calls)
	}
}

func TestClassifyVisionError(t *testing.T) {
	retryable := classifyVisionError(&HTTPStatusError{StatusCode: http.StatusTooManyRequests})
	if !retryable.Retryable || !retryable.RecordFailure {
		t.Fatalf("429 must be retryable and recorded, got %+v", retryable)
	}

	permanent := classifyVisionError(&HTTPStatusError{StatusCode: http.StatusUnauthorized})
	if permanent.Retryable || permanent.RecordFailure {
		t.Fatalf("401 must be permanent and unrecorded, got %+v", permanent)
	}

	cancelled := classifyVisionError(context.Canceled)
	if cancelled.Retryable || cancelled.RecordFailure {
		t.Fatalf("cancellation must not retry or trip the breaker, got %+v", cancelled)
	}

	unknown := classifyVisionError(errors.New("parse failure"))
	if unknown.Retryable || !unknown.RecordFailure {
		t.Fatalf("unknown errors record but do not retry, got %+v", unknown)
	}
}

func TestExtractJSONObject(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{`The answer is {"a":{"b":2}} as requested`, `{"a":{"b":2}}`},
		{"no json here", "no json here"},
	}
	for _, tc := range cases {
		if got := extractJSONObject(tc.in); got != tc.want {
			t.Fatalf("extractJSONObject(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func writeChatContent(w http.ResponseWriter, content string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
}
