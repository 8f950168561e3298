package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func geminiTextResponse(text string) geminiResponse {
	var resp geminiResponse
	resp.Candidates = []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	}{{}}
	resp.Candidates[0].Content.Parts = []struct {
		Text string `json:"text"`
	}{{Text: text}}
	return resp
}

func TestClientComplete(t *testing.T) {
	var received geminiRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/models/gemini-1.5-flash:generateContent") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing or wrong API key in query")
		}

		json.NewDecoder(r.Body).Decode(&received)
		json.NewEncoder(w).Encode(geminiTextResponse(`$F = ma$`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	text, err := client.Complete(context.Background(), CompletionRequest{
		SystemInstruction: SystemInstruction,
		Text:              "State Newton's second law.",
	})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if text != `$F = ma$` {
		t.Errorf("text = %q, want %q", text, `$F = ma$`)
	}

	if received.SystemInstruction == nil {
		t.Fatal("system instruction not forwarded")
	}
	if len(received.Contents) != 1 || received.Contents[0].Role != "user" {
		t.Errorf("contents = %+v, want one user turn", received.Contents)
	}
}

func TestClientCompleteWithImage(t *testing.T) {
	var received geminiRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&received)
		json.NewEncoder(w).Encode(geminiTextResponse("ok"))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	_, err := client.Complete(context.Background(), CompletionRequest{
		Text:        "Solve the circuit in the image.",
		ImageBase64: "aGVsbG8=",
		ImageMIME:   "image/png",
	})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	parts := received.Contents[0].Parts
	if len(parts) != 2 {
		t.Fatalf("got %d parts, want text + inline image", len(parts))
	}
	if parts[1].InlineData == nil || parts[1].InlineData.MIMEType != "image/png" {
		t.Errorf("inline image not forwarded: %+v", parts[1])
	}
}

func TestClientCompleteAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	_, err := client.Complete(context.Background(), CompletionRequest{Text: "hi"})
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestClientCompleteEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiResponse{})
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	_, err := client.Complete(context.Background(), CompletionRequest{Text: "hi"})
	if err == nil {
		t.Fatal("expected error for empty candidates")
	}
}
