package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Send(t *testing.T) {
	var got relayPayload
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL, "test-key", "owner@example.com", "New message")
	err := c.Send(context.Background(), Submission{Name: "Ada", Email: "ada@example.com", Message: "hi"})
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if got.AccessKey != "test-key" || got.To != "owner@example.com" {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if got.FromName != "Ada" || got.Email != "ada@example.com" || got.Message != "hi" {
		t.Fatalf("submission fields not forwarded: %+v", got)
	}
}

func TestClient_Send_UpstreamRejects(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "invalid key"})
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL, "bad-key", "owner@example.com", "New message")
	if err := c.Send(context.Background(), Submission{Name: "Ada", Email: "a@b.c", Message: "hi"}); err == nil {
		t.Fatal("expected error when upstream reports success=false")
	}
}

func TestClient_Send_Upstream5xx(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL, "key", "owner@example.com", "New message")
	if err := c.Send(context.Background(), Submission{Name: "Ada", Email: "a@b.c", Message: "hi"}); err == nil {
		t.Fatal("expected error on upstream 5xx")
	}
}

func TestNoop_Send(t *testing.T) {
	n := &Noop{}
	if err := n.Send(context.Background(), Submission{Name: "Ada", Email: "a@b.c", Message: "hi"}); err != nil {
		t.Fatalf("noop send should always succeed, got %v", err)
	}
}
