package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"vfxfolio/internal/mailer"
)

type fakeMailer struct {
	sent []mailer.Submission
	err  error
}

func (f *fakeMailer) Send(_ context.Context, sub mailer.Submission) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sub)
	return nil
}

func TestContactSubmit_ForwardsToMailer(t *testing.T) {
	m := &fakeMailer{}
	h := NewContactHandler(m, nil, slog.Default(), 0)

	c, w := newJSONContext(t, http.MethodPost, "/api/contact", map[string]string{
		"name":    "Ada",
		"email":   "ada@example.com",
		"message": "Love the pyro reel.",
	})
	h.Submit(c)
	requireStatus(t, w, http.StatusOK)

	var got map[string]string
	decodeBody(t, w, &got)
	if got["message"] != "Message sent successfully!" {
		t.Fatalf("unexpected body: %+v", got)
	}
	if len(m.sent) != 1 || m.sent[0].Email != "ada@example.com" {
		t.Fatalf("expected one forwarded submission, got %+v", m.sent)
	}
}

func TestContactSubmit_MissingFieldsRejected(t *testing.T) {
	m := &fakeMailer{}
	h := NewContactHandler(m, nil, slog.Default(), 0)

	c, w := newJSONContext(t, http.MethodPost, "/api/contact", map[string]string{
		"name": "Ada",
	})
	h.Submit(c)
	requireStatus(t, w, http.StatusBadRequest)

	if len(m.sent) != 0 {
		t.Fatalf("rejected submission must not reach the mailer: %+v", m.sent)
	}
}

func TestContactSubmit_InvalidEmailRejected(t *testing.T) {
	h := NewContactHandler(&fakeMailer{}, nil, slog.Default(), 0)

	c, w := newJSONContext(t, http.MethodPost, "/api/contact", map[string]string{
		"name":    "Ada",
		"email":   "not-an-email",
		"message": "hi",
	})
	h.Submit(c)
	requireStatus(t, w, http.StatusBadRequest)
}

func TestContactSubmit_UpstreamFailureIsGeneric500(t *testing.T) {
	m := &fakeMailer{err: errors.New("relay rejected message: invalid access key")}
	h := NewContactHandler(m, nil, slog.Default(), 0)

	c, w := newJSONContext(t, http.MethodPost, "/api/contact", map[string]string{
		"name":    "Ada",
		"email":   "ada@example.com",
		"message": "hi",
	})
	h.Submit(c)
	requireStatus(t, w, http.StatusInternalServerError)

	if body := w.Body.String(); body == "" || body[0] != '{' {
		t.Fatalf("expected json error body, got %s", body)
	}
	if got := w.Body.String(); got != `{"error":"failed to send message, please try again later"}` {
		t.Fatalf("upstream details must not leak to visitors, got %s", got)
	}
}
