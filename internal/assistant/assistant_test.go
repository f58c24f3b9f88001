package assistant

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestReply_KeywordGroups(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"contact keyword", "how do I contact you?", "contact@julesrukundo.com"},
		{"email keyword", "what is your EMAIL", "contact@julesrukundo.com"},
		{"houdini keyword", "do you know houdini?", "expert in Houdini"},
		{"houdini case-insensitive with noise", "blah HOUDINI blah unrelated words", "expert in Houdini"},
		{"software keyword", "which software do you use", "expert in Houdini"},
		{"project keyword", "show me a project", "Featured Works"},
		{"work keyword", "recent work please", "Featured Works"},
		{"fallback", "tell me a joke", "portfolio assistant"},
		{"empty input falls back", "", "portfolio assistant"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Reply(tc.input)
			if !strings.Contains(got, tc.want) {
				t.Fatalf("Reply(%q) = %q, want it to contain %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestReply_FirstMatchingGroupWins(t *testing.T) {
	// contact 组先于 houdini 组声明，同时命中时应返回联系方式回复。
	got := Reply("email me about houdini")
	if !strings.Contains(got, "contact@julesrukundo.com") {
		t.Fatalf("expected contact reply, got %q", got)
	}
}

func TestResponder_CancelledContext(t *testing.T) {
	r := NewResponder(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.Respond(ctx, "hello"); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestResponder_ZeroDelay(t *testing.T) {
	r := NewResponder(0)
	got, err := r.Respond(context.Background(), "houdini")
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if !strings.Contains(got, "Houdini") {
		t.Fatalf("unexpected reply %q", got)
	}
}
