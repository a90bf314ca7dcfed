package mock

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/studiowebux/placemap/internal/places"
	"github.com/studiowebux/placemap/internal/types"
)

// newTestClient drives the mock handler through httptest instead of
// binding a real port
func newTestClient(t *testing.T, config *Config) (*places.Client, func()) {
	t.Helper()
	srv := httptest.NewServer(NewServer(config).Handler())
	client := places.NewClient(&types.Profile{
		Name:    "mock",
		BaseURL: srv.URL,
		APIKey:  config.APIKey,
	})
	return client, srv.Close
}

func TestHandlePlaces_EchoesPromptByDefault(t *testing.T) {
	client, done := newTestClient(t, &Config{})
	defer done()

	ex, err := client.Lookup(context.Background(), "sushi near the louvre")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ex.OK {
		t.Fatalf("got status %d", ex.Status)
	}
	if ex.Payload.ExtractedQuery != "sushi near the louvre" {
		t.Errorf("got query %q", ex.Payload.ExtractedQuery)
	}
	if ex.Payload.InteractiveLink == "" || ex.Payload.EmbedIframeURL == "" {
		t.Error("map links missing")
	}
}

func TestHandlePlaces_RuleOverridesQuery(t *testing.T) {
	client, done := newTestClient(t, &Config{
		Rules: []Rule{{Match: "eiffel", Query: "Eiffel Tower Paris"}},
	})
	defer done()

	ex, err := client.Lookup(context.Background(), "where is the EIFFEL tower")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ex.Payload.ExtractedQuery != "Eiffel Tower Paris" {
		t.Errorf("got query %q", ex.Payload.ExtractedQuery)
	}
}

func TestHandlePlaces_ErrorRule(t *testing.T) {
	client, done := newTestClient(t, &Config{
		Rules: []Rule{{Match: "atlantis", Error: "no match found"}},
	})
	defer done()

	ex, err := client.Lookup(context.Background(), "show me atlantis")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ex.OK {
		t.Error("expected failure status")
	}
	if ex.Payload.Error != "no match found" {
		t.Errorf("got error %q", ex.Payload.Error)
	}
}

func TestHandlePlaces_APIKeyRequired(t *testing.T) {
	srv := httptest.NewServer(NewServer(&Config{APIKey: "secret"}).Handler())
	defer srv.Close()

	client := places.NewClient(&types.Profile{BaseURL: srv.URL, APIKey: "wrong"})
	ex, err := client.Lookup(context.Background(), "anywhere")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ex.Status != 401 {
		t.Errorf("got status %d, want 401", ex.Status)
	}
}

func TestHandlePlaces_EmptyPrompt(t *testing.T) {
	client, done := newTestClient(t, &Config{})
	defer done()

	ex, err := client.Lookup(context.Background(), "   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ex.OK {
		t.Error("expected failure for empty prompt")
	}
	if ex.Payload.Error != "empty prompt" {
		t.Errorf("got error %q", ex.Payload.Error)
	}
}
