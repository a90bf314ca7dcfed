package cli

import (
	"strings"
	"testing"

	"github.com/studiowebux/placemap/internal/search"
	"github.com/studiowebux/placemap/internal/types"
)

func sampleState() search.State {
	return search.State{
		Phase: search.PhaseSuccess,
		View: &types.MapView{
			Label:         "Eiffel Tower",
			EmbedURL:      "https://maps/embed?x",
			DirectionsURL: "https://maps/dir?x",
		},
		Duration: 1234,
	}
}

func TestFormatView_Text(t *testing.T) {
	out, err := FormatView(sampleState(), "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Eiffel Tower", "https://maps/dir?x", "https://maps/embed?x", "1.23s"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatView_JSON(t *testing.T) {
	out, err := FormatView(sampleState(), "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"directionsUrl": "https://maps/dir?x"`) {
		t.Errorf("unexpected json output:\n%s", out)
	}
}

func TestFormatView_YAML(t *testing.T) {
	out, err := FormatView(sampleState(), "yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "label: Eiffel Tower") {
		t.Errorf("unexpected yaml output:\n%s", out)
	}
}

func TestFormatView_UnknownFormat(t *testing.T) {
	if _, err := FormatView(sampleState(), "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestFormatView_NoView(t *testing.T) {
	if _, err := FormatView(search.State{Phase: search.PhaseFailed}, "text"); err == nil {
		t.Error("expected error when state has no view")
	}
}

func TestResolveFormat(t *testing.T) {
	profile := &types.Profile{Output: "yaml"}

	if got := resolveFormat("json", profile); got != "json" {
		t.Errorf("flag should win, got %q", got)
	}
	if got := resolveFormat("", profile); got != "yaml" {
		t.Errorf("profile should win over default, got %q", got)
	}
	if got := resolveFormat("", &types.Profile{}); got != "text" {
		t.Errorf("default should be text, got %q", got)
	}
}
