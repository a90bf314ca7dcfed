package places

import (
	"testing"

	"github.com/studiowebux/placemap/internal/types"
)

func TestMapResponse_Success(t *testing.T) {
	payload := &types.PlacesResponse{
		OriginalPrompt:  "where is the eiffel tower",
		ExtractedQuery:  "Eiffel Tower",
		InteractiveLink: "https://maps/dir?x",
		EmbedIframeURL:  "https://maps/embed?x",
	}

	view, err := MapResponse(payload, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := types.MapView{
		Label:         "Eiffel Tower",
		EmbedURL:      "https://maps/embed?x",
		DirectionsURL: "https://maps/dir?x",
	}
	if *view != want {
		t.Errorf("got %+v, want %+v", *view, want)
	}
}

func TestMapResponse_PassesThroughMalformedURLs(t *testing.T) {
	// URL validation is explicitly not a mapper concern
	payload := &types.PlacesResponse{
		ExtractedQuery: "somewhere",
		EmbedIframeURL: "::not a url::",
	}

	view, err := MapResponse(payload, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.EmbedURL != "::not a url::" {
		t.Errorf("embed URL was altered: %q", view.EmbedURL)
	}
}

func TestMapResponse_BackendError(t *testing.T) {
	tests := []struct {
		name    string
		payload *types.PlacesResponse
		wantMsg string
	}{
		{
			name:    "backend-provided message",
			payload: &types.PlacesResponse{Error: "no match found"},
			wantMsg: "no match found",
		},
		{
			name:    "empty error field falls back",
			payload: &types.PlacesResponse{},
			wantMsg: MsgBackendFailed,
		},
		{
			name:    "nil payload falls back",
			payload: nil,
			wantMsg: MsgBackendFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := MapResponse(tt.payload, false)
			if view != nil {
				t.Errorf("expected nil view, got %+v", view)
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("got message %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestMapResponse_Deterministic(t *testing.T) {
	payload := &types.PlacesResponse{
		ExtractedQuery:  "Louvre",
		InteractiveLink: "https://maps/dir?l",
		EmbedIframeURL:  "https://maps/embed?l",
	}

	first, err1 := MapResponse(payload, true)
	second, err2 := MapResponse(payload, true)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if *first != *second {
		t.Errorf("mapper not deterministic: %+v vs %+v", *first, *second)
	}
}
