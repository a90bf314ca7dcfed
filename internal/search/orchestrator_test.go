package search

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/studiowebux/placemap/internal/places"
	"github.com/studiowebux/placemap/internal/types"
)

// fakeBackend records Lookup calls and replays canned exchanges
type fakeBackend struct {
	calls     int
	exchanges []*places.Exchange
	err       error
}

func (f *fakeBackend) Lookup(ctx context.Context, prompt string) (*places.Exchange, error) {
	idx := f.calls
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if idx >= len(f.exchanges) {
		idx = len(f.exchanges) - 1
	}
	return f.exchanges[idx], nil
}

func successExchange(query, embed, dir string) *places.Exchange {
	return &places.Exchange{
		Payload: &types.PlacesResponse{
			ExtractedQuery:  query,
			EmbedIframeURL:  embed,
			InteractiveLink: dir,
		},
		Status:   http.StatusOK,
		OK:       true,
		Duration: 12,
	}
}

func newTestOrchestrator(backend Backend, query string) (*Orchestrator, *Buffer) {
	buf := NewBuffer()
	buf.Set(query)
	return New(backend, buf), buf
}

func TestSubmit_EmptyQueryNeverReachesNetwork(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"tabs and newlines", "\t\n  \t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeBackend{}
			orch, _ := newTestOrchestrator(backend, tt.query)

			state := orch.Submit(context.Background())

			if backend.calls != 0 {
				t.Errorf("network exchange performed for empty query (%d calls)", backend.calls)
			}
			if state.Phase != PhaseFailed {
				t.Errorf("got phase %s, want failed", state.Phase)
			}
			if state.Message != places.MsgEmptyQuery {
				t.Errorf("got message %q, want %q", state.Message, places.MsgEmptyQuery)
			}
		})
	}
}

func TestSubmit_Success(t *testing.T) {
	backend := &fakeBackend{
		exchanges: []*places.Exchange{successExchange("Eiffel Tower", "https://maps/embed?x", "https://maps/dir?x")},
	}
	orch, _ := newTestOrchestrator(backend, "where is the eiffel tower")

	state := orch.Submit(context.Background())

	if state.Phase != PhaseSuccess {
		t.Fatalf("got phase %s, want success", state.Phase)
	}
	want := types.MapView{
		Label:         "Eiffel Tower",
		EmbedURL:      "https://maps/embed?x",
		DirectionsURL: "https://maps/dir?x",
	}
	if *state.View != want {
		t.Errorf("got view %+v, want %+v", *state.View, want)
	}
	if state.Message != "" {
		t.Errorf("success state carries a message: %q", state.Message)
	}
}

func TestSubmit_BackendReportedError(t *testing.T) {
	backend := &fakeBackend{
		exchanges: []*places.Exchange{{
			Payload: &types.PlacesResponse{Error: "no match found"},
			Status:  http.StatusNotFound,
			OK:      false,
		}},
	}
	orch, _ := newTestOrchestrator(backend, "gibberish")

	state := orch.Submit(context.Background())

	if state.Phase != PhaseFailed {
		t.Fatalf("got phase %s, want failed", state.Phase)
	}
	if state.Message != "no match found" {
		t.Errorf("got message %q, want backend-provided message", state.Message)
	}
	if state.View != nil {
		t.Errorf("failed state carries a view: %+v", state.View)
	}
}

func TestSubmit_BackendErrorWithoutMessage(t *testing.T) {
	backend := &fakeBackend{
		exchanges: []*places.Exchange{{
			Payload: &types.PlacesResponse{},
			Status:  http.StatusBadGateway,
			OK:      false,
		}},
	}
	orch, _ := newTestOrchestrator(backend, "anywhere")

	state := orch.Submit(context.Background())

	if state.Message != places.MsgBackendFailed {
		t.Errorf("got message %q, want %q", state.Message, places.MsgBackendFailed)
	}
}

func TestSubmit_TransportError(t *testing.T) {
	backend := &fakeBackend{err: errors.New("dial tcp: connection refused")}
	orch, _ := newTestOrchestrator(backend, "anywhere")

	state := orch.Submit(context.Background())

	if state.Phase != PhaseFailed {
		t.Fatalf("got phase %s, want failed", state.Phase)
	}
	if state.Message != places.MsgBackendUnreachable {
		t.Errorf("got message %q, want %q", state.Message, places.MsgBackendUnreachable)
	}
}

func TestSubmit_SequentialIdempotence(t *testing.T) {
	backend := &fakeBackend{
		exchanges: []*places.Exchange{successExchange("Eiffel Tower", "https://maps/embed?x", "https://maps/dir?x")},
	}
	orch, _ := newTestOrchestrator(backend, "eiffel tower")

	first := orch.Submit(context.Background())
	second := orch.Submit(context.Background())

	if *first.View != *second.View {
		t.Errorf("same query, same response, different views: %+v vs %+v", *first.View, *second.View)
	}
	if backend.calls != 2 {
		t.Errorf("expected two exchanges, got %d", backend.calls)
	}
}

func TestState_ReplacedWholesale(t *testing.T) {
	backend := &fakeBackend{
		exchanges: []*places.Exchange{
			successExchange("Eiffel Tower", "https://maps/embed?x", "https://maps/dir?x"),
			{Payload: &types.PlacesResponse{Error: "no match found"}, Status: http.StatusNotFound, OK: false},
		},
	}
	orch, buf := newTestOrchestrator(backend, "eiffel tower")

	orch.Submit(context.Background())
	buf.Set("gibberish")
	state := orch.Submit(context.Background())

	// Prior Success data must be gone, not merged
	if state.View != nil {
		t.Errorf("stale view survived the next submission: %+v", state.View)
	}
	if state.Message != "no match found" {
		t.Errorf("got message %q", state.Message)
	}
}

func TestStart_MovesToPending(t *testing.T) {
	backend := &fakeBackend{exchanges: []*places.Exchange{successExchange("a", "b", "c")}}
	orch, _ := newTestOrchestrator(backend, "somewhere")

	ticket, ok := orch.Start()
	if !ok {
		t.Fatal("expected a ticket for a non-empty query")
	}
	if got := orch.State().Phase; got != PhasePending {
		t.Errorf("got phase %s, want pending", got)
	}
	if ticket.Prompt() != "somewhere" {
		t.Errorf("ticket prompt %q", ticket.Prompt())
	}

	state := orch.Finish(context.Background(), ticket)
	if state.Phase != PhaseSuccess {
		t.Errorf("got phase %s, want success", state.Phase)
	}
}

func TestFinish_DiscardsStaleTicket(t *testing.T) {
	backend := &fakeBackend{
		exchanges: []*places.Exchange{
			successExchange("SECOND", "https://maps/embed?2", "https://maps/dir?2"),
			successExchange("FIRST", "https://maps/embed?1", "https://maps/dir?1"),
		},
	}
	orch, buf := newTestOrchestrator(backend, "second query")

	stale, ok := orch.Start()
	if !ok {
		t.Fatal("expected ticket")
	}
	buf.Set("first query")
	latest, ok := orch.Start()
	if !ok {
		t.Fatal("expected ticket")
	}

	// The newer submission resolves first
	winner := orch.Finish(context.Background(), latest)
	if winner.View.Label != "SECOND" {
		t.Fatalf("got label %q", winner.View.Label)
	}

	// The stale exchange resolves last but must not overwrite display state
	after := orch.Finish(context.Background(), stale)
	if after.View.Label != "SECOND" {
		t.Errorf("stale result overwrote state: got %q", after.View.Label)
	}
	if got := orch.State().View.Label; got != "SECOND" {
		t.Errorf("orchestrator state clobbered by stale result: %q", got)
	}
}

func TestFinish_StaleTicketCannotOverwriteValidationFailure(t *testing.T) {
	backend := &fakeBackend{
		exchanges: []*places.Exchange{successExchange("STALE", "https://maps/embed?s", "https://maps/dir?s")},
	}
	orch, buf := newTestOrchestrator(backend, "eiffel tower")

	stale, ok := orch.Start()
	if !ok {
		t.Fatal("expected ticket")
	}

	// A newer submission fails validation before the exchange resolves
	buf.Set("   ")
	if _, ok := orch.Start(); ok {
		t.Fatal("expected no ticket for a whitespace query")
	}

	after := orch.Finish(context.Background(), stale)
	if after.Phase != PhaseFailed {
		t.Fatalf("got phase %s, want failed", after.Phase)
	}
	if after.Message != places.MsgEmptyQuery {
		t.Errorf("stale exchange overwrote the newer failure: got %q", after.Message)
	}
	if got := orch.State(); got.View != nil || got.Message != places.MsgEmptyQuery {
		t.Errorf("orchestrator state clobbered by stale result: %+v", got)
	}
}

func TestReset_ReturnsToIdle(t *testing.T) {
	backend := &fakeBackend{exchanges: []*places.Exchange{successExchange("a", "b", "c")}}
	orch, _ := newTestOrchestrator(backend, "somewhere")

	orch.Submit(context.Background())
	orch.Reset()

	state := orch.State()
	if state.Phase != PhaseIdle {
		t.Errorf("got phase %s, want idle", state.Phase)
	}
	if state.View != nil || state.Message != "" {
		t.Errorf("idle state not empty: %+v", state)
	}
}

func TestBuffer_SetGet(t *testing.T) {
	buf := NewBuffer()
	if got := buf.Get(); got != "" {
		t.Errorf("new buffer not empty: %q", got)
	}

	buf.Set("eiffel")
	buf.Set("eiffel tower")
	if got := buf.Get(); got != "eiffel tower" {
		t.Errorf("got %q", got)
	}

	// Whitespace-only is stored, not rejected
	buf.Set("   ")
	if got := buf.Get(); got != "   " {
		t.Errorf("whitespace was not preserved: %q", got)
	}
}
