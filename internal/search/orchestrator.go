package search

import (
	"context"
	"strings"
	"sync"

	"github.com/studiowebux/placemap/internal/places"
	"github.com/studiowebux/placemap/internal/types"
)

// Phase discriminates the request lifecycle state
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePending
	PhaseSuccess
	PhaseFailed
)

// String returns the lowercase phase name
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePending:
		return "pending"
	case PhaseSuccess:
		return "success"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is the tagged lifecycle variant. Exactly one shape is active at a
// time: View is non-nil only in PhaseSuccess, Message is non-empty only in
// PhaseFailed. The remaining fields describe the exchange that produced the
// state (zero values when no exchange happened) and feed history recording.
type State struct {
	Phase   Phase
	View    *types.MapView
	Message string

	Prompt   string // trimmed query that produced this state
	Status   int    // HTTP status of the exchange, 0 when none happened
	Duration int64  // exchange duration in milliseconds
	Raw      string // raw response body, for inspection and filtering
}

// Backend abstracts the places client for the orchestrator
type Backend interface {
	Lookup(ctx context.Context, prompt string) (*places.Exchange, error)
}

// Ticket identifies one submission attempt. Only the most recently issued
// ticket may apply its result.
type Ticket struct {
	seq    uint64
	prompt string
}

// Prompt returns the trimmed query captured when the ticket was issued
func (t Ticket) Prompt() string {
	return t.prompt
}

// Orchestrator owns the request lifecycle. It is the only component that
// mutates State; presentation code only reads it.
//
// Each submission replaces the state wholesale: old Success/Failed data is
// discarded, never merged. Overlapping submissions are fenced: a result is
// applied only if its ticket is still the latest issued one, so a slow stale
// exchange can never overwrite a newer result.
type Orchestrator struct {
	mu      sync.Mutex
	backend Backend
	buffer  *Buffer
	seq     uint64
	state   State
}

// New creates an orchestrator in the Idle state
func New(backend Backend, buffer *Buffer) *Orchestrator {
	return &Orchestrator{
		backend: backend,
		buffer:  buffer,
		state:   State{Phase: PhaseIdle},
	}
}

// State returns the current lifecycle state
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Reset clears the state back to Idle without touching the query buffer
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = State{Phase: PhaseIdle}
}

// Start reads and trims the buffered query. An empty query moves straight to
// Failed with MsgEmptyQuery and issues no ticket, so no network exchange
// will happen. Otherwise the state becomes Pending (prior Success/Failed data is
// dropped) and the returned ticket must be passed to Finish.
func (o *Orchestrator) Start() (Ticket, bool) {
	prompt := strings.TrimSpace(o.buffer.Get())

	o.mu.Lock()
	defer o.mu.Unlock()

	if prompt == "" {
		// Bump the sequence even though no ticket is issued, so an
		// exchange still outstanding from an earlier submission cannot
		// overwrite this newer failure.
		o.seq++
		o.state = State{Phase: PhaseFailed, Message: places.MsgEmptyQuery}
		return Ticket{}, false
	}

	o.seq++
	o.state = State{Phase: PhasePending, Prompt: prompt}
	return Ticket{seq: o.seq, prompt: prompt}, true
}

// Finish performs the exchange for a ticket and applies the outcome. If a
// newer submission started since, the result is discarded and the current
// state returned unchanged. Every path ends in a terminal non-Pending state
// for the winning ticket.
func (o *Orchestrator) Finish(ctx context.Context, t Ticket) State {
	next := State{Prompt: t.prompt}

	ex, err := o.backend.Lookup(ctx, t.prompt)
	if err != nil {
		// Transport failure: network error, timeout, or non-JSON body
		next.Phase = PhaseFailed
		next.Message = places.MsgBackendUnreachable
	} else {
		next.Status = ex.Status
		next.Duration = ex.Duration
		next.Raw = ex.Raw
		view, mapErr := places.MapResponse(ex.Payload, ex.OK)
		if mapErr != nil {
			next.Phase = PhaseFailed
			next.Message = mapErr.Error()
		} else {
			next.Phase = PhaseSuccess
			next.View = view
		}
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if t.seq != o.seq {
		// A newer submission owns the state now
		return o.state
	}

	o.state = next
	return next
}

// Submit runs one full cycle synchronously: validate, Pending, exchange,
// terminal state. Used by the one-shot CLI mode and by history replay.
func (o *Orchestrator) Submit(ctx context.Context) State {
	t, ok := o.Start()
	if !ok {
		return o.State()
	}
	return o.Finish(ctx, t)
}
