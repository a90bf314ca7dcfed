/*
Package search coordinates the query submission lifecycle.

# Overview

The search package is the heart of placemap: it owns the state machine
that every submitted query runs through.

	Idle → Pending → Success | Failed
	Success/Failed → Pending on the next submission

No path leaves the machine stuck in Pending, and Pending never exits
except to Success or Failed.

# Components

Buffer:
  - Holds the raw query text, replaced on every keystroke
  - Read (never mutated) by the orchestrator at trigger time

Orchestrator:
  - Start() validates the trimmed query and moves to Pending
  - Finish() performs the exchange and applies the mapped outcome
  - Submit() composes both for synchronous callers

# Fencing

Submissions can overlap: the exchange is the only suspension point and
nothing cancels an issued request. Each Start() therefore bumps a sequence
number, and Finish() applies its result only when its ticket still matches.
A stale exchange that resolves late is discarded silently, so displayed
state always belongs to the most recently issued submission.

# Error Classes

  - Empty/whitespace query: rejected locally, never reaches the network
  - Backend-reported failure: the backend's message, or a fixed fallback
  - Transport failure: a fixed generic message

All three land in PhaseFailed with a display string; the distinction only
selects the message. No failure is retried and none is fatal; the machine
accepts the next submission regardless.
*/
package search
