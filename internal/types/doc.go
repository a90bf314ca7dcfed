/*
Package types defines core data structures shared across placemap.

# Overview

The types package provides shared type definitions for:
  - The /places wire protocol (PlacesRequest, PlacesResponse)
  - The display model rendered after a successful exchange (MapView)
  - Configuration (Session, Profile)
  - History persistence (HistoryEntry)

# Wire Types

PlacesRequest:
  - JSON body for POST /places
  - Carries the raw user prompt, nothing else

PlacesResponse:
  - Backend payload: original prompt, the query the LLM extracted,
    an interactive map link and an embeddable map URL
  - The optional `error` field is set when the backend reports a failure,
    but consumers must tolerate its absence

# Display Model

MapView is derived deterministically from a successful PlacesResponse.
URL well-formedness is NOT validated here; a malformed URL simply renders
as a broken link downstream.

# Configuration

Profile:
  - Backend base URL and API key (injected, never hardcoded)
  - Request timeout, output format, history toggle

Session:
  - Active profile name and the global history toggle

# Field Tags

All serialized types use JSON tags (and YAML tags where the CLI output
formats need them). The `omitempty` tag keeps persisted data clean.
*/
package types
