package places

import (
	"errors"

	"github.com/studiowebux/placemap/internal/types"
)

// User-facing messages for the three failure classes. These strings are part
// of the UI contract; tests assert them verbatim.
const (
	// MsgEmptyQuery is shown when the trimmed query is empty (no exchange happens)
	MsgEmptyQuery = "Please enter a place or address to search."

	// MsgBackendFailed is the fallback when the backend reports a failure
	// without a usable error message
	MsgBackendFailed = "Failed to fetch map data. Please try again."

	// MsgBackendUnreachable is shown for transport-level failures: network
	// errors, timeouts, or a response body that is not valid JSON
	MsgBackendUnreachable = "An error occurred while connecting to the map service. Please ensure the backend is running and try again."
)

// MapResponse transforms a backend payload into the display model.
// Pure function: no I/O, no mutation, deterministic on its inputs.
//
// With httpOK true the payload fields are passed through as-is; URL
// well-formedness is not validated here. With httpOK false the returned
// error carries the backend-provided message when present, else the fixed
// fallback. A nil payload is tolerated and treated as message-less.
func MapResponse(payload *types.PlacesResponse, httpOK bool) (*types.MapView, error) {
	if !httpOK {
		if payload != nil && payload.Error != "" {
			return nil, errors.New(payload.Error)
		}
		return nil, errors.New(MsgBackendFailed)
	}

	if payload == nil {
		return nil, errors.New(MsgBackendFailed)
	}

	return &types.MapView{
		Label:         payload.ExtractedQuery,
		EmbedURL:      payload.EmbedIframeURL,
		DirectionsURL: payload.InteractiveLink,
	}, nil
}
