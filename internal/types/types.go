package types

// PlacesRequest is the JSON body sent to the backend
type PlacesRequest struct {
	Prompt string `json:"prompt"`
}

// PlacesResponse is the JSON payload returned by the backend for POST /places
type PlacesResponse struct {
	OriginalPrompt  string `json:"original_prompt"`
	ExtractedQuery  string `json:"llm_query_extracted"`
	InteractiveLink string `json:"map_interactive_link"`
	EmbedIframeURL  string `json:"map_embed_iframe_url"`
	Error           string `json:"error,omitempty"`
}

// MapView is the display model derived from a successful exchange
type MapView struct {
	Label         string `json:"label,omitempty" yaml:"label,omitempty"`
	EmbedURL      string `json:"embedUrl" yaml:"embedUrl"`
	DirectionsURL string `json:"directionsUrl" yaml:"directionsUrl"`
}

// Session represents ephemeral session state
type Session struct {
	ActiveProfile  string `json:"activeProfile,omitempty"`
	HistoryEnabled *bool  `json:"historyEnabled,omitempty"`
}

// Profile represents an environment-specific configuration
type Profile struct {
	Name           string            `json:"name"`
	BaseURL        string            `json:"baseUrl,omitempty"`
	APIKey         string            `json:"apiKey,omitempty"`
	Headers        map[string]string `json:"headers,omitempty"`
	TimeoutSeconds int               `json:"timeoutSeconds,omitempty"`
	Output         string            `json:"output,omitempty"` // json, yaml, text
	HistoryEnabled *bool             `json:"historyEnabled,omitempty"`
	MessageTimeout *int              `json:"messageTimeout,omitempty"` // seconds before footer messages clear
}

// HistoryEntry represents a saved prompt/result pair
type HistoryEntry struct {
	ID            int64  `json:"id,omitempty"`
	Timestamp     string `json:"timestamp"`
	Prompt        string `json:"prompt"`
	Label         string `json:"label,omitempty"`
	EmbedURL      string `json:"embedUrl,omitempty"`
	DirectionsURL string `json:"directionsUrl,omitempty"`
	Status        int    `json:"status"`
	Duration      int64  `json:"duration"` // milliseconds
	Error         string `json:"error,omitempty"`
}
