package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/studiowebux/placemap/internal/places"
	"github.com/studiowebux/placemap/internal/types"
)

// Server is a local stand-in for the prompt-to-map backend. It answers
// POST /places the way the real service does, minus the LLM: the extracted
// query comes from a matching rule, or is the prompt itself.
type Server struct {
	config     *Config
	httpServer *http.Server
}

// NewServer creates a mock backend
func NewServer(config *Config) *Server {
	if config.Port == 0 {
		config.Port = 8080
	}
	if config.Host == "" {
		config.Host = "localhost"
	}

	return &Server{config: config}
}

// Addr returns the address the server listens on
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// Handler returns the route table, also used by tests to drive the server
// without binding a port
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(places.PlacesPath, s.handlePlaces)
	return mux
}

// Start runs the server until the context is cancelled
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:    s.Addr(),
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	log.Printf("mock backend listening on http://%s%s", s.Addr(), places.PlacesPath)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

func (s *Server) handlePlaces(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	if s.config.APIKey != "" && r.Header.Get(places.APIKeyHeader) != s.config.APIKey {
		writeJSON(w, http.StatusUnauthorized, types.PlacesResponse{Error: "invalid API key"})
		return
	}

	var req types.PlacesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, types.PlacesResponse{Error: "invalid JSON body"})
		return
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		writeJSON(w, http.StatusBadRequest, types.PlacesResponse{
			OriginalPrompt: req.Prompt,
			Error:          "empty prompt",
		})
		return
	}

	query := prompt
	for _, rule := range s.config.Rules {
		if rule.Match == "" || !strings.Contains(strings.ToLower(prompt), strings.ToLower(rule.Match)) {
			continue
		}

		if rule.Error != "" {
			status := rule.Status
			if status == 0 {
				status = http.StatusNotFound
			}
			writeJSON(w, status, types.PlacesResponse{
				OriginalPrompt: req.Prompt,
				Error:          rule.Error,
			})
			return
		}

		if rule.Query != "" {
			query = rule.Query
		}
		break
	}

	log.Printf("mock backend: %q -> %q", prompt, query)

	encoded := url.QueryEscape(query)
	writeJSON(w, http.StatusOK, types.PlacesResponse{
		OriginalPrompt:  req.Prompt,
		ExtractedQuery:  query,
		InteractiveLink: "https://www.google.com/maps/search/?api=1&query=" + encoded,
		EmbedIframeURL:  "https://www.google.com/maps/embed/v1/search?key=mock&q=" + encoded,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload types.PlacesResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("mock backend: failed to encode response: %v", err)
	}
}
