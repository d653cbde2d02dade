package proxy

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/jvkuechen/secguard/internal/llm"
)

// Server is a stateless pass-through in front of the chat completions
// API. It pins the model parameters and holds the API key so browsers
// never see it.
type Server struct {
	cfg  Config
	http *http.Client
}

// NewServer creates a proxy Server for the given config.
func NewServer(cfg Config) *Server {
	return &Server{
		cfg:  cfg,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// Router builds the HTTP routes: POST /chat and a health check.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(s.corsMiddleware)

	r.HandleFunc("/chat", s.handleChat).Methods("POST", "OPTIONS")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}

// chatRequest is what the widget sends. Model and limits are optional;
// the proxy pins defaults so clients cannot run up the bill.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []llm.Message `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get("Origin")
	if !s.cfg.OriginAllowed(origin) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Messages) == 0 {
		writeJSONError(w, http.StatusBadRequest, "Invalid request: messages array required")
		return
	}

	if req.Model == "" {
		req.Model = s.cfg.DefaultModel
	}
	if req.MaxTokens <= 0 || req.MaxTokens > s.cfg.MaxTokens {
		req.MaxTokens = s.cfg.MaxTokens
	}
	if req.Temperature <= 0 {
		req.Temperature = 0.7
	}

	body, err := json.Marshal(req)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	upstream, err := http.NewRequestWithContext(r.Context(), http.MethodPost, s.cfg.UpstreamURL, bytes.NewReader(body))
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	upstream.Header.Set("Content-Type", "application/json")
	upstream.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.http.Do(upstream)
	if err != nil {
		log.Printf("upstream error: %v", err)
		writeJSONError(w, http.StatusBadGateway, "API request failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Printf("upstream status %d: %s", resp.StatusCode, errBody)
		writeJSONError(w, resp.StatusCode, "API request failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("writing response: %v", err)
	}
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if s.cfg.OriginAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else if len(s.cfg.AllowedOrigins) > 0 {
			w.Header().Set("Access-Control-Allow-Origin", s.cfg.AllowedOrigins[0])
		}
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
