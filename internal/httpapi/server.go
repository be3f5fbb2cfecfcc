// ABOUTME: HTTP transport for the chef pipeline built on chi
// ABOUTME: JSON chat endpoint, SSE streaming, health, and persona status
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/harper/chef-pipeline/internal/core"
	"github.com/harper/chef-pipeline/internal/models"
)

// Server exposes the orchestrator over HTTP
type Server struct {
	orchestrator *core.Orchestrator
	logger       *zap.Logger
	httpServer   *http.Server
}

// NewServer builds the HTTP server and its routes
func NewServer(orchestrator *core.Orchestrator, logger *zap.Logger, addr string) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		orchestrator: orchestrator,
		logger:       logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", s.handleChat)
		r.Get("/chat/stream", s.handleChatStream)
		r.Get("/health", s.handleHealth)
		r.Get("/persona/status", s.handlePersonaStatus)
	})

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute, // streams outlive normal requests
	}
	return s
}

// Handler returns the route tree for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// ListenAndServe blocks until the server stops
func (s *Server) ListenAndServe() error {
	s.logger.Info("http server listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.SessionID == "" {
		writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	envelope := s.orchestrator.Process(r.Context(), req.SessionID, req.Message)
	writeJSON(w, http.StatusOK, envelope)
}

// sseSink forwards pipeline chunks to the client as server-sent events
type sseSink struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

type sseChunk struct {
	Attempt int    `json:"attempt"`
	Text    string `json:"text"`
}

type sseDiscard struct {
	Attempt int `json:"attempt"`
}

func (s *sseSink) Chunk(attempt int, text string) {
	s.emit("chunk", sseChunk{Attempt: attempt, Text: text})
}

func (s *sseSink) DiscardAttempt(attempt int) {
	s.emit("discard", sseDiscard{Attempt: attempt})
}

func (s *sseSink) emit(event string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, data)
	s.flusher.Flush()
}

func (s *Server) handleChatStream(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	message := r.URL.Query().Get("message")
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	sink := &sseSink{w: w, flusher: flusher}
	envelope := s.orchestrator.ProcessStream(r.Context(), sessionID, message, sink)

	// The terminal envelope always closes the stream
	sink.emit("envelope", envelope)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePersonaStatus(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	sess, err := s.orchestrator.SessionSnapshot(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	if sess == nil {
		sess = models.NewSession(sessionID)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session_id": sessionID,
		"mood":       sess.Persona.CurrentMood,
		"turn_count": len(sess.Turns),
		"persona":    sess.Persona,
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)))
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
