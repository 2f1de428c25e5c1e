// Package server provides the HTTP control surface for MouseControl.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ricmed/mouse-control/internal/app"
	"github.com/ricmed/mouse-control/internal/capture"
	"github.com/ricmed/mouse-control/internal/server/api"
	"github.com/ricmed/mouse-control/internal/store"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Store     *store.Store
	App       *app.App
	Camera    capture.Camera
}

// Server represents the HTTP server for the MouseControl application.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.config.App != nil {
		configHandler := api.NewConfigHandler(s.config.App)
		s.mux.Handle("/api/config", configHandler)
		s.mux.Handle("/api/tracking", configHandler)
		s.mux.Handle("/api/calibrate", configHandler)
		s.mux.Handle("/api/status", configHandler)

		// Live status feed over WebSocket
		s.mux.Handle("/api/ws", NewStatusFeed(s.config.App))
	}

	// Register profile API handlers if Store is configured
	if s.config.Store != nil {
		profileHandler := api.NewProfileHandler(s.config.Store, s.config.App)
		s.mux.Handle("/api/profiles", profileHandler)
		s.mux.Handle("/api/profiles/", profileHandler)
	}

	// Register camera preview endpoint if Camera is configured
	if s.config.Camera != nil {
		streamHandler := NewStreamHandler(s.config.Camera)
		s.mux.Handle("/api/stream", streamHandler)
	}

	// Serve static files if StaticDir is configured
	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
