// Package stream serves live tracking state over HTTP: JSON snapshots,
// a WebSocket feed of per-frame hand data, an MJPEG camera stream with
// overlay, and the recorded gesture event log.
package stream

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	hands "github.com/lauenborg/p5.hands"
	"github.com/lauenborg/p5.hands/capture"
	"github.com/lauenborg/p5.hands/landmark"
	"github.com/lauenborg/p5.hands/record"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Session   *hands.Session
	Camera    capture.Camera
	Store     *record.Store
	Hub       *Hub
}

// Server exposes the tracking session over HTTP.
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

	if s.config.Session != nil {
		s.mux.HandleFunc("/api/hands", s.handleHands)
	}

	if s.config.Store != nil {
		s.mux.HandleFunc("/api/events", s.handleEvents)
	}

	if s.config.Camera != nil {
		s.mux.Handle("/api/stream", NewMJPEGHandler(s.config.Camera, s.config.Session))
	}

	if s.config.Hub != nil {
		s.mux.Handle("/api/live", s.config.Hub)
	}

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

	response := map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(s.start).String(),
	}

	writeJSON(w, response)
}

// HandSnapshot is the per-hand payload served by /api/hands and pushed to
// WebSocket clients: the smoothed hand plus its derived finger and gesture
// state.
type HandSnapshot struct {
	Hand     *landmark.Hand  `json:"hand"`
	Fingers  map[string]bool `json:"fingers"`
	Gestures []string        `json:"gestures"`
}

// Snapshot builds the current frame's snapshot from a session.
func Snapshot(session *hands.Session) []HandSnapshot {
	set := session.Hands()
	out := make([]HandSnapshot, 0, len(set))
	for _, h := range set {
		ref := hands.Of(h)
		fingers := make(map[string]bool, len(landmark.AllFingers))
		for f, up := range session.FingersUp(ref) {
			fingers[f.String()] = up
		}
		out = append(out, HandSnapshot{
			Hand:     h,
			Fingers:  fingers,
			Gestures: session.Gestures(ref),
		})
	}
	return out
}

// handleHands handles GET requests to /api/hands.
func (s *Server) handleHands(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, map[string]interface{}{
		"hands":     Snapshot(s.config.Session),
		"timestamp": time.Now().UnixMilli(),
	})
}

// handleEvents handles GET requests to /api/events.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	events, err := s.config.Store.Events().List(limit)
	if err != nil {
		http.Error(w, "Failed to list events", http.StatusInternalServerError)
		return
	}
	if events == nil {
		events = []*record.Event{}
	}

	writeJSON(w, map[string]interface{}{"events": events})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
