package stream

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	hands "github.com/lauenborg/p5.hands"
	"github.com/lauenborg/p5.hands/detect"
	"github.com/lauenborg/p5.hands/landmark"
	"github.com/lauenborg/p5.hands/record"
)

func newTestSession(t *testing.T, set landmark.HandSet) *hands.Session {
	t.Helper()
	cfg := hands.DefaultConfig()
	cfg.Smoothing = 0
	s := hands.New(cfg)
	s.UpdateHands(set)
	return s
}

func TestHealthEndpoint(t *testing.T) {
	srv := New(Config{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("got status %v, want ok", body["status"])
	}
}

func TestHealthEndpoint_MethodNotAllowed(t *testing.T) {
	srv := New(Config{})

	req := httptest.NewRequest(http.MethodPost, "/api/health", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("got status %d, want 405", w.Code)
	}
}

func TestHandsEndpoint(t *testing.T) {
	session := newTestSession(t, landmark.HandSet{
		detect.OpenHand(landmark.Right),
	})
	srv := New(Config{Session: session})

	req := httptest.NewRequest(http.MethodGet, "/api/hands", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}

	var body struct {
		Hands     []HandSnapshot `json:"hands"`
		Timestamp int64          `json:"timestamp"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(body.Hands) != 1 {
		t.Fatalf("got %d hands, want 1", len(body.Hands))
	}
	snap := body.Hands[0]
	if snap.Hand == nil || snap.Hand.Handedness != landmark.Right {
		t.Errorf("unexpected hand in snapshot: %+v", snap.Hand)
	}
	if !snap.Fingers["index"] {
		t.Error("open hand should report index finger up")
	}
	found := false
	for _, g := range snap.Gestures {
		if g == "open_hand" {
			found = true
		}
	}
	if !found {
		t.Errorf("open hand should report open_hand gesture, got %v", snap.Gestures)
	}
	if body.Timestamp == 0 {
		t.Error("snapshot should carry a timestamp")
	}
}

func TestHandsEndpoint_NoHands(t *testing.T) {
	session := newTestSession(t, nil)
	srv := New(Config{Session: session})

	req := httptest.NewRequest(http.MethodGet, "/api/hands", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}
	var body struct {
		Hands []HandSnapshot `json:"hands"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(body.Hands) != 0 {
		t.Errorf("got %d hands, want 0", len(body.Hands))
	}
}

func TestEventsEndpoint(t *testing.T) {
	store, err := record.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer store.Close()

	for _, gesture := range []string{"pinch", "grab"} {
		if err := store.Events().Insert(&record.Event{Gesture: gesture, Handedness: "Right"}); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	srv := New(Config{Store: store})

	req := httptest.NewRequest(http.MethodGet, "/api/events?limit=1", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}
	var body struct {
		Events []*record.Event `json:"events"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(body.Events) != 1 {
		t.Errorf("got %d events, want 1", len(body.Events))
	}
}

func TestEventsEndpoint_InvalidLimit(t *testing.T) {
	store, err := record.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer store.Close()

	srv := New(Config{Store: store})

	for _, limit := range []string{"abc", "0", "-5"} {
		req := httptest.NewRequest(http.MethodGet, "/api/events?limit="+limit, nil)
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("limit=%q: got status %d, want 400", limit, w.Code)
		}
	}
}

func TestRoutesDependOnConfig(t *testing.T) {
	srv := New(Config{})

	for _, path := range []string{"/api/hands", "/api/events"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s: got status %d, want 404 when not configured", path, w.Code)
		}
	}
}
