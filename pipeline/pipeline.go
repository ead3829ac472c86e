// Package pipeline runs the tracking loop: it reads frames from a camera,
// feeds them to a hand detector, updates the session once per detection,
// and emits an event whenever a gesture newly appears on a hand.
package pipeline

import (
	"log"
	"sync"
	"time"

	"gocv.io/x/gocv"

	hands "github.com/lauenborg/p5.hands"
	"github.com/lauenborg/p5.hands/capture"
	"github.com/lauenborg/p5.hands/detect"
	"github.com/lauenborg/p5.hands/landmark"
	"github.com/lauenborg/p5.hands/record"
	"github.com/lauenborg/p5.hands/stream"
)

// DefaultFPS is the detection rate when none is configured.
const DefaultFPS = 15

// Event marks a gesture newly appearing on a hand.
type Event struct {
	Gesture    string
	Handedness landmark.Handedness
	X          float64
	Y          float64
	Time       time.Time
}

// Config holds the pipeline configuration.
type Config struct {
	Camera   capture.Camera
	Detector detect.Detector
	Session  *hands.Session

	// FPS is the detection rate (default 15). Rendering and queries are
	// paced by the consumer, not by this loop.
	FPS int

	// Store, when set, persists every emitted event.
	Store *record.Store

	// Hub, when set, receives a snapshot broadcast after every detection.
	Hub *stream.Hub

	// OnEvent, when set, is called synchronously for every emitted event.
	OnEvent func(Event)
}

// Runner drives the detection loop.
type Runner struct {
	config  Config
	enabled bool
	mu      sync.RWMutex
	stopCh  chan struct{}

	// active gestures per handedness, for edge-triggered events
	lastActive map[landmark.Handedness]map[string]bool
}

// New creates a Runner with the given configuration. Detection starts
// enabled.
func New(config Config) *Runner {
	if config.FPS <= 0 {
		config.FPS = DefaultFPS
	}
	return &Runner{
		config:     config,
		enabled:    true,
		lastActive: make(map[landmark.Handedness]map[string]bool),
	}
}

// SetEnabled enables or disables detection without stopping the loop.
func (r *Runner) SetEnabled(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabled = enabled
}

// IsEnabled returns whether detection is currently enabled.
func (r *Runner) IsEnabled() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.enabled
}

// IsRunning returns whether the loop has been started.
func (r *Runner) IsRunning() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stopCh != nil
}

// Start opens the camera and begins the detection loop.
func (r *Runner) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopCh != nil {
		return nil
	}

	if err := r.config.Camera.Open(); err != nil {
		return err
	}
	r.config.Camera.SetFPS(r.config.FPS)

	r.stopCh = make(chan struct{})
	go r.run(r.stopCh)

	log.Println("Tracking pipeline started")
	return nil
}

// Stop halts the loop and releases the camera and detector. The session
// keeps its last frame; queries remain answerable until a restart
// overwrites it.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopCh == nil {
		return
	}
	close(r.stopCh)
	r.stopCh = nil

	if err := r.config.Camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}
	if r.config.Detector != nil {
		if err := r.config.Detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Tracking pipeline stopped")
}

func (r *Runner) run(stopCh chan struct{}) {
	ticker := time.NewTicker(time.Second / time.Duration(r.config.FPS))
	defer ticker.Stop()

	flipped := r.config.Session.Config().Flipped

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !r.IsEnabled() {
				continue
			}

			frame, err := r.config.Camera.ReadFrame()
			if err != nil {
				continue
			}

			if flipped {
				gocv.Flip(*frame, frame, 1)
			}

			hs, err := r.config.Detector.Detect(frame)
			frame.Close()
			if err != nil {
				log.Printf("Error detecting hands: %v", err)
				continue
			}

			r.config.Session.UpdateHands(hs)
			r.emitEvents()

			if r.config.Hub != nil {
				r.config.Hub.Broadcast(stream.Snapshot(r.config.Session))
			}
		}
	}
}

// emitEvents compares each hand's active gestures against the previous
// frame and emits one event per gesture that newly appeared.
func (r *Runner) emitEvents() {
	session := r.config.Session
	seen := make(map[landmark.Handedness]bool)

	for _, h := range session.Hands() {
		if h == nil {
			continue
		}
		seen[h.Handedness] = true
		ref := hands.Of(h)

		active := make(map[string]bool)
		for _, name := range session.Gestures(ref) {
			active[name] = true
		}

		last := r.lastActive[h.Handedness]
		for name := range active {
			if last[name] {
				continue
			}
			e := Event{
				Gesture:    name,
				Handedness: h.Handedness,
				Time:       time.Now(),
			}
			if p, ok := session.PalmCenter(ref); ok {
				e.X, e.Y = p.X, p.Y
			}
			r.emit(e)
		}
		r.lastActive[h.Handedness] = active
	}

	// A hand leaving the frame resets its gesture state, so the gesture
	// fires again when the hand returns.
	for hd := range r.lastActive {
		if !seen[hd] {
			delete(r.lastActive, hd)
		}
	}
}

func (r *Runner) emit(e Event) {
	if r.config.Store != nil {
		err := r.config.Store.Events().Insert(&record.Event{
			Gesture:    e.Gesture,
			Handedness: string(e.Handedness),
			X:          e.X,
			Y:          e.Y,
			DetectedAt: e.Time,
		})
		if err != nil {
			log.Printf("Error recording event: %v", err)
		}
	}
	if r.config.OnEvent != nil {
		r.config.OnEvent(e)
	}
}
