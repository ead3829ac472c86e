// Package hands is a friendly query layer over a 21-point hand landmark
// detector. A Session holds the detector output for the current frame and
// answers named-point, finger-state, gesture and motion queries against it.
// Every query is a non-blocking read; absence of data is reported through
// a false/zero result, never an error.
package hands

import (
	"sync"

	"github.com/lauenborg/p5.hands/landmark"
)

// ModelType selects the detection model variant.
type ModelType string

const (
	// ModelFull is the full-precision hand landmark model.
	ModelFull ModelType = "full"
	// ModelLite is the faster, lower-precision model.
	ModelLite ModelType = "lite"
)

// Thresholds holds the pixel-space distance thresholds used by the gesture
// predicates.
type Thresholds struct {
	// Pinch is the thumb-to-index tip distance below which IsPinching
	// reports true.
	Pinch float64
	// PinchMin and PinchMax bound the linear range of PinchAmount.
	PinchMin float64
	PinchMax float64
	// Grab is the mean fingertip-to-wrist distance below which IsGrabbing
	// reports true.
	Grab float64
	// SwipeMinSpeed is the minimum wrist speed, in pixels per frame, for
	// HandSwipe to report a direction.
	SwipeMinSpeed float64
}

// DefaultThresholds returns the standard gesture thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Pinch:         40,
		PinchMin:      15,
		PinchMax:      100,
		Grab:          90,
		SwipeMinSpeed: 12,
	}
}

// Config holds session configuration, fixed for the session's lifetime.
type Config struct {
	// MaxHands is the maximum number of hands retained per frame (default 2).
	MaxHands int
	// Flipped indicates the video source is mirrored. The session itself
	// does not flip anything; the capture pipeline consults this flag.
	Flipped bool
	// Smoothing is the temporal smoothing factor in [0,1]. 0 passes raw
	// detections through unchanged; higher values are smoother but laggier.
	Smoothing float64
	// Width and Height are the video dimensions in pixels (default 640x480),
	// used by MapPoint to rescale to other coordinate spaces.
	Width  int
	Height int
	// Model selects the detection model variant (default full).
	Model ModelType
	// Thresholds are the gesture distance thresholds; zero fields take
	// their defaults.
	Thresholds Thresholds
}

// DefaultConfig returns a Config with the standard defaults.
func DefaultConfig() Config {
	return Config{
		MaxHands:   2,
		Smoothing:  0.3,
		Width:      640,
		Height:     480,
		Model:      ModelFull,
		Thresholds: DefaultThresholds(),
	}
}

func (c Config) withDefaults() Config {
	if c.MaxHands < 1 {
		c.MaxHands = 2
	}
	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 480
	}
	if c.Model == "" {
		c.Model = ModelFull
	}
	if c.Smoothing < 0 {
		c.Smoothing = 0
	}
	if c.Smoothing > 1 {
		c.Smoothing = 1
	}
	d := DefaultThresholds()
	if c.Thresholds.Pinch <= 0 {
		c.Thresholds.Pinch = d.Pinch
	}
	if c.Thresholds.PinchMin <= 0 {
		c.Thresholds.PinchMin = d.PinchMin
	}
	if c.Thresholds.PinchMax <= c.Thresholds.PinchMin {
		c.Thresholds.PinchMax = d.PinchMax
	}
	if c.Thresholds.Grab <= 0 {
		c.Thresholds.Grab = d.Grab
	}
	if c.Thresholds.SwipeMinSpeed <= 0 {
		c.Thresholds.SwipeMinSpeed = d.SwipeMinSpeed
	}
	return c
}

// Session holds the tracking state for one video source: the raw detector
// output for the current frame, the smoothed set derived from it, and a
// one-frame-lagged snapshot used for velocity queries. All mutation happens
// inside UpdateHands under a single lock, so queries never observe a
// partially updated frame.
type Session struct {
	cfg Config

	mu       sync.RWMutex
	raw      landmark.HandSet
	smoothed landmark.HandSet
	prev     landmark.HandSet

	// activeSnap is a deep copy of the active set, taken in the same
	// update that installed it. It becomes prev on the next update, so
	// prev never aliases live hand data.
	activeSnap landmark.HandSet
}

// New creates a Session with the given configuration. Zero-valued Config
// fields take their defaults.
func New(cfg Config) *Session {
	return &Session{cfg: cfg.withDefaults()}
}

// Config returns the session configuration.
func (s *Session) Config() Config { return s.cfg }

// UpdateHands ingests one frame of detector output. It must be called
// exactly once per detection callback. Before the new frame replaces the
// old one, the currently active set is snapshotted as the previous frame
// for velocity queries. Nil entries are dropped before the MaxHands cap
// is applied, so the raw and smoothed views always hold the same hands.
// Ownership of raw transfers to the session; the caller must not mutate
// it afterwards.
func (s *Session) UpdateHands(raw landmark.HandSet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prev = s.activeSnap

	hs := make(landmark.HandSet, 0, len(raw))
	for _, rh := range raw {
		if rh != nil {
			hs = append(hs, rh)
		}
	}
	if len(hs) > s.cfg.MaxHands {
		hs = hs[:s.cfg.MaxHands]
	}

	next := make(landmark.HandSet, 0, len(hs))
	for _, rh := range hs {
		prev := s.smoothed.ByHandedness(rh.Handedness)
		next = append(next, smoothHand(prev, rh, s.cfg.Smoothing))
	}

	s.smoothed = next
	s.raw = hs
	s.activeSnap = s.activeLocked().Clone()
}

// activeLocked returns the set queries operate on: the raw set when
// smoothing is disabled, the smoothed set otherwise. The caller must hold
// the lock.
func (s *Session) activeLocked() landmark.HandSet {
	if s.cfg.Smoothing == 0 {
		return s.raw
	}
	return s.smoothed
}

// Hands returns the active hand set for the current frame. Hands are
// replaced, never mutated, on update, so the returned values stay frozen.
func (s *Session) Hands() landmark.HandSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeLocked()
}

// RawHands returns this frame's unfiltered detector output.
func (s *Session) RawHands() landmark.HandSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.raw
}

// HandCount returns the number of hands in the current frame.
func (s *Session) HandCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.activeLocked())
}

// HandDetected reports whether the given hand reference resolves to a hand
// in the current frame.
func (s *Session) HandDetected(ref HandRef) bool {
	return s.Resolve(ref) != nil
}
