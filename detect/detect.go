// Package detect provides hand detection: the Detector interface, a
// MediaPipe subprocess implementation and a mock for tests. Detectors
// return hands in pixel space with up to 21 localized keypoints each.
package detect

import (
	"gocv.io/x/gocv"

	"github.com/lauenborg/p5.hands/landmark"
)

// Detector analyzes video frames for hands.
type Detector interface {
	// Detect analyzes a video frame and returns the detected hands in the
	// frame's pixel coordinates. Returns an empty set if no hands are found.
	Detect(frame *gocv.Mat) (landmark.HandSet, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds configuration options for hand detection.
type Config struct {
	// MaxHands is the maximum number of hands to detect (default 2).
	MaxHands int

	// Model selects the landmark model variant: "full" or "lite".
	Model string

	// MinConfidence is the minimum detection confidence threshold (0.0-1.0).
	MinConfidence float64

	// MinTrackingConf is the minimum tracking confidence threshold (0.0-1.0).
	MinTrackingConf float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		MaxHands:        2,
		Model:           "full",
		MinConfidence:   0.5,
		MinTrackingConf: 0.5,
	}
}
