package hands

import "github.com/lauenborg/p5.hands/landmark"

// IsFingerUp reports whether a finger is extended: its tip is farther from
// the wrist than its PIP joint. The test is distance-based, so it is
// invariant under rotation of the hand on screen; a finger curled sideways
// rather than downward can still fool it. Missing wrist, tip or PIP
// reports false.
func (s *Session) IsFingerUp(ref HandRef, f landmark.Finger) bool {
	return fingerUp(s.Resolve(ref), f)
}

func fingerUp(h *landmark.Hand, f landmark.Finger) bool {
	wrist, ok := h.Point(landmark.Wrist)
	if !ok {
		return false
	}
	tip, ok := h.Point(landmark.TipIndex(f))
	if !ok {
		return false
	}
	pip, ok := h.Point(landmark.PipIndex(f))
	if !ok {
		return false
	}
	return landmark.Dist(tip, wrist) > landmark.Dist(pip, wrist)
}

// FingersUp returns the extended state of all five fingers. The result is
// nil when no hand resolves; indexing a nil map reads false, so callers
// may use the result without checking.
func (s *Session) FingersUp(ref HandRef) map[landmark.Finger]bool {
	h := s.Resolve(ref)
	if h == nil {
		return nil
	}
	return fingersUp(h)
}

func fingersUp(h *landmark.Hand) map[landmark.Finger]bool {
	up := make(map[landmark.Finger]bool, len(landmark.AllFingers))
	for _, f := range landmark.AllFingers {
		up[f] = fingerUp(h, f)
	}
	return up
}

// CountFingers returns how many fingers are extended, 0 through 5.
func (s *Session) CountFingers(ref HandRef) int {
	h := s.Resolve(ref)
	if h == nil {
		return 0
	}
	n := 0
	for _, f := range landmark.AllFingers {
		if fingerUp(h, f) {
			n++
		}
	}
	return n
}
