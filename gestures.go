package hands

import "github.com/lauenborg/p5.hands/landmark"

// tipDistance returns the distance between two fingertips.
func tipDistance(h *landmark.Hand, a, b landmark.Finger) (float64, bool) {
	pa, ok := h.Point(landmark.TipIndex(a))
	if !ok {
		return 0, false
	}
	pb, ok := h.Point(landmark.TipIndex(b))
	if !ok {
		return 0, false
	}
	return landmark.Dist(pa, pb), true
}

// IsPinching reports whether the thumb and index tips are closer than the
// pinch threshold.
func (s *Session) IsPinching(ref HandRef) bool {
	h := s.Resolve(ref)
	if h == nil {
		return false
	}
	d, ok := tipDistance(h, landmark.Thumb, landmark.Index)
	return ok && d < s.cfg.Thresholds.Pinch
}

// PinchAmount maps the thumb-to-index tip distance onto [0,1]: 1 at or
// below the PinchMin threshold, 0 at or above PinchMax, linear in between.
// Returns 0 when either tip is missing.
func (s *Session) PinchAmount(ref HandRef) float64 {
	h := s.Resolve(ref)
	if h == nil {
		return 0
	}
	d, ok := tipDistance(h, landmark.Thumb, landmark.Index)
	if !ok {
		return 0
	}
	lo, hi := s.cfg.Thresholds.PinchMin, s.cfg.Thresholds.PinchMax
	amt := (hi - d) / (hi - lo)
	if amt < 0 {
		return 0
	}
	if amt > 1 {
		return 1
	}
	return amt
}

// PinchPoint returns the midpoint between the thumb and index tips.
func (s *Session) PinchPoint(ref HandRef) (landmark.Keypoint, bool) {
	h := s.Resolve(ref)
	if h == nil {
		return landmark.Keypoint{}, false
	}
	thumb, ok := h.Point(landmark.ThumbTip)
	if !ok {
		return landmark.Keypoint{}, false
	}
	index, ok := h.Point(landmark.IndexTip)
	if !ok {
		return landmark.Keypoint{}, false
	}
	p := landmark.Midpoint(thumb, index)
	p.Name = "pinch"
	return p, true
}

// IsGrabbing reports whether the hand is closed into a fist: the mean
// fingertip-to-wrist distance is below the grab threshold. At least three
// fingertips must be localized.
func (s *Session) IsGrabbing(ref HandRef) bool {
	h := s.Resolve(ref)
	if h == nil {
		return false
	}
	mean, ok := meanTipDistance(h)
	return ok && mean < s.cfg.Thresholds.Grab
}

// meanTipDistance averages the fingertip-to-wrist distances over the
// localized fingertips. It requires the wrist and at least three tips.
func meanTipDistance(h *landmark.Hand) (float64, bool) {
	wrist, ok := h.Point(landmark.Wrist)
	if !ok {
		return 0, false
	}
	var sum float64
	n := 0
	for _, f := range landmark.AllFingers {
		if tip, ok := h.Point(landmark.TipIndex(f)); ok {
			sum += landmark.Dist(tip, wrist)
			n++
		}
	}
	if n < 3 {
		return 0, false
	}
	return sum / float64(n), true
}

// IsOpenHand reports whether all five fingers are extended.
func (s *Session) IsOpenHand(ref HandRef) bool {
	return s.CountFingers(ref) >= 5
}

// IsPointing reports an extended index with middle, ring and pinky down.
// The thumb is unconstrained.
func (s *Session) IsPointing(ref HandRef) bool {
	up := s.FingersUp(ref)
	if up == nil {
		return false
	}
	return up[landmark.Index] && !up[landmark.Middle] && !up[landmark.Ring] && !up[landmark.Pinky]
}

// IsPeace reports index and middle up with ring and pinky down. The thumb
// is unconstrained.
func (s *Session) IsPeace(ref HandRef) bool {
	up := s.FingersUp(ref)
	if up == nil {
		return false
	}
	return up[landmark.Index] && up[landmark.Middle] && !up[landmark.Ring] && !up[landmark.Pinky]
}

// IsThumbsUp reports only the thumb extended.
func (s *Session) IsThumbsUp(ref HandRef) bool {
	up := s.FingersUp(ref)
	if up == nil {
		return false
	}
	return up[landmark.Thumb] && !up[landmark.Index] && !up[landmark.Middle] &&
		!up[landmark.Ring] && !up[landmark.Pinky]
}

// IsRockOn reports index and pinky up with middle and ring down. The thumb
// is unconstrained.
func (s *Session) IsRockOn(ref HandRef) bool {
	up := s.FingersUp(ref)
	if up == nil {
		return false
	}
	return up[landmark.Index] && up[landmark.Pinky] && !up[landmark.Middle] && !up[landmark.Ring]
}

// IsShaka reports thumb and pinky up with index, middle and ring down.
func (s *Session) IsShaka(ref HandRef) bool {
	up := s.FingersUp(ref)
	if up == nil {
		return false
	}
	return up[landmark.Thumb] && up[landmark.Pinky] && !up[landmark.Index] &&
		!up[landmark.Middle] && !up[landmark.Ring]
}

// IsGun reports thumb and index up with middle, ring and pinky down.
func (s *Session) IsGun(ref HandRef) bool {
	up := s.FingersUp(ref)
	if up == nil {
		return false
	}
	return up[landmark.Thumb] && up[landmark.Index] && !up[landmark.Middle] &&
		!up[landmark.Ring] && !up[landmark.Pinky]
}

// IsThree reports index, middle and ring up with pinky down. The thumb is
// unconstrained.
func (s *Session) IsThree(ref HandRef) bool {
	up := s.FingersUp(ref)
	if up == nil {
		return false
	}
	return up[landmark.Index] && up[landmark.Middle] && up[landmark.Ring] && !up[landmark.Pinky]
}

// IsShowingNumber reports whether the hand shows the number n with the
// usual counting convention: for 1 through 4, exactly n of the four long
// fingers are up and the thumb is down; 5 adds the thumb to four long
// fingers; 0 is a fist with the thumb down. Out-of-range n reports false.
func (s *Session) IsShowingNumber(ref HandRef, n int) bool {
	up := s.FingersUp(ref)
	if up == nil {
		return false
	}
	long := 0
	for _, f := range [4]landmark.Finger{landmark.Index, landmark.Middle, landmark.Ring, landmark.Pinky} {
		if up[f] {
			long++
		}
	}
	switch {
	case n == 0:
		return long == 0 && !up[landmark.Thumb]
	case n >= 1 && n <= 4:
		return long == n && !up[landmark.Thumb]
	case n == 5:
		return long == 4 && up[landmark.Thumb]
	}
	return false
}

// gestureChecks lists the named predicates in a fixed reporting order.
var gestureChecks = []struct {
	name  string
	check func(*Session, HandRef) bool
}{
	{"pinch", (*Session).IsPinching},
	{"grab", (*Session).IsGrabbing},
	{"open_hand", (*Session).IsOpenHand},
	{"pointing", (*Session).IsPointing},
	{"peace", (*Session).IsPeace},
	{"thumbs_up", (*Session).IsThumbsUp},
	{"rock_on", (*Session).IsRockOn},
	{"shaka", (*Session).IsShaka},
	{"gun", (*Session).IsGun},
	{"three", (*Session).IsThree},
}

// Gestures returns the names of every gesture predicate that currently
// holds for the referenced hand, in a fixed order.
func (s *Session) Gestures(ref HandRef) []string {
	h := s.Resolve(ref)
	if h == nil {
		return nil
	}
	// Pin the resolved hand so every predicate sees the same frame.
	pinned := Of(h)
	var active []string
	for _, g := range gestureChecks {
		if g.check(s, pinned) {
			active = append(active, g.name)
		}
	}
	return active
}
