package hands

import (
	"math"

	"github.com/lauenborg/p5.hands/landmark"
)

// Velocity is the per-frame displacement of a keypoint in pixels.
type Velocity struct {
	DX    float64 `json:"dx"`
	DY    float64 `json:"dy"`
	Speed float64 `json:"speed"`
}

// Direction is a swipe direction in screen space, where y grows downward.
type Direction string

const (
	DirNone  Direction = "none"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
	DirUp    Direction = "up"
	DirDown  Direction = "down"
)

// PointVelocity returns the displacement of the named keypoint between the
// previous frame and the current one. The previous sample comes from the
// hand of the same handedness in the one-frame-lagged snapshot. Returns
// false when either sample is unavailable, e.g. on the first frame a hand
// appears.
func (s *Session) PointVelocity(ref HandRef, name string) (Velocity, bool) {
	h := s.Resolve(ref)
	if h == nil {
		return Velocity{}, false
	}
	cur, ok := pointByAnyName(h, name)
	if !ok {
		return Velocity{}, false
	}

	s.mu.RLock()
	ph := s.prev.ByHandedness(h.Handedness)
	s.mu.RUnlock()
	if ph == nil {
		return Velocity{}, false
	}
	old, ok := pointByAnyName(ph, name)
	if !ok {
		return Velocity{}, false
	}

	dx := cur.X - old.X
	dy := cur.Y - old.Y
	return Velocity{DX: dx, DY: dy, Speed: math.Hypot(dx, dy)}, true
}

// pointByAnyName accepts either a canonical joint name or a short finger
// name, which resolves to that finger's tip.
func pointByAnyName(h *landmark.Hand, name string) (landmark.Keypoint, bool) {
	if f, ok := landmark.ParseFinger(name); ok {
		return h.Point(landmark.TipIndex(f))
	}
	return h.PointByName(name)
}

// HandSwipe classifies the wrist motion of the referenced hand as a swipe
// direction. Below minSpeed (pixels per frame; <=0 selects the configured
// default) the result is DirNone. Otherwise the axis with the larger
// absolute displacement wins, with ties going to the horizontal axis.
func (s *Session) HandSwipe(ref HandRef, minSpeed float64) Direction {
	if minSpeed <= 0 {
		minSpeed = s.cfg.Thresholds.SwipeMinSpeed
	}
	v, ok := s.PointVelocity(ref, "wrist")
	if !ok || v.Speed < minSpeed {
		return DirNone
	}
	if math.Abs(v.DX) >= math.Abs(v.DY) {
		if v.DX > 0 {
			return DirRight
		}
		return DirLeft
	}
	if v.DY > 0 {
		return DirDown
	}
	return DirUp
}
