package hands

import (
	"math"

	"github.com/lauenborg/p5.hands/landmark"
)

// HandDist returns the distance between the palm centers of two resolved
// hands. Returns false when either hand or palm center is unavailable.
func (s *Session) HandDist(a, b HandRef) (float64, bool) {
	pa, ok := s.PalmCenter(a)
	if !ok {
		return 0, false
	}
	pb, ok := s.PalmCenter(b)
	if !ok {
		return 0, false
	}
	return landmark.Dist(pa, pb), true
}

// HandSize returns the mean fingertip-to-wrist distance, a rough pixel
// measure of how large the hand appears. At least three fingertips must be
// localized.
func (s *Session) HandSize(ref HandRef) (float64, bool) {
	h := s.Resolve(ref)
	if h == nil {
		return 0, false
	}
	return meanTipDistance(h)
}

// HandAngle returns the orientation of the hand in radians: the screen-space
// angle of the wrist-to-middle-MCP direction, measured with atan2 in
// y-down coordinates. 0 points right, positive angles rotate toward the
// bottom of the screen.
func (s *Session) HandAngle(ref HandRef) (float64, bool) {
	h := s.Resolve(ref)
	if h == nil {
		return 0, false
	}
	wrist, ok := h.Point(landmark.Wrist)
	if !ok {
		return 0, false
	}
	mcp, ok := h.Point(landmark.MiddleMCP)
	if !ok {
		return 0, false
	}
	return math.Atan2(mcp.Y-wrist.Y, mcp.X-wrist.X), true
}

// MapPoint rescales a keypoint from the session's video coordinate space
// to a display of the given dimensions.
func (s *Session) MapPoint(p landmark.Keypoint, dstWidth, dstHeight int) landmark.Keypoint {
	return landmark.Keypoint{
		X:    p.X * float64(dstWidth) / float64(s.cfg.Width),
		Y:    p.Y * float64(dstHeight) / float64(s.cfg.Height),
		Name: p.Name,
	}
}
