package hands

import "github.com/lauenborg/p5.hands/landmark"

// GetPoint looks up a keypoint by name on the referenced hand. The name may
// be a canonical joint name ("index_finger_pip") or a short finger name
// ("index"), which resolves to that finger's tip.
func (s *Session) GetPoint(ref HandRef, name string) (landmark.Keypoint, bool) {
	h := s.Resolve(ref)
	if h == nil {
		return landmark.Keypoint{}, false
	}
	if f, ok := landmark.ParseFinger(name); ok {
		return h.Point(landmark.TipIndex(f))
	}
	return h.PointByName(name)
}

// FingerTip returns the tip keypoint of the given finger.
func (s *Session) FingerTip(ref HandRef, f landmark.Finger) (landmark.Keypoint, bool) {
	h := s.Resolve(ref)
	if h == nil {
		return landmark.Keypoint{}, false
	}
	return h.Point(landmark.TipIndex(f))
}

// WristPoint returns the wrist keypoint.
func (s *Session) WristPoint(ref HandRef) (landmark.Keypoint, bool) {
	h := s.Resolve(ref)
	if h == nil {
		return landmark.Keypoint{}, false
	}
	return h.Point(landmark.Wrist)
}

// PalmCenter returns the mean of the wrist and the four finger MCP joints.
// Joints the detector missed are left out of the average; the result is
// false only when none of the five are present.
func (s *Session) PalmCenter(ref HandRef) (landmark.Keypoint, bool) {
	h := s.Resolve(ref)
	if h == nil {
		return landmark.Keypoint{}, false
	}
	idx := [5]int{landmark.Wrist, landmark.IndexMCP, landmark.MiddleMCP, landmark.RingMCP, landmark.PinkyMCP}
	return meanOf(h, idx[:])
}

// HandCenter returns the centroid of all localized keypoints.
func (s *Session) HandCenter(ref HandRef) (landmark.Keypoint, bool) {
	h := s.Resolve(ref)
	if h == nil {
		return landmark.Keypoint{}, false
	}
	idx := make([]int, landmark.NumLandmarks)
	for i := range idx {
		idx[i] = i
	}
	return meanOf(h, idx)
}

func meanOf(h *landmark.Hand, indices []int) (landmark.Keypoint, bool) {
	var sx, sy float64
	n := 0
	for _, i := range indices {
		if p, ok := h.Point(i); ok {
			sx += p.X
			sy += p.Y
			n++
		}
	}
	if n == 0 {
		return landmark.Keypoint{}, false
	}
	return landmark.Keypoint{X: sx / float64(n), Y: sy / float64(n)}, true
}

// FingerPoints returns the four non-wrist joints of a finger in base-to-tip
// order. Joints the detector missed are skipped; the order of the rest is
// preserved.
func (s *Session) FingerPoints(ref HandRef, f landmark.Finger) []landmark.Keypoint {
	h := s.Resolve(ref)
	if h == nil {
		return nil
	}
	chain := landmark.Chain(f)
	pts := make([]landmark.Keypoint, 0, 4)
	for _, i := range chain[1:] {
		if p, ok := h.Point(i); ok {
			pts = append(pts, p)
		}
	}
	return pts
}
