package landmark

import "math"

// Handedness classifies a detected hand as reported by the pose source.
type Handedness string

const (
	Left  Handedness = "Left"
	Right Handedness = "Right"
)

// Keypoint is a single tracked joint position in pixel space, labeled with
// its canonical joint name.
type Keypoint struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Name string  `json:"name"`
}

// Dist returns the Euclidean distance between two keypoints.
func Dist(a, b Keypoint) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Midpoint returns the point halfway between two keypoints.
func Midpoint(a, b Keypoint) Keypoint {
	return Keypoint{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Hand holds the 21 landmarks of one detected hand. A nil entry means the
// detector failed to localize that joint; consumers must treat it as
// unknown, never as the origin.
type Hand struct {
	Points     [NumLandmarks]*Keypoint `json:"points"`
	Handedness Handedness              `json:"handedness"`
	Score      float64                 `json:"score"`
}

// Point returns the keypoint at the given landmark index as a value copy.
// The second result is false if the index is out of range or the joint was
// not localized.
func (h *Hand) Point(i int) (Keypoint, bool) {
	if h == nil || i < 0 || i >= NumLandmarks || h.Points[i] == nil {
		return Keypoint{}, false
	}
	return *h.Points[i], true
}

// PointByName looks up a keypoint by its canonical joint name.
func (h *Hand) PointByName(name string) (Keypoint, bool) {
	i, ok := NameIndex(name)
	if !ok {
		return Keypoint{}, false
	}
	return h.Point(i)
}

// SetPoint stores a keypoint at the given landmark index, filling in its
// canonical name.
func (h *Hand) SetPoint(i int, x, y float64) {
	if i < 0 || i >= NumLandmarks {
		return
	}
	h.Points[i] = &Keypoint{X: x, Y: y, Name: Names[i]}
}

// Clone returns a deep copy of the hand. The copy shares no keypoint
// storage with the original.
func (h *Hand) Clone() *Hand {
	if h == nil {
		return nil
	}
	c := &Hand{Handedness: h.Handedness, Score: h.Score}
	for i, p := range h.Points {
		if p != nil {
			kp := *p
			c.Points[i] = &kp
		}
	}
	return c
}

// HandSet is the ordered set of hands detected in one frame. Order is
// detector-assigned and carries no left/right guarantee.
type HandSet []*Hand

// Clone returns a deep copy of the set.
func (s HandSet) Clone() HandSet {
	if s == nil {
		return nil
	}
	c := make(HandSet, len(s))
	for i, h := range s {
		c[i] = h.Clone()
	}
	return c
}

// ByHandedness returns the first hand in the set with the given handedness,
// or nil if none matches.
func (s HandSet) ByHandedness(hd Handedness) *Hand {
	for _, h := range s {
		if h != nil && h.Handedness == hd {
			return h
		}
	}
	return nil
}
