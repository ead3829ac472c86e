package hands

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lauenborg/p5.hands/landmark"
)

func TestGetPoint_CanonicalAndShortNames(t *testing.T) {
	h := simpleHand(landmark.Right)
	h.SetPoint(landmark.IndexTip, 111, 222)
	h.SetPoint(landmark.IndexPIP, 50, 60)
	s := newTestSession(h)

	p, ok := s.GetPoint(Right, "index_finger_pip")
	if !ok || p.X != 50 || p.Y != 60 {
		t.Errorf("canonical lookup = (%+v, %v)", p, ok)
	}

	// The short finger name resolves to the fingertip.
	p, ok = s.GetPoint(Right, "index")
	if !ok || p.X != 111 || p.Y != 222 {
		t.Errorf("short-name lookup = (%+v, %v)", p, ok)
	}

	if _, ok := s.GetPoint(Right, "middle_finger_tip"); ok {
		t.Error("missing keypoint should report absent")
	}
	if _, ok := s.GetPoint(Right, "nose"); ok {
		t.Error("unknown name should report absent")
	}
	if _, ok := s.GetPoint(Left, "wrist"); ok {
		t.Error("unresolved hand should report absent")
	}
}

func TestFingerTipAndWristPoint(t *testing.T) {
	h := simpleHand(landmark.Right)
	h.SetPoint(landmark.ThumbTip, 10, 20)
	s := newTestSession(h)

	p, ok := s.FingerTip(Right, landmark.Thumb)
	if !ok || p.X != 10 {
		t.Errorf("FingerTip = (%+v, %v)", p, ok)
	}
	if _, ok := s.FingerTip(Right, landmark.Pinky); ok {
		t.Error("missing tip should report absent")
	}

	w, ok := s.WristPoint(Right)
	if !ok || w.Name != "wrist" {
		t.Errorf("WristPoint = (%+v, %v)", w, ok)
	}
}

func TestPalmCenter_PartialAverage(t *testing.T) {
	h := &landmark.Hand{Handedness: landmark.Right}
	h.SetPoint(landmark.Wrist, 0, 0)
	h.SetPoint(landmark.IndexMCP, 10, 0)
	// middle MCP missing
	h.SetPoint(landmark.RingMCP, 30, 0)
	h.SetPoint(landmark.PinkyMCP, 40, 0)
	s := newTestSession(h)

	p, ok := s.PalmCenter(Right)
	if !ok {
		t.Fatal("expected a palm center from the available joints")
	}
	if math.Abs(p.X-20) > 1e-9 || p.Y != 0 {
		t.Errorf("palm center = (%v,%v), want (20,0)", p.X, p.Y)
	}
}

func TestPalmCenter_AllMissing(t *testing.T) {
	h := &landmark.Hand{Handedness: landmark.Right}
	h.SetPoint(landmark.IndexTip, 5, 5) // not a palm joint
	s := newTestSession(h)

	if _, ok := s.PalmCenter(Right); ok {
		t.Error("palm center with no palm joints should report absent")
	}
}

func TestHandCenter_Centroid(t *testing.T) {
	h := &landmark.Hand{Handedness: landmark.Right}
	h.SetPoint(landmark.Wrist, 0, 0)
	h.SetPoint(landmark.IndexTip, 30, 60)
	s := newTestSession(h)

	p, ok := s.HandCenter(Right)
	if !ok {
		t.Fatal("expected a centroid")
	}
	if p.X != 15 || p.Y != 30 {
		t.Errorf("centroid = (%v,%v), want (15,30)", p.X, p.Y)
	}
}

func TestFingerPoints_OrderAndSkippedAbsent(t *testing.T) {
	h := &landmark.Hand{Handedness: landmark.Right}
	h.SetPoint(landmark.Wrist, 0, 0)
	h.SetPoint(landmark.IndexMCP, 1, 0)
	h.SetPoint(landmark.IndexPIP, 2, 0)
	h.SetPoint(landmark.IndexDIP, 3, 0)
	h.SetPoint(landmark.IndexTip, 4, 0)
	s := newTestSession(h)

	got := s.FingerPoints(Right, landmark.Index)
	wantNames := []string{"index_finger_mcp", "index_finger_pip", "index_finger_dip", "index_finger_tip"}
	if len(got) != len(wantNames) {
		t.Fatalf("got %d points, want %d", len(got), len(wantNames))
	}
	names := make([]string, len(got))
	for i, p := range got {
		names[i] = p.Name
	}
	if diff := cmp.Diff(wantNames, names); diff != "" {
		t.Errorf("finger point names (-want +got):\n%s", diff)
	}

	// Dropping the DIP keeps the remaining order intact. The wrist is
	// never part of the result.
	h.Points[landmark.IndexDIP] = nil
	s = newTestSession(h)
	got = s.FingerPoints(Right, landmark.Index)
	names = names[:0]
	for _, p := range got {
		names = append(names, p.Name)
	}
	if diff := cmp.Diff([]string{"index_finger_mcp", "index_finger_pip", "index_finger_tip"}, names); diff != "" {
		t.Errorf("finger point names with absent DIP (-want +got):\n%s", diff)
	}
}

func TestFingerPoints_NoHand(t *testing.T) {
	s := newTestSession()
	if got := s.FingerPoints(Right, landmark.Index); got != nil {
		t.Errorf("expected nil for unresolved hand, got %v", got)
	}
}
