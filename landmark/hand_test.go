package landmark

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHand_Point(t *testing.T) {
	h := &Hand{Handedness: Right}
	h.SetPoint(Wrist, 100, 200)

	p, ok := h.Point(Wrist)
	if !ok {
		t.Fatal("expected wrist to be present")
	}
	if p.X != 100 || p.Y != 200 || p.Name != "wrist" {
		t.Errorf("unexpected wrist point: %+v", p)
	}

	if _, ok := h.Point(IndexTip); ok {
		t.Error("expected missing keypoint to report absent")
	}
	if _, ok := h.Point(-1); ok {
		t.Error("expected out-of-range index to report absent")
	}
	if _, ok := h.Point(NumLandmarks); ok {
		t.Error("expected out-of-range index to report absent")
	}

	var nilHand *Hand
	if _, ok := nilHand.Point(Wrist); ok {
		t.Error("expected nil hand to report absent")
	}
}

func TestHand_Clone_IsDeep(t *testing.T) {
	h := &Hand{Handedness: Left, Score: 0.8}
	h.SetPoint(Wrist, 10, 20)
	h.SetPoint(IndexTip, 30, 40)

	c := h.Clone()
	if diff := cmp.Diff(h, c); diff != "" {
		t.Fatalf("clone differs from original (-want +got):\n%s", diff)
	}

	// Mutating the original must not affect the clone.
	h.Points[Wrist].X = 999
	p, _ := c.Point(Wrist)
	if p.X != 10 {
		t.Errorf("clone shares keypoint storage with original: wrist X = %v", p.X)
	}
}

func TestHandSet_Clone_IsDeep(t *testing.T) {
	a := &Hand{Handedness: Left}
	a.SetPoint(Wrist, 1, 2)
	set := HandSet{a}

	c := set.Clone()
	a.Points[Wrist].Y = 777

	p, _ := c[0].Point(Wrist)
	if p.Y != 2 {
		t.Errorf("set clone shares storage: wrist Y = %v", p.Y)
	}
}

func TestHandSet_ByHandedness(t *testing.T) {
	l := &Hand{Handedness: Left}
	r := &Hand{Handedness: Right}
	set := HandSet{l, r}

	if got := set.ByHandedness(Left); got != l {
		t.Error("expected the left hand")
	}
	if got := set.ByHandedness(Right); got != r {
		t.Error("expected the right hand")
	}
	if got := (HandSet{l}).ByHandedness(Right); got != nil {
		t.Error("expected nil for missing handedness")
	}
}

func TestDistAndMidpoint(t *testing.T) {
	a := Keypoint{X: 0, Y: 0}
	b := Keypoint{X: 3, Y: 4}
	if d := Dist(a, b); math.Abs(d-5) > 1e-9 {
		t.Errorf("Dist = %v, want 5", d)
	}
	m := Midpoint(a, b)
	if m.X != 1.5 || m.Y != 2 {
		t.Errorf("Midpoint = %+v, want (1.5, 2)", m)
	}
}
