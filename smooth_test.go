package hands

import (
	"math"
	"testing"

	"github.com/lauenborg/p5.hands/landmark"
)

func handAt(hd landmark.Handedness, x, y float64) *landmark.Hand {
	h := &landmark.Hand{Handedness: hd, Score: 0.9}
	h.SetPoint(landmark.Wrist, x, y)
	return h
}

func wristOf(t *testing.T, s *Session, ref HandRef) landmark.Keypoint {
	t.Helper()
	p, ok := s.WristPoint(ref)
	if !ok {
		t.Fatal("expected wrist to be present")
	}
	return p
}

func TestSmoothing_ZeroIsIdentity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Smoothing = 0
	s := New(cfg)

	for _, xy := range [][2]float64{{10, 20}, {300, 150}, {5, 5}} {
		s.UpdateHands(landmark.HandSet{handAt(landmark.Right, xy[0], xy[1])})
		p := wristOf(t, s, Right)
		if p.X != xy[0] || p.Y != xy[1] {
			t.Errorf("smoothing=0: got (%v,%v), want (%v,%v)", p.X, p.Y, xy[0], xy[1])
		}
	}
}

func TestSmoothing_FirstAppearanceIsCopied(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Smoothing = 0.5
	s := New(cfg)

	s.UpdateHands(landmark.HandSet{handAt(landmark.Right, 50, 60)})
	p := wristOf(t, s, Right)
	if p.X != 50 || p.Y != 60 {
		t.Errorf("first frame must copy raw values, got (%v,%v)", p.X, p.Y)
	}
}

func TestSmoothing_ConvergesMonotonically(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Smoothing = 0.3
	s := New(cfg)

	s.UpdateHands(landmark.HandSet{handAt(landmark.Right, 0, 0)})

	target := landmark.Keypoint{X: 100, Y: 50}
	prevDist := math.Inf(1)
	for i := 0; i < 20; i++ {
		s.UpdateHands(landmark.HandSet{handAt(landmark.Right, target.X, target.Y)})
		d := landmark.Dist(wristOf(t, s, Right), target)
		if d >= prevDist {
			t.Fatalf("frame %d: distance %v did not decrease from %v", i, d, prevDist)
		}
		prevDist = d
	}
	if prevDist > 1 {
		t.Errorf("after 20 frames distance to target is still %v", prevDist)
	}
}

func TestSmoothing_LerpFactor(t *testing.T) {
	// With s=0.3 the smoothed value moves 70% of the way to the raw sample.
	cfg := DefaultConfig()
	cfg.Smoothing = 0.3
	s := New(cfg)

	s.UpdateHands(landmark.HandSet{handAt(landmark.Right, 0, 0)})
	s.UpdateHands(landmark.HandSet{handAt(landmark.Right, 100, 0)})

	p := wristOf(t, s, Right)
	if math.Abs(p.X-70) > 1e-9 {
		t.Errorf("smoothed X = %v, want 70", p.X)
	}
}

func TestSmoothing_KeyedByHandedness(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Smoothing = 0.5
	s := New(cfg)

	s.UpdateHands(landmark.HandSet{handAt(landmark.Left, 0, 0), handAt(landmark.Right, 200, 0)})
	// Swapped detector order must not swap smoothing continuity.
	s.UpdateHands(landmark.HandSet{handAt(landmark.Right, 300, 0), handAt(landmark.Left, 100, 0)})

	l := wristOf(t, s, Left)
	r := wristOf(t, s, Right)
	if math.Abs(l.X-50) > 1e-9 {
		t.Errorf("left wrist = %v, want 50", l.X)
	}
	if math.Abs(r.X-250) > 1e-9 {
		t.Errorf("right wrist = %v, want 250", r.X)
	}
}

func TestSmoothing_MissingRawKeypointCarriesForward(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Smoothing = 0.3
	s := New(cfg)

	first := handAt(landmark.Right, 10, 10)
	first.SetPoint(landmark.IndexTip, 40, 40)
	s.UpdateHands(landmark.HandSet{first})

	// Second frame loses the index tip.
	s.UpdateHands(landmark.HandSet{handAt(landmark.Right, 10, 10)})

	p, ok := s.GetPoint(Right, "index_finger_tip")
	if !ok {
		t.Fatal("missing raw keypoint should carry the smoothed value forward")
	}
	if p.X != 40 || p.Y != 40 {
		t.Errorf("carried-forward point = (%v,%v), want (40,40)", p.X, p.Y)
	}
}

func TestUpdateHands_TruncatesToMaxHands(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxHands = 2
	cfg.Smoothing = 0
	s := New(cfg)

	s.UpdateHands(landmark.HandSet{
		handAt(landmark.Left, 0, 0),
		handAt(landmark.Right, 100, 0),
		handAt(landmark.Left, 200, 0),
	})
	if got := s.HandCount(); got != 2 {
		t.Errorf("HandCount = %d, want 2", got)
	}
}

func TestUpdateHands_DropsNilEntriesBeforeTruncating(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxHands = 2
	cfg.Smoothing = 0
	s := New(cfg)

	// Nil slots must not count against MaxHands or reach either view.
	s.UpdateHands(landmark.HandSet{
		nil,
		handAt(landmark.Left, 0, 0),
		nil,
		handAt(landmark.Right, 100, 0),
	})

	if got := s.HandCount(); got != 2 {
		t.Errorf("HandCount = %d, want 2", got)
	}
	if got := len(s.RawHands()); got != 2 {
		t.Errorf("len(RawHands) = %d, want 2", got)
	}
	for i, h := range s.Hands() {
		if h == nil {
			t.Errorf("Hands()[%d] is nil", i)
		}
	}
	for i, h := range s.RawHands() {
		if h == nil {
			t.Errorf("RawHands()[%d] is nil", i)
		}
	}
	if s.Resolve(Left) == nil || s.Resolve(Right) == nil {
		t.Error("both hands should survive nil filtering")
	}
}

func TestUpdateHands_RawAndActiveViewsAgree(t *testing.T) {
	for _, smoothing := range []float64{0, 0.3} {
		cfg := DefaultConfig()
		cfg.MaxHands = 2
		cfg.Smoothing = smoothing
		s := New(cfg)

		s.UpdateHands(landmark.HandSet{
			handAt(landmark.Left, 0, 0),
			nil,
			handAt(landmark.Right, 100, 0),
			handAt(landmark.Left, 200, 0),
		})

		if ra, ac := len(s.RawHands()), len(s.Hands()); ra != ac {
			t.Errorf("smoothing=%v: raw view has %d hands, active view has %d", smoothing, ra, ac)
		}
	}
}

func TestUpdateHands_PreviousSnapshotIsFrozen(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Smoothing = 0
	s := New(cfg)

	s.UpdateHands(landmark.HandSet{handAt(landmark.Right, 100, 100)})
	raw := handAt(landmark.Right, 110, 104)
	s.UpdateHands(landmark.HandSet{raw})

	// Mutating the ingested raw hand must not affect the snapshot the
	// velocity computation reads on the next update.
	raw.Points[landmark.Wrist].X = 9999
	s.UpdateHands(landmark.HandSet{handAt(landmark.Right, 120, 108)})

	v, ok := s.PointVelocity(Right, "wrist")
	if !ok {
		t.Fatal("expected a velocity sample")
	}
	if v.DX != 10 || v.DY != 4 {
		t.Errorf("velocity = (%v,%v), want (10,4); previous snapshot was not independent", v.DX, v.DY)
	}
}
