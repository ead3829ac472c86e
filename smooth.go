package hands

import "github.com/lauenborg/p5.hands/landmark"

// smoothHand derives this frame's smoothed hand from the previous smoothed
// hand of the same handedness and the new raw sample. Each coordinate moves
// toward the raw sample by a factor of (1-s), so s=0 is a pass-through and
// higher s converges slower.
//
// A hand entering the frame (no prior) is copied verbatim rather than
// lerped from an undefined position. A keypoint missing from the raw frame
// carries its previous smoothed value forward; a keypoint appearing for the
// first time is copied verbatim.
func smoothHand(prev, raw *landmark.Hand, s float64) *landmark.Hand {
	if prev == nil || s == 0 {
		return raw.Clone()
	}

	out := &landmark.Hand{Handedness: raw.Handedness, Score: raw.Score}
	t := 1 - s
	for i := 0; i < landmark.NumLandmarks; i++ {
		rp := raw.Points[i]
		pp := prev.Points[i]
		switch {
		case rp != nil && pp != nil:
			out.Points[i] = &landmark.Keypoint{
				X:    pp.X + (rp.X-pp.X)*t,
				Y:    pp.Y + (rp.Y-pp.Y)*t,
				Name: landmark.Names[i],
			}
		case rp != nil:
			kp := *rp
			out.Points[i] = &kp
		case pp != nil:
			kp := *pp
			out.Points[i] = &kp
		}
	}
	return out
}
