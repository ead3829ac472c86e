package detect

import (
	"math"

	"github.com/lauenborg/p5.hands/landmark"
)

// Synthetic hand fixtures for tests and the mock detector. Hands are built
// in 640x480 pixel space with the wrist near the bottom center and fingers
// fanned upward. Extended fingers place the tip farther from the wrist
// than the PIP joint; curled fingers fold the tip back inside it.

// fixture geometry
const (
	fixtureWristX = 320
	fixtureWristY = 400

	radMCP       = 70
	radPIP       = 100
	radDIPUp     = 130
	radTipUp     = 160
	radDIPCurled = 80
	radTipCurled = 75
)

// fan angle of each finger relative to straight up, in radians.
var fingerAngles = [5]float64{-1.05, -0.35, 0, 0.35, 0.70}

// Synthetic builds a hand with the given per-finger extended state. Fingers
// absent from up are curled.
func Synthetic(hd landmark.Handedness, up map[landmark.Finger]bool) *landmark.Hand {
	h := &landmark.Hand{Handedness: hd, Score: 0.95}
	h.SetPoint(landmark.Wrist, fixtureWristX, fixtureWristY)

	for _, f := range landmark.AllFingers {
		a := fingerAngles[f]
		// mirror the fan for left hands
		if hd == landmark.Left {
			a = -a
		}
		dx, dy := math.Sin(a), -math.Cos(a)
		place := func(idx int, r float64) {
			h.SetPoint(idx, fixtureWristX+dx*r, fixtureWristY+dy*r)
		}

		chain := landmark.Chain(f)
		if f == landmark.Thumb {
			place(landmark.ThumbCMC, 40)
			place(landmark.ThumbMCP, radMCP)
			place(landmark.ThumbIP, radPIP)
		} else {
			place(chain[1], radMCP)
			place(chain[2], radPIP)
			if up[f] {
				place(chain[3], radDIPUp)
			} else {
				place(chain[3], radDIPCurled)
			}
		}
		if up[f] {
			place(chain[4], radTipUp)
		} else {
			place(chain[4], radTipCurled)
		}
	}
	return h
}

// OpenHand returns a hand with all five fingers extended.
func OpenHand(hd landmark.Handedness) *landmark.Hand {
	return Synthetic(hd, map[landmark.Finger]bool{
		landmark.Thumb: true, landmark.Index: true, landmark.Middle: true,
		landmark.Ring: true, landmark.Pinky: true,
	})
}

// FistHand returns a hand with every finger curled.
func FistHand(hd landmark.Handedness) *landmark.Hand {
	return Synthetic(hd, nil)
}

// PointingHand returns a hand with only the index finger extended.
func PointingHand(hd landmark.Handedness) *landmark.Hand {
	return Synthetic(hd, map[landmark.Finger]bool{landmark.Index: true})
}

// ThumbsUpHand returns a hand with only the thumb extended.
func ThumbsUpHand(hd landmark.Handedness) *landmark.Hand {
	return Synthetic(hd, map[landmark.Finger]bool{landmark.Thumb: true})
}

// PeaceHand returns a hand with index and middle fingers extended.
func PeaceHand(hd landmark.Handedness) *landmark.Hand {
	return Synthetic(hd, map[landmark.Finger]bool{landmark.Index: true, landmark.Middle: true})
}

// PinchHand returns an open hand whose thumb and index tips nearly touch.
func PinchHand(hd landmark.Handedness) *landmark.Hand {
	h := OpenHand(hd)
	h.SetPoint(landmark.ThumbTip, 336, 260)
	h.SetPoint(landmark.IndexTip, 344, 266)
	return h
}
