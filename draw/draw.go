// Package draw renders hand overlays onto GoCV Mats: keypoint dots,
// finger-chain and palm-outline lines, and text labels. It only reads the
// hand data it is given.
package draw

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/lauenborg/p5.hands/landmark"
)

var palmColor = color.RGBA{R: 220, G: 220, B: 220, A: 255}

const dotRadius = 4

func toPt(p landmark.Keypoint) image.Point {
	return image.Pt(int(p.X+0.5), int(p.Y+0.5))
}

// Dots draws a filled circle at every localized keypoint, colored by the
// finger the joint belongs to. The wrist is drawn in the palm color.
func Dots(mat *gocv.Mat, h *landmark.Hand) {
	if h == nil {
		return
	}
	if p, ok := h.Point(landmark.Wrist); ok {
		gocv.Circle(mat, toPt(p), dotRadius, palmColor, -1)
	}
	for _, f := range landmark.AllFingers {
		chain := landmark.Chain(f)
		for _, i := range chain[1:] {
			if p, ok := h.Point(i); ok {
				gocv.Circle(mat, toPt(p), dotRadius, landmark.FingerColor(f), -1)
			}
		}
	}
}

// Skeleton draws the finger chains and palm outline. Segments with a
// missing endpoint are skipped.
func Skeleton(mat *gocv.Mat, h *landmark.Hand) {
	if h == nil {
		return
	}
	for _, f := range landmark.AllFingers {
		chain := landmark.Chain(f)
		c := landmark.FingerColor(f)
		for j := 0; j < len(chain)-1; j++ {
			a, ok := h.Point(chain[j])
			if !ok {
				continue
			}
			b, ok := h.Point(chain[j+1])
			if !ok {
				continue
			}
			gocv.Line(mat, toPt(a), toPt(b), c, 2)
		}
	}
	for _, e := range landmark.PalmEdges {
		a, ok := h.Point(e[0])
		if !ok {
			continue
		}
		b, ok := h.Point(e[1])
		if !ok {
			continue
		}
		gocv.Line(mat, toPt(a), toPt(b), palmColor, 2)
	}
}

// Label writes text just above the wrist of the hand.
func Label(mat *gocv.Mat, h *landmark.Hand, text string) {
	if h == nil {
		return
	}
	wrist, ok := h.Point(landmark.Wrist)
	if !ok {
		return
	}
	org := image.Pt(int(wrist.X+0.5), int(wrist.Y+0.5)+24)
	gocv.PutText(mat, text, org, gocv.FontHersheySimplex, 0.6, palmColor, 2)
}

// Overlay draws the skeleton, dots and a handedness/score label for every
// hand in the set.
func Overlay(mat *gocv.Mat, set landmark.HandSet) {
	for _, h := range set {
		if h == nil {
			continue
		}
		Skeleton(mat, h)
		Dots(mat, h)
		Label(mat, h, fmt.Sprintf("%s %.2f", h.Handedness, h.Score))
	}
}
