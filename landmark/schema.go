// Package landmark defines the 21-point hand landmark schema used by the
// MediaPipe hand model: canonical joint names, per-finger joint tables,
// wrist-to-tip index chains and the palm outline used for drawing.
package landmark

import "image/color"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Names maps each landmark index to its canonical joint name.
var Names = [NumLandmarks]string{
	"wrist",
	"thumb_cmc", "thumb_mcp", "thumb_ip", "thumb_tip",
	"index_finger_mcp", "index_finger_pip", "index_finger_dip", "index_finger_tip",
	"middle_finger_mcp", "middle_finger_pip", "middle_finger_dip", "middle_finger_tip",
	"ring_finger_mcp", "ring_finger_pip", "ring_finger_dip", "ring_finger_tip",
	"pinky_mcp", "pinky_pip", "pinky_dip", "pinky_tip",
}

var nameIndex = func() map[string]int {
	m := make(map[string]int, NumLandmarks)
	for i, n := range Names {
		m[n] = i
	}
	return m
}()

// NameIndex returns the landmark index for a canonical joint name.
func NameIndex(name string) (int, bool) {
	i, ok := nameIndex[name]
	return i, ok
}

// Finger identifies one of the five fingers, ordered thumb to pinky.
type Finger int

const (
	Thumb Finger = iota
	Index
	Middle
	Ring
	Pinky
)

// AllFingers lists the fingers in their fixed iteration order.
var AllFingers = [5]Finger{Thumb, Index, Middle, Ring, Pinky}

var fingerNames = [5]string{"thumb", "index", "middle", "ring", "pinky"}

// String returns the short finger name ("thumb" through "pinky").
func (f Finger) String() string {
	if f < Thumb || f > Pinky {
		return "unknown"
	}
	return fingerNames[f]
}

// ParseFinger converts a short finger name to a Finger.
func ParseFinger(name string) (Finger, bool) {
	for i, n := range fingerNames {
		if n == name {
			return Finger(i), true
		}
	}
	return 0, false
}

// Per-finger joint index tables. The thumb has no distinct PIP joint; its
// IP joint fills that role.
var (
	tips = [5]int{ThumbTip, IndexTip, MiddleTip, RingTip, PinkyTip}
	pips = [5]int{ThumbIP, IndexPIP, MiddlePIP, RingPIP, PinkyPIP}
	mcps = [5]int{ThumbMCP, IndexMCP, MiddleMCP, RingMCP, PinkyMCP}

	chains = [5][5]int{
		{Wrist, ThumbCMC, ThumbMCP, ThumbIP, ThumbTip},
		{Wrist, IndexMCP, IndexPIP, IndexDIP, IndexTip},
		{Wrist, MiddleMCP, MiddlePIP, MiddleDIP, MiddleTip},
		{Wrist, RingMCP, RingPIP, RingDIP, RingTip},
		{Wrist, PinkyMCP, PinkyPIP, PinkyDIP, PinkyTip},
	}
)

// TipIndex returns the landmark index of a finger's tip.
func TipIndex(f Finger) int { return tips[f] }

// PipIndex returns the landmark index of a finger's PIP joint
// (the IP joint for the thumb).
func PipIndex(f Finger) int { return pips[f] }

// MCPIndex returns the landmark index of a finger's MCP joint.
func MCPIndex(f Finger) int { return mcps[f] }

// Chain returns the ordered wrist-to-tip landmark index chain for a finger.
// The first element is always the wrist.
func Chain(f Finger) [5]int { return chains[f] }

// PalmEdges lists the MCP-to-MCP connections that close the palm outline
// when drawn together with the finger chains. The wrist-to-MCP spokes are
// already part of the chains.
var PalmEdges = [3][2]int{
	{IndexMCP, MiddleMCP},
	{MiddleMCP, RingMCP},
	{RingMCP, PinkyMCP},
}

// fingerColors is an advisory color per finger for overlay drawing.
var fingerColors = [5]color.RGBA{
	{R: 255, G: 64, B: 64, A: 255},  // thumb
	{R: 255, G: 160, B: 0, A: 255},  // index
	{R: 64, G: 200, B: 64, A: 255},  // middle
	{R: 64, G: 128, B: 255, A: 255}, // ring
	{R: 200, G: 64, B: 255, A: 255}, // pinky
}

// FingerColor returns the advisory drawing color for a finger.
func FingerColor(f Finger) color.RGBA { return fingerColors[f] }
