package hands

import (
	"strings"

	"github.com/lauenborg/p5.hands/landmark"
)

// Side selects which detected hand a query applies to.
type Side string

const (
	// SideDefault asks for the right hand but falls back to a lone hand of
	// either side when only one hand is in frame.
	SideDefault Side = ""
	// SideLeft and SideRight are strict: they never answer with a hand of
	// the other side.
	SideLeft  Side = "left"
	SideRight Side = "right"
	// SideAny and SideFirst both return the first hand in detector order.
	SideAny   Side = "any"
	SideFirst Side = "first"
)

// ParseSide converts a user-supplied side token to a Side. Matching is
// case-insensitive and accepts the "l"/"r" abbreviations. An empty token is
// the default side.
func ParseSide(tok string) (Side, bool) {
	switch strings.ToLower(strings.TrimSpace(tok)) {
	case "":
		return SideDefault, true
	case "left", "l":
		return SideLeft, true
	case "right", "r":
		return SideRight, true
	case "any":
		return SideAny, true
	case "first":
		return SideFirst, true
	}
	return SideDefault, false
}

// HandRef identifies the hand a query applies to: either a side token
// resolved against the current frame, or a concrete hand passed through
// unchanged. The zero value is the default side.
type HandRef struct {
	side    Side
	hand    *landmark.Hand
	invalid bool
}

// Common side references.
var (
	Default = HandRef{}
	Left    = HandRef{side: SideLeft}
	Right   = HandRef{side: SideRight}
	Any     = HandRef{side: SideAny}
	First   = HandRef{side: SideFirst}
)

// BySide returns a reference for a Side.
func BySide(s Side) HandRef { return HandRef{side: s} }

// Token parses a user-supplied side token into a reference. An
// unrecognized token yields a reference that never resolves.
func Token(tok string) HandRef {
	side, ok := ParseSide(tok)
	if !ok {
		return HandRef{invalid: true}
	}
	return HandRef{side: side}
}

// Of wraps an already-resolved hand. Resolving it returns the hand
// unchanged, so downstream helpers accept either a token or a concrete
// hand transparently.
func Of(h *landmark.Hand) HandRef { return HandRef{hand: h} }

// Resolve picks the hand the reference denotes from the current frame, or
// nil if no hand matches.
//
// Explicit "left"/"right" is strict: if no hand of that side is in frame
// the result is nil even when a lone hand of the other side is present.
// The default (omitted) side is lenient: it prefers the right hand but
// answers with a lone hand of either side. This asymmetry is deliberate
// and load-bearing; see the resolver tests.
func (s *Session) Resolve(ref HandRef) *landmark.Hand {
	if ref.hand != nil {
		return ref.hand
	}
	if ref.invalid {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return resolveSide(ref.side, s.activeLocked())
}

func resolveSide(side Side, set landmark.HandSet) *landmark.Hand {
	if len(set) == 0 {
		return nil
	}
	switch side {
	case SideAny, SideFirst:
		return set[0]
	case SideLeft:
		return set.ByHandedness(landmark.Left)
	case SideRight:
		return set.ByHandedness(landmark.Right)
	default:
		if h := set.ByHandedness(landmark.Right); h != nil {
			return h
		}
		if len(set) == 1 {
			return set[0]
		}
		return nil
	}
}

// GetHand resolves a side token string directly; a convenience for callers
// holding user input rather than a HandRef.
func (s *Session) GetHand(tok string) *landmark.Hand {
	return s.Resolve(Token(tok))
}
