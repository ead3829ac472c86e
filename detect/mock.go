package detect

import (
	"gocv.io/x/gocv"

	"github.com/lauenborg/p5.hands/landmark"
)

// Mock is a test implementation of the Detector interface. It allows tests
// to control the detection results.
type Mock struct {
	hands landmark.HandSet
	err   error
}

// NewMock creates a new Mock detector instance.
func NewMock() *Mock {
	return &Mock{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *Mock) SetHands(hands landmark.HandSet) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *Mock) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *Mock) Detect(frame *gocv.Mat) (landmark.HandSet, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *Mock) Close() error {
	return nil
}
