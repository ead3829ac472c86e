package capture

import (
	"errors"
	"image"
	"sync"

	"github.com/disintegration/gift"
	"gocv.io/x/gocv"
)

// ReplayOptions configures frame preprocessing for a ReplayCamera.
type ReplayOptions struct {
	// Loop restarts playback from the first frame after the last.
	Loop bool
	// Flip mirrors frames horizontally, matching a selfie-view webcam.
	Flip bool
	// Width and Height resize frames to the capture size; zero leaves the
	// source size untouched.
	Width  int
	Height int
}

// ReplayCamera plays back a fixed sequence of images as camera frames,
// for tests and file-based sources. Preprocessing (mirror flip, resize)
// runs through a gift filter pipeline before conversion to a Mat.
type ReplayCamera struct {
	frames  []image.Image
	filter  *gift.GIFT
	index   int
	loop    bool
	mu      sync.Mutex
	running bool
	fps     int
}

// NewReplayCamera creates a ReplayCamera over the given frames.
func NewReplayCamera(frames []image.Image, opts ReplayOptions) *ReplayCamera {
	g := gift.New()
	if opts.Width > 0 && opts.Height > 0 {
		g.Add(gift.Resize(opts.Width, opts.Height, gift.LinearResampling))
	}
	if opts.Flip {
		g.Add(gift.FlipHorizontal())
	}
	return &ReplayCamera{
		frames: frames,
		filter: g,
		loop:   opts.Loop,
		fps:    DefaultFPS,
	}
}

// Open starts playback from the first frame.
func (c *ReplayCamera) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = true
	c.index = 0
	return nil
}

// Close stops playback.
func (c *ReplayCamera) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false
	return nil
}

// ReadFrame returns the next frame, preprocessed and converted to a Mat.
// The caller is responsible for closing the returned Mat.
func (c *ReplayCamera) ReadFrame() (*gocv.Mat, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return nil, ErrCameraNotOpen
	}
	if len(c.frames) == 0 {
		return nil, errors.New("no frames available")
	}
	if c.index >= len(c.frames) {
		if !c.loop {
			return nil, errors.New("no more frames")
		}
		c.index = 0
	}

	src := c.frames[c.index]
	c.index++

	dst := image.NewRGBA(c.filter.Bounds(src.Bounds()))
	c.filter.Draw(dst, src)

	mat, err := gocv.ImageToMatRGBA(dst)
	if err != nil {
		return nil, err
	}
	return &mat, nil
}

// SetFPS sets the nominal frame rate; playback itself is caller-paced.
func (c *ReplayCamera) SetFPS(fps int) {
	if fps <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fps = fps
}

// FPS returns the nominal frame rate.
func (c *ReplayCamera) FPS() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fps
}

// IsOpen returns true while playback is running.
func (c *ReplayCamera) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Reset restarts playback from the beginning.
func (c *ReplayCamera) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = 0
}
