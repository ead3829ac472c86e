package detect

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"gocv.io/x/gocv"

	"github.com/lauenborg/p5.hands/landmark"
)

// MediaPipe implements Detector using a Python MediaPipe subprocess.
// Frames are shipped as length-prefixed JPEG; results come back as one
// JSON line per frame with normalized landmark coordinates, which are
// scaled to the frame's pixel dimensions here.
type MediaPipe struct {
	config    Config
	cmd       *exec.Cmd
	stdin     io.WriteCloser
	stdout    *bufio.Reader
	mu        sync.Mutex
	started   bool
	lastUsed  time.Time
	idleTimer *time.Timer
}

// NewMediaPipe creates a new MediaPipe detector. The Python process is
// started lazily on first detection.
func NewMediaPipe(config Config) (*MediaPipe, error) {
	if findServiceScript() == "" {
		return nil, fmt.Errorf("handpose_service.py not found")
	}
	return &MediaPipe{config: config}, nil
}

// Detect analyzes a frame and returns the detected hands in pixel space.
func (d *MediaPipe) Detect(frame *gocv.Mat) (landmark.HandSet, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.ensureStarted(); err != nil {
		return nil, err
	}

	// Encode frame as JPEG
	buf, err := gocv.IMEncode(".jpg", *frame)
	if err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	defer buf.Close()

	data := buf.GetBytes()

	// Write length (4 bytes big-endian) + data
	length := make([]byte, 4)
	binary.BigEndian.PutUint32(length, uint32(len(data)))

	if _, err := d.stdin.Write(length); err != nil {
		return nil, fmt.Errorf("write length: %w", err)
	}
	if _, err := d.stdin.Write(data); err != nil {
		return nil, fmt.Errorf("write data: %w", err)
	}

	// Read JSON response
	line, err := d.stdout.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var response struct {
		Hands []jsonHand `json:"hands"`
	}
	if err := json.Unmarshal([]byte(line), &response); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	width := float64(frame.Cols())
	height := float64(frame.Rows())

	hands := make(landmark.HandSet, 0, len(response.Hands))
	for _, h := range response.Hands {
		hands = append(hands, h.toHand(width, height))
	}

	d.lastUsed = time.Now()
	d.resetIdleTimer()

	return hands, nil
}

// Close shuts down the Python process.
func (d *MediaPipe) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shutdown()
}

func (d *MediaPipe) ensureStarted() error {
	if d.started {
		return nil
	}

	scriptPath := findServiceScript()
	if scriptPath == "" {
		return fmt.Errorf("handpose_service.py not found")
	}

	// Use virtual environment Python if available
	pythonPath := findVenvPython()
	if pythonPath == "" {
		pythonPath = "python3"
	}

	d.cmd = exec.Command(pythonPath, scriptPath)

	stdin, err := d.cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("create stdin pipe: %w", err)
	}

	stdout, err := d.cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("create stdout pipe: %w", err)
	}

	// Capture stderr for debugging
	d.cmd.Stderr = os.Stderr

	if err := d.cmd.Start(); err != nil {
		return fmt.Errorf("start handpose service: %w", err)
	}

	d.stdin = stdin
	d.stdout = bufio.NewReader(stdout)

	// First message is the detector configuration.
	cfg, err := json.Marshal(map[string]any{
		"max_hands":         d.config.MaxHands,
		"model":             d.config.Model,
		"min_confidence":    d.config.MinConfidence,
		"min_tracking_conf": d.config.MinTrackingConf,
	})
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if _, err := d.stdin.Write(append(cfg, '\n')); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	d.started = true
	d.lastUsed = time.Now()

	return nil
}

func (d *MediaPipe) shutdown() error {
	if !d.started {
		return nil
	}

	if d.idleTimer != nil {
		d.idleTimer.Stop()
		d.idleTimer = nil
	}

	if d.stdin != nil {
		d.stdin.Close()
	}

	err := d.cmd.Wait()
	d.started = false
	d.cmd = nil
	d.stdin = nil
	d.stdout = nil

	return err
}

func (d *MediaPipe) resetIdleTimer() {
	if d.idleTimer != nil {
		d.idleTimer.Stop()
	}
	d.idleTimer = time.AfterFunc(30*time.Second, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		d.shutdown()
	})
}

func findServiceScript() string {
	// Get executable directory
	execPath, err := os.Executable()
	var execDir string
	if err == nil {
		execDir = filepath.Dir(execPath)
	}

	candidates := []string{
		"scripts/handpose_service.py",
		"../scripts/handpose_service.py",
		filepath.Join(execDir, "scripts/handpose_service.py"),
		filepath.Join(os.Getenv("HOME"), ".handtrack/scripts/handpose_service.py"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				return absPath
			}
			return path
		}
	}
	return ""
}

// findVenvPython looks for a Python interpreter in a virtual environment.
func findVenvPython() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}
	execDir := filepath.Dir(execPath)

	candidates := []string{
		"venv/bin/python",
		"../venv/bin/python",
		filepath.Join(execDir, "venv/bin/python"),
		filepath.Join(os.Getenv("HOME"), ".handtrack/venv/bin/python"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				return absPath
			}
			return path
		}
	}
	return ""
}

// jsonHand represents the JSON structure from the Python service. A null
// point entry means that joint was not localized.
type jsonHand struct {
	Points     []*jsonPoint `json:"points"`
	Handedness string       `json:"handedness"`
	Score      float64      `json:"score"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (h jsonHand) toHand(width, height float64) *landmark.Hand {
	hand := &landmark.Hand{
		Handedness: landmark.Handedness(h.Handedness),
		Score:      h.Score,
	}
	for i := 0; i < landmark.NumLandmarks && i < len(h.Points); i++ {
		if h.Points[i] == nil {
			continue
		}
		hand.SetPoint(i, h.Points[i].X*width, h.Points[i].Y*height)
	}
	return hand
}
