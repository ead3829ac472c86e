package stream

import (
	"fmt"
	"net/http"
	"time"

	"gocv.io/x/gocv"

	hands "github.com/lauenborg/p5.hands"
	"github.com/lauenborg/p5.hands/capture"
	"github.com/lauenborg/p5.hands/draw"
)

// MJPEGHandler serves camera frames as an MJPEG stream, with the current
// hand skeletons overlaid when a session is available.
type MJPEGHandler struct {
	camera  capture.Camera
	session *hands.Session
}

// NewMJPEGHandler creates a handler for the given camera. The session may
// be nil to stream without overlay.
func NewMJPEGHandler(camera capture.Camera, session *hands.Session) *MJPEGHandler {
	return &MJPEGHandler{camera: camera, session: session}
}

// ServeHTTP streams MJPEG frames to connected clients.
func (h *MJPEGHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "multipart/x-mixed-replace; boundary=frame")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	for {
		select {
		case <-r.Context().Done():
			return
		default:
		}

		frame, err := h.camera.ReadFrame()
		if err != nil {
			time.Sleep(100 * time.Millisecond)
			continue
		}

		if h.session != nil {
			draw.Overlay(frame, h.session.Hands())
		}

		// Encode as JPEG
		buf, err := gocv.IMEncode(".jpg", *frame)
		frame.Close()
		if err != nil {
			continue
		}

		// Write MJPEG frame
		fmt.Fprintf(w, "--frame\r\n")
		fmt.Fprintf(w, "Content-Type: image/jpeg\r\n")
		fmt.Fprintf(w, "Content-Length: %d\r\n\r\n", buf.Len())
		w.Write(buf.GetBytes())
		fmt.Fprintf(w, "\r\n")
		buf.Close()

		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}

		time.Sleep(66 * time.Millisecond) // ~15 FPS
	}
}
