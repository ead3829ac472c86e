package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	hands "github.com/lauenborg/p5.hands"
	"github.com/lauenborg/p5.hands/capture"
	"github.com/lauenborg/p5.hands/detect"
	"github.com/lauenborg/p5.hands/pipeline"
	"github.com/lauenborg/p5.hands/record"
	"github.com/lauenborg/p5.hands/stream"
)

func main() {
	var (
		addr      = flag.String("addr", ":8080", "HTTP listen address")
		cameraID  = flag.Int("camera", 0, "camera device ID")
		fps       = flag.Int("fps", pipeline.DefaultFPS, "detection frame rate")
		flipped   = flag.Bool("flipped", false, "mirror the camera horizontally")
		smoothing = flag.Float64("smoothing", 0.3, "temporal smoothing factor [0,1]")
		model     = flag.String("model", "full", "landmark model: full or lite")
		dbPath    = flag.String("db", "", "event database path (default ~/.handtrack/handtrack.db)")
	)
	flag.Parse()

	fmt.Println("handtrack - hand tracking and gesture queries")

	// Initialize the event store
	path := *dbPath
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Failed to get home directory: %v", err)
		}
		dir := filepath.Join(homeDir, ".handtrack")
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create data directory: %v", err)
		}
		path = filepath.Join(dir, "handtrack.db")
	}
	st, err := record.New(path)
	if err != nil {
		log.Fatalf("Failed to initialize event store: %v", err)
	}
	defer st.Close()

	cfg := hands.DefaultConfig()
	cfg.Flipped = *flipped
	cfg.Smoothing = *smoothing
	cfg.Model = hands.ModelType(*model)
	session := hands.New(cfg)

	// Try MediaPipe first, fall back to the mock detector
	var det detect.Detector
	dcfg := detect.DefaultConfig()
	dcfg.MaxHands = cfg.MaxHands
	dcfg.Model = string(cfg.Model)
	if mp, err := detect.NewMediaPipe(dcfg); err == nil {
		det = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		det = detect.NewMock()
	}

	camera := capture.NewCamera(*cameraID, cfg.Width, cfg.Height)
	hub := stream.NewHub()

	tray := newTray()

	runner := pipeline.New(pipeline.Config{
		Camera:   camera,
		Detector: det,
		Session:  session,
		FPS:      *fps,
		Store:    st,
		Hub:      hub,
		OnEvent: func(e pipeline.Event) {
			log.Printf("Gesture: %s (%s)", e.Gesture, e.Handedness)
			tray.SetLastGesture(e.Gesture)
		},
	})
	if err := runner.Start(); err != nil {
		log.Fatalf("Failed to start pipeline: %v", err)
	}
	defer runner.Stop()

	srv := stream.New(stream.Config{
		Session: session,
		Camera:  camera,
		Store:   st,
		Hub:     hub,
	})
	go func() {
		fmt.Printf("Serving tracking API on %s\n", *addr)
		if err := srv.ListenAndServe(*addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	tray.OnToggle(runner.SetEnabled)
	tray.Run() // blocks until quit
}
