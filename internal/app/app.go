// Package app wires the capture, detection, and cursor pipeline together.
package app

import (
	"log"
	"sync"
	"time"

	"github.com/ricmed/mouse-control/internal/capture"
	"github.com/ricmed/mouse-control/internal/config"
	"github.com/ricmed/mouse-control/internal/cursor"
	"github.com/ricmed/mouse-control/internal/detector"
	"github.com/ricmed/mouse-control/internal/store"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate while no motion is detected.
	IdleFPS = 5
	// ActiveFPS is the frame rate during active tracking.
	ActiveFPS = 15
	// IdleTimeout is how long without motion before dropping back to idle.
	IdleTimeout = 2 * time.Second
	// CalibrationDebounce limits how often a calibration attempt runs
	// while the calibrating flag is set.
	CalibrationDebounce = 500 * time.Millisecond
)

// Config holds configuration options for the application.
type Config struct {
	Store        *store.Store
	Params       *config.Store
	Sink         cursor.Sink
	CameraID     int
	MotionThresh float64
}

// Status is a point-in-time view of the pipeline for the UI layer.
type Status struct {
	Tracking     bool             `json:"tracking"`
	Calibrating  bool             `json:"calibrating"`
	CalibratedAt int64            `json:"calibrated_at,omitempty"`
	ScaleFactor  float64          `json:"scale_factor"`
	Sensitivity  float64          `json:"sensitivity"`
	HandVisible  bool             `json:"hand_visible"`
	Wrist        *cursor.Position `json:"wrist,omitempty"`
	LastClick    string           `json:"last_click,omitempty"`
	LastClickAt  int64            `json:"last_click_at,omitempty"`
	Timestamp    int64            `json:"timestamp"`
}

// App runs the per-frame pipeline and owns the camera, detector, and
// pointer controller.
type App struct {
	config     Config
	params     *config.Store
	camera     capture.Camera
	motion     *capture.MotionDetector
	detector   detector.Detector
	controller *cursor.Controller

	mu       sync.Mutex
	stopCh   chan struct{}
	lastHand *detector.HandLandmarks

	lastCalibration time.Time
}

// New creates a new App instance with the given configuration.
func New(cfg Config) *App {
	motionThreshold := cfg.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // Default threshold: 1% pixel change
	}

	params := cfg.Params
	if params == nil {
		params = config.NewStore()
	}

	a := &App{
		config:     cfg,
		params:     params,
		camera:     capture.NewCamera(cfg.CameraID),
		motion:     capture.NewMotionDetector(motionThreshold),
		controller: cursor.NewController(cfg.Sink),
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// Params returns the runtime parameter store.
func (a *App) Params() *config.Store {
	return a.params
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.detector
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetCamera sets the camera implementation to use. Must be called before
// Start.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// SetTracking resumes or pauses cursor tracking. Pausing resets the
// pointer controller so no stale smoothing history or click latch leaks
// into the next active session.
func (a *App) SetTracking(on bool) {
	if paused := a.params.SetTracking(on); paused {
		a.controller.Reset()
		log.Println("Tracking paused, controller reset")
	}
}

// RequestCalibration raises the calibrating flag; the pipeline performs
// the estimate on the next frame with a visible hand.
func (a *App) RequestCalibration() {
	a.params.SetCalibrating(true)
}

// Status returns the current pipeline status for the UI layer.
func (a *App) Status() Status {
	snap := a.params.Snapshot()

	a.mu.Lock()
	hand := a.lastHand
	a.mu.Unlock()

	st := Status{
		Tracking:    snap.Tracking,
		Calibrating: snap.Calibrating,
		ScaleFactor: snap.ScaleFactor,
		Sensitivity: snap.Sensitivity,
		HandVisible: hand != nil,
		Timestamp:   time.Now().UnixMilli(),
	}

	if at := a.params.CalibratedAt(); !at.IsZero() {
		st.CalibratedAt = at.UnixMilli()
	}

	if hand != nil {
		wrist := hand.Landmark(detector.Wrist)
		st.Wrist = &cursor.Position{X: wrist.X, Y: wrist.Y}
	}

	if kind, at := a.controller.LastClick(); kind != "" {
		st.LastClick = kind
		st.LastClickAt = at.UnixMilli()
	}

	return st
}

// LoadSettings applies persisted tuning parameters to the runtime store.
// Missing settings keep their defaults. The calibration scale factor is
// never persisted, so every session starts at 1.0 until recalibrated.
func (a *App) LoadSettings() {
	if a.config.Store == nil {
		return
	}

	settings := a.config.Store.Settings()
	a.params.SetSensitivity(settings.GetFloat(store.KeySensitivity, config.DefaultSensitivity))
	a.params.SetClickThresholds(
		settings.GetFloat(store.KeySingleThreshold, config.DefaultClickThreshold),
		settings.GetFloat(store.KeyDoubleThreshold, config.DefaultClickThreshold),
	)
	a.params.SetSmoothingWindow(settings.GetInt(store.KeySmoothingWindow, config.DefaultSmoothingWindow))
}

// SaveSettings persists the current tuning parameters.
func (a *App) SaveSettings() error {
	if a.config.Store == nil {
		return nil
	}

	snap := a.params.Snapshot()
	settings := a.config.Store.Settings()

	if err := settings.SetFloat(store.KeySensitivity, snap.Sensitivity); err != nil {
		return err
	}
	if err := settings.SetFloat(store.KeySingleThreshold, snap.SingleThreshold); err != nil {
		return err
	}
	if err := settings.SetFloat(store.KeyDoubleThreshold, snap.DoubleThreshold); err != nil {
		return err
	}
	return settings.SetInt(store.KeySmoothingWindow, snap.SmoothingWindow)
}

// ApplyProfile applies a stored profile to the runtime parameters.
func (a *App) ApplyProfile(p *store.Profile) {
	a.params.SetSensitivity(p.Sensitivity)
	a.params.SetClickThresholds(p.SingleThreshold, p.DoubleThreshold)
	a.params.SetSmoothingWindow(p.SmoothingWindow)
}

// Start begins the detection pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}

	a.camera.SetFPS(IdleFPS)

	a.stopCh = make(chan struct{})
	go a.runPipeline(a.stopCh)

	log.Println("Tracking pipeline started")
	return nil
}

// Stop halts the detection pipeline and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.motion.Close()

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Tracking pipeline stopped")
}
