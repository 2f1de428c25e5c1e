// Package config holds the runtime parameters shared between the frame
// pipeline and the control surfaces (HTTP API, tray).
package config

import (
	"sync"
	"time"
)

// Parameter bounds and defaults.
const (
	MinSensitivity = 0.5
	MaxSensitivity = 3.0
	MinScale       = 0.5
	MaxScale       = 2.0

	DefaultSensitivity     = 1.0
	DefaultScale           = 1.0
	DefaultClickThreshold  = 0.05
	DefaultSmoothingWindow = 5
)

// Snapshot is an immutable view of the runtime parameters, taken once at
// the start of each frame. The pipeline never reads shared state mid-frame,
// so the worst case under concurrent updates is a one-frame-stale value.
type Snapshot struct {
	Sensitivity     float64
	ScaleFactor     float64
	Tracking        bool
	Calibrating     bool
	SingleThreshold float64
	DoubleThreshold float64
	SmoothingWindow int
}

// Store is a thread-safe runtime parameter store. Setters clamp values to
// their documented ranges so a Snapshot always carries usable parameters.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot

	// calibratedAt records the last successful calibration. Readers on
	// different surfaces (status poll, WebSocket feed) each compare it
	// against what they last saw, so no reader can swallow the event.
	calibratedAt time.Time
}

// NewStore creates a Store with default parameters and tracking paused.
func NewStore() *Store {
	return &Store{
		snap: Snapshot{
			Sensitivity:     DefaultSensitivity,
			ScaleFactor:     DefaultScale,
			SingleThreshold: DefaultClickThreshold,
			DoubleThreshold: DefaultClickThreshold,
			SmoothingWindow: DefaultSmoothingWindow,
		},
	}
}

// Snapshot returns the current parameters by value.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// SetSensitivity sets the cursor sensitivity, clamped to [0.5, 3.0].
func (s *Store) SetSensitivity(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Sensitivity = clamp(v, MinSensitivity, MaxSensitivity)
}

// SetScaleFactor sets the calibration scale factor, clamped to [0.5, 2.0].
func (s *Store) SetScaleFactor(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.ScaleFactor = clamp(v, MinScale, MaxScale)
}

// SetTracking enables or disables cursor tracking. It reports whether the
// call transitioned tracking from active to paused, in which case the
// caller must reset the pointer controller.
func (s *Store) SetTracking(on bool) (paused bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	paused = s.snap.Tracking && !on
	s.snap.Tracking = on
	return paused
}

// SetCalibrating sets the calibration-requested flag.
func (s *Store) SetCalibrating(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Calibrating = on
}

// FinishCalibration stores a successful calibration result: it sets the
// scale factor, clears the calibrating flag, and records the success time.
func (s *Store) FinishCalibration(scale float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.ScaleFactor = clamp(scale, MinScale, MaxScale)
	s.snap.Calibrating = false
	s.calibratedAt = time.Now()
}

// CalibratedAt returns the time of the last successful calibration, or the
// zero time if none succeeded yet.
func (s *Store) CalibratedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.calibratedAt
}

// SetClickThresholds sets the single and double click distance thresholds.
// Non-positive values are ignored per threshold.
func (s *Store) SetClickThresholds(single, double float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if single > 0 {
		s.snap.SingleThreshold = single
	}
	if double > 0 {
		s.snap.DoubleThreshold = double
	}
}

// SetSmoothingWindow sets the moving-average window. Values below 1 are
// ignored.
func (s *Store) SetSmoothingWindow(n int) {
	if n < 1 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.SmoothingWindow = n
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
