package config

import "testing"

func TestStore_Defaults(t *testing.T) {
	s := NewStore()
	snap := s.Snapshot()

	if snap.Sensitivity != 1.0 {
		t.Errorf("Sensitivity = %v, want 1.0", snap.Sensitivity)
	}
	if snap.ScaleFactor != 1.0 {
		t.Errorf("ScaleFactor = %v, want 1.0", snap.ScaleFactor)
	}
	if snap.Tracking {
		t.Error("Tracking = true, want paused by default")
	}
	if snap.SingleThreshold != 0.05 || snap.DoubleThreshold != 0.05 {
		t.Errorf("thresholds = (%v, %v), want (0.05, 0.05)", snap.SingleThreshold, snap.DoubleThreshold)
	}
	if snap.SmoothingWindow != 5 {
		t.Errorf("SmoothingWindow = %d, want 5", snap.SmoothingWindow)
	}
}

func TestStore_SensitivityClamped(t *testing.T) {
	s := NewStore()

	s.SetSensitivity(10)
	if got := s.Snapshot().Sensitivity; got != MaxSensitivity {
		t.Errorf("Sensitivity = %v, want clamp to %v", got, MaxSensitivity)
	}

	s.SetSensitivity(0.1)
	if got := s.Snapshot().Sensitivity; got != MinSensitivity {
		t.Errorf("Sensitivity = %v, want clamp to %v", got, MinSensitivity)
	}
}

func TestStore_SetTracking_ReportsPause(t *testing.T) {
	s := NewStore()

	if paused := s.SetTracking(true); paused {
		t.Error("paused reported on resume")
	}
	if paused := s.SetTracking(true); paused {
		t.Error("paused reported on no-op resume")
	}
	if paused := s.SetTracking(false); !paused {
		t.Error("pause transition not reported")
	}
	if paused := s.SetTracking(false); paused {
		t.Error("paused reported on no-op pause")
	}
}

func TestStore_CalibrationLifecycle(t *testing.T) {
	s := NewStore()

	if !s.CalibratedAt().IsZero() {
		t.Error("CalibratedAt() non-zero before any calibration")
	}

	s.SetCalibrating(true)
	s.FinishCalibration(1.7)

	snap := s.Snapshot()
	if snap.ScaleFactor != 1.7 {
		t.Errorf("ScaleFactor = %v, want 1.7", snap.ScaleFactor)
	}
	if snap.Calibrating {
		t.Error("Calibrating still set after FinishCalibration")
	}

	// The success time is stable under repeated reads, so one status
	// surface can never consume the event before another reads it.
	first := s.CalibratedAt()
	if first.IsZero() {
		t.Fatal("CalibratedAt() zero after FinishCalibration")
	}
	if second := s.CalibratedAt(); !second.Equal(first) {
		t.Errorf("CalibratedAt() changed between reads: %v then %v", first, second)
	}
}

func TestStore_FinishCalibrationClampsScale(t *testing.T) {
	s := NewStore()
	s.FinishCalibration(9)

	if got := s.Snapshot().ScaleFactor; got != MaxScale {
		t.Errorf("ScaleFactor = %v, want clamp to %v", got, MaxScale)
	}
}

func TestStore_ClickThresholds(t *testing.T) {
	s := NewStore()

	s.SetClickThresholds(0.08, 0)
	snap := s.Snapshot()
	if snap.SingleThreshold != 0.08 {
		t.Errorf("SingleThreshold = %v, want 0.08", snap.SingleThreshold)
	}
	if snap.DoubleThreshold != DefaultClickThreshold {
		t.Errorf("DoubleThreshold = %v, want unchanged default", snap.DoubleThreshold)
	}
}
