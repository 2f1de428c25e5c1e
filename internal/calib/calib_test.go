package calib

import (
	"math"
	"testing"

	"github.com/ricmed/mouse-control/internal/detector"
)

// handWithReferenceDistance builds a hand whose wrist-to-middle-MCP
// distance equals d.
func handWithReferenceDistance(d float64) *detector.HandLandmarks {
	h := detector.OpenHandLandmarks()
	wrist := h.Points[detector.Wrist]
	h.Points[detector.MiddleMCP] = detector.Point3D{X: wrist.X, Y: wrist.Y - d, Z: 0}
	return &h
}

func TestEstimateScale_ReferencePose(t *testing.T) {
	scale, ok := EstimateScale(handWithReferenceDistance(0.15))
	if !ok {
		t.Fatal("EstimateScale() not ok for reference pose")
	}
	if math.Abs(scale-1.0) > 1e-9 {
		t.Errorf("scale = %v, want 1.0 at reference distance", scale)
	}
}

func TestEstimateScale_ClampedHigh(t *testing.T) {
	// Hand far from camera: half the reference distance would give 2.0,
	// and anything smaller still clamps to 2.0.
	scale, ok := EstimateScale(handWithReferenceDistance(0.075))
	if !ok {
		t.Fatal("EstimateScale() not ok")
	}
	if scale != 2.0 {
		t.Errorf("scale = %v, want 2.0", scale)
	}

	scale, _ = EstimateScale(handWithReferenceDistance(0.01))
	if scale != 2.0 {
		t.Errorf("scale = %v, want clamp to 2.0", scale)
	}
}

func TestEstimateScale_ClampedLow(t *testing.T) {
	scale, ok := EstimateScale(handWithReferenceDistance(0.3))
	if !ok {
		t.Fatal("EstimateScale() not ok")
	}
	if scale != 0.5 {
		t.Errorf("scale = %v, want 0.5", scale)
	}
}

func TestEstimateScale_DegenerateGeometry(t *testing.T) {
	if _, ok := EstimateScale(handWithReferenceDistance(0)); ok {
		t.Error("EstimateScale() ok for zero reference distance, want unavailable")
	}
}

func TestEstimateScale_NoHand(t *testing.T) {
	if _, ok := EstimateScale(nil); ok {
		t.Error("EstimateScale(nil) ok, want unavailable")
	}
}
