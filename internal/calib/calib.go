// Package calib estimates the camera-distance scale factor from hand geometry.
package calib

import (
	"math"

	"github.com/ricmed/mouse-control/internal/detector"
)

// Calibration constants.
const (
	// ReferenceDistance is the expected normalized wrist-to-middle-MCP
	// distance at the designed calibration pose (~30 cm from the camera).
	ReferenceDistance = 0.15
	// MinScale and MaxScale bound the estimated scale factor.
	MinScale = 0.5
	MaxScale = 2.0
)

// EstimateScale derives a scale factor from the distance between the wrist
// and the base of the middle finger. A hand farther from the camera appears
// smaller, shrinking that distance and raising the scale factor, which the
// coordinate mapper uses to compensate for the reduced apparent movement.
//
// The second return value is false when no hand is present or the reference
// distance is degenerate (zero or infinite). The function is pure; the
// caller owns the calibrating flag, its debounce, and persistence of the
// returned value.
func EstimateScale(h *detector.HandLandmarks) (float64, bool) {
	if h == nil {
		return 0, false
	}

	d := detector.Distance(h.Landmark(detector.Wrist), h.Landmark(detector.MiddleMCP))
	if d == 0 || math.IsInf(d, 1) {
		return 0, false
	}

	scale := ReferenceDistance / d
	if scale < MinScale {
		scale = MinScale
	} else if scale > MaxScale {
		scale = MaxScale
	}

	return scale, true
}
