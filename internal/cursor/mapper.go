// Package cursor implements the signal-processing pipeline that turns hand
// landmarks into cursor motion and click events.
package cursor

import "github.com/ricmed/mouse-control/internal/detector"

// ControlMargin is the fraction of the frame excluded on each side; only
// the central 80% of the camera frame acts as the control area, so the
// cursor can reach the screen edges without the hand leaving the frame.
const ControlMargin = 0.1

// MapToCursor transforms a landmark in normalized image coordinates into a
// normalized cursor position.
//
// The central 80% of the frame is remapped linearly onto [0,1], then each
// axis is amplified about the center by the calibration scale factor and
// the user sensitivity, and finally clamped to [0,1]. The result is always
// a valid point in the unit square; conversion to screen pixels is the
// sink's concern.
//
// The landmark X coordinate must come from a mirrored frame (see
// detector.Detector); no inversion happens here.
func MapToCursor(p *detector.Point3D, sensitivity, scaleFactor float64) (x, y float64) {
	x = mapAxis(p.X, sensitivity, scaleFactor)
	y = mapAxis(p.Y, sensitivity, scaleFactor)
	return x, y
}

func mapAxis(v, sensitivity, scaleFactor float64) float64 {
	v = (v - ControlMargin) / (1 - 2*ControlMargin)
	v = (v-0.5)*scaleFactor*sensitivity + 0.5
	return clamp01(v)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
