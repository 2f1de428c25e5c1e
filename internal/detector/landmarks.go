// Package detector provides hand detection interfaces and landmark types for cursor control.
package detector

import "math"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D represents a landmark position in normalized image coordinates.
// X and Y are in [0,1]; Z is the MediaPipe depth estimate and is not used
// by the cursor pipeline.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks represents the 21 hand landmarks detected for a single hand.
// The capture layer mirrors every frame before detection, so X coordinates
// are already in user-facing orientation (see Detector).
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
}

// Landmark returns the landmark at the given index, or nil if the
// receiver is nil or the index is out of range.
func (h *HandLandmarks) Landmark(i int) *Point3D {
	if h == nil || i < 0 || i >= NumLandmarks {
		return nil
	}
	return &h.Points[i]
}

// Distance returns the Euclidean distance between the (x, y) projections
// of two landmarks. An absent landmark is treated as infinitely far, so
// the result never satisfies a below-threshold comparison.
func Distance(a, b *Point3D) float64 {
	if a == nil || b == nil {
		return math.Inf(1)
	}
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
