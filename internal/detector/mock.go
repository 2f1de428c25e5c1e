package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hand *HandLandmarks
	err  error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHand sets the hand that will be returned by Detect.
// Pass nil to simulate a frame with no detection.
func (m *MockDetector) SetHand(hand *HandLandmarks) {
	m.hand = hand
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hand or error.
func (m *MockDetector) Detect(frame *gocv.Mat) (*HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hand, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// OpenHandLandmarks returns a preset HandLandmarks representing an open hand
// centered in the frame, all fingers spread. The wrist-to-middle-MCP
// distance is exactly 0.15, the calibration reference pose.
func OpenHandLandmarks() HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	// Wrist at frame center, palm pointing up
	landmarks.Points[Wrist] = Point3D{X: 0.5, Y: 0.65, Z: 0.0}

	// Thumb extended to the side
	landmarks.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.62, Z: 0.02}
	landmarks.Points[ThumbMCP] = Point3D{X: 0.60, Y: 0.58, Z: 0.03}
	landmarks.Points[ThumbIP] = Point3D{X: 0.64, Y: 0.54, Z: 0.03}
	landmarks.Points[ThumbTip] = Point3D{X: 0.68, Y: 0.50, Z: 0.03}

	// Index finger extended upward
	landmarks.Points[IndexMCP] = Point3D{X: 0.54, Y: 0.52, Z: 0.0}
	landmarks.Points[IndexPIP] = Point3D{X: 0.55, Y: 0.44, Z: 0.0}
	landmarks.Points[IndexDIP] = Point3D{X: 0.56, Y: 0.38, Z: 0.0}
	landmarks.Points[IndexTip] = Point3D{X: 0.56, Y: 0.32, Z: 0.0}

	// Middle finger extended upward; MCP sits 0.15 above the wrist
	landmarks.Points[MiddleMCP] = Point3D{X: 0.5, Y: 0.50, Z: 0.0}
	landmarks.Points[MiddlePIP] = Point3D{X: 0.5, Y: 0.42, Z: 0.0}
	landmarks.Points[MiddleDIP] = Point3D{X: 0.5, Y: 0.34, Z: 0.0}
	landmarks.Points[MiddleTip] = Point3D{X: 0.5, Y: 0.26, Z: 0.0}

	// Ring finger extended upward
	landmarks.Points[RingMCP] = Point3D{X: 0.46, Y: 0.52, Z: 0.0}
	landmarks.Points[RingPIP] = Point3D{X: 0.45, Y: 0.44, Z: 0.0}
	landmarks.Points[RingDIP] = Point3D{X: 0.44, Y: 0.38, Z: 0.0}
	landmarks.Points[RingTip] = Point3D{X: 0.44, Y: 0.32, Z: 0.0}

	// Pinky finger extended upward
	landmarks.Points[PinkyMCP] = Point3D{X: 0.42, Y: 0.55, Z: 0.0}
	landmarks.Points[PinkyPIP] = Point3D{X: 0.40, Y: 0.48, Z: 0.0}
	landmarks.Points[PinkyDIP] = Point3D{X: 0.39, Y: 0.43, Z: 0.0}
	landmarks.Points[PinkyTip] = Point3D{X: 0.38, Y: 0.38, Z: 0.0}

	return landmarks
}

// PinchLandmarks returns an open hand with the two given fingertips moved
// so that their 2-D distance equals gap. Used to synthesize click gestures.
func PinchLandmarks(a, b int, gap float64) HandLandmarks {
	landmarks := OpenHandLandmarks()

	// Place both tips on a horizontal segment centered between their
	// original positions.
	midX := (landmarks.Points[a].X + landmarks.Points[b].X) / 2
	midY := (landmarks.Points[a].Y + landmarks.Points[b].Y) / 2

	landmarks.Points[a] = Point3D{X: midX - gap/2, Y: midY, Z: landmarks.Points[a].Z}
	landmarks.Points[b] = Point3D{X: midX + gap/2, Y: midY, Z: landmarks.Points[b].Z}

	return landmarks
}

// TranslateLandmarks returns a copy of h with every point shifted by
// (dx, dy). Used to synthesize hand movement across frames.
func TranslateLandmarks(h HandLandmarks, dx, dy float64) HandLandmarks {
	for i := range h.Points {
		h.Points[i].X += dx
		h.Points[i].Y += dy
	}
	return h
}
