package detector

import "gocv.io/x/gocv"

// Detector defines the interface for hand detection implementations.
//
// Frames passed to Detect must already be horizontally mirrored by the
// capture layer; detectors do not flip. Returned landmark X coordinates
// are therefore in the mirrored (user-facing) frame, and the cursor
// mapper consumes them without further inversion. Feeding an unmirrored
// frame anywhere in the pipeline inverts cursor polarity.
type Detector interface {
	// Detect analyzes a video frame and returns the landmarks of the
	// most confident hand, or nil if no hand is detected.
	Detect(frame *gocv.Mat) (*HandLandmarks, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds configuration options for hand detection.
type Config struct {
	// MinConfidence is the minimum detection confidence threshold (0.0-1.0).
	MinConfidence float64

	// MinTrackingConf is the minimum tracking confidence threshold (0.0-1.0).
	MinTrackingConf float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		MinConfidence:   0.5,
		MinTrackingConf: 0.5,
	}
}
