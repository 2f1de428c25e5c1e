package app

import (
	"log"
	"time"

	"github.com/ricmed/mouse-control/internal/calib"
	"github.com/ricmed/mouse-control/internal/detector"
)

// runPipeline is the main loop that processes frames from the camera.
//
// Each tick:
//  1. Take a parameter snapshot; the rest of the frame never touches
//     shared state.
//  2. Motion detection gates the frame rate: idle at 5 FPS, active at
//     15 FPS, back to idle after 2 s without motion. A still scene skips
//     hand detection entirely.
//  3. Hand detection on the mirrored frame.
//  4. While the calibrating flag is set, attempt a scale estimate at most
//     once per 0.5 s; success stores the factor and clears the flag.
//  5. While tracking is active, run the pointer controller. A frame
//     without a hand is a transient gap, not a pause: controller state is
//     preserved.
func (a *App) runPipeline(stopCh chan struct{}) {
	activeMode := false
	lastMotionTime := time.Now()

	frameInterval := time.Second / time.Duration(IdleFPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			snap := a.params.Snapshot()

			frame, err := a.camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			motionDetected, _ := a.motion.Detect(frame)

			// A calibration pose is deliberately still; keep the
			// pipeline active while the flag is set.
			if motionDetected || snap.Calibrating {
				lastMotionTime = time.Now()

				if !activeMode {
					activeMode = true
					a.camera.SetFPS(ActiveFPS)
					frameInterval = time.Second / time.Duration(ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode && time.Since(lastMotionTime) > IdleTimeout {
				activeMode = false
				a.camera.SetFPS(IdleFPS)
				frameInterval = time.Second / time.Duration(IdleFPS)
				ticker.Reset(frameInterval)
				log.Println("Switched to idle mode")
			}

			if !activeMode {
				frame.Close()
				a.setLastHand(nil)
				continue
			}

			hand, err := a.Detector().Detect(frame)
			frame.Close()

			if err != nil {
				log.Printf("Error detecting hand: %v", err)
				continue
			}

			a.setLastHand(hand)

			if snap.Calibrating {
				a.tryCalibrate(hand)
			}

			if snap.Tracking {
				a.controller.Process(hand, snap)
			}
		}
	}
}

func (a *App) setLastHand(hand *detector.HandLandmarks) {
	a.mu.Lock()
	a.lastHand = hand
	a.mu.Unlock()
}

// tryCalibrate runs one debounced calibration attempt. A degenerate
// estimate leaves all state untouched so the user can adjust and retry;
// the calibrating flag auto-clears on the first success.
func (a *App) tryCalibrate(hand *detector.HandLandmarks) {
	if hand == nil {
		return
	}

	now := time.Now()
	if now.Sub(a.lastCalibration) < CalibrationDebounce {
		return
	}
	a.lastCalibration = now

	scale, ok := calib.EstimateScale(hand)
	if !ok {
		log.Println("Calibration unavailable: degenerate hand geometry")
		return
	}

	a.params.FinishCalibration(scale)
	log.Printf("Calibration complete: scale factor %.2f", scale)
}
