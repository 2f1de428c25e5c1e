package cursor

import (
	"testing"
	"time"

	"github.com/ricmed/mouse-control/internal/detector"
)

// handWithGap builds a hand whose thumb-to-middle and thumb-to-index tip
// distances equal gap for the detector pair under test.
func handWithGap(pairA, pairB int, gap float64) *detector.HandLandmarks {
	h := detector.PinchLandmarks(pairA, pairB, gap)
	return &h
}

func TestClickDetector_FiresOncePerCrossing(t *testing.T) {
	d := newClickDetector(detector.ThumbTip, detector.MiddleTip, 0)
	threshold := 0.05

	// The sequence [0.1, 0.1, 0.03, 0.03, 0.1] must fire exactly one
	// click, on the third sample.
	gaps := []float64{0.1, 0.1, 0.03, 0.03, 0.1}
	var fires []int
	for i, gap := range gaps {
		if d.process(handWithGap(detector.ThumbTip, detector.MiddleTip, gap), threshold) {
			fires = append(fires, i)
		}
	}

	if len(fires) != 1 || fires[0] != 2 {
		t.Errorf("fires at samples %v, want exactly one fire at sample 2", fires)
	}
}

func TestClickDetector_RefiresAfterRelease(t *testing.T) {
	d := newClickDetector(detector.ThumbTip, detector.MiddleTip, 0)

	gaps := []float64{0.03, 0.1, 0.03}
	count := 0
	for _, gap := range gaps {
		if d.process(handWithGap(detector.ThumbTip, detector.MiddleTip, gap), 0.05) {
			count++
		}
	}

	if count != 2 {
		t.Errorf("fired %d times, want 2 (one per crossing)", count)
	}
}

func TestClickDetector_AbsentHandReleasesLatch(t *testing.T) {
	d := newClickDetector(detector.ThumbTip, detector.MiddleTip, 0)

	if !d.process(handWithGap(detector.ThumbTip, detector.MiddleTip, 0.03), 0.05) {
		t.Fatal("expected fire on first pinch")
	}

	// Hand lost: infinite distance forces the latch back to IDLE.
	if d.process(nil, 0.05) {
		t.Error("fired on absent hand")
	}

	if !d.process(handWithGap(detector.ThumbTip, detector.MiddleTip, 0.03), 0.05) {
		t.Error("expected fire after tracking gap released the latch")
	}
}

func TestClickDetector_DebounceSuppressesSecondEdge(t *testing.T) {
	d := newClickDetector(detector.ThumbTip, detector.IndexTip, 500*time.Millisecond)
	now := time.Unix(1000, 0)
	d.now = func() time.Time { return now }

	pinch := handWithGap(detector.ThumbTip, detector.IndexTip, 0.03)
	open := handWithGap(detector.ThumbTip, detector.IndexTip, 0.2)

	// First edge fires.
	if !d.process(pinch, 0.05) {
		t.Fatal("first edge did not fire")
	}

	// Release and re-pinch 200 ms later: inside the debounce window,
	// suppressed.
	d.process(open, 0.05)
	now = now.Add(200 * time.Millisecond)
	if d.process(pinch, 0.05) {
		t.Error("second edge fired inside debounce window")
	}

	// The suppressed edge did not latch ENGAGED: the same held pinch
	// fires once the window elapses, without an intervening release.
	now = now.Add(400 * time.Millisecond)
	if !d.process(pinch, 0.05) {
		t.Error("held pinch did not fire after debounce window elapsed")
	}
}

func TestClickDetector_ThirdEdgeAfterWindowFires(t *testing.T) {
	d := newClickDetector(detector.ThumbTip, detector.IndexTip, 500*time.Millisecond)
	now := time.Unix(1000, 0)
	d.now = func() time.Time { return now }

	pinch := handWithGap(detector.ThumbTip, detector.IndexTip, 0.03)
	open := handWithGap(detector.ThumbTip, detector.IndexTip, 0.2)

	// Two qualifying edges within 0.5 s: only the first fires.
	if !d.process(pinch, 0.05) {
		t.Fatal("first edge did not fire")
	}
	d.process(open, 0.05)
	now = now.Add(300 * time.Millisecond)
	if d.process(pinch, 0.05) {
		t.Fatal("second edge fired inside debounce window")
	}

	// A third edge after the window elapses fires again.
	d.process(open, 0.05)
	now = now.Add(300 * time.Millisecond)
	if !d.process(pinch, 0.05) {
		t.Error("third edge after debounce window did not fire")
	}
}

func TestClickDetector_Reset(t *testing.T) {
	d := newClickDetector(detector.ThumbTip, detector.MiddleTip, 0)
	pinch := handWithGap(detector.ThumbTip, detector.MiddleTip, 0.03)

	if !d.process(pinch, 0.05) {
		t.Fatal("expected fire")
	}

	d.reset()
	if d.engaged {
		t.Error("engaged after reset")
	}
	if !d.lastFire.IsZero() {
		t.Error("lastFire not zeroed after reset")
	}

	// A fresh below-threshold sample after reset is a new IDLE->ENGAGED
	// crossing and fires again.
	if !d.process(pinch, 0.05) {
		t.Error("expected fire on fresh crossing after reset")
	}
}
