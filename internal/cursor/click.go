package cursor

import (
	"time"

	"github.com/ricmed/mouse-control/internal/detector"
)

// DoubleClickDebounce is the minimum interval between successful
// double-click fires.
const DoubleClickDebounce = 500 * time.Millisecond

// clickDetector is an edge-triggered two-state gesture classifier over the
// distance between one fingertip pair. The single-click and double-click
// gestures are the same machine with different parameters.
//
// A click fires exactly once per IDLE-to-ENGAGED crossing; the machine must
// see the distance rise back above the threshold before it can fire again.
// With a debounce configured, an edge inside the debounce window is
// suppressed without latching ENGAGED, so a held pinch still fires once the
// window elapses.
type clickDetector struct {
	pairA    int
	pairB    int
	debounce time.Duration

	engaged  bool
	lastFire time.Time

	now func() time.Time // injectable for tests
}

func newClickDetector(pairA, pairB int, debounce time.Duration) *clickDetector {
	return &clickDetector{
		pairA:    pairA,
		pairB:    pairB,
		debounce: debounce,
		now:      time.Now,
	}
}

// process evaluates one frame against the given threshold and reports
// whether a click fired. An absent hand yields an infinite distance, which
// releases the latch immediately so no stale ENGAGED state survives a
// tracking gap.
func (c *clickDetector) process(h *detector.HandLandmarks, threshold float64) bool {
	d := detector.Distance(h.Landmark(c.pairA), h.Landmark(c.pairB))

	if d >= threshold {
		c.engaged = false
		return false
	}

	if c.engaged {
		return false
	}

	if c.debounce > 0 {
		now := c.now()
		if now.Sub(c.lastFire) < c.debounce {
			return false
		}
		c.lastFire = now
	}

	c.engaged = true
	return true
}

// reset returns the machine to IDLE and zeroes the debounce timer.
func (c *clickDetector) reset() {
	c.engaged = false
	c.lastFire = time.Time{}
}
