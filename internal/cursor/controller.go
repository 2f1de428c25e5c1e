package cursor

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/ricmed/mouse-control/internal/config"
	"github.com/ricmed/mouse-control/internal/detector"
)

// Click event kinds reported by LastClick.
const (
	ClickSingle = "single"
	ClickDouble = "double"
)

// Controller orchestrates the per-frame pipeline: coordinate mapping,
// smoothing, cursor movement, and click detection. It is driven from a
// single goroutine; all shared parameters arrive as a config.Snapshot
// taken by the caller at the start of the frame.
type Controller struct {
	sink        Sink
	history     *History
	singleClick *clickDetector
	doubleClick *clickDetector

	// lastClick is read by the status feed from another goroutine.
	clickMu     sync.Mutex
	lastClick   string
	lastClickAt time.Time
}

// NewController creates a Controller emitting into the given sink.
func NewController(sink Sink) *Controller {
	return &Controller{
		sink:        sink,
		history:     NewHistory(config.DefaultSmoothingWindow),
		singleClick: newClickDetector(detector.ThumbTip, detector.MiddleTip, 0),
		doubleClick: newClickDetector(detector.ThumbTip, detector.IndexTip, DoubleClickDebounce),
	}
}

// Process runs one frame through the pipeline.
//
// A nil hand is a transient tracking gap: nothing moves and no click is
// evaluated, but history and click state are retained so tracking resumes
// seamlessly. Sink failures are logged and dropped; the pipeline never
// aborts on them.
func (c *Controller) Process(h *detector.HandLandmarks, snap config.Snapshot) {
	if h == nil {
		return
	}

	c.moveCursor(h, snap)

	// Click detection is independent of cursor movement; each detector
	// sees the same frame.
	if c.singleClick.process(h, snap.SingleThreshold) {
		c.recordClick(ClickSingle)
		if err := c.sink.Click(); err != nil {
			log.Printf("click failed: %v", err)
		}
	}
	if c.doubleClick.process(h, snap.DoubleThreshold) {
		c.recordClick(ClickDouble)
		if err := c.sink.DoubleClick(); err != nil {
			log.Printf("double click failed: %v", err)
		}
	}
}

func (c *Controller) recordClick(kind string) {
	c.clickMu.Lock()
	c.lastClick = kind
	c.lastClickAt = time.Now()
	c.clickMu.Unlock()
}

// LastClick returns the kind and time of the most recent click, or an
// empty kind if none fired since the last Reset.
func (c *Controller) LastClick() (kind string, at time.Time) {
	c.clickMu.Lock()
	defer c.clickMu.Unlock()
	return c.lastClick, c.lastClickAt
}

func (c *Controller) moveCursor(h *detector.HandLandmarks, snap config.Snapshot) {
	// History capacity tracks the configured window so a larger window
	// actually sees that many samples.
	if snap.SmoothingWindow != c.history.Cap() {
		c.history.SetCapacity(snap.SmoothingWindow)
	}

	x, y := MapToCursor(h.Landmark(detector.Wrist), snap.Sensitivity, snap.ScaleFactor)
	c.history.Push(Position{X: x, Y: y})

	smoothed, ok := c.history.Smoothed(snap.SmoothingWindow)
	if !ok {
		return
	}

	w, hgt := c.sink.ScreenSize()
	screenX := normToPixels(smoothed.X, w)
	screenY := normToPixels(smoothed.Y, hgt)

	if err := c.sink.MoveTo(screenX, screenY); err != nil {
		log.Printf("cursor move failed: %v", err)
	}
}

// normToPixels maps a normalized coordinate onto [0, span-1] so that 1.0
// lands on the last pixel, never off-screen.
func normToPixels(norm float64, span int) int {
	if span <= 1 {
		return 0
	}
	return int(math.Round(norm * float64(span-1)))
}

// Reset clears the smoothing history and returns both click detectors to
// IDLE with a zeroed debounce timer. It must be called whenever tracking
// transitions from active to paused so stale state does not leak into the
// next session.
func (c *Controller) Reset() {
	c.history.Clear()
	c.singleClick.reset()
	c.doubleClick.reset()

	c.clickMu.Lock()
	c.lastClick = ""
	c.lastClickAt = time.Time{}
	c.clickMu.Unlock()
}

// SetClock overrides the click detectors' time source. Tests use it to
// step through debounce windows deterministically.
func (c *Controller) SetClock(now func() time.Time) {
	c.singleClick.now = now
	c.doubleClick.now = now
}
