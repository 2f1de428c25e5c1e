package cursor

// Position is a normalized cursor position in the unit square.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// History is a bounded FIFO of mapped cursor positions used for
// moving-average smoothing. The zero value is not usable; create one with
// NewHistory.
type History struct {
	buf []Position
	cap int
}

// NewHistory creates a position history with the given capacity. Capacities
// below 1 fall back to 1.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{
		buf: make([]Position, 0, capacity),
		cap: capacity,
	}
}

// Cap returns the current capacity.
func (h *History) Cap() int {
	return h.cap
}

// SetCapacity resizes the history. Shrinking keeps the newest entries;
// capacities below 1 are ignored.
func (h *History) SetCapacity(capacity int) {
	if capacity < 1 || capacity == h.cap {
		return
	}
	if len(h.buf) > capacity {
		h.buf = append(h.buf[:0], h.buf[len(h.buf)-capacity:]...)
	}
	h.cap = capacity
}

// Push appends a position, evicting the oldest entry once the capacity is
// exceeded.
func (h *History) Push(p Position) {
	if len(h.buf) >= h.cap {
		copy(h.buf, h.buf[1:])
		h.buf = h.buf[:len(h.buf)-1]
	}
	h.buf = append(h.buf, p)
}

// Len returns the number of buffered positions.
func (h *History) Len() int {
	return len(h.buf)
}

// Clear empties the history.
func (h *History) Clear() {
	h.buf = h.buf[:0]
}

// Smoothed returns the arithmetic mean of the last min(window, Len())
// positions, computed independently per axis. It reports false while fewer
// than 2 samples exist, so the very first frame never produces a jittery
// move.
func (h *History) Smoothed(window int) (Position, bool) {
	if len(h.buf) < 2 || window < 1 {
		return Position{}, false
	}

	start := len(h.buf) - window
	if start < 0 {
		start = 0
	}
	recent := h.buf[start:]

	var sumX, sumY float64
	for _, p := range recent {
		sumX += p.X
		sumY += p.Y
	}

	n := float64(len(recent))
	return Position{X: sumX / n, Y: sumY / n}, true
}
