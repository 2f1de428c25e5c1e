// Package robot adapts the host pointing device to the cursor.Sink
// interface using robotgo.
package robot

import (
	"fmt"

	"github.com/go-vgo/robotgo"
)

// Sink drives the real host cursor. It implements cursor.Sink.
type Sink struct{}

// NewSink creates a robotgo-backed sink.
func NewSink() *Sink {
	return &Sink{}
}

// ScreenSize returns the primary screen dimensions in pixels.
func (s *Sink) ScreenSize() (width, height int) {
	return robotgo.GetScreenSize()
}

// MoveTo moves the cursor to absolute screen coordinates. Coordinates
// outside the screen are rejected rather than passed to the OS.
func (s *Sink) MoveTo(x, y int) error {
	w, h := robotgo.GetScreenSize()
	if x < 0 || y < 0 || x >= w || y >= h {
		return fmt.Errorf("cursor position (%d, %d) outside screen %dx%d", x, y, w, h)
	}
	robotgo.Move(x, y)
	return nil
}

// Click performs a single left click.
func (s *Sink) Click() error {
	robotgo.Click("left", false)
	return nil
}

// DoubleClick performs a double left click.
func (s *Sink) DoubleClick() error {
	robotgo.Click("left", true)
	return nil
}
