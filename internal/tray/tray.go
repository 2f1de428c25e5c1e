// Package tray provides the system tray interface for MouseControl.
package tray

import (
	"fmt"
	"sync"

	"github.com/getlantern/systray"
)

// Tray represents the system tray application.
type Tray struct {
	onToggle    func(tracking bool)
	onCalibrate func()
	onSettings  func()
	onQuit      func()
	tracking    bool
	mu          sync.RWMutex

	// Menu items stored for later updates
	menuToggle *systray.MenuItem
	menuScale  *systray.MenuItem
}

// New creates a new Tray instance. Tracking starts disabled so the
// pointer never moves before the user opts in.
func New() *Tray {
	return &Tray{}
}

// OnToggle sets the callback function to be called when pointer tracking is toggled.
func (t *Tray) OnToggle(fn func(tracking bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onToggle = fn
}

// OnCalibrate sets the callback function to be called when the calibrate menu item is clicked.
func (t *Tray) OnCalibrate(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onCalibrate = fn
}

// OnSettings sets the callback function to be called when the settings menu item is clicked.
func (t *Tray) OnSettings(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onSettings = fn
}

// OnQuit sets the callback function to be called when the quit menu item is clicked.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Run starts the system tray application.
// This function blocks until systray.Quit() is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady is called when the system tray is ready.
// It sets up the menu structure.
func (t *Tray) onReady() {
	systray.SetTitle("MouseControl")
	systray.SetTooltip("MouseControl Hand Tracking")

	t.menuToggle = systray.AddMenuItem("○ Tracking off", "Toggle pointer tracking")
	systray.AddSeparator()

	menuCalibrate := systray.AddMenuItem("Calibrate...", "Calibrate hand distance")
	t.menuScale = systray.AddMenuItem("Scale: 1.00", "Current calibration scale")
	t.menuScale.Disable()
	systray.AddSeparator()

	menuSettings := systray.AddMenuItem("Open Settings...", "Open settings in browser")
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit MouseControl")

	// Handle menu item clicks in a separate goroutine
	go func() {
		for {
			select {
			case <-t.menuToggle.ClickedCh:
				t.handleToggle()
			case <-menuCalibrate.ClickedCh:
				t.handleCalibrate()
			case <-menuSettings.ClickedCh:
				t.handleSettings()
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				return
			}
		}
	}()
}

// onExit is called when the system tray is about to exit.
func (t *Tray) onExit() {
}

// handleToggle handles the toggle menu item click.
func (t *Tray) handleToggle() {
	t.mu.Lock()
	t.tracking = !t.tracking
	tracking := t.tracking

	if tracking {
		t.menuToggle.SetTitle("● Tracking on")
	} else {
		t.menuToggle.SetTitle("○ Tracking off")
	}

	callback := t.onToggle
	t.mu.Unlock()

	// Call the callback outside the lock to prevent deadlocks
	if callback != nil {
		callback(tracking)
	}
}

// handleCalibrate handles the calibrate menu item click.
func (t *Tray) handleCalibrate() {
	t.mu.RLock()
	callback := t.onCalibrate
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

// handleSettings handles the settings menu item click.
func (t *Tray) handleSettings() {
	t.mu.RLock()
	callback := t.onSettings
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

// handleQuit handles the quit menu item click.
func (t *Tray) handleQuit() {
	t.mu.RLock()
	callback := t.onQuit
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}

	systray.Quit()
}

// SetScaleFactor updates the calibration scale display in the menu. Safe
// to call before the menu exists.
func (t *Tray) SetScaleFactor(scale float64) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuScale != nil {
		t.menuScale.SetTitle(fmt.Sprintf("Scale: %.2f", scale))
	}
}
