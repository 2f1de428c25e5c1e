package cursor

// Sink receives cursor and click commands. Implementations are synchronous
// and side-effecting; any call may fail. The controller swallows sink
// failures per frame, so implementations should return errors rather than
// panic.
type Sink interface {
	// ScreenSize returns the host screen dimensions in pixels.
	ScreenSize() (width, height int)

	// MoveTo moves the cursor to absolute screen coordinates.
	MoveTo(x, y int) error

	// Click performs a single left click.
	Click() error

	// DoubleClick performs a double left click.
	DoubleClick() error
}
