package tea

// Renderer is the interface describing anything capable of drawing a
// program's view to the terminal and tracking the handful of terminal modes
// a program can toggle at runtime.
type Renderer interface {
	// Start starts the renderer.
	Start()

	// Close closes the renderer and flushes any remaining data.
	Close() error

	// Write queues a frame to be rendered. The renderer decides when to
	// actually flush it to output.
	Write(frame string)

	// Flush flushes the renderer's buffer to the output.
	Flush() error

	// InsertAbove inserts a line above the current frame. Only meaningful
	// outside of the alternate screen; implementations may buffer the
	// insertion until the alternate screen is exited.
	InsertAbove(line string) error

	// Resize informs the renderer of the terminal's current size.
	Resize(w, h int)

	// Repaint requests that the next Write be a full repaint rather than a
	// diff against the previously rendered frame.
	Repaint()

	// ClearScreen clears the terminal screen immediately.
	ClearScreen()

	// AltScreen reports whether the alternate screen buffer is active.
	AltScreen() bool
	// EnterAltScreen enables the alternate screen buffer.
	EnterAltScreen()
	// ExitAltScreen disables the alternate screen buffer.
	ExitAltScreen()

	// CursorVisibility reports whether the cursor is currently visible.
	CursorVisibility() bool
	// ShowCursor makes the cursor visible.
	ShowCursor()
	// HideCursor hides the cursor.
	HideCursor()

	// SetWindowTitle sets the terminal window title via OSC 0.
	SetWindowTitle(title string)

	// Execute writes a raw escape sequence directly to the output,
	// bypassing the frame buffer.
	Execute(seq string)
}
