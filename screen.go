package tea

// WindowSizeMsg reports the terminal size. It's sent once at startup and
// again on every resize (Windows excepted: it has no SIGWINCH equivalent).
type WindowSizeMsg struct {
	Width  int
	Height int
}

// WindowSize returns a command that emits a WindowSizeMsg carrying the
// program's current terminal dimensions, the same values reported once
// automatically at startup.
func (p *Program) WindowSize() Cmd {
	return func() Msg {
		return WindowSizeMsg{Width: p.width, Height: p.height}
	}
}

type clearScreenMsg struct{}

// ClearScreen tells the program to clear the screen before the next
// render. It should never be necessary for regular redraws.
func ClearScreen() Msg {
	return clearScreenMsg{}
}

type repaintMsg struct{}

// Repaint forces the renderer's next write to be a full repaint rather
// than a diff against the previous frame.
func Repaint() Msg {
	return repaintMsg{}
}

type enterAltScreenMsg struct{}

// EnterAltScreen tells the program to enter the alternate screen buffer.
//
// Because commands run asynchronously, this shouldn't be used from a
// model's Init; use the WithAltScreen ProgramOption to start in the
// alternate screen instead.
func EnterAltScreen() Msg {
	return enterAltScreenMsg{}
}

type exitAltScreenMsg struct{}

// ExitAltScreen tells the program to exit the alternate screen buffer. The
// alternate screen is also exited automatically when the program quits.
func ExitAltScreen() Msg {
	return exitAltScreenMsg{}
}

type enableMouseCellMotionMsg struct{}

// EnableMouseCellMotion enables mouse click, release, and wheel events.
// Motion events are also captured while a button is held (drag events).
func EnableMouseCellMotion() Msg {
	return enableMouseCellMotionMsg{}
}

type enableMouseAllMotionMsg struct{}

// EnableMouseAllMotion enables mouse click, release, wheel, and motion
// events regardless of whether a button is pressed, enabling hover
// interactions. Not every terminal supports this; EnableMouseCellMotion is
// the safer default.
func EnableMouseAllMotion() Msg {
	return enableMouseAllMotionMsg{}
}

type disableMouseMsg struct{}

// DisableMouse stops listening for mouse events.
func DisableMouse() Msg {
	return disableMouseMsg{}
}

type hideCursorMsg struct{}

// HideCursor hides the terminal cursor.
func HideCursor() Msg {
	return hideCursorMsg{}
}

type showCursorMsg struct{}

// ShowCursor shows the terminal cursor.
func ShowCursor() Msg {
	return showCursorMsg{}
}

type enableBracketedPasteMsg struct{}

// EnableBracketedPaste tells the program to accept bracketed-paste input.
// Bracketed paste is automatically disabled when the program quits.
func EnableBracketedPaste() Msg {
	return enableBracketedPasteMsg{}
}

type disableBracketedPasteMsg struct{}

// DisableBracketedPaste tells the program to stop accepting
// bracketed-paste input.
func DisableBracketedPaste() Msg {
	return disableBracketedPasteMsg{}
}

type enableReportFocusMsg struct{}

// EnableReportFocus tells the program to report focus/blur events.
func EnableReportFocus() Msg {
	return enableReportFocusMsg{}
}

type disableReportFocusMsg struct{}

// DisableReportFocus tells the program to stop reporting focus/blur
// events.
func DisableReportFocus() Msg {
	return disableReportFocusMsg{}
}

type setWindowTitleMsg string

// SetWindowTitle produces a command that sets the terminal's window title
// via OSC 0.
func SetWindowTitle(title string) Cmd {
	return func() Msg {
		return setWindowTitleMsg(title)
	}
}

// EnterAltScreen enters the alternate screen buffer.
//
// Deprecated: use the WithAltScreen ProgramOption instead.
func (p *Program) EnterAltScreen() {
	if p.renderer != nil {
		p.renderer.EnterAltScreen()
	} else {
		p.startupOptions |= withAltScreen
	}
}

// ExitAltScreen exits the alternate screen buffer.
//
// Deprecated: the alt screen is exited automatically when the program
// exits.
func (p *Program) ExitAltScreen() {
	if p.renderer != nil {
		p.renderer.ExitAltScreen()
	} else {
		p.startupOptions &^= withAltScreen
	}
}

// EnableMouseCellMotion enables mouse click, release, and wheel events.
//
// Deprecated: use the WithMouseCellMotion ProgramOption instead.
func (p *Program) EnableMouseCellMotion() {
	if p.renderer != nil {
		p.renderer.Execute(enableMouseCellMotionSeq)
	}
	p.startupOptions |= withMouseCellMotion
	p.startupOptions &^= withMouseAllMotion
}

// DisableMouseCellMotion disables cell-motion mouse tracking. Called
// automatically on exit.
//
// Deprecated: the mouse is disabled automatically when the program exits.
func (p *Program) DisableMouseCellMotion() {
	if p.renderer != nil {
		p.renderer.Execute(disableMouseSeq)
	}
	p.startupOptions &^= withMouseCellMotion
}

// EnableMouseAllMotion enables mouse click, release, wheel, and motion
// events regardless of whether a button is pressed.
//
// Deprecated: use the WithMouseAllMotion ProgramOption instead.
func (p *Program) EnableMouseAllMotion() {
	if p.renderer != nil {
		p.renderer.Execute(enableMouseAllMotionSeq)
	}
	p.startupOptions |= withMouseAllMotion
	p.startupOptions &^= withMouseCellMotion
}

// DisableMouseAllMotion disables all-motion mouse tracking. Called
// automatically on exit.
//
// Deprecated: the mouse is disabled automatically when the program exits.
func (p *Program) DisableMouseAllMotion() {
	if p.renderer != nil {
		p.renderer.Execute(disableMouseSeq)
	}
	p.startupOptions &^= withMouseAllMotion
}

// SetWindowTitle sets the terminal window title.
//
// Deprecated: use the SetWindowTitle command instead.
func (p *Program) SetWindowTitle(title string) {
	if p.renderer != nil {
		p.renderer.SetWindowTitle(title)
	} else {
		p.startupTitle = title
	}
}
