package tea

// NilRenderer is a no-op [Renderer]. It's installed with [WithoutRenderer]
// for programs that only want the event loop and command scheduler, with
// no terminal output of their own.
type NilRenderer struct{}

var _ Renderer = NilRenderer{}

func (NilRenderer) Start()                      {}
func (NilRenderer) Close() error                 { return nil }
func (NilRenderer) Write(string)                 {}
func (NilRenderer) Flush() error                 { return nil }
func (NilRenderer) InsertAbove(string) error     { return nil }
func (NilRenderer) Resize(int, int)              {}
func (NilRenderer) Repaint()                     {}
func (NilRenderer) ClearScreen()                 {}
func (NilRenderer) AltScreen() bool              { return false }
func (NilRenderer) EnterAltScreen()              {}
func (NilRenderer) ExitAltScreen()               {}
func (NilRenderer) CursorVisibility() bool       { return true }
func (NilRenderer) ShowCursor()                  {}
func (NilRenderer) HideCursor()                  {}
func (NilRenderer) SetWindowTitle(string)        {}
func (NilRenderer) Execute(string)               {}
