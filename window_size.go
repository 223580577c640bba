package tea

// WindowSizeSource specifies which file descriptor is used to determine
// the terminal's size: either the output or the input.
type WindowSizeSource int

const (
	WindowSizeSourceOutput WindowSizeSource = iota
	WindowSizeSourceInput
)

func (w WindowSizeSource) String() string {
	switch w {
	case WindowSizeSourceOutput:
		return "output"
	case WindowSizeSourceInput:
		return "input"
	default:
		return ""
	}
}
