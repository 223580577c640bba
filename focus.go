package tea

// FocusMsg represents a terminal focus message. This occurs when the
// terminal gains focus.
type FocusMsg struct{}

// BlurMsg represents a terminal blur message. This occurs when the
// terminal loses focus.
type BlurMsg struct{}
