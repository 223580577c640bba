package tea

import "github.com/atotto/clipboard"

// ClipboardMsg is sent in response to a ReadClipboard command, carrying the
// system clipboard's current text contents (or an error, if the platform
// has no clipboard support).
type ClipboardMsg struct {
	Text string
	Err  error
}

type readClipboardMsg struct{}

// ReadClipboard is a command that reads the contents of the system
// clipboard and delivers them as a ClipboardMsg.
func ReadClipboard() Msg {
	return readClipboardMsg{}
}

type setClipboardMsg string

// SetClipboard is a command that sets the contents of the system
// clipboard.
func SetClipboard(text string) Cmd {
	return func() Msg {
		return setClipboardMsg(text)
	}
}

func (p *Program) readClipboard() {
	text, err := clipboard.ReadAll()
	p.Send(ClipboardMsg{Text: text, Err: err})
}

func (p *Program) writeClipboard(text string) {
	_ = clipboard.WriteAll(text)
}
