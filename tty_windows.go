//go:build windows

package tea

import (
	"os"

	"github.com/containerd/console"
)

type termFile interface {
	Fd() uintptr
}

// terminalState holds the console's prior mode so it can be restored on
// shutdown.
type terminalState struct {
	con console.Console
}

func (p *Program) initTerminal() error {
	if f, ok := p.output.(*os.File); ok {
		con, err := console.ConsoleFromFile(f)
		if err != nil {
			// Output isn't a real console (e.g. redirected to a file);
			// there's nothing to put into raw mode.
			return nil
		}
		if err := con.SetRaw(); err != nil {
			return err
		}
		p.previousOutputState = &terminalState{con: con}
		p.ttyOutput = f
	}
	return nil
}

func (p *Program) restoreTerminalState() error {
	if p.previousOutputState == nil {
		return nil
	}
	return p.previousOutputState.con.Reset()
}

func getTermSize(f termFile) (width, height int, err error) {
	con, err := console.ConsoleFromFile(f.(*os.File))
	if err != nil {
		return 0, 0, err
	}
	sz, err := con.Size()
	if err != nil {
		return 0, 0, err
	}
	return int(sz.Width), int(sz.Height), nil
}

func openInputTTY() (*os.File, error) {
	return os.OpenFile("CONIN$", os.O_RDWR, 0)
}
