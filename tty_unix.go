//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package tea

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// termFile is satisfied by *os.File; it's the subset of methods the
// terminal lifecycle code needs regardless of platform.
type termFile interface {
	Fd() uintptr
}

// terminalState holds whatever a platform needs to restore the terminal to
// its pre-raw-mode configuration.
type terminalState struct {
	state *term.State
}

func (p *Program) initTerminal() error {
	if f, ok := p.output.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		state, err := term.MakeRaw(int(f.Fd()))
		if err != nil {
			return err
		}
		p.previousOutputState = &terminalState{state: state}
		p.ttyOutput = f
	}
	if f, ok := p.input.(*os.File); ok {
		p.ttyInput = f
	}
	return nil
}

func (p *Program) restoreTerminalState() error {
	if p.previousOutputState == nil || p.ttyOutput == nil {
		return nil
	}
	f, ok := p.ttyOutput.(*os.File)
	if !ok {
		return nil
	}
	return term.Restore(int(f.Fd()), p.previousOutputState.state)
}

func getTermSize(f termFile) (width, height int, err error) {
	return term.GetSize(int(f.Fd()))
}

func openInputTTY() (*os.File, error) {
	return os.OpenFile("/dev/tty", os.O_RDONLY, 0)
}
