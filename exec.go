package tea

import (
	"io"
	"os"
	"os/exec"
)

// execMsg is used internally to run an ExecCommand sent with Exec.
type execMsg struct {
	cmd ExecCommand
	fn  ExecCallback
}

// Exec is used to perform arbitrary I/O in a blocking fashion, effectively
// pausing the program while execution is running and resuming it once
// execution has completed.
//
// Most of the time you'll want ExecProcess, which runs an *exec.Cmd. For
// non-interactive I/O, use a plain Cmd instead.
func Exec(c ExecCommand, fn ExecCallback) Cmd {
	return func() Msg {
		return execMsg{cmd: c, fn: fn}
	}
}

// ExecProcess runs the given *exec.Cmd in a blocking fashion, effectively
// pausing the program while the command runs and resuming it once the
// command exits. It's useful for handing the terminal to another
// interactive program such as an editor or a shell.
//
//	c := exec.Command("vim", "file.txt")
//	cmd := ExecProcess(c, func(err error) Msg {
//	    return editorFinishedMsg{err: err}
//	})
func ExecProcess(c *exec.Cmd, fn ExecCallback) Cmd {
	return Exec(wrapExecCommand(c), fn)
}

// ExecCallback receives the error (if any) from running an ExecCommand.
type ExecCallback func(error) Msg

// ExecCommand can be implemented to run something in a blocking fashion
// against the program's terminal.
type ExecCommand interface {
	Run() error
	SetStdin(io.Reader)
	SetStdout(io.Writer)
	SetStderr(io.Writer)
	SetEnv([]string)
}

func wrapExecCommand(c *exec.Cmd) ExecCommand {
	return &osExecCommand{Cmd: c}
}

type osExecCommand struct{ *exec.Cmd }

func (c *osExecCommand) SetStdin(r io.Reader) {
	if c.Stdin == nil {
		c.Stdin = r
	}
}

func (c *osExecCommand) SetStdout(w io.Writer) {
	if c.Stdout == nil {
		c.Stdout = w
	}
}

func (c *osExecCommand) SetStderr(w io.Writer) {
	if c.Stderr == nil {
		c.Stderr = w
	}
}

// SetEnv sets the child's environment if one hasn't already been set on the
// wrapped *exec.Cmd. A nil or empty env leaves the existing value (which,
// per os/exec, means the child inherits the host's os.Environ()) untouched.
func (c *osExecCommand) SetEnv(env []string) {
	if c.Env == nil && len(env) > 0 {
		c.Env = env
	}
}

// exec releases the terminal, runs c, and restores the terminal, delivering
// the result through fn.
func (p *Program) exec(c ExecCommand, fn ExecCallback) {
	if err := p.ReleaseTerminal(); err != nil {
		if fn != nil {
			go p.Send(fn(err))
		}
		return
	}

	c.SetStdin(p.input)
	c.SetStdout(p.output)
	c.SetStderr(os.Stderr)
	c.SetEnv(p.environ)

	if err := c.Run(); err != nil {
		_ = p.RestoreTerminal()
		if fn != nil {
			go p.Send(fn(err))
		}
		return
	}

	err := p.RestoreTerminal()
	if fn != nil {
		go p.Send(fn(err))
	}
}
