package tea

import (
	"context"
	"io"
)

// ProgramOption is used to set options when initializing a Program. Program
// can accept a variable number of options.
//
// Example usage:
//
//	p := NewProgram(model, WithInput(someInput), WithOutput(someOutput))
type ProgramOption func(*Program)

// WithContext lets you specify a context in which to run the Program. This
// is useful if you want to cancel the execution from outside. When a
// Program gets cancelled, it will exit with an error ErrProgramKilled.
func WithContext(ctx context.Context) ProgramOption {
	return func(p *Program) {
		p.externalCtx = ctx
	}
}

// WithOutput sets the output which, by default, is stdout. In most cases
// you won't need to use this.
func WithOutput(output io.Writer) ProgramOption {
	return func(p *Program) {
		p.output = output
	}
}

// WithInput sets the input which, by default, is stdin. In most cases you
// won't need to use this. Note that this sets the input reader directly,
// bypassing the special handling in WithInputTTY.
func WithInput(input io.Reader) ProgramOption {
	return func(p *Program) {
		p.input = input
		p.inputType = customInput
	}
}

// WithInputTTY opens a new TTY for input (or console input device on
// Windows).
//
// This is useful when input is not a TTY (for example, when it's been
// redirected from a file) but you still want the program to read keyboard
// input.
func WithInputTTY() ProgramOption {
	return func(p *Program) {
		p.inputType = ttyInput
	}
}

// WithEnvironment sets the environment variables that the program will use.
// This useful when the in-process environment differs from the process's
// actual environment, such as when running a Program over SSH.
func WithEnvironment(env []string) ProgramOption {
	return func(p *Program) {
		p.environ = env
	}
}

// WithoutSignalHandler disables the signal handler that Bubble Tea sets up
// by default. This is only useful in cases where a program does not want
// to be interrupted by the usual SIGINT/SIGTERM handling and will manage
// that itself.
func WithoutSignalHandler() ProgramOption {
	return func(p *Program) {
		p.startupOptions |= withoutSignalHandler
	}
}

// WithoutSignals will ignore OS signals while the program is running, once
// the program has started. It sets the same flag that ReleaseTerminal sets
// and RestoreTerminal clears, so signals are handled again after the
// terminal has been released and restored (by Exec or a suspend). Note
// that this differs from
// WithoutSignalHandler in that it keeps the signal handler installed but
// has it discard incoming signals.
func WithoutSignals() ProgramOption {
	return func(p *Program) {
		p.ignoreSignals = 1
	}
}

// WithANSICompressor removes redundant ANSI sequences to produce potentially
// smaller output, at the cost of some processing overhead.
//
// This option is provided as a way to reduce bandwidth in extremely
// performance sensitive scenarios. For most cases it's unnecessary.
func WithANSICompressor() ProgramOption {
	return func(p *Program) {
		p.startupOptions |= withANSICompressor
	}
}

// WithoutCatchPanics disables panic catching. By default a panic in Update
// or in a command is recovered, the terminal is restored, and Run returns
// ErrProgramPanic; with this option the panic propagates and the terminal
// is not cleaned up. In most cases you should leave catching enabled.
func WithoutCatchPanics() ProgramOption {
	return func(p *Program) {
		p.startupOptions |= withoutCatchPanics
	}
}

// WithoutRenderer disables the renderer. When this is set output and
// commands will be processed, but nothing will be drawn to the terminal.
// This is useful if you want to use the Bubble Tea framework for command
// management and don't care about rendering.
func WithoutRenderer() ProgramOption {
	return func(p *Program) {
		p.renderer = NilRenderer{}
	}
}

// WithMouseCellMotion starts the program with the mouse enabled in "cell
// motion" mode.
//
// Cell motion mode enables mouse click, release, and wheel events. Mouse
// movement events are also captured if a mouse button is pressed (i.e.,
// drag events).
func WithMouseCellMotion() ProgramOption {
	return func(p *Program) {
		p.startupOptions |= withMouseCellMotion
		p.startupOptions &^= withMouseAllMotion
	}
}

// WithMouseAllMotion starts the program with the mouse enabled in "all
// motion" mode.
//
// EnableMouseAllMotion is a special command that enables mouse click,
// release, wheel, and motion events, which are delivered regardless of
// whether a mouse button is pressed, effectively enabling support for
// hover interactions.
func WithMouseAllMotion() ProgramOption {
	return func(p *Program) {
		p.startupOptions |= withMouseAllMotion
		p.startupOptions &^= withMouseCellMotion
	}
}

// WithoutBracketedPaste starts the program with bracketed paste disabled.
func WithoutBracketedPaste() ProgramOption {
	return func(p *Program) {
		p.startupOptions |= withoutBracketedPaste
	}
}

// WithAltScreen starts the program with the alternate screen buffer
// enabled.
//
// Because commands run asynchronously, the EnterAltScreen command should
// not be used in your model's Init function. To initialize your program
// with the altscreen enabled use this option instead.
func WithAltScreen() ProgramOption {
	return func(p *Program) {
		p.startupOptions |= withAltScreen
	}
}

// WithReportFocus starts the program with focus reporting enabled.
//
// Note that you'll also need to use WithReportFocus to enable focus
// reporting on startup.
func WithReportFocus() ProgramOption {
	return func(p *Program) {
		p.startupOptions |= withReportFocus
	}
}

// WithFPS sets a given frame rate at which the program's renderer should
// draw. By default, the renderer draws at 60 frames per second. Values
// above 120 are clamped to 120; values below 1 select the default.
func WithFPS(fps int) ProgramOption {
	return func(p *Program) {
		p.fps = fps
	}
}

// MsgFilter can be used to intercept and/or replace messages as they come
// in before they reach the program's update function. Return nil to drop
// a message entirely.
type MsgFilter func(Model, Msg) Msg

// WithFilter supplies an event filter that will be invoked before Bubble
// Tea processes a tea.Msg. The event filter can return any tea.Msg which
// will then get handled by Bubble Tea instead of the original event. If
// the event filter returns nil, the event will be ignored and Bubble Tea
// will not process it.
//
// As an example, this could be used to prevent a program from shutting
// down if there are unsaved changes.
//
// Here's an example of using a filter for a program that wants to quit if
// `q` is pressed, but only if there are no unsaved changes:
//
//	func filter(m tea.Model, msg tea.Msg) tea.Msg {
//	    if _, ok := msg.(tea.QuitMsg); !ok {
//	        return msg
//	    }
//
//	    model := m.(myModel)
//	    if model.hasChanges {
//	        return nil
//	    }
//
//	    return msg
//	}
func WithFilter(filter MsgFilter) ProgramOption {
	return func(p *Program) {
		p.filter = filter
	}
}
