// Package tea provides a runtime for building terminal user interfaces
// following The Elm Architecture: a model owns all state, an update
// function reacts to messages, and a view function renders the model to a
// string. The package drives everything in between: the terminal lifecycle,
// input decoding, command scheduling, diff-based rendering, and signal
// handling.
package tea

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
)

// Msg contains data from the result of an I/O operation. Msgs trigger the
// update function and, in turn, the view.
type Msg interface{}

// Model contains a program's state as well as its core functions.
type Model interface {
	// Init is called once, before the first render. It returns an optional
	// command to run immediately.
	Init() Cmd

	// Update is called when a message is received. It is the only place the
	// model may be mutated.
	Update(Msg) (Model, Cmd)

	// View renders the current model to a string. It must be pure: it may
	// be called many times per second and must never mutate the model.
	View() string
}

// Cmd is a function that performs some I/O and returns a message describing
// the result. If a Cmd returns nil, no message is sent. A nil Cmd is a
// no-op and is never invoked.
type Cmd func() Msg

// QuitMsg signals that the program should exit. Send it with [Quit].
type QuitMsg struct{}

// Quit is a command that tells the program to exit.
func Quit() Msg {
	return QuitMsg{}
}

// InterruptMsg signals that the program should exit as though it had
// received SIGINT. Send it with [Interrupt].
type InterruptMsg struct{}

// Interrupt is a command that tells the program to exit with
// [ErrInterrupted].
func Interrupt() Msg {
	return InterruptMsg{}
}

// SuspendMsg signals the program should suspend. The terminal runs in raw
// mode, so pressing ctrl+z arrives as a KeyMsg (KeyCtrlZ) rather than as a
// suspend; a program sends SuspendMsg itself with [Suspend]. On Unix, a
// SIGTSTP sent to the process from outside is also turned into one.
type SuspendMsg struct{}

// Suspend is a command that tells the program to suspend.
func Suspend() Msg {
	return SuspendMsg{}
}

// ResumeMsg is sent once a suspended program has resumed.
type ResumeMsg struct{}

type inputType int

const (
	defaultInput inputType = iota
	ttyInput
	customInput
)

func (i inputType) String() string {
	return [...]string{"default input", "tty input", "custom input"}[i]
}

// startupOptions are configuration bits fixed for the lifetime of a Program.
type startupOptions int16

func (s startupOptions) has(option startupOptions) bool {
	return s&option != 0
}

const (
	withAltScreen startupOptions = 1 << iota
	withMouseCellMotion
	withMouseAllMotion
	withoutSignalHandler
	withoutCatchPanics
	withoutBracketedPaste
	withReportFocus
	withANSICompressor
)

// channelHandlers tracks background goroutines so shutdown can wait for
// them to finish before the terminal is restored.
type channelHandlers struct {
	mu       sync.Mutex
	handlers []chan struct{}
}

func (h *channelHandlers) add(ch chan struct{}) {
	h.mu.Lock()
	h.handlers = append(h.handlers, ch)
	h.mu.Unlock()
}

func (h *channelHandlers) shutdown() {
	h.mu.Lock()
	handlers := append([]chan struct{}(nil), h.handlers...)
	h.mu.Unlock()

	var wg sync.WaitGroup
	for _, ch := range handlers {
		wg.Add(1)
		go func(ch chan struct{}) {
			defer wg.Done()
			<-ch
		}(ch)
	}
	wg.Wait()
}

// Program is a running (or not-yet-started) terminal user interface.
type Program struct {
	initialModel Model

	handlers channelHandlers

	startupOptions startupOptions
	startupTitle   string

	inputType inputType

	externalCtx context.Context
	ctx         context.Context
	cancel      context.CancelFunc

	msgs     chan Msg
	errs     chan error
	finished chan struct{}
	shutOnce sync.Once

	output              io.Writer
	ttyOutput           termFile
	previousOutputState *terminalState

	input       io.Reader
	ttyInput    termFile
	inputReader *driver

	environ []string

	filter MsgFilter

	fps int

	renderer Renderer

	ignoreSignals uint32

	profile Profile

	width, height int
}

// NewProgram creates a Program that will run the given model.
func NewProgram(model Model, opts ...ProgramOption) *Program {
	p := &Program{
		initialModel: model,
		msgs:         make(chan Msg),
		output:       os.Stdout,
		input:        os.Stdin,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.externalCtx == nil {
		p.externalCtx = context.Background()
	}
	p.ctx, p.cancel = context.WithCancel(p.externalCtx)

	if p.environ == nil {
		p.environ = os.Environ()
	}

	if p.fps < 1 {
		p.fps = defaultFPS
	} else if p.fps > maxFPS {
		p.fps = maxFPS
	}

	return p
}

// handleSignals installs the process signal handler: SIGINT becomes
// InterruptMsg, SIGTERM becomes QuitMsg.
func (p *Program) handleSignals() chan struct{} {
	ch := make(chan struct{})

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		defer func() {
			signal.Stop(sig)
			close(ch)
		}()

		for {
			select {
			case <-p.ctx.Done():
				return
			case s := <-sig:
				if atomic.LoadUint32(&p.ignoreSignals) != 0 {
					continue
				}
				switch s {
				case syscall.SIGINT:
					p.Send(InterruptMsg{})
				default:
					p.Send(QuitMsg{})
				}
				return
			}
		}
	}()

	return ch
}

// handleResize listens for terminal resizes, platform permitting.
func (p *Program) handleResize() chan struct{} {
	ch := make(chan struct{})
	if p.ttyOutput != nil {
		go p.listenForResize(ch)
	} else {
		close(ch)
	}
	return ch
}

// handleCommands runs submitted commands concurrently and feeds their
// resulting messages back into the event loop.
func (p *Program) handleCommands(cmds chan Cmd) chan struct{} {
	ch := make(chan struct{})

	go func() {
		defer close(ch)
		for {
			select {
			case <-p.ctx.Done():
				return
			case cmd := <-cmds:
				if cmd == nil {
					continue
				}
				go func() {
					if !p.startupOptions.has(withoutCatchPanics) {
						defer func() {
							if r := recover(); r != nil {
								p.recoverFromPanic(r)
							}
						}()
					}
					msg := cmd()
					p.Send(msg)
				}()
			}
		}
	}()

	return ch
}

// eventLoop is the central message loop. It receives decoded Msgs, applies
// the optional filter, handles the runtime's own control messages
// directly, and otherwise drives the model's Update/View cycle.
func (p *Program) eventLoop(model Model, cmds chan Cmd) (Model, error) {
	for {
		select {
		case <-p.ctx.Done():
			return model, nil

		case err := <-p.errs:
			return model, err

		case msg := <-p.msgs:
			if p.filter != nil {
				msg = p.filter(model, msg)
			}
			if msg == nil {
				continue
			}

			switch msg := msg.(type) {
			case QuitMsg:
				return model, nil

			case InterruptMsg:
				return model, ErrInterrupted

			case SuspendMsg:
				p.suspend()
				continue

			case BatchMsg:
				for _, cmd := range msg {
					select {
					case <-p.ctx.Done():
						return model, nil
					case cmds <- cmd:
					}
				}
				continue

			case sequenceMsg:
				go sequentially(p.ctx, msg, p.Send)
				continue

			case execMsg:
				p.exec(msg.cmd, msg.fn)
				continue

			case setWindowTitleMsg:
				if p.renderer != nil {
					p.renderer.SetWindowTitle(string(msg))
				}
				continue

			case WindowSizeMsg:
				p.width, p.height = msg.Width, msg.Height
				if p.renderer != nil {
					p.renderer.Resize(msg.Width, msg.Height)
				}

			case printLineMessage:
				if p.renderer != nil {
					_ = p.renderer.InsertAbove(msg.messageBody)
				}
				continue

			case clearScrollAreaMsg, syncScrollAreaMsg, scrollUpMsg, scrollDownMsg:
				if p.renderer != nil {
					p.handleRendererMsg(msg)
				}
				continue

			case repaintMsg:
				if p.renderer != nil {
					p.renderer.Repaint()
				}
				continue

			case clearScreenMsg:
				if p.renderer != nil {
					p.renderer.ClearScreen()
				}
				continue

			case enterAltScreenMsg:
				if p.renderer != nil {
					p.renderer.EnterAltScreen()
				}
				continue

			case exitAltScreenMsg:
				if p.renderer != nil {
					p.renderer.ExitAltScreen()
				}
				continue

			case enableMouseCellMotionMsg:
				p.execute(enableMouseCellMotionSeq)
				continue

			case enableMouseAllMotionMsg:
				p.execute(enableMouseAllMotionSeq)
				continue

			case disableMouseMsg:
				p.execute(disableMouseSeq)
				continue

			case showCursorMsg:
				if p.renderer != nil {
					p.renderer.ShowCursor()
				}
				continue

			case hideCursorMsg:
				if p.renderer != nil {
					p.renderer.HideCursor()
				}
				continue

			case enableBracketedPasteMsg:
				p.execute(setBracketedPasteMode)
				continue

			case disableBracketedPasteMsg:
				p.execute(resetBracketedPasteMode)
				continue

			case enableReportFocusMsg:
				p.execute(setFocusEventMode)
				continue

			case disableReportFocusMsg:
				p.execute(resetFocusEventMode)
				continue

			case readClipboardMsg:
				go p.readClipboard()
				continue

			case setClipboardMsg:
				go p.writeClipboard(string(msg))
				continue
			}

			var cmd Cmd
			model, cmd = model.Update(msg)

			if cmd != nil {
				select {
				case <-p.ctx.Done():
					return model, nil
				case cmds <- cmd:
				}
			}

			p.render(model)
		}
	}
}

func (p *Program) execute(seq string) {
	if p.renderer != nil {
		p.renderer.Execute(seq)
	}
}

// render renders the model's current view through the renderer.
func (p *Program) render(model Model) {
	if p.renderer == nil {
		return
	}
	p.renderer.Write(model.View())
}

// Run initializes the terminal, drives the event loop, and returns the
// final model. It blocks until the program quits, is interrupted, or is
// killed.
func (p *Program) Run() (returnModel Model, returnErr error) {
	cmds := make(chan Cmd)
	p.errs = make(chan error, 1)
	p.finished = make(chan struct{})
	defer close(p.finished)
	defer p.cancel()

	if p.inputType == ttyInput {
		f, err := openInputTTY()
		if err != nil {
			return p.initialModel, err
		}
		defer f.Close() //nolint:errcheck
		p.input = f
	}

	if !p.startupOptions.has(withoutSignalHandler) {
		p.handlers.add(p.handleSignals())
	}
	p.handlers.add(p.listenForJobControl())

	if !p.startupOptions.has(withoutCatchPanics) {
		defer func() {
			if r := recover(); r != nil {
				returnErr = fmt.Errorf("%w: %v", ErrProgramPanic, r)
				p.recoverFromPanic(r)
			}
		}()
	}

	if err := p.initTerminal(); err != nil {
		return p.initialModel, err
	}
	defer func() { _ = p.restoreTerminalState() }()

	p.profile = detectColorProfile(p.output, p.environ)

	trace := traceEnabled(p.environ)
	p.output = newSafeWriter(p.output, trace)

	if p.renderer == nil {
		p.renderer = newStandardRenderer(p.output, p.startupOptions.has(withANSICompressor), p.fps)
	}

	if p.ttyOutput != nil {
		if w, h, err := getTermSize(p.ttyOutput); err == nil {
			p.width, p.height = w, h
		}
	}
	p.renderer.Resize(p.width, p.height)
	go p.Send(WindowSizeMsg{Width: p.width, Height: p.height})

	model := p.initialModel

	if p.input != nil {
		d, err := newDriver(p.input, trace)
		if err == nil {
			p.inputReader = d
			ch := make(chan struct{})
			p.handlers.add(ch)
			go func() {
				defer close(ch)
				_ = d.readLoop(p.ctx, p.msgs)
			}()
		}
	}

	p.renderer.HideCursor()
	if p.startupTitle != "" {
		p.renderer.SetWindowTitle(p.startupTitle)
	}
	if p.startupOptions.has(withAltScreen) {
		p.renderer.EnterAltScreen()
	}
	if !p.startupOptions.has(withoutBracketedPaste) {
		p.execute(setBracketedPasteMode)
	}
	if p.startupOptions.has(withMouseCellMotion) {
		p.execute(enableMouseCellMotionSeq)
	} else if p.startupOptions.has(withMouseAllMotion) {
		p.execute(enableMouseAllMotionSeq)
	}
	if p.startupOptions.has(withReportFocus) {
		p.execute(setFocusEventMode)
	}

	p.renderer.Start()

	initCmd := model.Init()

	// Force the initial render before any input can possibly be observed.
	p.render(model)

	if initCmd != nil {
		ch := make(chan struct{})
		p.handlers.add(ch)
		go func() {
			defer close(ch)
			select {
			case cmds <- initCmd:
			case <-p.ctx.Done():
			}
		}()
	}

	p.handlers.add(p.handleResize())
	p.handlers.add(p.handleCommands(cmds))

	model, err := p.eventLoop(model, cmds)

	if err == nil && len(p.errs) > 0 {
		err = <-p.errs
	}

	killed := p.externalCtx.Err() != nil || p.ctx.Err() != nil || err != nil
	switch {
	case killed && err == nil && p.externalCtx.Err() != nil:
		err = fmt.Errorf("%w: %w", ErrProgramKilled, p.externalCtx.Err())
	case killed && err == nil:
		err = ErrProgramKilled
	case killed:
		err = fmt.Errorf("%w: %w", ErrProgramKilled, err)
	default:
		p.render(model)
	}

	p.shutdown(killed)

	return model, err
}

// Send delivers a message to the running program from outside its own
// goroutines. It's a no-op once the program has finished.
func (p *Program) Send(msg Msg) {
	select {
	case <-p.ctx.Done():
	case p.msgs <- msg:
	}
}

// Quit requests that the program shut down cleanly. Safe to call before
// start or after the program has already exited.
func (p *Program) Quit() {
	p.Send(Quit())
}

// Kill stops the program immediately, restoring the terminal but skipping
// the final render. [Program.Run] returns [ErrProgramKilled].
func (p *Program) Kill() {
	p.cancel()
	p.shutdown(true)
}

// Wait blocks until the program has finished shutting down.
func (p *Program) Wait() {
	<-p.finished
}

// Println prints a line above the rendered frame. It persists in the
// terminal's scrollback across renders, and is a no-op while the alternate
// screen is active.
func (p *Program) Println(args ...interface{}) {
	p.Send(printLineMessage{messageBody: fmt.Sprint(args...)})
}

// Printf is like [Program.Println] but takes a format string.
func (p *Program) Printf(template string, args ...interface{}) {
	p.Send(printLineMessage{messageBody: fmt.Sprintf(template, args...)})
}

// ReleaseTerminal puts the terminal back into its original (cooked) state
// and disables every mode the runtime enabled, without stopping the
// program. Used to cede the tty to a child process (see Exec/ExecProcess)
// and when suspending on ctrl+z.
func (p *Program) ReleaseTerminal() error {
	atomic.StoreUint32(&p.ignoreSignals, 1)
	if p.renderer != nil {
		p.renderer.ExitAltScreen()
		p.renderer.ShowCursor()
	}
	p.execute(resetBracketedPasteMode)
	p.execute(disableMouseSeq)
	p.execute(resetFocusEventMode)
	return p.restoreTerminalState()
}

// RestoreTerminal re-applies raw mode and every mode the program started
// with, reversing a prior ReleaseTerminal.
func (p *Program) RestoreTerminal() error {
	atomic.StoreUint32(&p.ignoreSignals, 0)

	if err := p.initTerminal(); err != nil {
		return err
	}

	if p.startupOptions.has(withAltScreen) && p.renderer != nil {
		p.renderer.EnterAltScreen()
	}
	if !p.startupOptions.has(withoutBracketedPaste) {
		p.execute(setBracketedPasteMode)
	}
	if p.startupOptions.has(withMouseCellMotion) {
		p.execute(enableMouseCellMotionSeq)
	} else if p.startupOptions.has(withMouseAllMotion) {
		p.execute(enableMouseAllMotionSeq)
	}
	if p.startupOptions.has(withReportFocus) {
		p.execute(setFocusEventMode)
	}
	if p.renderer != nil {
		p.renderer.HideCursor()
		p.renderer.Repaint()
	}
	return nil
}

func (p *Program) shutdown(kill bool) {
	p.shutOnce.Do(func() {
		p.cancel()
		if p.inputReader != nil {
			p.inputReader.Cancel()
		}
		p.handlers.shutdown()

		if p.inputReader != nil {
			_ = p.inputReader.Close()
		}

		if p.renderer != nil {
			if p.renderer.AltScreen() {
				p.renderer.ExitAltScreen()
			}
			p.renderer.ShowCursor()
			p.execute(resetBracketedPasteMode)
			p.execute(disableMouseSeq)
			p.execute(resetFocusEventMode)
			if !kill {
				_ = p.renderer.Flush()
			}
			_ = p.renderer.Close()
		}
	})
}

func (p *Program) recoverFromPanic(r interface{}) {
	select {
	case p.errs <- ErrProgramPanic:
	default:
	}
	p.cancel()
	p.shutdown(true)

	rec := strings.ReplaceAll(fmt.Sprintf("%v", r), "\n", "\r\n")
	fmt.Fprintf(os.Stderr, "Caught panic:\r\n\r\n%s\r\n\r\nRestoring terminal...\r\n\r\n", rec)
	stack := strings.ReplaceAll(fmt.Sprintf("%s\n", debug.Stack()), "\n", "\r\n")
	fmt.Fprint(os.Stderr, stack)
}
