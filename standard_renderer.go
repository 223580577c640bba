package tea

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/muesli/ansi/compressor"
)

const (
	// defaultFPS specifies the default interval at which the view is
	// flushed to the terminal.
	defaultFPS = 60
	maxFPS     = 120
)

// standardRenderer is a framerate-limited, diff-based [Renderer]. It
// compares each new frame against the last one it painted and only writes
// the lines that changed, bounding terminal write volume to the configured
// frame rate regardless of how often the model re-renders.
type standardRenderer struct {
	mtx *sync.Mutex
	out io.Writer

	buf                bytes.Buffer
	queuedMessageLines []string
	framerate          time.Duration
	ticker             *time.Ticker
	done               chan struct{}
	lastRender         string
	lastRenderedLines  []string
	linesRendered      int
	altLinesRendered   int
	useANSICompressor  bool
	once               sync.Once

	cursorHidden bool

	altScreenActive bool
	bpActive        bool
	reportingFocus  bool

	width  int
	height int

	ignoreLines map[int]struct{}
}

func newStandardRenderer(out io.Writer, useANSICompressor bool, fps int) *standardRenderer {
	if fps < 1 {
		fps = defaultFPS
	} else if fps > maxFPS {
		fps = maxFPS
	}
	r := &standardRenderer{
		out:                out,
		mtx:                &sync.Mutex{},
		done:               make(chan struct{}),
		framerate:          time.Second / time.Duration(fps),
		useANSICompressor:  useANSICompressor,
		queuedMessageLines: []string{},
	}
	if r.useANSICompressor {
		r.out = &compressor.Writer{Forward: out}
	}
	return r
}

var _ Renderer = (*standardRenderer)(nil)

// Start starts the renderer's flush loop.
func (r *standardRenderer) Start() {
	if r.ticker == nil {
		r.ticker = time.NewTicker(r.framerate)
	} else {
		r.ticker.Reset(r.framerate)
	}
	r.once = sync.Once{}
	go r.listen()
}

// Close permanently halts the renderer, painting the final frame.
func (r *standardRenderer) Close() error {
	r.once.Do(func() {
		r.done <- struct{}{}
	})

	_ = r.Flush()

	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.execute(eraseEntireLine)
	r.execute("\r")

	if r.useANSICompressor {
		if w, ok := r.out.(io.WriteCloser); ok {
			return w.Close()
		}
	}
	return nil
}

func (r *standardRenderer) execute(seq string) {
	_, _ = io.WriteString(r.out, seq)
}

func (r *standardRenderer) listen() {
	for {
		select {
		case <-r.done:
			r.ticker.Stop()
			return
		case <-r.ticker.C:
			_ = r.Flush()
		}
	}
}

// Flush renders the buffered frame, writing only the lines that changed
// since the last flush.
func (r *standardRenderer) Flush() error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.buf.Len() == 0 || r.buf.String() == r.lastRender {
		return nil
	}

	buf := &bytes.Buffer{}

	if r.altScreenActive {
		buf.WriteString(cursorHomePos)
	} else if r.linesRendered > 1 {
		buf.WriteString(cursorUp(r.linesRendered - 1))
	}

	newLines := strings.Split(r.buf.String(), "\n")

	if r.height > 0 && len(newLines) > r.height {
		newLines = newLines[len(newLines)-r.height:]
	}

	flushQueuedMessages := len(r.queuedMessageLines) > 0 && !r.altScreenActive

	if flushQueuedMessages {
		for _, line := range r.queuedMessageLines {
			if stringWidth(line) < r.width {
				line += eraseLineRight
			}
			buf.WriteString(line)
			buf.WriteString("\r\n")
		}
		r.queuedMessageLines = []string{}
	}

	for i := 0; i < len(newLines); i++ {
		canSkip := !flushQueuedMessages &&
			len(r.lastRenderedLines) > i && r.lastRenderedLines[i] == newLines[i]

		if _, ignore := r.ignoreLines[i]; ignore || canSkip {
			if i < len(newLines)-1 {
				buf.WriteByte('\n')
			}
			continue
		}

		if i == 0 && r.lastRender == "" {
			buf.WriteByte('\r')
		}

		line := newLines[i]
		if r.width > 0 {
			line = truncate(line, r.width)
		}
		if stringWidth(line) < r.width {
			line += eraseLineRight
		}

		buf.WriteString(line)
		if i < len(newLines)-1 {
			buf.WriteString("\r\n")
		}
	}

	if r.lastLinesRendered() > len(newLines) {
		buf.WriteString(eraseScreenBelow)
	}

	if r.altScreenActive {
		r.altLinesRendered = len(newLines)
	} else {
		r.linesRendered = len(newLines)
	}

	if r.altScreenActive {
		buf.WriteString(cursorPosition(0, len(newLines)))
	} else {
		buf.WriteString(cursorBackward(r.width))
	}

	_, err := r.out.Write(buf.Bytes())
	r.lastRender = r.buf.String()
	r.lastRenderedLines = newLines
	r.buf.Reset()
	return err
}

func (r *standardRenderer) lastLinesRendered() int {
	if r.altScreenActive {
		return r.altLinesRendered
	}
	return r.linesRendered
}

// Write stages a new frame for the next flush.
func (r *standardRenderer) Write(s string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.buf.Reset()

	if s == "" {
		// Rendering truly nothing leaves no trace to diff against, so we
		// substitute a single space rather than add bookkeeping for it.
		s = " "
	}
	r.buf.WriteString(s)
}

func (r *standardRenderer) repaint() {
	r.lastRender = ""
	r.lastRenderedLines = nil
}

func (r *standardRenderer) Repaint() {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.repaint()
}

func (r *standardRenderer) ClearScreen() {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.execute(eraseEntireScreen)
	r.execute(cursorHomePos)

	r.repaint()
}

func (r *standardRenderer) AltScreen() bool {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return r.altScreenActive
}

func (r *standardRenderer) EnterAltScreen() {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.altScreenActive {
		return
	}

	r.altScreenActive = true
	r.execute(setAltScreenSaveCursorMode)

	r.execute(eraseEntireScreen)
	r.execute(cursorHomePos)

	if r.cursorHidden {
		r.execute(hideCursorSeq)
	} else {
		r.execute(showCursorSeq)
	}

	r.altLinesRendered = 0
	r.repaint()
}

func (r *standardRenderer) ExitAltScreen() {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if !r.altScreenActive {
		return
	}

	r.altScreenActive = false
	r.execute(resetAltScreenSaveCursorMode)

	if r.cursorHidden {
		r.execute(hideCursorSeq)
	} else {
		r.execute(showCursorSeq)
	}

	r.repaint()
}

func (r *standardRenderer) CursorVisibility() bool {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return !r.cursorHidden
}

func (r *standardRenderer) ShowCursor() {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.cursorHidden = false
	r.execute(showCursorSeq)
}

func (r *standardRenderer) HideCursor() {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.cursorHidden = true
	r.execute(hideCursorSeq)
}

// SetWindowTitle sets the terminal window title.
func (r *standardRenderer) SetWindowTitle(title string) {
	r.execute(setWindowTitleSeq(title))
}

// Execute writes a raw escape sequence directly to the output.
func (r *standardRenderer) Execute(seq string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.execute(seq)
}

// InsertAbove queues a line to be printed above the current frame on the
// next flush. It's a no-op while the alternate screen is active: there's
// no "above" the frame in a full-screen buffer.
func (r *standardRenderer) InsertAbove(body string) error {
	if r.altScreenActive {
		return nil
	}
	lines := strings.Split(body, "\n")
	r.mtx.Lock()
	r.queuedMessageLines = append(r.queuedMessageLines, lines...)
	r.repaint()
	r.mtx.Unlock()
	return nil
}

// Resize informs the renderer of the terminal's current size.
func (r *standardRenderer) Resize(w, h int) {
	r.mtx.Lock()
	r.width = w
	r.height = h
	r.repaint()
	r.mtx.Unlock()
}

// setIgnoredLines specifies lines not to be touched by the renderer, for
// high-performance scroll-region rendering (see [SyncScrollArea]).
func (r *standardRenderer) setIgnoredLines(from, to int) {
	if r.lastLinesRendered() > 0 {
		r.mtx.Lock()
		defer r.mtx.Unlock()
	}

	if r.ignoreLines == nil {
		r.ignoreLines = make(map[int]struct{})
	}
	for i := from; i < to; i++ {
		r.ignoreLines[i] = struct{}{}
	}

	lastLinesRendered := r.lastLinesRendered()
	if lastLinesRendered > 0 {
		buf := &bytes.Buffer{}
		for i := lastLinesRendered - 1; i >= 0; i-- {
			if _, exists := r.ignoreLines[i]; exists {
				buf.WriteString(eraseEntireLine)
			}
			buf.WriteString(cuu1)
		}
		buf.WriteString(cursorPosition(0, lastLinesRendered))
		_, _ = r.out.Write(buf.Bytes())
	}
}

func (r *standardRenderer) clearIgnoredLines() {
	r.ignoreLines = nil
}

// insertTop scrolls the designated scrollable region up, inserting lines at
// its top. For high-performance, scroll-based rendering only.
func (r *standardRenderer) insertTop(lines []string, topBoundary, bottomBoundary int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	buf := &bytes.Buffer{}
	buf.WriteString(setTopBottomMargins(topBoundary, bottomBoundary))
	buf.WriteString(cursorPosition(0, topBoundary))
	buf.WriteString(insertLine(len(lines)))
	buf.WriteString(joinLines(lines))
	buf.WriteString(setTopBottomMargins(0, r.height))
	buf.WriteString(cursorPosition(0, r.lastLinesRendered()))

	_, _ = r.out.Write(buf.Bytes())
}

// insertBottom scrolls the designated scrollable region down, inserting
// lines at its bottom. For high-performance, scroll-based rendering only.
func (r *standardRenderer) insertBottom(lines []string, topBoundary, bottomBoundary int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	buf := &bytes.Buffer{}
	buf.WriteString(setTopBottomMargins(topBoundary, bottomBoundary))
	buf.WriteString(cursorPosition(0, bottomBoundary))
	buf.WriteString("\r\n" + joinLines(lines))
	buf.WriteString(setTopBottomMargins(0, r.height))
	buf.WriteString(cursorPosition(0, r.lastLinesRendered()))

	_, _ = r.out.Write(buf.Bytes())
}

// handleRendererMsg handles renderer-targeted internal messages that don't
// fit the Renderer interface directly (the scroll-region messages).
func (p *Program) handleRendererMsg(msg Msg) bool {
	r, ok := p.renderer.(*standardRenderer)
	if !ok {
		return false
	}

	switch msg := msg.(type) {
	case clearScrollAreaMsg:
		r.clearIgnoredLines()
		r.Repaint()
		return true

	case syncScrollAreaMsg:
		r.clearIgnoredLines()
		r.setIgnoredLines(msg.topBoundary, msg.bottomBoundary)
		r.insertTop(msg.lines, msg.topBoundary, msg.bottomBoundary)
		r.Repaint()
		return true

	case scrollUpMsg:
		r.insertTop(msg.lines, msg.topBoundary, msg.bottomBoundary)
		return true

	case scrollDownMsg:
		r.insertBottom(msg.lines, msg.topBoundary, msg.bottomBoundary)
		return true
	}
	return false
}

// HIGH-PERFORMANCE RENDERING (deprecated; kept for compatibility)

type syncScrollAreaMsg struct {
	lines                      []string
	topBoundary, bottomBoundary int
}

// SyncScrollArea performs a paint of the entire region designated to be the
// scrollable area. Required to initialize the scrollable region, and should
// also be called on resize.
//
// Deprecated: this option will be removed in a future version.
func SyncScrollArea(lines []string, topBoundary, bottomBoundary int) Cmd {
	return func() Msg {
		return syncScrollAreaMsg{lines: lines, topBoundary: topBoundary, bottomBoundary: bottomBoundary}
	}
}

type clearScrollAreaMsg struct{}

// ClearScrollArea deallocates the scrollable region and returns control of
// those lines to the main rendering routine.
//
// Deprecated: this option will be removed in a future version.
func ClearScrollArea() Msg {
	return clearScrollAreaMsg{}
}

type scrollUpMsg struct {
	lines                      []string
	topBoundary, bottomBoundary int
}

// ScrollUp adds lines to the top of the scrollable region, pushing existing
// lines down.
//
// Deprecated: this option will be removed in a future version.
func ScrollUp(newLines []string, topBoundary, bottomBoundary int) Cmd {
	return func() Msg {
		return scrollUpMsg{lines: newLines, topBoundary: topBoundary, bottomBoundary: bottomBoundary}
	}
}

type scrollDownMsg struct {
	lines                      []string
	topBoundary, bottomBoundary int
}

// ScrollDown adds lines to the bottom of the scrollable region, pushing
// existing lines up.
//
// Deprecated: this option will be removed in a future version.
func ScrollDown(newLines []string, topBoundary, bottomBoundary int) Cmd {
	return func() Msg {
		return scrollDownMsg{lines: newLines, topBoundary: topBoundary, bottomBoundary: bottomBoundary}
	}
}

type printLineMessage struct {
	messageBody string
}

// Println prints above the program. This output is unmanaged by the
// program and persists across renders.
//
// Unlike fmt.Println (but like log.Println), the message is printed on its
// own line. No output is produced while the alternate screen is active.
func Println(args ...interface{}) Cmd {
	return func() Msg {
		return printLineMessage{messageBody: fmt.Sprint(args...)}
	}
}

// Printf is like [Println] but takes a format string.
func Printf(template string, args ...interface{}) Cmd {
	return func() Msg {
		return printLineMessage{messageBody: fmt.Sprintf(template, args...)}
	}
}
