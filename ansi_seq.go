package tea

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
)

// Cursor and screen control sequences used by the standard renderer. These
// mirror the small, well-known subset of ECMA-48/DEC private-mode
// sequences a terminal renderer needs; we keep them as plain constants and
// helpers rather than reaching for a full sequence-builder dependency.
const (
	eraseEntireLine  = "\x1b[2K"
	eraseLineRight   = "\x1b[K"
	eraseEntireScreen = "\x1b[2J"
	eraseScreenBelow = "\x1b[J"
	cursorHomePos    = "\x1b[H"

	setAltScreenSaveCursorMode   = "\x1b[?1049h"
	resetAltScreenSaveCursorMode = "\x1b[?1049l"

	showCursorSeq = "\x1b[?25h"
	hideCursorSeq = "\x1b[?25l"

	setButtonEventMouseMode   = "\x1b[?1002h"
	resetButtonEventMouseMode = "\x1b[?1002l"
	setAnyEventMouseMode      = "\x1b[?1003h"
	resetAnyEventMouseMode    = "\x1b[?1003l"
	setSgrExtMouseMode        = "\x1b[?1006h"
	resetSgrExtMouseMode      = "\x1b[?1006l"

	setBracketedPasteMode   = "\x1b[?2004h"
	resetBracketedPasteMode = "\x1b[?2004l"

	setFocusEventMode   = "\x1b[?1004h"
	resetFocusEventMode = "\x1b[?1004l"

	cuu1 = "\x1b[1A"
)

func cursorUp(n int) string {
	if n < 1 {
		return ""
	}
	return "\x1b[" + strconv.Itoa(n) + "A"
}

func cursorBackward(n int) string {
	if n < 1 {
		return ""
	}
	return "\x1b[" + strconv.Itoa(n) + "D"
}

// cursorPosition moves the cursor to (col, row), both 0-indexed.
func cursorPosition(col, row int) string {
	return "\x1b[" + strconv.Itoa(row+1) + ";" + strconv.Itoa(col+1) + "H"
}

func setWindowTitleSeq(title string) string {
	return "\x1b]0;" + title + "\a"
}

func setTopBottomMargins(top, bottom int) string {
	return "\x1b[" + strconv.Itoa(top) + ";" + strconv.Itoa(bottom) + "r"
}

func insertLine(n int) string {
	if n < 1 {
		n = 1
	}
	return "\x1b[" + strconv.Itoa(n) + "L"
}

// stringWidth returns the number of terminal columns a string occupies,
// ignoring embedded escape sequences.
func stringWidth(s string) int {
	return ansi.PrintableRuneWidth(s)
}

// truncate shortens s to fit within width visible columns, falling back to
// go-runewidth for the rune-by-rune accounting ansi's width function
// doesn't do on its own.
func truncate(s string, width int) string {
	if width <= 0 || stringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "")
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\r\n")
}
