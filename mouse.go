package tea

import (
	"errors"
	"strconv"
	"strings"
)

// MouseMsg represents a mouse event, which could be a click, a release, a
// wheel movement, or cursor movement.
type MouseMsg MouseEvent

// String returns a string representation of a mouse event.
func (m MouseMsg) String() string {
	return MouseEvent(m).String()
}

// MouseEvent represents a mouse event.
type MouseEvent struct {
	X    int
	Y    int
	Type MouseEventType
	Alt  bool
	Ctrl bool
}

// String returns a string representation of a mouse event.
func (m MouseEvent) String() (s string) {
	if m.Ctrl {
		s += "ctrl+"
	}
	if m.Alt {
		s += "alt+"
	}
	s += mouseEventTypes[m.Type]
	return s
}

// MouseEventType indicates the type of mouse event occurring.
type MouseEventType int

const (
	MouseUnknown MouseEventType = iota
	MouseLeft
	MouseRight
	MouseMiddle
	MouseRelease
	MouseWheelUp
	MouseWheelDown
	MouseMotion
)

var mouseEventTypes = map[MouseEventType]string{
	MouseUnknown:   "unknown",
	MouseLeft:      "left",
	MouseRight:     "right",
	MouseMiddle:    "middle",
	MouseRelease:   "release",
	MouseWheelUp:   "wheel up",
	MouseWheelDown: "wheel down",
	MouseMotion:    "motion",
}

// enableMouseCellMotionSeq enables X10/cell-motion mouse tracking (ESC[?1002h).
const enableMouseCellMotionSeq = "\x1b[?1002h"

// enableMouseAllMotionSeq enables all-motion mouse tracking (ESC[?1003h).
const enableMouseAllMotionSeq = "\x1b[?1003h"

// disableMouseSeq disables every mouse tracking mode this runtime enables.
const disableMouseSeq = "\x1b[?1002l\x1b[?1003l\x1b[?1006l"

// parseX10MouseEvent parses an X10-encoded mouse event; the simplest kind.
// X10 mouse events look like:
//
//	ESC [ M Cb Cx Cy
func parseX10MouseEvent(buf []byte) (m MouseEvent, err error) {
	if len(buf) != 6 || string(buf[:3]) != "\x1b[M" {
		return m, errors.New("not an X10 mouse event")
	}

	e := buf[3] - 32

	switch e {
	case 35:
		m.Type = MouseMotion
	case 64:
		m.Type = MouseWheelUp
	case 65:
		m.Type = MouseWheelDown
	default:
		switch e & 3 {
		case 0:
			if e&64 != 0 {
				m.Type = MouseWheelUp
			} else {
				m.Type = MouseLeft
			}
		case 1:
			if e&64 != 0 {
				m.Type = MouseWheelDown
			} else {
				m.Type = MouseMiddle
			}
		case 2:
			m.Type = MouseRight
		case 3:
			m.Type = MouseRelease
		}
	}

	if e&8 != 0 {
		m.Alt = true
	}
	if e&16 != 0 {
		m.Ctrl = true
	}

	// (1,1) is the upper left. Normalize to (0,0).
	m.X = int(buf[4]) - 32 - 1
	m.Y = int(buf[5]) - 32 - 1

	return m, nil
}

// parseSGRMouseEvent parses an SGR (1006) encoded mouse event, which allows
// coordinates beyond 223 and distinguishes press from release unambiguously.
// SGR mouse events look like:
//
//	ESC [ < Cb ; Cx ; Cy M (press)
//	ESC [ < Cb ; Cx ; Cy m (release)
func parseSGRMouseEvent(buf []byte) (m MouseEvent, err error) {
	if len(buf) < 9 || string(buf[:3]) != "\x1b[<" {
		return m, errors.New("not an SGR mouse event")
	}

	released := buf[len(buf)-1] == 'm'
	parts := strings.Split(string(buf[3:len(buf)-1]), ";")
	if len(parts) != 3 {
		return m, errors.New("malformed SGR mouse event")
	}

	cb, err := strconv.Atoi(parts[0])
	if err != nil {
		return m, err
	}
	x, err := strconv.Atoi(parts[1])
	if err != nil {
		return m, err
	}
	y, err := strconv.Atoi(parts[2])
	if err != nil {
		return m, err
	}

	switch cb & 0b1100011 {
	case 0:
		m.Type = MouseLeft
	case 1:
		m.Type = MouseMiddle
	case 2:
		m.Type = MouseRight
	case 3:
		m.Type = MouseRelease
	case 64:
		m.Type = MouseWheelUp
	case 65:
		m.Type = MouseWheelDown
	case 32:
		m.Type = MouseMotion
	}
	if released && m.Type != MouseWheelUp && m.Type != MouseWheelDown {
		m.Type = MouseRelease
	}

	if cb&8 != 0 {
		m.Alt = true
	}
	if cb&16 != 0 {
		m.Ctrl = true
	}

	m.X = x - 1
	m.Y = y - 1

	return m, nil
}
