package tea

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"unicode/utf8"
)

var (
	unknownCSIRe  = regexp.MustCompile(`^\x1b\[[\x30-\x3f]*[\x20-\x2f]*[\x40-\x7e]`)
	mouseSGRRegex = regexp.MustCompile(`^\x1b\[<\d+;\d+;\d+[Mm]`)
)

// unknownCSISequenceMsg is reported when an unrecognized CSI sequence is
// detected on the input. Having this event makes it possible to
// troubleshoot unhandled terminal responses.
type unknownCSISequenceMsg []byte

func (u unknownCSISequenceMsg) String() string {
	return fmt.Sprintf("?CSI%+v?", []byte(u)[2:])
}

// readAnsiInputs reads from input and emits the messages it decodes on
// msgs until input is exhausted, an error occurs, or ctx is cancelled.
func readAnsiInputs(ctx context.Context, msgs chan<- Msg, input io.Reader) error {
	var buf [256]byte
	var pasteBuf []byte
	var inPaste bool

	var leftover []byte
loop:
	for {
		numBytes, err := input.Read(buf[:])
		if err != nil {
			return fmt.Errorf("error reading input: %w", err)
		}
		b := buf[:numBytes]
		if leftover != nil {
			b = append(leftover, b...)
		}
		canHaveMoreData := numBytes == len(buf)

		var i, w int
		for i, w = 0, 0; i < len(b); i += w {
			if inPaste {
				if string(b[i:]) == pasteEndSeq || (len(b[i:]) >= len(pasteEndSeq) && string(b[i:i+len(pasteEndSeq)]) == pasteEndSeq) {
					msgSent := PasteMsg(pasteBuf)
					pasteBuf = nil
					inPaste = false
					w = len(pasteEndSeq)
					select {
					case msgs <- msgSent:
					case <-ctx.Done():
						return ctx.Err()
					}
					continue
				}
				r, rw := utf8.DecodeRune(b[i:])
				if r == utf8.RuneError && rw <= 1 && canHaveMoreData && i+rw >= len(b) {
					leftover = append([]byte(nil), b[i:]...)
					continue loop
				}
				pasteBuf = append(pasteBuf, b[i:i+rw]...)
				w = rw
				continue
			}

			if len(b[i:]) >= len(pasteStartSeq) && string(b[i:i+len(pasteStartSeq)]) == pasteStartSeq {
				inPaste = true
				pasteBuf = nil
				w = len(pasteStartSeq)
				continue
			}

			var msg Msg
			w, msg = detectOneMsg(b[i:], canHaveMoreData)
			if w == 0 {
				leftover = make([]byte, 0, len(b[i:])+len(buf))
				leftover = append(leftover, b[i:]...)
				continue loop
			}
			if msg == nil {
				continue
			}

			select {
			case msgs <- msg:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		leftover = nil
	}
}

const (
	pasteStartSeq = "\x1b[200~"
	pasteEndSeq   = "\x1b[201~"

	reportFocusSeq = "\x1b[I"
	reportBlurSeq  = "\x1b[O"
)

func detectOneMsg(b []byte, canHaveMoreData bool) (w int, msg Msg) {
	// Mouse events.
	const mouseX10Len = 6
	if len(b) >= 3 && b[0] == '\x1b' && b[1] == '[' {
		switch b[2] {
		case 'M':
			if len(b) >= mouseX10Len {
				ev, err := parseX10MouseEvent(b[:mouseX10Len])
				if err == nil {
					return mouseX10Len, MouseMsg(ev)
				}
			} else if canHaveMoreData {
				return 0, nil
			}
		case '<':
			if loc := mouseSGRRegex.FindIndex(b); loc != nil {
				ev, err := parseSGRMouseEvent(b[:loc[1]])
				if err == nil {
					return loc[1], MouseMsg(ev)
				}
			} else if canHaveMoreData && len(b) < 32 {
				return 0, nil
			}
		}
	}

	// Focus events.
	if len(b) >= len(reportFocusSeq) && string(b[:len(reportFocusSeq)]) == reportFocusSeq {
		return len(reportFocusSeq), FocusMsg{}
	}
	if len(b) >= len(reportBlurSeq) && string(b[:len(reportBlurSeq)]) == reportBlurSeq {
		return len(reportBlurSeq), BlurMsg{}
	}

	// Known escape sequences (arrows, function keys, navigation cluster).
	if b[0] == '\x1b' {
		if k, n, ok := longestSequenceMatch(b); ok {
			return n, KeyMsg(k)
		}
		if loc := unknownCSIRe.FindIndex(b); loc != nil {
			return loc[1], unknownCSISequenceMsg(b[:loc[1]])
		}
	}

	// Escape-prefixed single control byte or rune: Alt modifier.
	alt := false
	i := 0
	if b[0] == '\x1b' && len(b) > 1 {
		alt = true
		i++
	}

	if i < len(b) && b[i] == 0 {
		return i + 1, KeyMsg{Type: keyNUL, Alt: alt}
	}

	// A bare, unrecognized control character (not NUL, not already matched
	// by the sequence table above).
	if i < len(b) && (b[i] < ' ' || b[i] == 127) {
		if b[i] == '\x1b' && len(b) == 1 {
			return 1, KeyMsg{Type: KeyEscape}
		}
		return i + 1, KeyMsg{Type: KeyType(b[i]), Alt: alt}
	}

	// The longest run of printable runes starting here.
	var runes []rune
	for rw := 0; i < len(b); i += rw {
		var r rune
		r, rw = utf8.DecodeRune(b[i:])
		if r == utf8.RuneError {
			if rw <= 1 && canHaveMoreData {
				return 0, nil
			}
			break
		}
		if r <= rune(keyUS) || r == rune(keyDEL) || r == ' ' {
			break
		}
		runes = append(runes, r)
		if alt {
			// Only a single rune is ever reported after an Alt escape.
			i += rw
			break
		}
	}

	if len(runes) > 0 {
		k := Key{Type: KeyRunes, Runes: runes, Alt: alt}
		if len(runes) == 1 && runes[0] == ' ' {
			k.Type = KeySpace
		}
		return i, KeyMsg(k)
	}

	if alt && len(b) == 1 {
		return 1, KeyMsg{Type: KeyEscape}
	}

	if i < len(b) && b[i] == ' ' {
		return i + 1, KeyMsg{Type: KeySpace, Alt: alt}
	}

	return 1, unknownInputByteMsg(b[0])
}
