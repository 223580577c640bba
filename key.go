package tea

import (
	"fmt"
	"strings"
)

// KeyMsg contains information about a keypress. KeyMsgs are always sent to
// the program's update function. There are a couple of general patterns you
// could use to check for keypresses:
//
//	// Switch on the string representation of the key (shorter)
//	switch msg := msg.(type) {
//	case KeyMsg:
//	    switch msg.String() {
//	    case "enter":
//	        fmt.Println("you pressed enter!")
//	    case "a":
//	        fmt.Println("you pressed a!")
//	    }
//	}
//
//	// Switch on the key type (more foolproof)
//	switch msg := msg.(type) {
//	case KeyMsg:
//	    switch msg.Type {
//	    case KeyEnter:
//	        fmt.Println("you pressed enter!")
//	    case KeyRunes:
//	        switch string(msg.Runes) {
//	        case "a":
//	            fmt.Println("you pressed a!")
//	        }
//	    }
//	}
//
// Key.Runes will always contain at least one character, so it's safe to
// call Key.Runes[0]. In most cases Key.Runes will only contain a single
// rune, though certain input method editors (most notably Chinese IMEs)
// can input multiple runes at once.
type KeyMsg Key

// String returns a string representation for a key message. It's safe, and
// encouraged, for use in key comparison.
func (k KeyMsg) String() string {
	return Key(k).String()
}

// Key contains information about a keypress.
type Key struct {
	Type  KeyType
	Runes []rune
	Alt   bool
	Paste bool
}

// String returns a friendly string representation for a key.
//
//	k := Key{Type: KeyEnter}
//	fmt.Println(k)
//	// Output: enter
func (k Key) String() (str string) {
	var buf strings.Builder
	if k.Alt {
		buf.WriteString("alt+")
	}
	if k.Type == KeyRunes {
		if k.Paste {
			// Pasted text is bracketed so that callers comparing key
			// strings directly can't mistake paste content for shortcuts.
			buf.WriteByte('[')
		}
		buf.WriteString(string(k.Runes))
		if k.Paste {
			buf.WriteByte(']')
		}
		return buf.String()
	} else if s, ok := keyNames[k.Type]; ok {
		buf.WriteString(s)
		return buf.String()
	}
	return ""
}

// KeyType indicates the key pressed, such as KeyEnter or KeyCtrlC. All other
// keys are of type KeyRunes; use the Runes field to get the actual value(s)
// pressed, or use Key.String().
type KeyType int

func (k KeyType) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return ""
}

// Control keys. Values are specific and not iota-derived: they correspond
// to the C0 control code each key sends.
//
// See also: https://en.wikipedia.org/wiki/C0_and_C1_control_codes
const (
	keyNUL KeyType = 0
	keySOH KeyType = 1
	keySTX KeyType = 2
	keyETX KeyType = 3
	keyEOT KeyType = 4
	keyENQ KeyType = 5
	keyACK KeyType = 6
	keyBEL KeyType = 7
	keyBS  KeyType = 8
	keyHT  KeyType = 9
	keyLF  KeyType = 10
	keyVT  KeyType = 11
	keyFF  KeyType = 12
	keyCR  KeyType = 13
	keySO  KeyType = 14
	keySI  KeyType = 15
	keyDLE KeyType = 16
	keyDC1 KeyType = 17
	keyDC2 KeyType = 18
	keyDC3 KeyType = 19
	keyDC4 KeyType = 20
	keyNAK KeyType = 21
	keySYN KeyType = 22
	keyETB KeyType = 23
	keyCAN KeyType = 24
	keyEM  KeyType = 25
	keySUB KeyType = 26
	keyESC KeyType = 27
	keyFS  KeyType = 28
	keyGS  KeyType = 29
	keyRS  KeyType = 30
	keyUS  KeyType = 31
	keyDEL KeyType = 127
)

// Control key aliases.
const (
	KeyNull      KeyType = keyNUL
	KeyBreak     KeyType = keyETX
	KeyEnter     KeyType = keyCR
	KeyBackspace KeyType = keyDEL
	KeyTab       KeyType = keyHT
	KeyEsc       KeyType = keyESC
	KeyEscape    KeyType = keyESC

	KeyCtrlAt           KeyType = keyNUL
	KeyCtrlA            KeyType = keySOH
	KeyCtrlB            KeyType = keySTX
	KeyCtrlC            KeyType = keyETX
	KeyCtrlD            KeyType = keyEOT
	KeyCtrlE            KeyType = keyENQ
	KeyCtrlF            KeyType = keyACK
	KeyCtrlG            KeyType = keyBEL
	KeyCtrlH            KeyType = keyBS
	KeyCtrlI            KeyType = keyHT
	KeyCtrlJ            KeyType = keyLF
	KeyCtrlK            KeyType = keyVT
	KeyCtrlL            KeyType = keyFF
	KeyCtrlM            KeyType = keyCR
	KeyCtrlN            KeyType = keySO
	KeyCtrlO            KeyType = keySI
	KeyCtrlP            KeyType = keyDLE
	KeyCtrlQ            KeyType = keyDC1
	KeyCtrlR            KeyType = keyDC2
	KeyCtrlS            KeyType = keyDC3
	KeyCtrlT            KeyType = keyDC4
	KeyCtrlU            KeyType = keyNAK
	KeyCtrlV            KeyType = keySYN
	KeyCtrlW            KeyType = keyETB
	KeyCtrlX            KeyType = keyCAN
	KeyCtrlY            KeyType = keyEM
	KeyCtrlZ            KeyType = keySUB
	KeyCtrlOpenBracket  KeyType = keyESC
	KeyCtrlBackslash    KeyType = keyFS
	KeyCtrlCloseBracket KeyType = keyGS
	KeyCtrlCaret        KeyType = keyRS
	KeyCtrlUnderscore   KeyType = keyUS
	KeyCtrlQuestionMark KeyType = keyDEL
)

// Other keys, not representable as a single control code.
const (
	KeyRunes KeyType = -(iota + 1)
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyShiftTab
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDown
	KeyCtrlPgUp
	KeyCtrlPgDown
	KeyDelete
	KeyInsert
	KeySpace
	KeyCtrlUp
	KeyCtrlDown
	KeyCtrlRight
	KeyCtrlLeft
	KeyCtrlHome
	KeyCtrlEnd
	KeyShiftUp
	KeyShiftDown
	KeyShiftRight
	KeyShiftLeft
	KeyShiftHome
	KeyShiftEnd
	KeyCtrlShiftUp
	KeyCtrlShiftDown
	KeyCtrlShiftLeft
	KeyCtrlShiftRight
	KeyCtrlShiftHome
	KeyCtrlShiftEnd
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
)

// unknownInputByteMsg is reported when an invalid byte is detected on the
// input. It isn't handled further by the runtime, but reporting it makes it
// possible to troubleshoot malformed input streams.
type unknownInputByteMsg byte

func (u unknownInputByteMsg) String() string {
	return fmt.Sprintf("?%#02x?", byte(u))
}
