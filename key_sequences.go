package tea

// keyNames maps control keys and other special keys to their friendly,
// user-facing names.
var keyNames = map[KeyType]string{
	keyNUL: "ctrl+@",
	keySOH: "ctrl+a",
	keySTX: "ctrl+b",
	keyETX: "ctrl+c",
	keyEOT: "ctrl+d",
	keyENQ: "ctrl+e",
	keyACK: "ctrl+f",
	keyBEL: "ctrl+g",
	keyBS:  "ctrl+h",
	keyHT:  "tab",
	keyLF:  "ctrl+j",
	keyVT:  "ctrl+k",
	keyFF:  "ctrl+l",
	keyCR:  "enter",
	keySO:  "ctrl+n",
	keySI:  "ctrl+o",
	keyDLE: "ctrl+p",
	keyDC1: "ctrl+q",
	keyDC2: "ctrl+r",
	keyDC3: "ctrl+s",
	keyDC4: "ctrl+t",
	keyNAK: "ctrl+u",
	keySYN: "ctrl+v",
	keyETB: "ctrl+w",
	keyCAN: "ctrl+x",
	keyEM:  "ctrl+y",
	keySUB: "ctrl+z",
	keyESC: "esc",
	keyFS:  "ctrl+\\",
	keyGS:  "ctrl+]",
	keyRS:  "ctrl+^",
	keyUS:  "ctrl+_",
	keyDEL: "backspace",

	KeyRunes:          "runes",
	KeyUp:             "up",
	KeyDown:           "down",
	KeyRight:          "right",
	KeySpace:          " ",
	KeyLeft:           "left",
	KeyShiftTab:       "shift+tab",
	KeyHome:           "home",
	KeyEnd:            "end",
	KeyCtrlHome:       "ctrl+home",
	KeyCtrlEnd:        "ctrl+end",
	KeyShiftHome:      "shift+home",
	KeyShiftEnd:       "shift+end",
	KeyCtrlShiftHome:  "ctrl+shift+home",
	KeyCtrlShiftEnd:   "ctrl+shift+end",
	KeyPgUp:           "pgup",
	KeyPgDown:         "pgdown",
	KeyCtrlPgUp:       "ctrl+pgup",
	KeyCtrlPgDown:     "ctrl+pgdown",
	KeyDelete:         "delete",
	KeyInsert:         "insert",
	KeyCtrlUp:         "ctrl+up",
	KeyCtrlDown:       "ctrl+down",
	KeyCtrlRight:      "ctrl+right",
	KeyCtrlLeft:       "ctrl+left",
	KeyShiftUp:        "shift+up",
	KeyShiftDown:      "shift+down",
	KeyShiftRight:     "shift+right",
	KeyShiftLeft:      "shift+left",
	KeyCtrlShiftUp:    "ctrl+shift+up",
	KeyCtrlShiftDown:  "ctrl+shift+down",
	KeyCtrlShiftLeft:  "ctrl+shift+left",
	KeyCtrlShiftRight: "ctrl+shift+right",
	KeyF1:             "f1",
	KeyF2:             "f2",
	KeyF3:             "f3",
	KeyF4:             "f4",
	KeyF5:             "f5",
	KeyF6:             "f6",
	KeyF7:             "f7",
	KeyF8:             "f8",
	KeyF9:             "f9",
	KeyF10:            "f10",
	KeyF11:            "f11",
	KeyF12:            "f12",
	KeyF13:            "f13",
	KeyF14:            "f14",
	KeyF15:            "f15",
	KeyF16:            "f16",
	KeyF17:            "f17",
	KeyF18:            "f18",
	KeyF19:            "f19",
	KeyF20:            "f20",
}

// sequences maps raw escape sequences emitted by terminals to the Key they
// represent. Lookups try the longest match first (see longestSequenceMatch).
var sequences = map[string]Key{
	"\x1b[A": {Type: KeyUp},
	"\x1b[B": {Type: KeyDown},
	"\x1b[C": {Type: KeyRight},
	"\x1b[D": {Type: KeyLeft},

	"\x1b[1;2A": {Type: KeyShiftUp},
	"\x1b[1;2B": {Type: KeyShiftDown},
	"\x1b[1;2C": {Type: KeyShiftRight},
	"\x1b[1;2D": {Type: KeyShiftLeft},
	"\x1b[OA":   {Type: KeyShiftUp},
	"\x1b[OB":   {Type: KeyShiftDown},
	"\x1b[OC":   {Type: KeyShiftRight},
	"\x1b[OD":   {Type: KeyShiftLeft},
	"\x1b[a":    {Type: KeyShiftUp},
	"\x1b[b":    {Type: KeyShiftDown},
	"\x1b[c":    {Type: KeyShiftRight},
	"\x1b[d":    {Type: KeyShiftLeft},

	"\x1b[1;3A": {Type: KeyUp, Alt: true},
	"\x1b[1;3B": {Type: KeyDown, Alt: true},
	"\x1b[1;3C": {Type: KeyRight, Alt: true},
	"\x1b[1;3D": {Type: KeyLeft, Alt: true},

	"\x1b[1;5A": {Type: KeyCtrlUp},
	"\x1b[1;5B": {Type: KeyCtrlDown},
	"\x1b[1;5C": {Type: KeyCtrlRight},
	"\x1b[1;5D": {Type: KeyCtrlLeft},
	"\x1b[Oa":   {Type: KeyCtrlUp, Alt: true},
	"\x1b[Ob":   {Type: KeyCtrlDown, Alt: true},
	"\x1b[Oc":   {Type: KeyCtrlRight, Alt: true},
	"\x1b[Od":   {Type: KeyCtrlLeft, Alt: true},
	"\x1b[1;6A": {Type: KeyCtrlShiftUp},
	"\x1b[1;6B": {Type: KeyCtrlShiftDown},
	"\x1b[1;6C": {Type: KeyCtrlShiftRight},
	"\x1b[1;6D": {Type: KeyCtrlShiftLeft},

	"\x1b[Z": {Type: KeyShiftTab},

	"\x1b[2~":   {Type: KeyInsert},
	"\x1b[3;2~": {Type: KeyInsert, Alt: true},
	"\x1b[3~":   {Type: KeyDelete},
	"\x1b[3;3~": {Type: KeyDelete, Alt: true},

	"\x1b[5~":   {Type: KeyPgUp},
	"\x1b[5;3~": {Type: KeyPgUp, Alt: true},
	"\x1b[5;5~": {Type: KeyCtrlPgUp},
	"\x1b[5^":   {Type: KeyCtrlPgUp},
	"\x1b[6~":   {Type: KeyPgDown},
	"\x1b[6;3~": {Type: KeyPgDown, Alt: true},
	"\x1b[6;5~": {Type: KeyCtrlPgDown},
	"\x1b[6^":   {Type: KeyCtrlPgDown},

	"\x1b[1~":   {Type: KeyHome},
	"\x1b[H":    {Type: KeyHome},
	"\x1b[1;3H": {Type: KeyHome, Alt: true},
	"\x1b[1;5H": {Type: KeyCtrlHome},
	"\x1b[1;2H": {Type: KeyShiftHome},
	"\x1b[7~":   {Type: KeyHome},
	"\x1b[7^":   {Type: KeyCtrlHome},
	"\x1b[7$":   {Type: KeyShiftHome},

	"\x1b[4~":   {Type: KeyEnd},
	"\x1b[F":    {Type: KeyEnd},
	"\x1b[1;3F": {Type: KeyEnd, Alt: true},
	"\x1b[1;5F": {Type: KeyCtrlEnd},
	"\x1b[1;2F": {Type: KeyShiftEnd},
	"\x1b[8~":   {Type: KeyEnd},
	"\x1b[8^":   {Type: KeyCtrlEnd},
	"\x1b[8$":   {Type: KeyShiftEnd},

	"\x1b[[A": {Type: KeyF1},
	"\x1b[[B": {Type: KeyF2},
	"\x1b[[C": {Type: KeyF3},
	"\x1b[[D": {Type: KeyF4},
	"\x1b[[E": {Type: KeyF5},

	"\x1bOP": {Type: KeyF1},
	"\x1bOQ": {Type: KeyF2},
	"\x1bOR": {Type: KeyF3},
	"\x1bOS": {Type: KeyF4},

	"\x1b[11~": {Type: KeyF1},
	"\x1b[12~": {Type: KeyF2},
	"\x1b[13~": {Type: KeyF3},
	"\x1b[14~": {Type: KeyF4},
	"\x1b[15~": {Type: KeyF5},
	"\x1b[17~": {Type: KeyF6},
	"\x1b[18~": {Type: KeyF7},
	"\x1b[19~": {Type: KeyF8},
	"\x1b[20~": {Type: KeyF9},
	"\x1b[21~": {Type: KeyF10},
	"\x1b[23~": {Type: KeyF11},
	"\x1b[24~": {Type: KeyF12},
	"\x1b[25~": {Type: KeyF13},
	"\x1b[26~": {Type: KeyF14},
	"\x1b[28~": {Type: KeyF15},
	"\x1b[29~": {Type: KeyF16},
	"\x1b[31~": {Type: KeyF17},
	"\x1b[32~": {Type: KeyF18},
	"\x1b[33~": {Type: KeyF19},
	"\x1b[34~": {Type: KeyF20},
}

// longestSequenceMatch returns the longest prefix of b found in the
// sequences table along with its length, or ok=false if none match.
func longestSequenceMatch(b []byte) (k Key, n int, ok bool) {
	// Escape sequences are short; bounding the scan avoids a table miss on
	// arbitrarily long input before falling back to rune decoding.
	const maxSeqLen = 8
	upper := len(b)
	if upper > maxSeqLen {
		upper = maxSeqLen
	}
	for n := upper; n > 0; n-- {
		if key, found := sequences[string(b[:n])]; found {
			return key, n, true
		}
	}
	return Key{}, 0, false
}
