// Package tern provides terminal input sequences and their decoding into
// key events.
package tern

// Raw byte sequences terminals emit for special keys.
const (
	seqEnter   = "\r"
	seqEnterLF = "\n"
	seqTab     = "\t"
	seqEscape  = "\x1b"

	seqBackspace     = "\x7f"
	seqBackspaceCtrl = "\b"
	seqDelete        = "\x1b[3~"
	seqInsert        = "\x1b[2~"

	seqLeft     = "\x1b[D"
	seqRight    = "\x1b[C"
	seqUp       = "\x1b[A"
	seqDown     = "\x1b[B"
	seqHome     = "\x1b[H"
	seqHomeAlt  = "\x1b[1~"
	seqEnd      = "\x1b[F"
	seqEndAlt   = "\x1b[4~"
	seqPageUp   = "\x1b[5~"
	seqPageDown = "\x1b[6~"

	seqShiftTab = "\x1b[Z"

	seqF1  = "\x1bOP"
	seqF2  = "\x1bOQ"
	seqF3  = "\x1bOR"
	seqF4  = "\x1bOS"
	seqF5  = "\x1b[15~"
	seqF6  = "\x1b[17~"
	seqF7  = "\x1b[18~"
	seqF8  = "\x1b[19~"
	seqF9  = "\x1b[20~"
	seqF10 = "\x1b[21~"
	seqF11 = "\x1b[23~"
	seqF12 = "\x1b[24~"
)

// sequenceKeys maps complete escape sequences to their key events.
var sequenceKeys = map[string]KeyEvent{
	seqEnter:         {Code: KeyEnter},
	seqEnterLF:       {Code: KeyEnter},
	seqTab:           {Code: KeyTab},
	seqBackspace:     {Code: KeyBackspace},
	seqBackspaceCtrl: {Code: KeyBackspace},
	seqDelete:        {Code: KeyDelete},
	seqInsert:        {Code: KeyInsert},
	seqLeft:          {Code: KeyLeft},
	seqRight:         {Code: KeyRight},
	seqUp:            {Code: KeyUp},
	seqDown:          {Code: KeyDown},
	seqHome:          {Code: KeyHome},
	seqHomeAlt:       {Code: KeyHome},
	seqEnd:           {Code: KeyEnd},
	seqEndAlt:        {Code: KeyEnd},
	seqPageUp:        {Code: KeyPageUp},
	seqPageDown:      {Code: KeyPageDown},
	seqShiftTab:      {Code: KeyBackTab, Mods: ModShift},
	seqF1:            {Code: KeyF1},
	seqF2:            {Code: KeyF2},
	seqF3:            {Code: KeyF3},
	seqF4:            {Code: KeyF4},
	seqF5:            {Code: KeyF5},
	seqF6:            {Code: KeyF6},
	seqF7:            {Code: KeyF7},
	seqF8:            {Code: KeyF8},
	seqF9:            {Code: KeyF9},
	seqF10:           {Code: KeyF10},
	seqF11:           {Code: KeyF11},
	seqF12:           {Code: KeyF12},

	// Modified arrows (xterm CSI 1;<mod> suffixes).
	"\x1b[1;2A": {Code: KeyUp, Mods: ModShift},
	"\x1b[1;2B": {Code: KeyDown, Mods: ModShift},
	"\x1b[1;2C": {Code: KeyRight, Mods: ModShift},
	"\x1b[1;2D": {Code: KeyLeft, Mods: ModShift},
	"\x1b[1;3A": {Code: KeyUp, Mods: ModAlt},
	"\x1b[1;3B": {Code: KeyDown, Mods: ModAlt},
	"\x1b[1;3C": {Code: KeyRight, Mods: ModAlt},
	"\x1b[1;3D": {Code: KeyLeft, Mods: ModAlt},
	"\x1b[1;5A": {Code: KeyUp, Mods: ModControl},
	"\x1b[1;5B": {Code: KeyDown, Mods: ModControl},
	"\x1b[1;5C": {Code: KeyRight, Mods: ModControl},
	"\x1b[1;5D": {Code: KeyLeft, Mods: ModControl},
}

// decodeKey translates one complete input chunk into a key event.
// Control bytes become Char events with the Control modifier; a lone ESC
// is the Escape key; anything unrecognized starting with ESC is dropped.
func decodeKey(seq string) (KeyEvent, bool) {
	if ev, ok := sequenceKeys[seq]; ok {
		return ev, true
	}
	if seq == seqEscape {
		return KeyEvent{Code: KeyEsc}, true
	}

	runes := []rune(seq)
	if len(runes) == 1 {
		ch := runes[0]
		if ch >= 0x01 && ch <= 0x1a {
			// Ctrl+A .. Ctrl+Z
			return KeyEvent{Code: KeyChar, Ch: 'a' + ch - 0x01, Mods: ModControl}, true
		}
		if ch == 0 {
			return KeyEvent{Code: KeyNull}, true
		}
		if ch >= 0x20 {
			return Char(ch), true
		}
	}

	// Alt+<char> arrives as ESC prefix on a single rune.
	if len(runes) == 2 && runes[0] == 0x1b && runes[1] >= 0x20 {
		return KeyEvent{Code: KeyChar, Ch: runes[1], Mods: ModAlt}, true
	}

	return KeyEvent{}, false
}
