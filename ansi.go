// Package tern provides ANSI escape sequence generation for terminal
// output.
package tern

import (
	"bytes"
	"strconv"
)

const (
	esc = "\x1b"
	csi = esc + "["

	resetSeq        = csi + "0m"
	hideCursorSeq   = csi + "?25l"
	showCursorSeq   = csi + "?25h"
	clearScreenSeq  = csi + "2J" + csi + "H"
	enterAltSeq     = csi + "?1049h"
	leaveAltSeq     = csi + "?1049l"
	enableMouseSeq  = csi + "?1000h" + csi + "?1002h" + csi + "?1006h"
	disableMouseSeq = csi + "?1006l" + csi + "?1002l" + csi + "?1000l"
	enableFocusSeq  = csi + "?1004h"
	disableFocusSeq = csi + "?1004l"
	enablePasteSeq  = csi + "?2004h"
	disablePasteSeq = csi + "?2004l"
)

// modifierCodes maps each modifier bit to its SGR code.
var modifierCodes = []struct {
	mod  Modifier
	code string
}{
	{ModBold, "1"},
	{ModDim, "2"},
	{ModItalic, "3"},
	{ModUnderline, "4"},
	{ModBlink, "5"},
	{ModReverse, "7"},
	{ModHidden, "8"},
	{ModStrikethrough, "9"},
}

// writeCursorMove appends the sequence to move the cursor to (x, y).
// The grid is 0-indexed; ANSI is 1-indexed.
func writeCursorMove(buf *bytes.Buffer, x, y uint16) {
	buf.WriteString(csi)
	buf.WriteString(strconv.Itoa(int(y) + 1))
	buf.WriteByte(';')
	buf.WriteString(strconv.Itoa(int(x) + 1))
	buf.WriteByte('H')
}

// writeStyle appends a full style switch: reset, then true-color
// foreground and background if set, then one code per set modifier.
func writeStyle(buf *bytes.Buffer, style Style) {
	buf.WriteString(resetSeq)

	if fg := style.Fg; fg != nil {
		writeTrueColor(buf, "38", fg)
	}
	if bg := style.Bg; bg != nil {
		writeTrueColor(buf, "48", bg)
	}
	for _, mc := range modifierCodes {
		if style.Mods.Contains(mc.mod) {
			buf.WriteString(csi)
			buf.WriteString(mc.code)
			buf.WriteByte('m')
		}
	}
}

func writeTrueColor(buf *bytes.Buffer, plane string, c *Color) {
	buf.WriteString(csi)
	buf.WriteString(plane)
	buf.WriteString(";2;")
	buf.WriteString(strconv.Itoa(int(c.R)))
	buf.WriteByte(';')
	buf.WriteString(strconv.Itoa(int(c.G)))
	buf.WriteByte(';')
	buf.WriteString(strconv.Itoa(int(c.B)))
	buf.WriteByte('m')
}

func writeReset(buf *bytes.Buffer) {
	buf.WriteString(resetSeq)
}
