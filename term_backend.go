// Package tern provides the default terminal backend built on
// golang.org/x/term.
package tern

import (
	"bufio"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"
)

// TermBackend drives a real terminal: raw mode via x/term, escape
// sequences for screen and cursor control, and a reader goroutine that
// decodes the input stream into events.
type TermBackend struct {
	in       *os.File
	out      *bufio.Writer
	outFile  *os.File
	oldState *term.State

	events chan Event
	done   chan struct{}
	winch  chan os.Signal
}

// NewTermBackend creates a backend on stdin/stdout.
func NewTermBackend() *TermBackend {
	return NewTermBackendFiles(os.Stdin, os.Stdout)
}

// NewTermBackendFiles creates a backend on explicit files.
func NewTermBackendFiles(in, out *os.File) *TermBackend {
	return &TermBackend{
		in:      in,
		out:     bufio.NewWriterSize(out, 32*1024),
		outFile: out,
		events:  make(chan Event, 32),
		done:    make(chan struct{}),
	}
}

// EnterRawMode switches the input terminal to raw mode and starts the
// input reader.
func (b *TermBackend) EnterRawMode() error {
	state, err := term.MakeRaw(int(b.in.Fd()))
	if err != nil {
		return backendErr("enter raw mode", err)
	}
	b.oldState = state

	b.winch = make(chan os.Signal, 1)
	signal.Notify(b.winch, syscall.SIGWINCH)

	go b.readLoop()
	go b.resizeLoop()

	return nil
}

// LeaveRawMode restores the terminal state captured by EnterRawMode.
// Safe to call more than once.
func (b *TermBackend) LeaveRawMode() error {
	select {
	case <-b.done:
	default:
		close(b.done)
	}
	if b.winch != nil {
		signal.Stop(b.winch)
	}
	if b.oldState == nil {
		return nil
	}
	state := b.oldState
	b.oldState = nil
	if err := term.Restore(int(b.in.Fd()), state); err != nil {
		return backendErr("leave raw mode", err)
	}
	return nil
}

// EnterAltScreen switches to the alternate screen buffer and enables
// focus and bracketed-paste reporting.
func (b *TermBackend) EnterAltScreen() error {
	return b.writeString(enterAltSeq + enableFocusSeq + enablePasteSeq)
}

// LeaveAltScreen returns to the main screen buffer.
func (b *TermBackend) LeaveAltScreen() error {
	return b.writeString(disablePasteSeq + disableFocusSeq + leaveAltSeq)
}

// EnableMouse turns on SGR mouse reporting.
func (b *TermBackend) EnableMouse() error {
	return b.writeString(enableMouseSeq)
}

// DisableMouse turns SGR mouse reporting off.
func (b *TermBackend) DisableMouse() error {
	return b.writeString(disableMouseSeq)
}

// Size queries the terminal dimensions.
func (b *TermBackend) Size() (uint16, uint16, error) {
	w, h, err := term.GetSize(int(b.outFile.Fd()))
	if err != nil {
		return 0, 0, backendErr("query size", err)
	}
	return uint16(w), uint16(h), nil
}

// Clear erases the screen and homes the cursor.
func (b *TermBackend) Clear() error {
	return b.writeString(clearScreenSeq)
}

// Flush pushes buffered output to the terminal.
func (b *TermBackend) Flush() error {
	if err := b.out.Flush(); err != nil {
		return ioErr("flush", err)
	}
	return nil
}

// Write queues raw bytes.
func (b *TermBackend) Write(content []byte) error {
	if _, err := b.out.Write(content); err != nil {
		return ioErr("write", err)
	}
	return nil
}

func (b *TermBackend) writeString(s string) error {
	if _, err := b.out.WriteString(s); err != nil {
		return ioErr("write", err)
	}
	return nil
}

// CursorGoto moves the cursor to the 0-indexed cell (x, y).
func (b *TermBackend) CursorGoto(x, y uint16) error {
	return b.writeString(csi + strconv.Itoa(int(y)+1) + ";" + strconv.Itoa(int(x)+1) + "H")
}

// CursorShow makes the cursor visible.
func (b *TermBackend) CursorShow() error {
	return b.writeString(showCursorSeq)
}

// CursorHide makes the cursor invisible.
func (b *TermBackend) CursorHide() error {
	return b.writeString(hideCursorSeq)
}

// ReadEvent waits up to timeout for the next input event.
func (b *TermBackend) ReadEvent(timeout time.Duration) (Event, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-b.events:
		return ev, nil
	case <-timer.C:
		return nil, nil
	case <-b.done:
		return nil, nil
	}
}

// readLoop reads raw chunks off stdin and decodes them. In raw mode each
// read normally delivers one complete key or escape sequence.
func (b *TermBackend) readLoop() {
	buf := make([]byte, 256)
	for {
		n, err := b.in.Read(buf)
		if err != nil {
			return
		}
		chunk := string(buf[:n])

		select {
		case <-b.done:
			return
		default:
		}

		for _, ev := range decodeChunk(chunk) {
			select {
			case b.events <- ev:
			case <-b.done:
				return
			}
		}
	}
}

// resizeLoop turns SIGWINCH into resize events.
func (b *TermBackend) resizeLoop() {
	for {
		select {
		case <-b.done:
			return
		case <-b.winch:
			w, h, err := b.Size()
			if err != nil {
				continue
			}
			select {
			case b.events <- ResizeEvent{Width: w, Height: h}:
			case <-b.done:
				return
			}
		}
	}
}

// decodeChunk turns one raw input chunk into events. Handles SGR mouse,
// focus reports and bracketed paste before falling back to key decoding.
func decodeChunk(chunk string) []Event {
	switch {
	case chunk == "\x1b[I":
		return []Event{FocusEvent{Gained: true}}
	case chunk == "\x1b[O":
		return []Event{FocusEvent{Gained: false}}
	}

	if strings.HasPrefix(chunk, "\x1b[200~") {
		text := strings.TrimPrefix(chunk, "\x1b[200~")
		text = strings.TrimSuffix(text, "\x1b[201~")
		return []Event{PasteEvent{Text: text}}
	}

	if strings.HasPrefix(chunk, "\x1b[<") {
		if ev, ok := decodeSGRMouse(chunk); ok {
			return []Event{ev}
		}
		return nil
	}

	if ev, ok := decodeKey(chunk); ok {
		return []Event{ev}
	}

	// Unrecognized escape sequences are dropped rather than leaking their
	// bytes as characters.
	if strings.HasPrefix(chunk, "\x1b") {
		return nil
	}

	// Multi-rune plain text (fast typing can batch); emit one key each.
	var events []Event
	for _, ch := range chunk {
		if ch >= 0x20 {
			events = append(events, Char(ch))
		}
	}
	return events
}

// decodeSGRMouse parses "\x1b[<btn;x;yM" (press) or "...m" (release).
func decodeSGRMouse(seq string) (Event, bool) {
	body := strings.TrimPrefix(seq, "\x1b[<")
	if len(body) == 0 {
		return nil, false
	}

	final := body[len(body)-1]
	if final != 'M' && final != 'm' {
		return nil, false
	}
	parts := strings.Split(body[:len(body)-1], ";")
	if len(parts) != 3 {
		return nil, false
	}

	btn, err1 := strconv.Atoi(parts[0])
	x, err2 := strconv.Atoi(parts[1])
	y, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, false
	}

	ev := MouseEvent{
		// SGR coordinates are 1-indexed.
		X: uint16(max(x-1, 0)),
		Y: uint16(max(y-1, 0)),
	}

	if btn&4 != 0 {
		ev.Mods |= ModShift
	}
	if btn&8 != 0 {
		ev.Mods |= ModAlt
	}
	if btn&16 != 0 {
		ev.Mods |= ModControl
	}

	switch {
	case btn&64 != 0:
		if btn&1 != 0 {
			ev.Kind = MouseScrollDown
		} else {
			ev.Kind = MouseScrollUp
		}
	case btn&32 != 0:
		ev.Kind = MouseDrag
		ev.Button = MouseButton(btn & 3)
	case final == 'm':
		ev.Kind = MouseUp
		ev.Button = MouseButton(btn & 3)
	default:
		ev.Kind = MouseDown
		ev.Button = MouseButton(btn & 3)
	}

	if btn&3 == 3 && ev.Kind != MouseScrollUp && ev.Kind != MouseScrollDown {
		ev.Kind = MouseMoved
	}

	return ev, true
}
