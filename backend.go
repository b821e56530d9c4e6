// Package tern provides the backend abstraction: the terminal I/O surface
// the core renders through and reads events from.
package tern

import "time"

// Backend abstracts a terminal. The frame loop owns exactly one backend
// for the lifetime of the session.
type Backend interface {
	// EnterRawMode disables line buffering and echo.
	EnterRawMode() error
	// LeaveRawMode restores the previous terminal modes.
	LeaveRawMode() error

	// EnterAltScreen switches to the alternate screen buffer.
	EnterAltScreen() error
	// LeaveAltScreen switches back to the main screen buffer.
	LeaveAltScreen() error

	// EnableMouse turns on mouse event reporting.
	EnableMouse() error
	// DisableMouse turns mouse reporting back off.
	DisableMouse() error

	// Size returns the terminal dimensions in cells.
	Size() (width, height uint16, err error)

	// Clear erases the screen.
	Clear() error
	// Flush pushes any buffered output to the terminal.
	Flush() error
	// Write queues raw bytes for the terminal.
	Write(content []byte) error

	// ReadEvent blocks for up to timeout waiting for one input event.
	// Returns nil with no error on timeout.
	ReadEvent(timeout time.Duration) (Event, error)

	// CursorGoto moves the cursor to the 0-indexed cell (x, y).
	CursorGoto(x, y uint16) error
	// CursorShow makes the cursor visible.
	CursorShow() error
	// CursorHide makes the cursor invisible.
	CursorHide() error
}

// Event is one discrete input occurrence delivered by a backend.
type Event interface {
	isEvent()
}

// KeyCode identifies a key.
type KeyCode int

const (
	// KeyChar is a printable character; the rune lives in KeyEvent.Ch.
	KeyChar KeyCode = iota
	KeyBackspace
	KeyEnter
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyTab
	KeyBackTab
	KeyDelete
	KeyInsert
	KeyEsc
	KeyNull
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
)

// KeyF returns the code for function key n (1-12).
func KeyF(n int) KeyCode {
	if n < 1 || n > 12 {
		return KeyNull
	}
	return KeyF1 + KeyCode(n-1)
}

// KeyModifiers is a bit set of held modifier keys.
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota
	ModControl
	ModAlt
	ModSuper
	ModHyper
	ModMeta
)

// Contains reports whether every bit of other is set in m.
func (m KeyModifiers) Contains(other KeyModifiers) bool {
	return m&other == other
}

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code KeyCode
	Ch   rune // valid when Code == KeyChar
	Mods KeyModifiers
}

// Char creates a plain character key event.
func Char(ch rune) KeyEvent {
	return KeyEvent{Code: KeyChar, Ch: ch}
}

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// MouseEventKind describes what the mouse did.
type MouseEventKind int

const (
	MouseDown MouseEventKind = iota
	MouseUp
	MouseDrag
	MouseMoved
	MouseScrollUp
	MouseScrollDown
)

// MouseEvent is a mouse event at a cell position.
type MouseEvent struct {
	Kind   MouseEventKind
	Button MouseButton
	X      uint16
	Y      uint16
	Mods   KeyModifiers
}

// ResizeEvent reports a new terminal size.
type ResizeEvent struct {
	Width  uint16
	Height uint16
}

// FocusEvent reports terminal focus gained or lost.
type FocusEvent struct {
	Gained bool
}

// PasteEvent carries bracketed-paste text.
type PasteEvent struct {
	Text string
}

func (KeyEvent) isEvent()    {}
func (MouseEvent) isEvent()  {}
func (ResizeEvent) isEvent() {}
func (FocusEvent) isEvent()  {}
func (PasteEvent) isEvent()  {}
