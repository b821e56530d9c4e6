// Package tern provides an in-memory backend for tests.
package tern

import (
	"bytes"
	"time"
)

// TestBackend is a scriptable backend: events are queued up front, output
// is captured, and mode transitions are recorded. It never blocks.
type TestBackend struct {
	width  uint16
	height uint16

	queued []Event
	output bytes.Buffer

	RawMode   bool
	AltScreen bool
	Mouse     bool
	CursorOn  bool
	Flushes   int
	Cleared   int
}

// NewTestBackend creates a test backend with the given size.
func NewTestBackend(width, height uint16) *TestBackend {
	return &TestBackend{width: width, height: height, CursorOn: true}
}

// QueueEvent appends an event to be delivered by ReadEvent.
func (b *TestBackend) QueueEvent(ev Event) {
	b.queued = append(b.queued, ev)
}

// SetSize changes the reported terminal size.
func (b *TestBackend) SetSize(width, height uint16) {
	b.width = width
	b.height = height
}

// Output returns everything written so far.
func (b *TestBackend) Output() []byte {
	return b.output.Bytes()
}

// ResetOutput discards captured output.
func (b *TestBackend) ResetOutput() {
	b.output.Reset()
}

func (b *TestBackend) EnterRawMode() error { b.RawMode = true; return nil }
func (b *TestBackend) LeaveRawMode() error { b.RawMode = false; return nil }

func (b *TestBackend) EnterAltScreen() error { b.AltScreen = true; return nil }
func (b *TestBackend) LeaveAltScreen() error { b.AltScreen = false; return nil }

func (b *TestBackend) EnableMouse() error  { b.Mouse = true; return nil }
func (b *TestBackend) DisableMouse() error { b.Mouse = false; return nil }

func (b *TestBackend) Size() (uint16, uint16, error) {
	return b.width, b.height, nil
}

func (b *TestBackend) Clear() error {
	b.Cleared++
	return nil
}

func (b *TestBackend) Flush() error {
	b.Flushes++
	return nil
}

func (b *TestBackend) Write(content []byte) error {
	_, err := b.output.Write(content)
	return err
}

// ReadEvent pops the next queued event, or returns nil immediately when
// the queue is empty.
func (b *TestBackend) ReadEvent(_ time.Duration) (Event, error) {
	if len(b.queued) == 0 {
		return nil, nil
	}
	ev := b.queued[0]
	b.queued = b.queued[1:]
	return ev, nil
}

func (b *TestBackend) CursorGoto(x, y uint16) error {
	writeCursorMove(&b.output, x, y)
	return nil
}

func (b *TestBackend) CursorShow() error { b.CursorOn = true; return nil }
func (b *TestBackend) CursorHide() error { b.CursorOn = false; return nil }
