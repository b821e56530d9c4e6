// Package tern provides the renderer that turns dirty regions into a
// style-minimized escape stream.
package tern

import "bytes"

// Renderer writes buffer changes through a backend. Only regions that
// changed since the previous frame are emitted; within a row span the
// style is re-emitted only when it differs from the last emitted style.
type Renderer struct {
	firstRender bool
	out         bytes.Buffer
}

// NewRenderer creates a renderer that will fully redraw its first frame.
func NewRenderer() *Renderer {
	return &Renderer{firstRender: true}
}

// Render diffs buffer against prev and writes the changed regions to the
// backend, flushing once at the end. A nil prev forces a full redraw.
func (r *Renderer) Render(backend Backend, prev, buffer *Buffer) error {
	var dirty []DirtyRegion
	if r.firstRender || prev == nil {
		r.firstRender = false
		dirty = []DirtyRegion{FullScreenRegion(buffer.Width(), buffer.Height())}
	} else {
		dirty = ComputeDiff(prev, buffer)
	}

	if len(dirty) == 0 {
		return nil
	}

	for _, region := range dirty {
		if err := r.renderRegion(backend, buffer, region); err != nil {
			return err
		}
	}

	return backend.Flush()
}

// renderRegion emits one dirty region row by row. Cursor state is not
// assumed preserved across rows.
func (r *Renderer) renderRegion(backend Backend, buffer *Buffer, region DirtyRegion) error {
	rect := region.Rect
	bottom := minU16(rect.Bottom(), buffer.Height())
	right := minU16(rect.Right(), buffer.Width())

	for y := rect.Y; y < bottom; y++ {
		if err := backend.CursorGoto(rect.X, y); err != nil {
			return err
		}

		r.out.Reset()
		var current *Style

		for x := rect.X; x < right; x++ {
			cell, ok := buffer.Get(x, y)
			if !ok {
				break
			}

			if current == nil || !current.Equal(cell.Style) {
				writeStyle(&r.out, cell.Style)
				style := cell.Style
				current = &style
			}

			ch := cell.Ch
			if ch == 0 {
				ch = ' '
			}
			r.out.WriteRune(ch)
		}

		if current != nil {
			writeReset(&r.out)
		}

		if err := backend.Write(r.out.Bytes()); err != nil {
			return err
		}
	}

	return nil
}
