// Package tern provides the double-buffered cell grid that frames are
// painted into and diffed against.
package tern

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Buffer is a fixed-size 2D grid of cells in row-major flat storage.
// Out-of-bounds writes are silently ignored; out-of-bounds reads yield
// nothing.
type Buffer struct {
	width  uint16
	height uint16
	cells  []Cell
}

// NewBuffer creates a buffer of the given size filled with default cells.
func NewBuffer(width, height uint16) *Buffer {
	return &Buffer{
		width:  width,
		height: height,
		cells:  make([]Cell, int(width)*int(height)),
	}
}

// Width returns the buffer width in cells.
func (b *Buffer) Width() uint16 { return b.width }

// Height returns the buffer height in cells.
func (b *Buffer) Height() uint16 { return b.height }

// Area returns the buffer extent as a rect at the origin.
func (b *Buffer) Area() Rect {
	return RectFromSize(b.width, b.height)
}

func (b *Buffer) index(x, y uint16) int {
	return int(y)*int(b.width) + int(x)
}

// Get returns the cell at (x, y); ok is false out of bounds.
func (b *Buffer) Get(x, y uint16) (Cell, bool) {
	if x >= b.width || y >= b.height {
		return Cell{}, false
	}
	return b.cells[b.index(x, y)], true
}

// Set writes the cell at (x, y). Does nothing out of bounds.
func (b *Buffer) Set(x, y uint16, c Cell) {
	if x >= b.width || y >= b.height {
		return
	}
	b.cells[b.index(x, y)] = c
}

// Line returns the row y as a slice, or nil out of bounds. The slice
// aliases the buffer storage.
func (b *Buffer) Line(y uint16) []Cell {
	if y >= b.height {
		return nil
	}
	start := int(y) * int(b.width)
	return b.cells[start : start+int(b.width)]
}

// SetString writes text starting at (x, y), left to right, clipped at the
// right edge. Wide runes occupy two cells; the trailing cell is left as a
// NUL continuation. Returns the number of columns written.
func (b *Buffer) SetString(x, y uint16, text string, style Style) uint16 {
	if y >= b.height {
		return 0
	}
	col := x
	for _, ch := range text {
		w := uint16(runewidth.RuneWidth(ch))
		if w == 0 {
			continue
		}
		if col >= b.width || b.width-col < w {
			break
		}
		b.Set(col, y, StyledCell(ch, style))
		if w == 2 {
			b.Set(col+1, y, StyledCell(0, style))
		}
		col += w
	}
	return col - x
}

// Fill sets every cell inside area to c, clipped to the buffer.
func (b *Buffer) Fill(area Rect, c Cell) {
	clipped, ok := area.Intersect(b.Area())
	if !ok {
		return
	}
	for y := clipped.Y; y < clipped.Bottom(); y++ {
		for x := clipped.X; x < clipped.Right(); x++ {
			b.Set(x, y, c)
		}
	}
}

// Clear resets every cell to the default.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{}
	}
}

// Resize changes the buffer dimensions. Content is cleared.
func (b *Buffer) Resize(width, height uint16) {
	b.width = width
	b.height = height
	b.cells = make([]Cell, int(width)*int(height))
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Buffer{width: b.width, height: b.height, cells: cells}
}

// DebugString returns the characters of the buffer, row per line, with
// NUL rendered as space. Styling is not represented.
func (b *Buffer) DebugString() string {
	var sb strings.Builder
	for y := uint16(0); y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := uint16(0); x < b.width; x++ {
			c, _ := b.Get(x, y)
			if c.Ch == 0 {
				sb.WriteByte(' ')
			} else {
				sb.WriteRune(c.Ch)
			}
		}
	}
	return sb.String()
}
