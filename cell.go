// Package tern provides the Cell type, one styled character position on
// the terminal grid.
package tern

// Cell is a single terminal cell. The zero value is an unstyled NUL cell,
// which is what a cleared buffer holds.
type Cell struct {
	Ch    rune
	Style Style
}

// NewCell creates an unstyled cell.
func NewCell(ch rune) Cell {
	return Cell{Ch: ch}
}

// StyledCell creates a cell with a style.
func StyledCell(ch rune, style Style) Cell {
	return Cell{Ch: ch, Style: style}
}

// Equal reports whether two cells are identical.
func (c Cell) Equal(other Cell) bool {
	return c.Ch == other.Ch && c.Style.Equal(other.Style)
}
