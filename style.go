// Package tern provides cell styling: 24-bit colors, modifier flags and
// the combined Style applied to each cell.
package tern

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// RGB creates a color from its channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Common colors.
var (
	Black   = RGB(0, 0, 0)
	White   = RGB(255, 255, 255)
	Red     = RGB(255, 0, 0)
	Green   = RGB(0, 255, 0)
	Blue    = RGB(0, 0, 255)
	Yellow  = RGB(255, 255, 0)
	Cyan    = RGB(0, 255, 255)
	Magenta = RGB(255, 0, 255)
	Gray    = RGB(128, 128, 128)
)

// Lerp linearly interpolates each channel toward other. t is clamped to
// [0, 1].
func (c Color) Lerp(other Color, t float32) Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*t)
	}
	return Color{
		R: lerp(c.R, other.R),
		G: lerp(c.G, other.G),
		B: lerp(c.B, other.B),
	}
}

// Modifier is a bit set of text attributes.
type Modifier uint8

const (
	ModBold Modifier = 1 << iota
	ModDim
	ModItalic
	ModUnderline
	ModBlink
	ModReverse
	ModHidden
	ModStrikethrough
)

// Contains reports whether every bit of other is set in m.
func (m Modifier) Contains(other Modifier) bool {
	return m&other == other
}

// Style holds the optional foreground, optional background and modifier
// set of a cell. The zero value is the unstyled default. Two styles are
// equal iff all fields match exactly.
type Style struct {
	Fg   *Color
	Bg   *Color
	Mods Modifier
}

// NewStyle returns the empty style.
func NewStyle() Style {
	return Style{}
}

// WithFg returns a copy with the foreground set.
func (s Style) WithFg(c Color) Style {
	s.Fg = &c
	return s
}

// WithBg returns a copy with the background set.
func (s Style) WithBg(c Color) Style {
	s.Bg = &c
	return s
}

// WithMods returns a copy with the given modifiers added.
func (s Style) WithMods(m Modifier) Style {
	s.Mods |= m
	return s
}

// WithoutMods returns a copy with the given modifiers removed.
func (s Style) WithoutMods(m Modifier) Style {
	s.Mods &^= m
	return s
}

// Equal compares styles field by field.
func (s Style) Equal(other Style) bool {
	if s.Mods != other.Mods {
		return false
	}
	return colorEqual(s.Fg, other.Fg) && colorEqual(s.Bg, other.Bg)
}

func colorEqual(a, b *Color) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}

// Merge overlays the other style onto s. Set colors and modifiers from
// overlay take precedence.
func (s Style) Merge(overlay Style) Style {
	result := s
	if overlay.Fg != nil {
		result.Fg = overlay.Fg
	}
	if overlay.Bg != nil {
		result.Bg = overlay.Bg
	}
	result.Mods |= overlay.Mods
	return result
}
