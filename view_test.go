package tern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tern-ui/tern/state"
)

func TestPaintTextNode(t *testing.T) {
	buf := NewBuffer(40, 10)
	ctx := NewRenderContext(buf, NewRect(0, 0, 40, 10), state.NewStore())

	Text("Test").Paint(ctx)

	got, _ := buf.Get(0, 0)
	assert.Equal(t, 'T', got.Ch)
	got, _ = buf.Get(3, 0)
	assert.Equal(t, 't', got.Ch)
}

func TestPaintTextClipsAtRightEdge(t *testing.T) {
	buf := NewBuffer(10, 2)
	ctx := NewRenderContext(buf, NewRect(6, 0, 4, 1), state.NewStore())

	Text("overflow").Paint(ctx)

	got, _ := buf.Get(9, 0)
	assert.Equal(t, 'r', got.Ch)
	// Nothing escapes the area.
	row := buf.Line(0)
	for x := 0; x < 6; x++ {
		assert.Equal(t, rune(0), row[x].Ch)
	}
}

func TestPaintTextStyleMergesContext(t *testing.T) {
	buf := NewBuffer(10, 1)
	ctx := NewRenderContext(buf, NewRect(0, 0, 10, 1), state.NewStore())
	ctx.Style = NewStyle().WithBg(Blue)

	TextStyled("x", NewStyle().WithFg(Red)).Paint(ctx)

	got, _ := buf.Get(0, 0)
	require.NotNil(t, got.Style.Fg)
	require.NotNil(t, got.Style.Bg)
	assert.Equal(t, Red, *got.Style.Fg)
	assert.Equal(t, Blue, *got.Style.Bg)
}

func TestPaintVerticalContainer(t *testing.T) {
	buf := NewBuffer(10, 4)
	ctx := NewRenderContext(buf, NewRect(0, 0, 10, 4), state.NewStore())

	VBox(Text("top"), Text("bot")).Paint(ctx)

	got, _ := buf.Get(0, 0)
	assert.Equal(t, 't', got.Ch)
	// Second child starts at the vertical midpoint.
	got, _ = buf.Get(0, 2)
	assert.Equal(t, 'b', got.Ch)
}

func TestPaintHorizontalContainer(t *testing.T) {
	buf := NewBuffer(10, 1)
	ctx := NewRenderContext(buf, NewRect(0, 0, 10, 1), state.NewStore())

	HBox(Text("L"), Text("R")).Paint(ctx)

	got, _ := buf.Get(0, 0)
	assert.Equal(t, 'L', got.Ch)
	got, _ = buf.Get(5, 0)
	assert.Equal(t, 'R', got.Ch)
}

func TestPaintStackedContainer(t *testing.T) {
	buf := NewBuffer(10, 2)
	ctx := NewRenderContext(buf, NewRect(0, 0, 10, 2), state.NewStore())

	// Later children overdraw earlier ones on the same area.
	ZStack(Text("aaaa"), Text("bb")).Paint(ctx)

	got, _ := buf.Get(0, 0)
	assert.Equal(t, 'b', got.Ch)
	got, _ = buf.Get(2, 0)
	assert.Equal(t, 'a', got.Ch)
}

func TestPaintEmptyNode(t *testing.T) {
	buf := NewBuffer(5, 5)
	ctx := NewRenderContext(buf, NewRect(0, 0, 5, 5), state.NewStore())

	Empty().Paint(ctx)

	for y := uint16(0); y < 5; y++ {
		for x := uint16(0); x < 5; x++ {
			got, _ := buf.Get(x, y)
			assert.Equal(t, rune(0), got.Ch)
		}
	}
}

func TestPaintEmptyContainer(t *testing.T) {
	buf := NewBuffer(5, 5)
	ctx := NewRenderContext(buf, NewRect(0, 0, 5, 5), state.NewStore())

	// No children: nothing painted, nothing panics.
	VBox().Paint(ctx)
	got, _ := buf.Get(0, 0)
	assert.Equal(t, rune(0), got.Ch)
}

func TestPaintWideRunes(t *testing.T) {
	buf := NewBuffer(10, 1)
	ctx := NewRenderContext(buf, NewRect(0, 0, 10, 1), state.NewStore())

	Text("日x").Paint(ctx)

	got, _ := buf.Get(0, 0)
	assert.Equal(t, '日', got.Ch)
	got, _ = buf.Get(2, 0)
	assert.Equal(t, 'x', got.Ch)
}
