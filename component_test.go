package tern

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tern-ui/tern/state"
)

func TestComponentFunc(t *testing.T) {
	comp := ComponentFunc(func(*RenderContext) ViewNode {
		return Text("fn")
	})

	node := comp.Render(nil)
	assert.Equal(t, NodeText, node.Kind)
	assert.Equal(t, "fn", node.Content)

	// Lifecycle defaults are inert.
	comp.Mount(nil)
	comp.Unmount(nil)
	assert.Equal(t, Ignored, comp.HandleEvent(Char('x'), nil))
	assert.True(t, comp.Update(nil))
}

func TestBaseComponentDefaults(t *testing.T) {
	var base BaseComponent

	assert.Equal(t, Ignored, base.HandleEvent(Char('x'), nil))
	assert.True(t, base.Update(nil))
}

func TestRenderContextWriteString(t *testing.T) {
	buf := NewBuffer(10, 3)
	ctx := NewRenderContext(buf, NewRect(2, 1, 5, 1), state.NewStore())
	ctx.Style = NewStyle().WithFg(Green)

	ctx.WriteString(2, 1, "hello!!")

	got, _ := buf.Get(2, 1)
	assert.Equal(t, 'h', got.Ch)
	assert.Equal(t, Green, *got.Style.Fg)

	// Clipped at the context area's right edge (x=2..6).
	got, _ = buf.Get(6, 1)
	assert.Equal(t, 'o', got.Ch)
	got, _ = buf.Get(7, 1)
	assert.Equal(t, rune(0), got.Ch)

	// Writes outside the area are dropped.
	ctx.WriteString(0, 0, "x")
	got, _ = buf.Get(0, 0)
	assert.Equal(t, rune(0), got.Ch)
}

func TestComponentRenderReadsSignals(t *testing.T) {
	count := state.NewSignal(41)
	comp := ComponentFunc(func(*RenderContext) ViewNode {
		if count.Get() > 41 {
			return Text("big")
		}
		return Text("small")
	})

	assert.Equal(t, "small", comp.Render(nil).Content)
	count.Set(42)
	assert.Equal(t, "big", comp.Render(nil).Content)
}
