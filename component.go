// Package tern provides the component protocol: the lifecycle contract
// every UI element implements.
package tern

import "github.com/tern-ui/tern/state"

// EventResult is what a component or handler did with an event.
type EventResult int

const (
	// Handled means the event was processed; default handling is skipped.
	Handled EventResult = iota
	// Ignored means the event was not relevant; try the next handler.
	Ignored
	// Consumed means the event was processed and propagation must stop.
	Consumed
)

// RenderContext is passed to Component.Render. Widgets that paint
// directly use Buffer and Area; declarative components just return a view
// tree.
type RenderContext struct {
	Buffer *Buffer
	Area   Rect
	Style  Style
	Store  *state.Store
}

// NewRenderContext creates a context with the default style.
func NewRenderContext(buffer *Buffer, area Rect, store *state.Store) *RenderContext {
	return &RenderContext{Buffer: buffer, Area: area, Store: store}
}

// WriteString paints s at (x, y) with the context style, clipped to the
// context area.
func (c *RenderContext) WriteString(x, y uint16, s string) {
	if c.Buffer == nil || !c.Area.Contains(x, y) {
		return
	}
	limit := minU16(c.Area.Right(), c.Buffer.Width())
	col := x
	for _, ch := range s {
		if col >= limit {
			break
		}
		c.Buffer.Set(col, y, StyledCell(ch, c.Style))
		col++
	}
}

// MountContext is passed to Mount and Unmount.
type MountContext struct {
	Store *state.Store
}

// UpdateContext is passed to Update.
type UpdateContext struct {
	Store *state.Store
}

// EventContext is passed to HandleEvent. Area is where the component was
// last rendered, for hit-testing.
type EventContext struct {
	Store *state.Store
	Area  Rect
}

// Component is a stateful UI element with lifecycle hooks. Render must be
// cheap and side-effect free; it is called at most once per frame.
type Component interface {
	// Render produces this frame's view subtree.
	Render(ctx *RenderContext) ViewNode

	// Mount is called once when the component enters the tree.
	Mount(ctx *MountContext)

	// Unmount is the symmetric teardown.
	Unmount(ctx *MountContext)

	// HandleEvent runs before default handling; Consumed stops the frame
	// loop's default dispatch.
	HandleEvent(ev Event, ctx *EventContext) EventResult

	// Update is invoked when reactive state changed; returning true
	// requests a re-render this frame.
	Update(ctx *UpdateContext) bool
}

// BaseComponent provides no-op lifecycle methods so components only spell
// out what they need.
type BaseComponent struct{}

func (BaseComponent) Mount(*MountContext)   {}
func (BaseComponent) Unmount(*MountContext) {}

func (BaseComponent) HandleEvent(Event, *EventContext) EventResult {
	return Ignored
}

func (BaseComponent) Update(*UpdateContext) bool {
	return true
}

// ComponentFunc adapts a render function into a Component.
type ComponentFunc func(ctx *RenderContext) ViewNode

func (f ComponentFunc) Render(ctx *RenderContext) ViewNode { return f(ctx) }
func (ComponentFunc) Mount(*MountContext)                  {}
func (ComponentFunc) Unmount(*MountContext)                {}

func (ComponentFunc) HandleEvent(Event, *EventContext) EventResult {
	return Ignored
}

func (ComponentFunc) Update(*UpdateContext) bool {
	return true
}
