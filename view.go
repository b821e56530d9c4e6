// Package tern provides the view tree: the short-lived node structure
// components produce each frame.
package tern

import "github.com/mattn/go-runewidth"

// NodeKind discriminates the ViewNode variants.
type NodeKind int

const (
	// NodeEmpty paints nothing.
	NodeEmpty NodeKind = iota
	// NodeText paints a string at the top-left of its area.
	NodeText
	// NodeContainer lays out children and recurses.
	NodeContainer
)

// ContainerDirection is how a container splits its area.
type ContainerDirection int

const (
	// DirVertical stacks children top to bottom.
	DirVertical ContainerDirection = iota
	// DirHorizontal places children left to right.
	DirHorizontal
	// DirStacked overlays all children on the full area.
	DirStacked
)

// ViewNode is one node of the frame's view tree. Nodes live for a single
// frame: produced by Render, painted, then discarded.
type ViewNode struct {
	Kind      NodeKind
	Content   string
	Style     Style
	Children  []ViewNode
	Area      Rect
	Direction ContainerDirection
}

// Text creates a text node.
func Text(content string) ViewNode {
	return ViewNode{Kind: NodeText, Content: content}
}

// TextStyled creates a text node with a style.
func TextStyled(content string, style Style) ViewNode {
	return ViewNode{Kind: NodeText, Content: content, Style: style}
}

// VBox creates a vertical container.
func VBox(children ...ViewNode) ViewNode {
	return ViewNode{Kind: NodeContainer, Children: children, Direction: DirVertical}
}

// HBox creates a horizontal container.
func HBox(children ...ViewNode) ViewNode {
	return ViewNode{Kind: NodeContainer, Children: children, Direction: DirHorizontal}
}

// ZStack creates an overlay container.
func ZStack(children ...ViewNode) ViewNode {
	return ViewNode{Kind: NodeContainer, Children: children, Direction: DirStacked}
}

// Empty creates a node that paints nothing.
func Empty() ViewNode {
	return ViewNode{Kind: NodeEmpty}
}

// Paint draws the node into the context buffer. Text paints left to
// right from the area's top-left, stopping at the right edge. Containers
// give every child an equal Fill(1) share of the area and recurse.
func (n ViewNode) Paint(ctx *RenderContext) {
	switch n.Kind {
	case NodeText:
		paintText(ctx, n.Content, ctx.Style.Merge(n.Style))

	case NodeContainer:
		if len(n.Children) == 0 {
			return
		}

		var rects []Rect
		switch n.Direction {
		case DirHorizontal:
			widths := make([]Length, len(n.Children))
			for i := range widths {
				widths[i] = Fill(1)
			}
			rects = NewRow().Layout(ctx.Area, widths)
		case DirStacked:
			rects = NewStack().Layout(ctx.Area, len(n.Children))
		default:
			heights := make([]Length, len(n.Children))
			for i := range heights {
				heights[i] = Fill(1)
			}
			rects = NewColumn().Layout(ctx.Area, heights)
		}

		childStyle := ctx.Style.Merge(n.Style)
		for i, child := range n.Children {
			childCtx := &RenderContext{
				Buffer: ctx.Buffer,
				Area:   rects[i],
				Style:  childStyle,
				Store:  ctx.Store,
			}
			child.Paint(childCtx)
		}

	case NodeEmpty:
	}
}

// paintText writes content into the area's first row, wide-rune aware,
// clipped at the right edge.
func paintText(ctx *RenderContext, content string, style Style) {
	if ctx.Buffer == nil || ctx.Area.IsEmpty() {
		return
	}

	x := ctx.Area.X
	y := ctx.Area.Y
	right := minU16(ctx.Area.Right(), ctx.Buffer.Width())

	for _, ch := range content {
		w := uint16(runewidth.RuneWidth(ch))
		if w == 0 {
			continue
		}
		if x >= right || right-x < w {
			break
		}
		ctx.Buffer.Set(x, y, StyledCell(ch, style))
		if w == 2 {
			ctx.Buffer.Set(x+1, y, StyledCell(0, style))
		}
		x += w
	}
}
