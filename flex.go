// Package tern provides the richer flex container with per-item grow,
// shrink, basis and min/max constraints.
package tern

// FlexItem is one child of a Flex container.
type FlexItem struct {
	// Grow is how much of a deficit this item absorbs relative to others.
	Grow float64
	// Shrink is how much of an overflow this item gives up.
	Shrink float64
	// Basis is the starting size before grow/shrink.
	Basis Length
	// MinSize and MaxSize clamp the final size once set through WithMin
	// and WithMax; a value assigned to the field directly is not applied.
	MinSize uint16
	MaxSize uint16

	hasMin bool
	hasMax bool
}

// NewFlexItem creates an item that shrinks but does not grow.
func NewFlexItem() FlexItem {
	return FlexItem{Shrink: 1, Basis: Fill(0)}
}

// WithGrow sets the grow factor.
func (f FlexItem) WithGrow(grow float64) FlexItem {
	f.Grow = grow
	return f
}

// WithShrink sets the shrink factor.
func (f FlexItem) WithShrink(shrink float64) FlexItem {
	f.Shrink = shrink
	return f
}

// WithBasis sets the base size.
func (f FlexItem) WithBasis(basis Length) FlexItem {
	f.Basis = basis
	return f
}

// WithFixed sets the base size to an absolute cell count.
func (f FlexItem) WithFixed(size uint16) FlexItem {
	f.Basis = Fixed(size)
	return f
}

// WithMin sets the minimum size.
func (f FlexItem) WithMin(min uint16) FlexItem {
	f.MinSize = min
	f.hasMin = true
	return f
}

// WithMax sets the maximum size.
func (f FlexItem) WithMax(max uint16) FlexItem {
	f.MaxSize = max
	f.hasMax = true
	return f
}

func (f FlexItem) clamp(size uint16) uint16 {
	if f.hasMin && size < f.MinSize {
		size = f.MinSize
	}
	if f.hasMax && size > f.MaxSize {
		size = f.MaxSize
	}
	return size
}

// Flex is a flexible box container.
type Flex struct {
	direction Direction
	items     []FlexItem
}

// NewFlex creates an empty flex container along the given axis.
func NewFlex(direction Direction) *Flex {
	return &Flex{direction: direction}
}

// Add appends an item and returns the container for chaining.
func (f *Flex) Add(item FlexItem) *Flex {
	f.items = append(f.items, item)
	return f
}

// Calculate resolves one rect per item inside the container. Base sizes
// come from each basis clamped by min/max; a deficit is distributed to
// positive-grow items in proportion to grow, an overflow to
// positive-shrink items in proportion to shrink. Min and max always win.
func (f *Flex) Calculate(container Rect) []Rect {
	if len(f.items) == 0 {
		return nil
	}

	mainSize := container.Width
	crossSize := container.Height
	if f.direction == Vertical {
		mainSize = container.Height
		crossSize = container.Width
	}

	sizes := f.baseSizes(mainSize)

	var total uint16
	for _, s := range sizes {
		total = satAdd(total, s)
	}
	if total < mainSize {
		f.growItems(sizes, mainSize)
	} else if total > mainSize {
		f.shrinkItems(sizes, mainSize)
	}

	return f.sizesToRects(sizes, container, crossSize)
}

func (f *Flex) baseSizes(mainSize uint16) []uint16 {
	sizes := make([]uint16, len(f.items))
	for i, item := range f.items {
		var base uint16
		if item.Basis.Kind != LengthFill {
			base = item.Basis.Resolve(mainSize)
		}
		sizes[i] = item.clamp(base)
	}
	return sizes
}

func (f *Flex) growItems(sizes []uint16, mainSize uint16) {
	var total uint16
	for _, s := range sizes {
		total = satAdd(total, s)
	}
	remaining := satSub(mainSize, total)
	if remaining == 0 {
		return
	}

	var totalGrow float64
	for _, item := range f.items {
		if item.Grow > 0 {
			totalGrow += item.Grow
		}
	}
	if totalGrow <= 0 {
		return
	}

	for i, item := range f.items {
		if item.Grow <= 0 {
			continue
		}
		grown := satAdd(sizes[i], uint16(float64(remaining)*item.Grow/totalGrow))
		sizes[i] = item.clamp(grown)
	}
}

func (f *Flex) shrinkItems(sizes []uint16, mainSize uint16) {
	var total uint16
	for _, s := range sizes {
		total = satAdd(total, s)
	}
	overflow := satSub(total, mainSize)
	if overflow == 0 {
		return
	}

	var totalShrink float64
	for _, item := range f.items {
		if item.Shrink > 0 {
			totalShrink += item.Shrink
		}
	}
	if totalShrink <= 0 {
		return
	}

	for i, item := range f.items {
		if item.Shrink <= 0 || sizes[i] == 0 {
			continue
		}
		shrunk := satSub(sizes[i], uint16(float64(overflow)*item.Shrink/totalShrink))
		sizes[i] = item.clamp(shrunk)
	}
}

func (f *Flex) sizesToRects(sizes []uint16, container Rect, crossSize uint16) []Rect {
	rects := make([]Rect, 0, len(sizes))
	var offset uint16

	for _, size := range sizes {
		var rect Rect
		if f.direction == Horizontal {
			rect = Rect{
				X:      satAdd(container.X, offset),
				Y:      container.Y,
				Width:  size,
				Height: minU16(crossSize, container.Height),
			}
		} else {
			rect = Rect{
				X:      container.X,
				Y:      satAdd(container.Y, offset),
				Width:  minU16(crossSize, container.Width),
				Height: size,
			}
		}
		rects = append(rects, rect)
		offset = satAdd(offset, size)
	}

	return rects
}
