// Package tern provides the constraint layout engine for row, column and
// stack containers.
package tern

// LengthKind discriminates the Length variants.
type LengthKind int

const (
	// LengthFixed is an absolute size in cells.
	LengthFixed LengthKind = iota
	// LengthPercent is a fraction of the available extent.
	LengthPercent
	// LengthFill takes a weighted share of the remaining space.
	LengthFill
	// LengthMin is at least n cells, capped at the available extent.
	LengthMin
	// LengthMax is at most n cells.
	LengthMax
)

// Length is a size specification for one child along the main axis.
type Length struct {
	Kind    LengthKind
	N       uint16
	Percent float64
	Weight  uint16
}

// Fixed is an absolute size.
func Fixed(n uint16) Length {
	return Length{Kind: LengthFixed, N: n}
}

// Percent is a fraction of available space, p in [0.0, 1.0].
func Percent(p float64) Length {
	return Length{Kind: LengthPercent, Percent: p}
}

// Fill takes a weighted share of whatever remains.
func Fill(weight uint16) Length {
	return Length{Kind: LengthFill, Weight: weight}
}

// Min is at least n cells.
func Min(n uint16) Length {
	return Length{Kind: LengthMin, N: n}
}

// Max is at most n cells.
func Max(n uint16) Length {
	return Length{Kind: LengthMax, N: n}
}

// Resolve converts a non-Fill length to cells given the available extent.
// Fill resolution is the container's job.
func (l Length) Resolve(available uint16) uint16 {
	switch l.Kind {
	case LengthFixed:
		return l.N
	case LengthPercent:
		p := l.Percent
		if p < 0 {
			p = 0
		}
		if p > 1 {
			p = 1
		}
		return uint16(float64(available)*p + 0.5)
	case LengthFill:
		return available
	case LengthMin:
		return minU16(l.N, available)
	case LengthMax:
		return minU16(l.N, available)
	default:
		return 0
	}
}

// Align is a cross-axis alignment hint. Row and Column record it but
// give every child the full cross-axis extent whatever its value.
type Align string

const (
	AlignStart   Align = "start"
	AlignCenter  Align = "center"
	AlignEnd     Align = "end"
	AlignStretch Align = "stretch"
)

// Justify positions children along the main axis.
type Justify string

const (
	JustifyStart        Justify = "start"
	JustifyCenter       Justify = "center"
	JustifyEnd          Justify = "end"
	JustifySpaceBetween Justify = "space-between"
	JustifySpaceAround  Justify = "space-around"
	JustifySpaceEvenly  Justify = "space-evenly"
)

// Direction is the main axis of a flex container.
type Direction string

const (
	Horizontal Direction = "row"
	Vertical   Direction = "column"
)

// Row lays out children left to right.
type Row struct {
	GapSize   uint16
	Aligned   Align
	Justified Justify
}

// NewRow creates a row container with default alignment.
func NewRow() Row {
	return Row{Aligned: AlignStretch, Justified: JustifyStart}
}

// Gap sets the inter-item gap.
func (r Row) Gap(gap uint16) Row {
	r.GapSize = gap
	return r
}

// Align sets the cross-axis alignment.
func (r Row) Align(a Align) Row {
	r.Aligned = a
	return r
}

// Justify sets the main-axis justification.
func (r Row) Justify(j Justify) Row {
	r.Justified = j
	return r
}

// Layout resolves one rect per child width inside area.
func (r Row) Layout(area Rect, widths []Length) []Rect {
	sizes, lead, spacing := resolveMainAxis(area.Width, widths, r.GapSize, r.Justified)
	if sizes == nil {
		return nil
	}

	rects := make([]Rect, 0, len(sizes))
	x := satAdd(area.X, lead)
	for _, w := range sizes {
		rects = append(rects, Rect{X: x, Y: area.Y, Width: w, Height: area.Height})
		x = satAdd(satAdd(x, w), spacing)
	}
	return rects
}

// Column lays out children top to bottom.
type Column struct {
	GapSize   uint16
	Aligned   Align
	Justified Justify
}

// NewColumn creates a column container with default alignment.
func NewColumn() Column {
	return Column{Aligned: AlignStretch, Justified: JustifyStart}
}

// Gap sets the inter-item gap.
func (c Column) Gap(gap uint16) Column {
	c.GapSize = gap
	return c
}

// Align sets the cross-axis alignment.
func (c Column) Align(a Align) Column {
	c.Aligned = a
	return c
}

// Justify sets the main-axis justification.
func (c Column) Justify(j Justify) Column {
	c.Justified = j
	return c
}

// Layout resolves one rect per child height inside area.
func (c Column) Layout(area Rect, heights []Length) []Rect {
	sizes, lead, spacing := resolveMainAxis(area.Height, heights, c.GapSize, c.Justified)
	if sizes == nil {
		return nil
	}

	rects := make([]Rect, 0, len(sizes))
	y := satAdd(area.Y, lead)
	for _, h := range sizes {
		rects = append(rects, Rect{X: area.X, Y: y, Width: area.Width, Height: h})
		y = satAdd(satAdd(y, h), spacing)
	}
	return rects
}

// Stack overlays children: every child gets the full area.
type Stack struct {
	Aligned Align
}

// NewStack creates a stack container.
func NewStack() Stack {
	return Stack{Aligned: AlignStretch}
}

// Layout assigns the full area to each of count children.
func (s Stack) Layout(area Rect, count int) []Rect {
	rects := make([]Rect, count)
	for i := range rects {
		rects[i] = area
	}
	return rects
}

// resolveMainAxis runs the shared row/column algorithm: subtract gaps,
// resolve non-Fill lengths, hand the remainder to Fill items by weight,
// then derive the leading offset and effective spacing from justify.
func resolveMainAxis(extent uint16, lengths []Length, gap uint16, justify Justify) (sizes []uint16, lead, spacing uint16) {
	n := len(lengths)
	if n == 0 {
		return nil, 0, 0
	}

	totalGap := satMul(gap, uint16(n-1))
	available := satSub(extent, totalGap)

	sizes = make([]uint16, n)
	remaining := available
	var totalWeight uint16

	for i, l := range lengths {
		if l.Kind == LengthFill {
			totalWeight = satAdd(totalWeight, l.Weight)
			continue
		}
		size := l.Resolve(available)
		sizes[i] = size
		remaining = satSub(remaining, size)
	}

	if totalWeight > 0 && remaining > 0 {
		for i, l := range lengths {
			if l.Kind == LengthFill {
				sizes[i] = uint16(uint32(remaining) * uint32(l.Weight) / uint32(totalWeight))
			}
		}
	}

	var totalSize uint16
	for _, s := range sizes {
		totalSize = satAdd(totalSize, s)
	}
	used := satAdd(totalSize, totalGap)
	slack := satSub(extent, used)

	spacing = gap
	switch justify {
	case JustifyCenter:
		lead = slack / 2
	case JustifyEnd:
		lead = slack
	case JustifySpaceBetween:
		if n > 1 {
			spacing = satAdd(gap, slack/uint16(n-1))
		}
	case JustifySpaceAround:
		share := slack / uint16(n)
		spacing = satAdd(gap, share)
		lead = share / 2
	case JustifySpaceEvenly:
		share := slack / uint16(n+1)
		spacing = satAdd(gap, share)
		lead = share
	}

	return sizes, lead, spacing
}
