// Package tern provides the frame differ: line hashing, changed-span
// detection and region coalescing.
package tern

import "sort"

// DirtyRegion is a rectangle that must be redrawn because its contents
// changed between frames.
type DirtyRegion struct {
	Rect Rect
}

// FullScreenRegion covers an entire buffer of the given size.
func FullScreenRegion(width, height uint16) DirtyRegion {
	return DirtyRegion{Rect: RectFromSize(width, height)}
}

const (
	fnvOffset = 0xcbf29ce484222325
	fnvPrime  = 0x100000001b3
)

// lineHash summarizes a row with FNV-1a over each cell's code point,
// color channels (only when present) and modifier bits.
func lineHash(line []Cell) uint64 {
	hash := uint64(fnvOffset)

	mix := func(v uint64) {
		hash ^= v
		hash *= fnvPrime
	}

	for i := range line {
		c := &line[i]
		mix(uint64(c.Ch))
		if fg := c.Style.Fg; fg != nil {
			mix(uint64(fg.R))
			mix(uint64(fg.G))
			mix(uint64(fg.B))
		}
		if bg := c.Style.Bg; bg != nil {
			mix(uint64(bg.R))
			mix(uint64(bg.G))
			mix(uint64(bg.B))
		}
		mix(uint64(c.Style.Mods))
	}

	return hash
}

// ComputeDiff returns the regions of new that differ from old. Every
// changed cell is covered by at least one region; unchanged cells may be
// over-approximated but never the reverse. A size change yields a single
// full-screen region.
func ComputeDiff(old, new *Buffer) []DirtyRegion {
	if old.Width() != new.Width() || old.Height() != new.Height() {
		return []DirtyRegion{FullScreenRegion(new.Width(), new.Height())}
	}

	var dirty []DirtyRegion

	for y := uint16(0); y < new.Height(); y++ {
		oldLine := old.Line(y)
		newLine := new.Line(y)

		if lineHash(oldLine) == lineHash(newLine) {
			continue
		}

		dirty = appendChangedSpans(oldLine, newLine, y, dirty)
	}

	return mergeAdjacentRegions(dirty)
}

// appendChangedSpans scans a mismatched row left to right and emits one
// single-row region per maximal run of unequal cells.
func appendChangedSpans(oldLine, newLine []Cell, y uint16, dirty []DirtyRegion) []DirtyRegion {
	width := len(oldLine)
	if len(newLine) < width {
		width = len(newLine)
	}

	start := -1
	for x := 0; x < width; x++ {
		if !oldLine[x].Equal(newLine[x]) {
			if start < 0 {
				start = x
			}
			continue
		}
		if start >= 0 {
			dirty = append(dirty, DirtyRegion{
				Rect: NewRect(uint16(start), y, uint16(x-start), 1),
			})
			start = -1
		}
	}
	if start >= 0 {
		dirty = append(dirty, DirtyRegion{
			Rect: NewRect(uint16(start), y, uint16(width-start), 1),
		})
	}

	return dirty
}

// mergeAdjacentRegions sorts regions by (y, x) and merges same-row
// neighbors whose gap is at most one cell. Overlaps merge by taking the
// larger right edge.
func mergeAdjacentRegions(dirty []DirtyRegion) []DirtyRegion {
	if len(dirty) <= 1 {
		return dirty
	}

	sort.Slice(dirty, func(i, j int) bool {
		if dirty[i].Rect.Y != dirty[j].Rect.Y {
			return dirty[i].Rect.Y < dirty[j].Rect.Y
		}
		return dirty[i].Rect.X < dirty[j].Rect.X
	})

	merged := dirty[:0]
	current := dirty[0]

	for _, next := range dirty[1:] {
		if current.Rect.Y == next.Rect.Y && next.Rect.X <= satAdd(current.Rect.Right(), 1) {
			end := maxU16(next.Rect.Right(), current.Rect.Right())
			current.Rect.Width = end - current.Rect.X
			continue
		}
		merged = append(merged, current)
		current = next
	}

	return append(merged, current)
}
