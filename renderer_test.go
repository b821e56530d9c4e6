package tern

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRendererFirstRenderIsFull(t *testing.T) {
	backend := NewTestBackend(10, 3)
	r := NewRenderer()

	buf := NewBuffer(10, 3)
	buf.SetString(0, 0, "hi", NewStyle())

	prev := NewBuffer(10, 3)
	require.NoError(t, r.Render(backend, prev, buf))

	out := string(backend.Output())
	assert.Contains(t, out, "hi")
	// Full redraw positions the cursor at every row.
	assert.Contains(t, out, "\x1b[1;1H")
	assert.Contains(t, out, "\x1b[3;1H")
	assert.Equal(t, 1, backend.Flushes)
}

func TestRendererOnlyEmitsDirtyRegions(t *testing.T) {
	backend := NewTestBackend(20, 5)
	r := NewRenderer()

	prev := NewBuffer(20, 5)
	buf := NewBuffer(20, 5)

	require.NoError(t, r.Render(backend, prev, buf))
	backend.ResetOutput()

	next := buf.Clone()
	next.SetString(5, 2, "X", NewStyle())
	require.NoError(t, r.Render(backend, buf, next))

	out := string(backend.Output())
	// Only the changed cell's row is addressed: row 3, column 6 in
	// 1-indexed ANSI terms.
	assert.Contains(t, out, "\x1b[3;6H")
	assert.NotContains(t, out, "\x1b[1;1H")
	assert.Contains(t, out, "X")
}

func TestRendererNoChangesNoOutput(t *testing.T) {
	backend := NewTestBackend(10, 3)
	r := NewRenderer()

	buf := NewBuffer(10, 3)
	require.NoError(t, r.Render(backend, NewBuffer(10, 3), buf))
	flushes := backend.Flushes
	backend.ResetOutput()

	require.NoError(t, r.Render(backend, buf.Clone(), buf))
	assert.Empty(t, backend.Output())
	assert.Equal(t, flushes, backend.Flushes)
}

func TestRendererMinimizesStyleEmission(t *testing.T) {
	backend := NewTestBackend(10, 1)
	r := NewRenderer()

	style := NewStyle().WithFg(Red)
	buf := NewBuffer(10, 1)
	for x := uint16(0); x < 5; x++ {
		buf.Set(x, 0, StyledCell('a', style))
	}

	require.NoError(t, r.Render(backend, NewBuffer(10, 1), buf))

	out := string(backend.Output())
	// One switch into red for the whole run, not one per cell.
	assert.Equal(t, 1, strings.Count(out, "\x1b[38;2;255;0;0m"))
	// Row ends with a reset.
	assert.True(t, strings.HasSuffix(strings.TrimRight(out, " "), "\x1b[0m"))
}

func TestRendererEmitsModifierCodes(t *testing.T) {
	backend := NewTestBackend(5, 1)
	r := NewRenderer()

	buf := NewBuffer(5, 1)
	buf.Set(0, 0, StyledCell('b', NewStyle().WithMods(ModBold|ModUnderline)))

	require.NoError(t, r.Render(backend, NewBuffer(5, 1), buf))

	out := string(backend.Output())
	assert.Contains(t, out, "\x1b[1m")
	assert.Contains(t, out, "\x1b[4m")
}

func TestRendererBackgroundTrueColor(t *testing.T) {
	backend := NewTestBackend(5, 1)
	r := NewRenderer()

	buf := NewBuffer(5, 1)
	buf.Set(0, 0, StyledCell('x', NewStyle().WithBg(RGB(1, 2, 3))))

	require.NoError(t, r.Render(backend, NewBuffer(5, 1), buf))
	assert.Contains(t, string(backend.Output()), "\x1b[48;2;1;2;3m")
}

func TestRendererNilPrevForcesFullRedraw(t *testing.T) {
	backend := NewTestBackend(10, 2)
	r := NewRenderer()

	buf := NewBuffer(10, 2)
	require.NoError(t, r.Render(backend, NewBuffer(10, 2), buf))
	backend.ResetOutput()

	// Even after the first frame, a nil prev redraws everything.
	require.NoError(t, r.Render(backend, nil, buf))
	assert.Contains(t, string(backend.Output()), "\x1b[1;1H")
}
