package render

import (
	"strings"

	"github.com/lixenwraith/vi-canvas/core"
)

// BufferSurface is an in-memory Surface backed by a row-major rune grid
// Used by the headless dump tool and by tests that assert on rendered cells
type BufferSurface struct {
	cells  []rune
	width  int
	height int
	x, y   int
	writes int
}

// NewBufferSurface creates a blank buffer with the specified dimensions
func NewBufferSurface(width, height int) *BufferSurface {
	b := &BufferSurface{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *BufferSurface) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]rune, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blank using exponential copy
func (b *BufferSurface) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = GlyphBlank
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// SetCursor positions the write cursor
func (b *BufferSurface) SetCursor(x, y int) {
	b.x, b.y = x, y
}

// WriteGlyph writes ch at the cursor and advances it
// Writes outside the grid are dropped
func (b *BufferSurface) WriteGlyph(ch rune) {
	if b.inBounds(b.x, b.y) {
		b.cells[b.y*b.width+b.x] = ch
		b.writes++
	}
	b.x++
}

// Size returns the buffer dimensions
func (b *BufferSurface) Size() (int, int) {
	return b.width, b.height
}

// Get returns the glyph at (x, y)
func (b *BufferSurface) Get(x, y int) (rune, bool) {
	if !b.inBounds(x, y) {
		return 0, false
	}
	return b.cells[y*b.width+x], true
}

// At returns the glyph at p, blank when outside the grid
func (b *BufferSurface) At(p core.Point) rune {
	r, ok := b.Get(p.X, p.Y)
	if !ok {
		return GlyphBlank
	}
	return r
}

// Writes returns the number of in-bounds glyph writes since creation
func (b *BufferSurface) Writes() int {
	return b.writes
}

// Line returns row y as a string with trailing blanks trimmed
func (b *BufferSurface) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	row := b.cells[y*b.width : (y+1)*b.width]
	return strings.TrimRight(string(row), string(GlyphBlank))
}

// String renders the grid row by row, trailing blank rows dropped
func (b *BufferSurface) String() string {
	lines := make([]string, b.height)
	last := -1
	for y := 0; y < b.height; y++ {
		lines[y] = b.Line(y)
		if lines[y] != "" {
			last = y
		}
	}
	if last < 0 {
		return ""
	}
	return strings.Join(lines[:last+1], "\n") + "\n"
}

func (b *BufferSurface) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}
