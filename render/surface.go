package render

import "github.com/lixenwraith/vi-canvas/core"

// Glyphs written by the drawing core
const (
	GlyphInk   = '*'
	GlyphBlank = ' '
)

// Surface is the character grid the drawing core writes to
// Implementations are not safe for concurrent use: all writes come from the render goroutine
type Surface interface {
	// SetCursor positions the write cursor (0-indexed)
	SetCursor(x, y int)

	// WriteGlyph writes ch at the cursor and advances it one column
	WriteGlyph(ch rune)

	// Size returns the viewport dimensions
	Size() (width, height int)
}

// InBounds reports whether p is a visible cell of s
func InBounds(s Surface, p core.Point) bool {
	w, h := s.Size()
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

// Plot writes ch at p, silently skipping cells outside the viewport
// Returns true if the cell was written
func Plot(s Surface, p core.Point, ch rune) bool {
	if !InBounds(s, p) {
		return false
	}
	s.SetCursor(p.X, p.Y)
	s.WriteGlyph(ch)
	return true
}

// PlotAll writes ch at every visible point of pts
func PlotAll(s Surface, pts []core.Point, ch rune) {
	for _, p := range pts {
		Plot(s, p, ch)
	}
}

// WriteText writes a single line of text starting at (x, y), clipped to the viewport
// The rest of the row up to width is blanked when pad is true
func WriteText(s Surface, x, y int, text string, pad bool) {
	w, h := s.Size()
	if y < 0 || y >= h {
		return
	}
	col := x
	for _, r := range text {
		if col >= w {
			return
		}
		if col >= 0 {
			s.SetCursor(col, y)
			s.WriteGlyph(r)
		}
		col++
	}
	if !pad {
		return
	}
	for ; col < w; col++ {
		if col >= 0 {
			s.SetCursor(col, y)
			s.WriteGlyph(GlyphBlank)
		}
	}
}
