package render

import "github.com/gdamore/tcell/v2"

// ScreenSurface adapts a tcell.Screen to Surface
// Writes land in tcell's back buffer; Show publishes them
type ScreenSurface struct {
	screen tcell.Screen
	style  tcell.Style
	x, y   int
}

// NewScreenSurface wraps screen, drawing every glyph with style
func NewScreenSurface(screen tcell.Screen, style tcell.Style) *ScreenSurface {
	return &ScreenSurface{screen: screen, style: style}
}

// SetCursor positions the write cursor
func (s *ScreenSurface) SetCursor(x, y int) {
	s.x, s.y = x, y
}

// WriteGlyph writes ch at the cursor and advances it
func (s *ScreenSurface) WriteGlyph(ch rune) {
	s.screen.SetContent(s.x, s.y, ch, nil, s.style)
	s.x++
}

// Size returns the screen dimensions
func (s *ScreenSurface) Size() (int, int) {
	return s.screen.Size()
}

// Show flushes pending writes to the terminal
func (s *ScreenSurface) Show() {
	s.screen.Show()
}

// Sync forces a full repaint, used after resize
func (s *ScreenSurface) Sync() {
	s.screen.Sync()
}
