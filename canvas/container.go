package canvas

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/lixenwraith/vi-canvas/core"
	"github.com/lixenwraith/vi-canvas/render"
	"github.com/lixenwraith/vi-canvas/shape"
)

// gridColumns is the column count of the layout grid used by WidthFromColumns
const gridColumns = 12

// Container is a rectangular canvas holding an ordered list of figures
// Figures keep their cells relative to the anchor; the outline is kept in surface coordinates
type Container struct {
	id      string
	anchor  core.Point
	width   int
	height  int
	depth   int
	outline []core.Point
	figures []shape.Shape
	comp    *Compositor
}

func (c *Container) ID() string { return c.id }
func (c *Container) Anchor() core.Point { return c.anchor }
func (c *Container) Width() int { return c.width }
func (c *Container) Height() int { return c.height }
func (c *Container) Depth() int { return c.depth }
func (c *Container) Len() int { return len(c.figures) }

// Outline returns the border cells in surface coordinates. Callers must not modify the slice
func (c *Container) Outline() []core.Point { return c.outline }

// Rect returns the inclusive rectangle covered by the container
func (c *Container) Rect() core.Rect {
	return core.RectFrom(c.anchor, c.width, c.height)
}

// Build rasterizes the four borders from anchor and extents
func (c *Container) Build() {
	r := c.Rect()
	topRight := core.Point{X: r.Max.X, Y: r.Min.Y}
	bottomLeft := core.Point{X: r.Min.X, Y: r.Max.Y}

	c.outline = shape.Union(
		shape.Segment(r.Min, topRight),
		shape.Segment(bottomLeft, r.Max),
		shape.Segment(r.Min, bottomLeft),
		shape.Segment(topRight, r.Max),
	)
}

// Figures returns a copy of the children in z-order
func (c *Container) Figures() []shape.Shape {
	return slices.Clone(c.figures)
}

// Figure selects a child by index
func (c *Container) Figure(i int) (shape.Shape, error) {
	if i < 0 || i >= len(c.figures) {
		return nil, fmt.Errorf("figure %d of %d: %w", i+1, len(c.figures), core.ErrInvalidState)
	}
	return c.figures[i], nil
}

// IndexOf returns the z-order index of s, -1 when s is not a child
func (c *Container) IndexOf(s shape.Shape) int {
	return slices.Index(c.figures, s)
}

// AddFigures attaches shapes in order, building each one
// The batch is rejected whole if any shape belongs to another container
func (c *Container) AddFigures(shapes ...shape.Shape) error {
	for _, s := range shapes {
		if owner := s.OwnerID(); owner != "" && owner != c.id {
			return fmt.Errorf("add %s %s: owned by %s: %w", s.Kind(), s.ID(), owner, core.ErrInvalidState)
		}
	}

	for _, s := range shapes {
		if c.IndexOf(s) >= 0 {
			continue
		}
		s.SetOwner(c.id)
		s.Build()
		c.figures = append(c.figures, s)
	}
	return nil
}

// RemoveFigures erases and detaches shapes; shapes that are not children are ignored
func (c *Container) RemoveFigures(shapes ...shape.Shape) {
	for _, s := range shapes {
		i := c.IndexOf(s)
		if i < 0 {
			continue
		}
		c.eraseFigure(s)
		c.figures = slices.Delete(c.figures, i, i+1)
		s.SetOwner("")
	}
}

// SetDepth moves the container to another layer
func (c *Container) SetDepth(depth int) {
	c.comp.Relocate(c, depth)
}

// Move erases the container and translates it; figures follow since they are anchor-relative
func (c *Container) Move(dx, dy int) {
	c.Clear()
	c.anchor = c.anchor.Add(dx, dy)
	for i := range c.outline {
		c.outline[i] = c.outline[i].Add(dx, dy)
	}
}

// SizeUp grows both extents by the scale step around the current middle and grows every figure
func (c *Container) SizeUp() {
	step := c.comp.step
	c.Clear()
	c.width += step
	c.height += step
	c.anchor = c.anchor.Add(-step/2, -step/2)
	c.Build()
	for _, s := range c.figures {
		s.SizeUp()
	}
}

// SizeDown shrinks both extents by the scale step; refused when an extent would drop below the step
func (c *Container) SizeDown() error {
	step := c.comp.step
	if c.width-step < step || c.height-step < step {
		return fmt.Errorf("shrink %dx%d container by %d: %w", c.width, c.height, step, core.ErrInvalidState)
	}
	c.Clear()
	c.width -= step
	c.height -= step
	c.anchor = c.anchor.Add(step/2, step/2)
	c.Build()
	for _, s := range c.figures {
		s.SizeDown()
	}
	return nil
}

// MoveFigure erases s and translates it within the container
func (c *Container) MoveFigure(s shape.Shape, dx, dy int) error {
	if err := c.owns(s); err != nil {
		return err
	}
	c.eraseFigure(s)
	s.Move(dx, dy)
	return nil
}

// TurnFigure erases s and rotates it about its own center
func (c *Container) TurnFigure(s shape.Shape, degrees int) error {
	if err := c.owns(s); err != nil {
		return err
	}
	c.eraseFigure(s)
	shape.Turn(s, degrees)
	return nil
}

// ScaleFigure erases s and grows or shrinks it one step
func (c *Container) ScaleFigure(s shape.Shape, up bool) error {
	if err := c.owns(s); err != nil {
		return err
	}
	c.eraseFigure(s)
	if up {
		s.SizeUp()
	} else {
		s.SizeDown()
	}
	return nil
}

// Universal translates the cells of s from container space to surface coordinates
func (c *Container) Universal(s shape.Shape) []core.Point {
	pts := s.Points()
	out := make([]core.Point, len(pts))
	for i, p := range pts {
		out[i] = p.Add(c.anchor.X, c.anchor.Y)
	}
	return out
}

// Visible returns every cell Draw writes: the outline, then figure cells inside the interior
func (c *Container) Visible() []core.Point {
	interior := c.Rect().Inset(1)
	cells := slices.Clone(c.outline)
	for _, s := range c.figures {
		for _, p := range c.Universal(s) {
			if interior.Contains(p) {
				cells = append(cells, p)
			}
		}
	}
	return cells
}

// Draw writes the outline and the figures
func (c *Container) Draw() {
	c.paint(c.comp.glyph)
}

// Clear blanks every cell Draw writes
func (c *Container) Clear() {
	c.paint(render.GlyphBlank)
}

func (c *Container) paint(ch rune) {
	s := c.comp.surface
	render.PlotAll(s, c.outline, ch)
	for _, f := range c.figures {
		c.paintFigure(f, ch)
	}
}

func (c *Container) drawFigure(s shape.Shape) {
	c.paintFigure(s, c.comp.glyph)
}

func (c *Container) eraseFigure(s shape.Shape) {
	c.paintFigure(s, render.GlyphBlank)
}

// paintFigure writes the cells of f clipped to the container interior
func (c *Container) paintFigure(f shape.Shape, ch rune) {
	interior := c.Rect().Inset(1)
	for _, p := range c.Universal(f) {
		if interior.Contains(p) {
			render.Plot(c.comp.surface, p, ch)
		}
	}
}

func (c *Container) owns(s shape.Shape) error {
	if s.OwnerID() != c.id || c.IndexOf(s) < 0 {
		return fmt.Errorf("%s %s is not in container %s: %w", s.Kind(), s.ID(), c.id, core.ErrInvalidState)
	}
	return nil
}

// Area sums the areas of the figures
func (c *Container) Area() float64 {
	areas := make([]float64, len(c.figures))
	for i, s := range c.figures {
		areas[i] = s.Area()
	}
	return floats.Sum(areas)
}

// Perimeter sums the perimeters of the figures
func (c *Container) Perimeter() float64 {
	perimeters := make([]float64, len(c.figures))
	for i, s := range c.figures {
		perimeters[i] = s.Perimeter()
	}
	return floats.Sum(perimeters)
}

// Info returns a one-line summary of the container
func (c *Container) Info() string {
	return fmt.Sprintf("container at %s, %dx%d, depth %d, %d figures, area %.2f",
		c.anchor, c.width, c.height, c.depth, len(c.figures), c.Area())
}

// WidthFromColumns sizes a container to cols columns of a 12-column grid spanning surfaceWidth
func WidthFromColumns(cols, surfaceWidth int) int {
	return int(math.Round(float64(cols) / gridColumns * float64(surfaceWidth)))
}
