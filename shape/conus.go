package shape

import (
	"math"

	"github.com/lixenwraith/vi-canvas/core"
)

// Conus is a cone seen from slightly above: an elliptic foundation and three edges to the apex
type Conus struct {
	Base
	radius     int
	height     int
	foundation *Ellipse
}

// NewConus creates an unbuilt cone
func NewConus(radius, height int) *Conus {
	return &Conus{Base: newBase(), radius: radius, height: height}
}

func (c *Conus) Kind() Kind { return KindConus }
func (c *Conus) Radius() int { return c.radius }
func (c *Conus) Height() int { return c.height }
func (c *Conus) Params() []int { return []int{c.radius, c.height} }

func (c *Conus) Area() float64 {
	r, h := float64(c.radius), float64(c.height)
	slant := math.Sqrt(h*h + r*r)
	return math.Pi * r * (r + slant)
}

func (c *Conus) Perimeter() float64 {
	if c.foundation == nil {
		return foundationPerimeter(c.radius)
	}
	return c.foundation.Perimeter()
}

// Build places the foundation height cells below the apex and joins the apex to the
// foundation's left and right extremes and to its back edge
func (c *Conus) Build() {
	f := foundation(c.radius, quarter(c.radius))
	f.Move(0, c.height)
	c.foundation = f
	c.center = f.center

	fc := f.center
	apex := core.Point{X: fc.X, Y: fc.Y - c.height}
	left := Segment(apex, core.Point{X: fc.X - f.xFocus, Y: fc.Y})
	right := Segment(apex, core.Point{X: fc.X + f.xFocus, Y: fc.Y})
	back := Segment(apex, core.Point{X: fc.X, Y: fc.Y - f.yFocus})

	c.points = Union(f.points, left, right, back)
}

// builtCenter is where Build places the center for the current parameters
func (c *Conus) builtCenter() core.Point {
	return core.Point{X: c.radius, Y: c.height + quarter(c.radius)}
}

func (c *Conus) SizeUp() {
	c.height++
	c.radius++
	c.size += sizeStep
	c.resize()
}

func (c *Conus) SizeDown() {
	if c.height <= 0 || c.radius <= 0 {
		return
	}
	c.height--
	c.radius--
	c.size -= sizeStep
	c.resize()
}

// resize keeps the foundation center where it was before the parameter change
func (c *Conus) resize() {
	target := c.builtCenter()
	c.rebase(c.Build, c.center.X-target.X, c.center.Y-target.Y)
}

// PartialConus is a truncated cone: a main foundation, a smaller upper foundation
// height cells above it, and three edges joining them
type PartialConus struct {
	Base
	mainRadius  int
	upperRadius int
	height      int
	main        *Ellipse
	upper       *Ellipse
}

// NewPartialConus creates an unbuilt truncated cone
func NewPartialConus(mainRadius, upperRadius, height int) *PartialConus {
	return &PartialConus{Base: newBase(), mainRadius: mainRadius, upperRadius: upperRadius, height: height}
}

func (p *PartialConus) Kind() Kind { return KindPartialConus }
func (p *PartialConus) MainRadius() int { return p.mainRadius }
func (p *PartialConus) UpperRadius() int { return p.upperRadius }
func (p *PartialConus) Height() int { return p.height }
func (p *PartialConus) Params() []int { return []int{p.mainRadius, p.upperRadius, p.height} }

// Area is the frustum surface: both bases plus the lateral area over slant height L
func (p *PartialConus) Area() float64 {
	r1, r2, h := float64(p.mainRadius), float64(p.upperRadius), float64(p.height)
	slant := math.Sqrt(h*h + (r1-r2)*(r1-r2))
	return math.Pi * (r1*r1 + r2*r2 + (r1+r2)*slant)
}

func (p *PartialConus) Perimeter() float64 {
	if p.main == nil || p.upper == nil {
		return foundationPerimeter(p.mainRadius) + foundationPerimeter(p.upperRadius)
	}
	return p.main.Perimeter() + p.upper.Perimeter()
}

// Build centers the upper foundation over the main one and drops the main one height cells
func (p *PartialConus) Build() {
	main := foundation(p.mainRadius, quarter(p.mainRadius))
	upper := foundation(p.upperRadius, quarter(p.upperRadius))

	upper.Move(main.center.X-upper.center.X, 0)
	main.Move(0, p.height)
	p.main, p.upper = main, upper
	p.center = main.center

	mc, uc := main.center, upper.center
	left := Segment(
		core.Point{X: uc.X - upper.xFocus, Y: uc.Y},
		core.Point{X: mc.X - main.xFocus, Y: mc.Y})
	right := Segment(
		core.Point{X: uc.X + upper.xFocus, Y: uc.Y},
		core.Point{X: mc.X + main.xFocus, Y: mc.Y})
	back := Segment(
		core.Point{X: uc.X, Y: uc.Y + upper.yFocus},
		core.Point{X: mc.X, Y: mc.Y - main.yFocus})

	p.points = Union(main.points, upper.points, left, right, back)
}

func (p *PartialConus) builtCenter() core.Point {
	return core.Point{X: p.mainRadius, Y: p.height + quarter(p.mainRadius)}
}

func (p *PartialConus) SizeUp() {
	p.height++
	p.upperRadius++
	p.mainRadius++
	p.size += sizeStep
	p.resize()
}

func (p *PartialConus) SizeDown() {
	if p.height <= 0 || p.upperRadius <= 0 || p.mainRadius <= 0 {
		return
	}
	p.height--
	p.upperRadius--
	p.mainRadius--
	p.size -= sizeStep
	p.resize()
}

func (p *PartialConus) resize() {
	target := p.builtCenter()
	p.rebase(p.Build, p.center.X-target.X, p.center.Y-target.Y)
}

// foundationPerimeter is the perimeter of an unbuilt foundation of the given radius
func foundationPerimeter(radius int) float64 {
	e := Ellipse{xFocus: radius, yFocus: quarter(radius)}
	return e.Perimeter()
}
