package shape

import (
	"math"

	"github.com/lixenwraith/vi-canvas/core"
)

// DefaultBand is the half-width of the tolerance band kept around a circle's boundary
const DefaultBand = 0.4

// Circle is a ring of cells at distance radius±band from its center
// A filled circle keeps everything from the center out to radius+band
type Circle struct {
	Base
	radius int
	band   float64
	filled bool
}

// NewCircle creates an unbuilt hollow circle
func NewCircle(radius int) *Circle {
	return &Circle{Base: newBase(), radius: radius, band: DefaultBand}
}

// NewFilledCircle creates an unbuilt disc
func NewFilledCircle(radius int) *Circle {
	return &Circle{Base: newBase(), radius: radius, band: DefaultBand, filled: true}
}

func (c *Circle) Kind() Kind {
	if c.filled {
		return KindFilledCircle
	}
	return KindCircle
}

func (c *Circle) Radius() int { return c.radius }
func (c *Circle) Filled() bool { return c.filled }
func (c *Circle) Band() float64 { return c.band }
func (c *Circle) Params() []int { return []int{c.radius} }

// SetBand changes the boundary tolerance; takes effect on the next Build
func (c *Circle) SetBand(band float64) {
	c.band = band
}

func (c *Circle) Tolerance() float64 { return c.band }
func (c *Circle) SetTolerance(t float64) { c.SetBand(t) }

func (c *Circle) Area() float64 {
	return math.Pi * float64(c.radius*c.radius)
}

func (c *Circle) Perimeter() float64 {
	return 2 * math.Pi * float64(c.radius)
}

// BandLimits returns the [inner, outer] distance range kept by Build
func (c *Circle) BandLimits() (float64, float64) {
	rIn := float64(c.radius) - c.band
	rOut := float64(c.radius) + c.band
	if c.filled {
		rIn = 0
	}
	return rIn, rOut
}

// Build samples the (2r+1)² box around center (r, r), bottom row first
func (c *Circle) Build() {
	r := c.radius
	c.center = core.Point{X: r, Y: r}
	rIn, rOut := c.BandLimits()

	pts := make([]core.Point, 0, 8*(r+1))
	for j := 2 * r; j >= 0; j-- {
		for i := 2 * r; i >= 0; i-- {
			x, y := i-r, j-r
			d := math.Sqrt(float64(x*x + y*y))
			if d >= rIn && d <= rOut {
				pts = append(pts, core.Point{X: i, Y: j})
			}
		}
	}
	c.points = pts
}

// shift returns how far the circle sits from its built position
func (c *Circle) shift() (int, int) {
	return c.center.X - c.radius, c.center.Y - c.radius
}

func (c *Circle) SizeUp() {
	dx, dy := c.shift()
	c.radius++
	c.rebase(c.Build, dx, dy)
}

func (c *Circle) SizeDown() {
	if c.radius <= 0 {
		return
	}
	dx, dy := c.shift()
	c.radius--
	c.rebase(c.Build, dx, dy)
}
