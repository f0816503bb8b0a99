package shape

import (
	"math"

	"github.com/lixenwraith/vi-canvas/core"
)

// DefaultAccuracy is the accepted deviation of x²/a² + y²/b² from 1
const DefaultAccuracy = 0.2

const (
	ellipseStepX = 3
	ellipseStepY = 1
)

// Ellipse is an axis-aligned ellipse with semi-axes xFocus and yFocus
type Ellipse struct {
	Base
	xFocus   int
	yFocus   int
	accuracy float64
}

// NewEllipse creates an unbuilt ellipse
func NewEllipse(xFocus, yFocus int) *Ellipse {
	return &Ellipse{Base: newBase(), xFocus: xFocus, yFocus: yFocus, accuracy: DefaultAccuracy}
}

// foundation builds an id-less ellipse used internally by composite figures
func foundation(xFocus, yFocus int) *Ellipse {
	e := &Ellipse{xFocus: xFocus, yFocus: yFocus, accuracy: DefaultAccuracy}
	e.Build()
	return e
}

func (e *Ellipse) Kind() Kind { return KindEllipse }
func (e *Ellipse) XFocus() int { return e.xFocus }
func (e *Ellipse) YFocus() int { return e.yFocus }
func (e *Ellipse) Accuracy() float64 { return e.accuracy }
func (e *Ellipse) Params() []int { return []int{e.xFocus, e.yFocus} }

// SetAccuracy changes the band tolerance; takes effect on the next Build
func (e *Ellipse) SetAccuracy(accuracy float64) {
	e.accuracy = accuracy
}

func (e *Ellipse) Tolerance() float64 { return e.accuracy }
func (e *Ellipse) SetTolerance(t float64) { e.SetAccuracy(t) }

func (e *Ellipse) Area() float64 {
	return math.Pi * float64(e.xFocus) * float64(e.yFocus)
}

// Perimeter uses the (4πab + (a−b)²)/(a+b) approximation
func (e *Ellipse) Perimeter() float64 {
	a, b := float64(e.xFocus), float64(e.yFocus)
	if a+b == 0 {
		return 0
	}
	return (4*math.Pi*a*b + (a-b)*(a-b)) / (a + b)
}

// Build samples the (2a+1)×(2b+1) box around center (a, b), bottom row first
// A zero axis collapses the ellipse onto a segment along the other axis
func (e *Ellipse) Build() {
	a, b := e.xFocus, e.yFocus
	e.center = core.Point{X: a, Y: b}

	switch {
	case a <= 0 && b <= 0:
		e.points = []core.Point{e.center}
		return
	case a <= 0:
		e.points = Segment(core.Point{X: 0, Y: 2 * b}, core.Point{X: 0, Y: 0})
		return
	case b <= 0:
		e.points = Segment(core.Point{X: 2 * a, Y: 0}, core.Point{X: 0, Y: 0})
		return
	}

	rIn := 1 - e.accuracy
	rOut := 1 + e.accuracy
	a2 := float64(a * a)
	b2 := float64(b * b)

	pts := make([]core.Point, 0, 4*(a+b))
	for j := 2 * b; j >= 0; j-- {
		for i := 2 * a; i >= 0; i-- {
			x, y := float64(i-a), float64(j-b)
			v := x*x/a2 + y*y/b2
			if v >= rIn && v <= rOut {
				pts = append(pts, core.Point{X: i, Y: j})
			}
		}
	}
	e.points = pts
}

// shift returns how far the ellipse sits from its built position
func (e *Ellipse) shift() (int, int) {
	return e.center.X - e.xFocus, e.center.Y - e.yFocus
}

// SizeUp widens faster than it heightens to compensate for tall terminal cells
func (e *Ellipse) SizeUp() {
	dx, dy := e.shift()
	e.xFocus += ellipseStepX
	e.yFocus += ellipseStepY
	e.size += sizeStep
	e.rebase(e.Build, dx, dy)
}

// SizeDown shrinks both axes; once either axis is zero the ellipse collapses to a single cell
// at its current offset, keeping its informational size
func (e *Ellipse) SizeDown() {
	dx, dy := e.shift()
	if e.xFocus <= 0 || e.yFocus <= 0 {
		e.xFocus, e.yFocus = 0, 0
		e.rebase(e.Build, dx, dy)
		return
	}
	e.xFocus = max(e.xFocus-ellipseStepX, 0)
	e.yFocus = max(e.yFocus-ellipseStepY, 0)
	e.size -= sizeStep
	e.rebase(e.Build, dx, dy)
}
