package shape

import (
	"math"

	"github.com/lixenwraith/vi-canvas/core"
)

// lineTolerance is the accepted |cross product| between a cell offset and the line direction
const lineTolerance = 2

const (
	lineGrow   = 1.4
	lineShrink = 0.6
)

// Line is a segment between two cells
// Move and Rotate carry the endpoints along, so the endpoints always describe the current segment
type Line struct {
	Base
	start core.Point
	end   core.Point
}

// NewLine creates an unbuilt line
func NewLine(start, end core.Point) *Line {
	return &Line{Base: newBase(), start: start, end: end}
}

func (l *Line) Kind() Kind { return KindLine }
func (l *Line) Start() core.Point { return l.start }
func (l *Line) End() core.Point { return l.end }
func (l *Line) Params() []int { return []int{l.start.X, l.start.Y, l.end.X, l.end.Y} }
func (l *Line) Perimeter() float64 { return l.Length() }

// Length returns the euclidean distance between the endpoints
func (l *Line) Length() float64 {
	return math.Hypot(float64(l.end.X-l.start.X), float64(l.end.Y-l.start.Y))
}

// Build rasterizes the segment; center is the integer midpoint
func (l *Line) Build() {
	l.center = core.Point{X: (l.start.X + l.end.X) / 2, Y: (l.start.Y + l.end.Y) / 2}
	l.points = Segment(l.start, l.end)
}

// Move translates cells, center and endpoints
func (l *Line) Move(dx, dy int) {
	l.Base.Move(dx, dy)
	l.start = l.start.Add(dx, dy)
	l.end = l.end.Add(dx, dy)
}

// Rotate turns cells, center and endpoints about origin
func (l *Line) Rotate(origin core.Point, degrees int) {
	l.Base.Rotate(origin, degrees)
	l.start = rotatePoint(l.start, origin, degrees)
	l.end = rotatePoint(l.end, origin, degrees)
}

func (l *Line) SizeUp() {
	l.size += sizeStep
	l.scale(lineGrow)
}

func (l *Line) SizeDown() {
	l.size -= sizeStep
	l.scale(lineShrink)
}

// scale stretches both endpoints away from the center by m and rebuilds in place
// Lines are not re-rotated: the endpoints already carry the orientation
func (l *Line) scale(m float64) {
	c := l.center
	l.start = scaleAbout(l.start, c, m)
	l.end = scaleAbout(l.end, c, m)
	l.Build()
	l.Move(c.X, c.Y)
}

// scaleAbout returns the offset of p from c scaled by m, rounded to a cell
func scaleAbout(p, c core.Point, m float64) core.Point {
	return core.Point{
		X: int(math.Round(float64(p.X-c.X) * m)),
		Y: int(math.Round(float64(p.Y-c.Y) * m)),
	}
}

// Segment samples every cell in the bounding box of start and end, walking from start toward end
// on both axes, and keeps the cells within lineTolerance of the line through both endpoints
func Segment(start, end core.Point) []core.Point {
	dirX := end.X - start.X
	dirY := end.Y - start.Y
	stepX := sign(dirX)
	stepY := sign(dirY)

	pts := make([]core.Point, 0, abs(dirX)+abs(dirY)+1)
	for y := start.Y; y != end.Y+stepY; y += stepY {
		for x := start.X; x != end.X+stepX; x += stepX {
			cross := (x-end.X)*dirY - (y-end.Y)*dirX
			if cross >= -lineTolerance && cross <= lineTolerance {
				pts = append(pts, core.Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// sign returns the walk direction for a delta; zero walks forward so the loop visits one cell
func sign(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
