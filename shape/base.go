package shape

import (
	"math"

	"github.com/lixenwraith/vi-canvas/core"
	"github.com/lixenwraith/vi-canvas/typeid"
)

// Base carries the state shared by all figures
// Variants embed it and override Move/Rotate when parameters follow the cells
type Base struct {
	id     string
	points []core.Point
	center core.Point
	size   int
	angle  int
	owner  string
}

func newBase() Base {
	return Base{id: typeid.NewShapeID(), size: DefaultSize}
}

func (b *Base) base() *Base { return b }

func (b *Base) ID() string { return b.id }
func (b *Base) Points() []core.Point { return b.points }
func (b *Base) Center() core.Point { return b.center }
func (b *Base) Size() int { return b.size }
func (b *Base) Angle() int { return b.angle }
func (b *Base) SetAngle(degrees int) { b.angle = degrees }
func (b *Base) OwnerID() string { return b.owner }
func (b *Base) SetOwner(id string) { b.owner = id }
func (b *Base) Area() float64 { return 0 }
func (b *Base) Perimeter() float64 { return 0 }

// Move translates every cell and the center
func (b *Base) Move(dx, dy int) {
	for i := range b.points {
		b.points[i] = b.points[i].Add(dx, dy)
	}
	b.center = b.center.Add(dx, dy)
}

// Rotate turns every cell and the center about origin
// Cells are reprojected to the nearest integer, so repeated rotations drift
func (b *Base) Rotate(origin core.Point, degrees int) {
	for i, p := range b.points {
		b.points[i] = rotatePoint(p, origin, degrees)
	}
	b.center = rotatePoint(b.center, origin, degrees)
}

// rebase re-rasterizes after a parameter change and restores position and orientation:
// build from parameters, translate by the previous anchor shift, re-apply the cumulative angle
func (b *Base) rebase(build func(), dx, dy int) {
	build()
	b.Move(dx, dy)
	b.Rotate(b.center, b.angle)
}

// rotatePoint maps p to polar coordinates about origin, adds degrees, and rounds back to a cell
// The origin itself (zero radius) is returned unchanged
func rotatePoint(p, origin core.Point, degrees int) core.Point {
	dx := float64(p.X - origin.X)
	dy := float64(p.Y - origin.Y)
	radius := math.Hypot(dx, dy)
	if radius == 0 {
		return p
	}

	theta := math.Atan2(dy, dx) + float64(degrees)*math.Pi/180.0
	return core.Point{
		X: int(math.Round(radius*math.Cos(theta))) + origin.X,
		Y: int(math.Round(radius*math.Sin(theta))) + origin.Y,
	}
}

// quarter returns n/4 rounded half-to-even, the minor axis of a conus foundation
func quarter(n int) int {
	return int(math.RoundToEven(float64(n) / 4))
}

// Union concatenates cell sets, keeping the first occurrence of each cell
func Union(sets ...[]core.Point) []core.Point {
	total := 0
	for _, s := range sets {
		total += len(s)
	}
	seen := make(map[core.Point]struct{}, total)
	out := make([]core.Point, 0, total)
	for _, s := range sets {
		for _, p := range s {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}
