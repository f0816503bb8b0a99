package core

import "fmt"

// Point represents a 2D cell coordinate
type Point struct {
	X, Y int
}

// Add returns p translated by (dx, dy)
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Sub returns the offset from o to p
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("%d %d", p.X, p.Y)
}

// Rect is an axis-aligned cell rectangle, both corners inclusive
type Rect struct {
	Min, Max Point
}

// RectFrom builds the rectangle spanned by an anchor and extents
// The far corner is anchor+(width, height), matching how container outlines are drawn
func RectFrom(anchor Point, width, height int) Rect {
	return Rect{Min: anchor, Max: anchor.Add(width, height)}
}

// Contains reports whether p lies inside r, bounds inclusive
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Inset shrinks r by n cells on every side
// A rectangle inset past its own size is empty: Contains reports false for all points
func (r Rect) Inset(n int) Rect {
	return Rect{Min: r.Min.Add(n, n), Max: r.Max.Add(-n, -n)}
}

// Empty reports whether r holds no cells
func (r Rect) Empty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}
