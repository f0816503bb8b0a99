// Package shape rasterizes geometric figures into discrete cell sets and
// transforms them under move, rotate and scale.
//
// Every figure keeps its cells in the local space of the container that owns
// it. Build recomputes cells from the figure's parameters and discards any
// rotation: the cumulative Angle is informational and callers re-apply it
// (see Turn and the rebase performed by SizeUp/SizeDown).
package shape

import (
	"fmt"

	"github.com/lixenwraith/vi-canvas/core"
)

// DefaultSize is the informational magnitude every figure starts with
const DefaultSize = 100

// sizeStep is the informational magnitude change per SizeUp/SizeDown
const sizeStep = 10

// Shape is a rasterizable figure
type Shape interface {
	ID() string
	Kind() Kind

	// Params returns the fixed-arity parameter list accepted by New for Kind
	Params() []int

	// Build recomputes Points and Center from parameters, unrotated and origin-anchored
	Build()

	// Points returns the current cells in local coordinates. Callers must not modify the slice
	Points() []core.Point
	Center() core.Point
	Size() int
	Angle() int
	SetAngle(degrees int)

	// OwnerID returns the id of the owning container, empty when detached
	OwnerID() string
	SetOwner(containerID string)

	Move(dx, dy int)
	Rotate(origin core.Point, degrees int)
	SizeUp()
	SizeDown()

	Area() float64
	Perimeter() float64
}

// Turn rotates s about its own center and accumulates the rotation in Angle
func Turn(s Shape, degrees int) {
	s.Rotate(s.Center(), degrees)
	s.SetAngle(s.Angle() + degrees)
}

// Info returns a one-line human readable summary of s
func Info(s Shape) string {
	return fmt.Sprintf("%s, area %.2f, size: %d, angle: %d", s.Kind(), s.Area(), s.Size(), s.Angle())
}

// Tolerant is a figure whose Build keeps every cell within a tolerance band of the exact curve
// Circles expose their band half-width, ellipses their accepted deviation from 1
type Tolerant interface {
	Tolerance() float64
	SetTolerance(t float64)
}

// State is the part of a figure not derivable from its parameters
// Tolerance is zero for figures that are not Tolerant
type State struct {
	Points    []core.Point
	Center    core.Point
	Size      int
	Angle     int
	Tolerance float64
}

// Capture returns a copy of the transient state of s
func Capture(s Shape) State {
	pts := make([]core.Point, len(s.Points()))
	copy(pts, s.Points())
	st := State{
		Points: pts,
		Center: s.Center(),
		Size:   s.Size(),
		Angle:  s.Angle(),
	}
	if t, ok := s.(Tolerant); ok {
		st.Tolerance = t.Tolerance()
	}
	return st
}

// Restore overwrites the transient state of s, bypassing Build
// A zero Tolerance keeps the figure's current tolerance
func Restore(s Shape, st State) error {
	b, ok := s.(interface{ base() *Base })
	if !ok {
		return fmt.Errorf("restore %T: %w", s, core.ErrInvalidState)
	}
	base := b.base()
	base.points = make([]core.Point, len(st.Points))
	copy(base.points, st.Points)
	base.center = st.Center
	base.size = st.Size
	base.angle = st.Angle
	if t, ok := s.(Tolerant); ok && st.Tolerance > 0 {
		t.SetTolerance(st.Tolerance)
	}
	return nil
}
