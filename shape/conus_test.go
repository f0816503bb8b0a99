package shape

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/lixenwraith/vi-canvas/core"
)

func TestConusBuild(t *testing.T) {
	c := NewConus(7, 10)
	c.Build()

	// foundation minor axis is round(7/4) = 2
	if c.Center() != (core.Point{X: 7, Y: 12}) {
		t.Errorf("Expected center (7,12), got %v", c.Center())
	}

	cells := toSet(c.Points())
	for _, p := range []core.Point{{X: 7, Y: 2}, {X: 0, Y: 12}, {X: 14, Y: 12}, {X: 7, Y: 10}, {X: 7, Y: 14}} {
		if !cells[p] {
			t.Errorf("Expected cell %v (apex, foundation extremes, back edge)", p)
		}
	}
	if len(cells) != len(c.Points()) {
		t.Error("Composite cells must be deduplicated")
	}
}

func TestConusMeasures(t *testing.T) {
	c := NewConus(3, 4)
	want := math.Pi * 3 * (3 + 5)
	if !scalar.EqualWithinAbs(c.Area(), want, 1e-9) {
		t.Errorf("Expected area %f, got %f", want, c.Area())
	}

	c.Build()
	f := NewEllipse(3, 1)
	if !scalar.EqualWithinAbs(c.Perimeter(), f.Perimeter(), 1e-9) {
		t.Errorf("Expected foundation perimeter %f, got %f", f.Perimeter(), c.Perimeter())
	}
}

// TestConusResizeKeepsCenter verifies SizeUp/SizeDown keep the foundation center in place
func TestConusResizeKeepsCenter(t *testing.T) {
	c := NewConus(7, 10)
	c.Build()
	c.Move(3, 1)
	before := c.Center()

	c.SizeUp()
	if c.Radius() != 8 || c.Height() != 11 || c.Size() != DefaultSize+10 {
		t.Errorf("Unexpected params after SizeUp: r=%d h=%d size=%d", c.Radius(), c.Height(), c.Size())
	}
	if c.Center() != before {
		t.Errorf("Center moved on SizeUp: %v -> %v", before, c.Center())
	}

	c.SizeDown()
	if c.Center() != before {
		t.Errorf("Center moved on SizeDown: %v -> %v", before, c.Center())
	}

	flat := NewConus(0, 3)
	flat.Build()
	flat.SizeDown()
	if flat.Radius() != 0 || flat.Height() != 3 {
		t.Errorf("SizeDown at zero radius must be a no-op, got r=%d h=%d", flat.Radius(), flat.Height())
	}
}

func TestPartialConusBuild(t *testing.T) {
	p := NewPartialConus(7, 4, 5)
	p.Build()

	// main foundation (7,2) dropped by 5, upper foundation (4,1) shifted right by 3
	if p.Center() != (core.Point{X: 7, Y: 7}) {
		t.Errorf("Expected center (7,7), got %v", p.Center())
	}

	cells := toSet(p.Points())
	for _, c := range []core.Point{{X: 3, Y: 1}, {X: 11, Y: 1}, {X: 0, Y: 7}, {X: 14, Y: 7}, {X: 7, Y: 2}, {X: 7, Y: 5}} {
		if !cells[c] {
			t.Errorf("Expected cell %v", c)
		}
	}
}

func TestPartialConusArea(t *testing.T) {
	p := NewPartialConus(6, 3, 4)
	slant := 5.0
	want := math.Pi * (36 + 9 + 9*slant)
	if !scalar.EqualWithinAbs(p.Area(), want, 1e-9) {
		t.Errorf("Expected area %f, got %f", want, p.Area())
	}

	p.Build()
	want = NewEllipse(6, 2).Perimeter() + NewEllipse(3, 1).Perimeter()
	if !scalar.EqualWithinAbs(p.Perimeter(), want, 1e-9) {
		t.Errorf("Expected perimeter %f, got %f", want, p.Perimeter())
	}
}

func TestPartialConusResize(t *testing.T) {
	p := NewPartialConus(7, 4, 5)
	p.Build()
	p.Move(10, 4)
	before := p.Center()

	p.SizeUp()
	if p.MainRadius() != 8 || p.UpperRadius() != 5 || p.Height() != 6 {
		t.Errorf("Unexpected params after SizeUp: %v", p.Params())
	}
	if p.Center() != before {
		t.Errorf("Center moved on SizeUp: %v -> %v", before, p.Center())
	}

	p.SizeDown()
	p.SizeDown()
	if p.Params()[0] != 6 || p.Params()[1] != 3 || p.Params()[2] != 4 {
		t.Errorf("Unexpected params after shrinking: %v", p.Params())
	}
	if p.Size() != DefaultSize-10 {
		t.Errorf("Expected size %d, got %d", DefaultSize-10, p.Size())
	}
}
