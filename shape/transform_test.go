package shape

import (
	"slices"
	"testing"

	"github.com/lixenwraith/vi-canvas/core"
)

func builtFigures() []Shape {
	figs := []Shape{
		NewCircle(5),
		NewFilledCircle(3),
		NewEllipse(10, 3),
		NewLine(core.Point{X: 1, Y: 1}, core.Point{X: 5, Y: 5}),
		NewConus(7, 10),
		NewPartialConus(7, 4, 5),
		NewDot(2, 3),
	}
	for _, f := range figs {
		f.Build()
	}
	return figs
}

func TestMoveRoundTrip(t *testing.T) {
	for _, f := range builtFigures() {
		before := slices.Clone(f.Points())
		center := f.Center()

		f.Move(4, -3)
		f.Move(-4, 3)

		if !slices.Equal(before, f.Points()) {
			t.Errorf("%s: cells changed after move round trip", f.Kind())
		}
		if f.Center() != center {
			t.Errorf("%s: center %v became %v", f.Kind(), center, f.Center())
		}
	}
}

func TestMoveTranslatesEveryCell(t *testing.T) {
	for _, f := range builtFigures() {
		before := slices.Clone(f.Points())
		f.Move(3, 2)
		for i, p := range f.Points() {
			if p != before[i].Add(3, 2) {
				t.Errorf("%s: cell %d moved to %v, expected %v", f.Kind(), i, p, before[i].Add(3, 2))
				break
			}
		}
	}
}

func TestBuildIdempotent(t *testing.T) {
	for _, f := range builtFigures() {
		first := slices.Clone(f.Points())
		f.Build()
		if !slices.Equal(first, f.Points()) {
			t.Errorf("%s: second Build produced different cells", f.Kind())
		}
	}
}

func TestRotateZeroIsIdentity(t *testing.T) {
	for _, f := range builtFigures() {
		before := slices.Clone(f.Points())
		f.Rotate(f.Center(), 0)
		if !slices.Equal(before, f.Points()) {
			t.Errorf("%s: rotation by 0 changed cells", f.Kind())
		}
	}
}

func TestRotateDot(t *testing.T) {
	d := NewDot(2, 0)
	d.Build()
	d.Rotate(core.Point{}, 90)

	if d.Points()[0] != (core.Point{X: 0, Y: 2}) {
		t.Errorf("Expected (0,2), got %v", d.Points()[0])
	}
	if d.At() != d.Center() {
		t.Errorf("Dot position %v out of sync with center %v", d.At(), d.Center())
	}
}

func TestTurnAccumulatesAngle(t *testing.T) {
	c := NewCircle(4)
	c.Build()
	center := c.Center()

	Turn(c, 30)
	Turn(c, 30)

	if c.Angle() != 60 {
		t.Errorf("Expected angle 60, got %d", c.Angle())
	}
	if c.Center() != center {
		t.Errorf("Turn must keep the center, %v became %v", center, c.Center())
	}

	c.Rotate(center, 90)
	if c.Angle() != 60 {
		t.Errorf("Rotate must not touch the angle, got %d", c.Angle())
	}
}

func TestCaptureRestore(t *testing.T) {
	src := NewEllipse(6, 2)
	src.Build()
	src.Move(5, 5)
	Turn(src, 30)
	src.SizeUp()
	st := Capture(src)

	// mutating the source must not leak into the snapshot
	src.Move(1, 1)

	dst := NewEllipse(src.XFocus(), src.YFocus())
	dst.Build()
	if err := Restore(dst, st); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	if !slices.Equal(dst.Points(), st.Points) {
		t.Error("Restored cells differ from snapshot")
	}
	if dst.Center() != st.Center || dst.Angle() != 30 || dst.Size() != DefaultSize+10 {
		t.Errorf("Unexpected restored state: center %v angle %d size %d", dst.Center(), dst.Angle(), dst.Size())
	}
}

func TestCaptureRestoreTolerance(t *testing.T) {
	src := NewCircle(4)
	src.SetBand(0.7)
	src.Build()
	st := Capture(src)
	if st.Tolerance != 0.7 {
		t.Fatalf("Expected captured tolerance 0.7, got %v", st.Tolerance)
	}

	dst := NewCircle(4)
	dst.Build()
	if err := Restore(dst, st); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if dst.Band() != 0.7 {
		t.Errorf("Expected band 0.7, got %v", dst.Band())
	}
	dst.Build()
	if !slices.Equal(dst.Points(), src.Points()) {
		t.Error("Rebuilt cells differ after restoring the band")
	}

	// zero keeps the figure's own tolerance
	st.Tolerance = 0
	if err := Restore(dst, st); err != nil || dst.Band() != 0.7 {
		t.Errorf("Zero tolerance must not reset the band, got %v", dst.Band())
	}

	if Capture(NewLine(core.Point{}, core.Point{X: 3, Y: 3})).Tolerance != 0 {
		t.Error("Lines have no tolerance")
	}
}

func TestInfo(t *testing.T) {
	c := NewCircle(1)
	c.Build()
	want := "circle, area 3.14, size: 100, angle: 0"
	if got := Info(c); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestUnionDeduplicates(t *testing.T) {
	a := []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}
	b := []core.Point{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 0}}
	got := Union(a, b)
	want := []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	if !slices.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
