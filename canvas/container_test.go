package canvas

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/lixenwraith/vi-canvas/core"
	"github.com/lixenwraith/vi-canvas/render"
	"github.com/lixenwraith/vi-canvas/shape"
)

func TestContainerOutline(t *testing.T) {
	co, _ := newTestCompositor(t)
	c := co.NewContainer(core.Point{X: 2, Y: 3}, WithSize(4, 2))

	// perimeter of a 5x3 cell rectangle
	if len(c.Outline()) != 12 {
		t.Errorf("Expected 12 outline cells, got %d", len(c.Outline()))
	}
	for _, p := range []core.Point{{X: 2, Y: 3}, {X: 6, Y: 3}, {X: 2, Y: 5}, {X: 6, Y: 5}, {X: 4, Y: 3}, {X: 2, Y: 4}} {
		if !onOutline(c, p) {
			t.Errorf("Expected outline cell %v", p)
		}
	}
	if onOutline(c, core.Point{X: 4, Y: 4}) {
		t.Error("Interior cell on outline")
	}
}

func TestAddFiguresRejectsForeignOwner(t *testing.T) {
	co, _ := newTestCompositor(t)
	a := co.NewContainer(core.Point{})
	b := co.NewContainer(core.Point{X: 5, Y: 5})
	s := mustShape(t, shape.KindCircle, 2)
	free := mustShape(t, shape.KindDot, 1, 1)

	if err := a.AddFigures(s); err != nil {
		t.Fatal(err)
	}
	err := b.AddFigures(free, s)
	if !errors.Is(err, core.ErrInvalidState) {
		t.Fatalf("Expected ErrInvalidState, got %v", err)
	}
	if b.Len() != 0 || free.OwnerID() != "" {
		t.Error("Rejected batch must not attach any figure")
	}

	if err := a.AddFigures(s); err != nil || a.Len() != 1 {
		t.Errorf("Re-adding an own figure should be a no-op, len %d err %v", a.Len(), err)
	}
}

func TestAddFiguresBuilds(t *testing.T) {
	co, _ := newTestCompositor(t)
	c := co.NewContainer(core.Point{})
	s := mustShape(t, shape.KindCircle, 3)

	if len(s.Points()) != 0 {
		t.Fatal("Figure should be unbuilt before attach")
	}
	if err := c.AddFigures(s); err != nil {
		t.Fatal(err)
	}
	if len(s.Points()) == 0 || s.OwnerID() != c.ID() {
		t.Error("Attached figure must be built and owned")
	}
}

func TestRemoveFigures(t *testing.T) {
	co, buf := newTestCompositor(t)
	c := co.NewContainer(core.Point{}, WithSize(12, 12))
	keep := mustShape(t, shape.KindDot, 2, 2)
	drop := mustShape(t, shape.KindCircle, 3)
	if err := c.AddFigures(keep, drop); err != nil {
		t.Fatal(err)
	}
	if err := c.MoveFigure(drop, 4, 4); err != nil {
		t.Fatal(err)
	}
	co.RenderAll()

	c.RemoveFigures(drop, mustShape(t, shape.KindDot, 0, 0))

	if c.Len() != 1 || c.IndexOf(keep) != 0 {
		t.Errorf("Unexpected children after remove: %d", c.Len())
	}
	if drop.OwnerID() != "" {
		t.Error("Removed figure still owned")
	}
	for _, p := range c.Universal(drop) {
		if buf.At(p) != render.GlyphBlank {
			t.Errorf("Removed figure cell %v still drawn", p)
		}
	}
	if buf.At(core.Point{X: 2, Y: 2}) != render.GlyphInk {
		t.Error("Remaining figure erased")
	}
}

func TestFigureSelection(t *testing.T) {
	co, _ := newTestCompositor(t)
	c := co.NewContainer(core.Point{})
	s := mustShape(t, shape.KindDot, 1, 1)
	if err := c.AddFigures(s); err != nil {
		t.Fatal(err)
	}

	got, err := c.Figure(0)
	if err != nil || got != s {
		t.Errorf("Expected first figure, got %v (%v)", got, err)
	}
	if _, err := c.Figure(1); !errors.Is(err, core.ErrInvalidState) {
		t.Errorf("Expected ErrInvalidState, got %v", err)
	}

	figs := c.Figures()
	figs[0] = nil
	if f, _ := c.Figure(0); f != s {
		t.Error("Figures must return a copy")
	}
}

func TestFigureOpsRequireOwnership(t *testing.T) {
	co, _ := newTestCompositor(t)
	c := co.NewContainer(core.Point{})
	stray := mustShape(t, shape.KindCircle, 2)
	stray.Build()

	if err := c.MoveFigure(stray, 1, 1); !errors.Is(err, core.ErrInvalidState) {
		t.Errorf("MoveFigure: expected ErrInvalidState, got %v", err)
	}
	if err := c.TurnFigure(stray, 30); !errors.Is(err, core.ErrInvalidState) {
		t.Errorf("TurnFigure: expected ErrInvalidState, got %v", err)
	}
	if err := c.ScaleFigure(stray, true); !errors.Is(err, core.ErrInvalidState) {
		t.Errorf("ScaleFigure: expected ErrInvalidState, got %v", err)
	}
}

func TestFigureOps(t *testing.T) {
	co, _ := newTestCompositor(t)
	c := co.NewContainer(core.Point{})
	s := mustShape(t, shape.KindEllipse, 6, 2)
	if err := c.AddFigures(s); err != nil {
		t.Fatal(err)
	}

	if err := c.MoveFigure(s, 2, -1); err != nil {
		t.Fatal(err)
	}
	if s.Center() != (core.Point{X: 8, Y: 1}) {
		t.Errorf("Unexpected center after move %v", s.Center())
	}
	if err := c.TurnFigure(s, 30); err != nil {
		t.Fatal(err)
	}
	if s.Angle() != 30 {
		t.Errorf("Expected angle 30, got %d", s.Angle())
	}
	if err := c.ScaleFigure(s, true); err != nil {
		t.Fatal(err)
	}
	if s.Size() != shape.DefaultSize+10 {
		t.Errorf("Expected size %d, got %d", shape.DefaultSize+10, s.Size())
	}
}

func TestFiguresClippedToInterior(t *testing.T) {
	co, buf := newTestCompositor(t)
	c := co.NewContainer(core.Point{}, WithSize(10, 10))
	if err := c.AddFigures(mustShape(t, shape.KindCircle, 8)); err != nil {
		t.Fatal(err)
	}

	co.RenderAll()

	interior := c.Rect().Inset(1)
	for _, p := range c.Universal(c.figures[0]) {
		if interior.Contains(p) || onOutline(c, p) {
			continue
		}
		if buf.At(p) != render.GlyphBlank {
			t.Errorf("Figure cell %v drawn outside its container", p)
		}
	}
	if buf.At(core.Point{X: 16, Y: 8}) != render.GlyphBlank {
		t.Error("Expected clipped cell (16,8) blank")
	}
}

func TestContainerMove(t *testing.T) {
	co, buf := newTestCompositor(t)
	c := co.NewContainer(core.Point{X: 1, Y: 1}, WithSize(6, 6))
	s := mustShape(t, shape.KindDot, 2, 2)
	if err := c.AddFigures(s); err != nil {
		t.Fatal(err)
	}
	co.RenderAll()

	c.Move(10, 5)

	if c.Anchor() != (core.Point{X: 11, Y: 6}) {
		t.Errorf("Unexpected anchor %v", c.Anchor())
	}
	if !onOutline(c, core.Point{X: 11, Y: 6}) || onOutline(c, core.Point{X: 1, Y: 1}) {
		t.Error("Outline not translated")
	}
	if buf.At(core.Point{X: 1, Y: 1}) != render.GlyphBlank || buf.At(core.Point{X: 3, Y: 3}) != render.GlyphBlank {
		t.Error("Old position not erased")
	}
	if s.Center() != (core.Point{X: 2, Y: 2}) {
		t.Error("Figure local coordinates must not change on container move")
	}

	co.RenderAll()
	if buf.At(core.Point{X: 13, Y: 8}) != render.GlyphInk {
		t.Error("Figure not drawn at new position")
	}
}

func TestContainerScale(t *testing.T) {
	co, _ := newTestCompositor(t)
	c := co.NewContainer(core.Point{X: 10, Y: 10}, WithSize(10, 10))
	s := mustShape(t, shape.KindCircle, 2)
	if err := c.AddFigures(s); err != nil {
		t.Fatal(err)
	}

	c.SizeUp()
	if c.Width() != 15 || c.Height() != 15 || c.Anchor() != (core.Point{X: 8, Y: 8}) {
		t.Errorf("Unexpected geometry after SizeUp: %dx%d at %v", c.Width(), c.Height(), c.Anchor())
	}
	if s.Params()[0] != 3 {
		t.Errorf("Figures scale with the container, radius %d", s.Params()[0])
	}

	if err := c.SizeDown(); err != nil {
		t.Fatal(err)
	}
	if err := c.SizeDown(); err != nil {
		t.Fatal(err)
	}
	if c.Width() != 5 || c.Anchor() != (core.Point{X: 12, Y: 12}) {
		t.Errorf("Unexpected geometry after SizeDown: %dx%d at %v", c.Width(), c.Height(), c.Anchor())
	}
	if err := c.SizeDown(); !errors.Is(err, core.ErrInvalidState) {
		t.Errorf("Expected shrink below the step to be refused, got %v", err)
	}
	if c.Width() != 5 {
		t.Error("Refused SizeDown must not change the container")
	}
}

func TestContainerMeasures(t *testing.T) {
	co, _ := newTestCompositor(t)
	c := co.NewContainer(core.Point{})
	if c.Area() != 0 || c.Perimeter() != 0 {
		t.Error("Empty container should measure zero")
	}
	if err := c.AddFigures(mustShape(t, shape.KindCircle, 1), mustShape(t, shape.KindEllipse, 2, 1)); err != nil {
		t.Fatal(err)
	}

	if !scalar.EqualWithinAbs(c.Area(), 3*math.Pi, 1e-9) {
		t.Errorf("Expected area 3π, got %f", c.Area())
	}
	wantPerimeter := 2*math.Pi + (8*math.Pi+1)/3
	if !scalar.EqualWithinAbs(c.Perimeter(), wantPerimeter, 1e-9) {
		t.Errorf("Expected perimeter %f, got %f", wantPerimeter, c.Perimeter())
	}
}

func TestWidthFromColumns(t *testing.T) {
	tests := []struct{ cols, width, want int }{
		{12, 80, 80},
		{6, 80, 40},
		{1, 80, 7},
		{0, 80, 0},
	}
	for _, tt := range tests {
		if got := WidthFromColumns(tt.cols, tt.width); got != tt.want {
			t.Errorf("WidthFromColumns(%d, %d) = %d, want %d", tt.cols, tt.width, got, tt.want)
		}
	}
}
