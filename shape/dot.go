package shape

import "github.com/lixenwraith/vi-canvas/core"

// Dot is a single-cell marker
type Dot struct {
	Base
	at core.Point
}

// NewDot creates an unbuilt marker at (x, y)
func NewDot(x, y int) *Dot {
	return &Dot{Base: newBase(), at: core.Point{X: x, Y: y}}
}

func (d *Dot) Kind() Kind { return KindDot }
func (d *Dot) At() core.Point { return d.at }
func (d *Dot) Params() []int { return []int{d.at.X, d.at.Y} }
func (d *Dot) SizeUp() {}
func (d *Dot) SizeDown() {}

func (d *Dot) Build() {
	d.center = d.at
	d.points = []core.Point{d.at}
}

func (d *Dot) Move(dx, dy int) {
	d.Base.Move(dx, dy)
	d.at = d.center
}

func (d *Dot) Rotate(origin core.Point, degrees int) {
	d.Base.Rotate(origin, degrees)
	d.at = d.center
}
