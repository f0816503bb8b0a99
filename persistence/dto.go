package persistence

import (
	"fmt"
	"time"

	"github.com/lixenwraith/vi-canvas/canvas"
	"github.com/lixenwraith/vi-canvas/core"
	"github.com/lixenwraith/vi-canvas/shape"
)

// FormatVersion is written into every snapshot and checked on load
const FormatVersion = 1

// ContainerDTO is the serializable container state
type ContainerDTO struct {
	Version int         `toml:"version"`
	Name    string      `toml:"name"`
	SavedAt time.Time   `toml:"saved_at"`
	Anchor  PointDTO    `toml:"anchor"`
	Width   int         `toml:"width"`
	Height  int         `toml:"height"`
	Depth   int         `toml:"depth"`
	Figures []FigureDTO `toml:"figures"`
}

// PointDTO is a serializable cell coordinate
type PointDTO struct {
	X int `toml:"x"`
	Y int `toml:"y"`
}

// FigureDTO is a serializable figure: its constructor parameters plus transient state
type FigureDTO struct {
	Kind   string   `toml:"kind"`
	Params []int    `toml:"params"`
	Points [][2]int `toml:"points"`
	Center PointDTO `toml:"center"`
	Size   int      `toml:"size"`
	Angle  int      `toml:"angle"`

	// Tolerance is the circle band or ellipse accuracy; absent for other kinds
	Tolerance float64 `toml:"tolerance,omitempty"`
}

// FromContainer snapshots c; the result shares no memory with c
func FromContainer(c *canvas.Container, name string) ContainerDTO {
	dto := ContainerDTO{
		Version: FormatVersion,
		Name:    name,
		SavedAt: time.Now().UTC().Truncate(time.Second),
		Anchor:  pointDTO(c.Anchor()),
		Width:   c.Width(),
		Height:  c.Height(),
		Depth:   c.Depth(),
	}

	figs := c.Figures()
	dto.Figures = make([]FigureDTO, len(figs))
	for i, s := range figs {
		st := shape.Capture(s)
		pts := make([][2]int, len(st.Points))
		for j, p := range st.Points {
			pts[j] = [2]int{p.X, p.Y}
		}
		dto.Figures[i] = FigureDTO{
			Kind:   s.Kind().String(),
			Params: s.Params(),
			Points: pts,
			Center: pointDTO(st.Center),
			Size:   st.Size,
			Angle:  st.Angle,

			Tolerance: st.Tolerance,
		}
	}
	return dto
}

// Validate checks the snapshot can be rebuilt; failures wrap core.ErrCorrupt
func (dto ContainerDTO) Validate() error {
	if dto.Version != FormatVersion {
		return fmt.Errorf("format version %d: %w", dto.Version, core.ErrCorrupt)
	}
	if dto.Width <= 0 || dto.Height <= 0 {
		return fmt.Errorf("container extent %dx%d: %w", dto.Width, dto.Height, core.ErrCorrupt)
	}
	for i, f := range dto.Figures {
		kind, err := shape.ParseKind(f.Kind)
		if err != nil {
			return fmt.Errorf("figure %d: %w: %w", i, err, core.ErrCorrupt)
		}
		if len(f.Params) != kind.Arity() {
			return fmt.Errorf("figure %d: %s with %d params: %w", i, kind, len(f.Params), core.ErrCorrupt)
		}
		if f.Tolerance < 0 {
			return fmt.Errorf("figure %d: tolerance %v: %w", i, f.Tolerance, core.ErrCorrupt)
		}
	}
	return nil
}

// shapes rebuilds unattached figures; transient state is returned alongside for shape.Restore
func (dto ContainerDTO) shapes() ([]shape.Shape, []shape.State, error) {
	figs := make([]shape.Shape, len(dto.Figures))
	states := make([]shape.State, len(dto.Figures))
	for i, f := range dto.Figures {
		s, err := shape.NewNamed(f.Kind, f.Params...)
		if err != nil {
			return nil, nil, fmt.Errorf("figure %d: %w: %w", i, err, core.ErrCorrupt)
		}
		pts := make([]core.Point, len(f.Points))
		for j, p := range f.Points {
			pts[j] = core.Point{X: p[0], Y: p[1]}
		}
		figs[i] = s
		states[i] = shape.State{
			Points:    pts,
			Center:    f.Center.point(),
			Size:      f.Size,
			Angle:     f.Angle,
			Tolerance: f.Tolerance,
		}
	}
	return figs, states, nil
}

func pointDTO(p core.Point) PointDTO {
	return PointDTO{X: p.X, Y: p.Y}
}

func (p PointDTO) point() core.Point {
	return core.Point{X: p.X, Y: p.Y}
}
