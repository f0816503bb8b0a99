// Package canvas groups figures into rectangular containers and composites
// overlapping containers onto a character surface.
//
// There is no depth buffer. RenderAll draws layers in ascending depth and,
// after drawing a container, blanks every cell it wrote that falls inside the
// rectangle of any container on a higher layer. Higher layers then draw over
// the blanked area. The occlusion scan is a plain point-in-rectangle test of
// every visible cell against every higher rectangle, quadratic in scene size;
// it is intended for the handful of containers that fit on a terminal.
package canvas

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/vi-canvas/core"
	"github.com/lixenwraith/vi-canvas/render"
	"github.com/lixenwraith/vi-canvas/shape"
	"github.com/lixenwraith/vi-canvas/typeid"
)

// Defaults for new containers
const (
	DefaultWidth     = 30
	DefaultHeight    = 15
	DefaultScaleStep = 5
)

// ErrAlreadyTracked is returned by Track for a container that is already registered
var ErrAlreadyTracked = fmt.Errorf("container already tracked: %w", core.ErrInvalidState)

// Compositor owns the live containers and their depth buckets
// Not safe for concurrent use
type Compositor struct {
	surface render.Surface
	glyph   rune
	step    int
	width   int
	height  int

	containers []*Container
	byID       map[string]*Container
	layers     map[int][]*Container
}

// Option configures a Compositor
type Option func(*Compositor)

// WithGlyph sets the ink glyph
func WithGlyph(ch rune) Option {
	return func(co *Compositor) { co.glyph = ch }
}

// WithScaleStep sets the container SizeUp/SizeDown step
func WithScaleStep(step int) Option {
	return func(co *Compositor) {
		if step > 0 {
			co.step = step
		}
	}
}

// WithDefaultSize sets the extents of containers created without WithSize
func WithDefaultSize(width, height int) Option {
	return func(co *Compositor) {
		if width > 0 && height > 0 {
			co.width, co.height = width, height
		}
	}
}

// NewCompositor creates an empty compositor drawing on surface
func NewCompositor(surface render.Surface, opts ...Option) *Compositor {
	co := &Compositor{
		surface: surface,
		glyph:   render.GlyphInk,
		step:    DefaultScaleStep,
		width:   DefaultWidth,
		height:  DefaultHeight,
		byID:    make(map[string]*Container),
		layers:  make(map[int][]*Container),
	}
	for _, opt := range opts {
		opt(co)
	}
	return co
}

func (co *Compositor) Surface() render.Surface { return co.surface }
func (co *Compositor) Glyph() rune { return co.glyph }
func (co *Compositor) Len() int { return len(co.containers) }

// ContainerOption configures a container created by NewContainer
type ContainerOption func(*Container)

// WithSize sets the container extents
func WithSize(width, height int) ContainerOption {
	return func(c *Container) { c.width, c.height = width, height }
}

// WithDepth sets the container layer
func WithDepth(depth int) ContainerOption {
	return func(c *Container) { c.depth = depth }
}

// NewContainer creates, builds and tracks a container anchored at its top-left corner
func (co *Compositor) NewContainer(anchor core.Point, opts ...ContainerOption) *Container {
	c := &Container{
		id:     typeid.NewContainerID(),
		anchor: anchor,
		width:  co.width,
		height: co.height,
		comp:   co,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Build()
	co.insert(c)
	return c
}

// Track registers containers; the batch is rejected whole if any is already tracked
func (co *Compositor) Track(cs ...*Container) error {
	for _, c := range cs {
		if co.Tracked(c) {
			return fmt.Errorf("track %s: %w", c.id, ErrAlreadyTracked)
		}
		if c.comp != co {
			return fmt.Errorf("track %s: belongs to another compositor: %w", c.id, core.ErrInvalidState)
		}
	}
	for _, c := range cs {
		if !co.Tracked(c) {
			co.insert(c)
		}
	}
	return nil
}

func (co *Compositor) insert(c *Container) {
	co.containers = append(co.containers, c)
	co.byID[c.id] = c
	co.layers[c.depth] = append(co.layers[c.depth], c)
}

// Untrack deregisters containers; untracked ones are ignored
func (co *Compositor) Untrack(cs ...*Container) {
	for _, c := range cs {
		if !co.Tracked(c) {
			continue
		}
		co.containers = slices.DeleteFunc(co.containers, func(x *Container) bool { return x == c })
		delete(co.byID, c.id)
		co.removeFromLayer(c)
	}
}

func (co *Compositor) removeFromLayer(c *Container) {
	bucket := slices.DeleteFunc(co.layers[c.depth], func(x *Container) bool { return x == c })
	if len(bucket) == 0 {
		delete(co.layers, c.depth)
		return
	}
	co.layers[c.depth] = bucket
}

// Relocate moves c to another depth bucket
// This is the only place a tracked container changes depth
func (co *Compositor) Relocate(c *Container, depth int) {
	if !co.Tracked(c) {
		c.depth = depth
		return
	}
	if c.depth == depth {
		return
	}
	co.removeFromLayer(c)
	c.depth = depth
	co.layers[depth] = append(co.layers[depth], c)
}

// Tracked reports whether c is registered
func (co *Compositor) Tracked(c *Container) bool {
	return c != nil && co.byID[c.id] == c
}

// Container selects a tracked container by creation order
func (co *Compositor) Container(i int) (*Container, error) {
	if i < 0 || i >= len(co.containers) {
		return nil, fmt.Errorf("container %d of %d: %w", i+1, len(co.containers), core.ErrInvalidState)
	}
	return co.containers[i], nil
}

// Lookup resolves a container id, the back-reference figures hold to their owner
func (co *Compositor) Lookup(id string) (*Container, bool) {
	c, ok := co.byID[id]
	return c, ok
}

// Containers returns a copy of the tracked containers in creation order
func (co *Compositor) Containers() []*Container {
	return slices.Clone(co.containers)
}

// Layer returns a copy of the containers at depth in draw order
func (co *Compositor) Layer(depth int) []*Container {
	return slices.Clone(co.layers[depth])
}

// Depths returns the occupied depths in ascending order
func (co *Compositor) Depths() []int {
	depths := make([]int, 0, len(co.layers))
	for d := range co.layers {
		depths = append(depths, d)
	}
	slices.Sort(depths)
	return depths
}

// Dispose deregisters c and erases it from the surface
func (co *Compositor) Dispose(c *Container) {
	co.Untrack(c)
	c.Clear()
}

// Merge moves every figure of src to the end of dst, keeping their local cells,
// then erases and deregisters src
func (co *Compositor) Merge(dst, src *Container) error {
	if dst == src {
		return fmt.Errorf("merge %s into itself: %w", dst.id, core.ErrInvalidState)
	}
	if !co.Tracked(dst) || !co.Tracked(src) {
		return fmt.Errorf("merge %s into %s: not tracked: %w", src.id, dst.id, core.ErrInvalidState)
	}

	src.Clear()
	co.Untrack(src)
	for _, s := range src.figures {
		s.SetOwner(dst.id)
		dst.figures = append(dst.figures, s)
	}
	src.figures = nil
	return nil
}

// DrawShape draws a single figure inside its owning container
func (co *Compositor) DrawShape(s shape.Shape) error {
	owner := s.OwnerID()
	if owner == "" {
		return fmt.Errorf("draw %s %s: detached: %w", s.Kind(), s.ID(), core.ErrInvalidState)
	}
	if err := typeid.Validate(owner, typeid.PrefixContainer); err != nil {
		return fmt.Errorf("draw %s %s: %w: %w", s.Kind(), s.ID(), err, core.ErrInvalidState)
	}
	c, ok := co.Lookup(owner)
	if !ok {
		return fmt.Errorf("draw %s %s: owner %s not tracked: %w", s.Kind(), s.ID(), owner, core.ErrInvalidState)
	}
	c.drawFigure(s)
	return nil
}

// RenderAll redraws every container bottom layer first, blanking cells hidden by higher layers
func (co *Compositor) RenderAll() {
	depths := co.Depths()
	for i, d := range depths {
		var above []core.Rect
		for _, k := range depths[i+1:] {
			for _, c := range co.layers[k] {
				above = append(above, c.Rect())
			}
		}

		for _, c := range co.layers[d] {
			hidden := occluded(c.Visible(), above)
			c.Clear()
			c.Draw()
			render.PlotAll(co.surface, hidden, render.GlyphBlank)
		}
	}
}

// occluded returns the cells of pts that fall inside any of rects
func occluded(pts []core.Point, rects []core.Rect) []core.Point {
	if len(rects) == 0 {
		return nil
	}
	var hidden []core.Point
	for _, p := range pts {
		for _, r := range rects {
			if r.Contains(p) {
				hidden = append(hidden, p)
				break
			}
		}
	}
	return hidden
}
