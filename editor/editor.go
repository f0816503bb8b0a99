// Package editor applies parsed key commands to a compositor.
//
// The editor keeps a current container and a current figure, the targets of
// every move, rotate and scale. Failures never stop the editor: they are shown
// on the status line, logged and signalled with the bell.
package editor

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/vi-canvas/canvas"
	"github.com/lixenwraith/vi-canvas/config"
	"github.com/lixenwraith/vi-canvas/core"
	"github.com/lixenwraith/vi-canvas/input"
	"github.com/lixenwraith/vi-canvas/logging"
	"github.com/lixenwraith/vi-canvas/render"
	"github.com/lixenwraith/vi-canvas/shape"
	"github.com/lixenwraith/vi-canvas/status"
)

// ErrUserInput marks a command that cannot apply to the current selection
var ErrUserInput = errors.New("user input")

var (
	errNoContainer = fmt.Errorf("no container selected: %w", ErrUserInput)
	errNoFigure    = fmt.Errorf("no figure selected: %w", ErrUserInput)
	errNoName      = fmt.Errorf("empty file name: %w", ErrUserInput)
	errNoStore     = fmt.Errorf("no save directory configured: %w", ErrUserInput)
)

// newContainerColumns is the width of a new container in columns of the 12-column grid
const newContainerColumns = 4

// defaultParams are the parameters of figures created with n f
var defaultParams = map[shape.Kind][]int{
	shape.KindCircle:       {5},
	shape.KindFilledCircle: {5},
	shape.KindEllipse:      {10, 3},
	shape.KindLine:         {1, 1, 5, 5},
	shape.KindConus:        {7, 10},
	shape.KindPartialConus: {7, 4, 5},
	shape.KindDot:          {2, 2},
}

// Saver queues a container snapshot for writing
type Saver interface {
	Save(c *canvas.Container, name string) error
}

// Loader restores a saved container into a compositor
type Loader interface {
	Load(comp *canvas.Compositor, name string) (*canvas.Container, error)
}

// Bell signals an error audibly
type Bell interface {
	Ring()
}

// Editor owns the selection and dispatches intents
// Not safe for concurrent use: everything runs on the event loop goroutine
type Editor struct {
	comp    *canvas.Compositor
	surface render.Surface
	machine *input.Machine
	cfg     *config.Config

	saver  Saver
	loader Loader
	bell   Bell
	reg    *status.Registry

	current *canvas.Container
	figure  shape.Shape

	message string
	overlay bool
	dirty   bool
	spawned int
}

// Option configures an Editor
type Option func(*Editor)

func WithSaver(s Saver) Option { return func(e *Editor) { e.saver = s } }
func WithLoader(l Loader) Option { return func(e *Editor) { e.loader = l } }
func WithBell(b Bell) Option { return func(e *Editor) { e.bell = b } }
func WithRegistry(r *status.Registry) Option { return func(e *Editor) { e.reg = r } }

// New creates an editor over comp; a nil cfg uses config.Default
func New(comp *canvas.Compositor, cfg *config.Config, opts ...Option) *Editor {
	if cfg == nil {
		cfg = config.Default()
	}
	e := &Editor{
		comp:    comp,
		surface: comp.Surface(),
		machine: input.NewMachine(),
		cfg:     cfg,
		dirty:   true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Editor) Current() *canvas.Container { return e.current }
func (e *Editor) Figure() shape.Shape { return e.figure }
func (e *Editor) Message() string { return e.message }
func (e *Editor) Overlay() bool { return e.overlay }
func (e *Editor) Machine() *input.Machine { return e.machine }

// Apply executes one intent against the selection
func (e *Editor) Apply(in *input.Intent) error {
	switch in.Type {
	case input.IntentNone, input.IntentQuit,
		input.IntentTextChar, input.IntentTextBackspace,
		input.IntentSavePrompt, input.IntentLoadPrompt:
		return nil

	case input.IntentEscape, input.IntentTextCancel:
		e.message = ""
		return nil

	case input.IntentResize:
		e.dirty = true
		return nil

	case input.IntentInfo:
		e.overlay = true
		e.dirty = true
		return nil

	case input.IntentOverlayClose:
		e.overlay = false
		e.dirty = true
		return nil

	case input.IntentNewContainer:
		e.newContainer()
		return nil

	case input.IntentSelectContainer:
		c, err := e.comp.Container(in.Index)
		if err != nil {
			return err
		}
		e.current, e.figure = c, nil
		return nil

	case input.IntentLoad:
		return e.load(in.Text)
	}

	if e.current == nil {
		return errNoContainer
	}
	switch in.Type {
	case input.IntentMoveContainer:
		e.current.Move(in.DX*e.cfg.MoveStep, in.DY*e.cfg.MoveStep)
	case input.IntentContainerScaleUp:
		e.current.SizeUp()
	case input.IntentContainerScaleDown:
		return e.current.SizeDown()
	case input.IntentLayerUp:
		e.current.SetDepth(e.current.Depth() + 1)
	case input.IntentLayerDown:
		e.current.SetDepth(e.current.Depth() - 1)
	case input.IntentDisposeContainer:
		e.comp.Dispose(e.current)
		e.current, e.figure = nil, nil
	case input.IntentMerge:
		src, err := e.comp.Container(in.Index)
		if err != nil {
			return err
		}
		return e.comp.Merge(e.current, src)
	case input.IntentNewFigure:
		return e.newFigure(in.Kind)
	case input.IntentSelectFigure:
		f, err := e.current.Figure(in.Index)
		if err != nil {
			return err
		}
		e.figure = f
	case input.IntentSave:
		return e.save(in.Text)
	default:
		return e.applyFigure(in)
	}
	return nil
}

// applyFigure handles the commands that target the current figure
func (e *Editor) applyFigure(in *input.Intent) error {
	if e.figure == nil {
		return errNoFigure
	}
	switch in.Type {
	case input.IntentMoveFigure:
		return e.current.MoveFigure(e.figure, in.DX*e.cfg.MoveStep, in.DY*e.cfg.MoveStep)
	case input.IntentRotateFigure:
		return e.current.TurnFigure(e.figure, in.Turn*e.cfg.RotateStep)
	case input.IntentFigureScaleUp:
		return e.current.ScaleFigure(e.figure, true)
	case input.IntentFigureScaleDown:
		return e.current.ScaleFigure(e.figure, false)
	case input.IntentRemoveFigure:
		e.current.RemoveFigures(e.figure)
		e.figure = nil
		return nil
	}
	return fmt.Errorf("unhandled command %s: %w", in.Type, core.ErrInvalidState)
}

// newContainer creates a container a third of the screen wide, staggered so
// consecutive containers do not stack exactly
func (e *Editor) newContainer() {
	w, _ := e.surface.Size()
	width := canvas.WidthFromColumns(newContainerColumns, w)
	if width < 2*e.cfg.ScaleStep {
		width = e.cfg.DefaultWidth
	}
	n := e.spawned % 8
	e.spawned++

	anchor := core.Point{X: 2 + 4*n, Y: 1 + 2*n}
	c := e.comp.NewContainer(anchor, canvas.WithSize(width, e.cfg.DefaultHeight))
	e.current, e.figure = c, nil
	logging.Logger().Debug("container created", "id", c.ID(), "anchor", anchor.String(), "width", width)
}

func (e *Editor) newFigure(kind shape.Kind) error {
	s, err := shape.New(kind, defaultParams[kind]...)
	if err != nil {
		return err
	}
	switch f := s.(type) {
	case *shape.Circle:
		f.SetBand(e.cfg.BandWidth)
	case *shape.Ellipse:
		f.SetAccuracy(e.cfg.EllipseAccuracy)
	}
	if err := e.current.AddFigures(s); err != nil {
		return err
	}
	e.figure = s
	return nil
}

func (e *Editor) save(name string) error {
	if name == "" {
		return errNoName
	}
	if e.saver == nil {
		return errNoStore
	}
	if err := e.saver.Save(e.current, name); err != nil {
		return err
	}
	e.message = "saving " + name
	return nil
}

func (e *Editor) load(name string) error {
	if name == "" {
		return errNoName
	}
	if e.loader == nil {
		return errNoStore
	}
	c, err := e.loader.Load(e.comp, name)
	if err != nil {
		return err
	}
	e.current, e.figure = c, nil
	e.message = "loaded " + name
	return nil
}

// report shows err on the status line, logs it and rings the bell
func (e *Editor) report(in *input.Intent, err error) {
	e.message = err.Error()
	if errors.Is(err, ErrUserInput) {
		logging.Logger().Info("command refused", "command", in.Type.String(), "error", err)
	} else {
		logging.Logger().Warn("command failed", "command", in.Type.String(), "keys", in.Command, "error", err)
	}
	if e.bell != nil {
		e.bell.Ring()
	}
}
