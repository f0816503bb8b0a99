// Package persistence stores containers as TOML snapshots and rebuilds them.
//
// A snapshot keeps each figure's constructor parameters together with its
// current cells, center, size and angle, so a loaded figure looks exactly as
// it did when saved even after rotations that Build would not reproduce.
package persistence

import (
	"fmt"

	"github.com/lixenwraith/vi-canvas/canvas"
	"github.com/lixenwraith/vi-canvas/core"
	"github.com/lixenwraith/vi-canvas/logging"
	"github.com/lixenwraith/vi-canvas/shape"
	"github.com/lixenwraith/vi-canvas/status"
)

// Load reads the snapshot stored under name and registers a rebuilt container with comp
// Errors wrap core.ErrNotFound or core.ErrCorrupt; nothing is registered on failure
func Load(m *Manager, comp *canvas.Compositor, name string) (*canvas.Container, error) {
	dto, err := m.Load(name)
	if err != nil {
		return nil, err
	}
	return Restore(comp, dto)
}

// Restore registers a container rebuilt from dto with comp
func Restore(comp *canvas.Compositor, dto ContainerDTO) (*canvas.Container, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	figs, states, err := dto.shapes()
	if err != nil {
		return nil, err
	}

	c := comp.NewContainer(dto.Anchor.point(),
		canvas.WithSize(dto.Width, dto.Height),
		canvas.WithDepth(dto.Depth))
	if err := c.AddFigures(figs...); err != nil {
		comp.Untrack(c)
		return nil, fmt.Errorf("attach figures: %w", err)
	}
	for i, s := range figs {
		if err := shape.Restore(s, states[i]); err != nil {
			comp.Untrack(c)
			return nil, fmt.Errorf("figure %d: %w: %w", i, err, core.ErrCorrupt)
		}
	}
	return c, nil
}

// Loader loads snapshots and records the outcome in a status registry
type Loader struct {
	manager *Manager
	reg     *status.Registry
}

func NewLoader(manager *Manager, reg *status.Registry) *Loader {
	return &Loader{manager: manager, reg: reg}
}

// Load is the package Load with logging and counters
func (l *Loader) Load(comp *canvas.Compositor, name string) (*canvas.Container, error) {
	c, err := Load(l.manager, comp, name)
	if err != nil {
		l.reg.Inc(status.LoadFailed)
		logging.Logger().Warn("load failed", "name", name, "error", err)
		return nil, err
	}
	l.reg.Inc(status.LoadOK)
	logging.Logger().Info("loaded", "name", name, "container", c.ID(), "figures", c.Len())
	return c, nil
}
