package persistence

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/vi-canvas/canvas"
	"github.com/lixenwraith/vi-canvas/logging"
	"github.com/lixenwraith/vi-canvas/status"
)

// DefaultSaveWorkers bounds concurrent background saves
const DefaultSaveWorkers = 2

var (
	// ErrSaverClosed is returned by Save after Close
	ErrSaverClosed = errors.New("saver closed")

	// ErrSaveBusy is returned by Save when every worker is busy; the save is dropped
	ErrSaveBusy = errors.New("save queue full")
)

// Saver writes snapshots in the background so the render loop never waits on disk
// Failures are logged and counted in the status registry, never returned to the caller
type Saver struct {
	manager *Manager
	group   errgroup.Group
	reg     *status.Registry
	closed  atomic.Bool
}

// NewSaver creates a saver running at most workers saves at once
func NewSaver(manager *Manager, reg *status.Registry, workers int) *Saver {
	if workers <= 0 {
		workers = DefaultSaveWorkers
	}
	s := &Saver{manager: manager, reg: reg}
	s.group.SetLimit(workers)
	return s
}

// Save snapshots c on the calling goroutine and writes it asynchronously
// The returned error only reports whether the save was scheduled
func (s *Saver) Save(c *canvas.Container, name string) error {
	if s.closed.Load() {
		return ErrSaverClosed
	}
	if _, err := s.manager.FilePath(name); err != nil {
		return err
	}

	dto := FromContainer(c, name)
	scheduled := s.group.TryGo(func() error {
		s.write(name, dto)
		return nil
	})
	if !scheduled {
		s.reg.Inc(status.SaveDropped)
		logging.Logger().Warn("save dropped", "name", name, "reason", ErrSaveBusy)
		return fmt.Errorf("save %s: %w", name, ErrSaveBusy)
	}
	s.reg.Inc(status.SaveQueued)
	return nil
}

func (s *Saver) write(name string, dto ContainerDTO) {
	start := time.Now()
	err := s.manager.Save(name, dto)
	elapsed := time.Since(start)

	if err != nil {
		s.reg.Inc(status.SaveFailed)
		s.reg.SetText(status.SaveLastError, err.Error())
		logging.Logger().Error("save failed", "name", name, "error", err)
		return
	}
	s.reg.Inc(status.SaveOK)
	s.reg.SetText(status.SaveLastFile, name)
	s.reg.SetFloat(status.SaveLastMs, float64(elapsed.Microseconds())/1000)
	logging.Logger().Info("saved", "name", name, "figures", len(dto.Figures), "elapsed", elapsed)
}

// Close rejects further saves and waits for in-flight ones until ctx is done
func (s *Saver) Close(ctx context.Context) error {
	s.closed.Store(true)

	done := make(chan struct{})
	go func() {
		s.group.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		logging.Logger().Warn("saves still in flight at shutdown", "error", ctx.Err())
		return ctx.Err()
	}
}
