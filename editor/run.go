package editor

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-canvas/core"
	"github.com/lixenwraith/vi-canvas/input"
	"github.com/lixenwraith/vi-canvas/logging"
)

// eventQueueSize bounds the events buffered between the poller and the loop
const eventQueueSize = 100

// HandleEvent feeds one terminal event through the key machine and applies the result
// Returns true when the user asked to quit
func (e *Editor) HandleEvent(ev tcell.Event) bool {
	in := e.machine.Process(ev)
	if in == nil {
		return false
	}
	if in.Type == input.IntentQuit {
		return true
	}
	if in.Type != input.IntentTextChar && in.Type != input.IntentTextBackspace {
		e.message = ""
	}
	if err := e.Apply(in); err != nil {
		e.report(in, err)
	}
	return false
}

// Run drives the editor until the user quits or ctx is cancelled
// The screen must be initialized; Run does not call Fini
func (e *Editor) Run(ctx context.Context, screen tcell.Screen) error {
	events := make(chan tcell.Event, eventQueueSize)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	e.Render()
	screen.Show()

	for {
		select {
		case <-ctx.Done():
			logging.Logger().Info("editor stopped", "reason", context.Cause(ctx))
			return nil

		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			if e.HandleEvent(ev) {
				logging.Logger().Info("editor quit")
				return nil
			}
			e.Render()
			screen.Show()
		}
	}
}
