package editor

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/vi-canvas/render"
	"github.com/lixenwraith/vi-canvas/shape"
)

// Render draws the scene and the status line, or the info overlay while it is open
func (e *Editor) Render() {
	if e.dirty {
		blank(e.surface)
		e.dirty = false
	}
	if e.overlay {
		e.drawOverlay()
		return
	}
	e.comp.RenderAll()
	e.drawStatus()
}

// StatusLine returns the text of the bottom row
func (e *Editor) StatusLine() string {
	var left string
	if label, text, ok := e.machine.Prompt(); ok {
		left = label + text
	} else if pending := e.machine.Pending(); pending != "" {
		left = pending
	} else {
		left = e.message
	}
	return left + " | " + e.selection()
}

// selection summarizes the current container and figure
func (e *Editor) selection() string {
	if e.current == nil {
		return fmt.Sprintf("%d containers", e.comp.Len())
	}
	idx := -1
	for i, c := range e.comp.Containers() {
		if c == e.current {
			idx = i
			break
		}
	}
	s := fmt.Sprintf("container %d/%d depth %d", idx+1, e.comp.Len(), e.current.Depth())
	if e.figure != nil {
		s += fmt.Sprintf(" | figure %d/%d %s", e.current.IndexOf(e.figure)+1, e.current.Len(), e.figure.Kind())
	}
	return s
}

func (e *Editor) drawStatus() {
	_, h := e.surface.Size()
	render.WriteText(e.surface, 0, h-1, e.StatusLine(), true)
}

// InfoLines returns the overlay text: every container with its figures, then the save counters
func (e *Editor) InfoLines() []string {
	var lines []string
	containers := e.comp.Containers()
	lines = append(lines, fmt.Sprintf("%d containers", len(containers)))
	for i, c := range containers {
		mark := " "
		if c == e.current {
			mark = ">"
		}
		lines = append(lines, fmt.Sprintf("%s F%d %s", mark, i+1, c.Info()))
		for j, f := range c.Figures() {
			mark = " "
			if f == e.figure {
				mark = ">"
			}
			lines = append(lines, fmt.Sprintf("    %s %d. %s", mark, j+1, shape.Info(f)))
		}
	}
	if e.reg != nil {
		if snap := e.reg.Snapshot(); len(snap) > 0 {
			lines = append(lines, "")
			lines = append(lines, snap...)
		}
	}
	lines = append(lines, "", "press any key")
	return lines
}

func (e *Editor) drawOverlay() {
	for y, line := range e.InfoLines() {
		render.WriteText(e.surface, 0, y, strings.TrimRight(line, " "), true)
	}
}

// blank clears every cell of s
func blank(s render.Surface) {
	_, h := s.Size()
	for y := 0; y < h; y++ {
		render.WriteText(s, 0, y, "", true)
	}
}
