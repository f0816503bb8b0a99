// Command canvas-dump renders saved containers as plain text without a terminal.
//
// Usage:
//
//	canvas-dump [-save-dir dir] [-width 120] [-height 40] name...
//	canvas-dump -list
//
// Containers are loaded in argument order, so later names land on top when
// they share a depth.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/vi-canvas/canvas"
	"github.com/lixenwraith/vi-canvas/config"
	"github.com/lixenwraith/vi-canvas/persistence"
	"github.com/lixenwraith/vi-canvas/render"
)

func main() {
	cfgPath := flag.String("config", "", "TOML configuration file")
	saveDir := flag.String("save-dir", "", "Directory of saved containers")
	width := flag.Int("width", 120, "Output width in columns")
	height := flag.Int("height", 40, "Output height in rows")
	list := flag.Bool("list", false, "List saved containers and exit")
	info := flag.Bool("info", false, "Print a summary line per container after the drawing")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "canvas-dump: %v\n", err)
		os.Exit(1)
	}
	if *saveDir != "" {
		cfg.SaveDir = *saveDir
	}
	manager := persistence.NewManager(cfg.SaveDir)

	if *list {
		names, err := manager.List()
		if err != nil {
			fmt.Fprintf(os.Stderr, "canvas-dump: %v\n", err)
			os.Exit(1)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	if flag.NArg() == 0 || *width <= 0 || *height <= 0 {
		flag.Usage()
		os.Exit(2)
	}

	buf := render.NewBufferSurface(*width, *height)
	comp := canvas.NewCompositor(buf,
		canvas.WithGlyph(cfg.GlyphRune()),
		canvas.WithScaleStep(cfg.ScaleStep),
	)

	for _, name := range flag.Args() {
		if _, err := persistence.Load(manager, comp, name); err != nil {
			fmt.Fprintf(os.Stderr, "canvas-dump: %v\n", err)
			os.Exit(1)
		}
	}

	comp.RenderAll()
	fmt.Print(buf.String())

	if *info {
		for i, c := range comp.Containers() {
			fmt.Printf("%d: %s\n", i+1, c.Info())
		}
	}
}
