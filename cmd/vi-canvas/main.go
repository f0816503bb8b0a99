package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/lixenwraith/vi-canvas/audio"
	"github.com/lixenwraith/vi-canvas/canvas"
	"github.com/lixenwraith/vi-canvas/config"
	"github.com/lixenwraith/vi-canvas/core"
	"github.com/lixenwraith/vi-canvas/editor"
	"github.com/lixenwraith/vi-canvas/logging"
	"github.com/lixenwraith/vi-canvas/persistence"
	"github.com/lixenwraith/vi-canvas/render"
	"github.com/lixenwraith/vi-canvas/status"
)

// shutdownTimeout bounds the wait for in-flight saves on exit
const shutdownTimeout = 5 * time.Second

var (
	configFlag  = flag.String("config", "", "TOML configuration file")
	saveDirFlag = flag.String("save-dir", "", "Directory for saved containers")
	logFlag     = flag.String("log", "", "Log file, empty disables logging")
	levelFlag   = flag.String("log-level", "", "Log level: debug, info, warn, error")
	glyphFlag   = flag.String("glyph", "", "Character figures are drawn with")
	noBellFlag  = flag.Bool("no-bell", false, "Disable the error bell")
)

func main() {
	// Panic Recovery: restore the terminal even if the editor crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-canvas: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog.Close()

	bell, err := audio.NewBell(cfg.Bell, cfg.BellVolume)
	if err != nil {
		// Non-fatal, the editor runs silently
		logging.Logger().Warn("audio unavailable", "error", err)
	}
	defer bell.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}
	core.SetCrashReset(screen.Fini)
	defer screen.Fini()

	reg := status.NewRegistry()
	manager := persistence.NewManager(cfg.SaveDir)
	saver := persistence.NewSaver(manager, reg, cfg.SaveWorkers)
	loader := persistence.NewLoader(manager, reg)

	surface := render.NewScreenSurface(screen, tcell.StyleDefault)
	comp := canvas.NewCompositor(surface,
		canvas.WithGlyph(cfg.GlyphRune()),
		canvas.WithScaleStep(cfg.ScaleStep),
		canvas.WithDefaultSize(cfg.DefaultWidth, cfg.DefaultHeight),
	)
	ed := editor.New(comp, cfg,
		editor.WithSaver(saver),
		editor.WithLoader(loader),
		editor.WithBell(bell),
		editor.WithRegistry(reg),
	)

	ctx, stop := signal.NotifyContext(context.Background(), unix.SIGINT, unix.SIGTERM, unix.SIGHUP)
	defer stop()

	logging.Logger().Info("editor started", "save_dir", cfg.SaveDir)
	runErr := ed.Run(ctx, screen)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := saver.Close(shutdownCtx); err != nil {
		logging.Logger().Error("pending saves abandoned", "error", err)
	}
	return runErr
}

// loadConfig layers command-line flags over the file and environment settings
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "save-dir":
			cfg.SaveDir = *saveDirFlag
		case "log":
			cfg.LogFile = *logFlag
		case "log-level":
			cfg.LogLevel = *levelFlag
		case "glyph":
			cfg.Glyph = *glyphFlag
		case "no-bell":
			cfg.Bell = !*noBellFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setupLogging points the process logger at the configured file
func setupLogging(cfg *config.Config) (io.Closer, error) {
	if cfg.LogFile == "" {
		return nopCloser{}, nil
	}
	logger, closer, err := logging.Open(cfg.LogFile, cfg.Level())
	if err != nil {
		return nil, err
	}
	logging.SetLogger(logger)
	return closer, nil
}
