package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/drift/internal/config"
	"github.com/iburimskiy/drift/internal/game"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config overlay (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	hud := flag.Bool("hud", false, "Show the debug overlay (toggle with H)")
	sound := flag.Bool("sound", false, "Play a tone on press")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level %q\n", *logLevel)
		os.Exit(2)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(*configPath, *seed, *hud, *sound, logger); err != nil {
		fail(err)
	}
}

func run(configPath string, seed int64, hud, sound bool, logger *slog.Logger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g, err := game.New(cfg, game.Options{Seed: seed, HUD: hud, Sound: sound}, logger)
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.Pointer.HideCursor {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
	// one update per displayed frame
	ebiten.SetTPS(ebiten.SyncWithFPS)

	logger.Info("starting", "seed", seed, "width", cfg.Window.Width, "height", cfg.Window.Height, "config", configPath)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// fail reports a startup or runtime failure in the log and in a dialog,
// since the window may never have appeared.
func fail(err error) {
	slog.Error("drift failed", "error", err)
	if derr := zenity.Error(err.Error(), zenity.Title("Drift")); derr != nil {
		slog.Warn("could not show error dialog", "error", derr)
	}
	os.Exit(1)
}
