package game

import (
	"fmt"
	"image/color"
	"log/slog"
	"math/rand"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/drift/internal/audio"
	"github.com/iburimskiy/drift/internal/config"
	"github.com/iburimskiy/drift/internal/geom"
	"github.com/iburimskiy/drift/internal/scene"
)

var background = color.RGBA{R: 5, G: 6, B: 10, A: 255}

// Options are the command line overrides.
type Options struct {
	Seed  int64
	HUD   bool
	Sound bool
}

// Game adapts the scene loop to ebiten. Update polls input, Draw renders
// one frame.
type Game struct {
	cfg    *config.Config
	loop   *scene.Loop
	input  *scene.Input
	cursor *cursor
	logger *slog.Logger

	// audio
	soundOn    bool
	sampleRate beep.SampleRate

	hud   bool
	start time.Time
}

func New(cfg *config.Config, opts Options, logger *slog.Logger) (*Game, error) {
	g := &Game{
		cfg:    cfg,
		cursor: newCursor(cfg.Pointer),
		logger: logger,
		hud:    cfg.HUD.Enabled || opts.HUD,
		start:  time.Now(),
	}
	g.loop = scene.New(cfg, rand.New(rand.NewSource(opts.Seed)), g.cursor, logger)
	g.input = scene.NewInput(g.loop)

	if cfg.Audio.Enabled || opts.Sound {
		if err := g.initSpeaker(); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *Game) initSpeaker() error {
	sr := beep.SampleRate(g.cfg.Audio.SampleRate)
	bufferSize := sr.N(time.Second / 20)
	if err := speaker.Init(sr, bufferSize); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}
	g.sampleRate = sr
	g.soundOn = true
	g.logger.Info("speaker initialized", "sample_rate", int(sr), "buffer", bufferSize)
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud = !g.hud
	}

	x, y := ebiten.CursorPosition()
	pressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	g.input.Poll(geom.Point{X: float64(x), Y: float64(y)},
		pressed, inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft))
	if pressed {
		g.playTone()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.loop.Frame(&surface{img: screen, bg: background})
	g.cursor.draw(screen)

	if g.hud {
		g.drawHUD(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	st := g.loop.Field().Stats()
	b := g.loop.Bounds()
	msg := fmt.Sprintf("%dx%d  particles %d  fps %.0f  tps %.0f  up %s\nspeed mean %.3f  std %.3f  max %.3f",
		b.W, b.H, st.Count, ebiten.ActualFPS(), ebiten.ActualTPS(), formatDuration(time.Since(g.start)),
		st.MeanSpeed, st.StdSpeed, st.MaxSpeed)
	ebitenutil.DebugPrintAt(screen, msg, 12, 12)
}

func (g *Game) playTone() {
	if !g.soundOn {
		return
	}
	a := g.cfg.Audio
	n := g.sampleRate.N(time.Duration(a.DurationMS) * time.Millisecond)
	speaker.Play(audio.Tone(g.sampleRate, a.Frequency, n, a.Volume))
}

// Layout follows the window size so the surface tracks resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Close stops any playing tone and logs the run summary.
func (g *Game) Close() {
	if g.soundOn {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
	}
	g.loop.Close(formatDuration(time.Since(g.start)))
}
