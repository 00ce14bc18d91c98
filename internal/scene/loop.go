// Package scene drives the particle field and pointer tracker frame by
// frame against an abstract drawing surface.
package scene

import (
	"log/slog"
	"math/rand"

	"github.com/iburimskiy/drift/internal/config"
	"github.com/iburimskiy/drift/internal/field"
	"github.com/iburimskiy/drift/internal/geom"
	"github.com/iburimskiy/drift/internal/pointer"
)

// Indicator receives pointer indicator positions. The dot follows the raw
// pointer, the outline trails it.
type Indicator interface {
	Dot(p geom.Point)
	Outline(p geom.Point, scale float64)
}

// Loop is the simulation context: field, pointer state and current surface
// bounds. All methods must be called from the same goroutine.
type Loop struct {
	cfg       *config.Config
	field     *field.Field
	tracker   *pointer.Tracker
	indicator Indicator
	logger    *slog.Logger

	bounds field.Bounds
	seeded bool
	frames uint64
}

func New(cfg *config.Config, rng *rand.Rand, indicator Indicator, logger *slog.Logger) *Loop {
	return &Loop{
		cfg:       cfg,
		field:     field.New(cfg.FieldParams(), rng),
		tracker:   pointer.New(cfg.Pointer.Smoothing, cfg.Pointer.PressedScale),
		indicator: indicator,
		logger:    logger,
	}
}

// Frame runs one display refresh: reseed on resize, clear, update and draw
// every particle, then advance the trailing indicator.
func (l *Loop) Frame(s field.Surface) {
	w, h := s.Size()
	if b := (field.Bounds{W: w, H: h}); !l.seeded || b != l.bounds {
		l.reseed(b)
	}

	s.Clear()
	l.field.Tick(s, l.tracker.Raw())
	l.indicator.Outline(l.tracker.Advance(), l.tracker.Scale())
	l.frames++
}

func (l *Loop) reseed(b field.Bounds) {
	prev := l.bounds
	l.bounds = b
	n := l.field.Seed(b)
	if !l.seeded {
		l.logger.Info("field seeded", "width", b.W, "height", b.H, "particles", n)
	} else {
		l.logger.Info("field reseeded after resize",
			"old_width", prev.W, "old_height", prev.H,
			"width", b.W, "height", b.H,
			"particles", n,
		)
	}
	l.seeded = true
}

// PointerMoved records a pointer-move event.
func (l *Loop) PointerMoved(p geom.Point) {
	l.tracker.Move(p)
	l.indicator.Dot(p)
}

// PointerPressed shrinks the outline and pushes nearby particles away from
// the pointer.
func (l *Loop) PointerPressed() {
	l.tracker.Press()
	origin := l.tracker.Raw()
	hit := l.field.Impulse(origin, l.cfg.Impulse.Radius, l.cfg.Impulse.Strength)
	l.indicator.Outline(l.tracker.Smoothed(), l.tracker.Scale())
	l.logger.Debug("impulse", "x", origin.X, "y", origin.Y, "particles", hit)
}

func (l *Loop) PointerReleased() {
	l.tracker.Release()
	l.indicator.Outline(l.tracker.Smoothed(), l.tracker.Scale())
}

// Close logs the run summary. The loop must not be used afterwards.
func (l *Loop) Close(uptime string) {
	l.logger.Info("stopped", "frames", l.frames, "uptime", uptime, "particles", l.field.Len())
}

func (l *Loop) Field() *field.Field { return l.field }
func (l *Loop) Tracker() *pointer.Tracker { return l.tracker }
func (l *Loop) Bounds() field.Bounds { return l.bounds }
func (l *Loop) Frames() uint64 { return l.frames }
