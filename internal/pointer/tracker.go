// Package pointer tracks the raw pointer position and the smoothed position
// the trailing indicator is drawn at.
package pointer

import "github.com/iburimskiy/drift/internal/geom"

const (
	Smoothing    = 0.15
	PressedScale = 0.8
)

// Offscreen is the raw position before the first move. It lies far enough
// outside any surface that no particle feels the pointer.
var Offscreen = geom.Point{X: -1000, Y: -1000}

// Tracker holds raw and smoothed pointer state.
type Tracker struct {
	raw       geom.Point
	smoothed  geom.Point
	pressed   bool
	smoothing float64
	scale     float64
}

// New returns a tracker with the raw position at Offscreen and the smoothed
// position at the surface origin.
func New(smoothing, pressedScale float64) *Tracker {
	return &Tracker{
		raw:       Offscreen,
		smoothing: smoothing,
		scale:     pressedScale,
	}
}

// Move records a pointer-move event.
func (t *Tracker) Move(p geom.Point) { t.raw = p }

// Advance moves the smoothed position a fixed fraction of the way toward
// the raw position and returns it. Called once per frame.
func (t *Tracker) Advance() geom.Point {
	t.smoothed = t.smoothed.Add(t.raw.Sub(t.smoothed).Scale(t.smoothing))
	return t.smoothed
}

func (t *Tracker) Press() { t.pressed = true }
func (t *Tracker) Release() { t.pressed = false }

func (t *Tracker) Pressed() bool { return t.pressed }

// Scale is the cosmetic scale of the trailing indicator.
func (t *Tracker) Scale() float64 {
	if t.pressed {
		return t.scale
	}
	return 1
}

func (t *Tracker) Raw() geom.Point { return t.raw }
func (t *Tracker) Smoothed() geom.Point { return t.smoothed }
