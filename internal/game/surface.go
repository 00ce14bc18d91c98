package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/drift/internal/config"
	"github.com/iburimskiy/drift/internal/geom"
)

// surface draws particles onto the ebiten screen.
type surface struct {
	img *ebiten.Image
	bg  color.Color
}

func (s *surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *surface) Clear() { s.img.Fill(s.bg) }

func (s *surface) FillCircle(x, y, radius float64, c color.NRGBA) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(radius), c, true)
}

// cursor is the pointer indicator: a dot at the raw pointer and a ring that
// trails it.
type cursor struct {
	cfg config.PointerConfig

	dot     geom.Point
	outline geom.Point
	scale   float64
	visible bool
}

func newCursor(cfg config.PointerConfig) *cursor {
	return &cursor{cfg: cfg, scale: 1}
}

func (c *cursor) Dot(p geom.Point) {
	c.dot = p
	c.visible = true
}

func (c *cursor) Outline(p geom.Point, scale float64) {
	c.outline = p
	c.scale = scale
}

func (c *cursor) draw(screen *ebiten.Image) {
	if !c.visible {
		return
	}
	ring := color.RGBA{R: 255, G: 255, B: 255, A: 128}
	vector.StrokeCircle(screen, float32(c.outline.X), float32(c.outline.Y),
		float32(c.cfg.OutlineRadius*c.scale), float32(c.cfg.OutlineWidth), ring, true)
	vector.DrawFilledCircle(screen, float32(c.dot.X), float32(c.dot.Y),
		float32(c.cfg.DotRadius), color.White, true)
}
