package field

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/iburimskiy/drift/internal/geom"
)

// Surface is the drawing target of the field.
type Surface interface {
	Size() (width, height int)
	Clear()
	FillCircle(x, y, radius float64, c color.NRGBA)
}

// Bounds are the surface dimensions in pixels.
type Bounds struct {
	W, H int
}

func (b Bounds) Area() int { return b.W * b.H }

// Particle is one drifting dot.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  color.NRGBA
}

func (p *Particle) Pos() geom.Point { return geom.Point{X: p.X, Y: p.Y} }

// Update advances p by one frame: move, wrap, pointer repulsion, damping
// and jitter, in that order.
func (p *Particle) Update(b Bounds, pointer geom.Point, prm *Params, rng *rand.Rand) {
	p.X = wrap(p.X+p.VX, float64(b.W))
	p.Y = wrap(p.Y+p.VY, float64(b.H))

	away := p.Pos().Sub(pointer)
	if force := RepulsionForce(away.Len(), prm.RepelRadius); force > 0 {
		dir := away.Dir()
		p.VX += dir.X * force * prm.RepelStrength
		p.VY += dir.Y * force * prm.RepelStrength
	}

	p.VX *= prm.Damping
	p.VY *= prm.Damping

	p.VX += (rng.Float64() - 0.5) * prm.Jitter
	p.VY += (rng.Float64() - 0.5) * prm.Jitter
}

func (p *Particle) Draw(s Surface) {
	s.FillCircle(p.X, p.Y, p.Radius, p.Color)
}

// RepulsionForce is the normalized push at distance d from the pointer:
// 1 at contact, falling linearly to 0 at radius and beyond.
func RepulsionForce(d, radius float64) float64 {
	if d >= radius {
		return 0
	}
	return (radius - d) / radius
}

// wrap maps v into [0, max), carrying any overshoot to the opposite edge.
func wrap(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	if v >= 0 && v < max {
		return v
	}
	v = math.Mod(v, max)
	if v < 0 {
		v += max
	}
	// max + tiny negative rounds up to max
	if v >= max {
		v = 0
	}
	return v
}
