// Package field simulates the drifting particle field: seeding by surface
// area, per-frame update and draw, and press impulses.
package field

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/iburimskiy/drift/internal/geom"
)

// Field owns the particle collection. Particles never interact with each
// other, only with the shared bounds and pointer position.
type Field struct {
	params    Params
	rng       *rand.Rand
	bounds    Bounds
	particles []Particle
}

func New(prm Params, rng *rand.Rand) *Field {
	return &Field{params: prm, rng: rng}
}

// Count returns the number of particles a surface of size b holds.
func Count(b Bounds, densityArea float64) int {
	if b.W <= 0 || b.H <= 0 || densityArea <= 0 {
		return 0
	}
	return int(math.Floor(float64(b.Area()) / densityArea))
}

// Seed discards all particles and fills the field for bounds b.
// It returns the new particle count.
func (f *Field) Seed(b Bounds) int {
	f.bounds = b
	n := Count(b, f.params.DensityArea)
	f.particles = make([]Particle, n)
	for i := range f.particles {
		f.particles[i] = f.spawn()
	}
	return n
}

func (f *Field) spawn() Particle {
	prm := &f.params
	r := f.rng
	p := Particle{
		X: r.Float64() * float64(f.bounds.W),
		Y: r.Float64() * float64(f.bounds.H),
	}
	p.Radius = prm.RadiusMin + r.Float64()*(prm.RadiusMax-prm.RadiusMin)
	alpha := prm.AlphaMin + r.Float64()*(prm.AlphaMax-prm.AlphaMin)
	p.Color = particleColor(prm, alpha)
	p.VX = (r.Float64() - 0.5) * 2 * prm.SpeedMax
	p.VY = (r.Float64() - 0.5) * 2 * prm.SpeedMax
	return p
}

// Tick updates and draws every particle.
func (f *Field) Tick(s Surface, pointer geom.Point) {
	for i := range f.particles {
		p := &f.particles[i]
		p.Update(f.bounds, pointer, &f.params, f.rng)
		p.Draw(s)
	}
}

// Impulse pushes every particle closer than radius to origin directly away
// from it with the given strength. It returns how many particles were hit.
func (f *Field) Impulse(origin geom.Point, radius, strength float64) int {
	hit := 0
	for i := range f.particles {
		p := &f.particles[i]
		away := p.Pos().Sub(origin)
		if away.Len() >= radius {
			continue
		}
		dir := away.Dir()
		p.VX += dir.X * strength
		p.VY += dir.Y * strength
		hit++
	}
	return hit
}

func (f *Field) Len() int { return len(f.particles) }

func (f *Field) Bounds() Bounds { return f.bounds }

// Particles returns the live particle slice. Callers must not retain it
// across Seed.
func (f *Field) Particles() []Particle { return f.particles }

// Stats summarizes particle speeds.
type Stats struct {
	Count     int
	MeanSpeed float64
	StdSpeed  float64
	MaxSpeed  float64
}

func (f *Field) Stats() Stats {
	if len(f.particles) == 0 {
		return Stats{}
	}
	speeds := make([]float64, len(f.particles))
	maxSpeed := 0.0
	for i := range f.particles {
		p := &f.particles[i]
		speeds[i] = math.Hypot(p.VX, p.VY)
		maxSpeed = math.Max(maxSpeed, speeds[i])
	}
	mean, std := stat.MeanStdDev(speeds, nil)
	if len(speeds) == 1 {
		std = 0
	}
	return Stats{
		Count:     len(speeds),
		MeanSpeed: mean,
		StdSpeed:  std,
		MaxSpeed:  maxSpeed,
	}
}
