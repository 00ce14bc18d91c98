package field

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// particleColor builds the fill color for a particle from the field tint
// and the particle's own alpha.
func particleColor(prm *Params, alpha float64) color.NRGBA {
	hue := math.Mod(prm.Hue, 360)
	if hue < 0 {
		hue += 360
	}
	r, g, b := colorful.Hsv(hue, clamp01(prm.Saturation), 1).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(alpha) * 255)}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
