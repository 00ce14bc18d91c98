package field

// Tuning constants of the drift effect.
const (
	DensityArea = 10000.0 // surface pixels per particle

	RadiusMin = 0.5
	RadiusMax = 2.5
	AlphaMin  = 0.1
	AlphaMax  = 0.6
	SpeedMax  = 0.5 // initial velocity per axis in [-SpeedMax, SpeedMax)

	RepelRadius   = 150.0
	RepelStrength = 2.0
	Damping       = 0.98
	Jitter        = 0.05 // per-axis jitter spans [-Jitter/2, Jitter/2)

	ImpulseRadius   = 200.0
	ImpulseStrength = 5.0
)

// Params holds the per-field tuning values. The zero value is not useful;
// start from DefaultParams.
type Params struct {
	DensityArea float64

	RadiusMin, RadiusMax float64
	AlphaMin, AlphaMax   float64
	SpeedMax             float64

	// Hue in degrees and Saturation in [0,1] tint the particle color.
	// Saturation 0 gives white.
	Hue        float64
	Saturation float64

	RepelRadius   float64
	RepelStrength float64
	Damping       float64
	Jitter        float64
}

func DefaultParams() Params {
	return Params{
		DensityArea:   DensityArea,
		RadiusMin:     RadiusMin,
		RadiusMax:     RadiusMax,
		AlphaMin:      AlphaMin,
		AlphaMax:      AlphaMax,
		SpeedMax:      SpeedMax,
		RepelRadius:   RepelRadius,
		RepelStrength: RepelStrength,
		Damping:       Damping,
		Jitter:        Jitter,
	}
}
