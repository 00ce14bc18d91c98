// Package audio synthesizes the short tone played on pointer press.
package audio

import (
	"math"

	"github.com/faiface/beep"
)

// Sine returns an endless sine wave at freq Hz, identical on both channels.
func Sine(sr beep.SampleRate, freq float64) beep.Streamer {
	step := 2 * math.Pi * freq / float64(sr)
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := math.Sin(phase)
			samples[i][0] = v
			samples[i][1] = v
			phase += step
			if phase > 2*math.Pi {
				phase -= 2 * math.Pi
			}
		}
		return len(samples), true
	})
}

// Envelope wraps a beep.Streamer, scales it by a linearly decaying gain and
// ends it after a fixed number of samples.
type Envelope struct {
	Source beep.Streamer
	volume float64
	total  int
	pos    int
}

func NewEnvelope(src beep.Streamer, length int, volume float64) *Envelope {
	return &Envelope{
		Source: src,
		volume: volume,
		total:  length,
	}
}

// Tone is a decaying sine of the given duration, ready for speaker.Play.
func Tone(sr beep.SampleRate, freq float64, length int, volume float64) *Envelope {
	return NewEnvelope(Sine(sr, freq), length, volume)
}

func (e *Envelope) Stream(samples [][2]float64) (int, bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if rem := e.total - e.pos; len(samples) > rem {
		samples = samples[:rem]
	}
	n, ok := e.Source.Stream(samples)
	for i := 0; i < n; i++ {
		gain := e.volume * (1 - float64(e.pos)/float64(e.total))
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *Envelope) Err() error { return e.Source.Err() }

// Len is the total length in samples.
func (e *Envelope) Len() int { return e.total }

// Position is the number of samples streamed so far.
func (e *Envelope) Position() int { return e.pos }
