package scene

import (
	"Storm3D/internal/behaviour"

	perlin "github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	flickerAlpha  = 2.0
	flickerBeta   = 2.0
	flickerOctave = 3
)

// ThunderFlicker drives the thunder sprite intensity with 1D perlin noise.
// Intensity stays in [0,1]; a zero rate keeps it at 1.
type ThunderFlicker struct {
	Rate      float32
	Intensity float32
	noise     *perlin.Perlin
}

var _ behaviour.Behaviour = (*ThunderFlicker)(nil)

func NewThunderFlicker(seed int64, rate float32) *ThunderFlicker {
	return &ThunderFlicker{
		Rate:      rate,
		Intensity: 1,
		noise:     perlin.NewPerlin(flickerAlpha, flickerBeta, flickerOctave, seed),
	}
}

func (f *ThunderFlicker) Start() {
	f.Intensity = 1
}

func (f *ThunderFlicker) Update(tick behaviour.Tick) {
	if f.Rate <= 0 {
		f.Intensity = 1
		return
	}
	n := f.noise.Noise1D(float64(tick.Elapsed * f.Rate))
	f.Intensity = mgl32.Clamp(float32(n+1)/2, 0, 1)
}
