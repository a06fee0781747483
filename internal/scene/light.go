package scene

import (
	"Storm3D/internal/behaviour"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// OrbitPosition is the point at angle t (radians) on a horizontal circle of
// the given radius at height h, centered on the Y axis.
func OrbitPosition(radius, height, t float32) mgl32.Vec3 {
	return mgl32.Vec3{radius * math32.Cos(t), height, radius * math32.Sin(t)}
}

// LightOrbit moves the point light around the plane, one radian per second.
type LightOrbit struct {
	Radius   float32
	Height   float32
	Position mgl32.Vec3
}

var _ behaviour.Behaviour = (*LightOrbit)(nil)

func (l *LightOrbit) Start() {
	l.Position = OrbitPosition(l.Radius, l.Height, 0)
}

func (l *LightOrbit) Update(tick behaviour.Tick) {
	l.Position = OrbitPosition(l.Radius, l.Height, tick.Elapsed)
}
