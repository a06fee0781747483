package renderer

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// PointLight is a Phong point light with distance attenuation.
type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3

	Constant  float32
	Linear    float32
	Quadratic float32
}

// Attenuation returns 1/(constant + linear*d + quadratic*d^2).
func (l PointLight) Attenuation(d float32) float32 {
	d = math32.Abs(d)
	return 1.0 / (l.Constant + l.Linear*d + l.Quadratic*d*d)
}

// Apply uploads the light under the given uniform struct name, e.g. "pointLight".
func (l PointLight) Apply(shader *Shader, name string) {
	shader.SetVec3(name+".position", l.Position)
	shader.SetVec3(name+".ambient", l.Ambient)
	shader.SetVec3(name+".diffuse", l.Diffuse)
	shader.SetVec3(name+".specular", l.Specular)
	shader.SetFloat(name+".constant", l.Constant)
	shader.SetFloat(name+".linear", l.Linear)
	shader.SetFloat(name+".quadratic", l.Quadratic)
}
