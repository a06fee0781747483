package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Texture unit the plane samples the environment cubemap from. Units 0 and 1
// hold the diffuse and specular maps.
const planeSkyboxUnit = 2

func setTransforms(shader *Shader, cmd DrawCommand) {
	shader.SetMat4("model", cmd.Model)
	shader.SetMat4("view", cmd.View)
	shader.SetMat4("projection", cmd.Projection)
}

// PlanePass draws the lit, textured model.
type PlanePass struct {
	Shader    *Shader
	Model     *Model
	CubemapID uint32
	Shininess float32
}

func (p *PlanePass) Begin(frame *Frame) {
	p.Shader.Use()
	frame.Light.Apply(p.Shader, "pointLight")
	p.Shader.SetVec3("viewPosition", frame.ViewPos)
	p.Shader.SetVec3("cameraPos", frame.ViewPos)
	p.Shader.SetFloat("material.shininess", p.Shininess)
	p.Shader.SetInt("skybox", planeSkyboxUnit)
}

func (p *PlanePass) Draw(cmd DrawCommand) {
	setTransforms(p.Shader, cmd)
	gl.ActiveTexture(gl.TEXTURE0 + planeSkyboxUnit)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, p.CubemapID)
	p.Model.Draw(p.Shader, "material.")
}

// WaterPass draws one translucent water square per command.
type WaterPass struct {
	Shader     *Shader
	Mesh       *Mesh
	TextureID  uint32
	CelShading bool
}

func (p *WaterPass) Begin(frame *Frame) {
	p.Shader.Use()
	p.Shader.SetVec3("viewPos", frame.ViewPos)
	p.Shader.SetFloat("currentFrame", frame.Elapsed)
	p.Shader.SetBool("celShading", p.CelShading)
	p.Shader.SetInt("texture1", 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.TextureID)
}

func (p *WaterPass) Draw(cmd DrawCommand) {
	setTransforms(p.Shader, cmd)
	p.Mesh.Draw()
}

// SpritePass draws a textured, alpha-blended quad scaled by the frame's
// flicker intensity.
type SpritePass struct {
	Shader    *Shader
	Mesh      *Mesh
	TextureID uint32
}

func (p *SpritePass) Begin(frame *Frame) {
	p.Shader.Use()
	p.Shader.SetInt("texture1", 0)
	p.Shader.SetFloat("flicker", frame.Flicker)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.TextureID)
}

func (p *SpritePass) Draw(cmd DrawCommand) {
	setTransforms(p.Shader, cmd)
	p.Mesh.Draw()
}

// SkyboxPass draws the environment cube. The command carries the
// rotation-only view.
type SkyboxPass struct {
	Shader *Shader
	Skybox *Skybox
}

func (p *SkyboxPass) Begin(frame *Frame) {
	p.Shader.Use()
	p.Shader.SetInt("skybox", 0)
}

func (p *SkyboxPass) Draw(cmd DrawCommand) {
	p.Shader.SetMat4("view", cmd.View)
	p.Shader.SetMat4("projection", cmd.Projection)
	p.Skybox.Draw()
}
