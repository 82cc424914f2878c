// Package renderer draws textured meshes with the scene shader.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/engine/shader"
	"github.com/Faultbox/orrery/internal/engine/shader/glsl"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor math.Vec3
}

// Light is a single point light with Phong terms. With Enabled false
// bodies are drawn with their texture color only.
type Light struct {
	Enabled   bool
	Position  math.Vec3
	Color     math.Vec3
	Ambient   float32
	Specular  float32
	Shininess float32
}

// FrameUniforms are set once per frame.
type FrameUniforms struct {
	View       math.Mat4
	Projection math.Mat4
	Eye        math.Vec3
	Light      Light
}

// DrawItem is one mesh instance.
type DrawItem struct {
	World   math.Mat4
	Color   math.Vec3
	Mesh    *Mesh
	Texture *Texture
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config  Config
	program *shader.Program
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config, src glsl.Sources) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.ClearColor(cfg.ClearColor.X, cfg.ClearColor.Y, cfg.ClearColor.Z, 1.0)

	program, err := shader.NewProgram(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r := &Renderer{config: cfg, program: program}
	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Reload swaps in a program built from src. On failure the current
// program stays active and the compile error is returned.
func (r *Renderer) Reload(src glsl.Sources) error {
	program, err := shader.NewProgram(src)
	if err != nil {
		return err
	}
	r.program.Delete()
	r.program = program
	logger.Info("shaders reloaded", zap.Uint32("program", program.ID))
	return nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// BeginFrame clears the buffers and sets the per-frame uniforms.
func (r *Renderer) BeginFrame(f FrameUniforms) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	loc := &r.program.Loc
	r.program.Use()
	gl.UniformMatrix4fv(loc.View, 1, false, f.View.Ptr())
	gl.UniformMatrix4fv(loc.Projection, 1, false, f.Projection.Ptr())
	gl.Uniform1i(loc.Texture, 0)

	if !f.Light.Enabled {
		gl.Uniform1i(loc.Lighting, 0)
		return
	}
	gl.Uniform1i(loc.Lighting, 1)
	gl.Uniform3f(loc.ViewPos, f.Eye.X, f.Eye.Y, f.Eye.Z)
	gl.Uniform3f(loc.LightPos, f.Light.Position.X, f.Light.Position.Y, f.Light.Position.Z)
	gl.Uniform3f(loc.LightColor, f.Light.Color.X, f.Light.Color.Y, f.Light.Color.Z)
	gl.Uniform1f(loc.Ambient, f.Light.Ambient)
	gl.Uniform1f(loc.Specular, f.Light.Specular)
	gl.Uniform1f(loc.Shininess, f.Light.Shininess)
}

// Draw issues one indexed draw call.
func (r *Renderer) Draw(item DrawItem) {
	loc := &r.program.Loc
	normal := item.World.NormalMatrix()

	gl.UniformMatrix4fv(loc.Model, 1, false, item.World.Ptr())
	gl.UniformMatrix3fv(loc.NormalMatrix, 1, false, &normal[0])
	gl.Uniform3f(loc.ObjectColor, item.Color.X, item.Color.Y, item.Color.Z)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, item.Texture.id)

	gl.BindVertexArray(item.Mesh.vao)
	gl.DrawElements(gl.TRIANGLES, item.Mesh.indexCount, gl.UNSIGNED_INT, nil)
}

// EndFrame unbinds per-frame state.
func (r *Renderer) EndFrame() {
	gl.BindVertexArray(0)
}
