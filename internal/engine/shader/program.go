package shader

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/engine/shader/glsl"
	"github.com/Faultbox/orrery/internal/logger"
)

// Locations holds every uniform location of the scene program. A value
// of -1 means the driver optimized the uniform out; gl.Uniform* ignores
// it.
type Locations struct {
	Model        int32
	View         int32
	Projection   int32
	NormalMatrix int32
	Texture      int32
	Lighting     int32
	ObjectColor  int32
	LightPos     int32
	LightColor   int32
	ViewPos      int32
	Ambient      int32
	Specular     int32
	Shininess    int32
}

// Program is a linked scene program with its uniform locations resolved
// once at creation.
type Program struct {
	ID  uint32
	Loc Locations
}

// NewProgram compiles and links src and looks up all uniforms.
func NewProgram(src glsl.Sources) (*Program, error) {
	id, err := CompileProgram(src.Vertex, src.Fragment)
	if err != nil {
		return nil, err
	}

	p := &Program{ID: id}
	p.Loc = Locations{
		Model:        p.lookup(glsl.UniformModel),
		View:         p.lookup(glsl.UniformView),
		Projection:   p.lookup(glsl.UniformProjection),
		NormalMatrix: p.lookup(glsl.UniformNormalMatrix),
		Texture:      p.lookup(glsl.UniformTexture),
		Lighting:     p.lookup(glsl.UniformLighting),
		ObjectColor:  p.lookup(glsl.UniformObjectColor),
		LightPos:     p.lookup(glsl.UniformLightPos),
		LightColor:   p.lookup(glsl.UniformLightColor),
		ViewPos:      p.lookup(glsl.UniformViewPos),
		Ambient:      p.lookup(glsl.UniformAmbient),
		Specular:     p.lookup(glsl.UniformSpecular),
		Shininess:    p.lookup(glsl.UniformShininess),
	}

	logger.Debug("shader program created", zap.Uint32("program", id))
	return p, nil
}

func (p *Program) lookup(name string) int32 {
	loc := GetUniform(p.ID, name)
	if loc < 0 {
		logger.Debug("uniform inactive", zap.String("name", name), zap.Uint32("program", p.ID))
	}
	return loc
}

// Use makes the program current.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Delete releases the GL program.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}
