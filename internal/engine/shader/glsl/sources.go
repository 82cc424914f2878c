// Package glsl holds the scene shader sources and watches them on disk.
package glsl

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

// Uniform names used by the scene shaders.
const (
	UniformModel        = "uModel"
	UniformView         = "uView"
	UniformProjection   = "uProjection"
	UniformNormalMatrix = "uNormalMatrix"
	UniformTexture      = "uTexture"
	UniformLighting     = "uLighting"
	UniformObjectColor  = "uObjectColor"
	UniformLightPos     = "uLightPos"
	UniformLightColor   = "uLightColor"
	UniformViewPos      = "uViewPos"
	UniformAmbient      = "uAmbient"
	UniformSpecular     = "uSpecular"
	UniformShininess    = "uShininess"
)

// File names of the scene program inside a shader directory.
const (
	VertexFile   = "scene.vert"
	FragmentFile = "scene.frag"
)

//go:embed shaders/scene.vert
var sceneVertex string

//go:embed shaders/scene.frag
var sceneFragment string

// Sources is a vertex and fragment shader pair.
type Sources struct {
	Vertex   string
	Fragment string
}

// Embedded returns the scene shaders compiled into the binary.
func Embedded() Sources {
	return Sources{Vertex: sceneVertex, Fragment: sceneFragment}
}

// LoadDir reads scene.vert and scene.frag from dir.
func LoadDir(dir string) (Sources, error) {
	vert, err := os.ReadFile(filepath.Join(dir, VertexFile))
	if err != nil {
		return Sources{}, fmt.Errorf("reading vertex shader: %w", err)
	}
	frag, err := os.ReadFile(filepath.Join(dir, FragmentFile))
	if err != nil {
		return Sources{}, fmt.Errorf("reading fragment shader: %w", err)
	}
	return Sources{Vertex: string(vert), Fragment: string(frag)}, nil
}

// Load returns the sources in dir, or the embedded ones when dir is empty.
func Load(dir string) (Sources, error) {
	if dir == "" {
		return Embedded(), nil
	}
	return LoadDir(dir)
}
