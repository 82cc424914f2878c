package glsl

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSources(t *testing.T) {
	src := Embedded()

	for _, s := range []string{src.Vertex, src.Fragment} {
		assert.True(t, strings.HasPrefix(s, "#version 410 core"), "missing version line")
	}

	vertexUniforms := []string{UniformModel, UniformView, UniformProjection, UniformNormalMatrix}
	for _, name := range vertexUniforms {
		assert.Contains(t, src.Vertex, "uniform mat", name)
		assert.Contains(t, src.Vertex, name)
	}

	fragmentUniforms := []string{
		UniformTexture, UniformLighting, UniformObjectColor, UniformLightPos,
		UniformLightColor, UniformViewPos, UniformAmbient, UniformSpecular, UniformShininess,
	}
	for _, name := range fragmentUniforms {
		assert.Contains(t, src.Fragment, name)
	}
}

func TestFragmentTintsBothPaths(t *testing.T) {
	frag := Embedded().Fragment
	tint := strings.Index(frag, "* "+UniformObjectColor)
	branch := strings.Index(frag, "if (!"+UniformLighting+")")
	require.GreaterOrEqual(t, tint, 0, "object color never applied")
	require.GreaterOrEqual(t, branch, 0)
	assert.Less(t, tint, branch, "unlit path returns before the tint")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadDir(dir)
	assert.Error(t, err, "empty dir should fail")

	require.NoError(t, os.WriteFile(filepath.Join(dir, VertexFile), []byte("v"), 0o644))
	_, err = LoadDir(dir)
	assert.Error(t, err, "missing fragment shader should fail")

	require.NoError(t, os.WriteFile(filepath.Join(dir, FragmentFile), []byte("f"), 0o644))
	src, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Sources{Vertex: "v", Fragment: "f"}, src)

	src, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Embedded(), src)
}

func TestWatcherReportsShaderWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	assert.False(t, w.Changed(), "no events yet")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, FragmentFile), []byte("f"), 0o644))

	assert.Eventually(t, w.Changed, 2*time.Second, 10*time.Millisecond)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.md"), []byte("x"), 0o644))

	time.Sleep(100 * time.Millisecond)
	assert.False(t, w.Changed())
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
