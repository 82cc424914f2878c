// Package assets resolves mesh and texture references against search
// directories and the builtin procedural set, caching what it loads.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/engine/mesh"
	"github.com/Faultbox/orrery/internal/engine/texture"
	"github.com/Faultbox/orrery/internal/logger"
)

// BuiltinPrefix marks references to procedural assets.
const BuiltinPrefix = "builtin:"

// Placeholders used when fallback is enabled.
const (
	FallbackMesh    = BuiltinPrefix + "sphere"
	FallbackTexture = BuiltinPrefix + "white"
)

// Sphere tessellation of builtin:sphere.
const (
	SphereRings    = 32
	SphereSegments = 64
)

// ErrNotFound is returned when no search directory holds a file.
var ErrNotFound = errors.New("asset not found")

// Options tunes a Manager.
type Options struct {
	// Fallback replaces assets that fail to load with a placeholder
	// instead of returning the error.
	Fallback bool
	// MaxTextureSize downscales larger textures. Zero disables it.
	MaxTextureSize int
}

// Manager loads assets from search directories.
type Manager struct {
	opts Options

	dirs []string
	mu   sync.RWMutex

	files    *Cache[[]byte]
	meshes   *Cache[*mesh.Mesh]
	textures *Cache[*image.RGBA]
}

// NewManager creates a new asset manager.
func NewManager(opts Options) *Manager {
	return &Manager{
		opts:     opts,
		files:    NewCache[[]byte](),
		meshes:   NewCache[*mesh.Mesh](),
		textures: NewCache[*image.RGBA](),
	}
}

// AddDir adds a search directory.
// Directories are searched in reverse order (last added = highest priority).
func (m *Manager) AddDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("adding asset dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("adding asset dir: %s is not a directory", dir)
	}

	m.mu.Lock()
	m.dirs = append(m.dirs, dir)
	m.mu.Unlock()

	logger.Debug("asset dir added", zap.String("dir", dir))
	return nil
}

// Resolve returns the file a relative path refers to. Absolute paths are
// checked as given.
func (m *Manager) Resolve(path string) (string, error) {
	if filepath.IsAbs(path) {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return path, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.dirs) - 1; i >= 0; i-- {
		full := filepath.Join(m.dirs[i], filepath.FromSlash(path))
		if _, err := os.Stat(full); err == nil {
			return full, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, path)
}

// Load reads a file from the search directories. Contents are cached by
// path; Mesh and Texture decode from here.
func (m *Manager) Load(path string) ([]byte, error) {
	if data, ok := m.files.Get(path); ok {
		return data, nil
	}

	full, err := m.Resolve(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, err
	}
	m.files.Set(path, data)
	return data, nil
}

// Mesh returns the mesh for ref: builtin:cube, builtin:sphere or a path
// to a Wavefront OBJ file.
func (m *Manager) Mesh(ref string) (*mesh.Mesh, error) {
	if cached, ok := m.meshes.Get(ref); ok {
		return cached, nil
	}

	msh, err := m.loadMesh(ref)
	if err != nil {
		if !m.opts.Fallback || ref == FallbackMesh {
			return nil, fmt.Errorf("loading mesh %s: %w", ref, err)
		}
		logger.Warn("mesh failed to load, using placeholder",
			zap.String("ref", ref), zap.Error(err))
		if msh, err = m.Mesh(FallbackMesh); err != nil {
			return nil, err
		}
	}

	m.meshes.Set(ref, msh)
	return msh, nil
}

func (m *Manager) loadMesh(ref string) (*mesh.Mesh, error) {
	if name, ok := strings.CutPrefix(ref, BuiltinPrefix); ok {
		switch name {
		case "cube":
			return mesh.Cube(), nil
		case "sphere":
			return mesh.UVSphere(SphereRings, SphereSegments), nil
		default:
			return nil, fmt.Errorf("%w: no builtin mesh %q", ErrNotFound, name)
		}
	}

	if ext := strings.ToLower(filepath.Ext(ref)); ext != ".obj" {
		return nil, fmt.Errorf("unsupported mesh format %q", ext)
	}
	data, err := m.Load(ref)
	if err != nil {
		return nil, err
	}
	msh, err := mesh.DecodeOBJ(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ref, err)
	}
	if msh.Name == "" {
		msh.Name = strings.TrimSuffix(filepath.Base(ref), filepath.Ext(ref))
	}
	logger.Debug("mesh loaded",
		zap.String("ref", ref),
		zap.Int("vertices", len(msh.Vertices)),
		zap.Int("triangles", msh.Triangles()))
	return msh, nil
}

// Texture returns the texture for ref, a builtin name or an image path.
// Rows are flipped to GL's bottom-up order, so the result is ready to
// upload.
func (m *Manager) Texture(ref string) (*image.RGBA, error) {
	if cached, ok := m.textures.Get(ref); ok {
		return cached, nil
	}

	img, err := m.loadTexture(ref)
	if err != nil {
		if !m.opts.Fallback || ref == FallbackTexture {
			return nil, fmt.Errorf("loading texture %s: %w", ref, err)
		}
		logger.Warn("texture failed to load, using placeholder",
			zap.String("ref", ref), zap.Error(err))
		if img, err = m.Texture(FallbackTexture); err != nil {
			return nil, err
		}
		m.textures.Set(ref, img)
		return img, nil
	}

	img = texture.Fit(img, m.opts.MaxTextureSize)
	texture.FlipVertical(img)
	m.textures.Set(ref, img)
	return img, nil
}

func (m *Manager) loadTexture(ref string) (*image.RGBA, error) {
	if name, ok := strings.CutPrefix(ref, BuiltinPrefix); ok {
		img, found := texture.Builtin(name)
		if !found {
			return nil, fmt.Errorf("%w: no builtin texture %q (have %s)", ErrNotFound, name, strings.Join(texture.BuiltinNames(), ", "))
		}
		return img, nil
	}

	data, err := m.Load(ref)
	if err != nil {
		return nil, err
	}
	img, err := texture.Decode(bytes.NewReader(data), filepath.Ext(ref))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ref, err)
	}
	logger.Debug("texture loaded",
		zap.String("ref", ref),
		zap.Int("width", img.Rect.Dx()),
		zap.Int("height", img.Rect.Dy()))
	return img, nil
}

// Stats returns combined cache statistics.
func (m *Manager) Stats() (hits, misses int) {
	for _, s := range []interface{ Stats() (int, int) }{m.files, m.meshes, m.textures} {
		h, mi := s.Stats()
		hits += h
		misses += mi
	}
	return hits, misses
}

// Close drops all cached assets and search directories.
func (m *Manager) Close() {
	m.mu.Lock()
	m.dirs = nil
	m.mu.Unlock()

	m.files.Clear()
	m.meshes.Clear()
	m.textures.Clear()
}
