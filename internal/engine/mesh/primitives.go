package mesh

import (
	"github.com/chewxy/math32"
)

// Cube returns a unit cube centered on the origin with per-face normals
// and a full texture on every face.
func Cube() *Mesh {
	faces := []struct {
		normal [3]float32
		u, v   [3]float32 // face axes
	}{
		{[3]float32{0, 0, 1}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}},
		{[3]float32{0, 0, -1}, [3]float32{-1, 0, 0}, [3]float32{0, 1, 0}},
		{[3]float32{1, 0, 0}, [3]float32{0, 0, -1}, [3]float32{0, 1, 0}},
		{[3]float32{-1, 0, 0}, [3]float32{0, 0, 1}, [3]float32{0, 1, 0}},
		{[3]float32{0, 1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, -1}},
		{[3]float32{0, -1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, 1}},
	}
	corners := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	m := &Mesh{
		Name:     "cube",
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}
	for _, f := range faces {
		base := uint32(len(m.Vertices))
		for _, c := range corners {
			su, sv := c[0]-0.5, c[1]-0.5
			var p [3]float32
			for k := range 3 {
				p[k] = f.normal[k]*0.5 + f.u[k]*su + f.v[k]*sv
			}
			m.Vertices = append(m.Vertices, Vertex{Position: p, Normal: f.normal, UV: c})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// UVSphere returns a unit sphere with its poles on ±Z, the orientation
// the planet textures are authored for. U runs around the Z axis and V
// from the -Z pole to the +Z pole.
func UVSphere(rings, segments int) *Mesh {
	rings = max(rings, 2)
	segments = max(segments, 3)

	m := &Mesh{
		Name:     "sphere",
		Vertices: make([]Vertex, 0, (rings+1)*(segments+1)),
		Indices:  make([]uint32, 0, rings*segments*6),
	}
	for r := 0; r <= rings; r++ {
		v := float32(r) / float32(rings)
		sinTheta, cosTheta := math32.Sincos(math32.Pi * (1 - v))
		for s := 0; s <= segments; s++ {
			u := float32(s) / float32(segments)
			sinPhi, cosPhi := math32.Sincos(2 * math32.Pi * u)
			n := [3]float32{sinTheta * cosPhi, sinTheta * sinPhi, cosTheta}
			m.Vertices = append(m.Vertices, Vertex{Position: n, Normal: n, UV: [2]float32{u, v}})
		}
	}

	row := uint32(segments + 1)
	for r := uint32(0); r < uint32(rings); r++ {
		for s := uint32(0); s < uint32(segments); s++ {
			a := r*row + s
			b := a + row
			m.Indices = append(m.Indices, a, a+1, b, a+1, b+1, b)
		}
	}
	return m
}
