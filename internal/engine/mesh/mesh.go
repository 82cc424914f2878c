// Package mesh holds indexed triangle meshes on the CPU side, the builtin
// primitives and a Wavefront OBJ decoder.
package mesh

import (
	"unsafe"

	"github.com/Faultbox/orrery/pkg/math"
)

// Vertex is the interleaved layout uploaded to the GPU: position at
// location 0, normal at 1, texture coordinate at 2.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	UV       [2]float32
}

// Attribute offsets and stride in bytes.
const (
	Stride         = int32(unsafe.Sizeof(Vertex{}))
	PositionOffset = uintptr(unsafe.Offsetof(Vertex{}.Position))
	NormalOffset   = uintptr(unsafe.Offsetof(Vertex{}.Normal))
	UVOffset       = uintptr(unsafe.Offsetof(Vertex{}.UV))
)

// Mesh is an indexed triangle list.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
}

// Triangles returns the number of triangles.
func (m *Mesh) Triangles() int {
	return len(m.Indices) / 3
}

// Bounds returns the axis-aligned box around all vertices. An empty mesh
// has zero bounds.
func (m *Mesh) Bounds() (lo, hi math.Vec3) {
	if len(m.Vertices) == 0 {
		return
	}
	p := m.Vertices[0].Position
	lo = math.V3(p[0], p[1], p[2])
	hi = lo
	for _, v := range m.Vertices[1:] {
		lo.X = min(lo.X, v.Position[0])
		lo.Y = min(lo.Y, v.Position[1])
		lo.Z = min(lo.Z, v.Position[2])
		hi.X = max(hi.X, v.Position[0])
		hi.Y = max(hi.Y, v.Position[1])
		hi.Z = max(hi.Z, v.Position[2])
	}
	return lo, hi
}

// ComputeNormals replaces vertex normals with the area-weighted average
// of the adjacent face normals.
func (m *Mesh) ComputeNormals() {
	acc := m.faceNormalSums()
	for i := range m.Vertices {
		m.Vertices[i].Normal = acc[i].Normalize().Array()
	}
}

// fillNormals computes normals only for the listed vertices.
func (m *Mesh) fillNormals(vertices []uint32) {
	acc := m.faceNormalSums()
	for _, i := range vertices {
		m.Vertices[i].Normal = acc[i].Normalize().Array()
	}
}

func (m *Mesh) faceNormalSums() []math.Vec3 {
	acc := make([]math.Vec3, len(m.Vertices))
	for t := 0; t+2 < len(m.Indices); t += 3 {
		i0, i1, i2 := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		p0 := vec(m.Vertices[i0].Position)
		p1 := vec(m.Vertices[i1].Position)
		p2 := vec(m.Vertices[i2].Position)
		n := p1.Sub(p0).Cross(p2.Sub(p0))
		acc[i0] = acc[i0].Add(n)
		acc[i1] = acc[i1].Add(n)
		acc[i2] = acc[i2].Add(n)
	}
	return acc
}

func vec(a [3]float32) math.Vec3 {
	return math.V3(a[0], a[1], a[2])
}
