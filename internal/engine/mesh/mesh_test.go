package mesh

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/orrery/pkg/math"
)

const quadOBJ = `# a unit quad
o quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
usemtl none
s off
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func TestDecodeOBJQuad(t *testing.T) {
	m, err := DecodeOBJ(strings.NewReader(quadOBJ))
	require.NoError(t, err)

	assert.Equal(t, "quad", m.Name)
	assert.Len(t, m.Vertices, 4)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, m.Indices)
	assert.Equal(t, [2]float32{1, 1}, m.Vertices[2].UV)
	assert.Equal(t, [3]float32{0, 0, 1}, m.Vertices[3].Normal)
}

func TestDecodeOBJSharesVertices(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
v 1 1 0
f 1 2 3
f 2 4 3
`
	m, err := DecodeOBJ(strings.NewReader(src))
	require.NoError(t, err)
	assert.Len(t, m.Vertices, 4)
	assert.Equal(t, 2, m.Triangles())

	// no normals in the file: computed from the faces, facing +Z
	for _, v := range m.Vertices {
		assert.InDelta(t, 1, v.Normal[2], 1e-6)
	}
}

func TestDecodeOBJNegativeIndices(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
f -3//-1 -2//-1 -1//-1
`
	m, err := DecodeOBJ(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, [3]float32{1, 0, 0}, m.Vertices[1].Position)
	assert.Equal(t, [3]float32{0, 0, 1}, m.Vertices[2].Normal)
}

func TestDecodeOBJMixedNormals(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 1 0 0
f 1//1 2//1 3
f 1//1 3 4
`
	m, err := DecodeOBJ(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, m.Vertices, 4)

	// file normals are kept
	assert.Equal(t, [3]float32{1, 0, 0}, m.Vertices[0].Normal)
	assert.Equal(t, [3]float32{1, 0, 0}, m.Vertices[1].Normal)
	// the rest come from the faces
	for _, i := range []int{2, 3} {
		assert.InDelta(t, 0, m.Vertices[i].Normal[0], 1e-6)
		assert.InDelta(t, 1, m.Vertices[i].Normal[2], 1e-6)
	}
}

func TestDecodeOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"no faces", "v 0 0 0\n"},
		{"bad number", "v 0 x 0\n"},
		{"short vertex", "v 0 0\n"},
		{"index out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n"},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n"},
		{"two vertex face", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
		{"texcoord out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/1 2/1 3/1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeOBJ(strings.NewReader(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestCube(t *testing.T) {
	m := Cube()
	assert.Len(t, m.Vertices, 24)
	assert.Equal(t, 12, m.Triangles())

	lo, hi := m.Bounds()
	assert.Equal(t, math.Splat(-0.5), lo)
	assert.Equal(t, math.Splat(0.5), hi)

	assertOutwardCCW(t, m)
}

func TestUVSphere(t *testing.T) {
	m := UVSphere(16, 32)
	assert.Len(t, m.Vertices, 17*33)
	assert.Equal(t, 16*32*2, m.Triangles())

	for _, v := range m.Vertices {
		assert.InDelta(t, 1, vec(v.Position).Length(), 1e-5)
	}
	// v = 0 is the -Z pole, v = 1 the +Z pole
	assert.InDelta(t, -1, m.Vertices[0].Position[2], 1e-6)
	assert.InDelta(t, 1, m.Vertices[len(m.Vertices)-1].Position[2], 1e-6)

	assertOutwardCCW(t, m)
}

func TestBoundsEmpty(t *testing.T) {
	lo, hi := (&Mesh{}).Bounds()
	assert.Equal(t, math.Vec3{}, lo)
	assert.Equal(t, math.Vec3{}, hi)
}

func TestAttributeLayout(t *testing.T) {
	assert.Equal(t, int32(32), Stride)
	assert.Equal(t, uintptr(0), PositionOffset)
	assert.Equal(t, uintptr(12), NormalOffset)
	assert.Equal(t, uintptr(24), UVOffset)
}

// assertOutwardCCW checks every non-degenerate triangle winds
// counterclockwise seen from outside a mesh centered on the origin.
func assertOutwardCCW(t *testing.T, m *Mesh) {
	t.Helper()
	for i := 0; i < len(m.Indices); i += 3 {
		p0 := vec(m.Vertices[m.Indices[i]].Position)
		p1 := vec(m.Vertices[m.Indices[i+1]].Position)
		p2 := vec(m.Vertices[m.Indices[i+2]].Position)
		n := p1.Sub(p0).Cross(p2.Sub(p0))
		if n.Length() < 1e-6 {
			continue
		}
		center := p0.Add(p1).Add(p2).Scale(1.0 / 3)
		if n.Dot(center) <= 0 {
			t.Fatalf("triangle %d winds inward", i/3)
		}
	}
}
