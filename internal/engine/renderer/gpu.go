package renderer

import (
	"errors"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/orrery/internal/engine/mesh"
)

// Mesh is a mesh resident in GPU buffers.
type Mesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// UploadMesh copies m into a vertex array object.
func UploadMesh(m *mesh.Mesh) (*Mesh, error) {
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return nil, errors.New("upload: empty mesh")
	}

	g := &Mesh{indexCount: int32(len(m.Indices))}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(mesh.Stride), unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, mesh.Stride, mesh.PositionOffset)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, mesh.Stride, mesh.NormalOffset)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, mesh.Stride, mesh.UVOffset)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return g, nil
}

// Delete releases the GPU buffers.
func (g *Mesh) Delete() {
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
	}
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
	}
	*g = Mesh{}
}

// Texture is a 2D texture with mipmaps.
type Texture struct {
	id            uint32
	width, height int
}

// UploadTexture copies img, already in bottom-up row order, to the GPU.
func UploadTexture(img *image.RGBA) (*Texture, error) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 {
		return nil, errors.New("upload: empty texture")
	}

	t := &Texture{width: w, height: h}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

// Size returns the texture dimensions.
func (t *Texture) Size() (int, int) {
	return t.width, t.height
}

// Delete releases the GL texture.
func (t *Texture) Delete() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}
