package mesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// objKey identifies a unique position/uv/normal combination. Missing
// components are -1.
type objKey struct {
	v, vt, vn int
}

// DecodeOBJ reads a Wavefront OBJ stream. Positions, texture coordinates
// and normals are read; polygons are fan-triangulated; materials, groups
// and smoothing directives are ignored. Vertices a face gives no normal
// get one computed from the faces around them.
func DecodeOBJ(r io.Reader) (*Mesh, error) {
	var (
		positions [][3]float32
		uvs       [][2]float32
		normals   [][3]float32
		lookup    = make(map[objKey]uint32)
		m         = &Mesh{}
		noNormal  []uint32
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			p, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("obj line %d: %w", line, err)
			}
			positions = append(positions, [3]float32{p[0], p[1], p[2]})

		case "vt":
			t, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("obj line %d: %w", line, err)
			}
			uvs = append(uvs, [2]float32{t[0], t[1]})

		case "vn":
			n, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("obj line %d: %w", line, err)
			}
			normals = append(normals, [3]float32{n[0], n[1], n[2]})

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj line %d: face needs at least 3 vertices", line)
			}
			face := make([]uint32, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				key, err := parseFaceVertex(ref, len(positions), len(uvs), len(normals))
				if err != nil {
					return nil, fmt.Errorf("obj line %d: %w", line, err)
				}
				idx, ok := lookup[key]
				if !ok {
					vert := Vertex{Position: positions[key.v]}
					if key.vt >= 0 {
						vert.UV = uvs[key.vt]
					}
					idx = uint32(len(m.Vertices))
					if key.vn >= 0 {
						vert.Normal = normals[key.vn]
					} else {
						noNormal = append(noNormal, idx)
					}
					m.Vertices = append(m.Vertices, vert)
					lookup[key] = idx
				}
				face = append(face, idx)
			}
			for i := 1; i+1 < len(face); i++ {
				m.Indices = append(m.Indices, face[0], face[i], face[i+1])
			}

		case "o":
			if m.Name == "" && len(fields) > 1 {
				m.Name = fields[1]
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading obj: %w", err)
	}
	if len(m.Indices) == 0 {
		return nil, fmt.Errorf("obj has no faces")
	}

	switch {
	case len(noNormal) == len(m.Vertices):
		m.ComputeNormals()
	case len(noNormal) > 0:
		m.fillNormals(noNormal)
	}
	return m, nil
}

// parseFloats parses the first n fields. Extra fields, such as the
// optional w of a vertex, are ignored; a missing trailing component of a
// texture coordinate is zero.
func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n && !(n == 2 && len(fields) == 1) {
		return nil, fmt.Errorf("expected %d values, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n && i < len(fields); i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", fields[i])
		}
		out[i] = float32(f)
	}
	return out, nil
}

// parseFaceVertex parses v, v/vt, v//vn or v/vt/vn. Indices are 1-based;
// negative indices count back from the end.
func parseFaceVertex(ref string, nv, nvt, nvn int) (objKey, error) {
	key := objKey{-1, -1, -1}
	parts := strings.Split(ref, "/")
	if len(parts) > 3 {
		return key, fmt.Errorf("bad face vertex %q", ref)
	}

	var err error
	if key.v, err = resolveIndex(parts[0], nv); err != nil {
		return key, fmt.Errorf("face vertex %q: %w", ref, err)
	}
	if len(parts) > 1 && parts[1] != "" {
		if key.vt, err = resolveIndex(parts[1], nvt); err != nil {
			return key, fmt.Errorf("face texcoord %q: %w", ref, err)
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if key.vn, err = resolveIndex(parts[2], nvn); err != nil {
			return key, fmt.Errorf("face normal %q: %w", ref, err)
		}
	}
	return key, nil
}

func resolveIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad index %q", s)
	}
	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	default:
		return 0, fmt.Errorf("index %d out of range (have %d)", i, n)
	}
}
