package mesh

import (
	"errors"
	"math"
)

const defaultName = "mesh"

var ErrEmptyMesh = errors.New("mesh contains no faces")

type Vec3 [3]float32

// Face holds indices into Mesh.Vertices, one triangle per face.
type Face [3]int

// Mesh is an indexed triangle mesh. Decoders weld vertices that share an exact position, so a mesh loaded from a
// triangle soup such as STL has the same vertex count as the indexed original.
type Mesh struct {
	Name     string
	Vertices []Vec3
	Faces    []Face
}

// Bounds returns the minimum and maximum corners of the axis aligned box enclosing every vertex.
func (m *Mesh) Bounds() (min, max Vec3) {
	if len(m.Vertices) == 0 {
		return min, max
	}

	for axis := 0; axis < 3; axis++ {
		min[axis] = math.MaxFloat32
		max[axis] = -math.MaxFloat32
	}
	for _, v := range m.Vertices {
		for axis := 0; axis < 3; axis++ {
			if v[axis] < min[axis] {
				min[axis] = v[axis]
			}
			if v[axis] > max[axis] {
				max[axis] = v[axis]
			}
		}
	}
	return min, max
}

func (m *Mesh) triangle(f Face) [3]Vec3 {
	return [3]Vec3{m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]}
}

type welder struct {
	mesh  *Mesh
	index map[Vec3]int
}

func newWelder(name string, expectedFaces int) *welder {
	if name == "" {
		name = defaultName
	}
	return &welder{
		mesh:  &Mesh{Name: name, Faces: make([]Face, 0, expectedFaces)},
		index: make(map[Vec3]int, expectedFaces),
	}
}

func (w *welder) addTriangle(a, b, c Vec3) {
	w.mesh.Faces = append(w.mesh.Faces, Face{w.vertex(a), w.vertex(b), w.vertex(c)})
}

func (w *welder) vertex(v Vec3) int {
	if idx, found := w.index[v]; found {
		return idx
	}
	idx := len(w.mesh.Vertices)
	w.mesh.Vertices = append(w.mesh.Vertices, v)
	w.index[v] = idx
	return idx
}

func (w *welder) finish() (*Mesh, error) {
	if len(w.mesh.Faces) == 0 {
		return nil, ErrEmptyMesh
	}
	return w.mesh, nil
}
