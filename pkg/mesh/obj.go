package mesh

import (
	"fmt"
	"github.com/udhos/gwob"
	"io"
	"strings"
)

const float32Size = 4

type objCodec struct{}

func (objCodec) decode(r io.Reader) (*Mesh, error) {
	obj, err := gwob.NewObjFromReader(defaultName, r, &gwob.ObjParserOptions{Logger: func(string) {}})
	if err != nil {
		return nil, err
	}
	if len(obj.Indices)%3 != 0 {
		return nil, fmt.Errorf("obj index count %d is not a multiple of 3", len(obj.Indices))
	}

	// Strides reported by gwob are in bytes.
	stride := obj.StrideSize / float32Size
	offset := obj.StrideOffsetPosition / float32Size

	w := newWelder(defaultName, len(obj.Indices)/3)
	var tri [3]Vec3
	for i, vIdx := range obj.Indices {
		base := vIdx*stride + offset
		if vIdx < 0 || base+2 >= len(obj.Coord) {
			return nil, fmt.Errorf("obj index %d out of range", vIdx)
		}
		tri[i%3] = Vec3{obj.Coord[base], obj.Coord[base+1], obj.Coord[base+2]}
		if i%3 == 2 {
			w.addTriangle(tri[0], tri[1], tri[2])
		}
	}
	return w.finish()
}

func (objCodec) encode(m *Mesh, w io.Writer) error {
	coord := make([]float32, 0, len(m.Vertices)*3)
	for _, v := range m.Vertices {
		coord = append(coord, v[0], v[1], v[2])
	}
	indices := make([]int, 0, len(m.Faces)*3)
	for _, f := range m.Faces {
		indices = append(indices, f[0], f[1], f[2])
	}

	obj, err := gwob.NewObjFromVertex(coord, indices)
	if err != nil {
		return err
	}

	// gwob keeps no object name, so it is written ahead of the geometry.
	name := strings.Join(strings.Fields(m.Name), "_")
	if name == "" {
		name = defaultName
	}
	if _, err = fmt.Fprintf(w, "o %s\n", name); err != nil {
		return err
	}
	return obj.ToWriter(w)
}
