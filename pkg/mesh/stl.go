package mesh

import (
	"bytes"
	"encoding/binary"
	"errors"
	"github.com/hschendel/stl"
	"io"
)

const (
	binarySTLHeaderSize   = 80
	binarySTLTriangleSize = 50
)

var ErrTruncatedSTL = errors.New("binary STL is shorter than its declared triangle count")

type stlCodec struct{}

func (stlCodec) decode(r io.Reader) (*Mesh, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if err = checkBinarySTLLength(content); err != nil {
		return nil, err
	}

	solid, err := stl.ReadAll(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	w := newWelder(solid.Name, len(solid.Triangles))
	for _, t := range solid.Triangles {
		w.addTriangle(Vec3(t.Vertices[0]), Vec3(t.Vertices[1]), Vec3(t.Vertices[2]))
	}
	return w.finish()
}

func (stlCodec) encode(m *Mesh, w io.Writer) error {
	solid := &stl.Solid{
		Name:      m.Name,
		Triangles: make([]stl.Triangle, len(m.Faces)),
	}
	for i, f := range m.Faces {
		tri := m.triangle(f)
		solid.Triangles[i].Vertices = [3]stl.Vec3{stl.Vec3(tri[0]), stl.Vec3(tri[1]), stl.Vec3(tri[2])}
	}
	solid.RecalculateNormals()

	return solid.WriteAll(w)
}

// checkBinarySTLLength rejects binary STL whose triangle count points past the end of the content, before the
// count is used to size any allocation. ASCII content is left to the parser.
func checkBinarySTLLength(content []byte) error {
	if bytes.HasPrefix(content, []byte("solid")) {
		return nil
	}
	if len(content) < binarySTLHeaderSize+4 {
		return ErrTruncatedSTL
	}
	triangles := uint64(binary.LittleEndian.Uint32(content[binarySTLHeaderSize:]))
	if uint64(binarySTLHeaderSize+4)+triangles*binarySTLTriangleSize > uint64(len(content)) {
		return ErrTruncatedSTL
	}
	return nil
}
