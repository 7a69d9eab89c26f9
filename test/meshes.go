package test

import (
	"bytes"
	"fmt"
)

const (
	CubeVertexCount = 8
	CubeFaceCount   = 12
)

var (
	cubeVertices = [CubeVertexCount][3]float32{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}
	// Counter-clockwise when seen from outside the cube.
	cubeFaces = [CubeFaceCount][3]int{
		{0, 2, 1}, {0, 3, 2},
		{4, 5, 6}, {4, 6, 7},
		{0, 1, 5}, {0, 5, 4},
		{2, 3, 7}, {2, 7, 6},
		{1, 2, 6}, {1, 6, 5},
		{0, 4, 7}, {0, 7, 3},
	}
)

// CubeSTL returns a unit cube as an ASCII STL file.
func CubeSTL() []byte {
	var b bytes.Buffer
	b.WriteString("solid cube\n")
	for _, face := range cubeFaces {
		b.WriteString("  facet normal 0 0 0\n    outer loop\n")
		for _, vIdx := range face {
			v := cubeVertices[vIdx]
			fmt.Fprintf(&b, "      vertex %g %g %g\n", v[0], v[1], v[2])
		}
		b.WriteString("    endloop\n  endfacet\n")
	}
	b.WriteString("endsolid cube\n")
	return b.Bytes()
}

// CubeOBJ returns a unit cube as a triangulated Wavefront OBJ file.
func CubeOBJ() []byte {
	var b bytes.Buffer
	b.WriteString("o cube\n")
	for _, v := range cubeVertices {
		fmt.Fprintf(&b, "v %g %g %g\n", v[0], v[1], v[2])
	}
	for _, face := range cubeFaces {
		fmt.Fprintf(&b, "f %d %d %d\n", face[0]+1, face[1]+1, face[2]+1)
	}
	return b.Bytes()
}
