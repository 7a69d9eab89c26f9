package api

import (
	flatbuffers "github.com/google/flatbuffers/go"
	"meshconv/api/meshconv/MeshInfo"
)

type MeshInfoResponse struct {
	Filename    string     `json:"filename"`
	Format      string     `json:"format"`
	VertexCount uint32     `json:"vertex_count"`
	FaceCount   uint32     `json:"face_count"`
	Min         [3]float32 `json:"min"`
	Max         [3]float32 `json:"max"`
}

// MarshalFlatbuffer encodes the response with the MeshInfo schema in mesh_info.fbs.
func (r MeshInfoResponse) MarshalFlatbuffer() []byte {
	builder := flatbuffers.NewBuilder(128)

	filename := builder.CreateString(r.Filename)
	format := builder.CreateString(r.Format)
	min := createFloatVector(builder, r.Min, MeshInfo.MeshInfoStartMinVector)
	max := createFloatVector(builder, r.Max, MeshInfo.MeshInfoStartMaxVector)

	MeshInfo.MeshInfoStart(builder)
	MeshInfo.MeshInfoAddFilename(builder, filename)
	MeshInfo.MeshInfoAddFormat(builder, format)
	MeshInfo.MeshInfoAddVertexCount(builder, r.VertexCount)
	MeshInfo.MeshInfoAddFaceCount(builder, r.FaceCount)
	MeshInfo.MeshInfoAddMin(builder, min)
	MeshInfo.MeshInfoAddMax(builder, max)
	builder.Finish(MeshInfo.MeshInfoEnd(builder))

	return builder.FinishedBytes()
}

func UnmarshalMeshInfoFlatbuffer(buf []byte) MeshInfoResponse {
	fbInfo := MeshInfo.GetRootAsMeshInfo(buf, 0)
	r := MeshInfoResponse{
		Filename:    string(fbInfo.Filename()),
		Format:      string(fbInfo.Format()),
		VertexCount: fbInfo.VertexCount(),
		FaceCount:   fbInfo.FaceCount(),
	}
	for i := 0; i < 3 && i < fbInfo.MinLength(); i++ {
		r.Min[i] = fbInfo.Min(i)
	}
	for i := 0; i < 3 && i < fbInfo.MaxLength(); i++ {
		r.Max[i] = fbInfo.Max(i)
	}
	return r
}

func createFloatVector(builder *flatbuffers.Builder, v [3]float32, start func(*flatbuffers.Builder, int) flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	start(builder, len(v))
	for i := len(v) - 1; i >= 0; i-- {
		builder.PrependFloat32(v[i])
	}
	return builder.EndVector(len(v))
}
