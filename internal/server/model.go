package server

import (
	"github.com/gin-gonic/gin"
	"meshconv/api"
	"meshconv/internal/logging"
	"net/http"
)

const mimeOctetStream = "application/octet-stream"

// FetchModelHandler godoc
//
// @Summary Fetch an uploaded mesh
// @Description Returns the raw bytes of a file previously stored by the upload endpoint
// @Tags models
// @Produce octet-stream
// @Param filename path string true "Generated file name returned by upload"
// @Success 200 {file} binary
// @Failure 404 {object} api.Error
// @Router /models/{filename} [get]
func (s *Server) FetchModelHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx)

	stored, err := s.area.Resolve(ctx.Param("filename"))
	if err != nil {
		respondError(ctx, logger, err)
		return
	}

	logger.Debug("Serving model", "filename", stored.Name, "size", stored.Size)
	ctx.Header("Content-Type", stored.Format.ContentType())
	ctx.File(stored.Path)
}

// ModelInfoHandler godoc
//
// @Summary Describe an uploaded mesh
// @Description Decodes a stored mesh and reports its vertex and face counts and bounding box. The success response format is dictated by the Accept header, application/octet-stream returns a MeshInfo flatbuffer, but all errors are returned as JSON
// @Tags models
// @Produce json,octet-stream
// @Param filename path string true "Generated file name returned by upload"
// @Success 200 {object} api.MeshInfoResponse
// @Failure 404 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /models/{filename}/info [get]
func (s *Server) ModelInfoHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx)

	stored, err := s.area.Resolve(ctx.Param("filename"))
	if err != nil {
		respondError(ctx, logger, err)
		return
	}

	m, err := s.converter.Inspect(stored)
	if err != nil {
		respondError(ctx, logger, err)
		return
	}

	min, max := m.Bounds()
	info := api.MeshInfoResponse{
		Filename:    stored.Name,
		Format:      stored.Format.String(),
		VertexCount: uint32(len(m.Vertices)),
		FaceCount:   uint32(len(m.Faces)),
		Min:         min,
		Max:         max,
	}

	switch ctx.NegotiateFormat(gin.MIMEJSON, mimeOctetStream) {
	case mimeOctetStream:
		ctx.Data(http.StatusOK, mimeOctetStream, info.MarshalFlatbuffer())
	default:
		ctx.JSON(http.StatusOK, info)
	}
}
