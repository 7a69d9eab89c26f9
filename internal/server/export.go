package server

import (
	"errors"
	"github.com/gin-gonic/gin"
	"meshconv/internal/logging"
	"meshconv/internal/validation"
)

const (
	scratchInputPrefix = "temp_input"
	attachmentBaseName = "model"
)

// ExportHandler godoc
//
// @Summary Convert a mesh between formats
// @Description Converts the supplied mesh from fromFormat to toFormat and returns the result as an attachment named model.{toFormat}. Nothing is kept on the server afterwards
// @Tags models
// @Accept multipart/form-data
// @Produce octet-stream,json
// @Param file formData file true "Mesh to convert"
// @Param fromFormat formData string true "Format of the supplied file" Enums(stl, obj)
// @Param toFormat formData string true "Format to convert to" Enums(stl, obj)
// @Success 200 {file} binary
// @Failure 400 {object} api.Error
// @Failure 413 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /export [post]
func (s *Server) ExportHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx)

	fileHeader, err := s.formFile(ctx)
	if errors.Is(err, errNoSelectedFile) {
		err = validation.Reject(validation.ReasonMissingFields)
	}
	if err != nil {
		respondError(ctx, logger, err)
		return
	}

	from, to, err := s.gate.Formats(ctx.PostForm("fromFormat"), ctx.PostForm("toFormat"))
	if err != nil {
		respondError(ctx, logger, err)
		return
	}
	logger = &logging.Logger{Logger: logger.With("from", from, "to", to)}
	logger.Info("Converting model")

	src, err := fileHeader.Open()
	if err != nil {
		respondError(ctx, logger, err)
		return
	}
	defer src.Close()

	input, err := s.area.PutScratch(scratchInputPrefix, from, src)
	if err != nil {
		respondError(ctx, logger, err)
		return
	}
	defer s.removeScratch(logger, input.Name)

	result, err := s.converter.Convert(input, from, to)
	if err != nil {
		respondError(ctx, logger, err)
		return
	}
	defer s.removeScratch(logger, result.File.Name)

	logger.With("stats", toHumanizedConversionStats(result.Stats)).Info("Model conversion was successful")

	ctx.Header("Content-Type", mimeOctetStream)
	ctx.FileAttachment(result.File.Path, attachmentBaseName+to.Ext())
}

func (s *Server) removeScratch(logger *logging.Logger, name string) {
	if err := s.area.Remove(name); err != nil {
		logger.WithError(err).Warn("Error removing scratch file", "filename", name)
	}
}
