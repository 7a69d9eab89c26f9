package server

import (
	"errors"
	"github.com/gin-gonic/gin"
	"meshconv/api"
	"meshconv/internal/logging"
	"meshconv/internal/validation"
	"mime/multipart"
	"net/http"
)

const (
	fileFormField = "file"

	// Room for multipart boundaries, part headers and the export form fields on top of the file itself.
	multipartOverhead = 64 * 1024
)

var (
	errNoFilePart     = validation.Reject(validation.ReasonNoFilePart)
	errNoSelectedFile = validation.Reject(validation.ReasonNoSelectedFile)
)

// UploadHandler godoc
//
// @Summary Upload a mesh
// @Description Stores an STL or OBJ file under a generated name, which is returned for later retrieval
// @Tags models
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "STL or OBJ file"
// @Success 200 {object} api.UploadResponse
// @Failure 400 {object} api.Error
// @Failure 413 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /upload [post]
func (s *Server) UploadHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Info("Received upload request", "content_type", ctx.ContentType(), "content_length", ctx.Request.ContentLength)

	fileHeader, err := s.formFile(ctx)
	if err != nil {
		respondError(ctx, logger, err)
		return
	}

	if _, err = s.gate.Filename(fileHeader.Filename); err != nil {
		respondError(ctx, logger, err)
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		respondError(ctx, logger, err)
		return
	}
	defer src.Close()

	stored, err := s.area.Put(fileHeader.Filename, src)
	if err != nil {
		respondError(ctx, logger, err)
		return
	}

	logger.Info("File saved successfully", "filename", stored.Name, "size", stored.Size)
	ctx.JSON(http.StatusOK, api.UploadResponse{Message: "File uploaded successfully", Filename: stored.Name})
}

// UploadProbeHandler answers HEAD requests so clients can check that the server is reachable.
func UploadProbeHandler(ctx *gin.Context) {
	ctx.Status(http.StatusOK)
}

// PreflightHandler answers OPTIONS on every API route. CORS preflights are answered by the cors middleware before
// reaching it.
func PreflightHandler(ctx *gin.Context) {
	ctx.Status(http.StatusNoContent)
}

// formFile caps the request body and reads the file part. A part sent with an empty filename is parsed by net/http
// as a plain form value, which is reported as errNoSelectedFile.
func (s *Server) formFile(ctx *gin.Context) (*multipart.FileHeader, error) {
	maxUploadSize := int64(s.cfg.MaxUploadSize)
	bodyLimit := maxUploadSize + multipartOverhead
	if ctx.Request.ContentLength > bodyLimit {
		return nil, &http.MaxBytesError{Limit: maxUploadSize}
	}
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, bodyLimit)

	fileHeader, err := ctx.FormFile(fileFormField)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			return nil, &http.MaxBytesError{Limit: maxUploadSize}
		case errors.Is(err, http.ErrMissingFile):
			if form := ctx.Request.MultipartForm; form != nil {
				if _, found := form.Value[fileFormField]; found {
					return nil, errNoSelectedFile
				}
			}
		}
		return nil, errNoFilePart
	}

	if fileHeader.Size > maxUploadSize {
		return nil, &http.MaxBytesError{Limit: maxUploadSize}
	}
	return fileHeader, nil
}
