package server

import (
	"errors"
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"meshconv/api"
	"meshconv/internal/convert"
	"meshconv/internal/logging"
	"meshconv/internal/storage"
	"meshconv/internal/validation"
	"net/http"
)

const (
	codeInvalidRequest  = "invalid_request"
	codeNotFound        = "not_found"
	codeFileTooLarge    = "file_too_large"
	codeConversionError = "conversion_error"
	codeStorageError    = "storage_error"
)

var (
	errFileNotFound = api.Error{Code: codeNotFound, Error: "File not found"}
)

// respondError maps an error to its status code and JSON body. Server side messages are passed through to the
// client unredacted, and may include internal paths.
func respondError(ctx *gin.Context, logger *logging.Logger, err error) {
	var (
		rejection   *validation.Rejection
		maxBytesErr *http.MaxBytesError
	)

	switch {
	case errors.As(err, &rejection):
		logger.WithError(err).Warn("Rejected request")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, api.Error{Code: codeInvalidRequest, Error: rejection.Reason})
	case errors.Is(err, storage.ErrInvalidName):
		logger.WithError(err).Warn("Rejected request")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, api.Error{Code: codeInvalidRequest, Error: validation.ReasonTypeNotAllowed})
	case errors.Is(err, storage.ErrNotFound):
		logger.Warn("File not found", "filename", ctx.Param("filename"))
		ctx.AbortWithStatusJSON(http.StatusNotFound, errFileNotFound)
	case errors.As(err, &maxBytesErr):
		logger.WithError(err).Warn("Upload exceeded size limit")
		ctx.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, api.Error{
			Code:  codeFileTooLarge,
			Error: fmt.Sprintf("File exceeds the %s upload limit", humanize.IBytes(uint64(maxBytesErr.Limit))),
		})
	case errors.Is(err, convert.ErrConversionFailed):
		logger.WithError(err).Error("Error converting model")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, api.Error{Code: codeConversionError, Error: err.Error()})
	default:
		logger.WithError(err).Error("Error handling request")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, api.Error{Code: codeStorageError, Error: err.Error()})
	}
}
