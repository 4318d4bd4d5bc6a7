package server

import (
	"diffsteg/api"
	"diffsteg/internal/logging"
	"diffsteg/pkg/config"
	"diffsteg/pkg/steg"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errUnreadableImage = errors.New("image could not be decoded")

	errRequestBodyDecode = api.Error{Code: "invalid_request", Error: "Error reading request body"}
	errInvalidImage      = api.Error{Code: "invalid_image", Error: "Invalid image supplied in request body"}
	errEncode            = api.Error{Code: "encode_error", Error: "An error occurred while encoding the image"}
	errDecode            = api.Error{Code: "decode_error", Error: "An error occurred while decoding the image"}
	errInternal          = api.Error{Error: "An error occurred while processing the request"}
)

// toAPIError maps domain errors to the status and body returned to clients. Unknown errors are not echoed back, the
// fallback body is returned in their place
func toAPIError(err error, fallback api.Error) (int, api.Error) {
	switch {
	case errors.Is(err, errUnreadableImage):
		return http.StatusBadRequest, errInvalidImage
	case errors.Is(err, steg.ErrCapacityExceeded):
		return http.StatusUnprocessableEntity, api.Error{Code: "capacity_exceeded", Error: err.Error()}
	case errors.Is(err, steg.ErrNonLatin1Character):
		return http.StatusUnprocessableEntity, api.Error{Code: "non_latin1_character", Error: err.Error()}
	case errors.Is(err, steg.ErrDimensionMismatch):
		return http.StatusBadRequest, api.Error{Code: "dimension_mismatch", Error: err.Error()}
	case errors.Is(err, config.ErrLossyOutputFormat), errors.Is(err, steg.ErrInvalidLength):
		return http.StatusBadRequest, api.Error{Code: "invalid_request", Error: err.Error()}
	default:
		return http.StatusInternalServerError, fallback
	}
}

func abortWithError(ctx *gin.Context, logger *logging.Logger, err error, fallback api.Error) {
	status, apiErr := toAPIError(err, fallback)
	if status >= http.StatusInternalServerError {
		logger.WithError(err).Error("Error processing request")
	} else {
		logger.WithError(err).Warn("Rejected request")
	}
	ctx.AbortWithStatusJSON(status, apiErr)
}
