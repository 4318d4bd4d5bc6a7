package server

import (
	"diffsteg/api"
	"diffsteg/api/diffsteg/DecodeImage"
	"diffsteg/internal/logging"
	"diffsteg/pkg/config"
	"net/http"

	"github.com/gin-gonic/gin"
	flatbuffers "github.com/google/flatbuffers/go"
)

// DecodeImageHandler godoc
//
// @Summary Recover a message from an encoded image
// @Description This endpoint diffs the encoded image against the original it was produced from and returns the hidden message. Trailing NUL characters are removed unless keep_nulls is set or a length is supplied. A request body sent as application/octet-stream must be an ImageDecodeRequest flatbuffer and is answered with an ImageDecodeResponse flatbuffer, all errors are returned as JSON
// @Tags image
// @Accept json,octet-stream
// @Produce json,octet-stream
// @Param requestBody body api.DecodeImageRequest true "Body with the original and the encoded image"
// @Success 200 {object} api.DecodeImageResponse
// @Failure 400 {object} api.Error
// @Failure 422 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /decode/image [post]
func DecodeImageHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image decode request")

	if ctx.ContentType() == binaryContentType {
		handleFlatbufferDecodeRequest(ctx, logger)
		return
	}

	var requestBody api.DecodeImageRequest
	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Warn("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	message, err := decodeImages(logger, requestBody.OriginalImage, requestBody.ModifiedImage, config.ImageDecodeConfig{
		MessageLength:     requestBody.Length,
		KeepTrailingNulls: requestBody.KeepNulls,
	})
	if err != nil {
		abortWithError(ctx, logger, err, errDecode)
		return
	}

	ctx.JSON(http.StatusOK, api.DecodeImageResponse{Message: message})
}

func handleFlatbufferDecodeRequest(ctx *gin.Context, logger *logging.Logger) {
	requestBody, err := ctx.GetRawData()
	if err != nil || len(requestBody) < flatbuffers.SizeUOffsetT {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	decodeImageRequest := DecodeImage.GetRootAsImageDecodeRequest(requestBody, 0)
	message, err := decodeImages(logger, decodeImageRequest.OriginalImageBytes(), decodeImageRequest.ModifiedImageBytes(),
		config.ImageDecodeConfig{
			MessageLength:     int(decodeImageRequest.Length()),
			KeepTrailingNulls: decodeImageRequest.KeepNulls(),
		})
	if err != nil {
		abortWithError(ctx, logger, err, errDecode)
		return
	}

	fbResponseBuilder := flatbuffers.NewBuilder(len(message) + 32)
	offset := fbResponseBuilder.CreateString(message)
	DecodeImage.ImageDecodeResponseStart(fbResponseBuilder)
	DecodeImage.ImageDecodeResponseAddMessage(fbResponseBuilder, offset)
	response := DecodeImage.ImageDecodeResponseEnd(fbResponseBuilder)
	fbResponseBuilder.Finish(response)

	ctx.Data(http.StatusOK, binaryContentType, fbResponseBuilder.FinishedBytes())
}
