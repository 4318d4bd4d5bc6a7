package server

import (
	"diffsteg/api"
	"diffsteg/api/diffsteg/EncodeImage"
	"diffsteg/internal/logging"
	"net/http"

	"github.com/gin-gonic/gin"
	flatbuffers "github.com/google/flatbuffers/go"
)

// EncodeImageHandler godoc
//
// @Summary Hide a message in the supplied image
// @Description This endpoint hides the message in the image and returns the encoded image in a lossless format. A request body sent as application/octet-stream must be an ImageEncodeRequest flatbuffer and is answered with an ImageEncodeResponse flatbuffer, all errors are returned as JSON
// @Tags image
// @Accept json,octet-stream
// @Produce json,octet-stream
// @Param requestBody body api.EncodeImageRequest true "Body with the image to encode the message into, the message, and configuration for the encoding process"
// @Success 200 {object} api.EncodeImageResponse
// @Failure 400 {object} api.Error
// @Failure 422 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /encode/image [post]
func EncodeImageHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image encode request")

	if ctx.ContentType() == binaryContentType {
		handleFlatbufferEncodeRequest(ctx, logger)
		return
	}

	var requestBody api.EncodeImageRequest
	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Warn("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	failOnOverflow := requestBody.FailOnOverflow == nil || *requestBody.FailOnOverflow
	encodedImage, err := encodeImage(logger, requestBody.ImageToEncode, requestBody.Message,
		imageEncodeConfig(failOnOverflow, requestBody.OutputFormat))
	if err != nil {
		abortWithError(ctx, logger, err, errEncode)
		return
	}

	ctx.JSON(http.StatusOK, api.EncodeImageResponse{EncodedImage: encodedImage})
}

func handleFlatbufferEncodeRequest(ctx *gin.Context, logger *logging.Logger) {
	requestBody, err := ctx.GetRawData()
	if err != nil || len(requestBody) < flatbuffers.SizeUOffsetT {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	encodeImageRequest := EncodeImage.GetRootAsImageEncodeRequest(requestBody, 0)
	encodedImage, err := encodeImage(logger, encodeImageRequest.ImageToEncodeBytes(), string(encodeImageRequest.Message()),
		imageEncodeConfig(encodeImageRequest.FailOnOverflow(), string(encodeImageRequest.OutputFormat())))
	if err != nil {
		abortWithError(ctx, logger, err, errEncode)
		return
	}

	fbResponseBuilder := flatbuffers.NewBuilder(len(encodedImage) + 64)
	offset := fbResponseBuilder.CreateByteVector(encodedImage)
	EncodeImage.ImageEncodeResponseStart(fbResponseBuilder)
	EncodeImage.ImageEncodeResponseAddEncodedImage(fbResponseBuilder, offset)
	response := EncodeImage.ImageEncodeResponseEnd(fbResponseBuilder)
	fbResponseBuilder.Finish(response)

	ctx.Data(http.StatusOK, binaryContentType, fbResponseBuilder.FinishedBytes())
}
