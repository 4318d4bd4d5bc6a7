package server

import (
	"diffsteg/api"
	"diffsteg/internal/logging"
	diffstegImage "diffsteg/pkg/image"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ImageInfoHandler godoc
//
// @Summary Report how much text an image can carry
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.ImageInfoRequest true "Body with the image to inspect"
// @Success 200 {object} api.ImageInfoResponse
// @Failure 400 {object} api.Error
// @Router /info/image [post]
func ImageInfoHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx)

	var requestBody api.ImageInfoRequest
	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Warn("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	img, format, err := readImage(requestBody.Image)
	if err != nil {
		abortWithError(ctx, logger, err, errInternal)
		return
	}

	ctx.JSON(http.StatusOK, api.ImageInfoResponse{Capacity: diffstegImage.Capacity(img), Format: format})
}

// CompareImagesHandler godoc
//
// @Summary Measure the distortion introduced by encoding
// @Description Returns the mean squared error, the peak signal to noise ratio (null when the images are identical) and how many channels differ between the two images
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.CompareImagesRequest true "Body with the original and the encoded image"
// @Success 200 {object} api.CompareImagesResponse
// @Failure 400 {object} api.Error
// @Router /compare/image [post]
func CompareImagesHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx)

	var requestBody api.CompareImagesRequest
	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Warn("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	original, _, err := readImage(requestBody.OriginalImage)
	if err != nil {
		abortWithError(ctx, logger, err, errInternal)
		return
	}
	modified, _, err := readImage(requestBody.ModifiedImage)
	if err != nil {
		abortWithError(ctx, logger, err, errInternal)
		return
	}

	comparison, err := diffstegImage.Compare(original, modified)
	if err != nil {
		abortWithError(ctx, logger, err, errInternal)
		return
	}

	ctx.JSON(http.StatusOK, api.CompareImagesResponse{Comparison: comparison})
}
