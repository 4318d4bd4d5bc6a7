package api

import "diffsteg/pkg/model"

type EncodeImageRequest struct {
	ImageToEncode []byte `json:"image_to_encode" binding:"required"`
	Message       string `json:"message"`
	// FailOnOverflow rejects messages that do not fit in the image instead of truncating them. Defaults to true
	FailOnOverflow *bool  `json:"fail_on_overflow,omitempty"`
	OutputFormat   string `json:"output_format,omitempty" enums:"png,bmp,tiff"`
}

type EncodeImageResponse struct {
	EncodedImage []byte `json:"encoded_image"`
}

type DecodeImageRequest struct {
	OriginalImage []byte `json:"original_image" binding:"required"`
	ModifiedImage []byte `json:"modified_image" binding:"required"`
	// Length is the number of characters to decode, zero decodes the whole image
	Length    int  `json:"length,omitempty" binding:"min=0"`
	KeepNulls bool `json:"keep_nulls,omitempty"`
}

type DecodeImageResponse struct {
	Message string `json:"message"`
}

type ImageInfoRequest struct {
	Image []byte `json:"image" binding:"required"`
}

type ImageInfoResponse struct {
	model.Capacity
	Format string `json:"format"`
}

type CompareImagesRequest struct {
	OriginalImage []byte `json:"original_image" binding:"required"`
	ModifiedImage []byte `json:"modified_image" binding:"required"`
}

type CompareImagesResponse struct {
	model.Comparison
}
