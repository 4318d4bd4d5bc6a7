package server

import (
	"bytes"
	"diffsteg/internal/logging"
	"diffsteg/pkg/config"
	diffstegImage "diffsteg/pkg/image"
	"diffsteg/pkg/steg"
	"fmt"
	"image"
	"image/png"
)

const binaryContentType = "application/octet-stream"

func readImage(rawImage []byte) (*image.NRGBA, string, error) {
	img, format, err := diffstegImage.DecodeImage(bytes.NewReader(rawImage))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", errUnreadableImage, err)
	}
	return img, format, nil
}

func imageEncodeConfig(failOnOverflow bool, outputFormat string) config.ImageEncodeConfig {
	iConfig := config.ImageEncodeConfig{
		OutputFormat:        outputFormat,
		PngCompressionLevel: png.BestCompression, // to reduce bandwidth costs since lower compression results in huge images
	}
	if failOnOverflow {
		iConfig.CapacityPolicy = steg.CapacityFailFast
	}
	return iConfig
}

func encodeImage(logger *logging.Logger, rawImage []byte, message string, iConfig config.ImageEncodeConfig) ([]byte, error) {
	imageToEncode, _, err := readImage(rawImage)
	if err != nil {
		return nil, err
	}

	imageEncoder, err := diffstegImage.NewImageEncoder(imageToEncode, iConfig)
	if err != nil {
		return nil, err
	}
	if err = imageEncoder.EncodeMessage(message); err != nil {
		return nil, err
	}

	encodedImageBuffer := bytes.NewBuffer(make([]byte, 0, len(rawImage))) // pre allocate with size of original, since it should be similar
	if err = imageEncoder.WriteEncodedImage(encodedImageBuffer); err != nil {
		return nil, err
	}

	logger.With("stats", toHumanizedEncodeStats(imageEncoder.Stats())).Info("Image encoding was successful")
	return encodedImageBuffer.Bytes(), nil
}

func decodeImages(logger *logging.Logger, rawOriginal, rawModified []byte, dConfig config.ImageDecodeConfig) (string, error) {
	original, _, err := readImage(rawOriginal)
	if err != nil {
		return "", err
	}
	modified, _, err := readImage(rawModified)
	if err != nil {
		return "", err
	}

	imageDecoder, err := diffstegImage.NewImageDecoder(original, modified)
	if err != nil {
		return "", err
	}
	message, err := imageDecoder.DecodeMessage(dConfig)
	if err != nil {
		return "", err
	}

	logger.With("stats", toHumanizedDecodeStats(imageDecoder.Stats())).Info("Image decoding was successful")
	return message, nil
}
