package image

import (
	"bytes"
	"diffsteg/pkg/config"
	"diffsteg/pkg/steg"
	"diffsteg/test"
	"errors"
	"image/png"
	"testing"
)

func TestEncodeDecode(t *testing.T) {
	runImageTestsWithAllFormatsAndOpaquenessSettings(t, encodeWriteReadDecode)
}

// encodeWriteReadDecode goes through the same steps a user does: encode, save the result to a file, load both files
// back and diff them
func encodeWriteReadDecode(t *testing.T, outputFormat string, randomizePixelOpaqueness bool) {
	imageToEncode, _ := generateImage(testImageSize, testImageSize, randomizePixelOpaqueness)
	message := test.GenerateRandomLatin1Message(calculateCharsThatFitInImage(imageToEncode) / 2)
	iConfig := config.ImageEncodeConfig{
		CapacityPolicy:      steg.CapacityFailFast,
		OutputFormat:        outputFormat,
		PngCompressionLevel: png.BestSpeed,
	}

	var originalFile bytes.Buffer
	if err := WriteImage(&originalFile, imageToEncode, config.ImageEncodeConfig{OutputFormat: outputFormat}); err != nil {
		t.Fatalf("Error writing original image: %s", err)
	}

	encoder, err := NewImageEncoder(imageToEncode, iConfig)
	if err != nil {
		t.Fatalf("Error creating image encoder: %s", err)
	}
	if err = encoder.EncodeMessage(message); err != nil {
		t.Fatalf("Error encoding message: %s", err)
	}
	var encodedFile bytes.Buffer
	if err = encoder.WriteEncodedImage(&encodedFile); err != nil {
		t.Fatalf("Error writing encoded image: %s", err)
	}

	original, _, err := DecodeImage(&originalFile)
	if err != nil {
		t.Fatalf("Error reading original image: %s", err)
	}
	modified, format, err := DecodeImage(&encodedFile)
	if err != nil {
		t.Fatalf("Error reading encoded image: %s", err)
	}
	if format != outputFormat {
		t.Errorf("Expected encoded image in %s format, got %s", outputFormat, format)
	}

	decoder, err := NewImageDecoder(original, modified)
	if err != nil {
		t.Fatalf("Error creating image decoder: %s", err)
	}
	decoded, err := decoder.DecodeMessage(config.ImageDecodeConfig{MessageLength: len([]rune(message))})
	if err != nil {
		t.Fatalf("Error decoding message: %s", err)
	}
	if decoded != message {
		t.Errorf("Decoded message does not match encoded message using %s with %s pixels", outputFormat, getOpaquenessLabel(randomizePixelOpaqueness))
	}
}

func TestDecodeTrailingNulls(t *testing.T) {
	img, _ := generateImage(10, 10, false)
	encoder, err := NewImageEncoder(img, config.ImageEncodeConfig{})
	if err != nil {
		t.Fatalf("Error creating image encoder: %s", err)
	}
	if err = encoder.EncodeMessage("hidden"); err != nil {
		t.Fatalf("Error encoding message: %s", err)
	}

	decoder, err := NewImageDecoder(img, encoder.EncodedImage())
	if err != nil {
		t.Fatalf("Error creating image decoder: %s", err)
	}

	trimmed, err := decoder.DecodeMessage(config.ImageDecodeConfig{})
	if err != nil || trimmed != "hidden" {
		t.Errorf("Expected %q, got %q (%v)", "hidden", trimmed, err)
	}
	if stats := decoder.Stats(); stats.DecodedChars != 6 || stats.TrimmedNulls != 31 {
		t.Errorf("Expected 6 decoded characters and 31 trimmed nulls, got %d and %d", stats.DecodedChars, stats.TrimmedNulls)
	}

	full, err := decoder.DecodeMessage(config.ImageDecodeConfig{KeepTrailingNulls: true})
	if err != nil {
		t.Fatalf("Error decoding message: %s", err)
	}
	// 100 pixels carry 300 bits, which is 37 characters
	if len(full) != 37 || full[:6] != "hidden" {
		t.Errorf("Expected 37 characters starting with the message, got %q", full)
	}
}

func TestDecoderRejectsMismatchedImages(t *testing.T) {
	original, _ := generateImage(10, 10, false)
	modified, _ := generateImage(10, 11, false)
	if _, err := NewImageDecoder(original, modified); !errors.Is(err, steg.ErrDimensionMismatch) {
		t.Errorf("Expected dimension mismatch error, got %v", err)
	}
}

func TestDecodeRejectsNegativeLength(t *testing.T) {
	img, _ := generateImage(4, 4, false)
	decoder, err := NewImageDecoder(img, img)
	if err != nil {
		t.Fatalf("Error creating image decoder: %s", err)
	}
	if _, err = decoder.DecodeMessage(config.ImageDecodeConfig{MessageLength: -1}); !errors.Is(err, steg.ErrInvalidLength) {
		t.Errorf("Expected invalid length error, got %v", err)
	}
}
