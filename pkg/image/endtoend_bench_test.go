package image

import (
	"bytes"
	"diffsteg/pkg/config"
	"diffsteg/test"
	"fmt"
	"image/png"
	"testing"
)

const benchImageSize = 1000

func BenchmarkFullEncodeSpeed(b *testing.B) {
	img, _ := generateImage(benchImageSize, benchImageSize, false)
	message := test.GenerateRandomLatin1Message(calculateCharsThatFitInImage(img))
	for _, outputFormat := range outputFormats {
		encoder, err := NewImageEncoder(img, config.ImageEncodeConfig{
			OutputFormat:        outputFormat,
			PngCompressionLevel: png.NoCompression,
		})
		if err != nil {
			b.Fatalf("Error creating image encoder")
		}
		b.Run(fmt.Sprintf("format=%s", outputFormat), func(b *testing.B) {
			b.SetBytes(int64(len(img.Pix)))
			for i := 0; i < b.N; i++ {
				_ = encoder.EncodeMessage(message)
				_ = encoder.WriteEncodedImage(&bytes.Buffer{})
			}
		})
	}
}

func BenchmarkFullDecodeSpeed(b *testing.B) {
	img, _ := generateImage(benchImageSize, benchImageSize, false)
	encoder, err := NewImageEncoder(img, config.ImageEncodeConfig{})
	if err != nil {
		b.Fatalf("Error creating image encoder")
	}
	if err = encoder.EncodeMessage(test.GenerateRandomLatin1Message(calculateCharsThatFitInImage(img))); err != nil {
		b.Fatalf("Error encoding message for decode benchmark: %s", err)
	}

	b.SetBytes(int64(len(img.Pix)))
	for i := 0; i < b.N; i++ {
		decoder, err := NewImageDecoder(img, encoder.EncodedImage())
		if err != nil {
			b.Fatalf("Error creating image decoder for benchmark")
		}
		if _, err = decoder.DecodeMessage(config.ImageDecodeConfig{}); err != nil {
			b.Fatalf("Error in decoding benchmark: %s", err)
		}
	}
}
