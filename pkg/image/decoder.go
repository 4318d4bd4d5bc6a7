package image

import (
	"diffsteg/pkg/bitcodec"
	"diffsteg/pkg/config"
	"diffsteg/pkg/model"
	"diffsteg/pkg/pixel"
	"diffsteg/pkg/steg"
	"fmt"
	"image"
	"time"
)

// Decoder recovers a message by diffing an encoded image against the image it was encoded from
type Decoder struct {
	original, modified *image.NRGBA
	stats              model.DecodeStats
}

func NewImageDecoder(original, modified *image.NRGBA) (*Decoder, error) {
	if original.Rect.Size() != modified.Rect.Size() {
		return nil, fmt.Errorf("original image is %dx%d, modified image is %dx%d: %w",
			original.Rect.Dx(), original.Rect.Dy(), modified.Rect.Dx(), modified.Rect.Dy(), steg.ErrDimensionMismatch)
	}

	return &Decoder{
		original: original,
		modified: modified,
	}, nil
}

func (d *Decoder) Stats() model.DecodeStats {
	return d.stats
}

func (d *Decoder) DecodeMessage(dConfig config.ImageDecodeConfig) (string, error) {
	decodeStart := time.Now()
	defer func() {
		d.stats.DataDecoding = time.Since(decodeStart)
	}()

	original, modified := pixel.FromNRGBA(d.original), pixel.FromNRGBA(d.modified)
	if dConfig.MessageLength != 0 {
		message, err := steg.DecodeLength(original, modified, dConfig.MessageLength)
		if err != nil {
			return "", err
		}
		d.stats.DecodedChars, d.stats.TrimmedNulls = dConfig.MessageLength, 0
		return message, nil
	}

	message, err := steg.Decode(original, modified)
	if err != nil {
		return "", err
	}
	decodedChars := bitcodec.CharCount(message)
	if !dConfig.KeepTrailingNulls {
		message = steg.TrimTrailingNulls(message)
	}
	d.stats.DecodedChars = bitcodec.CharCount(message)
	d.stats.TrimmedNulls = decodedChars - d.stats.DecodedChars
	return message, nil
}
