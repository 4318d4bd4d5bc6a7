package image

import (
	"diffsteg/pkg/bitcodec"
	"diffsteg/pkg/config"
	"diffsteg/pkg/model"
	"diffsteg/pkg/pixel"
	"diffsteg/pkg/steg"
	"errors"
	"image"
	"io"
	"time"
)

var (
	ErrNothingEncoded = errors.New("no message has been encoded yet")
)

// Encoder hides messages in a source image. The source image is never modified, every call to EncodeMessage starts
// from the original pixels
type Encoder struct {
	image   *image.NRGBA
	encoded *image.NRGBA
	config  config.ImageEncodeConfig
	stats   model.EncodeStats
}

func NewImageEncoder(image *image.NRGBA, iConfig config.ImageEncodeConfig) (*Encoder, error) {
	setupStart := time.Now()
	iConfig.PopulateUnsetConfigVars()
	if err := iConfig.Validate(); err != nil {
		return nil, err
	}

	enc := &Encoder{
		image:  image,
		config: iConfig,
	}
	enc.stats.Setup = time.Since(setupStart)
	return enc, nil
}

func (e *Encoder) Stats() model.EncodeStats {
	return e.stats
}

func (e *Encoder) EncodeMessage(message string) error {
	encodeStart := time.Now()
	defer func() {
		e.stats.DataEncoding = time.Since(encodeStart)
	}()

	pixels := pixel.FromNRGBA(e.image)
	encodedPixels, err := steg.Encode(pixels, message, steg.WithCapacityPolicy(e.config.CapacityPolicy))
	if err != nil {
		return err
	}
	e.stats.MessageChars = bitcodec.CharCount(message)
	e.stats.EncodedChars = min(e.stats.MessageChars, steg.Capacity(pixels))

	e.encoded, err = encodedPixels.ToNRGBA(e.image.Rect.Dx(), e.image.Rect.Dy())
	return err
}

// EncodedImage returns the image produced by the last successful EncodeMessage, or nil
func (e *Encoder) EncodedImage() *image.NRGBA {
	return e.encoded
}

func (e *Encoder) WriteEncodedImage(output io.Writer) error {
	if e.encoded == nil {
		return ErrNothingEncoded
	}

	imageEncodeStart := time.Now()
	defer func() {
		e.stats.OutputImageEncoding = time.Since(imageEncodeStart)
	}()
	return WriteImage(output, e.encoded, e.config)
}
