package image

import (
	"diffsteg/pkg/config"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeImage reads an image in any registered format and returns its pixels as non-premultiplied RGBA, the layout
// messages are hidden in
func DecodeImage(r io.Reader) (*image.NRGBA, string, error) {
	srcImage, format, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}
	return ToNRGBA(srcImage), format, nil
}

// ToNRGBA copies src into a new NRGBA image whose bounds start at the origin. NRGBA sources are copied verbatim so
// translucent pixels keep their exact channel values
func ToNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	if nrgba, ok := src.(*image.NRGBA); ok {
		for y := 0; y < bounds.Dy(); y++ {
			srcOffset := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(img.Pix[y*img.Stride:(y+1)*img.Stride], nrgba.Pix[srcOffset:srcOffset+img.Stride])
		}
		return img
	}

	draw.Draw(img, img.Bounds(), src, bounds.Min, draw.Src)
	return img
}

// WriteImage encodes img in the lossless format selected in iConfig
func WriteImage(w io.Writer, img image.Image, iConfig config.ImageEncodeConfig) error {
	switch iConfig.OutputFormat {
	case config.OutputFormatPNG:
		enc := png.Encoder{CompressionLevel: iConfig.PngCompressionLevel}
		return enc.Encode(w, img)
	case config.OutputFormatBMP:
		return bmp.Encode(w, img)
	case config.OutputFormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%q: %w", iConfig.OutputFormat, config.ErrLossyOutputFormat)
	}
}
