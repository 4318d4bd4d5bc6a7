package image

import (
	"diffsteg/pkg/config"
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"testing"
)

const testImageSize = 300

var outputFormats = []string{config.OutputFormatPNG, config.OutputFormatBMP, config.OutputFormatTIFF}

type testFunc func(t *testing.T, outputFormat string, randomizePixelOpaqueness bool)

func runImageTestsWithAllFormatsAndOpaquenessSettings(t *testing.T, testFunc testFunc) {
	for _, outputFormat := range outputFormats {
		outputFormatCopy := outputFormat
		t.Run(fmt.Sprintf("format-%s", outputFormat), func(t *testing.T) {
			t.Parallel()
			t.Run("opaque", func(t *testing.T) {
				t.Parallel()
				testFunc(t, outputFormatCopy, false)
			})
			t.Run("non-opaque", func(t *testing.T) {
				t.Parallel()
				testFunc(t, outputFormatCopy, true)
			})
		})
	}
}

func generateImage(width, height int, randomizePixelOpaqueness bool) (img *image.NRGBA, opaquePixels int) {
	img = image.NewNRGBA(image.Rectangle{Min: image.Point{}, Max: image.Point{X: width, Y: height}})
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if randomizePixelOpaqueness && rand.Int()%(rand.Int()%4+1) == 0 {
				img.SetNRGBA(x, y, color.NRGBA{R: randUint8(), G: randUint8(), B: randUint8(), A: randUint8()})
			} else {
				opaquePixels++
				img.SetNRGBA(x, y, color.NRGBA{R: randUint8(), G: randUint8(), B: randUint8(), A: 255})
			}
		}
	}
	return img, opaquePixels
}

func randUint8() uint8 {
	return uint8(rand.Intn(256))
}

func calculateCharsThatFitInImage(img *image.NRGBA) int {
	return img.Rect.Dx() * img.Rect.Dy() * 3 / 8
}

func getOpaquenessLabel(randomizeOpaqueness bool) string {
	if randomizeOpaqueness {
		return "non-opaque"
	} else {
		return "opaque"
	}
}
