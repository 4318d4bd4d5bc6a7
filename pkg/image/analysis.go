package image

import (
	"diffsteg/pkg/model"
	"diffsteg/pkg/pixel"
	"diffsteg/pkg/steg"
	"fmt"
	"image"
	"math"
)

const maxChannelValue = 255.0

func Capacity(img *image.NRGBA) model.Capacity {
	pixels := pixel.FromNRGBA(img)
	return model.Capacity{
		Width:        img.Rect.Dx(),
		Height:       img.Rect.Dy(),
		Channels:     pixel.CarrierChannels,
		CarrierSlots: pixels.CarrierSlots(),
		Bytes:        pixels.CarrierSlots() / 8,
		Characters:   steg.Capacity(pixels),
	}
}

// Compare measures how far modified has drifted from original over every channel, alpha included
func Compare(original, modified *image.NRGBA) (model.Comparison, error) {
	if original.Rect.Size() != modified.Rect.Size() {
		return model.Comparison{}, fmt.Errorf("original image is %dx%d, modified image is %dx%d: %w",
			original.Rect.Dx(), original.Rect.Dy(), modified.Rect.Dx(), modified.Rect.Dy(), steg.ErrDimensionMismatch)
	}

	originalPixels, modifiedPixels := pixel.FromNRGBA(original), pixel.FromNRGBA(modified)
	comparison := model.Comparison{TotalChannels: len(originalPixels)}
	var squaredErrorSum float64
	for i := range originalPixels {
		if delta := float64(originalPixels[i]) - float64(modifiedPixels[i]); delta != 0 {
			comparison.ChangedChannels++
			squaredErrorSum += delta * delta
		}
	}

	if comparison.TotalChannels == 0 {
		comparison.PSNR = math.Inf(1)
		return comparison, nil
	}

	comparison.MSE = squaredErrorSum / float64(comparison.TotalChannels)
	comparison.ChangePercentage = float64(comparison.ChangedChannels) / float64(comparison.TotalChannels) * 100
	if comparison.MSE == 0 {
		comparison.PSNR = math.Inf(1)
	} else {
		comparison.PSNR = 20 * math.Log10(maxChannelValue/math.Sqrt(comparison.MSE))
	}
	return comparison, nil
}
