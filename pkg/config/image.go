package config

import (
	"diffsteg/pkg/steg"
	"errors"
	"fmt"
	"image/png"
	"strings"
)

const (
	OutputFormatPNG  = "png"
	OutputFormatBMP  = "bmp"
	OutputFormatTIFF = "tiff"
)

var (
	ErrLossyOutputFormat = errors.New("output format is lossy or unsupported, hidden bits would not survive it")

	losslessOutputFormats = map[string]struct{}{
		OutputFormatPNG:  {},
		OutputFormatBMP:  {},
		OutputFormatTIFF: {},
	}
)

type ImageEncodeConfig struct {
	CapacityPolicy      steg.CapacityPolicy
	OutputFormat        string
	PngCompressionLevel png.CompressionLevel
}

func (c *ImageEncodeConfig) PopulateUnsetConfigVars() {
	c.OutputFormat = strings.ToLower(strings.TrimPrefix(c.OutputFormat, "."))
	if c.OutputFormat == "" {
		c.OutputFormat = OutputFormatPNG
	}
	if c.OutputFormat == "tif" {
		c.OutputFormat = OutputFormatTIFF
	}
}

func (c ImageEncodeConfig) Validate() error {
	if _, found := losslessOutputFormats[c.OutputFormat]; !found {
		return fmt.Errorf("%q: %w", c.OutputFormat, ErrLossyOutputFormat)
	}
	return nil
}

type ImageDecodeConfig struct {
	// MessageLength is the number of characters to decode. Zero decodes the whole image, negative lengths are rejected
	MessageLength int
	// KeepTrailingNulls disables trimming of the NUL characters that follow the message in a whole image decode
	KeepTrailingNulls bool
}
