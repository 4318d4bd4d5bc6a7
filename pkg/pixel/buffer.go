// Package pixel models raw RGBA pixel data as handed over by image decoders: four channel values per pixel, in
// row-major order, without any stride padding.
package pixel

import (
	"errors"
	"fmt"
	"image"
)

// Channel is the position of a channel inside an RGBA quadruple
type Channel int

const (
	Red Channel = iota
	Green
	Blue
	Alpha
)

const (
	// ChannelsPerPixel is the size of an RGBA quadruple
	ChannelsPerPixel = 4
	// CarrierChannels is the number of channels per pixel that can carry data. Alpha is never touched
	CarrierChannels = 3
)

var (
	ErrMalformedBuffer = errors.New("pixel buffer length is not a multiple of 4")
)

// Buffer is a sequence of RGBA quadruples
type Buffer []uint8

// FromNRGBA returns the pixels of img as a Buffer. The returned buffer shares memory with img when img has no
// stride padding, otherwise the rows are copied
func FromNRGBA(img *image.NRGBA) Buffer {
	width, height := img.Rect.Dx(), img.Rect.Dy()
	rowLen := width * ChannelsPerPixel
	if img.Stride == rowLen {
		return img.Pix[:rowLen*height]
	}

	buf := make(Buffer, 0, rowLen*height)
	for y := 0; y < height; y++ {
		offset := y * img.Stride
		buf = append(buf, img.Pix[offset:offset+rowLen]...)
	}
	return buf
}

// ToNRGBA wraps the buffer in an image of the given dimensions without copying
func (b Buffer) ToNRGBA(width, height int) (*image.NRGBA, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if width < 0 || height < 0 || width*height != b.Pixels() {
		return nil, fmt.Errorf("%dx%d image cannot hold %d pixels: %w", width, height, b.Pixels(), ErrMalformedBuffer)
	}
	return &image.NRGBA{
		Pix:    b,
		Stride: width * ChannelsPerPixel,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

func (b Buffer) Validate() error {
	if len(b)%ChannelsPerPixel != 0 {
		return fmt.Errorf("buffer of length %d: %w", len(b), ErrMalformedBuffer)
	}
	return nil
}

// Pixels is the number of RGBA quadruples in the buffer
func (b Buffer) Pixels() int {
	return len(b) / ChannelsPerPixel
}

// CarrierSlots is the number of channels that can carry one hidden bit each
func (b Buffer) CarrierSlots() int {
	return b.Pixels() * CarrierChannels
}

// Offset returns the index of channel c of the given pixel
func (b Buffer) Offset(pixel int, c Channel) int {
	return pixel*ChannelsPerPixel + int(c)
}

// SlotOffset maps the n-th carrier slot to its index in the buffer, skipping alpha channels
func (b Buffer) SlotOffset(slot int) int {
	return b.Offset(slot/CarrierChannels, Channel(slot%CarrierChannels))
}

func (b Buffer) At(pixel int, c Channel) uint8 {
	return b[b.Offset(pixel, c)]
}

func (b Buffer) Clone() Buffer {
	clone := make(Buffer, len(b))
	copy(clone, b)
	return clone
}
