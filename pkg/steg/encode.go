// Package steg hides text in pixel data by nudging color channels by one unit, and recovers it by diffing the
// modified pixels against the originals.
//
// Every character of the message is written as 8 bits, most significant bit first. Bits are laid over the red, green
// and blue channels of each pixel in order; alpha is never touched. A 1 bit changes its channel by one (up, or down
// when the channel is already 255), a 0 bit leaves it alone. Recovery needs the untouched original, since a bit is
// simply whether the two channels differ.
package steg

import (
	"diffsteg/pkg/bitcodec"
	"diffsteg/pkg/pixel"
)

// Encode returns a copy of pixels with message hidden in it. pixels is never modified.
//
// By default bits that do not fit in the image are dropped. WithCapacityPolicy(CapacityFailFast) turns that into a
// CapacityExceededError.
func Encode(pixels pixel.Buffer, message string, opts ...Option) (pixel.Buffer, error) {
	o := newEncodeOptions(opts)

	if err := pixels.Validate(); err != nil {
		return nil, err
	}
	bits, err := bitcodec.TextToBinary(message)
	if err != nil {
		return nil, err
	}

	availableSlots := pixels.CarrierSlots()
	if len(bits) > availableSlots {
		if o.capacityPolicy == CapacityFailFast {
			return nil, &CapacityExceededError{Required: len(bits), Available: availableSlots}
		}
		bits = bits[:availableSlots]
	}

	encoded := pixels.Clone()
	for slot, bit := range bits {
		if bit == 1 {
			nudge(encoded, encoded.SlotOffset(slot))
		}
	}
	return encoded, nil
}

// Capacity is the number of whole characters that fit in pixels
func Capacity(pixels pixel.Buffer) int {
	return pixels.CarrierSlots() / bitcodec.BitsPerChar
}

// nudge changes a channel by exactly one unit without leaving [0,255]
func nudge(pixels pixel.Buffer, offset int) {
	if pixels[offset] == 255 {
		pixels[offset]--
	} else {
		pixels[offset]++
	}
}
