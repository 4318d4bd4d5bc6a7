package steg

import (
	"diffsteg/pkg/bitcodec"
	"diffsteg/pkg/pixel"
	"fmt"
	"strings"
)

// Decode recovers the text hidden in modified by comparing it with original. The whole image is decoded, so the
// result is as long as the image allows: characters past the hidden message are usually NUL and carry no meaning.
func Decode(original, modified pixel.Buffer) (string, error) {
	if err := checkPair(original, modified); err != nil {
		return "", err
	}
	return bitcodec.BinaryToText(diff(original, modified, original.CarrierSlots())), nil
}

// DecodeLength recovers exactly length characters, reading only the carrier channels they occupy
func DecodeLength(original, modified pixel.Buffer, length int) (string, error) {
	if err := checkPair(original, modified); err != nil {
		return "", err
	}

	if length < 0 {
		return "", fmt.Errorf("length %d: %w", length, ErrInvalidLength)
	}
	requiredSlots := length * bitcodec.BitsPerChar
	if requiredSlots > original.CarrierSlots() {
		return "", &CapacityExceededError{Required: requiredSlots, Available: original.CarrierSlots()}
	}
	return bitcodec.BinaryToText(diff(original, modified, requiredSlots)), nil
}

// TrimTrailingNulls removes the NUL characters a full image decode leaves after the message
func TrimTrailingNulls(decoded string) string {
	return strings.TrimRight(decoded, "\x00")
}

func checkPair(original, modified pixel.Buffer) error {
	if len(original) != len(modified) {
		return &DimensionMismatchError{OriginalLen: len(original), ModifiedLen: len(modified)}
	}
	if err := original.Validate(); err != nil {
		return err
	}
	return nil
}

func diff(original, modified pixel.Buffer, slots int) bitcodec.Stream {
	stream := make(bitcodec.Stream, slots)
	for slot := range stream {
		offset := original.SlotOffset(slot)
		if original[offset] != modified[offset] {
			stream[slot] = 1
		}
	}
	return stream
}
