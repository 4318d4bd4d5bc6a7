package steg

import (
	"diffsteg/pkg/bitcodec"
	"diffsteg/pkg/pixel"
	"errors"
	"fmt"
)

var (
	ErrCapacityExceeded   = errors.New("message does not fit in the supplied pixels")
	ErrDimensionMismatch  = errors.New("original and modified pixel buffers differ in size")
	ErrInvalidLength      = errors.New("message length cannot be negative")
	ErrMalformedBuffer    = pixel.ErrMalformedBuffer
	ErrNonLatin1Character = bitcodec.ErrNonLatin1Character
)

// CapacityExceededError reports how many carrier slots a message needed and how many the buffer had
type CapacityExceededError struct {
	Required, Available int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("message needs %d carrier channels but only %d are available", e.Required, e.Available)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

type DimensionMismatchError struct {
	OriginalLen, ModifiedLen int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("original buffer has %d channels, modified buffer has %d", e.OriginalLen, e.ModifiedLen)
}

func (e *DimensionMismatchError) Unwrap() error {
	return ErrDimensionMismatch
}
