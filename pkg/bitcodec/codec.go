// Package bitcodec converts text into the bit stream hidden in an image and back. Every character takes exactly 8
// bits, most significant bit first, so only characters with code points up to 255 are representable.
package bitcodec

import (
	"diffsteg/internal/bits"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	BitsPerChar  = 8
	maxCodePoint = 0xff
)

var (
	ErrNonLatin1Character = errors.New("character does not fit in 8 bits")
	ErrInvalidBit         = errors.New("bit stream may only contain 0 and 1")
)

type NonLatin1CharacterError struct {
	Char  rune
	Index int
}

func (e *NonLatin1CharacterError) Error() string {
	return fmt.Sprintf("character %q (U+%04X) at position %d does not fit in 8 bits", e.Char, e.Char, e.Index)
}

func (e *NonLatin1CharacterError) Unwrap() error {
	return ErrNonLatin1Character
}

// Stream holds one bit per element, each either 0 or 1
type Stream []byte

// String renders the stream as a sequence of '0' and '1' characters
func (s Stream) String() string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, bit := range s {
		sb.WriteByte('0' + bit)
	}
	return sb.String()
}

// parseStream is the inverse of Stream.String
func parseStream(rendered string) (Stream, error) {
	s := make(Stream, len(rendered))
	for i := 0; i < len(rendered); i++ {
		switch rendered[i] {
		case '0':
		case '1':
			s[i] = 1
		default:
			return nil, fmt.Errorf("%q at position %d: %w", rendered[i], i, ErrInvalidBit)
		}
	}
	return s, nil
}

// TextToBinary returns the bits of every character of text, 8 per character
func TextToBinary(text string) (Stream, error) {
	codePoints, err := latin1Bytes(text)
	if err != nil {
		return nil, err
	}

	stream := make(Stream, 0, len(codePoints)*BitsPerChar)
	br := bits.NewBitReader(codePoints)
	for br.BitsLeftToRead() > 0 {
		stream = append(stream, br.ReadBit())
	}
	return stream, nil
}

// BinaryToText maps every complete group of 8 bits back to a character. A trailing group of fewer than 8 bits is
// dropped
func BinaryToText(stream Stream) string {
	bw := bits.NewBitWriter(len(stream))
	for _, bit := range stream {
		bw.WriteBit(bit)
	}
	return fromLatin1Bytes(bw.Bytes())
}

// CharCount returns the number of characters in text, which is what the 8 bits per character rule counts
func CharCount(text string) int {
	return utf8.RuneCountInString(text)
}

func latin1Bytes(text string) ([]byte, error) {
	codePoints := make([]byte, 0, len(text))
	var idx int
	for _, r := range text {
		// invalid UTF-8 is reported as utf8.RuneError, which is out of range as well
		if r > maxCodePoint {
			return nil, &NonLatin1CharacterError{Char: r, Index: idx}
		}
		codePoints = append(codePoints, byte(r))
		idx++
	}
	return codePoints, nil
}

func fromLatin1Bytes(codePoints []byte) string {
	var sb strings.Builder
	sb.Grow(len(codePoints))
	for _, c := range codePoints {
		sb.WriteRune(rune(c))
	}
	return sb.String()
}
