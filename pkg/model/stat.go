package model

import (
	"time"
)

// EncodeStats records how long each phase of an encode took and how much of the message made it into the image
type EncodeStats struct {
	Setup               time.Duration `json:"setup"`
	DataEncoding        time.Duration `json:"data_encoding"`
	OutputImageEncoding time.Duration `json:"output_image_encoding"`
	MessageChars        int           `json:"message_chars"`
	EncodedChars        int           `json:"encoded_chars"`
}

// Truncated reports whether characters were dropped because the image was too small
func (s EncodeStats) Truncated() bool {
	return s.EncodedChars < s.MessageChars
}

type DecodeStats struct {
	DataDecoding time.Duration `json:"data_decoding"`
	DecodedChars int           `json:"decoded_chars"`
	TrimmedNulls int           `json:"trimmed_nulls"`
}
