package server

import (
	"diffsteg/pkg/model"

	"github.com/dustin/go-humanize"
)

type humanizedEncodeStats struct {
	model.EncodeStats
	SetupHuman               string `json:"setup_human"`
	DataEncodingHuman        string `json:"data_encoding_human"`
	OutputImageEncodingHuman string `json:"output_image_encoding_human"`
	EncodedCharsHuman        string `json:"encoded_chars_human"`
	Truncated                bool   `json:"truncated"`
}

type humanizedDecodeStats struct {
	model.DecodeStats
	DataDecodingHuman string `json:"data_decoding_human"`
	DecodedCharsHuman string `json:"decoded_chars_human"`
}

func toHumanizedEncodeStats(encodeStats model.EncodeStats) humanizedEncodeStats {
	return humanizedEncodeStats{
		EncodeStats:              encodeStats,
		SetupHuman:               encodeStats.Setup.String(),
		DataEncodingHuman:        encodeStats.DataEncoding.String(),
		OutputImageEncodingHuman: encodeStats.OutputImageEncoding.String(),
		EncodedCharsHuman:        humanize.Comma(int64(encodeStats.EncodedChars)),
		Truncated:                encodeStats.Truncated(),
	}
}

func toHumanizedDecodeStats(decodeStats model.DecodeStats) humanizedDecodeStats {
	return humanizedDecodeStats{
		DecodeStats:       decodeStats,
		DataDecodingHuman: decodeStats.DataDecoding.String(),
		DecodedCharsHuman: humanize.Comma(int64(decodeStats.DecodedChars)),
	}
}
