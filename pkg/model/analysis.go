package model

import (
	"encoding/json"
	"math"
)

// Capacity describes how much text an image can carry
type Capacity struct {
	Width        int `json:"width"`
	Height       int `json:"height"`
	Channels     int `json:"channels"`
	CarrierSlots int `json:"carrier_slots"`
	Bytes        int `json:"bytes"`
	Characters   int `json:"characters"`
}

// Comparison quantifies the distortion between an original image and its encoded counterpart
type Comparison struct {
	MSE              float64 `json:"mse"`
	PSNR             float64 `json:"psnr"`
	ChangedChannels  int     `json:"changed_channels"`
	TotalChannels    int     `json:"total_channels"`
	ChangePercentage float64 `json:"change_percentage"`
}

// Identical reports whether no channel differs, in which case PSNR is infinite
func (c Comparison) Identical() bool {
	return c.ChangedChannels == 0
}

// MarshalJSON encodes an infinite PSNR as null, since JSON has no representation for it
func (c Comparison) MarshalJSON() ([]byte, error) {
	type comparison Comparison
	var psnr *float64
	if !math.IsInf(c.PSNR, 0) {
		psnr = &c.PSNR
	}
	return json.Marshal(struct {
		comparison
		PSNR *float64 `json:"psnr"`
	}{comparison: comparison(c), PSNR: psnr})
}
