package pixel

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotOffsetSkipsAlpha(t *testing.T) {
	buf := make(Buffer, 3*ChannelsPerPixel)
	expected := []int{0, 1, 2, 4, 5, 6, 8, 9, 10}
	require.Equal(t, len(expected), buf.CarrierSlots())
	for slot, offset := range expected {
		assert.Equal(t, offset, buf.SlotOffset(slot), "slot %d", slot)
		assert.NotEqual(t, int(Alpha), buf.SlotOffset(slot)%ChannelsPerPixel)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		buf     Buffer
		wantErr bool
	}{
		{"empty", Buffer{}, false},
		{"nil", nil, false},
		{"one pixel", Buffer{1, 2, 3, 4}, false},
		{"partial pixel", Buffer{1, 2, 3, 4, 5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.buf.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrMalformedBuffer))
		})
	}
}

func TestNRGBAConversion(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(2, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 40})

	buf := FromNRGBA(img)
	assert.Equal(t, 6, buf.Pixels())
	assert.Equal(t, uint8(30), buf.At(5, Blue))
	assert.Equal(t, uint8(40), buf.At(5, Alpha))

	back, err := buf.Clone().ToNRGBA(3, 2)
	require.NoError(t, err)
	assert.Equal(t, img.NRGBAAt(2, 1), back.NRGBAAt(2, 1))

	_, err = buf.ToNRGBA(2, 2)
	assert.ErrorIs(t, err, ErrMalformedBuffer)
}

func TestFromNRGBAWithStridePadding(t *testing.T) {
	parent := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	parent.SetNRGBA(1, 1, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	parent.SetNRGBA(2, 2, color.NRGBA{R: 4, G: 5, B: 6, A: 255})
	sub := parent.SubImage(image.Rect(1, 1, 3, 3)).(*image.NRGBA)

	buf := FromNRGBA(sub)
	require.Len(t, buf, 4*ChannelsPerPixel)
	assert.Equal(t, Buffer{1, 2, 3, 255}, buf[:4])
	assert.Equal(t, Buffer{4, 5, 6, 255}, buf[12:16])
}

func TestCloneDoesNotAlias(t *testing.T) {
	buf := Buffer{1, 2, 3, 4}
	clone := buf.Clone()
	clone[0] = 99
	assert.Equal(t, uint8(1), buf[0])
}
