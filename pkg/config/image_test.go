package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		format   string
		expected string
		wantErr  bool
	}{
		{format: "", expected: OutputFormatPNG},
		{format: "PNG", expected: OutputFormatPNG},
		{format: ".bmp", expected: OutputFormatBMP},
		{format: "tif", expected: OutputFormatTIFF},
		{format: "jpeg", expected: "jpeg", wantErr: true},
		{format: "webp", expected: "webp", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			c := ImageEncodeConfig{OutputFormat: tt.format}
			c.PopulateUnsetConfigVars()
			assert.Equal(t, tt.expected, c.OutputFormat)
			if tt.wantErr {
				assert.ErrorIs(t, c.Validate(), ErrLossyOutputFormat)
			} else {
				assert.NoError(t, c.Validate())
			}
		})
	}
}
