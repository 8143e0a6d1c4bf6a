package image

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLayout(t *testing.T) {
	tests := []struct {
		format   Format
		channels int
		name     string
	}{
		{FormatGray8, 1, "Gray8"},
		{FormatGrayAlpha8, 2, "GrayAlpha8"},
		{FormatBGR8, 3, "BGR8"},
		{FormatBGRA8, 4, "BGRA8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.format.IsValid())
			assert.Equal(t, tt.channels, tt.format.Channels())
			assert.Equal(t, tt.name, tt.format.String())
			assert.Equal(t, tt.channels*10, tt.format.RowBytes(10))
			assert.Equal(t, tt.channels*50, tt.format.ImageBytes(10, 5))
		})
	}
}

func TestFormatForChannels(t *testing.T) {
	for channels := 1; channels <= 4; channels++ {
		f, ok := FormatForChannels(channels)
		assert.True(t, ok)
		assert.Equal(t, channels, f.Channels())
	}
	for _, channels := range []int{-1, 0, 5, 16} {
		_, ok := FormatForChannels(channels)
		assert.False(t, ok, "channels %d", channels)
	}
}

func TestInvalidFormat(t *testing.T) {
	f := Format(42)
	assert.False(t, f.IsValid())
	assert.Equal(t, "Unknown", f.String())
	assert.Equal(t, 0, f.Channels())
}
