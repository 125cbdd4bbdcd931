package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDimensions(t *testing.T) {
	w, h, err := decodeDimensions(uniformPNG(t, 320, 200, 128))

	require.NoError(t, err)
	assert.Equal(t, 320, w)
	assert.Equal(t, 200, h)
}

func TestDecodeImage_Corrupt(t *testing.T) {
	_, err := decodeImage([]byte("definitely not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	_, _, err = decodeDimensions(nil)
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestMeasure(t *testing.T) {
	tests := []struct {
		name           string
		data           func(t *testing.T) []byte
		wantSharp      bool
		wantBrightness float64
	}{
		{
			name:           "uniform mid gray",
			data:           func(t *testing.T) []byte { return uniformPNG(t, 64, 40, 128) },
			wantSharp:      false,
			wantBrightness: 128,
		},
		{
			name:           "uniform dark",
			data:           func(t *testing.T) []byte { return uniformPNG(t, 64, 40, 10) },
			wantSharp:      false,
			wantBrightness: 10,
		},
		{
			name:           "checkerboard",
			data:           func(t *testing.T) []byte { return checkerPNG(t, 64, 40) },
			wantSharp:      true,
			wantBrightness: 127.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := decodeImage(tt.data(t))
			require.NoError(t, err)

			stats := measure(img)

			assert.Equal(t, 64, stats.Width)
			assert.Equal(t, 40, stats.Height)
			assert.InDelta(t, tt.wantBrightness, stats.Brightness, 0.01)
			if tt.wantSharp {
				assert.Greater(t, stats.Sharpness, 1000.0)
			} else {
				assert.Zero(t, stats.Sharpness)
			}
		})
	}
}

func TestImageStats_DocumentLike(t *testing.T) {
	tests := []struct {
		name  string
		stats imageStats
		want  bool
	}{
		{"id card landscape", imageStats{Width: 856, Height: 540}, true},
		{"id card portrait", imageStats{Width: 540, Height: 856}, true},
		{"passport page", imageStats{Width: 1250, Height: 880}, true},
		{"square", imageStats{Width: 500, Height: 500}, false},
		{"panorama", imageStats{Width: 2000, Height: 500}, false},
		{"empty", imageStats{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stats.DocumentLike())
		})
	}
}

func TestSniffContentType(t *testing.T) {
	assert.Equal(t, "image/png", sniffContentType(uniformPNG(t, 4, 4, 0)))
	assert.Equal(t, "image/tiff", sniffContentType([]byte("II*\x00rest-of-header")))
	assert.Equal(t, "image/jpeg", sniffContentType([]byte("\xff\xd8\xff\xe0\x00\x10JFIF")))
}
