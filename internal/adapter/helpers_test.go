package adapter

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeVisionModel is a fn-field VisionModel.
type fakeVisionModel struct {
	generateFn func(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
}

func (f *fakeVisionModel) Generate(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	return f.generateFn(ctx, prompt, image, mimeType)
}

func answer(s string) *fakeVisionModel {
	return &fakeVisionModel{generateFn: func(context.Context, string, []byte, string) (string, error) {
		return s, nil
	}}
}

func failing(err error) *fakeVisionModel {
	return &fakeVisionModel{generateFn: func(context.Context, string, []byte, string) (string, error) {
		return "", err
	}}
}

// uniformPNG encodes a w×h image of a single gray level.
func uniformPNG(t *testing.T, w, h int, level uint8) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = level
	}
	return encodePNG(t, img)
}

// checkerPNG encodes a w×h black and white checkerboard with 1px cells.
func checkerPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return encodePNG(t, img)
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
