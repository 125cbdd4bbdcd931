// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Aspect ratio bounds (long side / short side) of documents we accept as
// "document-like". ID-1 cards are 1.586, passport data pages about 1.42.
const (
	minDocumentAspect = 1.3
	maxDocumentAspect = 1.75
)

// sampleSide is the target number of samples along the longest side when
// measuring sharpness and brightness.
const sampleSide = 512

// imageStats are the locally computed measures of a decoded image.
type imageStats struct {
	Width      int
	Height     int
	Sharpness  float64 // variance of the Laplacian over the luminance
	Brightness float64 // mean luminance, 0..255
}

// AspectRatio returns long side over short side, 0 for an empty image.
func (s imageStats) AspectRatio() float64 {
	long, short := s.Width, s.Height
	if short > long {
		long, short = short, long
	}
	if short == 0 {
		return 0
	}
	return float64(long) / float64(short)
}

// DocumentLike reports whether the proportions match a card or passport page.
func (s imageStats) DocumentLike() bool {
	ratio := s.AspectRatio()
	return ratio >= minDocumentAspect && ratio <= maxDocumentAspect
}

// decodeImage decodes data in any registered format.
func decodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedImage, err)
	}
	return img, nil
}

// decodeDimensions reads only the image header.
func decodeDimensions(data []byte) (int, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrUnsupportedImage, err)
	}
	return cfg.Width, cfg.Height, nil
}

// measure computes sharpness and brightness on a regular grid of samples so
// that large photos cost the same as small scans.
func measure(img image.Image) imageStats {
	b := img.Bounds()
	stats := imageStats{Width: b.Dx(), Height: b.Dy()}
	if stats.Width == 0 || stats.Height == 0 {
		return stats
	}

	step := max(1, max(stats.Width, stats.Height)/sampleSide)
	cols := (stats.Width + step - 1) / step
	rows := (stats.Height + step - 1) / step

	lum := make([]float64, cols*rows)
	var total float64
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g := color.GrayModel.Convert(img.At(b.Min.X+c*step, b.Min.Y+r*step)).(color.Gray)
			v := float64(g.Y)
			lum[r*cols+c] = v
			total += v
		}
	}
	stats.Brightness = total / float64(len(lum))

	if rows < 3 || cols < 3 {
		return stats
	}

	var sum, sumSq float64
	n := 0
	for r := 1; r < rows-1; r++ {
		for c := 1; c < cols-1; c++ {
			i := r*cols + c
			lap := lum[i-cols] + lum[i+cols] + lum[i-1] + lum[i+1] - 4*lum[i]
			sum += lap
			sumSq += lap * lap
			n++
		}
	}
	mean := sum / float64(n)
	stats.Sharpness = sumSq/float64(n) - mean*mean

	return stats
}

// sniffContentType returns the MIME type of data, falling back to
// application/octet-stream.
func sniffContentType(data []byte) string {
	ct := http.DetectContentType(data)
	if ct == "application/octet-stream" && len(data) > 4 && (bytes.HasPrefix(data, []byte("II*\x00")) || bytes.HasPrefix(data, []byte("MM\x00*"))) {
		return "image/tiff"
	}
	return ct
}
