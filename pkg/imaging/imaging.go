// Package imaging downscales uploaded images and re-encodes them as base64
// JPEG data URLs small enough to live inline in a record.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"math"
	"strings"

	"golang.org/x/image/draw"

	_ "image/gif"
	_ "image/png"
)

const dataURLPrefix = "data:image/jpeg;base64,"

var ErrNotAnImage = errors.New("unsupported image data")

// Encoder bounds an image to MaxWidth x MaxHeight, preserving aspect ratio,
// and re-encodes it as JPEG at Quality (1-100).
type Encoder struct {
	MaxWidth  int
	MaxHeight int
	Quality   int
}

func (e Encoder) Encode(r io.Reader) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}

	bounds := img.Bounds()

	width, height := fit(bounds.Dx(), bounds.Dy(), e.MaxWidth, e.MaxHeight)
	if width != bounds.Dx() || height != bounds.Dy() {
		scaled := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, draw.Src, nil)
		img = scaled
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: e.Quality}); err != nil {
		return "", err
	}

	return dataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// fit shrinks (width, height) to the bounds along the longer edge, never
// enlarging.
func fit(width, height, maxWidth, maxHeight int) (int, int) {
	if width > height {
		if width > maxWidth {
			height = int(math.Round(float64(height) * float64(maxWidth) / float64(width)))
			width = maxWidth
		}
	} else {
		if height > maxHeight {
			width = int(math.Round(float64(width) * float64(maxHeight) / float64(height)))
			height = maxHeight
		}
	}

	return width, height
}

// DataSize estimates the decoded byte size of a base64 image string, with or
// without its data URL prefix.
func DataSize(encoded string) int {
	if _, data, found := strings.Cut(encoded, ","); found {
		encoded = data
	}

	return int(math.Ceil(float64(len(encoded)) * 3 / 4))
}

// WithinLimit reports whether the aggregate size of the embedded images stays
// under maxMB. Enforcement is the caller's job; the store never checks.
func WithinLimit(images []string, maxMB int) bool {
	var total int
	for _, img := range images {
		total += DataSize(img)
	}

	return total <= maxMB*1024*1024
}
