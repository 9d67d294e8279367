package shadow

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/bmp"
)

// DepthImage converts a square depth buffer (rows bottom to top, as GL
// returns them) into a grayscale image with the first row at the top.
// Values are clamped to [0, 1]; near is dark, far is white.
func DepthImage(resolution int32, depth []float32) (*image.Gray, error) {
	n := int(resolution)
	if n <= 0 || len(depth) != n*n {
		return nil, fmt.Errorf("depth buffer has %d values, want %dx%d", len(depth), n, n)
	}

	img := image.NewGray(image.Rect(0, 0, n, n))
	for y := 0; y < n; y++ {
		row := depth[(n-1-y)*n : (n-y)*n]
		for x, d := range row {
			img.SetGray(x, y, color.Gray{Y: uint8(clamp01(d)*255 + 0.5)})
		}
	}
	return img, nil
}

// WriteDepthBMP writes a depth buffer to path as a grayscale BMP.
func WriteDepthBMP(path string, resolution int32, depth []float32) error {
	img, err := DepthImage(resolution, depth)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := bmp.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

func clamp01(v float32) float32 {
	switch {
	case v != v || v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
