package shadow

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func TestDepthImageFlipsRows(t *testing.T) {
	// Bottom row first: (0, 0.5), then top row (1, 2).
	img, err := DepthImage(2, []float32{0, 0.5, 1, 2})
	require.NoError(t, err)

	assert.Equal(t, uint8(255), img.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(255), img.GrayAt(1, 0).Y)
	assert.Equal(t, uint8(0), img.GrayAt(0, 1).Y)
	assert.Equal(t, uint8(128), img.GrayAt(1, 1).Y)
}

func TestDepthImageSizeMismatch(t *testing.T) {
	_, err := DepthImage(4, make([]float32, 15))
	assert.Error(t, err)

	_, err = DepthImage(0, nil)
	assert.Error(t, err)
}

func TestWriteDepthBMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sun.bmp")
	require.NoError(t, WriteDepthBMP(path, 2, []float32{0.2, 0.4, 0.6, -1}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := bmp.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())

	gray := func(x, y int) uint8 {
		return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
	}
	assert.Equal(t, uint8(153), gray(0, 0))
	assert.Equal(t, uint8(0), gray(1, 0))
	assert.Equal(t, uint8(51), gray(0, 1))
	assert.Equal(t, uint8(102), gray(1, 1))
}
