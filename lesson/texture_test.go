package lesson

import (
	"image"
	"image/color"
	"image/png"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoiseImage(t *testing.T) {
	pix := NoiseImage(32, 16, 0)
	require.Len(t, pix, 32*16*4)

	var lo, hi uint8 = 255, 0
	for i := 0; i < len(pix); i += 4 {
		assert.Equal(t, pix[i], pix[i+1])
		assert.Equal(t, pix[i], pix[i+2])
		assert.Equal(t, uint8(255), pix[i+3])
		if pix[i] < lo {
			lo = pix[i]
		}
		if pix[i] > hi {
			hi = pix[i]
		}
	}
	assert.True(t, hi > lo, "noise should not be flat")

	assert.Equal(t, pix, NoiseImage(32, 16, 0), "same seed, same image")
	assert.NotEqual(t, pix, NoiseImage(32, 16, 7))
}

func TestFractalRange(t *testing.T) {
	f := newFractal(3)
	for x := -5.0; x < 5; x += 0.37 {
		for y := -5.0; y < 5; y += 0.41 {
			v := f.Eval2(x, y)
			assert.True(t, v >= 0 && v <= 1, "%v", v)
		}
	}
}

func TestFlipRows(t *testing.T) {
	pix := []uint8{
		1, 1,
		2, 2,
		3, 3,
	}
	flipRows(pix, 2)
	assert.Equal(t, []uint8{3, 3, 2, 2, 1, 1}, pix)

	even := []uint8{1, 2}
	flipRows(even, 1)
	assert.Equal(t, []uint8{2, 1}, even)
}

func TestLoadImage(t *testing.T) {
	dir, err := ioutil.TempDir("", "lesson")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	img.Set(0, 1, color.NRGBA{0, 0, 255, 255})
	p := filepath.Join(dir, "t.png")
	f, err := os.Create(p)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	pix, rect, err := loadImage(p)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), rect)
	// bottom row first
	assert.Equal(t, []uint8{0, 0, 255, 255}, pix[0:4])
	assert.Equal(t, []uint8{255, 0, 0, 255}, pix[8:12])

	_, _, err = loadImage(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}
