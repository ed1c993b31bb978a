package lesson

import (
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	opensimplex "github.com/ojrac/opensimplex-go"
	"github.com/pkg/errors"
)

const (
	noiseSize  = 256
	noiseScale = 1.0 / 48
)

// fractal sums octaves of simplex noise and normalizes the result to [0, 1].
type fractal struct {
	sim         opensimplex.Noise
	octaves     int
	persistence float64
	lacunarity  float64
}

func newFractal(seed int64) *fractal {
	return &fractal{
		sim:         opensimplex.New(seed),
		octaves:     4,
		persistence: 0.5,
		lacunarity:  2,
	}
}

func (f *fractal) Eval2(x, y float64) float64 {
	var (
		freq  = 1.0
		amp   = 1.0
		max   = 1.0
		total = f.sim.Eval2(x, y)
	)
	for i := 0; i < f.octaves; i++ {
		freq *= f.lacunarity
		amp *= f.persistence
		max += amp
		total += f.sim.Eval2(x*freq, y*freq) * amp
	}
	v := (1 + total/max) / 2
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// NoiseImage returns w*h opaque grey RGBA pixels of fractal noise.
func NoiseImage(w, h int, seed int64) []uint8 {
	f := newFractal(seed)
	pix := make([]uint8, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(f.Eval2(float64(x)*noiseScale, float64(y)*noiseScale) * 255)
			i := (y*w + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, 255
		}
	}
	return pix
}

// flipRows turns top-down image rows into the bottom-up order GL expects.
func flipRows(pix []uint8, stride int) {
	rows := len(pix) / stride
	tmp := make([]uint8, stride)
	for top, bottom := 0, rows-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := pix[top*stride : (top+1)*stride]
		b := pix[bottom*stride : (bottom+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}

func loadImage(fname string) ([]uint8, image.Rectangle, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, image.Rectangle{}, errors.Wrap(err, "open texture")
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, image.Rectangle{}, errors.Wrapf(err, "decode texture %q", fname)
	}
	rgba := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	flipRows(rgba.Pix, rgba.Stride)
	return rgba.Pix, rgba.Bounds(), nil
}
