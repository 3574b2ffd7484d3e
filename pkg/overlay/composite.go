package overlay

import (
	"image"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

var ErrDimensionMismatch = errors.New("image and mask dimensions differ")
var ErrInvalidAlpha = errors.New("alpha must be within [0, 1]")

// Composite blends table colors over img wherever mask carries a mapped
// label: out = (1-alpha)*orig + alpha*color, per channel. Pixels with an
// unmapped label pass through byte-exact. The inputs are left untouched;
// the result is a fresh image.
func Composite(img image.Image, mask *image.Gray, table Table, alpha float64) (*image.NRGBA, error) {
	if alpha < 0 || alpha > 1 {
		return nil, errors.Wrapf(ErrInvalidAlpha, "got %v", alpha)
	}

	ib, mb := img.Bounds(), mask.Bounds()
	if ib.Dx() != mb.Dx() || ib.Dy() != mb.Dy() {
		return nil, errors.Wrapf(ErrDimensionMismatch,
			"image %dx%d, mask %dx%d", ib.Dx(), ib.Dy(), mb.Dx(), mb.Dy())
	}

	out := imaging.Clone(img)
	w, h := ib.Dx(), ib.Dy()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			tint, ok := table[mask.GrayAt(mb.Min.X+x, mb.Min.Y+y).Y]
			if !ok {
				continue
			}
			i := y*out.Stride + x*4
			out.Pix[i+0] = blend(out.Pix[i+0], tint.R, alpha)
			out.Pix[i+1] = blend(out.Pix[i+1], tint.G, alpha)
			out.Pix[i+2] = blend(out.Pix[i+2], tint.B, alpha)
		}
	}

	return out, nil
}

func blend(orig, tint uint8, alpha float64) uint8 {
	v := math.Round((1-alpha)*float64(orig) + alpha*float64(tint))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// ToGray reduces a decoded mask file to its 8-bit label plane.
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}

	b := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
