package imagepkg_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
)

var (
	red   = color.NRGBA{R: 0xff, A: 0xff}
	green = color.NRGBA{G: 0xff, A: 0xff}
	blue  = color.NRGBA{B: 0xff, A: 0xff}
	grey  = color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	return imaging.New(w, h, c)
}

func assertPixel(t *testing.T, img *image.NRGBA, x, y int, want color.NRGBA) {
	t.Helper()
	got := img.NRGBAAt(x, y)
	assert.InDelta(t, want.R, got.R, 2, "R at (%d,%d)", x, y)
	assert.InDelta(t, want.G, got.G, 2, "G at (%d,%d)", x, y)
	assert.InDelta(t, want.B, got.B, 2, "B at (%d,%d)", x, y)
	assert.InDelta(t, want.A, got.A, 2, "A at (%d,%d)", x, y)
}
