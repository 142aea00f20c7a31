package imagepkg_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	imagepkg "github.com/youruser/outfitapp/internal/image"
)

func TestEncodePNG_RoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 16), G: uint8(y * 16), B: 0x33, A: uint8(0x80 + x*7)})
		}
	}

	b, err := imagepkg.EncodePNG(src)
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	require.Equal(t, src.Bounds(), decoded.Bounds())

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			got := color.NRGBAModel.Convert(decoded.At(x, y)).(color.NRGBA)
			assert.Equal(t, src.NRGBAAt(x, y), got, "pixel (%d,%d)", x, y)
		}
	}
}

func TestGenerateQRImage(t *testing.T) {
	img, err := imagepkg.GenerateQRImage("https://example.com/outfit?uid=1", 120)
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 120, img.Bounds().Dy())

	b, err := imagepkg.GenerateQRPNG("hello", 64)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(b))
	assert.NoError(t, err)
}
