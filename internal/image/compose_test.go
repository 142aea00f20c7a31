package imagepkg_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	imagepkg "github.com/youruser/outfitapp/internal/image"
)

func TestCompose(t *testing.T) {
	t.Run("NilBackground", func(t *testing.T) {
		_, err := imagepkg.Compose(nil, nil, nil, nil)
		assert.ErrorIs(t, err, imagepkg.ErrNoBackground)
	})

	t.Run("LayerResizedToSlot", func(t *testing.T) {
		bg := solid(100, 100, grey)
		layers := []imagepkg.Layer{
			{Image: solid(10, 10, red), Slot: imagepkg.Slot{X: 20, Y: 30, Width: 40, Height: 20}},
		}
		out, err := imagepkg.Compose(bg, layers, nil, nil)
		require.NoError(t, err)

		assertPixel(t, out, 20, 30, red)
		assertPixel(t, out, 59, 49, red)
		assertPixel(t, out, 60, 30, grey)
		assertPixel(t, out, 20, 50, grey)
		assertPixel(t, out, 19, 30, grey)
	})

	t.Run("AbsentLayersSkipped", func(t *testing.T) {
		bg := solid(50, 50, grey)
		layers := []imagepkg.Layer{
			{Image: nil, Slot: imagepkg.Slot{X: 0, Y: 0, Width: 50, Height: 50}},
		}
		out, err := imagepkg.Compose(bg, layers, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, bg.Pix, out.Pix)
	})

	t.Run("BackgroundNotMutated", func(t *testing.T) {
		bg := solid(20, 20, grey)
		before := append([]uint8(nil), bg.Pix...)
		_, err := imagepkg.Compose(bg, []imagepkg.Layer{
			{Image: solid(5, 5, red), Slot: imagepkg.Slot{Width: 20, Height: 20}},
		}, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, before, bg.Pix)
	})

	t.Run("TransparentPixelsKeepBackground", func(t *testing.T) {
		bg := solid(10, 10, grey)
		icon := image.NewNRGBA(image.Rect(0, 0, 10, 10))
		icon.SetNRGBA(5, 5, red)
		out, err := imagepkg.Compose(bg, nil, &imagepkg.Placement{Image: icon}, nil)
		require.NoError(t, err)

		assertPixel(t, out, 5, 5, red)
		assertPixel(t, out, 0, 0, grey)
		assertPixel(t, out, 9, 9, grey)
	})

	t.Run("LaterPasteWins", func(t *testing.T) {
		bg := solid(200, 200, grey)
		layers := []imagepkg.Layer{
			{Image: solid(50, 50, red), Slot: imagepkg.Slot{X: 10, Y: 10, Width: 100, Height: 100}},
		}
		avatar := &imagepkg.Placement{Image: solid(100, 100, blue), Pos: image.Pt(60, 60)}
		out, err := imagepkg.Compose(bg, layers, avatar, nil)
		require.NoError(t, err)

		assertPixel(t, out, 30, 30, red)
		// overlap: avatar is pasted after the outfit layer
		assertPixel(t, out, 80, 80, blue)
		assertPixel(t, out, 150, 150, blue)
	})

	t.Run("WeaponAfterAvatar", func(t *testing.T) {
		bg := solid(100, 100, grey)
		avatar := &imagepkg.Placement{Image: solid(60, 60, blue), Pos: image.Pt(0, 0)}
		weapon := &imagepkg.Placement{Image: solid(60, 60, green), Pos: image.Pt(40, 40)}
		overlay := &imagepkg.Placement{Image: solid(10, 10, red), Pos: image.Pt(45, 45)}
		out, err := imagepkg.Compose(bg, nil, avatar, weapon, overlay)
		require.NoError(t, err)

		assertPixel(t, out, 10, 10, blue)
		assertPixel(t, out, 50, 50, red)
		assertPixel(t, out, 41, 41, green)
		assertPixel(t, out, 99, 0, grey)
	})

	t.Run("HalfTransparentBlends", func(t *testing.T) {
		bg := solid(4, 4, color.NRGBA{A: 0xff})
		half := solid(4, 4, color.NRGBA{R: 0xff, A: 0x80})
		out, err := imagepkg.Compose(bg, nil, &imagepkg.Placement{Image: half}, nil)
		require.NoError(t, err)

		got := out.NRGBAAt(1, 1)
		assert.InDelta(t, 0x80, got.R, 2)
		assert.Equal(t, uint8(0xff), got.A)
	})
}
