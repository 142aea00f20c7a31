package outfit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	imagepkg "github.com/youruser/outfitapp/internal/image"
	"github.com/youruser/outfitapp/internal/outfit"
)

func TestDefaultSlots(t *testing.T) {
	want := []imagepkg.Slot{
		{X: 728, Y: 170, Width: 170, Height: 170},
		{X: 122, Y: 192, Width: 170, Height: 170},
		{X: 839, Y: 362, Width: 170, Height: 170},
		{X: 28, Y: 380, Width: 170, Height: 170},
		{X: 38, Y: 575, Width: 170, Height: 170},
		{X: 164, Y: 752, Width: 170, Height: 170},
		{X: 720, Y: 683, Width: 140, Height: 140},
	}
	assert.Equal(t, want, outfit.DefaultSlots())
}

func TestDefaultSlots_FreshCopy(t *testing.T) {
	a := outfit.DefaultSlots()
	a[0].X = -1
	assert.Equal(t, 728, outfit.DefaultSlots()[0].X)
}

func TestDefaultConfig_Validate(t *testing.T) {
	cfg := outfit.DefaultConfig(outfit.AssetsConfig{BackgroundURL: "http://bg"}, outfit.ShareConfig{})
	assert.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Rules, 7)
	assert.Equal(t, int64(406), cfg.DefaultAvatarID)

	cfg.Slots = cfg.Slots[:6]
	assert.Error(t, cfg.Validate())

	cfg = outfit.DefaultConfig(outfit.AssetsConfig{}, outfit.ShareConfig{})
	assert.Error(t, cfg.Validate())
}
