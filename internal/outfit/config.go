package outfit

import (
	"fmt"

	imagepkg "github.com/youruser/outfitapp/internal/image"
)

// AssetsConfig holds the remote image endpoints. "{id}" in a URL is replaced by the asset id.
type AssetsConfig struct {
	// IconURL serves outfit and weapon icons.
	IconURL string `mapstructure:"icon_url" default:"https://freefireinfo.vercel.app/icon?id={id}"`
	// AvatarURL serves character renders keyed by skill id.
	AvatarURL string `mapstructure:"avatar_url" default:"https://characteriroxmar.vercel.app/chars?id={id}"`
	// BackgroundURL is the canvas every render starts from.
	BackgroundURL string `mapstructure:"background_url" default:"https://iili.io/FXyDJ5l.png"`
	// TimeoutSeconds bounds a single image download.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"12"`
	// Workers is the number of downloads allowed in flight across all renders.
	Workers int `mapstructure:"workers" default:"10"`
}

// ShareConfig controls the optional QR code stamped in the top-left corner.
type ShareConfig struct {
	QREnabled bool `mapstructure:"qr_enabled" default:"false"`
	// QRURL is encoded in the QR code; "{uid}" and "{region}" are substituted.
	QRURL  string `mapstructure:"qr_url" default:""`
	QRSize int    `mapstructure:"qr_size" default:"120"`
}

// Config is the immutable render configuration handed to NewPipeline.
type Config struct {
	Assets          AssetsConfig
	Share           ShareConfig
	Rules           []MatchRule
	Slots           []imagepkg.Slot
	DefaultAvatarID int64
}

// DefaultConfig returns the standard rule and slot tables around the given endpoints.
func DefaultConfig(assets AssetsConfig, share ShareConfig) Config {
	return Config{
		Assets:          assets,
		Share:           share,
		Rules:           DefaultRules(),
		Slots:           DefaultSlots(),
		DefaultAvatarID: DefaultAvatarID,
	}
}

// Validate checks that every rule has a slot.
func (c Config) Validate() error {
	if len(c.Rules) != len(c.Slots) {
		return fmt.Errorf("outfit config: %d rules but %d slots", len(c.Rules), len(c.Slots))
	}
	if c.Assets.BackgroundURL == "" {
		return fmt.Errorf("outfit config: background url is required")
	}
	return nil
}
