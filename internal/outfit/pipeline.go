package outfit

import (
	"context"
	"errors"
	"fmt"
	"image"
	"net/url"
	"strconv"
	"strings"
	"time"

	imagepkg "github.com/youruser/outfitapp/internal/image"
	"github.com/youruser/outfitapp/internal/profile"
	"go.uber.org/zap"
)

var (
	// ErrProfileUnavailable means the player record could not be fetched.
	ErrProfileUnavailable = errors.New("failed to fetch player info")
	// ErrBackgroundUnavailable means the canvas image could not be fetched.
	ErrBackgroundUnavailable = errors.New("failed to fetch background image")
)

var qrPos = image.Pt(16, 16)

// ProfileSource looks up a player record.
type ProfileSource interface {
	Fetch(ctx context.Context, uid, region string) (*profile.PlayerRecord, error)
}

// ImageLoader fetches a batch of images, keeping results in request order.
type ImageLoader interface {
	LoadMany(ctx context.Context, reqs []imagepkg.Request) []imagepkg.Result
}

// Pipeline turns a player into a composed outfit card.
type Pipeline struct {
	profiles ProfileSource
	loader   ImageLoader
	cfg      Config
	logger   *zap.Logger
}

// NewPipeline creates a Pipeline. cfg must pass Validate.
func NewPipeline(profiles ProfileSource, loader ImageLoader, cfg Config, logger *zap.Logger) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		profiles: profiles,
		loader:   loader,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// Render fetches the player and returns the PNG-encoded card.
func (p *Pipeline) Render(ctx context.Context, uid, region string) ([]byte, error) {
	img, err := p.RenderImage(ctx, uid, region)
	if err != nil {
		return nil, err
	}
	return imagepkg.EncodePNG(img)
}

// RenderImage fetches the player and returns the composed canvas.
func (p *Pipeline) RenderImage(ctx context.Context, uid, region string) (*image.NRGBA, error) {
	rec, err := p.profiles.Fetch(ctx, uid, region)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProfileUnavailable, err)
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: %w", ErrProfileUnavailable, profile.ErrNoData)
	}
	return p.Compose(ctx, rec, uid, region)
}

// batch indexes into the LoadMany results.
const (
	bgIndex     = 0
	firstOutfit = 1
)

// Compose draws rec onto the background. uid and region only feed the share QR code.
func (p *Pipeline) Compose(ctx context.Context, rec *profile.PlayerRecord, uid, region string) (*image.NRGBA, error) {
	start := time.Now()
	log := p.logger.With(zap.String("uid", uid), zap.String("region", region))

	assetIDs := Resolve(rec.ClothingIDs(), p.cfg.Rules)
	avatarID := AvatarID(rec.EquippedSkillIDs(), p.cfg.DefaultAvatarID)
	weaponID, hasWeapon := WeaponID(rec.WeaponSkinIDs())

	reqs := make([]imagepkg.Request, 0, len(assetIDs)+3)
	reqs = append(reqs, imagepkg.Request{
		URL:  p.cfg.Assets.BackgroundURL,
		Size: &imagepkg.Size{Width: CanvasSize, Height: CanvasSize},
	})
	for _, id := range assetIDs {
		reqs = append(reqs, imagepkg.Request{
			URL:  withID(p.cfg.Assets.IconURL, id),
			Size: &imagepkg.Size{Width: IconSize, Height: IconSize},
		})
	}
	avatarIndex := len(reqs)
	reqs = append(reqs, imagepkg.Request{
		URL:  withID(p.cfg.Assets.AvatarURL, strconv.FormatInt(avatarID, 10)),
		Size: &imagepkg.Size{Width: AvatarWidth, Height: AvatarHeight},
	})
	weaponIndex := -1
	if hasWeapon {
		weaponIndex = len(reqs)
		reqs = append(reqs, imagepkg.Request{
			URL:  withID(p.cfg.Assets.IconURL, strconv.FormatInt(weaponID, 10)),
			Size: &imagepkg.Size{Width: WeaponWidth, Height: WeaponHeight},
		})
	}

	results := p.loader.LoadMany(ctx, reqs)

	bg := results[bgIndex]
	if !bg.OK() {
		return nil, fmt.Errorf("%w: %w", ErrBackgroundUnavailable, bg.Err)
	}

	layers := make([]imagepkg.Layer, len(assetIDs))
	for i := range assetIDs {
		layers[i] = imagepkg.Layer{
			Image: p.present(log, "outfit", results[firstOutfit+i]),
			Slot:  p.cfg.Slots[i],
		}
	}

	var avatar, weapon *imagepkg.Placement
	if img := p.present(log, "avatar", results[avatarIndex]); img != nil {
		x := (CanvasSize - img.Bounds().Dx()) / 2
		avatar = &imagepkg.Placement{Image: img, Pos: image.Pt(x, AvatarY)}
	}
	if weaponIndex >= 0 {
		if img := p.present(log, "weapon", results[weaponIndex]); img != nil {
			weapon = &imagepkg.Placement{Image: img, Pos: WeaponPos}
		}
	}

	canvas, err := imagepkg.Compose(bg.Image, layers, avatar, weapon, p.shareQR(log, uid, region))
	if err != nil {
		return nil, err
	}

	log.Info("Outfit rendered",
		zap.Strings("assets", assetIDs),
		zap.Int64("avatar", avatarID),
		zap.Bool("weapon", weapon != nil),
		zap.Duration("took", time.Since(start)),
	)
	return canvas, nil
}

// present applies the degraded-layer policy: a failed fetch is logged and drawn as nothing.
func (p *Pipeline) present(log *zap.Logger, layer string, r imagepkg.Result) *image.NRGBA {
	if r.OK() {
		return r.Image
	}
	log.Warn("Layer skipped", zap.String("layer", layer), zap.Error(r.Err))
	return nil
}

func (p *Pipeline) shareQR(log *zap.Logger, uid, region string) *imagepkg.Placement {
	share := p.cfg.Share
	if !share.QREnabled || share.QRURL == "" {
		return nil
	}
	text := strings.NewReplacer("{uid}", url.QueryEscape(uid), "{region}", url.QueryEscape(region)).Replace(share.QRURL)
	img, err := imagepkg.GenerateQRImage(text, share.QRSize)
	if err != nil {
		log.Warn("Share QR skipped", zap.Error(err))
		return nil
	}
	return &imagepkg.Placement{Image: img, Pos: qrPos}
}

func withID(tmpl, id string) string {
	return strings.ReplaceAll(tmpl, "{id}", url.QueryEscape(id))
}
