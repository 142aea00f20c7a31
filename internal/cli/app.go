package cli

import (
	"fmt"

	"github.com/youruser/outfitapp/internal/config"
	imagepkg "github.com/youruser/outfitapp/internal/image"
	"github.com/youruser/outfitapp/internal/logger"
	"github.com/youruser/outfitapp/internal/outfit"
	"github.com/youruser/outfitapp/internal/profile"
	"go.uber.org/zap"
)

// app bundles what every command needs.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	pipeline *outfit.Pipeline
}

func newApp(dir string) (*app, error) {
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	fetcher := imagepkg.NewHTTPFetcher(cfg.Assets.TimeoutSeconds)
	loader := imagepkg.NewLoader(fetcher, cfg.Assets.Workers)
	pipeline, err := outfit.NewPipeline(profile.NewClient(cfg.Profile), loader, cfg.Outfit(), logg)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, logger: logg, pipeline: pipeline}, nil
}
