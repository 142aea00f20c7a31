package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	imagepkg "github.com/youruser/outfitapp/internal/image"
	"github.com/youruser/outfitapp/internal/logger"
	"github.com/youruser/outfitapp/internal/outfit"
	"go.uber.org/zap"
)

// Renderer produces a PNG outfit card for a player.
type Renderer interface {
	Render(ctx context.Context, uid, region string) ([]byte, error)
}

// Handler serves outfit cards.
type Handler struct {
	renderer Renderer
	logger   *zap.Logger
}

func NewHandler(renderer Renderer, logger *zap.Logger) *Handler {
	return &Handler{renderer: renderer, logger: logger}
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// outfitImage renders the card for ?uid=&region= as PNG.
func (h *Handler) outfitImage(c *gin.Context) {
	uid := c.Query("uid")
	region := c.Query("region")
	if uid == "" || region == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing uid or region"})
		return
	}

	l := logger.WithRequestID(h.logger, c)
	b, err := h.renderer.Render(c.Request.Context(), uid, region)
	if err != nil {
		l.Error("Render failed", zap.String("uid", uid), zap.String("region", region), zap.Error(err))
		switch {
		case errors.Is(err, outfit.ErrProfileUnavailable):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch player info"})
		case errors.Is(err, outfit.ErrBackgroundUnavailable):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch background image"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render outfit image"})
		}
		return
	}
	c.Data(http.StatusOK, imagepkg.ContentType, b)
}

// qr endpoint returns a PNG of a QR for "text" query param
func qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing text"})
		return
	}
	size := 400
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 && v <= 2048 {
		size = v
	}
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, imagepkg.ContentType, b)
}
