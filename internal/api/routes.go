package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/outfit-image", h.outfitImage)

	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/outfit-image", h.outfitImage)
		api.GET("/qr", qrHandler)
	}
}
