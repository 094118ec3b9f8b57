package preview

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/preview", h.GetPreview)
	r.GET("/preview/live", h.Live)
	r.GET("/preview/images/:index", h.GetImage)
}
