package checkout

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/checkout", h.GetSummary)
	r.POST("/checkout", h.Pay)
}
