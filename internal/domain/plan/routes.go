package plan

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the public catalog routes.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/plans", h.GetPlans)
	r.GET("/plans/:id/entitlements", h.GetEntitlements)
	r.GET("/options", h.GetOptions)
}
