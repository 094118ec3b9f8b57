package draft

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the session draft routes.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	d := r.Group("/draft")
	{
		d.GET("", h.GetDraft)
		d.DELETE("", h.ResetDraft)
		d.PUT("/plan", h.SelectPlan)
		d.GET("/language", h.GetLanguage)
		d.PUT("/language", h.SetLanguage)
	}
}
