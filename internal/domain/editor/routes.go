package editor

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the editor routes. All of them act on the
// session draft.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	e := r.Group("/editor")
	{
		e.GET("/options", h.GetOptions)
		e.PATCH("", h.UpdateFields)
		e.POST("/images", h.UploadImages)

		e.POST("/videos", h.AddVideo)
		e.PUT("/videos/:index", h.UpdateVideo)
		e.DELETE("/videos/:index", h.RemoveVideo)

		e.POST("/milestones", h.AddMilestone)
		e.PATCH("/milestones/:id", h.UpdateMilestone)
		e.DELETE("/milestones/:id", h.RemoveMilestone)

		e.POST("/domain/check", h.CheckDomain)
		e.GET("/domain/check/stream", h.StreamDomainCheck)
	}
}
