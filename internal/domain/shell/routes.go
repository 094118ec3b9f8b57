package shell

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/shell", h.GetChrome)
	r.GET("/shell/resolve", h.ResolvePath)
}
