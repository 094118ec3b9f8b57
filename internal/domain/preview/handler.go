package preview

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"kizuna/internal/domain/draft"
	"kizuna/internal/domain/i18n"
	"kizuna/internal/domain/plan"
	"kizuna/internal/pkg/dataurl"
	"kizuna/internal/pkg/response"
)

type Handler struct {
	manager  *draft.Manager
	renderer *Renderer
	live     LiveOptions
	upgrader *websocket.Upgrader
}

func NewHandler(manager *draft.Manager, renderer *Renderer, live LiveOptions) *Handler {
	return &Handler{
		manager:  manager,
		renderer: renderer,
		live:     live,
		upgrader: newUpgrader(live),
	}
}

// GetPreview godoc
// @Summary Render the session draft
// @Description Derived view: counter, gallery, embeds, capsule, SEO and share data.
// @Tags Preview
// @Produce json
// @Param lang query string false "pt or jp"
// @Success 200 {object} View
// @Router /preview [get]
func (h *Handler) GetPreview(c *gin.Context) {
	store, lang, ok := h.session(c)
	if !ok {
		return
	}
	d, err := store.Load(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to load draft")
		return
	}
	response.Success(c, http.StatusOK, h.renderer.Render(d, lang, 0))
}

// GetImage godoc
// @Summary Serve one gallery image
// @Description Decodes an inline image of the draft so pages can load it by URL. Images past the plan limit are not served.
// @Tags Preview
// @Produce octet-stream
// @Param index path int true "Gallery position"
// @Success 200 {file} binary
// @Success 302 "Remote image"
// @Failure 404 {object} response.Response
// @Router /preview/images/{index} [get]
func (h *Handler) GetImage(c *gin.Context) {
	store, err := h.manager.FromContext(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidInput, err.Error())
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidInput, "Invalid image index")
		return
	}

	d, err := store.Load(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to load draft")
		return
	}
	if index >= len(d.Images) || index >= plan.ImageLimit(d.Plan) {
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Image not found")
		return
	}

	src := d.Images[index]
	if !dataurl.IsDataURL(src) {
		c.Redirect(http.StatusFound, src)
		return
	}
	mimeType, data, err := dataurl.Decode(src)
	if err != nil {
		log.Printf("preview_image_malformed ns=%s index=%d error=%v", store.Namespace(), index, err)
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Image not found")
		return
	}
	c.Header("Cache-Control", "private, no-cache")
	c.Data(http.StatusOK, mimeType, data)
}

func (h *Handler) session(c *gin.Context) (*draft.Store, i18n.Language, bool) {
	store, err := h.manager.FromContext(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidInput, err.Error())
		return nil, "", false
	}
	lang, ok := i18n.Parse(c.Query("lang"))
	if !ok {
		if lang, err = store.Language(c.Request.Context()); err != nil {
			lang = i18n.Default
		}
	}
	return store, lang, true
}
