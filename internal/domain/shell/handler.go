package shell

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kizuna/internal/domain/draft"
	"kizuna/internal/domain/i18n"
	"kizuna/internal/pkg/response"
)

type Handler struct {
	manager *draft.Manager
}

func NewHandler(manager *draft.Manager) *Handler {
	return &Handler{manager: manager}
}

// GetChrome godoc
// @Summary Header, footer and translated strings
// @Description Uses ?lang when given, otherwise the session's stored language.
// @Tags Shell
// @Produce json
// @Param lang query string false "pt or jp"
// @Success 200 {object} Chrome
// @Router /shell [get]
func (h *Handler) GetChrome(c *gin.Context) {
	if raw := c.Query("lang"); raw != "" {
		lang, ok := i18n.Parse(raw)
		if !ok {
			response.Error(c, http.StatusBadRequest, response.CodeInvalidInput, ErrInvalidLanguage.Error())
			return
		}
		response.Success(c, http.StatusOK, ChromeFor(lang))
		return
	}

	store, err := h.manager.FromContext(c)
	if errors.Is(err, draft.ErrNoSession) {
		response.Success(c, http.StatusOK, ChromeFor(i18n.Default))
		return
	}
	lang, err := store.Language(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to load language")
		return
	}
	response.Success(c, http.StatusOK, ChromeFor(lang))
}

// ResolvePath godoc
// @Summary Resolve a page path
// @Description Follows page aliases; unknown paths resolve to the home page.
// @Tags Shell
// @Produce json
// @Param path query string true "requested path"
// @Success 200 {object} Route
// @Router /shell/resolve [get]
func (h *Handler) ResolvePath(c *gin.Context) {
	response.Success(c, http.StatusOK, Resolve(c.Query("path")))
}
