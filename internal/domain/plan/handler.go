package plan

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kizuna/internal/domain/i18n"
	"kizuna/internal/pkg/response"
)

// Handler serves the read-only plan catalog. It holds no state.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// GetPlans godoc
// @Summary List plans
// @Description Returns the plan catalog in the requested language (default pt).
// @Tags Plans
// @Produce json
// @Param lang query string false "pt or jp"
// @Success 200 {array} PlanResponse
// @Router /plans [get]
func (h *Handler) GetPlans(c *gin.Context) {
	lang, ok := languageParam(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidInput, ErrInvalidLanguage.Error())
		return
	}

	plans := ListPlans(lang)
	resp := make([]PlanResponse, 0, len(plans))
	for _, p := range plans {
		resp = append(resp, planToResponse(p))
	}
	response.Success(c, http.StatusOK, resp)
}

// GetEntitlements godoc
// @Summary Resolve the entitlements of a plan tier
// @Tags Plans
// @Produce json
// @Param id path string true "BASIC, PREMIUM or INFINITY"
// @Success 200 {object} Entitlements
// @Router /plans/{id}/entitlements [get]
func (h *Handler) GetEntitlements(c *gin.Context) {
	id, ok := ParsePlanType(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, response.CodeNotFound, ErrPlanNotFound.Error())
		return
	}
	response.Success(c, http.StatusOK, Resolve(id))
}

// GetOptions godoc
// @Summary List editor options with lock state
// @Tags Plans
// @Produce json
// @Param lang query string false "pt or jp"
// @Param plan query string false "plan tier, default BASIC"
// @Success 200 {object} OptionsResponse
// @Router /options [get]
func (h *Handler) GetOptions(c *gin.Context) {
	lang, ok := languageParam(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidInput, ErrInvalidLanguage.Error())
		return
	}
	p := PlanBasic
	if raw := c.Query("plan"); raw != "" {
		parsed, ok := ParsePlanType(raw)
		if !ok {
			response.Error(c, http.StatusNotFound, response.CodeNotFound, ErrPlanNotFound.Error())
			return
		}
		p = parsed
	}
	response.Success(c, http.StatusOK, OptionsFor(lang, p))
}

func languageParam(c *gin.Context) (i18n.Language, bool) {
	raw := c.Query("lang")
	if raw == "" {
		return i18n.Default, true
	}
	return i18n.Parse(raw)
}
