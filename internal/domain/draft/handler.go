package draft

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kizuna/internal/domain/i18n"
	"kizuna/internal/domain/plan"
	"kizuna/internal/pkg/response"
	"kizuna/internal/pkg/validator"
)

// SessionKey is the gin context key the session middleware stores the
// visitor namespace under.
const SessionKey = "session_id"

// FromContext returns the draft store of the request's session.
func (m *Manager) FromContext(c *gin.Context) (*Store, error) {
	ns := c.GetString(SessionKey)
	if ns == "" {
		return nil, ErrNoSession
	}
	return m.For(ns), nil
}

type Handler struct {
	manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

// GetDraft godoc
// @Summary Load the session draft
// @Tags Draft
// @Produce json
// @Success 200 {object} DraftResponse
// @Router /draft [get]
func (h *Handler) GetDraft(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}
	h.respond(c, store, nil)
}

// SelectPlan godoc
// @Summary Select a plan tier
// @Description Sets the draft plan and the last-selected plan.
// @Tags Draft
// @Accept json
// @Produce json
// @Param request body SelectPlanRequest true "Plan"
// @Success 200 {object} DraftResponse
// @Failure 422 {object} response.Response
// @Router /draft/plan [put]
func (h *Handler) SelectPlan(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}

	var req SelectPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidInput, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, response.CodeValidation, "Validation failed", errs)
		return
	}

	p, _ := plan.ParsePlanType(req.Plan)
	d, err := store.SelectPlan(c.Request.Context(), p)
	if err != nil {
		if errors.Is(err, ErrInvalidPlan) {
			response.Error(c, http.StatusUnprocessableEntity, response.CodeValidation, err.Error())
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to save draft")
		return
	}
	h.respond(c, store, &d)
}

// ResetDraft godoc
// @Summary Clear the session draft, plan and language
// @Tags Draft
// @Produce json
// @Success 200 {object} DraftResponse
// @Router /draft [delete]
func (h *Handler) ResetDraft(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}
	if err := store.Reset(c.Request.Context()); err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to clear draft")
		return
	}
	h.respond(c, store, nil)
}

// GetLanguage godoc
// @Summary Get the display language
// @Tags Draft
// @Produce json
// @Router /draft/language [get]
func (h *Handler) GetLanguage(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}
	lang, err := store.Language(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to load language")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"lang": lang, "available": i18n.Languages()})
}

// SetLanguage godoc
// @Summary Set the display language
// @Tags Draft
// @Accept json
// @Produce json
// @Param request body LanguageRequest true "Language"
// @Router /draft/language [put]
func (h *Handler) SetLanguage(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}

	var req LanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidInput, "Invalid JSON body")
		return
	}
	lang, valid := i18n.Parse(req.Lang)
	if !valid {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, response.CodeValidation,
			ErrInvalidLanguage.Error(), map[string]string{"lang": "oneof"})
		return
	}
	if err := store.SetLanguage(c.Request.Context(), lang); err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to save language")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"lang": lang})
}

func (h *Handler) store(c *gin.Context) (*Store, bool) {
	store, err := h.manager.FromContext(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidInput, err.Error())
		return nil, false
	}
	return store, true
}

// respond writes the draft plus its entitlements. When d is nil the draft
// is loaded first.
func (h *Handler) respond(c *gin.Context, store *Store, d *CoupleDraft) {
	ctx := c.Request.Context()
	if d == nil {
		loaded, err := store.Load(ctx)
		if err != nil {
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to load draft")
			return
		}
		d = &loaded
	}

	resp := DraftResponse{
		Draft:        *d,
		Entitlements: plan.Resolve(d.Plan),
		Language:     i18n.Default,
	}
	if selected, ok, err := store.SelectedPlan(ctx); err == nil && ok {
		resp.SelectedPlan = selected
	}
	if lang, err := store.Language(ctx); err == nil {
		resp.Language = lang
	}
	response.Success(c, http.StatusOK, resp)
}
