package checkout

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kizuna/internal/domain/draft"
	"kizuna/internal/domain/i18n"
	"kizuna/internal/pkg/response"
	"kizuna/internal/pkg/validator"
)

type Handler struct {
	manager *draft.Manager
	service *Service
}

func NewHandler(manager *draft.Manager, service *Service) *Handler {
	return &Handler{manager: manager, service: service}
}

// GetSummary godoc
// @Summary Order summary with share and QR URLs
// @Tags Checkout
// @Produce json
// @Param lang query string false "pt or jp"
// @Success 200 {object} Summary
// @Router /checkout [get]
func (h *Handler) GetSummary(c *gin.Context) {
	d, lang, ok := h.load(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, h.service.Summary(d, lang))
}

// Pay godoc
// @Summary Simulated payment
// @Description No real charge is made. Card 4000000000000002 is always declined.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body PaymentRequest true "Form"
// @Success 200 {object} Result
// @Failure 402 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /checkout [post]
func (h *Handler) Pay(c *gin.Context) {
	d, lang, ok := h.load(c)
	if !ok {
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidInput, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, response.CodeValidation, "Validation failed", errs)
		return
	}

	res, err := h.service.Pay(c.Request.Context(), d, lang, req)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity, response.CodeValidation, ErrInvalidCard.Error(), verr.Fields)
		case errors.Is(err, ErrPaymentDeclined):
			response.Error(c, http.StatusPaymentRequired, response.CodePaymentDeclined, i18n.For(lang).PaymentDeclined)
		default:
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Payment failed")
		}
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) load(c *gin.Context) (draft.CoupleDraft, i18n.Language, bool) {
	store, err := h.manager.FromContext(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidInput, err.Error())
		return draft.CoupleDraft{}, "", false
	}
	ctx := c.Request.Context()
	d, err := store.Load(ctx)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to load draft")
		return draft.CoupleDraft{}, "", false
	}
	lang, ok := i18n.Parse(c.Query("lang"))
	if !ok {
		if lang, err = store.Language(ctx); err != nil {
			lang = i18n.Default
		}
	}
	return d, lang, true
}
