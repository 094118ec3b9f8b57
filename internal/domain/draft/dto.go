package draft

import (
	"kizuna/internal/domain/i18n"
	"kizuna/internal/domain/plan"
)

// SelectPlanRequest is the landing-step plan choice
type SelectPlanRequest struct {
	Plan string `json:"plan" validate:"required,oneof=BASIC PREMIUM INFINITY basic premium infinity"`
}

// LanguageRequest changes the display language
type LanguageRequest struct {
	Lang string `json:"lang" validate:"required"`
}

// DraftResponse is the draft together with what its plan unlocks
type DraftResponse struct {
	Draft        CoupleDraft       `json:"draft"`
	Entitlements plan.Entitlements `json:"entitlements"`
	SelectedPlan plan.PlanType     `json:"selectedPlan,omitempty"`
	Language     i18n.Language     `json:"language"`
}
