package plan

import "kizuna/internal/domain/i18n"

// PlanLimits groups numeric limits for display
type PlanLimits struct {
	Images int `json:"images"`
	Videos int `json:"videos"`
}

// PlanFeatures groups boolean feature flags for display
type PlanFeatures struct {
	Music          bool `json:"music"`
	PremiumEffects bool `json:"premiumEffects"`
	PremiumThemes  bool `json:"premiumThemes"`
	CustomDomain   bool `json:"customDomain"`
}

// PlanResponse is the public representation of a plan
type PlanResponse struct {
	ID       PlanType     `json:"id"`
	Name     string       `json:"name"`
	Price    string       `json:"price"`
	Features []string     `json:"features"`
	Limits   PlanLimits   `json:"limits"`
	Flags    PlanFeatures `json:"flags"`
}

// Option is one selectable value with its lock state for a plan.
type Option struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Premium bool   `json:"premium"`
	Locked  bool   `json:"locked"`
}

// ThemeChoice adds the palette to an option.
type ThemeChoice struct {
	Option
	Palette Palette `json:"palette"`
}

// OptionsResponse lists every editor choice for a plan.
type OptionsResponse struct {
	Plan    PlanType      `json:"plan"`
	Themes  []ThemeChoice `json:"themes"`
	Effects []Option      `json:"effects"`
	Frames  []Option      `json:"frames"`
	Fonts   []Option      `json:"fonts"`
}

func planToResponse(p Plan) PlanResponse {
	return PlanResponse{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Features: p.Features,
		Limits: PlanLimits{
			Images: p.ImageLimit,
			Videos: p.VideoLimit,
		},
		Flags: PlanFeatures{
			Music:          p.HasMusic,
			PremiumEffects: p.PremiumEffects,
			PremiumThemes:  p.PremiumThemes,
			CustomDomain:   p.HasDomain,
		},
	}
}

// OptionsFor lists themes, effects, frames and fonts, marking the ones p
// does not unlock.
func OptionsFor(lang i18n.Language, p PlanType) OptionsResponse {
	resp := OptionsResponse{Plan: Resolve(p).Plan}

	for _, t := range Themes() {
		resp.Themes = append(resp.Themes, ThemeChoice{
			Option: Option{
				ID:      string(t.ID),
				Name:    t.Name,
				Premium: t.Premium,
				Locked:  !CanUsePremiumTheme(t.ID, p),
			},
			Palette: t.Palette,
		})
	}
	for _, e := range Effects(lang) {
		resp.Effects = append(resp.Effects, Option{
			ID:      string(e.ID),
			Name:    e.Name,
			Premium: e.Premium,
			Locked:  !CanUsePremiumEffect(e.ID, p),
		})
	}
	for _, f := range Frames() {
		resp.Frames = append(resp.Frames, Option{
			ID:      string(f.ID),
			Name:    f.Name,
			Premium: f.Premium,
			Locked:  !CanUseFrame(f.ID, p),
		})
	}
	for _, f := range Fonts() {
		resp.Fonts = append(resp.Fonts, Option{ID: string(f.ID), Name: f.Name})
	}
	return resp
}
