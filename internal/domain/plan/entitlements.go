package plan

import "kizuna/internal/domain/i18n"

// lookup returns the catalog entry of p, or the Basic entry when p is not
// a catalog id. Entitlement questions never fail.
func lookup(p PlanType) Plan {
	return FindOrFirst(i18n.Default, p)
}

// IsPremiumOrAbove is true for Premium and Infinity.
func IsPremiumOrAbove(p PlanType) bool {
	return p == PlanPremium || p == PlanInfinity
}

// IsTopTier is true only for Infinity.
func IsTopTier(p PlanType) bool {
	return p == PlanInfinity
}

func ImageLimit(p PlanType) int { return lookup(p).ImageLimit }

func VideoLimit(p PlanType) int { return lookup(p).VideoLimit }

func CanUseVideos(p PlanType) bool { return VideoLimit(p) > 0 }

func CanUseMusic(p PlanType) bool { return IsPremiumOrAbove(p) }

func CanUseMilestones(p PlanType) bool { return IsPremiumOrAbove(p) }

func CanUseCustomDomain(p PlanType) bool { return IsTopTier(p) }

func CanUseCapsule(p PlanType) bool { return IsTopTier(p) }

// CanUsePremiumEffect reports whether effect e may be selected on p.
// Free effects are always allowed; the Infinity effect needs the top tier.
func CanUsePremiumEffect(e Effect, p PlanType) bool {
	opt, ok := findEffect(e)
	if !ok || !opt.Premium {
		return true
	}
	if opt.TopTier {
		return IsTopTier(p)
	}
	return lookup(p).PremiumEffects
}

// CanUsePremiumTheme reports whether theme t may be selected on p.
func CanUsePremiumTheme(t Theme, p PlanType) bool {
	opt, ok := FindTheme(t)
	if !ok || !opt.Premium {
		return true
	}
	return lookup(p).PremiumThemes
}

// CanUseFrame reports whether frame f may be selected on p.
func CanUseFrame(f Frame, p PlanType) bool {
	opt, ok := FindFrame(f)
	if !ok || !opt.Premium {
		return true
	}
	return IsPremiumOrAbove(p)
}

// NextPlan suggests the tier to upgrade to, or "" at the top.
func NextPlan(p PlanType) PlanType {
	switch p {
	case PlanPremium:
		return PlanInfinity
	case PlanInfinity:
		return ""
	default:
		return PlanPremium
	}
}

// Entitlements is the resolved feature set of one tier.
type Entitlements struct {
	Plan           PlanType `json:"plan"`
	PremiumOrAbove bool     `json:"premiumOrAbove"`
	TopTier        bool     `json:"topTier"`
	ImageLimit     int      `json:"imageLimit"`
	VideoLimit     int      `json:"videoLimit"`
	Music          bool     `json:"music"`
	Milestones     bool     `json:"milestones"`
	PremiumEffects bool     `json:"premiumEffects"`
	PremiumThemes  bool     `json:"premiumThemes"`
	CustomDomain   bool     `json:"customDomain"`
	Capsule        bool     `json:"capsule"`
	UpgradeTo      PlanType `json:"upgradeTo,omitempty"`
}

// Resolve answers every gating question for p at once. Unknown tiers
// resolve with Basic semantics.
func Resolve(p PlanType) Entitlements {
	entry := lookup(p)
	if !p.Valid() {
		p = entry.ID
	}
	return Entitlements{
		Plan:           p,
		PremiumOrAbove: IsPremiumOrAbove(p),
		TopTier:        IsTopTier(p),
		ImageLimit:     entry.ImageLimit,
		VideoLimit:     entry.VideoLimit,
		Music:          CanUseMusic(p),
		Milestones:     CanUseMilestones(p),
		PremiumEffects: entry.PremiumEffects,
		PremiumThemes:  entry.PremiumThemes,
		CustomDomain:   CanUseCustomDomain(p),
		Capsule:        CanUseCapsule(p),
		UpgradeTo:      NextPlan(p),
	}
}
