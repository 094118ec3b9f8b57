package plan

import "strings"

// PlanType identifies a plan tier. It is the authoritative entitlement key
// of a draft.
type PlanType string

const (
	PlanBasic    PlanType = "BASIC"
	PlanPremium  PlanType = "PREMIUM"
	PlanInfinity PlanType = "INFINITY"
)

// Types lists the tiers from lowest to highest.
func Types() []PlanType {
	return []PlanType{PlanBasic, PlanPremium, PlanInfinity}
}

func (p PlanType) Valid() bool {
	return p == PlanBasic || p == PlanPremium || p == PlanInfinity
}

// ParsePlanType accepts tier ids case-insensitively.
func ParsePlanType(s string) (PlanType, bool) {
	p := PlanType(strings.ToUpper(strings.TrimSpace(s)))
	return p, p.Valid()
}

// Plan is a catalog entry. Only Name, Price and Features depend on the
// display language.
type Plan struct {
	ID       PlanType `json:"id"`
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Features []string `json:"features"`

	ImageLimit     int  `json:"imageLimit"`
	VideoLimit     int  `json:"videoLimit"`
	HasMusic       bool `json:"hasMusic"`
	PremiumEffects bool `json:"premiumEffects"`
	PremiumThemes  bool `json:"premiumThemes"`
	HasDomain      bool `json:"hasDomain"`
}

// Effect is the animated particle overlay of the page.
type Effect string

const (
	EffectNone      Effect = "none"
	EffectHearts    Effect = "hearts"
	EffectSparkles  Effect = "sparkles"
	EffectPetals    Effect = "petals"
	EffectFireflies Effect = "fireflies"
	EffectInfinity  Effect = "infinity"
)

// Theme is the page color theme.
type Theme string

const (
	ThemeRomantic Theme = "romantic"
	ThemeClassic  Theme = "classic"
	ThemeMidnight Theme = "midnight"
)

// Frame decorates gallery photos.
type Frame string

const (
	FrameNone     Frame = "none"
	FramePolaroid Frame = "polaroid"
	FrameGold     Frame = "gold"
	FrameOrganic  Frame = "organic"
)

// Font is the typeface style of names and messages.
type Font string

const (
	FontRomantic   Font = "font-romance"
	FontModern     Font = "font-inter"
	FontElegant    Font = "font-elegant"
	FontMinimalist Font = "font-jp"
)

func (e Effect) Valid() bool {
	_, ok := findEffect(e)
	return ok
}

func (t Theme) Valid() bool {
	_, ok := FindTheme(t)
	return ok
}

func (f Frame) Valid() bool {
	_, ok := FindFrame(f)
	return ok
}

func (f Font) Valid() bool {
	for _, o := range Fonts() {
		if o.ID == f {
			return true
		}
	}
	return false
}

// Palette holds the hex colors of a theme.
type Palette struct {
	Background string `json:"background"`
	Card       string `json:"card"`
	Text       string `json:"text"`
	Accent     string `json:"accent"`
}

type ThemeOption struct {
	ID      Theme   `json:"id"`
	Name    string  `json:"name"`
	Premium bool    `json:"premium"`
	Palette Palette `json:"palette"`
}

type EffectOption struct {
	ID      Effect `json:"id"`
	Name    string `json:"name"`
	Premium bool   `json:"premium"`
	// TopTier effects need Infinity even though premium effects are unlocked.
	TopTier bool `json:"topTier"`
}

type FrameOption struct {
	ID      Frame  `json:"id"`
	Name    string `json:"name"`
	Premium bool   `json:"premium"`
}

type FontOption struct {
	ID   Font   `json:"id"`
	Name string `json:"name"`
}
