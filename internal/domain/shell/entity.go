package shell

import (
	"strings"

	"kizuna/internal/domain/i18n"
)

// Step is one screen of the wizard.
type Step string

const (
	StepLanding  Step = "landing"
	StepEditor   Step = "editor"
	StepPreview  Step = "preview"
	StepCheckout Step = "checkout"
)

// Steps lists the wizard in order.
func Steps() []Step {
	return []Step{StepLanding, StepEditor, StepPreview, StepCheckout}
}

func (s Step) index() int {
	for i, step := range Steps() {
		if step == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is a wizard step.
func (s Step) Valid() bool { return s.index() >= 0 }

// Next returns the step after s, or "" on the last step.
func (s Step) Next() Step {
	steps := Steps()
	if i := s.index(); i >= 0 && i+1 < len(steps) {
		return steps[i+1]
	}
	return ""
}

// Prev returns the step before s, or "" on the first step.
func (s Step) Prev() Step {
	if i := s.index(); i > 0 {
		return Steps()[i-1]
	}
	return ""
}

// Page paths served by the site.
const (
	PathHome     = "/"
	PathEditor   = "/editor"
	PathPreview  = "/preview"
	PathCheckout = "/checkout"
	PathFAQ      = "/duvidas"
	PathPrivacy  = "/privacidade"
	PathTokutei  = "/tokutei"
	PathContact  = "/contato"
)

var stepPaths = map[string]Step{
	PathHome:     StepLanding,
	PathEditor:   StepEditor,
	PathPreview:  StepPreview,
	PathCheckout: StepCheckout,
}

var infoPages = map[string]bool{
	PathFAQ:     true,
	PathPrivacy: true,
	PathTokutei: true,
	PathContact: true,
}

var aliases = map[string]string{
	"/faq": PathFAQ,
}

// Route is where a requested path lands.
type Route struct {
	Requested  string `json:"requested"`
	Path       string `json:"path"`
	Step       Step   `json:"step,omitempty"`
	Prev       Step   `json:"prev,omitempty"`
	Next       Step   `json:"next,omitempty"`
	Redirected bool   `json:"redirected"`
}

// Resolve maps a requested path to a page. Aliases are followed and
// unknown paths land on the home page.
func Resolve(requested string) Route {
	path := strings.ToLower(strings.TrimSpace(requested))
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		path = PathHome
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = PathHome
		}
	}
	if target, ok := aliases[path]; ok {
		path = target
	}

	r := Route{Requested: requested, Path: path}
	switch step, ok := stepPaths[path]; {
	case ok:
		r.Step = step
	case infoPages[path]:
	default:
		r.Path = PathHome
		r.Step = StepLanding
	}
	if r.Step != "" {
		r.Prev = r.Step.Prev()
		r.Next = r.Step.Next()
	}
	r.Redirected = r.Path != requested
	return r
}

// PathOf returns the page path of a wizard step.
func PathOf(s Step) string {
	for path, step := range stepPaths {
		if step == s {
			return path
		}
	}
	return PathHome
}

// Link is a labelled navigation entry.
type Link struct {
	Label string `json:"label"`
	Path  string `json:"path"`
	Step  Step   `json:"step,omitempty"`
}

// LanguageOption is an entry of the language switch.
type LanguageOption struct {
	Code   i18n.Language `json:"code"`
	Label  string        `json:"label"`
	Active bool          `json:"active"`
}

var languageLabels = map[i18n.Language]string{
	i18n.Portuguese: "PT",
	i18n.Japanese:   "JP",
}

// Chrome is the header and footer shared by every page.
type Chrome struct {
	Language  i18n.Language    `json:"language"`
	Brand     string           `json:"brand"`
	Languages []LanguageOption `json:"languages"`
	Steps     []Link           `json:"steps"`
	Footer    Footer           `json:"footer"`
	Strings   i18n.Strings     `json:"strings"`
}

type Footer struct {
	Description string `json:"description"`
	Message     string `json:"message"`
	MadeWith    string `json:"madeWith"`
	Links       []Link `json:"links"`
}

// ChromeFor builds the chrome in lang.
func ChromeFor(lang i18n.Language) Chrome {
	if !lang.Valid() {
		lang = i18n.Default
	}
	t := i18n.For(lang)

	languages := make([]LanguageOption, 0, len(i18n.Languages()))
	for _, l := range i18n.Languages() {
		languages = append(languages, LanguageOption{Code: l, Label: languageLabels[l], Active: l == lang})
	}

	stepLabels := map[Step]string{
		StepLanding:  t.StepLanding,
		StepEditor:   t.StepEditor,
		StepPreview:  t.StepPreview,
		StepCheckout: t.StepCheckout,
	}
	steps := make([]Link, 0, len(Steps()))
	for _, s := range Steps() {
		steps = append(steps, Link{Label: stepLabels[s], Path: PathOf(s), Step: s})
	}

	return Chrome{
		Language:  lang,
		Brand:     t.Brand,
		Languages: languages,
		Steps:     steps,
		Footer: Footer{
			Description: t.FooterDesc,
			Message:     t.FooterMsg,
			MadeWith:    t.MadeWith,
			Links: []Link{
				{Label: t.FAQ, Path: PathFAQ},
				{Label: t.Privacy, Path: PathPrivacy},
				{Label: t.Tokutei, Path: PathTokutei},
				{Label: t.Contact, Path: PathContact},
			},
		},
		Strings: t,
	}
}
