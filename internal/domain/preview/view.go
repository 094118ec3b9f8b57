package preview

import (
	"fmt"
	"time"

	"kizuna/internal/domain/checkout"
	"kizuna/internal/domain/draft"
	"kizuna/internal/domain/i18n"
	"kizuna/internal/domain/plan"
	"kizuna/internal/pkg/clock"
	"kizuna/internal/pkg/dataurl"
)

// Template is the page layout, one per plan tier.
type Template string

const (
	TemplateBasic    Template = "basic"
	TemplatePremium  Template = "premium"
	TemplateInfinity Template = "infinity"
)

func templateFor(p plan.PlanType) Template {
	switch {
	case plan.IsTopTier(p):
		return TemplateInfinity
	case plan.IsPremiumOrAbove(p):
		return TemplatePremium
	default:
		return TemplateBasic
	}
}

// Embed is a video that could be embedded.
type Embed struct {
	Source   string `json:"source"`
	VideoID  string `json:"videoId"`
	EmbedURL string `json:"embedUrl"`
}

// Gallery is the photo section. Static galleries show every photo at once;
// slideshows show Images[Slide].
type Gallery struct {
	Images []string `json:"images"`
	Static bool     `json:"static"`
	Slide  int      `json:"slide"`
}

// SEO holds the page title and meta tags.
type SEO struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	OGTitle       string `json:"ogTitle"`
	OGDescription string `json:"ogDescription"`
	OGImage       string `json:"ogImage,omitempty"`
}

// Share is the native share payload.
type Share struct {
	Title     string `json:"title"`
	Text      string `json:"text"`
	URL       string `json:"url"`
	QRCodeURL string `json:"qrCodeUrl"`
}

// Labels are the counter and section captions in the page language.
type Labels struct {
	TogetherForever string `json:"togetherForever"`
	Days            string `json:"days"`
	Hours           string `json:"hours"`
	Mins            string `json:"mins"`
	Secs            string `json:"secs"`
	Milestones      string `json:"milestones"`
	Videos          string `json:"videos"`
	CapsuleSealed   string `json:"capsuleSealed"`
}

// View is everything the page needs to render a draft at one instant.
// It is derived on every request and never stored.
type View struct {
	Template   Template          `json:"template"`
	Plan       plan.PlanType     `json:"plan"`
	Partner1   string            `json:"partner1"`
	Partner2   string            `json:"partner2"`
	Theme      plan.ThemeOption  `json:"theme"`
	Effect     plan.Effect       `json:"effect"`
	Frame      plan.Frame        `json:"frame"`
	Font       plan.Font         `json:"font"`
	Counter    *Counter          `json:"counter,omitempty"`
	Gallery    Gallery           `json:"gallery"`
	Message    string            `json:"message,omitempty"`
	Music      *Embed            `json:"music,omitempty"`
	Videos     []Embed           `json:"videos"`
	Milestones []draft.Milestone `json:"milestones"`
	Capsule    *Capsule          `json:"capsule,omitempty"`
	SEO        SEO               `json:"seo"`
	Share      Share             `json:"share"`
	Labels     Labels            `json:"labels"`
	RenderedAt time.Time         `json:"renderedAt"`
}

// Renderer derives views from drafts.
type Renderer struct {
	clock         clock.Clock
	links         checkout.Links
	slideInterval time.Duration
}

func NewRenderer(clk clock.Clock, links checkout.Links, slideInterval time.Duration) *Renderer {
	return &Renderer{clock: clk, links: links, slideInterval: slideInterval}
}

// Render builds the view of d. mounted is how long the page has been
// showing and drives the slideshow.
//
// The draft may hold values its plan no longer unlocks (after a
// downgrade). Render shows only what the plan allows: lists are cut to the
// plan limits, locked options fall back to the defaults, and gated
// sections are left out.
func (r *Renderer) Render(d draft.CoupleDraft, lang i18n.Language, mounted time.Duration) View {
	now := r.clock.Now()
	t := i18n.For(lang)
	p := plan.Resolve(d.Plan).Plan

	v := View{
		Template:   templateFor(p),
		Plan:       p,
		Partner1:   orDefault(d.Partner1, t.DefaultPartner1),
		Partner2:   orDefault(d.Partner2, t.DefaultPartner2),
		Theme:      resolveTheme(d.Theme, p),
		Effect:     resolveEffect(d.Effect, p),
		Frame:      resolveFrame(d.Frame, p),
		Font:       resolveFont(d.FontFamily),
		Counter:    Elapsed(d.StartDate, now),
		Message:    d.Message,
		Videos:     []Embed{},
		Milestones: []draft.Milestone{},
		RenderedAt: now,
		Labels: Labels{
			TogetherForever: t.TogetherForever,
			Days:            t.Days,
			Hours:           t.Hours,
			Mins:            t.Mins,
			Secs:            t.Secs,
			Milestones:      t.Milestones,
			Videos:          t.VideosLabel,
			CapsuleSealed:   t.CapsuleSealed,
		},
	}

	images := d.Images
	if limit := plan.ImageLimit(p); len(images) > limit {
		images = images[:limit]
	}
	v.Gallery = Gallery{Images: append([]string{}, images...), Static: v.Template == TemplateInfinity}
	if !v.Gallery.Static {
		v.Gallery.Slide = SlideIndex(len(images), mounted, r.slideInterval)
	}

	if plan.CanUseMusic(p) {
		if id, ok := YouTubeID(d.MusicURL); ok {
			v.Music = &Embed{Source: d.MusicURL, VideoID: id, EmbedURL: EmbedURL(id)}
		}
	}

	videos := d.Videos
	if limit := plan.VideoLimit(p); len(videos) > limit {
		videos = videos[:limit]
	}
	for _, u := range videos {
		if id, ok := YouTubeID(u); ok {
			v.Videos = append(v.Videos, Embed{Source: u, VideoID: id, EmbedURL: EmbedURL(id)})
		}
	}

	if plan.CanUseMilestones(p) {
		v.Milestones = sortMilestones(d.Milestones)
	}
	if plan.CanUseCapsule(p) {
		if c := capsuleFor(d, now); c != nil {
			c.Title = t.CapsuleTitle
			v.Capsule = c
		}
	}

	title := fmt.Sprintf("%s & %s | KIZUNA", v.Partner1, v.Partner2)
	v.SEO = SEO{
		Title:         title,
		Description:   fmt.Sprintf(t.MetaDescription, v.Partner1, v.Partner2),
		OGTitle:       title,
		OGDescription: orDefault(d.Message, t.MetaFallback),
	}
	// crawlers cannot read inline images
	if len(images) > 0 && !dataurl.IsDataURL(images[0]) {
		v.SEO.OGImage = images[0]
	}

	pageURL := r.links.PageURL(d)
	v.Share = Share{
		Title:     fmt.Sprintf("KIZUNA - %s & %s", v.Partner1, v.Partner2),
		Text:      t.NativeShareMsg,
		URL:       pageURL,
		QRCodeURL: r.links.QRCodeURL(pageURL),
	}
	return v
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func resolveTheme(id plan.Theme, p plan.PlanType) plan.ThemeOption {
	themes := plan.Themes()
	if opt, ok := plan.FindTheme(id); ok && plan.CanUsePremiumTheme(id, p) {
		return opt
	}
	return themes[0]
}

func resolveEffect(e plan.Effect, p plan.PlanType) plan.Effect {
	if e.Valid() && plan.CanUsePremiumEffect(e, p) {
		return e
	}
	return plan.EffectNone
}

func resolveFrame(f plan.Frame, p plan.PlanType) plan.Frame {
	if f.Valid() && plan.CanUseFrame(f, p) {
		return f
	}
	return plan.FrameNone
}

func resolveFont(f plan.Font) plan.Font {
	if f.Valid() {
		return f
	}
	return plan.FontRomantic
}
