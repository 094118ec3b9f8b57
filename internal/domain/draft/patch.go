package draft

import "kizuna/internal/domain/plan"

// Patch is a partial update. Nil fields are left untouched; list fields
// replace the whole list.
type Patch struct {
	Partner1        *string        `json:"partner1,omitempty"`
	Partner2        *string        `json:"partner2,omitempty"`
	StartDate       *string        `json:"startDate,omitempty"`
	Images          *[]string      `json:"images,omitempty"`
	Videos          *[]string      `json:"videos,omitempty"`
	MusicURL        *string        `json:"musicUrl,omitempty"`
	Message         *string        `json:"message,omitempty"`
	Effect          *plan.Effect   `json:"effect,omitempty"`
	Theme           *plan.Theme    `json:"theme,omitempty"`
	Frame           *plan.Frame    `json:"frame,omitempty"`
	FontFamily      *plan.Font     `json:"fontFamily,omitempty"`
	Milestones      *[]Milestone   `json:"milestones,omitempty"`
	Plan            *plan.PlanType `json:"plan,omitempty"`
	Slug            *string        `json:"slug,omitempty"`
	RequestedDomain *string        `json:"requestedDomain,omitempty"`
	CapsuleMessage  *string        `json:"capsuleMessage,omitempty"`
	CapsuleOpenDate *string        `json:"capsuleOpenDate,omitempty"`
}

// Ptr is a helper for building patches.
func Ptr[T any](v T) *T { return &v }

// IsEmpty reports whether p sets no field.
func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

// Apply merges p shallowly onto d and returns the result. d is not modified.
func (p Patch) Apply(d CoupleDraft) CoupleDraft {
	out := d.Clone()
	setIf(&out.Partner1, p.Partner1)
	setIf(&out.Partner2, p.Partner2)
	setIf(&out.StartDate, p.StartDate)
	setIf(&out.MusicURL, p.MusicURL)
	setIf(&out.Message, p.Message)
	setIf(&out.Effect, p.Effect)
	setIf(&out.Theme, p.Theme)
	setIf(&out.Frame, p.Frame)
	setIf(&out.FontFamily, p.FontFamily)
	setIf(&out.Plan, p.Plan)
	setIf(&out.Slug, p.Slug)
	setIf(&out.RequestedDomain, p.RequestedDomain)
	setIf(&out.CapsuleMessage, p.CapsuleMessage)
	setIf(&out.CapsuleOpenDate, p.CapsuleOpenDate)

	if p.Images != nil {
		out.Images = append([]string{}, (*p.Images)...)
	}
	if p.Videos != nil {
		out.Videos = append([]string{}, (*p.Videos)...)
	}
	if p.Milestones != nil {
		out.Milestones = append([]Milestone{}, (*p.Milestones)...)
	}
	return out
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
