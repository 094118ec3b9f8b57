package draft

import "kizuna/internal/domain/plan"

// Milestone is a dated event on the relationship timeline.
type Milestone struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Title string `json:"title"`
}

// CoupleDraft is the in-progress couple page of one session.
// Dates are kept as the strings the client sent (YYYY-MM-DD or
// YYYY-MM-DDTHH:MM); readers parse them when they need a time.
type CoupleDraft struct {
	Partner1        string        `json:"partner1"`
	Partner2        string        `json:"partner2"`
	StartDate       string        `json:"startDate"`
	Images          []string      `json:"images"`
	Videos          []string      `json:"videos"`
	MusicURL        string        `json:"musicUrl"`
	Message         string        `json:"message"`
	Effect          plan.Effect   `json:"effect"`
	Theme           plan.Theme    `json:"theme"`
	Frame           plan.Frame    `json:"frame"`
	FontFamily      plan.Font     `json:"fontFamily"`
	Milestones      []Milestone   `json:"milestones"`
	Plan            plan.PlanType `json:"plan"`
	Slug            string        `json:"slug"`
	RequestedDomain string        `json:"requestedDomain,omitempty"`
	CapsuleMessage  string        `json:"capsuleMessage,omitempty"`
	CapsuleOpenDate string        `json:"capsuleOpenDate,omitempty"`
}

// Default returns the draft of a fresh session.
func Default() CoupleDraft {
	return CoupleDraft{
		Images:     []string{},
		Videos:     []string{},
		Milestones: []Milestone{},
		Effect:     plan.EffectNone,
		Theme:      plan.ThemeRomantic,
		Frame:      plan.FrameNone,
		FontFamily: plan.FontRomantic,
		Plan:       plan.PlanBasic,
	}
}

// Clone returns a copy that shares no slices with d.
func (d CoupleDraft) Clone() CoupleDraft {
	out := d
	out.Images = append([]string{}, d.Images...)
	out.Videos = append([]string{}, d.Videos...)
	out.Milestones = append([]Milestone{}, d.Milestones...)
	return out
}

// normalize replaces null lists left by hand-edited or older records so
// that a loaded draft always re-encodes the same way.
func (d *CoupleDraft) normalize() {
	if d.Images == nil {
		d.Images = []string{}
	}
	if d.Videos == nil {
		d.Videos = []string{}
	}
	if d.Milestones == nil {
		d.Milestones = []Milestone{}
	}
}
