package editor

import (
	"kizuna/internal/domain/draft"
	"kizuna/internal/domain/plan"
)

// FieldsRequest is a partial update of the plain draft fields. Lists,
// plan and requested domain have their own operations.
type FieldsRequest struct {
	Partner1        *string      `json:"partner1" validate:"omitempty,max=60"`
	Partner2        *string      `json:"partner2" validate:"omitempty,max=60"`
	StartDate       *string      `json:"startDate" validate:"omitempty,max=32"`
	Message         *string      `json:"message" validate:"omitempty,max=4000"`
	MusicURL        *string      `json:"musicUrl" validate:"omitempty,max=500"`
	Effect          *plan.Effect `json:"effect"`
	Theme           *plan.Theme  `json:"theme"`
	Frame           *plan.Frame  `json:"frame"`
	FontFamily      *plan.Font   `json:"fontFamily"`
	Slug            *string      `json:"slug" validate:"omitempty,max=80"`
	CapsuleMessage  *string      `json:"capsuleMessage" validate:"omitempty,max=4000"`
	CapsuleOpenDate *string      `json:"capsuleOpenDate" validate:"omitempty,max=32"`
}

// VideoRequest sets one entry of the video list
type VideoRequest struct {
	URL string `json:"url" validate:"max=500"`
}

// MilestoneRequest edits a milestone
type MilestoneRequest struct {
	Date  *string `json:"date" validate:"omitempty,max=32"`
	Title *string `json:"title" validate:"omitempty,max=120"`
}

// DomainCheckRequest is the free-text custom domain query
type DomainCheckRequest struct {
	Query string `json:"query" validate:"required,max=80"`
}

// UploadResult is the draft after an image upload
type UploadResult struct {
	Draft   draft.CoupleDraft `json:"draft"`
	Kept    int               `json:"kept"`
	Dropped int               `json:"dropped"`
	Notice  string            `json:"notice,omitempty"`
}

// DomainStatus is the state of a domain availability check
type DomainStatus string

const (
	DomainChecking    DomainStatus = "checking"
	DomainAvailable   DomainStatus = "available"
	DomainUnavailable DomainStatus = "unavailable"
)

// DomainProgress is one status step of a running check
type DomainProgress struct {
	Status  DomainStatus `json:"status"`
	Step    int          `json:"step"`
	Total   int          `json:"total"`
	Message string       `json:"message"`
}

// DomainResult is the outcome of a check
type DomainResult struct {
	Query     string       `json:"query"`
	Domain    string       `json:"domain"`
	Status    DomainStatus `json:"status"`
	Available bool         `json:"available"`
	Message   string       `json:"message"`
}
