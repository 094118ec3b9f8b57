package editor

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"kizuna/internal/domain/draft"
	"kizuna/internal/domain/plan"
	"kizuna/internal/pkg/clock"
)

// Options tunes the editor's local actions.
type Options struct {
	MaxUploadBytes    int64
	MaxImageDimension int
	DomainStepDelay   time.Duration
}

// Service applies editor actions to a session draft. Every write is
// checked against the draft's current plan inside the store's lock, so a
// concurrent plan change cannot slip a locked value through.
type Service struct {
	clock   clock.Clock
	checker DomainChecker
	opts    Options
}

func NewService(clk clock.Clock, checker DomainChecker, opts Options) *Service {
	return &Service{clock: clk, checker: checker, opts: opts}
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeSlug lowercases s and turns whitespace runs into dashes.
func NormalizeSlug(s string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(s), "-")
}

func locked(feature string, p plan.PlanType, required plan.PlanType) *LockedError {
	return &LockedError{Feature: feature, PlanName: string(p), Required: string(required)}
}

// UpdateFields validates req against the current plan and merges it.
// Clearing a gated field is always allowed.
func (s *Service) UpdateFields(ctx context.Context, store *draft.Store, req FieldsRequest) (draft.CoupleDraft, error) {
	return store.Mutate(ctx, func(d draft.CoupleDraft) (draft.Patch, error) {
		p := d.Plan
		patch := draft.Patch{
			Partner1:        req.Partner1,
			Partner2:        req.Partner2,
			StartDate:       req.StartDate,
			Message:         req.Message,
			MusicURL:        req.MusicURL,
			CapsuleMessage:  req.CapsuleMessage,
			CapsuleOpenDate: req.CapsuleOpenDate,
		}

		if req.MusicURL != nil && *req.MusicURL != "" && !plan.CanUseMusic(p) {
			return draft.Patch{}, locked("music", p, plan.PlanPremium)
		}
		if (nonEmpty(req.CapsuleMessage) || nonEmpty(req.CapsuleOpenDate)) && !plan.CanUseCapsule(p) {
			return draft.Patch{}, locked("capsule", p, plan.PlanInfinity)
		}

		if req.Effect != nil {
			if !req.Effect.Valid() {
				return draft.Patch{}, ErrInvalidOption
			}
			if !plan.CanUsePremiumEffect(*req.Effect, p) {
				required := plan.PlanPremium
				if *req.Effect == plan.EffectInfinity {
					required = plan.PlanInfinity
				}
				return draft.Patch{}, locked("effect", p, required)
			}
			patch.Effect = req.Effect
		}
		if req.Theme != nil {
			if !req.Theme.Valid() {
				return draft.Patch{}, ErrInvalidOption
			}
			if !plan.CanUsePremiumTheme(*req.Theme, p) {
				return draft.Patch{}, locked("theme", p, plan.PlanPremium)
			}
			patch.Theme = req.Theme
		}
		if req.Frame != nil {
			if !req.Frame.Valid() {
				return draft.Patch{}, ErrInvalidOption
			}
			if !plan.CanUseFrame(*req.Frame, p) {
				return draft.Patch{}, locked("frame", p, plan.PlanPremium)
			}
			patch.Frame = req.Frame
		}
		if req.FontFamily != nil {
			if !req.FontFamily.Valid() {
				return draft.Patch{}, ErrInvalidOption
			}
			patch.FontFamily = req.FontFamily
		}
		if req.Slug != nil {
			slug := NormalizeSlug(*req.Slug)
			patch.Slug = &slug
		}
		return patch, nil
	})
}

func nonEmpty(s *string) bool { return s != nil && *s != "" }

// AddVideo appends an empty placeholder while the plan's video limit
// allows it. At the limit nothing is written.
func (s *Service) AddVideo(ctx context.Context, store *draft.Store) (draft.CoupleDraft, error) {
	return store.Mutate(ctx, func(d draft.CoupleDraft) (draft.Patch, error) {
		limit := plan.VideoLimit(d.Plan)
		if len(d.Videos) >= limit {
			return draft.Patch{}, &LimitError{
				Err:       ErrVideoLimitReached,
				Current:   len(d.Videos),
				Limit:     limit,
				PlanName:  string(d.Plan),
				UpgradeTo: string(plan.NextPlan(d.Plan)),
			}
		}
		videos := append(d.Videos, "")
		return draft.Patch{Videos: &videos}, nil
	})
}

// UpdateVideo replaces one entry. URLs are not validated here; the
// preview skips entries it cannot embed.
func (s *Service) UpdateVideo(ctx context.Context, store *draft.Store, index int, url string) (draft.CoupleDraft, error) {
	return store.Mutate(ctx, func(d draft.CoupleDraft) (draft.Patch, error) {
		if !plan.CanUseVideos(d.Plan) {
			return draft.Patch{}, locked("videos", d.Plan, plan.PlanInfinity)
		}
		if index < 0 || index >= len(d.Videos) {
			return draft.Patch{}, ErrVideoIndex
		}
		videos := d.Videos
		videos[index] = strings.TrimSpace(url)
		return draft.Patch{Videos: &videos}, nil
	})
}

// RemoveVideo deletes one entry by position. Removal is allowed on any
// plan so a downgraded draft can be cleaned up.
func (s *Service) RemoveVideo(ctx context.Context, store *draft.Store, index int) (draft.CoupleDraft, error) {
	return store.Mutate(ctx, func(d draft.CoupleDraft) (draft.Patch, error) {
		if index < 0 || index >= len(d.Videos) {
			return draft.Patch{}, ErrVideoIndex
		}
		videos := append(d.Videos[:index:index], d.Videos[index+1:]...)
		return draft.Patch{Videos: &videos}, nil
	})
}

// AddMilestone appends an empty milestone with a fresh id.
func (s *Service) AddMilestone(ctx context.Context, store *draft.Store) (draft.CoupleDraft, draft.Milestone, error) {
	m := draft.Milestone{ID: uuid.New().String()}
	d, err := store.Mutate(ctx, func(d draft.CoupleDraft) (draft.Patch, error) {
		if !plan.CanUseMilestones(d.Plan) {
			return draft.Patch{}, locked("milestones", d.Plan, plan.PlanPremium)
		}
		milestones := append(d.Milestones, m)
		return draft.Patch{Milestones: &milestones}, nil
	})
	if err != nil {
		return draft.CoupleDraft{}, draft.Milestone{}, err
	}
	return d, m, nil
}

// UpdateMilestone merges req into the milestone with the given id.
func (s *Service) UpdateMilestone(ctx context.Context, store *draft.Store, id string, req MilestoneRequest) (draft.CoupleDraft, error) {
	return store.Mutate(ctx, func(d draft.CoupleDraft) (draft.Patch, error) {
		if !plan.CanUseMilestones(d.Plan) {
			return draft.Patch{}, locked("milestones", d.Plan, plan.PlanPremium)
		}
		milestones := d.Milestones
		for i := range milestones {
			if milestones[i].ID != id {
				continue
			}
			if req.Date != nil {
				milestones[i].Date = *req.Date
			}
			if req.Title != nil {
				milestones[i].Title = *req.Title
			}
			return draft.Patch{Milestones: &milestones}, nil
		}
		return draft.Patch{}, ErrMilestoneNotFound
	})
}

// RemoveMilestone deletes the milestone with the given id on any plan.
func (s *Service) RemoveMilestone(ctx context.Context, store *draft.Store, id string) (draft.CoupleDraft, error) {
	return store.Mutate(ctx, func(d draft.CoupleDraft) (draft.Patch, error) {
		milestones := make([]draft.Milestone, 0, len(d.Milestones))
		for _, m := range d.Milestones {
			if m.ID != id {
				milestones = append(milestones, m)
			}
		}
		if len(milestones) == len(d.Milestones) {
			return draft.Patch{}, ErrMilestoneNotFound
		}
		return draft.Patch{Milestones: &milestones}, nil
	})
}
