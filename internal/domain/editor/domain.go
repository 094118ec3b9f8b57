package editor

import (
	"context"
	"log"
	"regexp"
	"strings"

	"kizuna/internal/domain/draft"
	"kizuna/internal/domain/i18n"
	"kizuna/internal/domain/plan"
)

// DomainChecker decides whether a normalized domain can be requested.
// SimulatedChecker is the only implementation; a registrar lookup would
// plug in here.
type DomainChecker interface {
	Available(ctx context.Context, domain string) (bool, error)
}

// Domain suffixes the service offers. The first one is appended when the
// query carries none.
var domainSuffixes = []string{".love", ".com"}

var reservedKeywords = []string{"kizuna", "admin", "google", "facebook", "apple", "test"}

const minDomainLabel = 3

var invalidLabelChars = regexp.MustCompile(`[^a-z0-9-]`)

// NormalizeDomain turns free text into a requestable domain: lowercase,
// spaces become dashes, anything outside [a-z0-9-] is dropped and ".love"
// is appended unless a known suffix is already present. It returns the
// full domain and its label.
func NormalizeDomain(query string) (domain, label string) {
	q := strings.ToLower(strings.TrimSpace(query))
	q = strings.TrimPrefix(q, "www.")

	suffix := domainSuffixes[0]
	for _, s := range domainSuffixes {
		if strings.HasSuffix(q, s) {
			suffix = s
			q = strings.TrimSuffix(q, s)
			break
		}
	}

	q = whitespaceRun.ReplaceAllString(q, "-")
	q = invalidLabelChars.ReplaceAllString(q, "")
	label = strings.Trim(q, "-")
	if label == "" {
		return "", ""
	}
	return label + suffix, label
}

// SimulatedChecker is a deterministic stand-in for a registrar: labels
// shorter than three characters or containing a reserved keyword are
// taken, everything else is free.
type SimulatedChecker struct{}

func (SimulatedChecker) Available(_ context.Context, domain string) (bool, error) {
	label := domain
	if i := strings.LastIndex(domain, "."); i >= 0 {
		label = domain[:i]
	}
	if len(label) < minDomainLabel {
		return false, nil
	}
	for _, kw := range reservedKeywords {
		if strings.Contains(label, kw) {
			return false, nil
		}
	}
	return true, nil
}

// CheckDomain runs the status sequence for query, reporting each step to
// progress (which may be nil), and writes requestedDomain only when the
// domain is available. Only Infinity drafts may check domains.
func (s *Service) CheckDomain(ctx context.Context, store *draft.Store, lang i18n.Language, query string, progress func(DomainProgress)) (DomainResult, error) {
	current, err := store.Load(ctx)
	if err != nil {
		return DomainResult{}, err
	}
	if !plan.CanUseCustomDomain(current.Plan) {
		return DomainResult{}, locked("customDomain", current.Plan, plan.PlanInfinity)
	}

	domain, _ := NormalizeDomain(query)
	if domain == "" {
		return DomainResult{}, ErrInvalidDomain
	}

	t := i18n.For(lang)
	steps := []string{t.DomainStepConnect, t.DomainStepLookup, t.DomainStepVerify}
	for i, msg := range steps {
		if progress != nil {
			progress(DomainProgress{Status: DomainChecking, Step: i + 1, Total: len(steps), Message: msg})
		}
		if err := s.clock.Sleep(ctx, s.opts.DomainStepDelay); err != nil {
			return DomainResult{}, err
		}
	}

	available, err := s.checker.Available(ctx, domain)
	if err != nil {
		return DomainResult{}, err
	}

	res := DomainResult{Query: query, Domain: domain, Status: DomainUnavailable, Message: t.DomainUnavailable}
	if available {
		_, err := store.Mutate(ctx, func(d draft.CoupleDraft) (draft.Patch, error) {
			if !plan.CanUseCustomDomain(d.Plan) {
				return draft.Patch{}, locked("customDomain", d.Plan, plan.PlanInfinity)
			}
			return draft.Patch{RequestedDomain: &domain}, nil
		})
		if err != nil {
			return DomainResult{}, err
		}
		res.Status = DomainAvailable
		res.Available = true
		res.Message = t.DomainAvailable
	}
	log.Printf("editor_domain_check ns=%s domain=%s status=%s", store.Namespace(), domain, res.Status)
	return res, nil
}
