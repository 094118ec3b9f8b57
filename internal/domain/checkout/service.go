package checkout

import (
	"context"
	"fmt"
	"log"

	"kizuna/internal/domain/draft"
	"kizuna/internal/domain/i18n"
	"kizuna/internal/domain/plan"
	"kizuna/internal/pkg/validator"
)

// ValidationError lists the card fields that failed after formatting.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return fmt.Sprintf("%v: %v", ErrInvalidCard, e.Fields) }
func (e *ValidationError) Unwrap() error { return ErrInvalidCard }

// Service runs the mock checkout. It reads the draft but never writes it.
type Service struct {
	links     Links
	processor Processor
}

func NewService(links Links, processor Processor) *Service {
	return &Service{links: links, processor: processor}
}

func (s *Service) Links() Links { return s.links }

// Summary describes the order for d, falling back to the first plan when
// d.Plan is not a catalog id.
func (s *Service) Summary(d draft.CoupleDraft, lang i18n.Language) Summary {
	p := plan.FindOrFirst(lang, d.Plan)
	pageURL := s.links.PageURL(d)
	return Summary{
		Plan:             p.ID,
		PlanName:         p.Name,
		Price:            p.Price,
		Features:         p.Features,
		PageURL:          pageURL,
		QRCodeURL:        s.links.QRCodeURL(pageURL),
		CustomDomain:     plan.IsTopTier(d.Plan) && d.RequestedDomain != "",
		SimulationNotice: i18n.For(lang).SimulationNotice,
	}
}

// Pay formats the card fields, validates them and hands the charge to the
// processor.
func (s *Service) Pay(ctx context.Context, d draft.CoupleDraft, lang i18n.Language, req PaymentRequest) (Result, error) {
	card := FormatCard(req.CardNumber, req.CardExpiry, req.CardCVC, req.CardName)
	if errs := validator.Validate(&card); errs != nil {
		return Result{}, &ValidationError{Fields: errs}
	}

	summary := s.Summary(d, lang)
	receipt, err := s.processor.Charge(ctx, Charge{
		Email:  req.Email,
		Card:   card,
		Amount: summary.Price,
		Plan:   string(summary.Plan),
	})
	if err != nil {
		log.Printf("checkout_failed plan=%s last4=%s error=%v", summary.Plan, card.Last4(), err)
		return Result{}, err
	}
	log.Printf("checkout_success plan=%s reference=%s simulated=%t", summary.Plan, receipt.Reference, receipt.Simulated)

	t := i18n.For(lang)
	return Result{
		Status:    "success",
		Title:     t.PaymentSuccess,
		Message:   t.ThankYou,
		EmailSent: t.EmailSentMsg,
		Email:     req.Email,
		PageURL:   summary.PageURL,
		QRCodeURL: summary.QRCodeURL,
		QRLabel:   t.QRCodeLabel,
		Receipt:   receipt,
	}, nil
}
