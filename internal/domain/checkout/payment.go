package checkout

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"kizuna/internal/pkg/clock"
)

// FormatCardNumber keeps digits only and groups them by four, cut at 19
// characters (16 digits and three spaces).
func FormatCardNumber(v string) string {
	digits := onlyDigits(v)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if len(out) > 19 {
		out = out[:19]
	}
	return out
}

// FormatExpiry turns digits into MM/YY.
func FormatExpiry(v string) string {
	d := onlyDigits(v)
	if len(d) > 4 {
		d = d[:4]
	}
	if len(d) > 2 {
		return d[:2] + "/" + d[2:]
	}
	return d
}

// FormatCVC keeps at most four digits.
func FormatCVC(v string) string {
	d := onlyDigits(v)
	if len(d) > 4 {
		d = d[:4]
	}
	return d
}

func FormatHolder(v string) string {
	return strings.ToUpper(strings.Join(strings.Fields(v), " "))
}

func onlyDigits(v string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, v)
}

// Card is a formatted card as shown on the form.
type Card struct {
	Number string `json:"number" validate:"required,min=14,max=19"`
	Expiry string `json:"expiry" validate:"required,cardexpiry"`
	CVC    string `json:"cvc" validate:"required,numeric,min=3,max=4"`
	Holder string `json:"holder" validate:"required,max=80"`
}

// FormatCard applies the form formatting to raw input.
func FormatCard(number, expiry, cvc, holder string) Card {
	return Card{
		Number: FormatCardNumber(number),
		Expiry: FormatExpiry(expiry),
		CVC:    FormatCVC(cvc),
		Holder: FormatHolder(holder),
	}
}

// Last4 returns the last four digits of the card number.
func (c Card) Last4() string {
	d := onlyDigits(c.Number)
	if len(d) < 4 {
		return d
	}
	return d[len(d)-4:]
}

// Charge is one payment attempt.
type Charge struct {
	Email  string
	Card   Card
	Amount string
	Plan   string
}

// Receipt is returned for an accepted charge.
type Receipt struct {
	Reference string    `json:"reference"`
	Last4     string    `json:"last4"`
	PaidAt    time.Time `json:"paidAt"`
	Simulated bool      `json:"simulated"`
}

// Processor charges a card. SimulatedProcessor is the only one; no
// payment provider is contacted.
type Processor interface {
	Charge(ctx context.Context, ch Charge) (Receipt, error)
}

// DeclinedTestCard is always declined by SimulatedProcessor.
const DeclinedTestCard = "4000000000000002"

// SimulatedProcessor waits a fixed delay and accepts every card except
// DeclinedTestCard.
type SimulatedProcessor struct {
	Clock clock.Clock
	Delay time.Duration
}

func (p SimulatedProcessor) Charge(ctx context.Context, ch Charge) (Receipt, error) {
	if err := p.Clock.Sleep(ctx, p.Delay); err != nil {
		return Receipt{}, err
	}
	if onlyDigits(ch.Card.Number) == DeclinedTestCard {
		return Receipt{}, ErrPaymentDeclined
	}
	return Receipt{
		Reference: "KZN-" + strings.ToUpper(strings.Map(dropDash, uuid.New().String())[:12]),
		Last4:     ch.Card.Last4(),
		PaidAt:    p.Clock.Now(),
		Simulated: true,
	}, nil
}

func dropDash(r rune) rune {
	if r == '-' || unicode.IsSpace(r) {
		return -1
	}
	return r
}
