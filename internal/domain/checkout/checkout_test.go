package checkout

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kizuna/internal/domain/draft"
	"kizuna/internal/domain/i18n"
	"kizuna/internal/domain/plan"
	"kizuna/internal/pkg/clock"
)

func TestPageURL(t *testing.T) {
	l := DefaultLinks()

	d := draft.Default()
	assert.Equal(t, "https://kizuna.love/nosso-amor", l.PageURL(d))

	d.Slug = "ana-e-leo"
	assert.Equal(t, "https://kizuna.love/ana-e-leo", l.PageURL(d))

	// a domain on a non-Infinity draft is ignored
	d.RequestedDomain = "ana-e-leo.love"
	d.Plan = plan.PlanPremium
	assert.Equal(t, "https://kizuna.love/ana-e-leo", l.PageURL(d))

	d.Plan = plan.PlanInfinity
	assert.Equal(t, "https://www.ana-e-leo.love", l.PageURL(d))
}

func TestQRCodeURL(t *testing.T) {
	l := DefaultLinks()
	got := l.QRCodeURL("https://kizuna.love/ana-e-leo")

	assert.Equal(t,
		"https://api.qrserver.com/v1/create-qr-code/?size=500x500&data=https%3A%2F%2Fkizuna.love%2Fana-e-leo&color=050505&bgcolor=ffffff",
		got)

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "https://kizuna.love/ana-e-leo", u.Query().Get("data"))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "4242 4242 4242 4242", FormatCardNumber("4242424242424242"))
	assert.Equal(t, "4242 4242 4242 4242", FormatCardNumber("4242-4242 4242x42424242999"))
	assert.Equal(t, "1234 5", FormatCardNumber("12345"))

	assert.Equal(t, "12/27", FormatExpiry("1227"))
	assert.Equal(t, "12/27", FormatExpiry("12/2799"))
	assert.Equal(t, "1", FormatExpiry("1"))

	assert.Equal(t, "123", FormatCVC("1a2b3"))
	assert.Equal(t, "1234", FormatCVC("123456"))

	assert.Equal(t, "ANA SOUZA", FormatHolder("  ana   souza "))
}

func newTestService(clk clock.Clock) *Service {
	return NewService(DefaultLinks(), SimulatedProcessor{Clock: clk, Delay: 2500 * time.Millisecond})
}

func validRequest() PaymentRequest {
	return PaymentRequest{
		Email:      "ana@example.com",
		CardNumber: "4242424242424242",
		CardExpiry: "1229",
		CardCVC:    "123",
		CardName:   "ana souza",
	}
}

func TestPay_Success(t *testing.T) {
	clk := clock.NewFake(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	svc := newTestService(clk)
	d := draft.Default()
	d.Plan = plan.PlanInfinity
	d.RequestedDomain = "ana-e-leo.love"
	before := d.Clone()

	res, err := svc.Pay(context.Background(), d, i18n.Portuguese, validRequest())
	require.NoError(t, err)

	assert.Equal(t, "success", res.Status)
	assert.Equal(t, "https://www.ana-e-leo.love", res.PageURL)
	assert.Contains(t, res.QRCodeURL, url.QueryEscape(res.PageURL))
	assert.Equal(t, "4242", res.Receipt.Last4)
	assert.True(t, res.Receipt.Simulated)
	assert.Equal(t, clk.Now(), res.Receipt.PaidAt)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 2, 500_000_000, time.UTC), clk.Now())
	assert.Equal(t, before, d)
}

func TestPay_Declined(t *testing.T) {
	svc := newTestService(clock.NewFake(time.Now()))
	req := validRequest()
	req.CardNumber = "4000 0000 0000 0002"

	_, err := svc.Pay(context.Background(), draft.Default(), i18n.Portuguese, req)
	assert.ErrorIs(t, err, ErrPaymentDeclined)
}

func TestPay_InvalidCard(t *testing.T) {
	svc := newTestService(clock.NewFake(time.Now()))
	req := validRequest()
	req.CardExpiry = "1329"
	req.CardCVC = "1"

	_, err := svc.Pay(context.Background(), draft.Default(), i18n.Portuguese, req)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "expiry")
	assert.Contains(t, verr.Fields, "cvc")
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestSummary_FallsBackToFirstPlan(t *testing.T) {
	svc := newTestService(clock.Real())
	d := draft.Default()
	d.Plan = "GOLD"

	s := svc.Summary(d, i18n.Japanese)
	assert.Equal(t, plan.PlanBasic, s.Plan)
	assert.NotEmpty(t, s.PlanName)
	assert.False(t, s.CustomDomain)
	assert.Equal(t, i18n.For(i18n.Japanese).SimulationNotice, s.SimulationNotice)
}
