package editor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kizuna/internal/domain/i18n"
	"kizuna/internal/domain/plan"
)

func TestNormalizeDomain(t *testing.T) {
	cases := []struct {
		in, domain, label string
	}{
		{"ana-e-leo", "ana-e-leo.love", "ana-e-leo"},
		{"  Ana e Leo ", "ana-e-leo.love", "ana-e-leo"},
		{"www.nosso.com", "nosso.com", "nosso"},
		{"amor!!.love", "amor.love", "amor"},
		{"café", "caf.love", "caf"},
		{"---", "", ""},
	}
	for _, tc := range cases {
		domain, label := NormalizeDomain(tc.in)
		assert.Equal(t, tc.domain, domain, tc.in)
		assert.Equal(t, tc.label, label, tc.in)
	}
}

func TestSimulatedChecker(t *testing.T) {
	ctx := context.Background()
	cases := map[string]bool{
		"ana-e-leo.love": true,
		"ab.love":        false,
		"mykizuna.love":  false,
		"admin-page.com": false,
		"appletree.love": false,
		"nossoamor.love": true,
	}
	for domain, want := range cases {
		got, err := SimulatedChecker{}.Available(ctx, domain)
		require.NoError(t, err)
		assert.Equal(t, want, got, domain)
	}
}

func TestCheckDomain_InfinityAvailable(t *testing.T) {
	svc, store, clk := newTestService(t)
	ctx := context.Background()
	withPlan(t, store, plan.PlanInfinity)
	start := clk.Now()

	var steps []DomainProgress
	res, err := svc.CheckDomain(ctx, store, i18n.Portuguese, "ana-e-leo", func(p DomainProgress) {
		steps = append(steps, p)
	})
	require.NoError(t, err)
	assert.True(t, res.Available)
	assert.Equal(t, DomainAvailable, res.Status)
	assert.Equal(t, "ana-e-leo.love", res.Domain)

	require.Len(t, steps, 3)
	assert.Equal(t, 3, steps[2].Step)
	assert.Equal(t, i18n.For(i18n.Portuguese).DomainStepConnect, steps[0].Message)
	assert.Equal(t, 2400*time.Millisecond, clk.Now().Sub(start))

	d, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ana-e-leo.love", d.RequestedDomain)
}

func TestCheckDomain_UnavailableLeavesDraft(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()
	withPlan(t, store, plan.PlanInfinity)

	res, err := svc.CheckDomain(ctx, store, i18n.Japanese, "kizuna-love", nil)
	require.NoError(t, err)
	assert.False(t, res.Available)
	assert.Equal(t, i18n.For(i18n.Japanese).DomainUnavailable, res.Message)

	d, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, d.RequestedDomain)
}

func TestCheckDomain_LockedBelowInfinity(t *testing.T) {
	svc, store, _ := newTestService(t)
	withPlan(t, store, plan.PlanPremium)

	_, err := svc.CheckDomain(context.Background(), store, i18n.Portuguese, "ana-e-leo", nil)
	assert.ErrorIs(t, err, ErrFeatureLocked)
}

func TestCheckDomain_Cancelled(t *testing.T) {
	svc, store, _ := newTestService(t)
	withPlan(t, store, plan.PlanInfinity)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.CheckDomain(ctx, store, i18n.Portuguese, "ana-e-leo", nil)
	assert.ErrorIs(t, err, context.Canceled)
}
