package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fund-selector/domain"
)

var allTiers = []domain.RiskTier{domain.RiskLow, domain.RiskMedium, domain.RiskHigh}

var allHorizons = []domain.HorizonBucket{domain.HorizonLong, domain.HorizonMedium, domain.HorizonShort}

func TestResolveRisk_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		age      int
		income   float64
		expenses float64
		debt     float64
		stated   domain.RiskTier
		horizon  domain.HorizonBucket
		expected domain.RiskTier
	}{
		{"healthy long horizon saver is nudged up", 30, 100000, 40000, 10000, domain.RiskMedium, domain.HorizonLong, domain.RiskHigh},
		{"medium horizon keeps stated tier", 50, 80000, 50000, 20000, domain.RiskHigh, domain.HorizonMedium, domain.RiskHigh},
		{"short horizon is capped at low", 60, 60000, 30000, 0, domain.RiskHigh, domain.HorizonShort, domain.RiskLow},
		{"heavy debt service downgrades and blocks nudge", 35, 50000, 20000, 22000, domain.RiskMedium, domain.HorizonLong, domain.RiskLow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			horizon := ClassifyHorizon(tc.age)
			assert.Equal(t, tc.horizon, horizon)
			got := ResolveRisk(tc.stated, horizon, tc.income, tc.expenses, tc.debt)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestComputeRatios(t *testing.T) {
	r := ComputeRatios(100000, 40000, 10000)
	assert.InDelta(t, 0.10, r.DebtServiceRatio, 1e-9)
	assert.InDelta(t, 0.50, r.SavingsRate, 1e-9)
	assert.Equal(t, 50000.0, r.Surplus)

	r = ComputeRatios(50000, 20000, 22000)
	assert.InDelta(t, 0.44, r.DebtServiceRatio, 1e-9)
	assert.InDelta(t, 0.16, r.SavingsRate, 1e-9)
}

func TestComputeRatios_ZeroOrNegativeIncome(t *testing.T) {
	for _, income := range []float64{0, -1000} {
		r := ComputeRatios(income, 500, 200)
		assert.Zero(t, r.DebtServiceRatio)
		assert.Zero(t, r.SavingsRate)
		assert.Equal(t, income-700, r.Surplus)
	}
}

func TestResolveRisk_ZeroIncome(t *testing.T) {
	// Both ratios are 0: savings rate 0 < 0.10 downgrades one step.
	assert.Equal(t, domain.RiskMedium, ResolveRisk(domain.RiskHigh, domain.HorizonMedium, 0, 100, 100))
	assert.Equal(t, domain.RiskLow, ResolveRisk(domain.RiskLow, domain.HorizonLong, 0, 0, 0))
	assert.Equal(t, domain.RiskLow, ResolveRisk(domain.RiskMedium, domain.HorizonLong, 0, 0, 0))
}

func TestResolveRisk_UnknownStatedTierTreatedAsLow(t *testing.T) {
	got := ResolveRisk(domain.RiskTier(9), domain.HorizonMedium, 100000, 50000, 0)
	assert.Equal(t, domain.RiskLow, got)

	got = ResolveRisk(domain.RiskTier(-3), domain.HorizonLong, 100000, 20000, 0)
	assert.Equal(t, domain.RiskMedium, got, "low plus one nudge")
}

func TestResolveRisk_BothDowngradeTriggersCostOneStep(t *testing.T) {
	// debt ratio 0.5 and savings rate 0.0
	got := ResolveRisk(domain.RiskHigh, domain.HorizonMedium, 10000, 5000, 5000)
	assert.Equal(t, domain.RiskMedium, got)
}

func TestResolveRisk_DowngradeFlooredAtLow(t *testing.T) {
	got := ResolveRisk(domain.RiskLow, domain.HorizonMedium, 10000, 9500, 0)
	assert.Equal(t, domain.RiskLow, got)
}

func TestResolveRisk_NudgeCappedAtHigh(t *testing.T) {
	got := ResolveRisk(domain.RiskHigh, domain.HorizonLong, 100000, 10000, 0)
	assert.Equal(t, domain.RiskHigh, got)
}

func TestResolveRisk_ThresholdBoundaries(t *testing.T) {
	// Exactly 40% debt service does not downgrade; savings rate 10% does not either.
	assert.Equal(t, domain.RiskHigh, ResolveRisk(domain.RiskHigh, domain.HorizonMedium, 100, 50, 40))
	// Exactly 20% debt and 25% savings still nudges.
	assert.Equal(t, domain.RiskHigh, ResolveRisk(domain.RiskMedium, domain.HorizonLong, 100, 55, 20))
	// Savings just below 25% does not nudge.
	assert.Equal(t, domain.RiskMedium, ResolveRisk(domain.RiskMedium, domain.HorizonLong, 100, 56, 20))
}

func TestResolveRisk_ShortHorizonAlwaysLow(t *testing.T) {
	incomes := []float64{0, 1000, 50000, 1e7}
	for _, stated := range allTiers {
		for _, income := range incomes {
			for _, expenses := range []float64{0, 500, 40000} {
				for _, debt := range []float64{0, 100, 30000, 2e7} {
					got := ResolveRisk(stated, domain.HorizonShort, income, expenses, debt)
					assert.Equal(t, domain.RiskLow, got,
						"stated=%s income=%v expenses=%v debt=%v", stated, income, expenses, debt)
				}
			}
		}
	}
}

func TestResolveRisk_MonotonicInDebtService(t *testing.T) {
	const income, expenses = 50000.0, 15000.0
	for _, stated := range allTiers {
		for _, horizon := range allHorizons {
			prev := ResolveRisk(stated, horizon, income, expenses, 0)
			for debt := 250.0; debt <= 2*income; debt += 250 {
				got := ResolveRisk(stated, horizon, income, expenses, debt)
				assert.LessOrEqual(t, int(got), int(prev),
					"stated=%s horizon=%s debt=%v", stated, horizon, debt)
				prev = got
			}
		}
	}
}

func TestResolveRisk_Deterministic(t *testing.T) {
	first := ResolveRisk(domain.RiskMedium, domain.HorizonLong, 73000, 31000, 9000)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, ResolveRisk(domain.RiskMedium, domain.HorizonLong, 73000, 31000, 9000))
	}
}

func TestResolveRisk_DebtAboveIncome(t *testing.T) {
	got := ResolveRisk(domain.RiskHigh, domain.HorizonLong, 10000, 2000, 15000)
	assert.Equal(t, domain.RiskMedium, got)
}
