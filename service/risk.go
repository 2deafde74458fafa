package service

import "fund-selector/domain"

// CashFlowRatios are the ratios the risk rules read.
type CashFlowRatios struct {
	DebtServiceRatio float64
	Surplus          float64
	SavingsRate      float64
}

// ComputeRatios derives the cash-flow ratios. With income <= 0 both ratios
// are 0.
func ComputeRatios(income, expenses, debtService float64) CashFlowRatios {
	r := CashFlowRatios{Surplus: income - expenses - debtService}
	if income > 0 {
		r.DebtServiceRatio = debtService / income
		r.SavingsRate = r.Surplus / income
	}
	return r
}

// ResolveRisk adjusts the stated tier for affordability and horizon.
// Rules run in a fixed order: downgrade, short-horizon cap, nudge up.
// An unrecognized stated tier is treated as RiskLow.
func ResolveRisk(
	stated domain.RiskTier,
	horizon domain.HorizonBucket,
	income, expenses, debtService float64,
) domain.RiskTier {
	r := ComputeRatios(income, expenses, debtService)

	tier := stated
	if !tier.Valid() {
		tier = domain.RiskLow
	}

	// Either trigger costs exactly one step.
	if r.DebtServiceRatio > DebtServiceHighRatio || r.SavingsRate < LowSavingsRate {
		tier = tier.Down()
	}

	if horizon == domain.HorizonShort {
		tier = domain.RiskLow
	}

	if horizon == domain.HorizonLong &&
		r.DebtServiceRatio <= NudgeUpDebtMaxRatio &&
		r.SavingsRate >= NudgeUpSavingsMin {
		tier = tier.Up()
	}

	return tier
}
