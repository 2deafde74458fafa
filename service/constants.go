package service

const (
	// Risk adjustment thresholds. Hand-tuned, not derived from research.
	DebtServiceHighRatio = 0.40 // >40% of income ⇒ downgrade
	LowSavingsRate       = 0.10 // <10% of income ⇒ downgrade
	NudgeUpDebtMaxRatio  = 0.20 // long horizon and debt ratio <= 20%
	NudgeUpSavingsMin    = 0.25 // and savings rate >= 25% ⇒ nudge up

	// Horizon bands by age.
	LongHorizonMinAge   = 20
	LongHorizonMaxAge   = 45
	MediumHorizonMaxAge = 55

	// Input bounds enforced before the rules run.
	MinAge = 16
	MaxAge = 100

	// Fund-search request defaults.
	DefaultFundCountry         = "IN"
	DefaultFundPlan            = "Direct"
	DefaultMaxExpenseRatio     = 1.0
	DefaultMinAUMCr            = 1000.0
	DefaultMaxFundCandidates   = 5
	MaxFundCandidatesPerSearch = 25
)
