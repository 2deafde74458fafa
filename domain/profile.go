package domain

import "time"

// FinancialInputs are the facts collected from the user for one submission.
type FinancialInputs struct {
	Age               int     `json:"age" yaml:"age"`
	MonthlyIncome     float64 `json:"monthly_income" yaml:"monthly_income"`
	MonthlyExpenses   float64 `json:"monthly_expenses" yaml:"monthly_expenses"`
	HasDebtService    bool    `json:"has_debt_service" yaml:"has_debt_service"`
	DebtServiceAmount float64 `json:"debt_service_amount" yaml:"debt_service_amount"`
	StatedRisk        string  `json:"stated_risk" yaml:"stated_risk"` // "LOW", "MEDIUM", "HIGH"
}

type AssetShare struct {
	AssetClass string `json:"asset_class"`
	Percent    int    `json:"percent"`
}

type CategoryEntry struct {
	Name        string `json:"name"`
	Percent     *int   `json:"percent,omitempty"`
	Alternative string `json:"alternative,omitempty"`
	Description string `json:"description"`
}

type AllocationTemplate struct {
	Tier       RiskTier        `json:"tier"`
	AssetSplit []AssetShare    `json:"asset_split"`
	Categories []CategoryEntry `json:"categories"`
}

// Share returns the percentage for an asset class, or 0 if the template has none.
func (t AllocationTemplate) Share(assetClass string) int {
	for _, s := range t.AssetSplit {
		if s.AssetClass == assetClass {
			return s.Percent
		}
	}
	return 0
}

type Alert struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Profile struct {
	ID                string             `json:"id"`
	Inputs            FinancialInputs    `json:"inputs"`
	Horizon           HorizonBucket      `json:"horizon"`
	HorizonLabel      string             `json:"horizon_label"`
	InvestableSurplus float64            `json:"investable_surplus"`
	DebtServiceRatio  float64            `json:"debt_service_ratio"`
	SavingsRate       float64            `json:"savings_rate"`
	FinalRisk         RiskTier           `json:"final_risk"`
	Allocation        AllocationTemplate `json:"allocation"`
	Alerts            []Alert            `json:"alerts"`
	CreatedAt         time.Time          `json:"created_at"`
}
