package domain

// FundSearchRequest is the body sent to the external fund-search backend.
type FundSearchRequest struct {
	Country         string  `json:"country"`
	Category        string  `json:"category"`
	Risk            string  `json:"risk"`
	Plan            string  `json:"plan"`
	MaxExpenseRatio float64 `json:"max_expense_ratio"`
	MinAUMCr        float64 `json:"min_aum_cr"`
	Index           bool    `json:"index"`
	MaxCandidates   int     `json:"max_candidates"`
}

// FundSearchOptions overrides the request defaults. Zero values keep the default.
type FundSearchOptions struct {
	Country         string  `json:"country,omitempty"`
	Plan            string  `json:"plan,omitempty"`
	MaxExpenseRatio float64 `json:"max_expense_ratio,omitempty"`
	MinAUMCr        float64 `json:"min_aum_cr,omitempty"`
	Index           *bool   `json:"index,omitempty"`
	MaxCandidates   int     `json:"max_candidates,omitempty"`
}

type TrailingReturns struct {
	OneYear   *float64 `json:"1y,omitempty"`
	ThreeYear *float64 `json:"3y,omitempty"`
	FiveYear  *float64 `json:"5y,omitempty"`
}

type Fund struct {
	SchemeName   string          `json:"scheme_name"`
	Plan         string          `json:"plan"`
	Category     string          `json:"category"`
	ExpenseRatio float64         `json:"expense_ratio"`
	AUMCr        float64         `json:"aum_cr"`
	Returns      TrailingReturns `json:"returns"`
	Rationale    string          `json:"rationale"`
	Citations    []string        `json:"citations"`
}

type FundSearchResponse struct {
	Funds []Fund `json:"funds"`
}

type FundSearchResult struct {
	Request FundSearchRequest `json:"request"`
	Funds   []Fund            `json:"funds"`
	Cached  bool              `json:"cached"`
}
