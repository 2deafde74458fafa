package service

import (
	"fmt"

	"fund-selector/domain"
)

const (
	AssetDebt   = "Debt"
	AssetEquity = "Equity"
)

// categoryDescriptions holds one sentence per fund category.
var categoryDescriptions = map[string]string{
	"Liquid Funds":              "Ultra-short-duration debt funds that aim to park money safely and provide quick access.",
	"Short-Term Debt Funds":     "Debt funds investing in short-duration bonds to seek relatively stable returns.",
	"Corporate Bond Funds":      "Debt funds holding high-quality corporate bonds for stability and modest income.",
	"Conservative Hybrid Funds": "Mix of mostly debt with a small equity portion for limited growth potential.",
	"Large-Cap Index Funds":     "Equity funds tracking India's biggest companies for broad, steady exposure.",
	"Large-Cap Funds":           "Actively or passively invest in top-tier companies to provide resilient growth.",
	"Flexi-Cap Funds":           "Equity funds that move across large, mid, and small caps to balance growth and flexibility.",
	"Mid-Cap Funds":             "Equity funds in mid-sized companies with higher growth potential and higher volatility.",
	"Small-Cap Funds":           "Equity funds in smaller companies with high growth potential and significant volatility.",
	"ELSS (Tax-saving)":         "Equity funds with a 3-year lock-in that may offer Section 80C tax benefits.",
}

// CategoryDescription returns the glossary sentence for a category, or "".
func CategoryDescription(name string) string {
	return categoryDescriptions[name]
}

func pct(v int) *int { return &v }

// TemplateTable maps each risk tier to its allocation. It is built once and
// only read afterwards, so one instance can serve concurrent evaluations.
type TemplateTable struct {
	templates [3]domain.AllocationTemplate
}

func NewTemplateTable() *TemplateTable {
	t := &TemplateTable{}

	t.templates[domain.RiskLow] = domain.AllocationTemplate{
		Tier: domain.RiskLow,
		// Equity here can be equity or conservative hybrid.
		AssetSplit: []domain.AssetShare{{AssetClass: AssetDebt, Percent: 80}, {AssetClass: AssetEquity, Percent: 20}},
		Categories: []domain.CategoryEntry{
			{Name: "Liquid Funds"},
			{Name: "Short-Term Debt Funds"},
			{Name: "Corporate Bond Funds"},
			{Name: "Conservative Hybrid Funds", Alternative: "Large-Cap Index Funds"},
		},
	}
	t.templates[domain.RiskMedium] = domain.AllocationTemplate{
		Tier:       domain.RiskMedium,
		AssetSplit: []domain.AssetShare{{AssetClass: AssetDebt, Percent: 30}, {AssetClass: AssetEquity, Percent: 70}},
		Categories: []domain.CategoryEntry{
			{Name: "Short-Term Debt Funds", Percent: pct(30)},
			{Name: "Large-Cap Funds", Percent: pct(40)},
			{Name: "Flexi-Cap Funds", Percent: pct(20)},
			{Name: "Mid-Cap Funds", Percent: pct(10)},
		},
	}
	t.templates[domain.RiskHigh] = domain.AllocationTemplate{
		Tier:       domain.RiskHigh,
		AssetSplit: []domain.AssetShare{{AssetClass: AssetDebt, Percent: 10}, {AssetClass: AssetEquity, Percent: 90}},
		Categories: []domain.CategoryEntry{
			{Name: "Corporate Bond Funds", Percent: pct(10)},
			{Name: "Flexi-Cap Funds", Percent: pct(30)},
			{Name: "Mid-Cap Funds", Percent: pct(30)},
			{Name: "Small-Cap Funds", Percent: pct(20)},
			{Name: "ELSS (Tax-saving)", Percent: pct(10)},
		},
	}

	for i := range t.templates {
		for j := range t.templates[i].Categories {
			c := &t.templates[i].Categories[j]
			c.Description = categoryDescriptions[c.Name]
		}
	}

	if err := t.check(); err != nil {
		panic(err)
	}
	return t
}

func (t *TemplateTable) check() error {
	for _, tpl := range t.templates {
		sum := 0
		for _, s := range tpl.AssetSplit {
			sum += s.Percent
		}
		if sum != 100 {
			return fmt.Errorf("asset split for %s sums to %d", tpl.Tier, sum)
		}
		catSum, subdivided := 0, false
		for _, c := range tpl.Categories {
			if c.Percent != nil {
				catSum += *c.Percent
				subdivided = true
			}
		}
		if subdivided && catSum != 100 {
			return fmt.Errorf("categories for %s sum to %d", tpl.Tier, catSum)
		}
	}
	return nil
}

// TemplateFor returns a copy of the template for tier. Unknown tiers get
// the LOW template.
func (t *TemplateTable) TemplateFor(tier domain.RiskTier) domain.AllocationTemplate {
	if !tier.Valid() {
		tier = domain.RiskLow
	}
	src := t.templates[tier]

	out := domain.AllocationTemplate{
		Tier:       src.Tier,
		AssetSplit: append([]domain.AssetShare(nil), src.AssetSplit...),
		Categories: make([]domain.CategoryEntry, len(src.Categories)),
	}
	for i, c := range src.Categories {
		if c.Percent != nil {
			c.Percent = pct(*c.Percent)
		}
		out.Categories[i] = c
	}
	return out
}
