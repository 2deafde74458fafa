package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fund-selector/domain"
	"fund-selector/repository"
)

const (
	AlertNegativeSurplus = "negative_surplus"
	AlertHighDebtService = "high_debt_service"
	AlertShortHorizon    = "short_horizon"
)

var ErrProfileNotFound = repository.ErrProfileNotFound

type ProfileService struct {
	repo      repository.ProfileRepository
	templates *TemplateTable
	observer  Observer
	log       zerolog.Logger
	now       func() time.Time
	newID     func() string
}

// NewProfileService creates a ProfileService that persists into repo.
func NewProfileService(
	repo repository.ProfileRepository,
	templates *TemplateTable,
	log zerolog.Logger,
) *ProfileService {
	return &ProfileService{
		repo:      repo,
		templates: templates,
		observer:  nopObserver{},
		log:       log.With().Str("component", "profile_service").Logger(),
		now:       time.Now,
		newID:     func() string { return uuid.NewString() },
	}
}

func (s *ProfileService) SetObserver(o Observer) {
	if o == nil {
		o = nopObserver{}
	}
	s.observer = o
}

// Evaluate runs the rule core over already validated inputs. It does not
// assign an ID or persist anything.
func Evaluate(in domain.FinancialInputs, templates *TemplateTable) domain.Profile {
	horizon := ClassifyHorizon(in.Age)
	stated, _ := domain.ParseRiskTier(in.StatedRisk)
	ratios := ComputeRatios(in.MonthlyIncome, in.MonthlyExpenses, in.DebtServiceAmount)
	final := ResolveRisk(stated, horizon, in.MonthlyIncome, in.MonthlyExpenses, in.DebtServiceAmount)

	p := domain.Profile{
		Inputs:            in,
		Horizon:           horizon,
		HorizonLabel:      horizon.Label(),
		InvestableSurplus: ratios.Surplus,
		DebtServiceRatio:  ratios.DebtServiceRatio,
		SavingsRate:       ratios.SavingsRate,
		FinalRisk:         final,
		Allocation:        templates.TemplateFor(final),
	}
	p.Alerts = alertsFor(p)
	return p
}

func alertsFor(p domain.Profile) []domain.Alert {
	alerts := []domain.Alert{}
	if p.InvestableSurplus <= 0 {
		alerts = append(alerts, domain.Alert{
			Code:    AlertNegativeSurplus,
			Message: "Your investable surplus is zero or negative. Consider lowering expenses or EMIs and building an emergency fund before investing.",
		})
	}
	if p.DebtServiceRatio > DebtServiceHighRatio {
		alerts = append(alerts, domain.Alert{
			Code:    AlertHighDebtService,
			Message: "Your EMI is a high share of income (>40%). We lowered your risk profile to prioritize stability.",
		})
	}
	if p.Horizon == domain.HorizonShort {
		alerts = append(alerts, domain.Alert{
			Code:    AlertShortHorizon,
			Message: "Short-term goals call for capital preservation. We capped your risk at Low.",
		})
	}
	return alerts
}

// BuildProfile validates the inputs, evaluates them and stores the result.
func (s *ProfileService) BuildProfile(
	ctx context.Context,
	input domain.FinancialInputs,
) (domain.Profile, error) {
	input = NormalizeInputs(input)
	if err := ValidateInputs(input); err != nil {
		return domain.Profile{}, err
	}

	p := Evaluate(input, s.templates)
	p.ID = s.newID()
	p.CreatedAt = s.now().UTC()

	s.log.Debug().
		Str("profile_id", p.ID).
		Str("horizon", p.Horizon.String()).
		Str("stated_risk", input.StatedRisk).
		Str("final_risk", p.FinalRisk.String()).
		Float64("debt_service_ratio", p.DebtServiceRatio).
		Float64("savings_rate", p.SavingsRate).
		Msg("Profile evaluated")

	// Saving is not critical to the response.
	if err := s.repo.Save(ctx, p); err != nil {
		s.log.Warn().Err(err).Str("profile_id", p.ID).Msg("Failed to save profile")
	}

	s.observer.ObserveProfile(p)
	return p, nil
}

func (s *ProfileService) GetProfile(ctx context.Context, id string) (domain.Profile, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domain.Profile{}, ErrProfileNotFound
		}
		return domain.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}
