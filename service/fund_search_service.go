package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
	"github.com/vmihailenco/msgpack/v5"

	"fund-selector/domain"
	"fund-selector/repository"
)

var (
	ErrFundSearchDisabled    = errors.New("fund search is not configured")
	ErrFundSearchUnavailable = errors.New("fund search is temporarily unavailable")
	ErrNoFunds               = errors.New("no funds matched the search")
)

// UpstreamError is returned when the fund-search backend answers with a non-2xx status.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("fund search error (status %d): %s", e.StatusCode, e.Body)
}

type FundSearchConfig struct {
	URL      string
	Timeout  time.Duration
	CacheTTL time.Duration
}

type FundSearchService struct {
	apiURL     string
	enabled    bool
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	cache      repository.CacheRepository
	cacheTTL   time.Duration
	observer   Observer
	log        zerolog.Logger
}

func NewFundSearchService(
	cfg FundSearchConfig,
	cache repository.CacheRepository,
	log zerolog.Logger,
) *FundSearchService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	logger := log.With().Str("component", "fund_search").Logger()

	settings := gobreaker.Settings{
		Name:         "fund-search",
		Interval:     60 * time.Second,
		Timeout:      30 * time.Second,
		IsSuccessful: breakerSuccess,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state changed")
		},
	}

	return &FundSearchService{
		apiURL:     cfg.URL,
		enabled:    cfg.URL != "",
		httpClient: &http.Client{Timeout: timeout},
		breaker:    gobreaker.NewCircuitBreaker(settings),
		cache:      cache,
		cacheTTL:   cfg.CacheTTL,
		observer:   nopObserver{},
		log:        logger,
	}
}

// breakerSuccess keeps caller-side failures out of the breaker counts:
// cancelled requests and 4xx answers say nothing about backend health.
func breakerSuccess(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return upstream.StatusCode >= 400 && upstream.StatusCode < 500
	}
	return false
}

func (s *FundSearchService) SetObserver(o Observer) {
	if o == nil {
		o = nopObserver{}
	}
	s.observer = o
}

func (s *FundSearchService) Enabled() bool {
	return s.enabled
}

// CategoryForTier picks the category the backend is asked to search in.
func CategoryForTier(tier domain.RiskTier) string {
	switch tier {
	case domain.RiskHigh:
		return "Flexi-Cap Funds"
	case domain.RiskMedium:
		return "Large-Cap Funds"
	default:
		return "Large-Cap Index"
	}
}

// BuildFundSearchRequest fills the request for tier, applying non-zero overrides.
func BuildFundSearchRequest(tier domain.RiskTier, opts domain.FundSearchOptions) domain.FundSearchRequest {
	if !tier.Valid() {
		tier = domain.RiskLow
	}
	req := domain.FundSearchRequest{
		Country:         DefaultFundCountry,
		Category:        CategoryForTier(tier),
		Risk:            tier.String(),
		Plan:            DefaultFundPlan,
		MaxExpenseRatio: DefaultMaxExpenseRatio,
		MinAUMCr:        DefaultMinAUMCr,
		Index:           tier == domain.RiskLow,
		MaxCandidates:   DefaultMaxFundCandidates,
	}
	if opts.Country != "" {
		req.Country = opts.Country
	}
	if opts.Plan != "" {
		req.Plan = opts.Plan
	}
	if opts.MaxExpenseRatio > 0 {
		req.MaxExpenseRatio = opts.MaxExpenseRatio
	}
	if opts.MinAUMCr > 0 {
		req.MinAUMCr = opts.MinAUMCr
	}
	if opts.Index != nil {
		req.Index = *opts.Index
	}
	if opts.MaxCandidates > 0 {
		req.MaxCandidates = opts.MaxCandidates
	}
	if req.MaxCandidates > MaxFundCandidatesPerSearch {
		req.MaxCandidates = MaxFundCandidatesPerSearch
	}
	return req
}

// Search asks the backend for candidate funds for tier. Failures are
// returned to the caller and never touch an already computed profile.
func (s *FundSearchService) Search(
	ctx context.Context,
	tier domain.RiskTier,
	opts domain.FundSearchOptions,
) (domain.FundSearchResult, error) {
	start := time.Now()
	req := BuildFundSearchRequest(tier, opts)
	result := domain.FundSearchResult{Request: req}

	if !s.enabled {
		s.observer.ObserveFundSearch(OutcomeDisabled, time.Since(start))
		return result, ErrFundSearchDisabled
	}

	body, err := json.Marshal(req)
	if err != nil {
		return result, fmt.Errorf("failed to encode fund search request: %w", err)
	}
	key := cacheKey(body)

	if funds, ok := s.fromCache(ctx, key); ok {
		result.Funds = funds
		result.Cached = true
		s.observer.ObserveFundSearch(OutcomeHit, time.Since(start))
		return result, nil
	}

	out, err := s.breaker.Execute(func() (interface{}, error) {
		return s.call(ctx, body)
	})
	if err != nil {
		outcome := OutcomeTransport
		var upstream *UpstreamError
		switch {
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			outcome = OutcomeUnavailable
			err = fmt.Errorf("%w: %v", ErrFundSearchUnavailable, err)
		case errors.As(err, &upstream):
			outcome = OutcomeUpstream
		}
		s.log.Error().Err(err).Str("category", req.Category).Msg("Fund search failed")
		s.observer.ObserveFundSearch(outcome, time.Since(start))
		return result, err
	}

	resp := out.(*domain.FundSearchResponse)
	if len(resp.Funds) == 0 {
		s.observer.ObserveFundSearch(OutcomeEmpty, time.Since(start))
		return result, ErrNoFunds
	}

	result.Funds = resp.Funds
	s.toCache(ctx, key, resp)
	s.observer.ObserveFundSearch(OutcomeOK, time.Since(start))
	return result, nil
}

func (s *FundSearchService) call(ctx context.Context, body []byte) (*domain.FundSearchResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("fund search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(msg)}
	}

	var out domain.FundSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode fund search response: %w", err)
	}
	return &out, nil
}

func cacheKey(body []byte) string {
	sum := sha256.Sum256(body)
	return "funds:" + hex.EncodeToString(sum[:])
}

func (s *FundSearchService) fromCache(ctx context.Context, key string) ([]domain.Fund, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return nil, false
	}
	var resp domain.FundSearchResponse
	if err := msgpack.Unmarshal([]byte(raw), &resp); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Discarding unreadable cache entry")
		return nil, false
	}
	return resp.Funds, len(resp.Funds) > 0
}

func (s *FundSearchService) toCache(ctx context.Context, key string, resp *domain.FundSearchResponse) {
	if s.cache == nil {
		return
	}
	raw, err := msgpack.Marshal(resp)
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to encode fund search cache entry")
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.cacheTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Failed to cache fund search response")
	}
}
