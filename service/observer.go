package service

import (
	"time"

	"fund-selector/domain"
)

// Fund-search outcomes reported to an Observer.
const (
	OutcomeHit         = "cache_hit"
	OutcomeOK          = "ok"
	OutcomeEmpty       = "empty"
	OutcomeUpstream    = "upstream_error"
	OutcomeTransport   = "transport_error"
	OutcomeUnavailable = "unavailable"
	OutcomeDisabled    = "disabled"
)

// Observer receives evaluation events, typically for metrics.
type Observer interface {
	ObserveProfile(p domain.Profile)
	ObserveFundSearch(outcome string, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveProfile(domain.Profile)           {}
func (nopObserver) ObserveFundSearch(string, time.Duration) {}
