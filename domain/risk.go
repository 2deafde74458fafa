package domain

import (
	"fmt"
	"strings"
)

// RiskTier is one of three ordered portfolio-aggressiveness levels.
// The zero value is RiskLow.
type RiskTier int

const (
	RiskLow RiskTier = iota
	RiskMedium
	RiskHigh
)

var riskTierNames = [...]string{"LOW", "MEDIUM", "HIGH"}

// Valid reports whether t is one of the three known tiers.
func (t RiskTier) Valid() bool {
	return t >= RiskLow && t <= RiskHigh
}

func (t RiskTier) String() string {
	if !t.Valid() {
		return fmt.Sprintf("RiskTier(%d)", int(t))
	}
	return riskTierNames[t]
}

// Up returns the next more aggressive tier, clamped at RiskHigh.
// Tiers below RiskLow clamp to RiskLow.
func (t RiskTier) Up() RiskTier {
	if t >= RiskHigh {
		return RiskHigh
	}
	if t < RiskLow {
		return RiskLow
	}
	return t + 1
}

// Down returns the next more conservative tier, clamped at RiskLow.
// Tiers above RiskHigh clamp to RiskHigh.
func (t RiskTier) Down() RiskTier {
	if t <= RiskLow {
		return RiskLow
	}
	if t > RiskHigh {
		return RiskHigh
	}
	return t - 1
}

// ParseRiskTier maps a label such as "medium" to its tier. Unknown labels
// return RiskLow and false.
func ParseRiskTier(s string) (RiskTier, bool) {
	label := strings.ToUpper(strings.TrimSpace(s))
	for i, name := range riskTierNames {
		if name == label {
			return RiskTier(i), true
		}
	}
	return RiskLow, false
}

func (t RiskTier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid risk tier %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *RiskTier) UnmarshalText(text []byte) error {
	tier, ok := ParseRiskTier(string(text))
	if !ok {
		return fmt.Errorf("unknown risk tier %q", string(text))
	}
	*t = tier
	return nil
}
