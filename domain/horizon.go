package domain

import (
	"fmt"
	"strings"
)

// HorizonBucket is the time-to-goal classification derived from age.
type HorizonBucket int

const (
	HorizonLong HorizonBucket = iota
	HorizonMedium
	HorizonShort
)

var horizonNames = [...]string{"LONG", "MEDIUM", "SHORT"}

var horizonLabels = [...]string{
	"Long-Term (10+ years)",
	"Medium-Term (5-10 years)",
	"Short-Term (1-5 years)",
}

func (h HorizonBucket) String() string {
	if h < HorizonLong || h > HorizonShort {
		return fmt.Sprintf("HorizonBucket(%d)", int(h))
	}
	return horizonNames[h]
}

// Label is the human readable description shown next to a recommendation.
func (h HorizonBucket) Label() string {
	if h < HorizonLong || h > HorizonShort {
		return ""
	}
	return horizonLabels[h]
}

func (h HorizonBucket) MarshalText() ([]byte, error) {
	if h < HorizonLong || h > HorizonShort {
		return nil, fmt.Errorf("invalid horizon bucket %d", int(h))
	}
	return []byte(h.String()), nil
}

func (h *HorizonBucket) UnmarshalText(text []byte) error {
	label := strings.ToUpper(strings.TrimSpace(string(text)))
	for i, name := range horizonNames {
		if name == label {
			*h = HorizonBucket(i)
			return nil
		}
	}
	return fmt.Errorf("unknown horizon bucket %q", string(text))
}
