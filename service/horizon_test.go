package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fund-selector/domain"
)

func TestClassifyHorizon_Bands(t *testing.T) {
	for age := 20; age <= 45; age++ {
		assert.Equal(t, domain.HorizonLong, ClassifyHorizon(age), "age %d", age)
	}
	for age := 46; age <= 55; age++ {
		assert.Equal(t, domain.HorizonMedium, ClassifyHorizon(age), "age %d", age)
	}
	for age := 56; age <= 130; age++ {
		assert.Equal(t, domain.HorizonShort, ClassifyHorizon(age), "age %d", age)
	}
}

func TestClassifyHorizon_YoungDefaultsToLong(t *testing.T) {
	for _, age := range []int{19, 16, 1, 0, -5} {
		assert.Equal(t, domain.HorizonLong, ClassifyHorizon(age), "age %d", age)
	}
}

func TestHorizonLabels(t *testing.T) {
	assert.Equal(t, "Long-Term (10+ years)", domain.HorizonLong.Label())
	assert.Equal(t, "Medium-Term (5-10 years)", domain.HorizonMedium.Label())
	assert.Equal(t, "Short-Term (1-5 years)", domain.HorizonShort.Label())
}
