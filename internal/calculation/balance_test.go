package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demosim/demographic-projector/internal/domain"
)

func uniformSnapshot(t *testing.T, perSexPerAge int) domain.PopulationSnapshot {
	t.Helper()
	cohorts := make([]domain.Cohort, 101)
	for age := range cohorts {
		cohorts[age] = domain.Cohort{Age: age, Male: perSexPerAge, Female: perSexPerAge}
	}
	snap, err := domain.NewPopulationSnapshot(cohorts)
	require.NoError(t, err)
	return snap
}

func TestCheckBalance(t *testing.T) {
	prev := uniformSnapshot(t, 100)
	counters := EvolutionCounters{Births: 150, Deaths: 250, Migration: 100}

	t.Run("exact transition passes", func(t *testing.T) {
		next := uniformSnapshot(t, 100) // same total; flows cancel out
		assert.Nil(t, CheckBalance(2025, prev, next, counters, 0))
	})

	t.Run("drift within tolerance passes", func(t *testing.T) {
		next := uniformSnapshot(t, 100)
		shifted := EvolutionCounters{Births: 150, Deaths: 255, Migration: 100}
		assert.Nil(t, CheckBalance(2025, prev, next, shifted, 10))
	})

	t.Run("drift beyond tolerance reports breakdown", func(t *testing.T) {
		next := uniformSnapshot(t, 101)
		warn := CheckBalance(2025, prev, next, counters, 10)
		require.NotNil(t, warn)
		assert.Equal(t, 2025, warn.Year)
		assert.Equal(t, prev.Total(), warn.Expected)
		assert.Equal(t, next.Total(), warn.Actual)
		assert.Equal(t, 202, warn.Drift)
		assert.Equal(t, 150, warn.Births)
		assert.Equal(t, 250, warn.Deaths)
		assert.Equal(t, 100, warn.Migration)
	})
}
