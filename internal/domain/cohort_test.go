package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatCohorts(perSexPerAge int) []Cohort {
	cohorts := make([]Cohort, 101)
	for age := 0; age <= 100; age++ {
		cohorts[age] = Cohort{Age: age, Male: perSexPerAge, Female: perSexPerAge}
	}
	return cohorts
}

func TestNewPopulationSnapshotValidation(t *testing.T) {
	t.Run("accepts full coverage", func(t *testing.T) {
		snap, err := NewPopulationSnapshot(flatCohorts(10))
		require.NoError(t, err)
		assert.Equal(t, 101*20, snap.Total())
	})

	t.Run("rejects missing age", func(t *testing.T) {
		cohorts := flatCohorts(10)[:100]
		_, err := NewPopulationSnapshot(cohorts)
		assert.Error(t, err)
	})

	t.Run("rejects duplicate age", func(t *testing.T) {
		cohorts := flatCohorts(10)
		cohorts[50].Age = 49
		_, err := NewPopulationSnapshot(cohorts)
		assert.ErrorContains(t, err, "duplicate")
	})

	t.Run("rejects negative counts", func(t *testing.T) {
		cohorts := flatCohorts(10)
		cohorts[3].Female = -1
		_, err := NewPopulationSnapshot(cohorts)
		assert.ErrorContains(t, err, "negative")
	})

	t.Run("rejects out-of-range age", func(t *testing.T) {
		cohorts := flatCohorts(10)
		cohorts[100].Age = 101
		_, err := NewPopulationSnapshot(cohorts)
		assert.Error(t, err)
	})
}

func TestSnapshotAggregates(t *testing.T) {
	snap, err := NewPopulationSnapshot(flatCohorts(100))
	require.NoError(t, err)

	assert.Equal(t, 15*200, snap.ChildPopulation())
	assert.Equal(t, (66-15)*200, snap.WorkingAgePopulation(66))
	assert.Equal(t, (101-66)*200, snap.RetiredPopulation(66))
	assert.Equal(t, snap.Total(), snap.ChildPopulation()+snap.WorkingAgePopulation(66)+snap.RetiredPopulation(66))

	expectedRatio := float64(snap.RetiredPopulation(66)) / float64(snap.WorkingAgePopulation(66)) * 100
	assert.InDelta(t, expectedRatio, snap.DependencyRatio(66), 1e-9)

	// Uniform structure over 101 ages: median sits at the middle age.
	assert.InDelta(t, 50.5, snap.MedianAge(), 0.01)
}

func TestSnapshotDependencyRatioNoWorkers(t *testing.T) {
	cohorts := make([]Cohort, 101)
	for age := 0; age <= 100; age++ {
		cohorts[age] = Cohort{Age: age}
	}
	cohorts[80] = Cohort{Age: 80, Male: 50, Female: 50}
	snap, err := NewPopulationSnapshot(cohorts)
	require.NoError(t, err)
	assert.Zero(t, snap.DependencyRatio(66))
}

func TestSnapshotImmutability(t *testing.T) {
	input := flatCohorts(10)
	snap, err := NewPopulationSnapshot(input)
	require.NoError(t, err)

	// Mutating the input slice after construction must not leak in.
	input[0].Male = 999999
	assert.Equal(t, 10, snap.At(0).Male)

	// Mutating the exported cohort list must not leak back.
	out := snap.Cohorts()
	out[5].Female = 888888
	assert.Equal(t, 10, snap.At(5).Female)
}

func TestSnapshotAtOutsideRange(t *testing.T) {
	snap, err := NewPopulationSnapshot(flatCohorts(10))
	require.NoError(t, err)
	assert.Zero(t, snap.At(-1).Total())
	assert.Zero(t, snap.At(101).Total())
}

func TestParseScenarioPreset(t *testing.T) {
	for _, name := range []string{"low", "medium", "high", "custom"} {
		preset, err := ParseScenarioPreset(name)
		require.NoError(t, err)
		assert.Equal(t, name, preset.String())
	}

	_, err := ParseScenarioPreset("aggressive")
	assert.Error(t, err)
}

func TestPresetParameters(t *testing.T) {
	medium, ok := PresetMedium.Parameters()
	require.True(t, ok)
	assert.Equal(t, 66, medium.RetirementAge)
	assert.Equal(t, 1.40, medium.TotalFertilityRate)
	assert.Equal(t, 110_000, medium.NetMigration)

	_, ok = PresetCustom.Parameters()
	assert.False(t, ok)
}
