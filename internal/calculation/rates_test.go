package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/demosim/demographic-projector/internal/domain"
	"github.com/demosim/demographic-projector/internal/refdata"
)

func TestMortalityProbabilityImprovement(t *testing.T) {
	tables := refdata.Default()

	base := MortalityProbability(tables, 70, domain.Male, 0, 0.010)
	assert.InDelta(t, tables.MortalityRate(70, domain.Male), base, 1e-12, "no improvement applies in year zero")

	improved := MortalityProbability(tables, 70, domain.Male, 20, 0.010)
	assert.Less(t, improved, base, "mortality falls with elapsed improvement years")

	// 20 years at 1% per year compounds to (0.99)^20.
	assert.InDelta(t, base*0.817906937, improved, 1e-9)
}

func TestMortalityProbabilityClamped(t *testing.T) {
	tables := refdata.Default()

	for _, sex := range []domain.Sex{domain.Male, domain.Female} {
		for age := -5; age <= 120; age++ {
			for _, elapsed := range []int{0, 1, 76, 200} {
				q := MortalityProbability(tables, age, sex, elapsed, 0.05)
				assert.GreaterOrEqual(t, q, 0.0, "age %d elapsed %d", age, elapsed)
				assert.LessOrEqual(t, q, 1.0, "age %d elapsed %d", age, elapsed)
			}
		}
	}
}

func TestMortalityProbabilityTerminalNeverImproves(t *testing.T) {
	tables := refdata.Default()

	table := tables.MortalityRate(100, domain.Female)
	for _, elapsed := range []int{0, 10, 50, 150} {
		q := MortalityProbability(tables, 100, domain.Female, elapsed, 0.05)
		assert.Equal(t, table, q, "terminal bucket mortality must stay at its table value (elapsed=%d)", elapsed)
	}

	// Ages past the bucket resolve to the same terminal behavior.
	assert.Equal(t, table, MortalityProbability(tables, 104, domain.Female, 30, 0.05))
}

func TestFertilityRateBoundary(t *testing.T) {
	tables := refdata.Default()

	assert.Zero(t, FertilityRate(tables, 14))
	assert.Zero(t, FertilityRate(tables, 50))
	assert.Zero(t, FertilityRate(tables, -1))
	assert.Greater(t, FertilityRate(tables, 30), 0.0)
}

func TestEmploymentRate(t *testing.T) {
	tables := refdata.Default()

	tests := []struct {
		name       string
		age        int
		shift      int
		adjustment float64
		want       float64
	}{
		{"prime age unadjusted", 40, 0, 0, 0.85},
		{"unemployment adjustment scales down", 40, 0, 0.10, 0.765},
		{"positive shift delays entry", 22, 3, 0, 0.18},
		{"negative shift advances career profile", 22, -3, 0, 0.80},
		{"shift floors at the working-age minimum", 16, 10, 0, 0.18},
		{"children never employed", 10, -5, 0, 0},
		{"maximum adjustment halves the prime rate", 40, 0, 0.5, 0.425},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, EmploymentRate(tables, tt.age, tt.shift, tt.adjustment), 1e-12)
		})
	}
}

func TestEmploymentRateClamped(t *testing.T) {
	tables := refdata.Default()
	for age := 0; age <= 110; age++ {
		rate := EmploymentRate(tables, age, -5, 0)
		assert.GreaterOrEqual(t, rate, 0.0)
		assert.LessOrEqual(t, rate, 1.0)
	}
}

func TestHealthcareMultiplierSteps(t *testing.T) {
	tables := refdata.Default()

	assert.InDelta(t, 0.60, HealthcareMultiplier(tables, 8), 1e-12)
	assert.InDelta(t, 1.00, HealthcareMultiplier(tables, 40), 1e-12)
	assert.InDelta(t, 2.10, HealthcareMultiplier(tables, 70), 1e-12)
	assert.InDelta(t, 3.40, HealthcareMultiplier(tables, 80), 1e-12)
	assert.InDelta(t, 5.20, HealthcareMultiplier(tables, 100), 1e-12)
}

func TestRateFunctionsAreStateless(t *testing.T) {
	tables := refdata.Default()

	first := MortalityProbability(tables, 65, domain.Male, 12, 0.01)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, MortalityProbability(tables, 65, domain.Male, 12, 0.01))
	}

	fr := FertilityRate(tables, 27)
	er := EmploymentRate(tables, 58, 2, 0.05)
	hm := HealthcareMultiplier(tables, 90)
	mw := MigrationWeight(tables, 33, domain.Female)
	assert.Equal(t, fr, FertilityRate(tables, 27))
	assert.Equal(t, er, EmploymentRate(tables, 58, 2, 0.05))
	assert.Equal(t, hm, HealthcareMultiplier(tables, 90))
	assert.Equal(t, mw, MigrationWeight(tables, 33, domain.Female))
}
