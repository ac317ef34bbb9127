package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demosim/demographic-projector/internal/domain"
	"github.com/demosim/demographic-projector/internal/refdata"
)

func emptyCohorts() []domain.Cohort {
	cohorts := make([]domain.Cohort, 101)
	for age := range cohorts {
		cohorts[age].Age = age
	}
	return cohorts
}

func snapshotWith(t *testing.T, counts map[int]int) domain.PopulationSnapshot {
	t.Helper()
	cohorts := emptyCohorts()
	for age, total := range counts {
		cohorts[age].Male = total / 2
		cohorts[age].Female = total - total/2
	}
	snap, err := domain.NewPopulationSnapshot(cohorts)
	require.NoError(t, err)
	return snap
}

func TestComputeBaselineYear(t *testing.T) {
	tables := refdata.Default()
	calc := NewEconomicCalculator(tables)
	params := baselineParams()

	snap := tables.BaselineSnapshot()
	metrics := calc.Compute(snap, params, 0)

	// Workforce must match an independent employment-weighted sum.
	var expected float64
	for age := 15; age <= 100; age++ {
		expected += float64(snap.At(age).Total()) * EmploymentRate(tables, age, 0, 0)
	}
	got, _ := metrics.Workforce.Float64()
	assert.InDelta(t, expected, got, 1.0)

	// Year zero has no inflation: contributions are workforce x salary x rate.
	wantContributions := metrics.Workforce.
		Mul(decimal.NewFromInt(34_000)).
		Mul(decimal.NewFromFloat(0.186))
	assert.True(t, metrics.Contributions.Sub(wantContributions).Abs().LessThan(decimal.NewFromFloat(0.01)),
		"contributions %s != %s", metrics.Contributions, wantContributions)

	assert.True(t, metrics.SocialSecurityBalance.Equal(metrics.Contributions.Sub(metrics.PensionPayments)))
	assert.True(t, metrics.HealthcareCostPublic.LessThan(metrics.HealthcareCostTotal))
	assert.True(t, metrics.GDPProxy.IsPositive())

	idx := metrics.SustainabilityIndex
	assert.True(t, idx.GreaterThanOrEqual(decimal.Zero) && idx.LessThanOrEqual(decimal.NewFromInt(100)),
		"sustainability index %s outside [0,100]", idx)
}

func TestComputeInflationCompounds(t *testing.T) {
	tables := refdata.Default()
	calc := NewEconomicCalculator(tables)
	params := baselineParams()
	snap := tables.BaselineSnapshot()

	year0 := calc.Compute(snap, params, 0)
	year20 := calc.Compute(snap, params, 20)

	// Same snapshot, later year: wage inflation lifts contributions and the
	// GDP proxy by the same factor.
	factor := decimal.NewFromFloat(1.015).Pow(decimal.NewFromInt(20))
	assert.True(t, year20.Contributions.Sub(year0.Contributions.Mul(factor)).Abs().LessThan(decimal.NewFromInt(1)))
	assert.True(t, year20.GDPProxy.Sub(year0.GDPProxy.Mul(factor)).Abs().LessThan(decimal.NewFromInt(1)))
	assert.True(t, year20.HealthcareCostTotal.GreaterThan(year0.HealthcareCostTotal))
}

func TestComputePensionersExcludeWorkingRetirees(t *testing.T) {
	tables := refdata.Default()
	calc := NewEconomicCalculator(tables)
	params := baselineParams()

	// 100000 persons aged 67: employment rate 0.27 keeps 27% of them out of
	// pension receipt, so payments reflect only 73000 pensioners.
	snap := snapshotWith(t, map[int]int{67: 100_000})
	metrics := calc.Compute(snap, params, 0)

	wantPayments := decimal.NewFromInt(73_000).Mul(decimal.NewFromInt(16_500))
	assert.True(t, metrics.PensionPayments.Sub(wantPayments).Abs().LessThan(decimal.NewFromInt(1)),
		"payments %s != %s", metrics.PensionPayments, wantPayments)

	wantWorkforce := decimal.NewFromInt(27_000)
	assert.True(t, metrics.Workforce.Sub(wantWorkforce).Abs().LessThan(decimal.NewFromInt(1)))
}

func TestComputeUtilizationCanExceedOne(t *testing.T) {
	tables := refdata.Default()
	calc := NewEconomicCalculator(tables)
	params := baselineParams()

	// A tiny working-age population next to a large working-retiree mass:
	// the numerator counts post-retirement workers, the denominator does
	// not, so the rate passes 1.0. That is the documented metric quirk.
	snap := snapshotWith(t, map[int]int{40: 1_000, 67: 100_000})
	metrics := calc.Compute(snap, params, 0)

	assert.True(t, metrics.LaborUtilizationRate.GreaterThan(decimal.NewFromInt(1)),
		"utilization %s should exceed 1.0", metrics.LaborUtilizationRate)
}

func TestComputeEmptyEconomyIsCritical(t *testing.T) {
	tables := refdata.Default()
	calc := NewEconomicCalculator(tables)
	params := baselineParams()

	// Only children: no workforce, no GDP proxy, index pinned at critical.
	snap := snapshotWith(t, map[int]int{5: 500_000})
	metrics := calc.Compute(snap, params, 0)

	assert.True(t, metrics.Workforce.IsZero())
	assert.True(t, metrics.GDPProxy.IsZero())
	assert.True(t, metrics.SustainabilityIndex.IsZero(), "zero economy must score 0, not divide by zero")
	assert.True(t, metrics.LaborUtilizationRate.IsZero())
	assert.True(t, metrics.TotalBurdenPerWorker.IsZero())
}

func TestSustainabilityIndexClamps(t *testing.T) {
	hundred := decimal.NewFromInt(100)

	assert.True(t, sustainabilityIndex(decimal.Zero, decimal.NewFromInt(1_000)).Equal(hundred))
	assert.True(t, sustainabilityIndex(decimal.NewFromInt(400), decimal.NewFromInt(1_000)).IsZero(),
		"burden at the 40%% threshold scores exactly 0")
	assert.True(t, sustainabilityIndex(decimal.NewFromInt(9_999), decimal.NewFromInt(1_000)).IsZero(),
		"burden past the threshold clamps at 0")
	assert.True(t, sustainabilityIndex(decimal.NewFromInt(200), decimal.NewFromInt(1_000)).Equal(decimal.NewFromInt(50)))
	assert.True(t, sustainabilityIndex(decimal.NewFromInt(5), decimal.Zero).IsZero())
}
