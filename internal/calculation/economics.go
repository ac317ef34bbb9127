package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/demosim/demographic-projector/internal/domain"
	"github.com/demosim/demographic-projector/internal/refdata"
	"github.com/demosim/demographic-projector/pkg/ageutil"
)

// fiscalCapacityShare is the fixed policy threshold: fiscal burden is
// scored against 40% of the GDP proxy. Index 0 means the burden reached
// that share, 100 means it is negligible.
var fiscalCapacityShare = decimal.NewFromFloat(0.40)

var one = decimal.NewFromInt(1)

// EconomicCalculator derives one year's fiscal picture from a population
// snapshot. It is a pure function of its inputs: nothing is cached or
// carried between years.
type EconomicCalculator struct {
	tables *refdata.Tables
	econ   refdata.EconomicAssumptions
}

// NewEconomicCalculator creates a calculator over the given reference data.
func NewEconomicCalculator(tables *refdata.Tables) *EconomicCalculator {
	return &EconomicCalculator{tables: tables, econ: tables.Economic()}
}

// Compute derives the economic metrics for a snapshot at yearsElapsed since
// the run's base year.
func (ec *EconomicCalculator) Compute(snap domain.PopulationSnapshot, params domain.SimulationParameters, yearsElapsed int) domain.EconomicMetrics {
	var workforce, pensioners, healthWeighted float64
	for age := ageutil.MinAge; age <= ageutil.TerminalAge; age++ {
		total := float64(snap.At(age).Total())
		healthWeighted += total * HealthcareMultiplier(ec.tables, age)

		if age < ageutil.MinWorkingAge {
			continue
		}
		rate := EmploymentRate(ec.tables, age, params.EntryAgeShift, params.UnemploymentAdjustment)
		workforce += total * rate
		if ageutil.IsRetired(age, params.RetirementAge) {
			// Working retirees contribute to the workforce and are excluded
			// from pension receipt.
			pensioners += total * (1 - rate)
		}
	}

	years := decimal.NewFromInt(int64(yearsElapsed))
	wageFactor := one.Add(ec.econ.WageGrowthRate).Pow(years)
	pensionFactor := one.Add(ec.econ.PensionIndexationRate).Pow(years)
	healthFactor := one.Add(ec.econ.HealthcareInflationRate).Pow(years)

	workforceDec := decimal.NewFromFloat(workforce)
	contributions := workforceDec.Mul(ec.econ.AverageAnnualSalary).Mul(wageFactor).Mul(ec.econ.ContributionRate)
	payments := decimal.NewFromFloat(pensioners).Mul(ec.econ.AverageAnnualPension).Mul(pensionFactor)
	balance := contributions.Sub(payments)

	deficit := decimal.Zero
	if balance.IsNegative() {
		deficit = balance.Neg()
	}

	healthTotal := decimal.NewFromFloat(healthWeighted).Mul(ec.econ.HealthcareCostPerCapita).Mul(healthFactor)
	healthPublic := healthTotal.Mul(ec.econ.PublicHealthcareShare)

	gdpProxy := workforceDec.Mul(ec.econ.GDPPerWorker).Mul(wageFactor)

	metrics := domain.EconomicMetrics{
		Workforce:             workforceDec,
		Contributions:         contributions,
		PensionPayments:       payments,
		SocialSecurityBalance: balance,
		HealthcareCostTotal:   healthTotal,
		HealthcareCostPublic:  healthPublic,
		GDPProxy:              gdpProxy,
		SustainabilityIndex:   sustainabilityIndex(deficit.Add(healthPublic), gdpProxy),
	}

	// The utilization denominator is the working-age population only, so
	// the rate exceeds 1.0 once post-retirement workers outweigh slack in
	// the working-age cohorts. That is the metric's documented definition.
	if workingAge := snap.WorkingAgePopulation(params.RetirementAge); workingAge > 0 {
		metrics.LaborUtilizationRate = workforceDec.Div(decimal.NewFromInt(int64(workingAge)))
	}

	if workforceDec.IsPositive() {
		metrics.BalancePerWorker = balance.Div(workforceDec)
		metrics.HealthcarePerWorker = healthTotal.Div(workforceDec)
		metrics.TotalBurdenPerWorker = deficit.Add(healthPublic).Div(workforceDec)
	}

	return metrics
}

// sustainabilityIndex scores a fiscal burden against the fixed share of
// the GDP proxy, clamped to [0, 100]. A zero economy is critical by
// definition, never a division by zero.
func sustainabilityIndex(burden, gdpProxy decimal.Decimal) decimal.Decimal {
	if !gdpProxy.IsPositive() {
		return decimal.Zero
	}
	capacity := gdpProxy.Mul(fiscalCapacityShare)
	index := one.Sub(burden.Div(capacity)).Mul(decimal.NewFromInt(100))
	if index.IsNegative() {
		return decimal.Zero
	}
	if index.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.NewFromInt(100)
	}
	return index
}
