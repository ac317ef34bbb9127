// Package calculation implements the cohort-component projection: the
// demographic rate functions, the year-over-year cohort evolution step,
// the economic metrics calculator, the balance validator and the
// projection engine that drives them.
package calculation

import (
	"math"

	"github.com/demosim/demographic-projector/internal/domain"
	"github.com/demosim/demographic-projector/internal/refdata"
	"github.com/demosim/demographic-projector/pkg/ageutil"
)

// The rate functions are pure lookups over the injected reference tables.
// An age outside a table's covered range resolves to the table's defined
// zero default; that is a boundary policy, not an error.

// MortalityProbability returns the annual death probability for an age and
// sex after yearsElapsed of mortality improvement. The base table value for
// min(age, 100) is scaled by (1-improvementRate)^yearsElapsed and clamped
// to [0, 1]. The terminal bucket never improves: at age 100 and above the
// table value applies unchanged, so the open-ended group cannot become
// effectively immortal under aggressive improvement assumptions.
func MortalityProbability(tables *refdata.Tables, age int, sex domain.Sex, yearsElapsed int, improvementRate float64) float64 {
	base := tables.MortalityRate(age, sex)
	if age >= ageutil.TerminalAge {
		return clampUnit(base)
	}
	return clampUnit(base * math.Pow(1-improvementRate, float64(yearsElapsed)))
}

// FertilityRate returns births per woman per year at the given age, zero
// outside the reproductive span. Callers scale the result by their
// userTFR/baselineTFR ratio; the table shape itself is never rescaled.
func FertilityRate(tables *refdata.Tables, age int) float64 {
	return tables.ASFR(age)
}

// MigrationWeight returns the normalized share of one sex's net migration
// assigned to a single age. Shares sum to 1 across the non-terminal ages.
func MigrationWeight(tables *refdata.Tables, age int, sex domain.Sex) float64 {
	return tables.MigrationWeight(age, sex)
}

// EmploymentRate returns the effective employment rate for an age under the
// run's workforce-entry shift and unemployment adjustment. The base rate is
// looked up at max(15, age-entryAgeShift) and scaled by (1-adjustment),
// clamped to [0, 1]. Ages below the working span are never employed.
func EmploymentRate(tables *refdata.Tables, age, entryAgeShift int, unemploymentAdjustment float64) float64 {
	if age < ageutil.MinWorkingAge {
		return 0
	}
	effective := age - entryAgeShift
	if effective < ageutil.MinWorkingAge {
		effective = ageutil.MinWorkingAge
	}
	return clampUnit(tables.EmploymentRate(effective) * (1 - unemploymentAdjustment))
}

// HealthcareMultiplier returns the per-capita cost multiplier for an age
// relative to the adult baseline.
func HealthcareMultiplier(tables *refdata.Tables, age int) float64 {
	return tables.HealthcareMultiplier(age)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
