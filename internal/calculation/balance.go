package calculation

import (
	"github.com/demosim/demographic-projector/internal/domain"
)

// DefaultBalanceTolerance is the population drift, in persons, tolerated
// per year transition before a balance warning is raised. The evolution
// step accounts flows exactly in integers, so any drift beyond a handful
// of persons indicates a logic defect rather than rounding.
const DefaultBalanceTolerance = 10

// CheckBalance verifies the conservation law for one transition: the next
// snapshot's total must equal the previous total plus births minus deaths
// plus the migration actually distributed. It returns nil when the drift
// is within tolerance, otherwise a diagnostic warning for the given year.
// A failed check never aborts a run.
func CheckBalance(year int, prev, next domain.PopulationSnapshot, counters EvolutionCounters, tolerance int) *domain.BalanceWarning {
	expected := prev.Total() + counters.Births - counters.Deaths + counters.Migration
	drift := next.Total() - expected
	if drift >= -tolerance && drift <= tolerance {
		return nil
	}
	return &domain.BalanceWarning{
		Year:      year,
		Expected:  expected,
		Actual:    next.Total(),
		Drift:     drift,
		Births:    counters.Births,
		Deaths:    counters.Deaths,
		Migration: counters.Migration,
	}
}
