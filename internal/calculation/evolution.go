package calculation

import (
	"math"

	"github.com/demosim/demographic-projector/internal/domain"
	"github.com/demosim/demographic-projector/internal/refdata"
	"github.com/demosim/demographic-projector/pkg/ageutil"
)

const (
	// maleBirthsPerFemale is the sex ratio at birth.
	maleBirthsPerFemale = 1.05
	// maleMigrationShare splits net migration between the sexes.
	maleMigrationShare = 0.52
)

// EvolutionCounters are the per-transition flow totals the balance
// validator checks the conservation law against. Migration is the count
// actually applied, after any clamping against depleted cohorts.
type EvolutionCounters struct {
	Births    int `json:"births"`
	Deaths    int `json:"deaths"`
	Migration int `json:"migration"`
}

// EvolveSnapshot advances one population snapshot to the next year:
// births into a new age-0 cohort, migration distributed over the
// non-terminal ages, full-year mortality, survivors aged forward by one
// year and the age-99 survivors merged with the surviving terminal bucket.
// The input snapshot is never modified.
func EvolveSnapshot(tables *refdata.Tables, snap domain.PopulationSnapshot, yearsElapsed int, params domain.SimulationParameters) (domain.PopulationSnapshot, EvolutionCounters, error) {
	var counters EvolutionCounters

	maleBirths, femaleBirths := projectBirths(tables, snap, params.TotalFertilityRate)
	counters.Births = maleBirths + femaleBirths

	maleMigration := int(math.Round(float64(params.NetMigration) * maleMigrationShare))
	femaleMigration := params.NetMigration - maleMigration
	migrantsMale := distributeMigration(tables, maleMigration, domain.Male)
	migrantsFemale := distributeMigration(tables, femaleMigration, domain.Female)

	next := make([]domain.Cohort, ageutil.TerminalAge+1)
	for age := range next {
		next[age].Age = age
	}

	var intoTerminal domain.Cohort
	for age := ageutil.MinAge; age < ageutil.TerminalAge; age++ {
		cohort := snap.At(age)

		// Migrants arrive mid-year and are thinned by the same full-year
		// mortality as the cohort they join.
		maleBase, maleApplied := applyMigrants(cohort.Male, migrantsMale[age])
		femaleBase, femaleApplied := applyMigrants(cohort.Female, migrantsFemale[age])
		counters.Migration += maleApplied + femaleApplied

		qm := MortalityProbability(tables, age, domain.Male, yearsElapsed, params.MortalityImprovementMale)
		qf := MortalityProbability(tables, age, domain.Female, yearsElapsed, params.MortalityImprovementFemale)
		maleSurvivors := survivorCount(maleBase, qm)
		femaleSurvivors := survivorCount(femaleBase, qf)
		counters.Deaths += (maleBase - maleSurvivors) + (femaleBase - femaleSurvivors)

		if age == ageutil.TerminalAge-1 {
			intoTerminal.Male += maleSurvivors
			intoTerminal.Female += femaleSurvivors
		} else {
			next[age+1].Male = maleSurvivors
			next[age+1].Female = femaleSurvivors
		}
	}

	// Terminal bucket: no migration, table mortality without improvement.
	// Its arithmetic shares no carry state with the loop above.
	terminal := snap.At(ageutil.TerminalAge)
	qm := MortalityProbability(tables, ageutil.TerminalAge, domain.Male, yearsElapsed, params.MortalityImprovementMale)
	qf := MortalityProbability(tables, ageutil.TerminalAge, domain.Female, yearsElapsed, params.MortalityImprovementFemale)
	terminalMale := survivorCount(terminal.Male, qm)
	terminalFemale := survivorCount(terminal.Female, qf)
	counters.Deaths += (terminal.Male - terminalMale) + (terminal.Female - terminalFemale)

	next[ageutil.TerminalAge].Male = intoTerminal.Male + terminalMale
	next[ageutil.TerminalAge].Female = intoTerminal.Female + terminalFemale

	next[0].Male = maleBirths
	next[0].Female = femaleBirths

	result, err := domain.NewPopulationSnapshot(next)
	if err != nil {
		return domain.PopulationSnapshot{}, counters, err
	}
	return result, counters, nil
}

// projectBirths sums expected births over the reproductive ages, scaling
// the table's age shape to the user's TFR, and splits the rounded total by
// the sex ratio at birth.
func projectBirths(tables *refdata.Tables, snap domain.PopulationSnapshot, userTFR float64) (males, females int) {
	scale := userTFR / tables.BaselineTFR()

	var expected float64
	for age := ageutil.FertilityMinAge; age <= ageutil.FertilityMaxAge; age++ {
		expected += float64(snap.At(age).Female) * FertilityRate(tables, age) * scale
	}

	total := int(math.Round(expected))
	males = int(math.Round(float64(total) * maleBirthsPerFemale / (1 + maleBirthsPerFemale)))
	females = total - males
	return males, females
}

// distributeMigration splits one sex's net migration across ages 0..99.
// The fractional remainder of each age's share carries into the next age so
// cumulative rounding loss stays below one person; whatever carry is left
// after age 99 is rounded onto age 99 so the full total is distributed.
// The carry accumulator is local to this function and never escapes into
// any cohort's mortality arithmetic.
func distributeMigration(tables *refdata.Tables, total int, sex domain.Sex) [ageutil.TerminalAge]int {
	var allocations [ageutil.TerminalAge]int
	carry := 0.0
	for age := ageutil.MinAge; age < ageutil.TerminalAge; age++ {
		exact := float64(total)*MigrationWeight(tables, age, sex) + carry
		floored := math.Floor(exact)
		allocations[age] = int(floored)
		carry = exact - floored
	}
	if leftover := int(math.Round(carry)); leftover != 0 {
		allocations[ageutil.TerminalAge-1] += leftover
	}
	return allocations
}

// applyMigrants adds an allocation to a cohort count, clamping at zero when
// net-negative migration would overdraw the cohort. It returns the new base
// count and the migration actually applied.
func applyMigrants(count, allocation int) (base, applied int) {
	base = count + allocation
	applied = allocation
	if base < 0 {
		applied = -count
		base = 0
	}
	return base, applied
}

// survivorCount applies an annual death probability to an integer cohort.
func survivorCount(base int, q float64) int {
	if base <= 0 {
		return 0
	}
	return int(math.Round(float64(base) * (1 - q)))
}
